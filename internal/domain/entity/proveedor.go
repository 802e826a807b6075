package entity

import "time"

// Proveedor de un cliente. CodigoProveedor es único por cliente.
type Proveedor struct {
	ID              string
	ClienteID       string
	CodigoProveedor string
	Nombre          string
	RazonSocial     string
	RUC             string
	Telefono        string
	Email           string
	Direccion       string
	Estado          string // activo, inactivo
	FechaCreacion   time.Time
}
