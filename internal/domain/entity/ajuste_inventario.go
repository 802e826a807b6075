package entity

import "time"

// AjusteInventario ajuste manual de stock (merma, conteo físico, corrección).
// NumeroAjuste es único por cliente.
type AjusteInventario struct {
	ID               string
	ClienteID        string
	UsuarioCreadorID string
	NumeroAjuste     string
	TipoAjuste       string // entrada, salida, conteo
	Estado           string // pendiente, aplicado, anulado
	Motivo           string
	FechaAjuste      time.Time
}

// AlertaStock alerta generada cuando el stock de un producto cruza un umbral.
type AlertaStock struct {
	ID          string
	ClienteID   string
	ProductoID  string
	TipoAlerta  string // stock_bajo, stock_agotado, sobrestock
	Mensaje     string
	Leida       bool
	FechaAlerta time.Time
}
