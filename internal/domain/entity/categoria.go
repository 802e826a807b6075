package entity

import "time"

// CategoriaProducto categoría de inventario. El árbol padre/hijo se modela
// plano: cada fila guarda su PadreID y las consultas navegan por índice,
// nunca se materializa un árbol de punteros en memoria.
type CategoriaProducto struct {
	ID            string
	ClienteID     string
	Nombre        string // único por cliente
	Descripcion   string
	PadreID       *string
	FechaCreacion time.Time
}
