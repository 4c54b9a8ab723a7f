package model

import (
	"github.com/shopspring/decimal"
)

// Producto is a catalog record. JSON field names match the legacy
// localStorage objects so an exported dump can be imported as-is.
type Producto struct {
	ID        string          `json:"id"`
	Nombre    string          `json:"name"`
	Categoria string          `json:"category"`
	Costo     decimal.Decimal `json:"cost"`
	Precio    decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
	// IngresoEl is the entry date (YYYY-MM-DD), informational only.
	IngresoEl string `json:"addedAt,omitempty"`
}

// Snapshot returns a copy suitable for a history entry.
func (p Producto) Snapshot() Producto { return p }

// CambiosProducto are the fields an update may touch. Pointer fields
// distinguish "not sent" from zero values.
type CambiosProducto struct {
	Nombre    *string          `json:"name,omitempty"`
	Categoria *string          `json:"category,omitempty"`
	Costo     *decimal.Decimal `json:"cost,omitempty"`
	Precio    *decimal.Decimal `json:"price,omitempty"`
	Stock     *int             `json:"stock,omitempty"`
	IngresoEl *string          `json:"addedAt,omitempty"`
}

// HistorialProducto is one audit entry: the product as it was before the
// update plus the delta that was applied. Append-only, never mutated.
type HistorialProducto struct {
	Ts      string          `json:"ts"`
	Antes   Producto        `json:"before"`
	Cambios CambiosProducto `json:"changes"`
}
