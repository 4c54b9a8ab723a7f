package dto

import (
	"licoreria/internal/model"

	"github.com/shopspring/decimal"
)

type CrearProductoRequest struct {
	Nombre    string          `json:"nombre"    validate:"required"`
	Categoria string          `json:"categoria" validate:"required"`
	Costo     decimal.Decimal `json:"costo"     validate:"min=0"`
	Precio    decimal.Decimal `json:"precio"    validate:"min=0"`
	Stock     int             `json:"stock"     validate:"min=0"`
	IngresoEl string          `json:"ingreso_el" validate:"omitempty,datetime=2006-01-02"`
}

// ActualizarProductoRequest uses pointers so that only the fields present in
// the body are applied — and only those land in the history delta.
type ActualizarProductoRequest struct {
	Nombre    *string          `json:"nombre"`
	Categoria *string          `json:"categoria"`
	Costo     *decimal.Decimal `json:"costo"  validate:"omitempty"`
	Precio    *decimal.Decimal `json:"precio" validate:"omitempty"`
	Stock     *int             `json:"stock"  validate:"omitempty,min=0"`
	IngresoEl *string          `json:"ingreso_el" validate:"omitempty,datetime=2006-01-02"`
}

type ProductoResponse struct {
	ID        string          `json:"id"`
	Nombre    string          `json:"nombre"`
	Categoria string          `json:"categoria"`
	Costo     decimal.Decimal `json:"costo"`
	Precio    decimal.Decimal `json:"precio"`
	Stock     int             `json:"stock"`
	IngresoEl string          `json:"ingreso_el,omitempty"`
}

// HistorialProductoResponse exposes the audit entries verbatim; the stored
// shape is already the public contract (before snapshot + applied delta).
type HistorialProductoResponse struct {
	ProductoID string                    `json:"producto_id"`
	Entradas   []model.HistorialProducto `json:"entradas"`
}
