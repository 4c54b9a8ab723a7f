package dto

import "github.com/shopspring/decimal"

// RegistrarVentaRequest is the body of POST /v1/ventas.
type RegistrarVentaRequest struct {
	ProductoID string `json:"producto_id" validate:"required"`
	Cantidad   int    `json:"cantidad"    validate:"required,gt=0"`
	Metodo     string `json:"metodo"      validate:"required,oneof=Efectivo Transferencia Fiado"`
	// Recibido only applies to Efectivo and must cover the total.
	Recibido decimal.Decimal `json:"recibido"`
	// ClienteID is required when Metodo is Fiado.
	ClienteID string `json:"cliente_id"`
	Nota      string `json:"nota"`
}

type VentaResponse struct {
	ID             string          `json:"id"`
	Fecha          string          `json:"fecha"`
	ProductoID     string          `json:"producto_id,omitempty"`
	Producto       string          `json:"producto,omitempty"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	Metodo         string          `json:"metodo"`
	Recibido       decimal.Decimal `json:"recibido"`
	Vuelto         decimal.Decimal `json:"vuelto"`
	Tipo           string          `json:"tipo"`
	Nota           string          `json:"nota,omitempty"`
}

type VentaListResponse struct {
	Data  []VentaResponse `json:"data"`
	Total int             `json:"total"`
}
