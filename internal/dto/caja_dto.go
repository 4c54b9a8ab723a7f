package dto

import "github.com/shopspring/decimal"

// GuardarAperturaRequest is the body of PUT /v1/caja/:fecha/apertura.
type GuardarAperturaRequest struct {
	Monto decimal.Decimal `json:"monto" validate:"min=0"`
}

// MovimientoCajaResponse is one ledger row of the selected day, as shown in
// the register detail table: product sales and abono rows alike.
type MovimientoCajaResponse struct {
	ID             string          `json:"id"`
	Etiqueta       string          `json:"etiqueta"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	Metodo         string          `json:"metodo"`
	Tipo           string          `json:"tipo"`
}

// ReporteCajaResponse is the daily reconciliation.
// EfectivoNeto = Apertura + EfectivoRecibido − EfectivoDevuelto.
type ReporteCajaResponse struct {
	Fecha            string                     `json:"fecha"`
	Apertura         decimal.Decimal            `json:"apertura"`
	TotalVentas      decimal.Decimal            `json:"total_ventas"`
	EfectivoRecibido decimal.Decimal            `json:"efectivo_recibido"`
	EfectivoDevuelto decimal.Decimal            `json:"efectivo_devuelto"`
	EfectivoNeto     decimal.Decimal            `json:"efectivo_neto"`
	VentasPorMetodo  map[string]decimal.Decimal `json:"ventas_por_metodo"`
	Cerrada          bool                       `json:"cerrada"`
	Movimientos      []MovimientoCajaResponse   `json:"movimientos"`
}
