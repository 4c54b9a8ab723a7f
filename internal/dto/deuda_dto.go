package dto

import "github.com/shopspring/decimal"

// RegistrarAbonoRequest is the body of POST /v1/deudas/:id/abonos.
// Fiado is not a valid payment method for a payment against a debt.
type RegistrarAbonoRequest struct {
	Monto  decimal.Decimal `json:"monto"  validate:"required"`
	Metodo string          `json:"metodo" validate:"required,oneof=Efectivo Transferencia"`
	// Recibido only applies to Efectivo and must cover the amount.
	Recibido decimal.Decimal `json:"recibido"`
	Nota     string          `json:"nota"`
}

type ItemDeudaResponse struct {
	Ts             string          `json:"ts"`
	ProductoID     string          `json:"producto_id"`
	Producto       string          `json:"producto"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
}

type PagoResponse struct {
	Ts       string          `json:"ts"`
	Monto    decimal.Decimal `json:"monto"`
	Metodo   string          `json:"metodo"`
	Recibido decimal.Decimal `json:"recibido"`
	Vuelto   decimal.Decimal `json:"vuelto"`
	Nota     string          `json:"nota,omitempty"`
}

type DeudaResponse struct {
	ID           string              `json:"id"`
	ClienteID    string              `json:"cliente_id,omitempty"`
	Cliente      string              `json:"cliente"`
	Telefono     string              `json:"telefono,omitempty"`
	Nota         string              `json:"nota,omitempty"`
	Estado       string              `json:"estado"`
	Total        decimal.Decimal     `json:"total"`
	Items        []ItemDeudaResponse `json:"items"`
	Pagos        []PagoResponse      `json:"pagos"`
	CreadaEl     string              `json:"creada_el"`
	UltimoPagoEl string              `json:"ultimo_pago_el,omitempty"`
}
