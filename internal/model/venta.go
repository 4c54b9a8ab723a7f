package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment methods. Values are stored verbatim, same casing as the legacy app.
const (
	MetodoEfectivo      = "Efectivo"
	MetodoTransferencia = "Transferencia"
	MetodoFiado         = "Fiado"
)

// Venta row types. An "abono" is a debt payment mirrored into the sales
// ledger so the caja report can account for the cash movement; it is not a
// product sale (ProductoID empty, Cantidad 1, PrecioUnitario = amount paid).
const (
	TipoVenta = "venta"
	TipoAbono = "abono"
)

// Venta is one immutable row of the append-only sales ledger.
// Recibido/Vuelto are only meaningful for Efectivo rows and are zero otherwise.
type Venta struct {
	ID             string          `json:"id"`
	Fecha          time.Time       `json:"date"`
	ProductoID     string          `json:"productId,omitempty"`
	Cantidad       int             `json:"qty"`
	PrecioUnitario decimal.Decimal `json:"unitPrice"`
	Metodo         string          `json:"method"`
	Recibido       decimal.Decimal `json:"tendered"`
	Vuelto         decimal.Decimal `json:"change"`
	Tipo           string          `json:"type"`
	Nota           string          `json:"note,omitempty"`
}

// Subtotal is qty * unit price. For an abono row this equals the amount paid.
func (v Venta) Subtotal() decimal.Decimal {
	return v.PrecioUnitario.Mul(decimal.NewFromInt(int64(v.Cantidad)))
}

// Dia returns the accounting date bucket (YYYY-MM-DD, UTC — the legacy app
// sliced ISO timestamps, which are UTC).
func (v Venta) Dia() string {
	return v.Fecha.UTC().Format("2006-01-02")
}
