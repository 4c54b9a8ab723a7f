package model

import (
	"github.com/shopspring/decimal"
)

// Debt states.
const (
	DeudaPendiente = "pendiente"
	DeudaPagada    = "pagado"
)

// DeudaItem is one credit-sale line accumulated on a debt.
type DeudaItem struct {
	Ts             string          `json:"ts"`
	ProductoID     string          `json:"productId"`
	Nombre         string          `json:"name"`
	Cantidad       int             `json:"qty"`
	PrecioUnitario decimal.Decimal `json:"unitPrice"`
}

// Pago is one payment applied against a debt. Recibido/Vuelto only for Efectivo.
type Pago struct {
	Ts       string          `json:"ts"`
	Monto    decimal.Decimal `json:"amount"`
	Nota     string          `json:"note,omitempty"`
	Metodo   string          `json:"method"`
	Recibido decimal.Decimal `json:"tendered"`
	Vuelto   decimal.Decimal `json:"change"`
}

// Deuda is one active (or settled) credit balance for a client.
// Invariant: Total = sum(items qty*unitPrice) - sum(payments), clamped at 0.
// ClienteID may be empty on rows imported from the legacy app, which matched
// debts to clients by name; lookups try id first and fall back to name.
type Deuda struct {
	ID            string          `json:"id"`
	ClienteID     string          `json:"clientId,omitempty"`
	Cliente       string          `json:"client"`
	Telefono      string          `json:"phone,omitempty"`
	Nota          string          `json:"note,omitempty"`
	Estado        string          `json:"status"`
	Total         decimal.Decimal `json:"total"`
	Items         []DeudaItem     `json:"items"`
	Pagos         []Pago          `json:"payments,omitempty"`
	CreadaEl      string          `json:"createdAt"`
	ActualizadaEl string          `json:"updatedAt,omitempty"`
	UltimoPagoEl  string          `json:"lastPaymentAt,omitempty"`
}

// Corresponde reports whether this debt belongs to the given client,
// using the documented two-phase rule: id match wins; a name match only
// applies to legacy rows that carry no client id.
func (d Deuda) Corresponde(clienteID, nombre string) bool {
	if d.ClienteID != "" {
		return d.ClienteID == clienteID
	}
	return d.Cliente == nombre
}
