// Package store is the persistence port: one serialized JSON document per
// collection, addressed by the same keys the legacy browser app used in
// localStorage, so an exported dump can be loaded without translation.
package store

import "context"

// Storage keys, one per collection.
const (
	KeyProductos  = "licoreria.products"
	KeyCategorias = "licoreria.categories"
	KeyVentas     = "licoreria.sales"
	KeyDeudas     = "licoreria.debts"
	KeyClientes   = "licoreria.clients"
	KeyAperturas  = "licoreria.cashOpenings"
	KeyCierres    = "licoreria.cashClosed"
	KeyHistorial  = "licoreria.productHistory"
	KeySesion     = "licoreria.session"
)

// Store is the key-value storage contract. Implementations must treat values
// as opaque bytes; all encoding decisions belong to the repositories.
type Store interface {
	// Get returns the stored value and whether the key existed.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set writes the value, overwriting any previous one.
	Set(ctx context.Context, key string, value []byte) error
}
