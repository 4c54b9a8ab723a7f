package dto

import "github.com/shopspring/decimal"

// ResumenResponse are the dashboard KPIs, recomputed on every read by
// scanning the collections — no caching, no incremental maintenance.
type ResumenResponse struct {
	InventarioCosto    decimal.Decimal `json:"inventario_costo"`
	InventarioPrecio   decimal.Decimal `json:"inventario_precio"`
	VentasAcumuladas   decimal.Decimal `json:"ventas_acumuladas"`
	UtilidadBruta      decimal.Decimal `json:"utilidad_bruta"`
	TotalAdeudado      decimal.Decimal `json:"total_adeudado"`
	ClientesConDeuda   int             `json:"clientes_con_deuda"`
	ProductosDistintos int             `json:"productos_distintos"`
	VentasRegistradas  int             `json:"ventas_registradas"`
}
