package service

import (
	"context"
	"testing"

	"licoreria/internal/dto"
	"licoreria/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResumenKPIs(t *testing.T) {
	e := nuevoEntorno(t)
	ctx := context.Background()
	ventaSvc := e.ventaSvc()
	svc := NewResumenService(e.productos, e.ventas, e.deudas)

	// Seed catalog: 3 products × 30 units.
	// inventario costo = (2500+2000+3000)*30 = 225000
	// inventario precio = (4000+3000+5000)*30 = 360000
	inicial := svc.Obtener(ctx)
	assert.True(t, inicial.InventarioCosto.Equal(decimal.NewFromInt(225000)), "costo %s", inicial.InventarioCosto)
	assert.True(t, inicial.InventarioPrecio.Equal(decimal.NewFromInt(360000)), "precio %s", inicial.InventarioPrecio)
	assert.Equal(t, 3, inicial.ProductosDistintos)
	assert.Equal(t, 0, inicial.VentasRegistradas)

	// Sell 2 × Cerveza (precio 4000, costo 2500): utilidad 2×1500.
	_, err := ventaSvc.Registrar(ctx, dto.RegistrarVentaRequest{
		ProductoID: "1", Cantidad: 2, Metodo: model.MetodoEfectivo,
		Recibido: decimal.NewFromInt(8000),
	})
	require.NoError(t, err)

	require.NoError(t, e.deudas.Crear(ctx, model.Deuda{
		ID: "d1", ClienteID: "c1", Cliente: "Marta",
		Estado: model.DeudaPendiente, Total: decimal.NewFromInt(7000),
	}))
	require.NoError(t, e.deudas.Crear(ctx, model.Deuda{
		ID: "d2", ClienteID: "c2", Cliente: "Pedro",
		Estado: model.DeudaPagada, Total: decimal.Zero,
	}))

	r := svc.Obtener(ctx)
	assert.True(t, r.VentasAcumuladas.Equal(decimal.NewFromInt(8000)), "acumulado %s", r.VentasAcumuladas)
	assert.True(t, r.UtilidadBruta.Equal(decimal.NewFromInt(3000)), "utilidad %s", r.UtilidadBruta)
	assert.True(t, r.TotalAdeudado.Equal(decimal.NewFromInt(7000)), "settled debts do not count")
	assert.Equal(t, 1, r.ClientesConDeuda)
	assert.Equal(t, 1, r.VentasRegistradas)
}

func TestResumenIgnoraUtilidadDeProductosBorrados(t *testing.T) {
	e := nuevoEntorno(t)
	ctx := context.Background()
	ventaSvc := e.ventaSvc()
	svc := NewResumenService(e.productos, e.ventas, e.deudas)

	_, err := ventaSvc.Registrar(ctx, dto.RegistrarVentaRequest{
		ProductoID: "1", Cantidad: 1, Metodo: model.MetodoEfectivo,
		Recibido: decimal.NewFromInt(4000),
	})
	require.NoError(t, err)
	require.NoError(t, e.productos.Eliminar(ctx, "1"))

	r := svc.Obtener(ctx)
	assert.True(t, r.VentasAcumuladas.Equal(decimal.NewFromInt(4000)), "the ledger row still counts")
	assert.True(t, r.UtilidadBruta.IsZero(), "no cost reference, no profit contribution")
}
