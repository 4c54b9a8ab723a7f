package service

import (
	"context"
	"testing"

	"licoreria/internal/dto"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrearProductoValidaCategoria(t *testing.T) {
	e := nuevoEntorno(t)
	ctx := context.Background()
	svc := NewProductoService(e.productos, e.categorias, e.historial)

	_, err := svc.Crear(ctx, dto.CrearProductoRequest{
		Nombre:    "Club Colombia Dorada",
		Categoria: "NoExiste",
		Precio:    decimal.NewFromInt(4500),
	})
	require.Error(t, err)

	resp, err := svc.Crear(ctx, dto.CrearProductoRequest{
		Nombre:    "Club Colombia Dorada",
		Categoria: "Cervezas",
		Costo:     decimal.NewFromInt(3000),
		Precio:    decimal.NewFromInt(4500),
		Stock:     24,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.NotEmpty(t, resp.IngresoEl, "entry date defaults to today")
}

func TestActualizarProductoGuardaHistorial(t *testing.T) {
	e := nuevoEntorno(t)
	ctx := context.Background()
	svc := NewProductoService(e.productos, e.categorias, e.historial)

	nuevoPrecio := decimal.NewFromInt(4500)
	resp, err := svc.Actualizar(ctx, "1", dto.ActualizarProductoRequest{
		Precio: &nuevoPrecio,
	})
	require.NoError(t, err)
	assert.True(t, resp.Precio.Equal(nuevoPrecio))
	assert.Equal(t, "Cerveza Aguila Negra", resp.Nombre, "untouched fields keep their value")

	h, err := svc.Historial(ctx, "1")
	require.NoError(t, err)
	require.Len(t, h.Entradas, 1)

	entrada := h.Entradas[0]
	assert.True(t, entrada.Antes.Precio.Equal(decimal.NewFromInt(4000)), "snapshot holds the pre-update value")
	require.NotNil(t, entrada.Cambios.Precio)
	assert.True(t, entrada.Cambios.Precio.Equal(nuevoPrecio))
	assert.Nil(t, entrada.Cambios.Nombre, "only sent fields land in the delta")

	// A second edit prepends.
	otroPrecio := decimal.NewFromInt(5000)
	_, err = svc.Actualizar(ctx, "1", dto.ActualizarProductoRequest{Precio: &otroPrecio})
	require.NoError(t, err)
	h, err = svc.Historial(ctx, "1")
	require.NoError(t, err)
	require.Len(t, h.Entradas, 2)
	assert.True(t, h.Entradas[0].Antes.Precio.Equal(nuevoPrecio), "newest entry first")
}

func TestActualizarProductoCategoriaInexistente(t *testing.T) {
	e := nuevoEntorno(t)
	svc := NewProductoService(e.productos, e.categorias, e.historial)

	cat := "Fantasma"
	_, err := svc.Actualizar(context.Background(), "1", dto.ActualizarProductoRequest{Categoria: &cat})
	assert.Error(t, err)
}

func TestEliminarProductoNoTocaElLibro(t *testing.T) {
	e := nuevoEntorno(t)
	ctx := context.Background()
	ventaSvc := e.ventaSvc()
	prodSvc := NewProductoService(e.productos, e.categorias, e.historial)

	_, err := ventaSvc.Registrar(ctx, dto.RegistrarVentaRequest{
		ProductoID: "1", Cantidad: 1, Metodo: "Efectivo", Recibido: decimal.NewFromInt(4000),
	})
	require.NoError(t, err)

	require.NoError(t, prodSvc.Eliminar(ctx, "1"))

	ventas := e.ventas.Listar(ctx)
	require.Len(t, ventas, 1)
	assert.Equal(t, "1", ventas[0].ProductoID, "ledger keeps the historical reference")
}
