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

func TestClienteActualizarPropagaALasDeudas(t *testing.T) {
	e := nuevoEntorno(t)
	ctx := context.Background()
	svc := NewClienteService(e.clientes, e.deudas)

	creado, err := svc.Crear(ctx, dto.CrearClienteRequest{
		Nombre: "Marta", Doc: "1012345678", Telefono: "3000000000",
	})
	require.NoError(t, err)

	require.NoError(t, e.deudas.Crear(ctx, model.Deuda{
		ID: "d1", ClienteID: creado.ID, Cliente: "Marta",
		Estado: model.DeudaPendiente, Total: decimal.NewFromInt(1000),
	}))

	_, err = svc.Actualizar(ctx, creado.ID, dto.ActualizarClienteRequest{
		Nombre: "Marta Gómez", Doc: "1012345678", Telefono: "3001112233",
	})
	require.NoError(t, err)

	d, err := e.deudas.ObtenerPorID(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, "Marta Gómez", d.Cliente)
	assert.Equal(t, "3001112233", d.Telefono)
}

func TestClienteEliminarConservaDeudas(t *testing.T) {
	e := nuevoEntorno(t)
	ctx := context.Background()
	svc := NewClienteService(e.clientes, e.deudas)

	creado, err := svc.Crear(ctx, dto.CrearClienteRequest{
		Nombre: "Pedro", Doc: "99", Telefono: "311",
	})
	require.NoError(t, err)
	require.NoError(t, e.deudas.Crear(ctx, model.Deuda{
		ID: "d1", ClienteID: creado.ID, Cliente: "Pedro",
		Estado: model.DeudaPendiente, Total: decimal.NewFromInt(500),
	}))

	require.NoError(t, svc.Eliminar(ctx, creado.ID))

	d, err := e.deudas.ObtenerPorID(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, "Pedro", d.Cliente, "debts keep the last known contact data")
}

func TestClienteBuscar(t *testing.T) {
	e := nuevoEntorno(t)
	ctx := context.Background()
	svc := NewClienteService(e.clientes, e.deudas)

	_, err := svc.Crear(ctx, dto.CrearClienteRequest{Nombre: "Marta Gómez", Doc: "1012345678", Telefono: "3000000000"})
	require.NoError(t, err)
	_, err = svc.Crear(ctx, dto.CrearClienteRequest{Nombre: "Pedro Pérez", Doc: "88", Telefono: "3115551234"})
	require.NoError(t, err)

	assert.Len(t, svc.Listar(ctx, ""), 2)
	assert.Len(t, svc.Listar(ctx, "marta"), 1)
	assert.Len(t, svc.Listar(ctx, "311555"), 1)
	assert.Empty(t, svc.Listar(ctx, "zzz"))
}
