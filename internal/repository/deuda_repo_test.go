package repository

import (
	"context"
	"testing"

	"licoreria/internal/model"
	"licoreria/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeudaRepoBuscarAbiertaPorID(t *testing.T) {
	ctx := context.Background()
	repo := NewDeudaRepository(ctx, store.NewMemoryStore())

	require.NoError(t, repo.Crear(ctx, model.Deuda{
		ID: "d1", ClienteID: "c1", Cliente: "Marta", Estado: model.DeudaPendiente,
		Total: decimal.NewFromInt(1000),
	}))

	d, ok := repo.BuscarAbierta(ctx, "c1", "Marta")
	require.True(t, ok)
	assert.Equal(t, "d1", d.ID)

	// Same name but different client id never matches.
	_, ok = repo.BuscarAbierta(ctx, "c2", "Marta")
	assert.False(t, ok)
}

func TestDeudaRepoBuscarAbiertaNombreSoloParaFilasSinID(t *testing.T) {
	ctx := context.Background()
	repo := NewDeudaRepository(ctx, store.NewMemoryStore())

	// Legacy row imported without a client id.
	require.NoError(t, repo.Crear(ctx, model.Deuda{
		ID: "d1", Cliente: "Pedro", Estado: model.DeudaPendiente,
		Total: decimal.NewFromInt(500),
	}))

	d, ok := repo.BuscarAbierta(ctx, "c9", "Pedro")
	require.True(t, ok)
	assert.Equal(t, "d1", d.ID)
}

func TestDeudaRepoBuscarAbiertaIgnoraPagadas(t *testing.T) {
	ctx := context.Background()
	repo := NewDeudaRepository(ctx, store.NewMemoryStore())

	require.NoError(t, repo.Crear(ctx, model.Deuda{
		ID: "d1", ClienteID: "c1", Cliente: "Marta", Estado: model.DeudaPagada,
	}))

	_, ok := repo.BuscarAbierta(ctx, "c1", "Marta")
	assert.False(t, ok)
}

func TestDeudaRepoActualizarContacto(t *testing.T) {
	ctx := context.Background()
	repo := NewDeudaRepository(ctx, store.NewMemoryStore())

	require.NoError(t, repo.Crear(ctx, model.Deuda{ID: "d1", ClienteID: "c1", Cliente: "Marta"}))
	// d2 is a legacy row without client id, matched by name; d3 belongs to another client.
	require.NoError(t, repo.Crear(ctx, model.Deuda{ID: "d2", Cliente: "Marta"}))
	require.NoError(t, repo.Crear(ctx, model.Deuda{ID: "d3", ClienteID: "c2", Cliente: "Marta"}))

	require.NoError(t, repo.ActualizarContacto(ctx, "c1", "Marta", "Marta Gómez", "3001234567"))

	d1, _ := repo.ObtenerPorID(ctx, "d1")
	d2, _ := repo.ObtenerPorID(ctx, "d2")
	d3, _ := repo.ObtenerPorID(ctx, "d3")
	assert.Equal(t, "Marta Gómez", d1.Cliente)
	assert.Equal(t, "3001234567", d1.Telefono)
	assert.Equal(t, "Marta Gómez", d2.Cliente)
	assert.Equal(t, "Marta", d3.Cliente, "rows of another client id stay untouched")
}
