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

func TestProductoRepoSeedPorDefecto(t *testing.T) {
	ctx := context.Background()
	repo := NewProductoRepository(ctx, store.NewMemoryStore())

	productos := repo.Listar(ctx)
	require.Len(t, productos, 3)
	assert.Equal(t, "Cerveza Aguila Negra", productos[0].Nombre)
	assert.Equal(t, 30, productos[0].Stock)
}

func TestProductoRepoDescontarStockPisoEnCero(t *testing.T) {
	ctx := context.Background()
	repo := NewProductoRepository(ctx, store.NewMemoryStore())

	require.NoError(t, repo.DescontarStock(ctx, "1", 5))
	p, err := repo.ObtenerPorID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 25, p.Stock)

	// Oversell: stock never goes negative.
	require.NoError(t, repo.DescontarStock(ctx, "1", 999))
	p, err = repo.ObtenerPorID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 0, p.Stock)
}

func TestProductoRepoRenombrarCategoriaEnCascada(t *testing.T) {
	ctx := context.Background()
	repo := NewProductoRepository(ctx, store.NewMemoryStore())

	require.NoError(t, repo.RenombrarCategoria(ctx, "Cervezas", "Birras"))

	p, err := repo.ObtenerPorID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Birras", p.Categoria)
	assert.True(t, repo.CategoriaEnUso(ctx, "Birras"))
	assert.False(t, repo.CategoriaEnUso(ctx, "Cervezas"))
}

func TestProductoRepoPersisteEntreInstancias(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()

	repo := NewProductoRepository(ctx, st)
	require.NoError(t, repo.Crear(ctx, model.Producto{
		ID:     "nuevo",
		Nombre: "Ron Viejo de Caldas",
		Precio: decimal.NewFromInt(38000),
		Stock:  12,
	}))

	// A fresh repository over the same store must see the mutation.
	repo2 := NewProductoRepository(ctx, st)
	p, err := repo2.ObtenerPorID(ctx, "nuevo")
	require.NoError(t, err)
	assert.Equal(t, "Ron Viejo de Caldas", p.Nombre)
	assert.Equal(t, 12, p.Stock)

	productos := repo2.Listar(ctx)
	assert.Equal(t, "nuevo", productos[0].ID, "newest first")
}

func TestProductoRepoEliminar(t *testing.T) {
	ctx := context.Background()
	repo := NewProductoRepository(ctx, store.NewMemoryStore())

	require.NoError(t, repo.Eliminar(ctx, "2"))
	_, err := repo.ObtenerPorID(ctx, "2")
	assert.ErrorIs(t, err, ErrNoEncontrado)

	assert.ErrorIs(t, repo.Eliminar(ctx, "2"), ErrNoEncontrado)
}
