package service

import (
	"context"
	"testing"

	"licoreria/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoriaRenombrarCascada(t *testing.T) {
	e := nuevoEntorno(t)
	ctx := context.Background()
	svc := NewCategoriaService(e.categorias, e.productos)

	resp, err := svc.Renombrar(ctx, "Cervezas", dto.RenombrarCategoriaRequest{Nombre: "Birras"})
	require.NoError(t, err)
	assert.Equal(t, "Birras", resp.Nombre)
	assert.True(t, resp.EnUso)

	p, err := e.productos.ObtenerPorID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Birras", p.Categoria)
}

func TestCategoriaEliminarBloqueadaEnUso(t *testing.T) {
	e := nuevoEntorno(t)
	ctx := context.Background()
	svc := NewCategoriaService(e.categorias, e.productos)

	err := svc.Eliminar(ctx, "Cervezas")
	require.Error(t, err, "a referenced category cannot be deleted")

	// Free the category first, then deletion goes through.
	require.NoError(t, e.productos.Eliminar(ctx, "1"))
	require.NoError(t, svc.Eliminar(ctx, "Cervezas"))

	for _, c := range svc.Listar(ctx) {
		assert.NotEqual(t, "Cervezas", c.Nombre)
	}
}

func TestCategoriaCrearDuplicada(t *testing.T) {
	e := nuevoEntorno(t)
	svc := NewCategoriaService(e.categorias, e.productos)

	_, err := svc.Crear(context.Background(), dto.CrearCategoriaRequest{Nombre: "Cervezas"})
	assert.Error(t, err)

	_, err = svc.Crear(context.Background(), dto.CrearCategoriaRequest{Nombre: "Vinos"})
	assert.NoError(t, err)
}

func TestCategoriaRenombrarAlMismoNombreEsNoOp(t *testing.T) {
	e := nuevoEntorno(t)
	svc := NewCategoriaService(e.categorias, e.productos)

	resp, err := svc.Renombrar(context.Background(), "Aguas", dto.RenombrarCategoriaRequest{Nombre: "Aguas"})
	require.NoError(t, err)
	assert.Equal(t, "Aguas", resp.Nombre)
}
