package repository

import (
	"context"
	"sync"

	"licoreria/internal/model"
	"licoreria/internal/store"
)

// HistorialRepository keeps the per-product audit trail of catalog edits.
// Entries are prepended and never mutated.
type HistorialRepository interface {
	ListarPorProducto(ctx context.Context, productoID string) []model.HistorialProducto
	Agregar(ctx context.Context, productoID string, entrada model.HistorialProducto) error
}

type historialRepo struct {
	mu       sync.RWMutex
	st       store.Store
	entradas map[string][]model.HistorialProducto
}

func NewHistorialRepository(ctx context.Context, st store.Store) HistorialRepository {
	return &historialRepo{
		st:       st,
		entradas: cargar(ctx, st, store.KeyHistorial, map[string][]model.HistorialProducto{}),
	}
}

func (r *historialRepo) ListarPorProducto(_ context.Context, productoID string) []model.HistorialProducto {
	r.mu.RLock()
	defer r.mu.RUnlock()
	src := r.entradas[productoID]
	out := make([]model.HistorialProducto, len(src))
	copy(out, src)
	return out
}

func (r *historialRepo) Agregar(ctx context.Context, productoID string, entrada model.HistorialProducto) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entradas[productoID] = append([]model.HistorialProducto{entrada}, r.entradas[productoID]...)
	guardar(ctx, r.st, store.KeyHistorial, r.entradas)
	return nil
}
