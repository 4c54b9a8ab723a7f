package repository

import (
	"context"
	"sync"

	"licoreria/internal/model"
	"licoreria/internal/store"
)

// VentaRepository is the append-only sales ledger. Rows are never updated or
// deleted; the newest row goes first, like the legacy list.
type VentaRepository interface {
	Listar(ctx context.Context) []model.Venta
	ListarPorDia(ctx context.Context, dia string) []model.Venta
	Agregar(ctx context.Context, v model.Venta) error
}

type ventaRepo struct {
	mu     sync.RWMutex
	st     store.Store
	ventas []model.Venta
}

func NewVentaRepository(ctx context.Context, st store.Store) VentaRepository {
	return &ventaRepo{
		st:     st,
		ventas: cargar(ctx, st, store.KeyVentas, []model.Venta{}),
	}
}

func (r *ventaRepo) Listar(_ context.Context) []model.Venta {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Venta, len(r.ventas))
	copy(out, r.ventas)
	return out
}

func (r *ventaRepo) ListarPorDia(_ context.Context, dia string) []model.Venta {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.Venta
	for _, v := range r.ventas {
		if v.Dia() == dia {
			out = append(out, v)
		}
	}
	return out
}

func (r *ventaRepo) Agregar(ctx context.Context, v model.Venta) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ventas = append([]model.Venta{v}, r.ventas...)
	guardar(ctx, r.st, store.KeyVentas, r.ventas)
	return nil
}
