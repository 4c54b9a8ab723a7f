package repository

import (
	"context"
	"sync"

	"licoreria/internal/store"
)

// SesionRepository mirrors the legacy session flag. The JWT is the actual
// credential; this flag only keeps the storage layout import-compatible.
type SesionRepository interface {
	Activa(ctx context.Context) bool
	Guardar(ctx context.Context, activa bool) error
}

type sesionRepo struct {
	mu     sync.RWMutex
	st     store.Store
	activa bool
}

func NewSesionRepository(ctx context.Context, st store.Store) SesionRepository {
	return &sesionRepo{
		st:     st,
		activa: cargar(ctx, st, store.KeySesion, false),
	}
}

func (r *sesionRepo) Activa(_ context.Context) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.activa
}

func (r *sesionRepo) Guardar(ctx context.Context, activa bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.activa = activa
	guardar(ctx, r.st, store.KeySesion, r.activa)
	return nil
}
