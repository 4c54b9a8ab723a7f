package repository

import (
	"context"
	"sync"

	"licoreria/internal/model"
	"licoreria/internal/store"

	"github.com/shopspring/decimal"
)

// CajaRepository holds the per-day register state: opening float and closed
// flag, two independent maps mirrored to two storage entries.
type CajaRepository interface {
	Apertura(ctx context.Context, dia string) decimal.Decimal
	GuardarApertura(ctx context.Context, dia string, monto decimal.Decimal) error
	Cerrada(ctx context.Context, dia string) bool
	GuardarCierre(ctx context.Context, dia string, cerrada bool) error
}

type cajaRepo struct {
	mu        sync.RWMutex
	st        store.Store
	aperturas model.AperturasCaja
	cierres   model.CierresCaja
}

func NewCajaRepository(ctx context.Context, st store.Store) CajaRepository {
	return &cajaRepo{
		st:        st,
		aperturas: cargar(ctx, st, store.KeyAperturas, model.AperturasCaja{}),
		cierres:   cargar(ctx, st, store.KeyCierres, model.CierresCaja{}),
	}
}

func (r *cajaRepo) Apertura(_ context.Context, dia string) decimal.Decimal {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.aperturas[dia]
}

func (r *cajaRepo) GuardarApertura(ctx context.Context, dia string, monto decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.aperturas[dia] = monto
	guardar(ctx, r.st, store.KeyAperturas, r.aperturas)
	return nil
}

func (r *cajaRepo) Cerrada(_ context.Context, dia string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cierres[dia]
}

func (r *cajaRepo) GuardarCierre(ctx context.Context, dia string, cerrada bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cierres[dia] = cerrada
	guardar(ctx, r.st, store.KeyCierres, r.cierres)
	return nil
}
