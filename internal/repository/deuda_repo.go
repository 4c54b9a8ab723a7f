package repository

import (
	"context"
	"sync"

	"licoreria/internal/model"
	"licoreria/internal/store"
)

// DeudaRepository manages customer credit balances.
type DeudaRepository interface {
	Listar(ctx context.Context) []model.Deuda
	ObtenerPorID(ctx context.Context, id string) (*model.Deuda, error)
	// BuscarAbierta returns the client's open (non-settled) debt, if any.
	// Lookup precedence: client id first; name only for legacy rows without id.
	BuscarAbierta(ctx context.Context, clienteID, nombre string) (*model.Deuda, bool)
	Crear(ctx context.Context, d model.Deuda) error
	Reemplazar(ctx context.Context, d model.Deuda) error
	// ActualizarContacto cascades a client rename into matching debts.
	ActualizarContacto(ctx context.Context, clienteID, nombreAnterior, nombre, telefono string) error
}

type deudaRepo struct {
	mu     sync.RWMutex
	st     store.Store
	deudas []model.Deuda
}

func NewDeudaRepository(ctx context.Context, st store.Store) DeudaRepository {
	return &deudaRepo{
		st:     st,
		deudas: cargar(ctx, st, store.KeyDeudas, []model.Deuda{}),
	}
}

func (r *deudaRepo) persistir(ctx context.Context) {
	guardar(ctx, r.st, store.KeyDeudas, r.deudas)
}

func (r *deudaRepo) Listar(_ context.Context) []model.Deuda {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Deuda, len(r.deudas))
	copy(out, r.deudas)
	return out
}

func (r *deudaRepo) ObtenerPorID(_ context.Context, id string) (*model.Deuda, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, d := range r.deudas {
		if d.ID == id {
			cp := d
			return &cp, nil
		}
	}
	return nil, ErrNoEncontrado
}

func (r *deudaRepo) BuscarAbierta(_ context.Context, clienteID, nombre string) (*model.Deuda, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, d := range r.deudas {
		if d.Estado != model.DeudaPagada && d.Corresponde(clienteID, nombre) {
			cp := d
			return &cp, true
		}
	}
	return nil, false
}

func (r *deudaRepo) Crear(ctx context.Context, d model.Deuda) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deudas = append([]model.Deuda{d}, r.deudas...)
	r.persistir(ctx)
	return nil
}

func (r *deudaRepo) Reemplazar(ctx context.Context, d model.Deuda) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.deudas {
		if r.deudas[i].ID == d.ID {
			r.deudas[i] = d
			r.persistir(ctx)
			return nil
		}
	}
	return ErrNoEncontrado
}

func (r *deudaRepo) ActualizarContacto(ctx context.Context, clienteID, nombreAnterior, nombre, telefono string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cambiado := false
	for i := range r.deudas {
		d := &r.deudas[i]
		porID := d.ClienteID != "" && d.ClienteID == clienteID
		porNombre := d.ClienteID == "" && d.Cliente == nombreAnterior
		if porID || porNombre {
			d.Cliente = nombre
			d.Telefono = telefono
			cambiado = true
		}
	}
	if cambiado {
		r.persistir(ctx)
	}
	return nil
}
