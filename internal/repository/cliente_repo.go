package repository

import (
	"context"
	"strings"
	"sync"

	"licoreria/internal/model"
	"licoreria/internal/store"
)

// ClienteRepository manages the client address book.
type ClienteRepository interface {
	Listar(ctx context.Context) []model.Cliente
	// Buscar filters by name, document, or phone, case-insensitive substring.
	Buscar(ctx context.Context, q string) []model.Cliente
	ObtenerPorID(ctx context.Context, id string) (*model.Cliente, error)
	Crear(ctx context.Context, c model.Cliente) error
	Reemplazar(ctx context.Context, c model.Cliente) error
	Eliminar(ctx context.Context, id string) error
}

type clienteRepo struct {
	mu       sync.RWMutex
	st       store.Store
	clientes []model.Cliente
}

func NewClienteRepository(ctx context.Context, st store.Store) ClienteRepository {
	return &clienteRepo{
		st:       st,
		clientes: cargar(ctx, st, store.KeyClientes, []model.Cliente{}),
	}
}

func (r *clienteRepo) persistir(ctx context.Context) {
	guardar(ctx, r.st, store.KeyClientes, r.clientes)
}

func (r *clienteRepo) Listar(_ context.Context) []model.Cliente {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Cliente, len(r.clientes))
	copy(out, r.clientes)
	return out
}

func (r *clienteRepo) Buscar(_ context.Context, q string) []model.Cliente {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s := strings.ToLower(strings.TrimSpace(q))
	if s == "" {
		out := make([]model.Cliente, len(r.clientes))
		copy(out, r.clientes)
		return out
	}
	var out []model.Cliente
	for _, c := range r.clientes {
		if strings.Contains(strings.ToLower(c.Nombre), s) ||
			strings.Contains(strings.ToLower(c.Doc), s) ||
			strings.Contains(strings.ToLower(c.Telefono), s) {
			out = append(out, c)
		}
	}
	return out
}

func (r *clienteRepo) ObtenerPorID(_ context.Context, id string) (*model.Cliente, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.clientes {
		if c.ID == id {
			cp := c
			return &cp, nil
		}
	}
	return nil, ErrNoEncontrado
}

func (r *clienteRepo) Crear(ctx context.Context, c model.Cliente) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clientes = append([]model.Cliente{c}, r.clientes...)
	r.persistir(ctx)
	return nil
}

func (r *clienteRepo) Reemplazar(ctx context.Context, c model.Cliente) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.clientes {
		if r.clientes[i].ID == c.ID {
			r.clientes[i] = c
			r.persistir(ctx)
			return nil
		}
	}
	return ErrNoEncontrado
}

func (r *clienteRepo) Eliminar(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.clientes {
		if r.clientes[i].ID == id {
			r.clientes = append(r.clientes[:i], r.clientes[i+1:]...)
			r.persistir(ctx)
			return nil
		}
	}
	return ErrNoEncontrado
}
