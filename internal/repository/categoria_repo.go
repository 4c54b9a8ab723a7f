package repository

import (
	"context"
	"errors"
	"sync"

	"licoreria/internal/store"
)

// CategoriaRepository manages the flat category name list. The in-use rule
// (no delete while referenced) is enforced by the service, which also owns
// the cascade into products.
type CategoriaRepository interface {
	Listar(ctx context.Context) []string
	Agregar(ctx context.Context, nombre string) error
	Renombrar(ctx context.Context, anterior, nuevo string) error
	Eliminar(ctx context.Context, nombre string) error
	Existe(ctx context.Context, nombre string) bool
}

var ErrCategoriaDuplicada = errors.New("ya existe una categoría con ese nombre")

type categoriaRepo struct {
	mu         sync.RWMutex
	st         store.Store
	categorias []string
}

func defaultCategorias() []string {
	return []string{"Cervezas", "Aguas", "Gatorade"}
}

func NewCategoriaRepository(ctx context.Context, st store.Store) CategoriaRepository {
	return &categoriaRepo{
		st:         st,
		categorias: cargar(ctx, st, store.KeyCategorias, defaultCategorias()),
	}
}

func (r *categoriaRepo) persistir(ctx context.Context) {
	guardar(ctx, r.st, store.KeyCategorias, r.categorias)
}

func (r *categoriaRepo) Listar(_ context.Context) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.categorias))
	copy(out, r.categorias)
	return out
}

func (r *categoriaRepo) Existe(_ context.Context, nombre string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.existe(nombre)
}

func (r *categoriaRepo) existe(nombre string) bool {
	for _, c := range r.categorias {
		if c == nombre {
			return true
		}
	}
	return false
}

func (r *categoriaRepo) Agregar(ctx context.Context, nombre string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.existe(nombre) {
		return ErrCategoriaDuplicada
	}
	r.categorias = append(r.categorias, nombre)
	r.persistir(ctx)
	return nil
}

func (r *categoriaRepo) Renombrar(ctx context.Context, anterior, nuevo string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.existe(nuevo) {
		return ErrCategoriaDuplicada
	}
	for i, c := range r.categorias {
		if c == anterior {
			r.categorias[i] = nuevo
			r.persistir(ctx)
			return nil
		}
	}
	return ErrNoEncontrado
}

func (r *categoriaRepo) Eliminar(ctx context.Context, nombre string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.categorias {
		if c == nombre {
			r.categorias = append(r.categorias[:i], r.categorias[i+1:]...)
			r.persistir(ctx)
			return nil
		}
	}
	return ErrNoEncontrado
}
