package repository

import (
	"context"
	"sync"

	"licoreria/internal/model"
	"licoreria/internal/store"

	"github.com/shopspring/decimal"
)

// ProductoRepository is the data access contract for the product catalog.
// Services depend on this interface, not on the concrete implementation.
type ProductoRepository interface {
	Listar(ctx context.Context) []model.Producto
	ObtenerPorID(ctx context.Context, id string) (*model.Producto, error)
	Crear(ctx context.Context, p model.Producto) error
	Reemplazar(ctx context.Context, p model.Producto) error
	Eliminar(ctx context.Context, id string) error
	// DescontarStock resta qty unidades, con piso en 0 (nunca stock negativo).
	DescontarStock(ctx context.Context, id string, qty int) error
	// CategoriaEnUso reports whether any product references the category.
	CategoriaEnUso(ctx context.Context, categoria string) bool
	// RenombrarCategoria cascades a category rename to all referencing products.
	RenombrarCategoria(ctx context.Context, anterior, nuevo string) error
}

type productoRepo struct {
	mu        sync.RWMutex
	st        store.Store
	productos []model.Producto
}

// defaultProductos is the seed catalog the legacy app shipped with; it is
// only used when the storage entry is absent or unreadable.
func defaultProductos() []model.Producto {
	return []model.Producto{
		{ID: "1", Nombre: "Cerveza Aguila Negra", Categoria: "Cervezas", Costo: decimal.NewFromInt(2500), Precio: decimal.NewFromInt(4000), Stock: 30},
		{ID: "2", Nombre: "Agua Mineral", Categoria: "Aguas", Costo: decimal.NewFromInt(2000), Precio: decimal.NewFromInt(3000), Stock: 30},
		{ID: "3", Nombre: "Gatorade Rojo", Categoria: "Gatorade", Costo: decimal.NewFromInt(3000), Precio: decimal.NewFromInt(5000), Stock: 30},
	}
}

func NewProductoRepository(ctx context.Context, st store.Store) ProductoRepository {
	return &productoRepo{
		st:        st,
		productos: cargar(ctx, st, store.KeyProductos, defaultProductos()),
	}
}

func (r *productoRepo) persistir(ctx context.Context) {
	guardar(ctx, r.st, store.KeyProductos, r.productos)
}

func (r *productoRepo) Listar(_ context.Context) []model.Producto {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Producto, len(r.productos))
	copy(out, r.productos)
	return out
}

func (r *productoRepo) ObtenerPorID(_ context.Context, id string) (*model.Producto, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.productos {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, ErrNoEncontrado
}

func (r *productoRepo) Crear(ctx context.Context, p model.Producto) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	// Newest first, like the legacy list.
	r.productos = append([]model.Producto{p}, r.productos...)
	r.persistir(ctx)
	return nil
}

func (r *productoRepo) Reemplazar(ctx context.Context, p model.Producto) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.productos {
		if r.productos[i].ID == p.ID {
			r.productos[i] = p
			r.persistir(ctx)
			return nil
		}
	}
	return ErrNoEncontrado
}

func (r *productoRepo) Eliminar(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.productos {
		if r.productos[i].ID == id {
			r.productos = append(r.productos[:i], r.productos[i+1:]...)
			r.persistir(ctx)
			return nil
		}
	}
	return ErrNoEncontrado
}

func (r *productoRepo) DescontarStock(ctx context.Context, id string, qty int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.productos {
		if r.productos[i].ID == id {
			nuevo := r.productos[i].Stock - qty
			if nuevo < 0 {
				nuevo = 0
			}
			r.productos[i].Stock = nuevo
			r.persistir(ctx)
			return nil
		}
	}
	return ErrNoEncontrado
}

func (r *productoRepo) CategoriaEnUso(_ context.Context, categoria string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.productos {
		if p.Categoria == categoria {
			return true
		}
	}
	return false
}

func (r *productoRepo) RenombrarCategoria(ctx context.Context, anterior, nuevo string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cambiado := false
	for i := range r.productos {
		if r.productos[i].Categoria == anterior {
			r.productos[i].Categoria = nuevo
			cambiado = true
		}
	}
	if cambiado {
		r.persistir(ctx)
	}
	return nil
}
