package service

import (
	"context"
	"errors"
	"time"

	"licoreria/internal/dto"
	"licoreria/internal/model"
	"licoreria/internal/repository"

	"github.com/google/uuid"
)

type ProductoService interface {
	Listar(ctx context.Context) []dto.ProductoResponse
	ObtenerPorID(ctx context.Context, id string) (*dto.ProductoResponse, error)
	Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error)
	Actualizar(ctx context.Context, id string, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error)
	Eliminar(ctx context.Context, id string) error
	Historial(ctx context.Context, id string) (*dto.HistorialProductoResponse, error)
}

type productoService struct {
	productos  repository.ProductoRepository
	categorias repository.CategoriaRepository
	historial  repository.HistorialRepository
}

func NewProductoService(
	productos repository.ProductoRepository,
	categorias repository.CategoriaRepository,
	historial repository.HistorialRepository,
) ProductoService {
	return &productoService{productos: productos, categorias: categorias, historial: historial}
}

func (s *productoService) Listar(ctx context.Context) []dto.ProductoResponse {
	productos := s.productos.Listar(ctx)
	out := make([]dto.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		out = append(out, productoToResponse(p))
	}
	return out
}

func (s *productoService) ObtenerPorID(ctx context.Context, id string) (*dto.ProductoResponse, error) {
	p, err := s.productos.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, errors.New("producto no encontrado")
	}
	resp := productoToResponse(*p)
	return &resp, nil
}

func (s *productoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	if !s.categorias.Existe(ctx, req.Categoria) {
		return nil, errors.New("la categoría no existe")
	}
	ingreso := req.IngresoEl
	if ingreso == "" {
		ingreso = time.Now().UTC().Format("2006-01-02")
	}
	p := model.Producto{
		ID:        uuid.NewString(),
		Nombre:    req.Nombre,
		Categoria: req.Categoria,
		Costo:     req.Costo,
		Precio:    req.Precio,
		Stock:     req.Stock,
		IngresoEl: ingreso,
	}
	if err := s.productos.Crear(ctx, p); err != nil {
		return nil, err
	}
	resp := productoToResponse(p)
	return &resp, nil
}

// Actualizar applies a partial update and prepends a history entry holding
// the pre-update snapshot plus the delta that was applied.
func (s *productoService) Actualizar(ctx context.Context, id string, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	antes, err := s.productos.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, errors.New("producto no encontrado")
	}

	cambios := model.CambiosProducto{
		Nombre:    req.Nombre,
		Categoria: req.Categoria,
		Costo:     req.Costo,
		Precio:    req.Precio,
		Stock:     req.Stock,
		IngresoEl: req.IngresoEl,
	}

	p := *antes
	if req.Nombre != nil {
		p.Nombre = *req.Nombre
	}
	if req.Categoria != nil {
		if !s.categorias.Existe(ctx, *req.Categoria) {
			return nil, errors.New("la categoría no existe")
		}
		p.Categoria = *req.Categoria
	}
	if req.Costo != nil {
		p.Costo = *req.Costo
	}
	if req.Precio != nil {
		p.Precio = *req.Precio
	}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}
	if req.IngresoEl != nil {
		p.IngresoEl = *req.IngresoEl
	}

	if err := s.productos.Reemplazar(ctx, p); err != nil {
		return nil, err
	}
	_ = s.historial.Agregar(ctx, id, model.HistorialProducto{
		Ts:      time.Now().UTC().Format(time.RFC3339),
		Antes:   antes.Snapshot(),
		Cambios: cambios,
	})

	resp := productoToResponse(p)
	return &resp, nil
}

// Eliminar removes the product from the catalog. Ledger rows and debt items
// keep referencing the id; historical reads fall back to a "-" label.
func (s *productoService) Eliminar(ctx context.Context, id string) error {
	if err := s.productos.Eliminar(ctx, id); err != nil {
		return errors.New("producto no encontrado")
	}
	return nil
}

func (s *productoService) Historial(ctx context.Context, id string) (*dto.HistorialProductoResponse, error) {
	if _, err := s.productos.ObtenerPorID(ctx, id); err != nil {
		return nil, errors.New("producto no encontrado")
	}
	return &dto.HistorialProductoResponse{
		ProductoID: id,
		Entradas:   s.historial.ListarPorProducto(ctx, id),
	}, nil
}

func productoToResponse(p model.Producto) dto.ProductoResponse {
	return dto.ProductoResponse{
		ID:        p.ID,
		Nombre:    p.Nombre,
		Categoria: p.Categoria,
		Costo:     p.Costo,
		Precio:    p.Precio,
		Stock:     p.Stock,
		IngresoEl: p.IngresoEl,
	}
}
