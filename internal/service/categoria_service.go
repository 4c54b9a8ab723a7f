package service

import (
	"context"
	"errors"

	"licoreria/internal/dto"
	"licoreria/internal/repository"
)

type CategoriaService interface {
	Listar(ctx context.Context) []dto.CategoriaResponse
	Crear(ctx context.Context, req dto.CrearCategoriaRequest) (*dto.CategoriaResponse, error)
	Renombrar(ctx context.Context, anterior string, req dto.RenombrarCategoriaRequest) (*dto.CategoriaResponse, error)
	Eliminar(ctx context.Context, nombre string) error
}

type categoriaService struct {
	categorias repository.CategoriaRepository
	productos  repository.ProductoRepository
}

func NewCategoriaService(categorias repository.CategoriaRepository, productos repository.ProductoRepository) CategoriaService {
	return &categoriaService{categorias: categorias, productos: productos}
}

func (s *categoriaService) Listar(ctx context.Context) []dto.CategoriaResponse {
	nombres := s.categorias.Listar(ctx)
	out := make([]dto.CategoriaResponse, 0, len(nombres))
	for _, n := range nombres {
		out = append(out, dto.CategoriaResponse{
			Nombre: n,
			EnUso:  s.productos.CategoriaEnUso(ctx, n),
		})
	}
	return out
}

func (s *categoriaService) Crear(ctx context.Context, req dto.CrearCategoriaRequest) (*dto.CategoriaResponse, error) {
	if err := s.categorias.Agregar(ctx, req.Nombre); err != nil {
		return nil, err
	}
	return &dto.CategoriaResponse{Nombre: req.Nombre}, nil
}

// Renombrar cambia el nombre en la lista y lo propaga a todos los productos
// que referencian la categoría anterior.
func (s *categoriaService) Renombrar(ctx context.Context, anterior string, req dto.RenombrarCategoriaRequest) (*dto.CategoriaResponse, error) {
	if req.Nombre == anterior {
		return &dto.CategoriaResponse{Nombre: anterior, EnUso: s.productos.CategoriaEnUso(ctx, anterior)}, nil
	}
	if err := s.categorias.Renombrar(ctx, anterior, req.Nombre); err != nil {
		if errors.Is(err, repository.ErrNoEncontrado) {
			return nil, errors.New("categoría no encontrada")
		}
		return nil, err
	}
	if err := s.productos.RenombrarCategoria(ctx, anterior, req.Nombre); err != nil {
		return nil, err
	}
	return &dto.CategoriaResponse{Nombre: req.Nombre, EnUso: s.productos.CategoriaEnUso(ctx, req.Nombre)}, nil
}

func (s *categoriaService) Eliminar(ctx context.Context, nombre string) error {
	if s.productos.CategoriaEnUso(ctx, nombre) {
		return errors.New("no se puede eliminar: hay productos en esta categoría")
	}
	if err := s.categorias.Eliminar(ctx, nombre); err != nil {
		return errors.New("categoría no encontrada")
	}
	return nil
}
