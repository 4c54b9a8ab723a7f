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

type ClienteService interface {
	Listar(ctx context.Context, q string) []dto.ClienteResponse
	ObtenerPorID(ctx context.Context, id string) (*dto.ClienteResponse, error)
	Crear(ctx context.Context, req dto.CrearClienteRequest) (*dto.ClienteResponse, error)
	Actualizar(ctx context.Context, id string, req dto.ActualizarClienteRequest) (*dto.ClienteResponse, error)
	Eliminar(ctx context.Context, id string) error
}

type clienteService struct {
	clientes repository.ClienteRepository
	deudas   repository.DeudaRepository
}

func NewClienteService(clientes repository.ClienteRepository, deudas repository.DeudaRepository) ClienteService {
	return &clienteService{clientes: clientes, deudas: deudas}
}

func (s *clienteService) Listar(ctx context.Context, q string) []dto.ClienteResponse {
	clientes := s.clientes.Buscar(ctx, q)
	out := make([]dto.ClienteResponse, 0, len(clientes))
	for _, c := range clientes {
		out = append(out, clienteToResponse(c))
	}
	return out
}

func (s *clienteService) ObtenerPorID(ctx context.Context, id string) (*dto.ClienteResponse, error) {
	c, err := s.clientes.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, errors.New("cliente no encontrado")
	}
	resp := clienteToResponse(*c)
	return &resp, nil
}

func (s *clienteService) Crear(ctx context.Context, req dto.CrearClienteRequest) (*dto.ClienteResponse, error) {
	c := model.Cliente{
		ID:       uuid.NewString(),
		Nombre:   req.Nombre,
		Doc:      req.Doc,
		Telefono: req.Telefono,
		CreadoEl: time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.clientes.Crear(ctx, c); err != nil {
		return nil, err
	}
	resp := clienteToResponse(c)
	return &resp, nil
}

// Actualizar edita la ficha y propaga nombre y teléfono a las deudas del
// cliente, para que el libro de fiados muestre siempre el dato vigente.
func (s *clienteService) Actualizar(ctx context.Context, id string, req dto.ActualizarClienteRequest) (*dto.ClienteResponse, error) {
	anterior, err := s.clientes.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, errors.New("cliente no encontrado")
	}

	c := *anterior
	c.Nombre = req.Nombre
	c.Doc = req.Doc
	c.Telefono = req.Telefono

	if err := s.clientes.Reemplazar(ctx, c); err != nil {
		return nil, err
	}
	if err := s.deudas.ActualizarContacto(ctx, id, anterior.Nombre, c.Nombre, c.Telefono); err != nil {
		return nil, err
	}

	resp := clienteToResponse(c)
	return &resp, nil
}

// Eliminar borra la ficha. Las deudas existentes no se tocan: conservan el
// último nombre y teléfono conocidos.
func (s *clienteService) Eliminar(ctx context.Context, id string) error {
	if err := s.clientes.Eliminar(ctx, id); err != nil {
		return errors.New("cliente no encontrado")
	}
	return nil
}

func clienteToResponse(c model.Cliente) dto.ClienteResponse {
	return dto.ClienteResponse{
		ID:       c.ID,
		Nombre:   c.Nombre,
		Doc:      c.Doc,
		Telefono: c.Telefono,
		CreadoEl: c.CreadoEl,
	}
}
