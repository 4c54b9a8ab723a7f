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

type VentaService interface {
	Registrar(ctx context.Context, req dto.RegistrarVentaRequest) (*dto.VentaResponse, error)
	Listar(ctx context.Context) (*dto.VentaListResponse, error)
	ListarPorDia(ctx context.Context, fecha string) (*dto.VentaListResponse, error)
}

type ventaService struct {
	ventas    repository.VentaRepository
	productos repository.ProductoRepository
	clientes  repository.ClienteRepository
	deudas    repository.DeudaRepository
	caja      repository.CajaRepository
}

func NewVentaService(
	ventas repository.VentaRepository,
	productos repository.ProductoRepository,
	clientes repository.ClienteRepository,
	deudas repository.DeudaRepository,
	caja repository.CajaRepository,
) VentaService {
	return &ventaService{
		ventas:    ventas,
		productos: productos,
		clientes:  clientes,
		deudas:    deudas,
		caja:      caja,
	}
}

// ── Registrar ────────────────────────────────────────────────────────────────
// Orden de operaciones: validar caja y cantidad, descontar stock (piso en 0),
// asentar la venta y, si es fiado, acumular sobre la deuda abierta del cliente.

func (s *ventaService) Registrar(ctx context.Context, req dto.RegistrarVentaRequest) (*dto.VentaResponse, error) {
	ahora := time.Now().UTC()
	hoy := ahora.Format("2006-01-02")

	if s.caja.Cerrada(ctx, hoy) {
		return nil, errors.New("La caja de hoy está cerrada. Reábrala desde Caja para registrar ventas")
	}
	if req.Cantidad <= 0 {
		return nil, errors.New("la cantidad debe ser mayor que cero")
	}

	p, err := s.productos.ObtenerPorID(ctx, req.ProductoID)
	if err != nil {
		return nil, errors.New("producto no encontrado")
	}
	total := p.Precio.Mul(decimalDe(req.Cantidad))

	venta := model.Venta{
		ID:             uuid.NewString(),
		Fecha:          ahora,
		ProductoID:     p.ID,
		Cantidad:       req.Cantidad,
		PrecioUnitario: p.Precio,
		Metodo:         req.Metodo,
		Tipo:           model.TipoVenta,
	}

	var cliente *model.Cliente
	switch req.Metodo {
	case model.MetodoEfectivo:
		if req.Recibido.LessThan(total) {
			return nil, errors.New("el monto recibido no cubre el total a cobrar")
		}
		venta.Recibido = req.Recibido
		venta.Vuelto = req.Recibido.Sub(total)
	case model.MetodoFiado:
		if req.ClienteID == "" {
			return nil, errors.New("una venta fiada requiere un cliente")
		}
		cliente, err = s.clientes.ObtenerPorID(ctx, req.ClienteID)
		if err != nil {
			return nil, errors.New("cliente no encontrado")
		}
	}

	if err := s.productos.DescontarStock(ctx, p.ID, req.Cantidad); err != nil {
		return nil, err
	}
	if err := s.ventas.Agregar(ctx, venta); err != nil {
		return nil, err
	}

	if req.Metodo == model.MetodoFiado {
		s.acumularDeuda(ctx, cliente, p, venta, req.Nota)
	}

	resp := ventaToResponse(venta)
	resp.Producto = p.Nombre
	return &resp, nil
}

// acumularDeuda merges a credit sale into the client's open debt, or opens a
// new one. One open debt per client: three credit sales produce one debt with
// three items, never three debts.
func (s *ventaService) acumularDeuda(ctx context.Context, cliente *model.Cliente, p *model.Producto, venta model.Venta, nota string) {
	ts := venta.Fecha.Format(time.RFC3339)
	item := model.DeudaItem{
		Ts:             ts,
		ProductoID:     p.ID,
		Nombre:         p.Nombre,
		Cantidad:       venta.Cantidad,
		PrecioUnitario: venta.PrecioUnitario,
	}
	monto := venta.Subtotal()

	if d, ok := s.deudas.BuscarAbierta(ctx, cliente.ID, cliente.Nombre); ok {
		d.Total = d.Total.Add(monto)
		d.Items = append(d.Items, item)
		d.ActualizadaEl = ts
		_ = s.deudas.Reemplazar(ctx, *d)
		return
	}

	if nota == "" {
		nota = "Venta a crédito de " + p.Nombre
	}
	_ = s.deudas.Crear(ctx, model.Deuda{
		ID:        uuid.NewString(),
		ClienteID: cliente.ID,
		Cliente:   cliente.Nombre,
		Telefono:  cliente.Telefono,
		Nota:      nota,
		Estado:    model.DeudaPendiente,
		Total:     monto,
		Items:     []model.DeudaItem{item},
		CreadaEl:  ts,
	})
}

func (s *ventaService) Listar(ctx context.Context) (*dto.VentaListResponse, error) {
	return s.responder(ctx, s.ventas.Listar(ctx))
}

func (s *ventaService) ListarPorDia(ctx context.Context, fecha string) (*dto.VentaListResponse, error) {
	if _, err := time.Parse("2006-01-02", fecha); err != nil {
		return nil, errors.New("fecha inválida, se espera AAAA-MM-DD")
	}
	return s.responder(ctx, s.ventas.ListarPorDia(ctx, fecha))
}

func (s *ventaService) responder(ctx context.Context, ventas []model.Venta) (*dto.VentaListResponse, error) {
	data := make([]dto.VentaResponse, 0, len(ventas))
	for _, v := range ventas {
		resp := ventaToResponse(v)
		if v.ProductoID != "" {
			if p, err := s.productos.ObtenerPorID(ctx, v.ProductoID); err == nil {
				resp.Producto = p.Nombre
			}
		}
		data = append(data, resp)
	}
	return &dto.VentaListResponse{Data: data, Total: len(data)}, nil
}

func ventaToResponse(v model.Venta) dto.VentaResponse {
	return dto.VentaResponse{
		ID:             v.ID,
		Fecha:          v.Fecha.Format(time.RFC3339),
		ProductoID:     v.ProductoID,
		Cantidad:       v.Cantidad,
		PrecioUnitario: v.PrecioUnitario,
		Subtotal:       v.Subtotal(),
		Metodo:         v.Metodo,
		Recibido:       v.Recibido,
		Vuelto:         v.Vuelto,
		Tipo:           v.Tipo,
		Nota:           v.Nota,
	}
}
