package service

import (
	"context"
	"errors"
	"time"

	"licoreria/internal/dto"
	"licoreria/internal/model"
	"licoreria/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DeudaService interface {
	Listar(ctx context.Context) []dto.DeudaResponse
	ObtenerPorID(ctx context.Context, id string) (*dto.DeudaResponse, error)
	RegistrarAbono(ctx context.Context, deudaID string, req dto.RegistrarAbonoRequest) (*dto.DeudaResponse, error)
}

type deudaService struct {
	deudas repository.DeudaRepository
	ventas repository.VentaRepository
}

func NewDeudaService(deudas repository.DeudaRepository, ventas repository.VentaRepository) DeudaService {
	return &deudaService{deudas: deudas, ventas: ventas}
}

// ── RegistrarAbono ───────────────────────────────────────────────────────────
// Baja el total con piso en 0, asienta el pago sobre la deuda y lo espeja en
// el libro de ventas como fila "abono" para que el arqueo de caja lo incluya.
// Un abono mayor al saldo se acepta y deja el total en 0; no se registra
// crédito a favor del cliente.

func (s *deudaService) RegistrarAbono(ctx context.Context, deudaID string, req dto.RegistrarAbonoRequest) (*dto.DeudaResponse, error) {
	if !req.Monto.IsPositive() {
		return nil, errors.New("el monto del abono debe ser mayor que cero")
	}

	d, err := s.deudas.ObtenerPorID(ctx, deudaID)
	if err != nil {
		return nil, errors.New("deuda no encontrada")
	}

	ahora := time.Now().UTC()
	ts := ahora.Format(time.RFC3339)

	pago := model.Pago{
		Ts:     ts,
		Monto:  req.Monto,
		Nota:   req.Nota,
		Metodo: req.Metodo,
	}
	if req.Metodo == model.MetodoEfectivo {
		if req.Recibido.LessThan(req.Monto) {
			return nil, errors.New("el monto recibido no cubre el abono")
		}
		pago.Recibido = req.Recibido
		pago.Vuelto = req.Recibido.Sub(req.Monto)
	}

	nuevoTotal := d.Total.Sub(req.Monto)
	if nuevoTotal.IsNegative() {
		nuevoTotal = decimal.Zero
	}

	d.Total = nuevoTotal
	d.Pagos = append(d.Pagos, pago)
	d.UltimoPagoEl = ts
	if nuevoTotal.IsZero() {
		d.Estado = model.DeudaPagada
	} else if d.Estado == "" {
		d.Estado = model.DeudaPendiente
	}

	if err := s.deudas.Reemplazar(ctx, *d); err != nil {
		return nil, err
	}

	// Espejo en el libro de ventas: cantidad 1, precio unitario = monto.
	_ = s.ventas.Agregar(ctx, model.Venta{
		ID:             uuid.NewString(),
		Fecha:          ahora,
		Cantidad:       1,
		PrecioUnitario: req.Monto,
		Metodo:         req.Metodo,
		Recibido:       pago.Recibido,
		Vuelto:         pago.Vuelto,
		Tipo:           model.TipoAbono,
		Nota:           "Abono deuda — " + d.Cliente,
	})

	resp := deudaToResponse(*d)
	return &resp, nil
}

func (s *deudaService) Listar(ctx context.Context) []dto.DeudaResponse {
	deudas := s.deudas.Listar(ctx)
	out := make([]dto.DeudaResponse, 0, len(deudas))
	for _, d := range deudas {
		out = append(out, deudaToResponse(d))
	}
	return out
}

func (s *deudaService) ObtenerPorID(ctx context.Context, id string) (*dto.DeudaResponse, error) {
	d, err := s.deudas.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, errors.New("deuda no encontrada")
	}
	resp := deudaToResponse(*d)
	return &resp, nil
}

func deudaToResponse(d model.Deuda) dto.DeudaResponse {
	items := make([]dto.ItemDeudaResponse, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, dto.ItemDeudaResponse{
			Ts:             it.Ts,
			ProductoID:     it.ProductoID,
			Producto:       it.Nombre,
			Cantidad:       it.Cantidad,
			PrecioUnitario: it.PrecioUnitario,
		})
	}
	pagos := make([]dto.PagoResponse, 0, len(d.Pagos))
	for _, p := range d.Pagos {
		pagos = append(pagos, dto.PagoResponse{
			Ts:       p.Ts,
			Monto:    p.Monto,
			Metodo:   p.Metodo,
			Recibido: p.Recibido,
			Vuelto:   p.Vuelto,
			Nota:     p.Nota,
		})
	}
	estado := d.Estado
	if estado == "" {
		estado = model.DeudaPendiente
	}
	return dto.DeudaResponse{
		ID:           d.ID,
		ClienteID:    d.ClienteID,
		Cliente:      d.Cliente,
		Telefono:     d.Telefono,
		Nota:         d.Nota,
		Estado:       estado,
		Total:        d.Total,
		Items:        items,
		Pagos:        pagos,
		CreadaEl:     d.CreadaEl,
		UltimoPagoEl: d.UltimoPagoEl,
	}
}
