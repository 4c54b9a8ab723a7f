package service

import (
	"context"
	"errors"
	"time"

	"licoreria/internal/dto"
	"licoreria/internal/model"
	"licoreria/internal/repository"

	"github.com/shopspring/decimal"
)

type CajaService interface {
	Reporte(ctx context.Context, fecha string) (*dto.ReporteCajaResponse, error)
	GuardarApertura(ctx context.Context, fecha string, monto decimal.Decimal) (*dto.ReporteCajaResponse, error)
	Cerrar(ctx context.Context, fecha string) (*dto.ReporteCajaResponse, error)
	Reabrir(ctx context.Context, fecha string) (*dto.ReporteCajaResponse, error)
}

type cajaService struct {
	caja      repository.CajaRepository
	ventas    repository.VentaRepository
	productos repository.ProductoRepository
}

func NewCajaService(
	caja repository.CajaRepository,
	ventas repository.VentaRepository,
	productos repository.ProductoRepository,
) CajaService {
	return &cajaService{caja: caja, ventas: ventas, productos: productos}
}

// ── Reporte ──────────────────────────────────────────────────────────────────
// Arqueo del día. Las filas "abono" no cuentan como venta (total y desglose
// por método) pero sí mueven efectivo: recibido y devuelto las incluyen.
// EfectivoNeto = apertura + recibido − devuelto.

func (s *cajaService) Reporte(ctx context.Context, fecha string) (*dto.ReporteCajaResponse, error) {
	if _, err := time.Parse("2006-01-02", fecha); err != nil {
		return nil, errors.New("fecha inválida, se espera AAAA-MM-DD")
	}

	dia := s.ventas.ListarPorDia(ctx, fecha)

	totalVentas := decimal.Zero
	recibido := decimal.Zero
	devuelto := decimal.Zero
	porMetodo := map[string]decimal.Decimal{
		model.MetodoEfectivo:      decimal.Zero,
		model.MetodoTransferencia: decimal.Zero,
		model.MetodoFiado:         decimal.Zero,
	}
	movimientos := make([]dto.MovimientoCajaResponse, 0, len(dia))

	for _, v := range dia {
		if v.Tipo != model.TipoAbono {
			totalVentas = totalVentas.Add(v.Subtotal())
			porMetodo[v.Metodo] = porMetodo[v.Metodo].Add(v.Subtotal())
		}
		if v.Metodo == model.MetodoEfectivo {
			recibido = recibido.Add(v.Recibido)
			devuelto = devuelto.Add(v.Vuelto)
		}
		movimientos = append(movimientos, dto.MovimientoCajaResponse{
			ID:             v.ID,
			Etiqueta:       s.etiqueta(ctx, v),
			Cantidad:       v.Cantidad,
			PrecioUnitario: v.PrecioUnitario,
			Subtotal:       v.Subtotal(),
			Metodo:         v.Metodo,
			Tipo:           v.Tipo,
		})
	}

	apertura := s.caja.Apertura(ctx, fecha)
	return &dto.ReporteCajaResponse{
		Fecha:            fecha,
		Apertura:         apertura,
		TotalVentas:      totalVentas,
		EfectivoRecibido: recibido,
		EfectivoDevuelto: devuelto,
		EfectivoNeto:     apertura.Add(recibido).Sub(devuelto),
		VentasPorMetodo:  porMetodo,
		Cerrada:          s.caja.Cerrada(ctx, fecha),
		Movimientos:      movimientos,
	}, nil
}

func (s *cajaService) etiqueta(ctx context.Context, v model.Venta) string {
	if v.Tipo == model.TipoAbono {
		if v.Nota != "" {
			return v.Nota
		}
		return "Abono de deuda"
	}
	if p, err := s.productos.ObtenerPorID(ctx, v.ProductoID); err == nil {
		return p.Nombre
	}
	return "-"
}

func (s *cajaService) GuardarApertura(ctx context.Context, fecha string, monto decimal.Decimal) (*dto.ReporteCajaResponse, error) {
	if _, err := time.Parse("2006-01-02", fecha); err != nil {
		return nil, errors.New("fecha inválida, se espera AAAA-MM-DD")
	}
	if monto.IsNegative() {
		return nil, errors.New("la apertura no puede ser negativa")
	}
	if err := s.caja.GuardarApertura(ctx, fecha, monto); err != nil {
		return nil, err
	}
	return s.Reporte(ctx, fecha)
}

func (s *cajaService) Cerrar(ctx context.Context, fecha string) (*dto.ReporteCajaResponse, error) {
	return s.marcar(ctx, fecha, true)
}

func (s *cajaService) Reabrir(ctx context.Context, fecha string) (*dto.ReporteCajaResponse, error) {
	return s.marcar(ctx, fecha, false)
}

func (s *cajaService) marcar(ctx context.Context, fecha string, cerrada bool) (*dto.ReporteCajaResponse, error) {
	if _, err := time.Parse("2006-01-02", fecha); err != nil {
		return nil, errors.New("fecha inválida, se espera AAAA-MM-DD")
	}
	if err := s.caja.GuardarCierre(ctx, fecha, cerrada); err != nil {
		return nil, err
	}
	return s.Reporte(ctx, fecha)
}
