package service

import (
	"context"

	"licoreria/internal/dto"
	"licoreria/internal/model"
	"licoreria/internal/repository"

	"github.com/shopspring/decimal"
)

type ResumenService interface {
	Obtener(ctx context.Context) *dto.ResumenResponse
}

type resumenService struct {
	productos repository.ProductoRepository
	ventas    repository.VentaRepository
	deudas    repository.DeudaRepository
}

func NewResumenService(
	productos repository.ProductoRepository,
	ventas repository.VentaRepository,
	deudas repository.DeudaRepository,
) ResumenService {
	return &resumenService{productos: productos, ventas: ventas, deudas: deudas}
}

// Obtener recomputes the dashboard KPIs by full scan on every call.
// La utilidad bruta usa el costo vigente del producto; filas cuyo producto ya
// no existe (o filas de abono, sin producto) no aportan utilidad.
func (s *resumenService) Obtener(ctx context.Context) *dto.ResumenResponse {
	productos := s.productos.Listar(ctx)
	ventas := s.ventas.Listar(ctx)
	deudas := s.deudas.Listar(ctx)

	costos := make(map[string]decimal.Decimal, len(productos))
	invCosto := decimal.Zero
	invPrecio := decimal.Zero
	for _, p := range productos {
		stock := decimalDe(p.Stock)
		invCosto = invCosto.Add(p.Costo.Mul(stock))
		invPrecio = invPrecio.Add(p.Precio.Mul(stock))
		costos[p.ID] = p.Costo
	}

	acumulado := decimal.Zero
	utilidad := decimal.Zero
	for _, v := range ventas {
		acumulado = acumulado.Add(v.Subtotal())
		if costo, ok := costos[v.ProductoID]; ok {
			utilidad = utilidad.Add(v.PrecioUnitario.Sub(costo).Mul(decimalDe(v.Cantidad)))
		}
	}

	adeudado := decimal.Zero
	conDeuda := map[string]struct{}{}
	for _, d := range deudas {
		if d.Estado == model.DeudaPagada {
			continue
		}
		adeudado = adeudado.Add(d.Total)
		conDeuda[d.Cliente] = struct{}{}
	}

	return &dto.ResumenResponse{
		InventarioCosto:    invCosto,
		InventarioPrecio:   invPrecio,
		VentasAcumuladas:   acumulado,
		UtilidadBruta:      utilidad,
		TotalAdeudado:      adeudado,
		ClientesConDeuda:   len(conDeuda),
		ProductosDistintos: len(productos),
		VentasRegistradas:  len(ventas),
	}
}

func decimalDe(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}
