package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"licoreria/internal/repository"
	"licoreria/internal/service"
	"licoreria/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nuevoRouterVentas(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx := context.Background()
	st := store.NewMemoryStore()

	productos := repository.NewProductoRepository(ctx, st)
	clientes := repository.NewClienteRepository(ctx, st)
	ventas := repository.NewVentaRepository(ctx, st)
	deudas := repository.NewDeudaRepository(ctx, st)
	caja := repository.NewCajaRepository(ctx, st)

	h := NewVentasHandler(service.NewVentaService(ventas, productos, clientes, deudas, caja))

	r := gin.New()
	r.POST("/v1/ventas", h.Registrar)
	r.GET("/v1/ventas", h.Listar)
	return r
}

func TestPostVentaEfectivo(t *testing.T) {
	r := nuevoRouterVentas(t)

	body := `{"producto_id":"1","cantidad":2,"metodo":"Efectivo","recibido":10000}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/ventas", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"subtotal":"8000"`)
	assert.Contains(t, w.Body.String(), `"vuelto":"2000"`)
}

func TestPostVentaValidacion(t *testing.T) {
	r := nuevoRouterVentas(t)

	// Unknown method fails the oneof tag.
	body := `{"producto_id":"1","cantidad":1,"metodo":"Cheque"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/ventas", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Metodo")
}

func TestPostVentaJSONInvalido(t *testing.T) {
	r := nuevoRouterVentas(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/ventas", strings.NewReader(`{not json`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetVentasFiltraPorFecha(t *testing.T) {
	r := nuevoRouterVentas(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ventas?fecha=2026-01-15", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":0`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ventas?fecha=ayer", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
