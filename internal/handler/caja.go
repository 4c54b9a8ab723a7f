package handler

import (
	"fmt"
	"net/http"

	"licoreria/internal/apierror"
	"licoreria/internal/dto"
	"licoreria/internal/infra"
	"licoreria/internal/service"

	"github.com/gin-gonic/gin"
)

type CajaHandler struct{ svc service.CajaService }

func NewCajaHandler(svc service.CajaService) *CajaHandler { return &CajaHandler{svc: svc} }

// Reporte godoc
// @Summary      Arqueo del día
// @Description  Reconciliación de caja de la fecha: apertura, total vendido, desglose por método y efectivo neto esperado en el cajón.
// @Tags         caja
// @Produce      json
// @Security     BearerAuth
// @Param        fecha path string true "Fecha AAAA-MM-DD"
// @Success      200 {object} dto.ReporteCajaResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/caja/{fecha}/reporte [get]
func (h *CajaHandler) Reporte(c *gin.Context) {
	resp, err := h.svc.Reporte(c.Request.Context(), c.Param("fecha"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ReportePDF godoc
// @Summary      Arqueo del día en PDF
// @Tags         caja
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        fecha path string true "Fecha AAAA-MM-DD"
// @Success      200 {file} binary
// @Failure      400 {object} apierror.APIError
// @Router       /v1/caja/{fecha}/reporte.pdf [get]
func (h *CajaHandler) ReportePDF(c *gin.Context) {
	fecha := c.Param("fecha")
	reporte, err := h.svc.Reporte(c.Request.Context(), fecha)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	pdf, err := infra.GenerarReporteCajaPDF(reporte)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("No se pudo generar el PDF"))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=caja_%s.pdf", fecha))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// GuardarApertura godoc
// @Summary      Fijar la apertura del día
// @Description  Registra o corrige la base de efectivo con la que abre el cajón.
// @Tags         caja
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        fecha path string                     true "Fecha AAAA-MM-DD"
// @Param        body  body dto.GuardarAperturaRequest true "Monto de apertura"
// @Success      200 {object} dto.ReporteCajaResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/caja/{fecha}/apertura [put]
func (h *CajaHandler) GuardarApertura(c *gin.Context) {
	var req dto.GuardarAperturaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.GuardarApertura(c.Request.Context(), c.Param("fecha"), req.Monto)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Cerrar godoc
// @Summary      Cerrar la caja del día
// @Description  Marca el día como cerrado. Las ventas de ese día quedan bloqueadas hasta reabrir.
// @Tags         caja
// @Produce      json
// @Security     BearerAuth
// @Param        fecha path string true "Fecha AAAA-MM-DD"
// @Success      200 {object} dto.ReporteCajaResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/caja/{fecha}/cerrar [post]
func (h *CajaHandler) Cerrar(c *gin.Context) {
	resp, err := h.svc.Cerrar(c.Request.Context(), c.Param("fecha"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Reabrir godoc
// @Summary      Reabrir la caja del día
// @Tags         caja
// @Produce      json
// @Security     BearerAuth
// @Param        fecha path string true "Fecha AAAA-MM-DD"
// @Success      200 {object} dto.ReporteCajaResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/caja/{fecha}/reabrir [post]
func (h *CajaHandler) Reabrir(c *gin.Context) {
	resp, err := h.svc.Reabrir(c.Request.Context(), c.Param("fecha"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}
