package handler

import (
	"net/http"

	"licoreria/internal/service"

	"github.com/gin-gonic/gin"
)

type ResumenHandler struct{ svc service.ResumenService }

func NewResumenHandler(svc service.ResumenService) *ResumenHandler {
	return &ResumenHandler{svc: svc}
}

// Obtener godoc
// @Summary      KPIs del negocio
// @Description  Valor del inventario a costo y a precio, ventas acumuladas, utilidad bruta y total adeudado.
// @Tags         resumen
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.ResumenResponse
// @Router       /v1/resumen [get]
func (h *ResumenHandler) Obtener(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Obtener(c.Request.Context()))
}
