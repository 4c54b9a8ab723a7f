package handler

import (
	"net/http"

	"licoreria/internal/apierror"
	"licoreria/internal/dto"
	"licoreria/internal/service"

	"github.com/gin-gonic/gin"
)

type DeudasHandler struct{ svc service.DeudaService }

func NewDeudasHandler(svc service.DeudaService) *DeudasHandler { return &DeudasHandler{svc: svc} }

// Listar godoc
// @Summary      Listar deudas
// @Tags         deudas
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.DeudaResponse
// @Router       /v1/deudas [get]
func (h *DeudasHandler) Listar(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Listar(c.Request.Context()))
}

// ObtenerPorID godoc
// @Summary      Obtener una deuda
// @Tags         deudas
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "ID de la deuda"
// @Success      200 {object} dto.DeudaResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/deudas/{id} [get]
func (h *DeudasHandler) ObtenerPorID(c *gin.Context) {
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RegistrarAbono godoc
// @Summary      Registrar un abono
// @Description  Aplica un pago parcial o total a la deuda. El total baja con piso en 0; al llegar a 0 la deuda pasa a "pagado". El pago se espeja en el libro de ventas como fila "abono".
// @Tags         deudas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                    true "ID de la deuda"
// @Param        body body dto.RegistrarAbonoRequest true "Monto y método"
// @Success      200  {object} dto.DeudaResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/deudas/{id}/abonos [post]
func (h *DeudasHandler) RegistrarAbono(c *gin.Context) {
	var req dto.RegistrarAbonoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarAbono(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}
