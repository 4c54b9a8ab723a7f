package handler

import (
	"net/http"

	"licoreria/internal/apierror"
	"licoreria/internal/dto"
	"licoreria/internal/service"

	"github.com/gin-gonic/gin"
)

type CategoriasHandler struct{ svc service.CategoriaService }

func NewCategoriasHandler(svc service.CategoriaService) *CategoriasHandler {
	return &CategoriasHandler{svc: svc}
}

// Listar godoc
// @Summary      Listar categorías
// @Tags         categorias
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.CategoriaResponse
// @Router       /v1/categorias [get]
func (h *CategoriasHandler) Listar(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Listar(c.Request.Context()))
}

// Crear godoc
// @Summary      Crear una categoría
// @Tags         categorias
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearCategoriaRequest true "Nombre"
// @Success      201 {object} dto.CategoriaResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/categorias [post]
func (h *CategoriasHandler) Crear(c *gin.Context) {
	var req dto.CrearCategoriaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Renombrar godoc
// @Summary      Renombrar una categoría
// @Description  Cambia el nombre y lo propaga a todos los productos de la categoría.
// @Tags         categorias
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        nombre path string                        true "Nombre actual"
// @Param        body   body dto.RenombrarCategoriaRequest true "Nombre nuevo"
// @Success      200 {object} dto.CategoriaResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/categorias/{nombre} [put]
func (h *CategoriasHandler) Renombrar(c *gin.Context) {
	var req dto.RenombrarCategoriaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Renombrar(c.Request.Context(), c.Param("nombre"), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar godoc
// @Summary      Eliminar una categoría
// @Description  Rechazada mientras algún producto la referencie.
// @Tags         categorias
// @Security     BearerAuth
// @Param        nombre path string true "Nombre"
// @Success      204
// @Failure      409 {object} apierror.APIError
// @Router       /v1/categorias/{nombre} [delete]
func (h *CategoriasHandler) Eliminar(c *gin.Context) {
	if err := h.svc.Eliminar(c.Request.Context(), c.Param("nombre")); err != nil {
		c.JSON(http.StatusConflict, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}
