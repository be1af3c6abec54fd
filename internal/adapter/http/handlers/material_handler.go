package handlers

import (
	"errors"
	"log"
	"net/http"

	request "refrigeracao_os/internal/adapter/http/dto/request"
	response "refrigeracao_os/internal/adapter/http/dto/response"
	"refrigeracao_os/internal/usecase"
	"refrigeracao_os/pkg"

	"github.com/gin-gonic/gin"
)

// MaterialHandler serves the material catalog.
type MaterialHandler struct {
	usecase usecase.IMaterialUseCase
}

func NewMaterialHandler(uc usecase.IMaterialUseCase) *MaterialHandler {
	return &MaterialHandler{usecase: uc}
}

// List godoc
// @Summary      List catalog materials
// @Tags         materials
// @Produce      json
// @Success      200  {array}   response.MaterialResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /materials [get]
func (h *MaterialHandler) List(c *gin.Context) {
	ms, err := h.usecase.List(c.Request.Context())
	if err != nil {
		abortWith(c, mapMaterialError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMaterials(ms))
}

// Create godoc
// @Summary      Create a catalog material
// @Tags         materials
// @Accept       json
// @Produce      json
// @Param        body  body  request.MaterialRequest  true  "material"
// @Success      201  {object}  response.MaterialResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /materials [post]
func (h *MaterialHandler) Create(c *gin.Context) {
	var payload request.MaterialRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidRequest)
		return
	}

	m, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		log.Printf("[material][handler] create failed name=%q err=%v", payload.Name, err)
		abortWith(c, mapMaterialError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromMaterial(m))
}

// Update godoc
// @Summary      Update a catalog material
// @Tags         materials
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "material id"
// @Param        body  body  request.MaterialPatchRequest  true  "fields to change"
// @Success      200  {object}  response.MaterialResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /materials/{id} [patch]
func (h *MaterialHandler) Update(c *gin.Context) {
	var payload request.MaterialPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Empty() {
		abortWith(c, errInvalidRequest)
		return
	}

	m, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		log.Printf("[material][handler] update failed id=%s err=%v", c.Param("id"), err)
		abortWith(c, mapMaterialError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMaterial(m))
}

// Delete godoc
// @Summary      Delete a catalog material
// @Description  Refused with 409 while persisted orders reference the material.
// @Tags         materials
// @Param        id  path  string  true  "material id"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /materials/{id} [delete]
func (h *MaterialHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		log.Printf("[material][handler] delete failed id=%s err=%v", c.Param("id"), err)
		abortWith(c, mapMaterialError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapMaterialError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidMaterialID), errors.Is(err, usecase.ErrInvalidMaterialName), errors.Is(err, usecase.ErrInvalidMaterialPrice):
		return pkg.NewDomainError("INVALID_MATERIAL", "Invalid material", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMaterialNotFound):
		return pkg.NewDomainErrorSimple("MATERIAL_NOT_FOUND", "Material not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMaterialInUse):
		return pkg.NewDomainErrorSimple("MATERIAL_IN_USE", "Material is used by existing orders", http.StatusConflict)
	default:
		return internalError(err)
	}
}
