package handlers

import (
	"errors"
	"log"
	"net/http"

	request "refrigeracao_os/internal/adapter/http/dto/request"
	response "refrigeracao_os/internal/adapter/http/dto/response"
	"refrigeracao_os/internal/domain/entities"
	"refrigeracao_os/internal/domain/pricing"
	"refrigeracao_os/internal/usecase"
	"refrigeracao_os/pkg"

	"github.com/gin-gonic/gin"
)

type PriceTableHandler struct {
	usecase usecase.IPriceTableUseCase
}

func NewPriceTableHandler(uc usecase.IPriceTableUseCase) *PriceTableHandler {
	return &PriceTableHandler{usecase: uc}
}

// Get godoc
// @Summary      Current price table
// @Tags         price-table
// @Produce      json
// @Success      200  {object}  response.PriceTableResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /price-table [get]
func (h *PriceTableHandler) Get(c *gin.Context) {
	t, err := h.usecase.Get(c.Request.Context())
	if err != nil {
		abortWith(c, mapPriceTableError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPriceTable(t))
}

// ResolveInstallation godoc
// @Summary      Installation price for a category and capacity
// @Tags         price-table
// @Produce      json
// @Param        category  path  string  true  "equipment category"
// @Param        capacity  path  int     true  "capacity in BTU/h"
// @Success      200  {object}  response.PriceResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /price-table/installation/{category}/{capacity} [get]
func (h *PriceTableHandler) ResolveInstallation(c *gin.Context) {
	category := entities.EquipmentCategory(c.Param("category"))
	capacity, ok := entities.ParseCapacity(c.Param("capacity"))
	if !ok {
		abortWith(c, mapPriceTableError(pricing.ErrUnknownCapacity))
		return
	}

	price, err := h.usecase.ResolveInstallationPrice(c.Request.Context(), category, capacity)
	if err != nil {
		abortWith(c, mapPriceTableError(err))
		return
	}
	c.JSON(http.StatusOK, response.PriceResponse{Category: string(category), Capacity: int(capacity), Price: price})
}

// ResolveCleaning godoc
// @Summary      Cleaning price for a category
// @Tags         price-table
// @Produce      json
// @Param        category  path  string  true  "equipment category"
// @Success      200  {object}  response.PriceResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /price-table/cleaning/{category} [get]
func (h *PriceTableHandler) ResolveCleaning(c *gin.Context) {
	category := entities.EquipmentCategory(c.Param("category"))

	price, err := h.usecase.ResolveCleaningPrice(c.Request.Context(), category)
	if err != nil {
		abortWith(c, mapPriceTableError(err))
		return
	}
	c.JSON(http.StatusOK, response.PriceResponse{Category: string(category), Price: price})
}

// SetUniformInstallation godoc
// @Summary      Set the same installation price for every capacity of a category
// @Tags         price-table
// @Accept       json
// @Produce      json
// @Param        category  path  string                true  "equipment category"
// @Param        body      body  request.PriceRequest  true  "price text"
// @Success      200  {object}  response.PriceTableResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /price-table/installation/{category} [put]
func (h *PriceTableHandler) SetUniformInstallation(c *gin.Context) {
	var payload request.PriceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidRequest)
		return
	}
	category := entities.EquipmentCategory(c.Param("category"))

	t, err := h.usecase.SetUniformInstallationPrice(c.Request.Context(), category, string(payload.Price))
	if err != nil {
		log.Printf("[pricetable][handler] uniform write failed category=%s err=%v", category, err)
		abortWith(c, mapPriceTableError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPriceTable(t))
}

// SetInstallation godoc
// @Summary      Set one installation price cell
// @Tags         price-table
// @Accept       json
// @Produce      json
// @Param        category  path  string                true  "equipment category"
// @Param        capacity  path  int                   true  "capacity in BTU/h"
// @Param        body      body  request.PriceRequest  true  "price text"
// @Success      200  {object}  response.PriceTableResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /price-table/installation/{category}/{capacity} [put]
func (h *PriceTableHandler) SetInstallation(c *gin.Context) {
	var payload request.PriceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidRequest)
		return
	}
	category := entities.EquipmentCategory(c.Param("category"))
	capacity, ok := entities.ParseCapacity(c.Param("capacity"))
	if !ok {
		abortWith(c, mapPriceTableError(pricing.ErrUnknownCapacity))
		return
	}

	t, err := h.usecase.SetInstallationPrice(c.Request.Context(), category, capacity, string(payload.Price))
	if err != nil {
		log.Printf("[pricetable][handler] installation write failed category=%s capacity=%d err=%v", category, capacity, err)
		abortWith(c, mapPriceTableError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPriceTable(t))
}

// SetCleaning godoc
// @Summary      Set the cleaning price of a category
// @Tags         price-table
// @Accept       json
// @Produce      json
// @Param        category  path  string                true  "equipment category"
// @Param        body      body  request.PriceRequest  true  "price text"
// @Success      200  {object}  response.PriceTableResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /price-table/cleaning/{category} [put]
func (h *PriceTableHandler) SetCleaning(c *gin.Context) {
	var payload request.PriceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidRequest)
		return
	}
	category := entities.EquipmentCategory(c.Param("category"))

	t, err := h.usecase.SetCleaningPrice(c.Request.Context(), category, string(payload.Price))
	if err != nil {
		log.Printf("[pricetable][handler] cleaning write failed category=%s err=%v", category, err)
		abortWith(c, mapPriceTableError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPriceTable(t))
}

func mapPriceTableError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, pricing.ErrUnknownCategory):
		return pkg.NewDomainErrorSimple("UNKNOWN_CATEGORY", "Unknown equipment category", http.StatusBadRequest)
	case errors.Is(err, pricing.ErrUnknownCapacity):
		return pkg.NewDomainErrorSimple("UNKNOWN_CAPACITY", "Unknown capacity", http.StatusBadRequest)
	case errors.Is(err, pricing.ErrPriceNotFound):
		return pkg.NewDomainErrorSimple("PRICE_NOT_FOUND", "No price configured for this equipment", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
