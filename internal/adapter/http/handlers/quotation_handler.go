package handlers

import (
	"errors"
	"log"
	"net/http"

	request "refrigeracao_os/internal/adapter/http/dto/request"
	response "refrigeracao_os/internal/adapter/http/dto/response"
	"refrigeracao_os/internal/domain/pricing"
	"refrigeracao_os/internal/usecase"
	"refrigeracao_os/pkg"

	"github.com/gin-gonic/gin"
)

// QuotationHandler exposes quotation drafts. Every response carries totals
// recomputed from the draft lines.
type QuotationHandler struct {
	usecase usecase.IQuotationUseCase
}

func NewQuotationHandler(uc usecase.IQuotationUseCase) *QuotationHandler {
	return &QuotationHandler{usecase: uc}
}

// Create godoc
// @Summary      Start a quotation draft
// @Tags         quotations
// @Produce      json
// @Success      201  {object}  response.QuotationResponse
// @Router       /quotations [post]
func (h *QuotationHandler) Create(c *gin.Context) {
	d, err := h.usecase.Create(c.Request.Context())
	if err != nil {
		abortWith(c, mapQuotationError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromDraft(d))
}

// CreateFromOrder godoc
// @Summary      Start a draft from a persisted order
// @Tags         quotations
// @Produce      json
// @Param        order_id  path  string  true  "order id"
// @Success      201  {object}  response.QuotationResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /quotations/from-order/{order_id} [post]
func (h *QuotationHandler) CreateFromOrder(c *gin.Context) {
	d, err := h.usecase.CreateFromOrder(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		abortWith(c, mapQuotationError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromDraft(d))
}

// Get godoc
// @Summary      Get a draft with totals
// @Tags         quotations
// @Produce      json
// @Param        id  path  string  true  "draft id"
// @Success      200  {object}  response.QuotationResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /quotations/{id} [get]
func (h *QuotationHandler) Get(c *gin.Context) {
	d, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, mapQuotationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDraft(d))
}

// Discard godoc
// @Summary      Discard a draft
// @Tags         quotations
// @Param        id  path  string  true  "draft id"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /quotations/{id} [delete]
func (h *QuotationHandler) Discard(c *gin.Context) {
	if err := h.usecase.Discard(c.Request.Context(), c.Param("id")); err != nil {
		abortWith(c, mapQuotationError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// AddMaterial godoc
// @Summary      Add a material line
// @Description  Repeated materials become separate lines. Quantities below 1 are stored as 1.
// @Tags         quotations
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "draft id"
// @Param        body  body  request.AddMaterialRequest  true  "material and quantity"
// @Success      200  {object}  response.QuotationResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /quotations/{id}/materials [post]
func (h *QuotationHandler) AddMaterial(c *gin.Context) {
	var payload request.AddMaterialRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidRequest)
		return
	}
	h.respond(c, func() (pricing.Draft, error) {
		return h.usecase.AddMaterial(c.Request.Context(), c.Param("id"), payload.MaterialID, payload.Quantity)
	})
}

// UpdateMaterialQuantity godoc
// @Summary      Change the quantity of a material line
// @Tags         quotations
// @Accept       json
// @Produce      json
// @Param        id     path  string                   true  "draft id"
// @Param        index  path  int                      true  "line index"
// @Param        body   body  request.QuantityRequest  true  "quantity"
// @Success      200  {object}  response.QuotationResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /quotations/{id}/materials/{index} [patch]
func (h *QuotationHandler) UpdateMaterialQuantity(c *gin.Context) {
	index, ok := lineIndex(c)
	if !ok {
		abortWith(c, errInvalidIndex)
		return
	}
	var payload request.QuantityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidRequest)
		return
	}
	h.respond(c, func() (pricing.Draft, error) {
		return h.usecase.UpdateMaterialQuantity(c.Request.Context(), c.Param("id"), index, payload.Quantity)
	})
}

// RemoveMaterial godoc
// @Summary      Remove a material line
// @Tags         quotations
// @Produce      json
// @Param        id     path  string  true  "draft id"
// @Param        index  path  int     true  "line index"
// @Success      200  {object}  response.QuotationResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /quotations/{id}/materials/{index} [delete]
func (h *QuotationHandler) RemoveMaterial(c *gin.Context) {
	index, ok := lineIndex(c)
	if !ok {
		abortWith(c, errInvalidIndex)
		return
	}
	h.respond(c, func() (pricing.Draft, error) {
		return h.usecase.RemoveMaterial(c.Request.Context(), c.Param("id"), index)
	})
}

// AddService godoc
// @Summary      Add a service line
// @Description  Installation and cleaning lines without a value are priced from the price table.
// @Tags         quotations
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "draft id"
// @Param        body  body  request.ServiceLineRequest  true  "service line"
// @Success      200  {object}  response.QuotationResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /quotations/{id}/services [post]
func (h *QuotationHandler) AddService(c *gin.Context) {
	var payload request.ServiceLineRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidRequest)
		return
	}
	h.respond(c, func() (pricing.Draft, error) {
		return h.usecase.AddService(c.Request.Context(), c.Param("id"), payload.ToEntity())
	})
}

// UpdateService godoc
// @Summary      Replace a service line
// @Tags         quotations
// @Accept       json
// @Produce      json
// @Param        id     path  string                      true  "draft id"
// @Param        index  path  int                         true  "line index"
// @Param        body   body  request.ServiceLineRequest  true  "service line"
// @Success      200  {object}  response.QuotationResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /quotations/{id}/services/{index} [put]
func (h *QuotationHandler) UpdateService(c *gin.Context) {
	index, ok := lineIndex(c)
	if !ok {
		abortWith(c, errInvalidIndex)
		return
	}
	var payload request.ServiceLineRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidRequest)
		return
	}
	h.respond(c, func() (pricing.Draft, error) {
		return h.usecase.UpdateService(c.Request.Context(), c.Param("id"), index, payload.ToEntity())
	})
}

// RemoveService godoc
// @Summary      Remove a service line
// @Tags         quotations
// @Produce      json
// @Param        id     path  string  true  "draft id"
// @Param        index  path  int     true  "line index"
// @Success      200  {object}  response.QuotationResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /quotations/{id}/services/{index} [delete]
func (h *QuotationHandler) RemoveService(c *gin.Context) {
	index, ok := lineIndex(c)
	if !ok {
		abortWith(c, errInvalidIndex)
		return
	}
	h.respond(c, func() (pricing.Draft, error) {
		return h.usecase.RemoveService(c.Request.Context(), c.Param("id"), index)
	})
}

// SetDiscount godoc
// @Summary      Set the discount
// @Tags         quotations
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "draft id"
// @Param        body  body  request.DiscountRequest  true  "discount amount"
// @Success      200  {object}  response.QuotationResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /quotations/{id}/discount [put]
func (h *QuotationHandler) SetDiscount(c *gin.Context) {
	var payload request.DiscountRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidRequest)
		return
	}
	discount, err := payload.Resolve()
	if err != nil {
		abortWith(c, pkg.NewDomainErrorSimple("INVALID_DISCOUNT", "Discount must be a number", http.StatusBadRequest))
		return
	}
	h.respond(c, func() (pricing.Draft, error) {
		return h.usecase.SetDiscount(c.Request.Context(), c.Param("id"), discount)
	})
}

// Reset godoc
// @Summary      Clear every line and the discount
// @Tags         quotations
// @Produce      json
// @Param        id  path  string  true  "draft id"
// @Success      200  {object}  response.QuotationResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /quotations/{id}/reset [post]
func (h *QuotationHandler) Reset(c *gin.Context) {
	h.respond(c, func() (pricing.Draft, error) {
		return h.usecase.Reset(c.Request.Context(), c.Param("id"))
	})
}

// Submit godoc
// @Summary      Submit a draft as an order
// @Tags         quotations
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "draft id"
// @Param        body  body  request.SubmitRequest  true  "customer and address"
// @Success      201  {object}  response.OrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /quotations/{id}/submit [post]
func (h *QuotationHandler) Submit(c *gin.Context) {
	var payload request.SubmitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidRequest)
		return
	}

	id := c.Param("id")
	log.Printf("[quotation][handler] submit start id=%s", id)
	o, err := h.usecase.Submit(c.Request.Context(), id, payload.ToInput())
	if err != nil {
		log.Printf("[quotation][handler] submit failed id=%s err=%v", id, err)
		abortWith(c, mapQuotationError(err))
		return
	}
	log.Printf("[quotation][handler] submit success id=%s order_id=%s", id, o.ID)
	c.JSON(http.StatusCreated, response.FromOrder(o))
}

func (h *QuotationHandler) respond(c *gin.Context, op func() (pricing.Draft, error)) {
	d, err := op()
	if err != nil {
		abortWith(c, mapQuotationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDraft(d))
}

func mapQuotationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDraftID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrDraftNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found or expired", http.StatusNotFound)
	case errors.Is(err, pricing.ErrQuotationNotDraft):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_DRAFT", "Quotation was already submitted", http.StatusConflict)
	case errors.Is(err, pricing.ErrLineIndexOutOfRange):
		return pkg.NewDomainErrorSimple("LINE_NOT_FOUND", "Line not found", http.StatusNotFound)
	case errors.Is(err, pricing.ErrNegativeDiscount):
		return pkg.NewDomainErrorSimple("INVALID_DISCOUNT", "Discount must not be negative", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidServiceLine):
		return pkg.NewDomainErrorSimple("INVALID_SERVICE_LINE", "Invalid service type, category or capacity", http.StatusBadRequest)
	case errors.Is(err, pricing.ErrCustomerRequired):
		return pkg.NewDomainErrorSimple("CUSTOMER_REQUIRED", "Customer name is required", http.StatusUnprocessableEntity)
	case errors.Is(err, pricing.ErrCleaningCategoryRequired):
		return pkg.NewDomainError("CLEANING_CATEGORY_REQUIRED", err.Error(), err, http.StatusUnprocessableEntity)
	case errors.Is(err, pricing.ErrTooManyMaterialLines):
		return pkg.NewDomainError("TOO_MANY_MATERIAL_LINES", err.Error(), err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrMaterialNotFound), errors.Is(err, usecase.ErrInvalidMaterialID):
		return pkg.NewDomainErrorSimple("MATERIAL_NOT_FOUND", "Material not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFound), errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
