package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	request "refrigeracao_os/internal/adapter/http/dto/request"
	response "refrigeracao_os/internal/adapter/http/dto/response"
	"refrigeracao_os/internal/usecase"
	"refrigeracao_os/pkg"

	"github.com/gin-gonic/gin"
)

const (
	contentTypePDF  = "application/pdf"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// List godoc
// @Summary      List orders, newest first
// @Tags         orders
// @Produce      json
// @Success      200  {array}   response.OrderResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.usecase.List(c.Request.Context())
	if err != nil {
		abortWith(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// GetByID godoc
// @Summary      Get an order
// @Tags         orders
// @Produce      json
// @Param        id  path  string  true  "order id"
// @Success      200  {object}  response.OrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /orders/{id} [get]
func (h *OrderHandler) GetByID(c *gin.Context) {
	o, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}

// UpdateStatus godoc
// @Summary      Mark an order pending or completed
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "order id"
// @Param        body  body  request.OrderStatusRequest  true  "new status"
// @Success      200  {object}  response.OrderResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var payload request.OrderStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidRequest)
		return
	}

	o, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), payload.ResolveStatus())
	if err != nil {
		log.Printf("[order][handler] status update failed id=%s err=%v", c.Param("id"), err)
		abortWith(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}

// Document godoc
// @Summary      Order quote document (PDF)
// @Tags         orders
// @Produce      application/pdf
// @Param        id  path  string  true  "order id"
// @Success      200  {file}    file
// @Failure      404  {object}  pkg.HTTPError
// @Router       /orders/{id}/document.pdf [get]
func (h *OrderHandler) Document(c *gin.Context) {
	id := c.Param("id")
	b, err := h.usecase.Document(c.Request.Context(), id)
	if err != nil {
		log.Printf("[order][handler] document failed id=%s err=%v", id, err)
		abortWith(c, mapOrderError(err))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="orcamento-%s.pdf"`, id))
	c.Data(http.StatusOK, contentTypePDF, b)
}

// Export godoc
// @Summary      Accounting spreadsheet of all orders (XLSX)
// @Tags         orders
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}    file
// @Failure      500  {object}  pkg.HTTPError
// @Router       /orders/export.xlsx [get]
func (h *OrderHandler) Export(c *gin.Context) {
	b, err := h.usecase.ExportSpreadsheet(c.Request.Context())
	if err != nil {
		log.Printf("[order][handler] export failed err=%v", err)
		abortWith(c, mapOrderError(err))
		return
	}
	name := fmt.Sprintf("ordens-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	c.Data(http.StatusOK, contentTypeXLSX, b)
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrInvalidOrderStatus):
		return pkg.NewDomainErrorSimple("INVALID_ORDER_STATUS", "Status must be pending or completed", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
