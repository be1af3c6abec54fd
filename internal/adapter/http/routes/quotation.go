package routes

import (
	"refrigeracao_os/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotations = "/quotations"
	PathOrders     = "/orders"
)

func addQuotationRoutes(rg *gin.RouterGroup, h *handlers.QuotationHandler) {
	quotations := rg.Group(PathQuotations)
	{
		quotations.POST("", h.Create)
		quotations.POST("/from-order/:order_id", h.CreateFromOrder)
		quotations.GET("/:id", h.Get)
		quotations.DELETE("/:id", h.Discard)

		quotations.POST("/:id/materials", h.AddMaterial)
		quotations.PATCH("/:id/materials/:index", h.UpdateMaterialQuantity)
		quotations.DELETE("/:id/materials/:index", h.RemoveMaterial)

		quotations.POST("/:id/services", h.AddService)
		quotations.PUT("/:id/services/:index", h.UpdateService)
		quotations.DELETE("/:id/services/:index", h.RemoveService)

		quotations.PUT("/:id/discount", h.SetDiscount)
		quotations.POST("/:id/reset", h.Reset)
		quotations.POST("/:id/submit", h.Submit)
	}
}

func addOrderRoutes(rg *gin.RouterGroup, h *handlers.OrderHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.GET("", h.List)
		orders.GET("/export.xlsx", h.Export)
		orders.GET("/:id", h.GetByID)
		orders.GET("/:id/document.pdf", h.Document)
		orders.PATCH("/:id/status", h.UpdateStatus)
	}
}
