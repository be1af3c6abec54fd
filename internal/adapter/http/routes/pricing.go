package routes

import (
	"refrigeracao_os/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPriceTable = "/price-table"
	PathMaterials  = "/materials"
)

func addPricingRoutes(rg *gin.RouterGroup, priceTable *handlers.PriceTableHandler, materials *handlers.MaterialHandler) {
	table := rg.Group(PathPriceTable)
	{
		table.GET("", priceTable.Get)
		table.GET("/installation/:category/:capacity", priceTable.ResolveInstallation)
		table.GET("/cleaning/:category", priceTable.ResolveCleaning)
		table.PUT("/installation/:category", priceTable.SetUniformInstallation)
		table.PUT("/installation/:category/:capacity", priceTable.SetInstallation)
		table.PUT("/cleaning/:category", priceTable.SetCleaning)
	}

	catalog := rg.Group(PathMaterials)
	{
		catalog.GET("", materials.List)
		catalog.POST("", materials.Create)
		catalog.PATCH("/:id", materials.Update)
		catalog.DELETE("/:id", materials.Delete)
	}
}
