package routes

import (
	"log"
	"net/http"

	_ "refrigeracao_os/docs" // This will be auto-generated
	"refrigeracao_os/internal/adapter/http/handlers"
	"refrigeracao_os/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups every HTTP handler mounted under /v1.
type Handlers struct {
	PriceTable *handlers.PriceTableHandler
	Materials  *handlers.MaterialHandler
	Quotations *handlers.QuotationHandler
	Orders     *handlers.OrderHandler
}

// NewRouter builds the gin engine: middlewares, swagger, /metrics and the /v1 API.
func NewRouter(h Handlers, exposeMetrics bool) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, exposeMetrics)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if exposeMetrics {
		router.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPricingRoutes(v1, h.PriceTable, h.Materials)
	addQuotationRoutes(v1, h.Quotations)
	addOrderRoutes(v1, h.Orders)

	return router
}

// NewServer wraps the router in an http.Server so the caller controls shutdown.
func NewServer(addr string, router http.Handler) *http.Server {
	return &http.Server{Addr: addr, Handler: router}
}

func setMiddlewares(router *gin.Engine, exposeMetrics bool) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	if exposeMetrics {
		router.Use(metrics.Middleware())
	}
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", handlers.Ping)
}
