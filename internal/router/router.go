package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "freightdesk/docs" // registers the OpenAPI document with swag
	"freightdesk/internal/handler"
	"freightdesk/internal/middleware"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Health      *handler.HealthHandler
	Freight     *handler.FreightHandler
	Consignment *handler.ConsignmentHandler
	Invoice     *handler.InvoiceHandler
	EwayBill    *handler.EwayBillHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(h Handlers, allowedOrigins []string, log *zap.Logger) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	fr := v1.Group("/freight")
	fr.POST("/quote", h.Freight.Quote)
	fr.POST("/tax", h.Freight.ApplyTax)

	v1.GET("/consignments", h.Consignment.List)

	invoices := v1.Group("/invoices")
	invoices.POST("/preview", h.Invoice.Preview)
	invoices.POST("", h.Invoice.Create)
	invoices.GET("", h.Invoice.List)
	invoices.GET("/:id", h.Invoice.GetByID)
	invoices.POST("/:id/export", h.Invoice.Export)

	bills := v1.Group("/eway-bills")
	bills.GET("", h.EwayBill.List)
	bills.GET("/summary", h.EwayBill.Summary)
	bills.GET("/export", h.EwayBill.Export)
	bills.POST("", h.EwayBill.Register)

	return r
}
