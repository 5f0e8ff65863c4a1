package router

import (
	"time"

	"stockledger/internal/config"
	"stockledger/internal/handler"
	"stockledger/internal/infra"
	"stockledger/internal/middleware"
	"stockledger/internal/repository"
	"stockledger/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB
func New(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute))

	// ── Repositories ─────────────────────────────────────────────────────────
	productRepo := repository.NewProductRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	movementRepo := repository.NewMovementRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	receipts := infra.NewReceiptWriter(cfg.ReceiptStoragePath, cfg.PDFTickets)
	productSvc := service.NewProductService(productRepo, movementRepo, cfg)
	saleSvc := service.NewSaleService(saleRepo, productRepo, movementRepo, receipts, cfg)
	reportSvc := service.NewReportService(productRepo, movementRepo, cfg)

	// ── Handlers ─────────────────────────────────────────────────────────────
	productsH := handler.NewProductsHandler(productSvc)
	salesH := handler.NewSalesHandler(saleSvc)
	reportsH := handler.NewReportsHandler(reportSvc)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(db, cfg.LedgerMode))

	v1 := r.Group("/v1")
	{
		v1.POST("/products", productsH.Register)
		v1.GET("/products", productsH.List)
		v1.GET("/products/:id", productsH.Get)
		v1.PATCH("/products/:id/stock", productsH.AdjustStock)

		// Sale and movement routes stay registered in reduced mode; the
		// service answers them with a typed "disabled" error (503).
		v1.POST("/sales", salesH.Register)
		v1.GET("/sales", salesH.Report)
		v1.GET("/sales/:id", salesH.Get)

		v1.GET("/reports/stock", reportsH.Stock)
		v1.GET("/movements", reportsH.Movements)
	}

	// Swagger UI, only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
