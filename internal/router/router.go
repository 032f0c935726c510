package router

import (
	"time"

	"github.com/mohamm188/Trend-phone/internal/config"
	"github.com/mohamm188/Trend-phone/internal/handler"
	"github.com/mohamm188/Trend-phone/internal/infra"
	"github.com/mohamm188/Trend-phone/internal/middleware"
	"github.com/mohamm188/Trend-phone/internal/repository"
	"github.com/mohamm188/Trend-phone/internal/service"
	"github.com/mohamm188/Trend-phone/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, mailer *infra.Mailer, dispatcher *worker.Dispatcher) *gin.Engine {
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
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	supplierTxRepo := repository.NewSupplierTransactionRepository(db)
	ledgerRepo := repository.NewGeneralLedgerRepository(db)
	adjustmentRepo := repository.NewStockAdjustmentRepository(db)
	backupRepo := repository.NewBackupRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg)
	productSvc := service.NewProductService(productRepo)
	inventorySvc := service.NewInventoryService(productRepo, adjustmentRepo, cfg.StockPolicy)
	creditSvc := service.NewCreditService(customerRepo, supplierRepo, transactionRepo, supplierTxRepo)
	customerSvc := service.NewCustomerService(customerRepo, transactionRepo, creditSvc)
	supplierSvc := service.NewSupplierService(supplierRepo)
	saleSvc := service.NewSaleService(saleRepo, productRepo, customerRepo, transactionRepo,
		inventorySvc, creditSvc, dispatcher, cfg.PDFStoragePath)
	purchaseSvc := service.NewPurchaseService(purchaseRepo, productRepo, supplierRepo, supplierTxRepo,
		inventorySvc, creditSvc, service.CostingPolicyFor(cfg.CostingPolicy))
	ledgerSvc := service.NewLedgerService(ledgerRepo)
	backupSvc := service.NewBackupService(backupRepo, customerRepo, supplierRepo, creditSvc)
	settingsSvc := service.NewSettingsService(rdb)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	productsH := handler.NewProductsHandler(productSvc)
	customersH := handler.NewCustomersHandler(customerSvc, creditSvc)
	suppliersH := handler.NewSuppliersHandler(supplierSvc, creditSvc)
	salesH := handler.NewSalesHandler(saleSvc)
	purchasesH := handler.NewPurchasesHandler(purchaseSvc)
	inventoryH := handler.NewInventoryHandler(inventorySvc)
	ledgerH := handler.NewLedgerHandler(ledgerSvc)
	backupH := handler.NewBackupHandler(backupSvc)
	settingsH := handler.NewSettingsHandler(settingsSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb, mailer))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	staff := middleware.RequireRole("staff", "admin")
	admin := middleware.RequireRole("admin")

	v1 := r.Group("/v1", jwtMW)
	{
		v1.POST("/sales", staff, salesH.RecordSale)
		v1.GET("/sales", staff, salesH.ListSales)
		v1.GET("/sales/:id", staff, salesH.GetSale)
		v1.GET("/sales/:id/receipt", staff, salesH.Receipt)

		v1.POST("/purchases", staff, purchasesH.RecordPurchase)
		v1.GET("/purchases", staff, purchasesH.ListPurchases)
		v1.GET("/purchases/:id", staff, purchasesH.GetPurchase)

		v1.GET("/products", staff, productsH.ListProducts)
		v1.GET("/products/:id", staff, productsH.GetProduct)
		v1.POST("/products", admin, productsH.CreateProduct)
		v1.PUT("/products/:id", admin, productsH.UpdateProduct)

		customers := v1.Group("/customers", staff)
		{
			customers.POST("", customersH.CreateCustomer)
			customers.GET("", customersH.ListCustomers)
			customers.GET("/:id", customersH.GetCustomer)
			customers.PUT("/:id", customersH.UpdateCustomer)
			customers.GET("/:id/statement", customersH.CustomerStatement)
			customers.POST("/:id/payments", customersH.RecordCustomerPayment)
		}

		suppliers := v1.Group("/suppliers", staff)
		{
			suppliers.POST("", suppliersH.CreateSupplier)
			suppliers.GET("", suppliersH.ListSuppliers)
			suppliers.GET("/:id", suppliersH.GetSupplier)
			suppliers.PUT("/:id", suppliersH.UpdateSupplier)
			suppliers.GET("/:id/statement", suppliersH.SupplierStatement)
			suppliers.POST("/:id/payments", suppliersH.RecordSupplierPayment)
		}

		inv := v1.Group("/inventory", staff)
		{
			inv.POST("/adjustments", inventoryH.RecordAdjustment)
			inv.GET("/adjustments", inventoryH.ListAdjustments)
			inv.GET("/low-stock", inventoryH.LowStock)
		}

		v1.POST("/ledger", staff, ledgerH.RecordEntry)
		v1.GET("/ledger", staff, ledgerH.ListEntries)
		v1.GET("/ledger/summary", staff, ledgerH.Summary)

		// Backup — replacing the whole database is admin-only
		v1.GET("/backup/export", admin, backupH.Export)
		v1.POST("/backup/import", admin, backupH.Import)

		v1.GET("/settings", staff, settingsH.GetSettings)
		v1.PUT("/settings", admin, settingsH.PutSettings)

		users := v1.Group("/auth/users", admin)
		{
			users.POST("", authH.CreateUser)
			users.GET("", authH.ListUsers)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
