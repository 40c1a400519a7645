package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ousama-oujaber/SupplyChainX/internal/config"
	deliveryentity "github.com/ousama-oujaber/SupplyChainX/internal/delivery/entity"
	deliveryhandler "github.com/ousama-oujaber/SupplyChainX/internal/delivery/handler"
	deliveryrepo "github.com/ousama-oujaber/SupplyChainX/internal/delivery/repository"
	deliveryservice "github.com/ousama-oujaber/SupplyChainX/internal/delivery/service"
	"github.com/ousama-oujaber/SupplyChainX/internal/httpapi"
	"github.com/ousama-oujaber/SupplyChainX/internal/middleware"
	procuremententity "github.com/ousama-oujaber/SupplyChainX/internal/procurement/entity"
	procurementhandler "github.com/ousama-oujaber/SupplyChainX/internal/procurement/handler"
	procurementrepo "github.com/ousama-oujaber/SupplyChainX/internal/procurement/repository"
	procurementservice "github.com/ousama-oujaber/SupplyChainX/internal/procurement/service"
	productionentity "github.com/ousama-oujaber/SupplyChainX/internal/production/entity"
	productionhandler "github.com/ousama-oujaber/SupplyChainX/internal/production/handler"
	productionrepo "github.com/ousama-oujaber/SupplyChainX/internal/production/repository"
	productionservice "github.com/ousama-oujaber/SupplyChainX/internal/production/service"
	"github.com/ousama-oujaber/SupplyChainX/internal/scheduler"
	userentity "github.com/ousama-oujaber/SupplyChainX/internal/user/entity"
	userhandler "github.com/ousama-oujaber/SupplyChainX/internal/user/handler"
	userrepo "github.com/ousama-oujaber/SupplyChainX/internal/user/repository"
	userservice "github.com/ousama-oujaber/SupplyChainX/internal/user/service"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// .env is optional, real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := initLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("Starting supplychainx service",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
	)

	db, err := initDatabase(cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := autoMigrate(db); err != nil {
		zapLogger.Fatal("Failed to migrate database", zap.Error(err))
	}

	rdb := initRedis(cfg.Redis)

	// procurement
	procurementRepos := procurementrepo.NewRepositories(db)
	supplierSvc := procurementservice.NewSupplierService(procurementRepos.Supplier)
	materialSvc := procurementservice.NewRawMaterialService(procurementRepos.RawMaterial, procurementRepos.Supplier)
	supplyOrderSvc := procurementservice.NewSupplyOrderService(procurementRepos.SupplyOrder, procurementRepos.Supplier, procurementRepos.RawMaterial)
	procurementHandlers := procurementhandler.NewHandlers(supplierSvc, materialSvc, supplyOrderSvc)

	// production
	productionRepos := productionrepo.NewRepositories(db)
	productSvc := productionservice.NewProductService(productionRepos.Product)
	bomSvc := productionservice.NewBOMService(productionRepos.BillOfMaterial, productionRepos.Product, procurementRepos.RawMaterial)
	productionOrderSvc := productionservice.NewProductionOrderService(productionRepos.ProductionOrder, productionRepos.Product, bomSvc)
	productionHandlers := productionhandler.NewHandlers(productSvc, bomSvc, productionOrderSvc)

	// delivery
	deliveryRepos := deliveryrepo.NewRepositories(db)
	customerSvc := deliveryservice.NewCustomerService(deliveryRepos.Customer)
	customerOrderSvc := deliveryservice.NewCustomerOrderService(deliveryRepos.CustomerOrder, deliveryRepos.Customer, productionRepos.Product, db)
	deliverySvc := deliveryservice.NewDeliveryService(deliveryRepos.Delivery, deliveryRepos.CustomerOrder, db)
	deliveryHandlers := deliveryhandler.NewHandlers(customerSvc, customerOrderSvc, deliverySvc)

	// users and auth
	userRepo := userrepo.NewUserRepository(db)
	userSvc := userservice.NewUserService(userRepo)
	authSvc := userservice.NewAuthService(userRepo, rdb, cfg)
	userHandlers := userhandler.NewHandlers(userSvc, authSvc)

	// stock monitor
	var archive *scheduler.ReportArchive
	if cfg.MinIO.Endpoint != "" {
		minioClient, err := initMinio(cfg.MinIO)
		if err != nil {
			zapLogger.Warn("MinIO unavailable, report archiving disabled", zap.Error(err))
		} else {
			archive = scheduler.NewReportArchive(minioClient, cfg.MinIO.Bucket)
		}
	}
	var mailer *scheduler.Mailer
	if cfg.Mail.SendGridAPIKey != "" {
		mailer = scheduler.NewMailer(cfg.Mail)
	}
	stockMonitor := scheduler.NewStockMonitor(procurementRepos.RawMaterial, rdb, archive, mailer, cfg, zapLogger)

	schedulerCtx, stopScheduler := context.WithCancel(context.Background())
	defer stopScheduler()
	if cfg.Scheduler.Enabled {
		go stockMonitor.Run(schedulerCtx)
	}

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(zapLogger))
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	registerRoutes(router, cfg, routeHandlers{
		procurement:  procurementHandlers,
		production:   productionHandlers,
		delivery:     deliveryHandlers,
		user:         userHandlers,
		stockMonitor: stockMonitor,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		zapLogger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Shutting down server...")
	stopScheduler()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exited")
}

func initLogger(cfg config.LogConfig) (*zap.Logger, error) {
	var zapCfg zap.Config

	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	switch cfg.Level {
	case "debug":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}

	return zapCfg.Build()
}

func initDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	gormConfig := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	return db, nil
}

func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userentity.User{},
		&procuremententity.Supplier{},
		&procuremententity.RawMaterial{},
		&procuremententity.SupplyOrder{},
		&productionentity.Product{},
		&productionentity.BillOfMaterial{},
		&productionentity.ProductionOrder{},
		&deliveryentity.Customer{},
		&deliveryentity.CustomerOrder{},
		&deliveryentity.Delivery{},
	)
}

func initRedis(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
}

func initMinio(cfg config.MinIOConfig) (*minio.Client, error) {
	return minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
}

type routeHandlers struct {
	procurement  *procurementhandler.Handlers
	production   *productionhandler.Handlers
	delivery     *deliveryhandler.Handlers
	user         *userhandler.Handlers
	stockMonitor *scheduler.StockMonitor
}

func registerRoutes(r *gin.Engine, cfg *config.Config, h routeHandlers) {
	r.GET("/health/live", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/health/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"version": Version, "build_time": BuildTime})
	})

	api := r.Group("/api/v1")

	// auth endpoints are public
	auth := api.Group("/auth")
	{
		auth.POST("/login", h.user.Auth.Login)
		auth.POST("/refresh", h.user.Auth.Refresh)
		auth.POST("/logout", h.user.Auth.Logout)
	}

	protected := api.Group("")
	protected.Use(middleware.JWTAuth(cfg.JWT.Secret))

	suppliers := protected.Group("/suppliers")
	{
		suppliers.GET("", h.procurement.Supplier.List)
		suppliers.POST("", h.procurement.Supplier.Create)
		suppliers.GET("/:id", h.procurement.Supplier.Get)
		suppliers.PUT("/:id", h.procurement.Supplier.Update)
		suppliers.DELETE("/:id", h.procurement.Supplier.Delete)
	}

	materials := protected.Group("/materials")
	{
		materials.GET("", h.procurement.RawMaterial.List)
		materials.POST("", h.procurement.RawMaterial.Create)
		materials.GET("/low-stock", h.procurement.RawMaterial.ListBelowMinimum)
		materials.GET("/:id", h.procurement.RawMaterial.Get)
		materials.PUT("/:id", h.procurement.RawMaterial.Update)
		materials.DELETE("/:id", h.procurement.RawMaterial.Delete)
		materials.POST("/:id/suppliers/:supplierId", h.procurement.RawMaterial.AddSupplier)
		materials.DELETE("/:id/suppliers/:supplierId", h.procurement.RawMaterial.RemoveSupplier)
	}

	supplyOrders := protected.Group("/supply-orders")
	{
		supplyOrders.GET("", h.procurement.SupplyOrder.List)
		supplyOrders.POST("", h.procurement.SupplyOrder.Create)
		supplyOrders.GET("/:id", h.procurement.SupplyOrder.Get)
		supplyOrders.PUT("/:id", h.procurement.SupplyOrder.Update)
		supplyOrders.PATCH("/:id/status", h.procurement.SupplyOrder.UpdateStatus)
		supplyOrders.DELETE("/:id", h.procurement.SupplyOrder.Delete)
	}

	products := protected.Group("/products")
	{
		products.GET("", h.production.Product.List)
		products.POST("", h.production.Product.Create)
		products.GET("/:id", h.production.Product.Get)
		products.PUT("/:id", h.production.Product.Update)
		products.DELETE("/:id", h.production.Product.Delete)
		products.GET("/:id/bom", h.production.BOM.ListByProduct)
		products.GET("/:id/availability", h.production.BOM.CheckAvailability)
		products.GET("/:id/production-time", h.production.ProductionOrder.EstimateTime)
	}

	boms := protected.Group("/boms")
	{
		boms.GET("", h.production.BOM.List)
		boms.POST("", h.production.BOM.Create)
		boms.GET("/:id", h.production.BOM.Get)
		boms.PUT("/:id", h.production.BOM.Update)
		boms.DELETE("/:id", h.production.BOM.Delete)
	}

	productionOrders := protected.Group("/production-orders")
	{
		productionOrders.GET("", h.production.ProductionOrder.List)
		productionOrders.POST("", h.production.ProductionOrder.Create)
		productionOrders.GET("/:id", h.production.ProductionOrder.Get)
		productionOrders.PUT("/:id", h.production.ProductionOrder.Update)
		productionOrders.PATCH("/:id/status", h.production.ProductionOrder.UpdateStatus)
		productionOrders.DELETE("/:id", h.production.ProductionOrder.Cancel)
	}

	customers := protected.Group("/customers")
	{
		customers.GET("", h.delivery.Customer.List)
		customers.POST("", h.delivery.Customer.Create)
		customers.GET("/:id", h.delivery.Customer.Get)
		customers.PUT("/:id", h.delivery.Customer.Update)
		customers.DELETE("/:id", h.delivery.Customer.Delete)
	}

	orders := protected.Group("/orders")
	{
		orders.GET("", h.delivery.CustomerOrder.List)
		orders.POST("", h.delivery.CustomerOrder.Create)
		orders.GET("/:id", h.delivery.CustomerOrder.Get)
		orders.PUT("/:id", h.delivery.CustomerOrder.Update)
		orders.DELETE("/:id", h.delivery.CustomerOrder.Cancel)
		orders.GET("/:id/delivery", h.delivery.Delivery.GetByOrder)
	}

	deliveries := protected.Group("/deliveries")
	{
		deliveries.GET("", h.delivery.Delivery.List)
		deliveries.POST("", h.delivery.Delivery.Create)
		deliveries.GET("/:id", h.delivery.Delivery.Get)
		deliveries.PUT("/:id", h.delivery.Delivery.Update)
		deliveries.GET("/:id/cost", h.delivery.Delivery.CalculateCost)
		deliveries.DELETE("/:id", h.delivery.Delivery.Delete)
	}

	users := protected.Group("/users")
	users.Use(middleware.RequireRole(userentity.RoleAdmin))
	{
		users.GET("", h.user.User.List)
		users.POST("", h.user.User.Create)
		users.GET("/:id", h.user.User.Get)
		users.PUT("/:id", h.user.User.Update)
		users.DELETE("/:id", h.user.User.Delete)
	}

	monitoring := protected.Group("/monitoring")
	monitoring.Use(middleware.RequireRole(userentity.RoleAdmin, userentity.RolePlanificateur))
	{
		monitoring.POST("/stock-check", func(c *gin.Context) {
			result, err := h.stockMonitor.RunNow(c.Request.Context())
			if err != nil {
				httpapi.InternalError(c, err.Error())
				return
			}
			httpapi.Success(c, result)
		})
	}
}
