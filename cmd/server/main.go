package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	printingapp "github.com/gaolamthuy/backend/internal/application/printing"
	"github.com/gaolamthuy/backend/internal/infrastructure/config"
	"github.com/gaolamthuy/backend/internal/infrastructure/logger"
	"github.com/gaolamthuy/backend/internal/infrastructure/persistence"
	infraprint "github.com/gaolamthuy/backend/internal/infrastructure/printing"
	"github.com/gaolamthuy/backend/internal/infrastructure/printing/providers"
	"github.com/gaolamthuy/backend/internal/infrastructure/webhook"
	"github.com/gaolamthuy/backend/internal/interfaces/http/handler"
	"github.com/gaolamthuy/backend/internal/interfaces/http/middleware"
	"github.com/gaolamthuy/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Gạo Lâm Thúy print service",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level),
		logger.WithSlowThreshold(cfg.Log.SlowQueryThreshold))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// Repositories
	templateRepo := persistence.NewGormTemplateRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	purchaseOrderRepo := persistence.NewGormPurchaseOrderRepository(db.DB)
	retailInvoiceRepo := persistence.NewGormRetailInvoiceRepository(db.DB)

	// Print pipeline
	templateStore, err := infraprint.NewTemplateStore(templateRepo, cfg.Print.TemplatesDir)
	if err != nil {
		log.Fatal("Failed to load builtin print templates", zap.Error(err))
	}
	engine := infraprint.NewTemplateEngine()
	docBuilder := infraprint.NewDocumentBuilderWithFont(cfg.Print.FontURL)
	surface := infraprint.NewChromeSurface(infraprint.ChromeSurfaceConfig{
		RemoteURL:     cfg.Print.ChromeRemoteURL,
		ExecPath:      cfg.Print.ChromePath,
		Headless:      cfg.Print.Headless,
		NoSandbox:     cfg.Print.NoSandbox,
		RenderTimeout: cfg.Print.RenderTimeout,
		Logger:        log,
	})
	defer func() {
		if err := surface.Close(); err != nil {
			log.Error("Error closing print surface", zap.Error(err))
		}
	}()

	// Data providers per template type
	purchaseOrderProvider := providers.NewPurchaseOrderProvider(purchaseOrderRepo)
	registry := providers.NewRegistry()
	registry.Register(purchaseOrderProvider)
	registry.Register(providers.NewProductLabelProvider(productRepo))
	registry.Register(providers.NewRetailInvoiceProvider(retailInvoiceRepo))
	registry.Register(providers.NewPriceTableProvider(productRepo))

	var notifier webhook.Notifier = webhook.NopNotifier{}
	if cfg.Webhook.Enabled {
		notifier = webhook.NewN8NNotifier(webhook.Config{
			BaseURL:    cfg.Webhook.BaseURL,
			Secret:     cfg.Webhook.Secret,
			Timeout:    cfg.Webhook.Timeout,
			MaxRetries: cfg.Webhook.MaxRetries,
		}, log)
		log.Info("Print webhook notifications enabled", zap.String("url", cfg.Webhook.BaseURL))
	}

	printService := printingapp.NewPrintService(
		templateStore,
		engine,
		docBuilder,
		surface,
		registry,
		purchaseOrderProvider,
		notifier,
		log,
	)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ginEngine := router.NewEngine(log, middleware.CORSConfig{
		AllowOrigins: cfg.HTTP.CORSAllowOrigins,
	})
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := ginEngine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	r := router.NewRouter(ginEngine, router.WithAPIVersion("v1"))
	r.Register(handler.NewPrintHandler(printService))
	r.Register(handler.NewHealthHandler(db, version))
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        ginEngine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
