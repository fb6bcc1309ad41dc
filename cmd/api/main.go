package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/driversetu/driver-setu/internal/api/handlers"
	"github.com/driversetu/driver-setu/internal/api/routes"
	"github.com/driversetu/driver-setu/internal/auth"
	"github.com/driversetu/driver-setu/internal/catalog"
	"github.com/driversetu/driver-setu/internal/config"
	"github.com/driversetu/driver-setu/internal/i18n"
	"github.com/driversetu/driver-setu/internal/service/wallet"
	"github.com/driversetu/driver-setu/internal/session"
	"github.com/driversetu/driver-setu/pkg/database"
	"github.com/driversetu/driver-setu/pkg/logger"
	"github.com/driversetu/driver-setu/pkg/monitoring"
	"github.com/driversetu/driver-setu/pkg/storage"
	"github.com/driversetu/driver-setu/pkg/websocket"
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/newrelic"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Sync()

	appLogger.Info("Starting Driver Setu session service",
		logger.String("env", cfg.Server.Env),
		logger.String("port", cfg.Server.Port),
		logger.String("storage", cfg.Storage.Driver),
	)

	// Initialize New Relic
	nrApp, err := monitoring.New(monitoring.Config{
		LicenseKey: cfg.NewRelic.LicenseKey,
		AppName:    cfg.NewRelic.AppName,
		Enabled:    cfg.NewRelic.Enabled,
		LogLevel:   cfg.NewRelic.LogLevel,
	})
	if err != nil {
		appLogger.Warn("Failed to initialize New Relic", logger.Err(err))
		nrApp, _ = monitoring.New(monitoring.Config{})
	} else if nrApp.IsEnabled() {
		appLogger.Info("New Relic APM initialized successfully",
			logger.String("app_name", cfg.NewRelic.AppName),
			logger.Bool("enabled", true))
	} else {
		appLogger.Info("New Relic APM disabled")
	}
	defer nrApp.Shutdown(10 * time.Second)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Initialize storage
	store, closeStore, err := openStore(ctx, cfg, nrApp, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to open storage", logger.Err(err))
	}
	defer closeStore.Close()

	// Initialize session container
	sessions := session.New(store,
		session.WithLogger(appLogger),
		session.WithObserver(monitoring.NewSessionObserver(nrApp)),
		session.WithWriteRetries(cfg.Session.WriteRetries),
	)
	go sessions.Run()
	defer sessions.Close()

	defaultLanguage, err := i18n.Parse(cfg.I18n.DefaultLanguage)
	if err != nil {
		appLogger.Warn("Unsupported default language, using English", logger.String("value", cfg.I18n.DefaultLanguage))
		defaultLanguage = i18n.Default
	}
	localizer := i18n.NewLocalizerWithDefault(store, appLogger, defaultLanguage)

	hydrateCtx, cancelHydrate := context.WithTimeout(ctx, cfg.Session.HydrateTimeout)
	if err := sessions.Hydrate(hydrateCtx); err != nil {
		appLogger.Warn("Session hydration did not complete", logger.Err(err))
	}
	localizer.Hydrate(hydrateCtx)
	cancelHydrate()

	// Initialize WebSocket hub
	wsHub := websocket.NewHub(appLogger)
	go wsHub.Run(ctx)

	cat := catalog.New(appLogger)
	authService := auth.NewService(sessions, appLogger, auth.Config{
		OTPDelay:    cfg.Auth.OTPDelay,
		AdminDelay:  cfg.Auth.AdminDelay,
		OTPTTL:      cfg.Auth.OTPTTL,
		ResendAfter: cfg.Auth.ResendAfter,
	})
	walletService := wallet.NewService(cat, appLogger, wallet.Config{MinWithdrawal: cfg.Wallet.MinWithdrawal})

	// Initialize handlers with dependencies
	h := handlers.NewHandlers(sessions, localizer, authService, cat, walletService, wsHub, nrApp, appLogger)
	h.Upgrader.ReadBufferSize = cfg.WebSocket.ReadBufferSize
	h.Upgrader.WriteBufferSize = cfg.WebSocket.WriteBufferSize
	go h.StreamUpdates(ctx)

	// Initialize Gin router
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	var nrApplication *newrelic.Application
	if nrApp.IsEnabled() {
		nrApplication = nrApp.Application
	}
	routes.SetupRoutes(router, h, nrApplication)

	appLogger.Info("Routes configured successfully")

	// Create HTTP server
	srv := &http.Server{
		Addr:           fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:        router,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	// Start server in a goroutine
	go func() {
		appLogger.Info("Server starting", logger.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("Failed to start server", logger.Err(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", logger.Err(err))
	}
	stop()

	appLogger.Info("Server stopped gracefully")
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// openStore builds the configured backend, wraps it in the namespace and
// starts pool reporting for backends that have a pool.
func openStore(ctx context.Context, cfg *config.Config, nrApp *monitoring.NewRelicApp, appLogger *logger.Logger) (storage.Store, io.Closer, error) {
	var (
		store  storage.Store
		closer io.Closer = nopCloser{}
	)

	switch cfg.Storage.Driver {
	case config.StorageRedis:
		client, err := storage.NewRedisClient(storage.RedisConfig{
			Host:        cfg.Redis.Host,
			Port:        cfg.Redis.Port,
			Password:    cfg.Redis.Password,
			DB:          cfg.Redis.DB,
			MaxRetries:  cfg.Redis.MaxRetries,
			PoolSize:    cfg.Redis.PoolSize,
			MinIdleConn: cfg.Redis.MinIdleConn,
			DialTimeout: cfg.Redis.DialTimeout,
			ReadTimeout: cfg.Redis.ReadTimeout,
		})
		if err != nil {
			return nil, nil, err
		}
		redisStore := storage.NewRedisStore(client)
		go nrApp.ReportPoolStats(ctx, "redis", redisStore, cfg.NewRelic.PoolStatsInterval)
		appLogger.Info("Connected to Redis successfully")
		store, closer = redisStore, redisStore

	case config.StoragePostgres:
		db, err := database.NewPostgresDB(ctx, database.Config{
			Host:     cfg.Database.Host,
			Port:     cfg.Database.Port,
			User:     cfg.Database.User,
			Password: cfg.Database.Password,
			DBName:   cfg.Database.Name,
			SSLMode:  cfg.Database.SSLMode,
			MaxConns: cfg.Database.MaxConnections,
			MaxIdle:  cfg.Database.MaxIdleConns,
		})
		if err != nil {
			return nil, nil, err
		}
		if err := database.EnsureKVSchema(ctx, db); err != nil {
			db.Close()
			return nil, nil, err
		}
		pgStore := storage.NewPostgresStore(db)
		go nrApp.ReportPoolStats(ctx, "postgres", pgStore, cfg.NewRelic.PoolStatsInterval)
		appLogger.Info("Connected to PostgreSQL successfully")
		store, closer = pgStore, pgStore

	default:
		appLogger.Warn("Using in-memory storage; the session will not survive a restart")
		store = storage.NewMemoryStore()
	}

	return storage.WithNamespace(store, cfg.Storage.Namespace), closer, nil
}
