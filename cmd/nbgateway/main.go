package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/nusabiz/nusabiz_gateway/internal/adapters/backend/rest"
	"github.com/nusabiz/nusabiz_gateway/internal/adapters/store/sqlite"
	portsrepo "github.com/nusabiz/nusabiz_gateway/internal/core/ports/repositories"
	"github.com/nusabiz/nusabiz_gateway/internal/core/services"
	"github.com/nusabiz/nusabiz_gateway/internal/handlers"
	"github.com/nusabiz/nusabiz_gateway/internal/middleware"
	"github.com/nusabiz/nusabiz_gateway/internal/platform/config"
	"github.com/nusabiz/nusabiz_gateway/pkg/database"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// --- Local state store ---
	logger.Info("Running state store migrations...")
	if err := sqlite.RunMigrations(cfg.StateDBPath); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	db, err := database.NewSQLiteDB(context.Background(), cfg.StateDBPath)
	if err != nil {
		logger.Error("Failed to open state store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()
	logger.Info("State store ready", slog.String("path", cfg.StateDBPath))

	// --- Wiring: session store, backend client, repositories, services ---
	sessionRepo := sqlite.NewSessionRepository(db)
	client := rest.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout, sessionRepo)

	repos := portsrepo.RepositoryProvider{
		SessionRepo:     sessionRepo,
		AuthBackend:     rest.NewAuthRepository(client),
		BusinessBackend: rest.NewBusinessRepository(client),
		TransactionRepo: rest.NewTransactionRepository(client),
		ProductRepo:     rest.NewProductRepository(client),
		AIBackend:       rest.NewAIRepository(client),
	}

	serviceContainer := services.NewServiceContainer(cfg, repos, logger)
	defer serviceContainer.Stock.Close()

	// --- HTTP surface ---
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowOrigins
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit format", slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(memory.NewStore(), rate)))

	handlers.RegisterRoutes(r, serviceContainer, sessionRepo)

	logger.Info("Gateway starting",
		slog.String("port", cfg.Port),
		slog.String("api_base_url", cfg.APIBaseURL))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
