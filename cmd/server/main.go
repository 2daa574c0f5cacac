package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"boardingpass-service/internal/domain/repository"
	"boardingpass-service/internal/infrastructure/cache"
	"boardingpass-service/internal/infrastructure/config"
	"boardingpass-service/internal/infrastructure/oauth"
	"boardingpass-service/internal/infrastructure/persistence"
	"boardingpass-service/internal/infrastructure/ratelimit"
	"boardingpass-service/internal/infrastructure/router"
	"boardingpass-service/internal/interface/handler"
	repo "boardingpass-service/internal/interface/repository"
	"boardingpass-service/internal/usecase"
	"boardingpass-service/pkg/logger"
	"boardingpass-service/pkg/metrics"
	"boardingpass-service/templates"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

func main() {
	// Create logger
	log := logger.NewLogger()
	defer log.Sync()
	log.Info("Starting Boarding Pass Service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up MongoDB connection
	log.Info("Connecting to MongoDB")
	mongoClient, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoUser, cfg.MongoPassword)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}
	db := persistence.GetDatabase(mongoClient, cfg.MongoDB)

	scanRepository, err := repo.NewMongoScanRepository(ctx, db)
	if err != nil {
		log.Fatal("Failed to set up scan log", "error", err)
	}
	flightRecordRepository, err := repo.NewMongoFlightRecordRepository(ctx, db)
	if err != nil {
		log.Fatal("Failed to set up flight records", "error", err)
	}

	// Reference data is optional; without it scans fall back to raw codes
	var (
		airlineRepository repository.AirlineRepository
		airportRepository repository.AirportRepository
		aliasRepository   repository.AliasRepository
	)
	if cfg.PostgresURI != "" {
		gormDB, err := persistence.NewPostgres(cfg.PostgresURI)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", "error", err)
		}
		airlineRepository = repo.NewGormAirlineRepository(gormDB)
		airportRepository = repo.NewGormAirportRepository(gormDB)
		aliasRepository = repo.NewGormAliasRepository(gormDB)
	} else {
		log.Warn("POSTGRES_DSN not set, airline and airport enrichment disabled")
	}

	// Sheet rows cache
	var sheetCache cache.Cache
	if cfg.CacheEnabled {
		redisCache, err := cache.NewRedisCache(ctx, cache.RedisConfig{
			Host: cfg.RedisHost,
			Port: cfg.RedisPort,
			TTL:  cfg.RedisTTL,
		})
		if err != nil {
			log.Fatal("Failed to connect to Redis", "error", err)
		}
		sheetCache = redisCache
		log.Info("Redis cache enabled", "host", cfg.RedisHost, "port", cfg.RedisPort, "ttl", cfg.RedisTTL)
	} else {
		sheetCache = cache.NewNoOpCache()
		log.Info("Cache disabled")
	}
	defer sheetCache.Close()

	limiter := ratelimit.NewLimiterWithDefaults()
	limiter.SetLimit(ratelimit.UpstreamSheets, cfg.SheetsRPS, cfg.SheetsBurst)
	limiter.SetLimit(ratelimit.UpstreamSubmit, 2, 5)

	sheetsService := newSheetsService(ctx, cfg, log)
	sheetRepository := repo.NewGoogleSheetRepository(sheetsService, nil, sheetCache, limiter, log, repo.SheetConfig{
		SheetID:    cfg.SheetID,
		SheetName:  cfg.SheetName,
		GID:        cfg.SheetGID,
		CSVBaseURL: cfg.SheetsCSVBaseURL,
	})
	submissionRepository := repo.NewFormSubmissionRepository(cfg.SubmitEndpoint, cfg.SubmitTimeout, limiter, log)

	m := metrics.NewMetrics("boardingpass", prometheus.DefaultRegisterer)

	// Payload handlers
	processor := usecase.NewBoardingPassProcessor(airlineRepository, airportRepository, aliasRepository, log)
	formatRouter := router.NewFormatRouter(log)
	formatRouter.Register(templates.NewBoardingPassHandler(processor, log))

	orchestrator := usecase.NewScanOrchestrator(formatRouter, scanRepository, m, log)
	suggestionService := usecase.NewSuggestionService(sheetRepository, log)
	submissionService := usecase.NewFlightSubmissionService(submissionRepository, flightRecordRepository, m, log)

	// Set up HTTP server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.ReadTimeout
	e.Server.WriteTimeout = cfg.WriteTimeout

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info("Request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"requestId", v.RequestID)
			return nil
		},
	}))

	handler.RegisterRoutes(e,
		handler.NewScanHandler(orchestrator),
		handler.NewSuggestionHandler(suggestionService),
		handler.NewFlightHandler(submissionService),
		prometheus.DefaultGatherer)

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel()

	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}

	log.Info("Boarding Pass Service stopped")
}

// newSheetsService picks the Sheets API credentials. A nil service makes the
// sheet repository read the public CSV export instead.
func newSheetsService(ctx context.Context, cfg *config.Config, log logger.Logger) *sheets.Service {
	var opt option.ClientOption
	switch {
	case cfg.SheetsAPIKey != "":
		opt = option.WithAPIKey(cfg.SheetsAPIKey)
	case cfg.OAuthConfigured():
		sheetsOAuth := oauth.NewSheetsOAuth(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRefreshToken, "", log)
		opt = option.WithTokenSource(sheetsOAuth.GetTokenSource(ctx))
	default:
		log.Info("No Sheets credentials, using CSV export")
		return nil
	}

	service, err := sheets.NewService(ctx, opt)
	if err != nil {
		log.Error("Failed to create Sheets service, using CSV export", "error", err)
		return nil
	}
	return service
}
