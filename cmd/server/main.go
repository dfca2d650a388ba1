package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"statement-transformer/internal/config"
	"statement-transformer/internal/database"
	"statement-transformer/internal/handlers"
	"statement-transformer/internal/middleware"
	"statement-transformer/internal/repositories"
	"statement-transformer/internal/services"
	"statement-transformer/internal/transform"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	config.LoadDotEnv()
	cfg := config.Load()

	if err := run(cfg, logger); err != nil {
		logger.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	policy, err := cfg.Transform.Policy()
	if err != nil {
		return err
	}

	engine, err := transform.NewEngine(policy)
	if err != nil {
		return err
	}

	var (
		gormDB        *gorm.DB
		statementRepo repositories.StatementRepositoryInterface
		auditService  services.AuditServiceInterface
	)

	if cfg.Database.Enabled() {
		db, err := database.Initialize(cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		gormDB = db.DB
		statementRepo = repositories.NewStatementRepository(gormDB)
		auditService = services.NewAuditService(repositories.NewAuditLogRepository(gormDB))
	} else {
		logger.Warn("statement storage disabled, results will not be persisted")
	}

	statementService := services.NewStatementService(
		engine,
		statementRepo,
		auditService,
		services.NewAuditLogger(logger),
		services.NewPrometheusMetrics(),
		cfg.Transform,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	limiter := middleware.NewIPRateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst)
	go limiter.Run(ctx)

	if auditService != nil && cfg.Audit.Retention > 0 {
		retention := services.NewAuditRetention(auditService, cfg.Audit.Retention, cfg.Audit.SweepInterval, logger)
		go retention.Run(ctx)
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Validator = handlers.NewValidator()

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.CORS(cfg.Server.CORSAllowOrigins))
	e.Use(echomw.BodyLimit(cfg.Server.BodyLimit))

	e.GET("/health", handlers.NewHealthCheckHandler(gormDB, statementService).HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1", limiter.Middleware())

	statementHandler := handlers.NewStatementHandler(statementService)
	statements := api.Group("/statements")
	statements.POST("/transform", statementHandler.TransformStatement)
	statements.POST("/transform/batch", statementHandler.TransformBatch)
	statements.GET("", statementHandler.ListStatements)
	statements.GET("/:id", statementHandler.GetStatement)

	if auditService != nil {
		activityHandler := handlers.NewActivityHandler(auditService)
		statements.GET("/activity/:uploadId", activityHandler.GetStatementActivity)
	}

	if cfg.IsDevelopment() {
		devHandler := handlers.NewDevHandler(statementService, services.NewStatementGenerator(uint64(time.Now().UnixNano())))
		api.POST("/dev/statements/sample", devHandler.GenerateSample)
		logger.Info("development routes enabled")
	}

	srv := &http.Server{
		Addr:           cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:        e,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 16,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting statement transformer",
			"addr", srv.Addr,
			"environment", cfg.Server.Environment,
			"storage", cfg.Database.Driver,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.Info("server stopped gracefully")
	return nil
}
