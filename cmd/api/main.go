package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	"tutorial-hub/internal/config"
	pgRepo "tutorial-hub/internal/infra/adapter/persistence/postgres"
	sqliteRepo "tutorial-hub/internal/infra/adapter/persistence/sqlite"
	"tutorial-hub/internal/infra/db"
	"tutorial-hub/internal/infra/stats"
	"tutorial-hub/internal/observability/logging"
	"tutorial-hub/internal/observability/tracing"
	"tutorial-hub/internal/repository"

	tutUC "tutorial-hub/internal/usecase/tutorial"

	hhttp "tutorial-hub/internal/handler/http"
	"tutorial-hub/internal/handler/http/requestid"
	htutorial "tutorial-hub/internal/handler/http/tutorial"

	_ "tutorial-hub/docs" // swagger docs
)

// @title           Tutorial Hub API
// @version         1.0
// @description     チュートリアル管理 REST API
// @description     タイトル部分一致検索と公開状態での絞り込みに対応した CRUD API を提供します。

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

func main() {
	logger := initLogger()

	cfg, err := config.LoadServerConfig(config.ConfigPath())
	if err != nil {
		logger.Error("failed to load server configuration", slog.Any("error", err))
		os.Exit(1)
	}

	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	repo := newRepository(logger, database)
	version := getVersion()

	refresher := stats.NewRefresher(repo, logger,
		hhttp.UpdateTutorialsTotal, hhttp.UpdateTutorialsPublished)
	if err := refresher.Start(); err != nil {
		logger.Error("failed to start stats refresher", slog.Any("error", err))
		os.Exit(1)
	}
	defer refresher.Stop()

	handler := setupServer(logger, database, repo, cfg, version)
	runServer(logger, cfg, handler, version)
}

// initLogger initializes and returns a structured logger based on environment configuration.
func initLogger() *slog.Logger {
	logger := logging.NewLogger()
	slog.SetDefault(logger)
	return logger
}

// initDatabase opens the database connection and runs migrations.
func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()
	if err := db.MigrateUp(database, db.Driver()); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// newRepository selects the persistence adapter matching the configured driver.
func newRepository(logger *slog.Logger, database *sql.DB) repository.TutorialRepository {
	driver := db.Driver()
	logger.Info("persistence adapter selected", slog.String("driver", driver))
	if driver == db.DriverSQLite {
		return sqliteRepo.NewTutorialRepo(database)
	}
	return pgRepo.NewTutorialRepo(database)
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// setupServer configures and returns the HTTP handler with all routes and middleware.
func setupServer(logger *slog.Logger, database *sql.DB, repo repository.TutorialRepository, cfg *config.ServerConfig, version string) http.Handler {
	svc := tutUC.Service{Repo: repo}

	mux := http.NewServeMux()
	htutorial.Register(mux, svc, logger)

	// 運用系エンドポイント
	mux.Handle("/health", &hhttp.HealthHandler{DB: database, Version: version})
	mux.Handle("/ready", &hhttp.ReadyHandler{DB: database})
	mux.Handle("/live", &hhttp.LiveHandler{})
	mux.Handle("/metrics", hhttp.MetricsHandler())

	// Swagger UI
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return applyMiddleware(logger, cfg, mux)
}

// applyMiddleware wraps the handler with the middleware chain.
// Order (outermost to innermost):
// Request ID → Tracing → Recovery → Logging → Body Limit → Timeout → Metrics
func applyMiddleware(logger *slog.Logger, cfg *config.ServerConfig, handler http.Handler) http.Handler {
	middlewareChain := handler

	// Apply in reverse order (innermost to outermost)
	middlewareChain = hhttp.MetricsMiddleware(middlewareChain)
	middlewareChain = hhttp.Timeout(cfg.Server.HandlerTimeout.Std())(middlewareChain)
	middlewareChain = hhttp.LimitRequestBody(cfg.Server.MaxBodyBytes)(middlewareChain)
	middlewareChain = hhttp.Logging(logger)(middlewareChain)
	middlewareChain = hhttp.Recover(logger)(middlewareChain)
	middlewareChain = tracing.Middleware(middlewareChain)
	middlewareChain = requestid.Middleware(middlewareChain)

	return middlewareChain
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, cfg *config.ServerConfig, handler http.Handler, version string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout.Std(),
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		WriteTimeout:      cfg.Server.WriteTimeout.Std(),
		IdleTimeout:       cfg.Server.IdleTimeout.Std(),
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", cfg.Server.Addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout.Std())
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
