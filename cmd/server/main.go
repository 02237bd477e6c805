// Command server starts the scheduleboard HTTP API.
package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"scheduleboard/config"
	delivery "scheduleboard/internal/delivery/http"
	"scheduleboard/internal/delivery/http/controllers"
	"scheduleboard/internal/delivery/http/middleware"
	"scheduleboard/internal/repository/postgres"
	"scheduleboard/internal/services"
	"scheduleboard/internal/store"
)

const (
	serviceTimeout  = 5 * time.Second
	shutdownTimeout = 10 * time.Second
)

func main() {
	logger := config.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("load config", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		logger.Error("ping database", "err", err)
		os.Exit(1)
	}

	repo := postgres.NewScheduleRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		logger.Error("ensure schema", "err", err)
		os.Exit(1)
	}

	st, err := store.New(cfg.StoreStrategy)
	if err != nil {
		logger.Error("init store", "err", err)
		os.Exit(1)
	}
	rows, err := repo.ListAll(ctx)
	if err != nil {
		logger.Error("load schedules", "err", err)
		os.Exit(1)
	}
	st.Load(rows)
	logger.Info("store seeded", "strategy", cfg.StoreStrategy, "schedules", len(rows))

	svc := services.NewScheduleService(st, repo, serviceTimeout)
	ctrl := controllers.NewScheduleController(logger, svc)

	var handler http.Handler = delivery.NewRouter(ctrl)
	handler = middleware.CORS(cfg.CORSAllowedOrigins, handler)
	handler = middleware.LoggingMiddleware(logger, handler)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	go func() {
		logger.Info("listening", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("serve", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "err", err)
	}
}
