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

	config2 "station-reassignment-service/pkg/config"

	_ "station-reassignment-service/docs"
	"station-reassignment-service/internal/gateway"
	"station-reassignment-service/internal/handler"
	"station-reassignment-service/internal/metrics"
	"station-reassignment-service/internal/pacing"
	"station-reassignment-service/internal/repository"
	"station-reassignment-service/internal/router"
	"station-reassignment-service/internal/service"

	"github.com/go-playground/validator/v10"
)

// @title Station Reassignment Service API
// @version 1.0
// @description Batch station reassignment of personnel records
func main() {
	// Configure logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config2.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	pacer, err := pacing.New(cfg.Pacing.Mode, cfg.Pacing.Interval, cfg.Pacing.Burst)
	if err != nil {
		slog.Error("invalid pacing configuration", "error", err)
		os.Exit(1)
	}

	var (
		assignmentGateway   service.AssignmentGateway
		reassignmentHandler *handler.ReassignmentHandler
		pinger              handler.Pinger
	)

	switch cfg.GatewayMode {
	case config2.GatewayPostgres:
		pool, err := config2.InitDB(context.Background(), *cfg)
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		slog.Info("successfully connected to database")

		repo := repository.NewReassignmentRepository(pool)
		assignmentGateway = repo
		reassignmentHandler = handler.NewReassignmentHandler(service.NewReassignmentService(repo))
		pinger = pool
	default:
		assignmentGateway = gateway.NewHTTPGateway(gateway.HTTPGatewayConfig{
			BaseURL:      cfg.Remote.BaseURL,
			Token:        cfg.Remote.Token,
			TokenSecret:  cfg.Remote.TokenSecret,
			TokenSubject: cfg.Remote.TokenSubject,
			Timeout:      cfg.Remote.Timeout,
		}, nil)
		slog.Info("using remote reassignment API", "url", cfg.Remote.BaseURL)
	}

	// Initialize services
	tracker := service.NewProgressTracker()
	batchService := service.NewBatchService(assignmentGateway, pacer,
		service.WithProgress(service.MultiProgress{tracker, service.LogProgress{Logger: logger}}),
		service.WithMetrics(metrics.NewPrometheus(nil, "")),
		service.WithLogger(logger),
	)

	// Initialize handlers
	stopRuns, cancelRuns := context.WithCancel(context.Background())
	defer cancelRuns()
	validate := validator.New()
	r := router.SetupRouter(router.Handlers{
		Batch:        handler.NewBatchHandler(batchService, tracker, validate, cfg.BatchTimeout).WithShutdown(stopRuns),
		Reassignment: reassignmentHandler,
		Health:       handler.NewHealthHandler(pinger),
	}, cfg.RequestTimeout)

	slog.Info("successfully configured services and handlers")

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.BatchTimeout + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}
	srv.RegisterOnShutdown(cancelRuns)

	// Start server in goroutine
	go func() {
		slog.Info("starting server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	// Shutdown cancels running batches; each finishes the item in flight
	// and writes its partial report within this deadline.
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Remote.Timeout+30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
	}

	slog.Info("server stopped")
}
