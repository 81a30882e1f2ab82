package router

import (
	"net/http"
	"time"

	middleware2 "station-reassignment-service/pkg/middleware"

	"station-reassignment-service/internal/handler"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Handlers struct {
	Batch        *handler.BatchHandler
	Reassignment *handler.ReassignmentHandler // nil without a database
	Health       *handler.HealthHandler
	Metrics      http.Handler // promhttp.Handler() if nil
}

func SetupRouter(h Handlers, requestTimeout time.Duration) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware2.LoggingMiddleware)

	metrics := h.Metrics
	if metrics == nil {
		metrics = promhttp.Handler()
	}

	// Short requests
	r.Group(func(r chi.Router) {
		if requestTimeout > 0 {
			r.Use(chimiddleware.Timeout(requestTimeout))
		}

		r.Get("/swagger/*", httpSwagger.WrapHandler)
		r.Head("/health", h.Health.Health)
		r.Get("/health", h.Health.Health)
		r.Handle("/metrics", metrics)

		r.Get("/reassignments/batch/progress", h.Batch.GetProgress)
		if h.Reassignment != nil {
			r.Get("/reassignments", h.Reassignment.ListReassignments)
		}
	})

	// Batch runs are paced and bounded by the handler's own timeout.
	r.Post("/reassignments/batch", h.Batch.SubmitBatch)

	return r
}
