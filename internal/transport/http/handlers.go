// @title LodgeView API
// @version 1.0.0
// @description Multi-tenant property revenue dashboard API

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/lodgeview/lodgeview/internal/audit"
	"github.com/lodgeview/lodgeview/internal/identity"
	"github.com/lodgeview/lodgeview/internal/observability/metrics"
	"github.com/lodgeview/lodgeview/internal/property"
	"github.com/lodgeview/lodgeview/internal/revenue"
)

// Handler holds HTTP handlers and dependencies
type Handler struct {
	resolver        identity.Resolver
	propertyService *property.Service
	revenueService  *revenue.Service
	auditLogger     audit.Logger
	meter           *metrics.Meter
}

// NewHandler creates a new HTTP handler
func NewHandler(
	resolver identity.Resolver,
	propertyService *property.Service,
	revenueService *revenue.Service,
	auditLogger audit.Logger,
	meter *metrics.Meter,
) *Handler {
	return &Handler{
		resolver:        resolver,
		propertyService: propertyService,
		revenueService:  revenueService,
		auditLogger:     auditLogger,
		meter:           meter,
	}
}

// NewRouter creates a new HTTP router
func NewRouter(h *Handler, rateLimiter *RateLimiter) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(RateLimitMiddleware(rateLimiter))
	r.Use(func(handler http.Handler) http.Handler {
		return otelhttp.NewHandler(handler, "http_request",
			otelhttp.WithSpanNameFormatter(func(operation string, r *http.Request) string {
				return r.Method + " " + r.URL.Path
			}),
		)
	})
	r.Use(MetricsMiddleware(h.meter))
	r.Use(LoggingMiddleware())
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// Health check
	r.Get("/health", h.HealthCheck)

	// Tenant-scoped dashboard surface; every route below requires a
	// verified identity.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(h.AuthMiddleware)

		r.Get("/properties", h.ListProperties)
		r.Get("/dashboard/summary", h.DashboardSummary)
	})

	return r
}

// HealthCheck reports service liveness
// @Summary Health Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
