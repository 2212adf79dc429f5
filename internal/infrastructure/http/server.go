package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/mrops-br/inventory-dashboard-api/internal/infrastructure/config"
	"github.com/mrops-br/inventory-dashboard-api/internal/infrastructure/http/handler"
	"github.com/mrops-br/inventory-dashboard-api/internal/infrastructure/http/middleware"
	"github.com/mrops-br/inventory-dashboard-api/internal/infrastructure/telemetry"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
)

// Handlers groups the route handlers the server mounts.
type Handlers struct {
	Product   *handler.ProductHandler
	Analytics *handler.AnalyticsHandler
	Auth      *handler.AuthHandler
}

// Server represents the HTTP server
type Server struct {
	router    *chi.Mux
	server    *http.Server
	config    *config.ServerConfig
	handlers  Handlers
	gate      middleware.SessionAuthorizer
	logger    *slog.Logger
	telemetry *telemetry.Telemetry
}

// NewServer creates a new HTTP server
func NewServer(
	cfg *config.ServerConfig,
	handlers Handlers,
	gate middleware.SessionAuthorizer,
	logger *slog.Logger,
	telem *telemetry.Telemetry,
) *Server {
	s := &Server{
		router:    chi.NewRouter(),
		config:    cfg,
		handlers:  handlers,
		gate:      gate,
		logger:    logger,
		telemetry: telem,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// setupMiddleware configures the middleware chain
func (s *Server) setupMiddleware() {
	// Structured JSON logging middleware (replaces chimiddleware.Logger)
	s.router.Use(middleware.StructuredLogger(s.logger))
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(chimiddleware.RequestID)

	// Add HTTP route to context so all logs include it automatically
	s.router.Use(middleware.HTTPRouteContext())

	meter := s.telemetry.MeterProvider.Meter("inventory-api")
	s.router.Use(middleware.ActiveRequestsMiddleware(meter))
}

// setupRoutes configures the API routes
func (s *Server) setupRoutes() {
	s.router.Route("/auth", func(r chi.Router) {
		r.Post("/signin", s.handlers.Auth.SignIn)
		r.Post("/signout", s.handlers.Auth.SignOut)
		r.Get("/session", s.handlers.Auth.Session)
	})

	// Catalog views require an authenticated session.
	s.router.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession(s.gate))

		r.Route("/products", func(r chi.Router) {
			r.Post("/", s.handlers.Product.CreateProduct)
			r.Get("/", s.handlers.Product.ListProducts)
			r.Get("/{id}", s.handlers.Product.GetProduct)
			r.Patch("/{id}", s.handlers.Product.UpdateProduct)
			r.Delete("/{id}", s.handlers.Product.DeleteProduct)
		})

		r.Get("/dashboard", s.handlers.Analytics.Dashboard)
		r.Get("/analytics", s.handlers.Analytics.Analytics)
	})

	// Health check endpoint
	s.router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// Prometheus metrics endpoint - exposes OpenTelemetry metrics
	s.router.Get("/metrics", promhttp.Handler().ServeHTTP)
}

// Router exposes the configured handler chain, mainly for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%s", s.config.Host, s.config.Port)
	s.logger.Info("Starting HTTP server",
		slog.String("address", addr),
	)

	// Wrap the entire router with otelhttp for automatic HTTP metrics and tracing
	wrapped := otelhttp.NewHandler(s.router, "http-server",
		otelhttp.WithSpanNameFormatter(func(operation string, r *http.Request) string {
			return fmt.Sprintf("%s %s", r.Method, r.URL.Path)
		}),
		otelhttp.WithMeterProvider(s.telemetry.MeterProvider),
		otelhttp.WithMetricAttributesFn(func(r *http.Request) []attribute.KeyValue {
			// Extract route pattern from Chi context
			routePattern := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					routePattern = pattern
				}
			}
			return []attribute.KeyValue{
				attribute.String("http.route", routePattern),
			}
		}),
	)

	s.server = &http.Server{
		Addr:    addr,
		Handler: wrapped,
	}

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	s.logger.Info("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}
