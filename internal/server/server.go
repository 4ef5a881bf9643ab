package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/GriffinCanCode/uncertain/internal/api/middleware"
	"github.com/GriffinCanCode/uncertain/internal/config"
	handlers "github.com/GriffinCanCode/uncertain/internal/http"
	"github.com/GriffinCanCode/uncertain/internal/monitoring"
	"github.com/GriffinCanCode/uncertain/internal/providers/propagation"
	"github.com/GriffinCanCode/uncertain/internal/service"
	"github.com/GriffinCanCode/uncertain/internal/worksheet"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Server wraps the HTTP server and dependencies
type Server struct {
	cfg      *config.Config
	log      *zap.Logger
	router   *gin.Engine
	registry *service.Registry
	metrics  *monitoring.Metrics
	http     *http.Server
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config, log *zap.Logger) (*Server, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = zap.NewNop()
	}

	metrics := monitoring.NewMetrics()
	serviceRegistry := service.NewRegistry()

	log.Info("registering service providers")
	if err := serviceRegistry.Register(propagation.NewProvider(metrics)); err != nil {
		return nil, fmt.Errorf("register propagation provider: %w", err)
	}

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.Logger(log),
		middleware.Recovery(log),
		middleware.CORS(middleware.DefaultCORSConfig(cfg.CORS.AllowOrigins)),
		monitoring.Middleware(metrics),
	)
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: float64(cfg.RateLimit.RequestsPerSecond),
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	h := handlers.NewHandlers(serviceRegistry, handlers.Options{
		MaxWorksheetBytes: cfg.Worksheet.MaxBytes,
		Limits:            worksheet.Limits{MaxSteps: cfg.Worksheet.MaxSteps},
		Observer:          metrics,
		Logger:            log,
	})

	router.GET("/", h.Root)
	router.GET("/health", h.Health)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	router.GET("/services", h.ListServices)
	router.POST("/services/execute", h.ExecuteService)

	router.POST("/worksheets/evaluate", h.EvaluateWorksheet)

	return &Server{
		cfg:      cfg,
		log:      log,
		router:   router,
		registry: serviceRegistry,
		metrics:  metrics,
		http: &http.Server{
			Addr:              cfg.Server.Addr(),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts the server and blocks until it stops. It returns nil after
// Shutdown, even when Shutdown came first.
func (s *Server) Run() error {
	s.log.Info("starting server", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests. Safe to call from another goroutine
// than Run.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("shutting down server")
	return s.http.Shutdown(ctx)
}
