package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/aevon-lab/chronicle/internal/core/config"
	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

type Server struct {
	Engine *gin.Engine
	Addr   string

	api             *gin.RouterGroup
	handler         http.Handler
	health          HealthChecker
	limiter         *userLimiter
	shutdownTimeout time.Duration
}

// HealthChecker is an interface for components that can report their health status.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// New builds the engine. /health is public; everything registered through
// API() requires a caller identity and is rate limited per caller.
func New(cfg *config.Config, health HealthChecker) *Server {
	if cfg.Server.Mode == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestID(), requestLogger())

	s := &Server{
		Engine:          r,
		Addr:            cfg.Server.Addr(),
		health:          health,
		shutdownTimeout: cfg.Server.ShutdownTimeout,
	}

	r.GET("/health", s.healthHandler)

	s.api = r.Group("/")
	s.api.Use(bodyLimit(int64(cfg.Server.MaxBodySizeMB)*1024*1024), identity(cfg.Auth.UserHeader))
	if cfg.RateLimit.Enabled {
		s.limiter = newUserLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
		s.api.Use(s.limiter.middleware())
	}

	s.handler = cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   []string{"ETag", requestIDHeader},
		AllowCredentials: cfg.CORS.AllowCredentials,
	}).Handler(r)

	return s
}

// API is the router group for authenticated routes.
func (s *Server) API() gin.IRouter {
	return s.api
}

// Handler is the engine wrapped with CORS handling.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if s.health != nil {
		if err := s.health.Ping(ctx); err != nil {
			slog.Error("[Server] Health check failed: database unreachable", "error", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"error":  "database unreachable",
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "connected",
	})
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.Addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("[Server] Starting HTTP server", "address", s.Addr)

	if s.limiter != nil {
		go s.limiter.sweepEvery(ctx, time.Minute)
	}

	go func() {
		<-ctx.Done()
		slog.Info("[Server] Stopping HTTP server", "timeout", s.shutdownTimeout)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("[Server] HTTP server forced to shutdown", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
