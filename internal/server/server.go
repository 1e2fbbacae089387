package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/salarycalc/salary-calculator/internal/calculation"
	"github.com/salarycalc/salary-calculator/internal/config"
	"go.uber.org/zap"
)

// Server serves the calculator over HTTP: a JSON API under /api/v1 and the
// interactive HTML page at /.
type Server struct {
	cfg    *config.ServerConfig
	engine *calculation.CalculationEngine
	parser *config.InputParser
	logger *zap.Logger
	router *gin.Engine
}

// New wires the router. A nil logger disables request logging.
func New(cfg *config.ServerConfig, engine *calculation.CalculationEngine, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if engine == nil {
		engine = calculation.NewCalculationEngine()
	}

	parser := config.NewInputParser()
	parser.SetLogger(logger.Sugar())

	s := &Server{
		cfg:    cfg,
		engine: engine,
		parser: parser,
		logger: logger,
	}
	s.router = s.buildRouter()
	return s
}

// Handler returns the configured gin engine.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) buildRouter() *gin.Engine {
	gin.SetMode(s.cfg.GinMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(CorrelationIDMiddleware())
	r.Use(RequestLoggingMiddleware(s.logger))
	r.Use(configureCORS(s.cfg))

	r.GET("/health", s.health)
	r.GET("/", s.page)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/calculate", s.calculate)
		v1.POST("/budget", s.budget)
		v1.GET("/brackets", s.brackets)
		v1.GET("/assumptions", s.assumptions)
	}

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully within the
// configured timeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 20 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Server starting", zap.String("addr", s.cfg.Addr), zap.String("rules", s.engine.Rules.Name))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server", zap.Duration("timeout", s.cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	s.logger.Info("Server exited")
	return nil
}
