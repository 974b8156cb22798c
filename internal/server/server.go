package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mkrsna/nse-advisor/internal/config"
	"github.com/mkrsna/nse-advisor/internal/logger"
	"github.com/mkrsna/nse-advisor/internal/recommend"
	"github.com/mkrsna/nse-advisor/internal/telegram"
)

// Recommender runs one query through the agent pipeline. *agents.Pipeline
// implements it.
type Recommender interface {
	Run(ctx context.Context, query string, intent recommend.Intent) (recommend.Result, error)
}

type Server struct {
	httpServer *http.Server
	pipeline   Recommender
	notifier   *telegram.Notifier
	config     *config.Config
	logger     *logger.Logger
}

func NewServer(p Recommender, n *telegram.Notifier, cfg *config.Config, log *logger.Logger) *Server {
	s := &Server{
		pipeline: p,
		notifier: n,
		config:   cfg,
		logger:   log,
	}

	s.httpServer = &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: s.Handler(),
		// No WriteTimeout: the pipeline legitimately takes minutes.
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

// Handler builds the routed, middleware-wrapped handler. Exposed separately
// so tests can drive it through httptest.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/recommend", s.handleRecommend)
	return chainMiddlewares(mux, withCORS, s.withLogging)
}

func (s *Server) Start() error {
	s.logger.Info("advisord listening", "port", s.config.Server.Port)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
