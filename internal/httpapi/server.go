// Package httpapi provides the HTTP API for launchpadd.
package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/launchpad/internal/advisor"
	"github.com/fyrsmithlabs/launchpad/internal/session"
	"github.com/fyrsmithlabs/launchpad/internal/store"
)

// Server provides HTTP endpoints for launchpadd.
type Server struct {
	echo    *echo.Echo
	store   *store.Store
	session *session.Session
	advisor *advisor.Service
	metrics *Metrics
	logger  *zap.Logger
	config  *Config
	now     func() time.Time
}

// Config holds HTTP server configuration.
type Config struct {
	Host string
	Port int
}

// NewServer creates a new HTTP server.
func NewServer(st *store.Store, sess *session.Session, adv *advisor.Service, logger *zap.Logger, cfg *Config) (*Server, error) {
	if st == nil {
		return nil, fmt.Errorf("store cannot be nil")
	}
	if sess == nil {
		return nil, fmt.Errorf("session cannot be nil")
	}
	if adv == nil {
		return nil, fmt.Errorf("advisor cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required for request tracking and debugging")
	}
	if cfg == nil {
		cfg = &Config{Host: "localhost", Port: 8344}
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	metrics := NewMetrics()

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(metrics.Middleware())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			duration := time.Since(start)

			logger.Info("http request",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Int("status", c.Response().Status),
				zap.Duration("duration", duration),
				zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			)

			return err
		}
	})

	s := &Server{
		echo:    e,
		store:   st,
		session: sess,
		advisor: adv,
		metrics: metrics,
		logger:  logger,
		config:  cfg,
		now:     time.Now,
	}

	s.registerRoutes()

	return s, nil
}

// registerRoutes sets up the HTTP endpoints.
func (s *Server) registerRoutes() {
	s.echo.GET("/health", s.handleHealth)
	s.echo.GET("/metrics", s.metrics.Handler())

	v1 := s.echo.Group("/api/v1")

	// Project CRUD and selection.
	v1.GET("/projects", s.handleListProjects)
	v1.POST("/projects", s.handleCreateProject)
	v1.GET("/projects/current", s.handleCurrentProject)
	v1.PUT("/projects/current", s.handleSelectProject)
	v1.GET("/projects/:id", s.handleGetProject)
	v1.PATCH("/projects/:id", s.handleRenameProject)
	v1.DELETE("/projects/:id", s.handleDeleteProject)

	// Intake and selections.
	v1.PUT("/projects/:id/idea", s.handleSaveIdea)
	v1.PUT("/projects/:id/name", s.handleSelectName)

	// Generation endpoints. Results are persisted only if the project is
	// still current when the model responds.
	p := v1.Group("/projects/:id")
	p.POST("/idea/generate", s.handleGenerateIdea)
	p.POST("/names", s.handleGenerateNames)
	p.POST("/logo", s.handleGenerateLogo)
	p.POST("/website", s.handleGenerateWebsite)
	p.POST("/marketing", s.handleGenerateMarketing)
	p.POST("/marketing/concepts", s.handleBrainstormCampaigns)
	p.POST("/marketing/campaigns", s.handleGenerateCampaign)
	p.POST("/pitch-deck", s.handleGeneratePitchDeck)
	p.POST("/pivots", s.handleGeneratePivots)
	p.POST("/mockup", s.handleGenerateMockup)
	p.POST("/full-plan", s.handleGenerateFullPlan)
	p.POST("/boardroom", s.handleBoardroom)
	p.POST("/focus-group/personas", s.handleFocusGroupPersonas)
	p.POST("/focus-group/sessions", s.handleFocusGroupSession)
	p.POST("/wargames/nemesis", s.handleGenerateNemesis)
	p.POST("/wargames/events", s.handleWargameEvent)
	p.POST("/wargames/turns", s.handleWargameTurn)
	p.POST("/competitors", s.handleAnalyzeCompetitors)
	p.POST("/gauntlet/start", s.handleGauntletStart)
	p.POST("/gauntlet/turns", s.handleGauntletTurn)
	p.POST("/mentor", s.handleMentorChat)
	p.POST("/assistant", s.handleAssistantChat)

	v1.POST("/speech", s.handleSpeech)
}

// HealthResponse is the response body for GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.logger.Info("starting http server", zap.String("addr", addr))
	return s.echo.Start(addr)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.echo.Shutdown(ctx)
}
