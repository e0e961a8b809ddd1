// Package server exposes the costing and matching engines over HTTP/JSON.
// Both engines are pure functions over the request plus configuration
// loaded once at startup, so the handlers hold no per-request state.
package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/careloop/rosterengine/internal/config"
	"github.com/careloop/rosterengine/pkg/core/award"
	"github.com/careloop/rosterengine/pkg/core/matching"
)

// Server wires the two engines onto a gin router
type Server struct {
	awardCfg award.Config
	matchCfg matching.Config
	calendar award.HolidayCalendar
	logger   *zap.Logger
	router   *gin.Engine
}

// New builds a Server from validated configuration.
func New(cfg *config.Config, logger *zap.Logger) (*Server, error) {
	calendar, err := cfg.HolidayCalendar()
	if err != nil {
		return nil, err
	}

	s := &Server{
		awardCfg: cfg.AwardConfig(),
		matchCfg: cfg.MatchingConfig(),
		calendar: calendar,
		logger:   logger,
	}

	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger())

	router.GET("/health", s.health)
	router.POST("/calculate", s.calculate)
	router.POST("/match", s.match)

	s.router = router
	return s, nil
}

// Handler returns the underlying http.Handler, used by tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until the listener fails.
func (s *Server) Run(addr string) error {
	s.logger.Info("serving roster engines", zap.String("addr", addr))
	return s.router.Run(addr)
}

// requestLogger tags each request with an id and logs one line on completion
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		c.Next()

		s.logger.Info("request",
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "roster-engines",
	})
}
