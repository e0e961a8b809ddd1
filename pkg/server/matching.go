package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/careloop/rosterengine/pkg/core/award"
	"github.com/careloop/rosterengine/pkg/core/matching"
)

// match handles POST /match
func (s *Server) match(c *gin.Context) {
	var req matching.MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := matching.Match(req, s.matchCfg, s.calendar)
	if err != nil {
		if award.IsValidationError(err) || errors.Is(err, matching.ErrBadWeights) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		s.logger.Error("matching failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, result)
}
