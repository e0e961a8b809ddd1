package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/careloop/rosterengine/pkg/core/award"
)

// calculateRequest is the wire form of a costing request
type calculateRequest struct {
	BaseHourlyRate   float64    `json:"base_hourly_rate" binding:"required,gt=0"`
	WorkerLevel      int        `json:"worker_level" binding:"required,min=1"`
	StartTime        time.Time  `json:"start_time" binding:"required"`
	EndTime          time.Time  `json:"end_time" binding:"required"`
	IsSleepover      bool       `json:"is_sleepover"`
	PublicHoliday    string     `json:"public_holiday"`
	PreviousShiftEnd *time.Time `json:"previous_shift_end"`
	BudgetLimit      *float64   `json:"budget_limit"`
}

// calculate handles POST /calculate
func (s *Server) calculate(c *gin.Context) {
	var req calculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	breakdown, err := award.Calculate(award.ShiftRequest{
		BaseHourlyRate:   req.BaseHourlyRate,
		WorkerLevel:      req.WorkerLevel,
		Start:            req.StartTime,
		End:              req.EndTime,
		IsSleepover:      req.IsSleepover,
		PublicHoliday:    req.PublicHoliday,
		PreviousShiftEnd: req.PreviousShiftEnd,
		BudgetLimit:      req.BudgetLimit,
	}, s.awardCfg, s.calendar)
	if err != nil {
		if award.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		s.logger.Error("costing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, breakdown)
}
