package award

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckBreak_Compliant(t *testing.T) {
	bc := CheckBreak(date(1, 20, 0), date(2, 9, 0), 10)

	assert.True(t, bc.Compliant)
	assert.InDelta(t, 13.0, bc.GapHours, 1e-9)
	assert.InDelta(t, 10.0, bc.MinRequiredHours, 1e-9)
	assert.Zero(t, bc.ShortfallHours)
}

func TestCheckBreak_Violation(t *testing.T) {
	bc := CheckBreak(date(2, 2, 0), date(2, 9, 0), 10)

	assert.False(t, bc.Compliant)
	assert.InDelta(t, 7.0, bc.GapHours, 1e-9)
	assert.InDelta(t, 3.0, bc.ShortfallHours, 1e-9)
	assert.Contains(t, bc.Message, "minimum break not met")
}

func TestCheckBreak_ExactMinimumIsCompliant(t *testing.T) {
	bc := CheckBreak(date(1, 23, 0), date(2, 9, 0), 10)

	assert.True(t, bc.Compliant)
	assert.InDelta(t, 10.0, bc.GapHours, 1e-9)
}
