package award

import (
	"fmt"
	"time"
)

// CheckBreak compares the gap between the previous shift's end and the next
// shift's start against the minimum break requirement. A violation is
// advisory: the result carries a warning message but costing proceeds, so a
// coordinator can override with eyes open.
func CheckBreak(previousShiftEnd, shiftStart time.Time, minBreakHours float64) *BreakCompliance {
	gap := shiftStart.Sub(previousShiftEnd).Hours()

	if gap >= minBreakHours {
		return &BreakCompliance{
			Compliant:        true,
			GapHours:         round2(gap),
			MinRequiredHours: minBreakHours,
			Message:          fmt.Sprintf("compliant: %.1fhr break (min: %.0fhr)", gap, minBreakHours),
		}
	}

	return &BreakCompliance{
		Compliant:        false,
		GapHours:         round2(gap),
		MinRequiredHours: minBreakHours,
		ShortfallHours:   round2(minBreakHours - gap),
		Message: fmt.Sprintf("minimum break not met: only %.1fhr since previous shift (min: %.0fhr)",
			gap, minBreakHours),
	}
}
