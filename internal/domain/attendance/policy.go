package attendance

import (
	"time"

	"github.com/codezenith/hrms-backend-go/internal/domain/schedule"
)

// ClassifyCheckIn decides whether a check-in on the given attendance day is on
// time. Without a shift there is no reference start, so the result is present.
// A check-in exactly at start+grace is still present.
func ClassifyCheckIn(shift *schedule.Shift, checkIn time.Time, date time.Time) Status {
	if shift == nil {
		return StatusPresent
	}

	threshold := shift.StartFor(date, checkIn).Add(shift.Grace())
	if checkIn.After(threshold) {
		return StatusLate
	}
	return StatusPresent
}
