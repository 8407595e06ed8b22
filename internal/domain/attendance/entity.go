package attendance

import (
	"time"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusLate    Status = "late"
	StatusAbsent  Status = "absent"
	StatusLeave   Status = "leave"
)

var StatusValues = []string{
	string(StatusPresent),
	string(StatusLate),
	string(StatusAbsent),
	string(StatusLeave),
}

type Attendance struct {
	ID         string
	EmployeeID string
	// Date is the working day, midnight in the reference timezone.
	Date      time.Time
	CheckIn   *time.Time
	CheckOut  *time.Time
	Status    Status
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Join
	EmployeeName *string
	EmployeeCode *string
	Department   *string
}

// State is the position of a day's record in the check-in/check-out lifecycle.
type State int

const (
	StateNoRecord State = iota
	StateCheckedIn
	StateCheckedOut
)

func (a *Attendance) State() State {
	switch {
	case a == nil || a.CheckIn == nil:
		return StateNoRecord
	case a.CheckOut == nil:
		return StateCheckedIn
	default:
		return StateCheckedOut
	}
}

// WorkedHours is checkOut - checkIn in hours, or nil while either is missing.
// A corrected record may yield a negative value; it is reported as is.
func (a Attendance) WorkedHours() *float64 {
	if a.CheckIn == nil || a.CheckOut == nil {
		return nil
	}
	h := a.CheckOut.Sub(*a.CheckIn).Hours()
	return &h
}

// Day truncates t to midnight of its calendar day in loc.
func Day(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
