package leave

import (
	"time"
)

type LeaveType struct {
	ID           string
	Name         string
	DaysAllowed  int
	CarryForward bool
	Description  *string
	Color        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

const DefaultLeaveTypeColor = "#3b82f6"

type LeaveRequestStatus string

const (
	LeaveRequestStatusPending  LeaveRequestStatus = "pending"
	LeaveRequestStatusApproved LeaveRequestStatus = "approved"
	LeaveRequestStatusRejected LeaveRequestStatus = "rejected"
)

var LeaveRequestStatusValues = []string{
	string(LeaveRequestStatusPending),
	string(LeaveRequestStatusApproved),
	string(LeaveRequestStatusRejected),
}

// transitions lists the statuses each status may move to.
var transitions = map[LeaveRequestStatus][]LeaveRequestStatus{
	LeaveRequestStatusPending: {LeaveRequestStatusApproved, LeaveRequestStatusRejected},
}

func (s LeaveRequestStatus) CanTransitionTo(next LeaveRequestStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Blocking reports whether a request in this status reserves its dates.
func (s LeaveRequestStatus) Blocking() bool {
	return s == LeaveRequestStatusPending || s == LeaveRequestStatusApproved
}

// LeaveRequest entity
type LeaveRequest struct {
	ID         string
	EmployeeID string
	// LeaveType is the leave type's name.
	LeaveType string

	FromDate time.Time
	ToDate   time.Time
	Days     int

	Reason string

	Status       LeaveRequestStatus
	ApprovedBy   *string
	ApprovedDate *time.Time

	AppliedDate time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Relationships (for responses)
	EmployeeName  *string
	EmployeeCode  *string
	EmployeeEmail *string
}

func (r LeaveRequest) Range() DateRange {
	return DateRange{From: r.FromDate, To: r.ToDate}
}
