package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in / check-out state errors
	ErrAlreadyCheckedIn  = errors.New("already checked in for today")
	ErrNotCheckedIn      = errors.New("no check-in record found for today")
	ErrAlreadyCheckedOut = errors.New("already checked out for today")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrInvalidStatus      = errors.New("invalid attendance status")
)
