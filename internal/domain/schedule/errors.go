package schedule

import "errors"

var (
	// Shift errors
	ErrShiftNotFound    = errors.New("shift not found")
	ErrShiftNameExists  = errors.New("shift with this name already exists")
	ErrShiftInUse       = errors.New("shift is assigned to one or more employees")
	ErrInvalidClockTime = errors.New("time must be in HH:MM 24h format")

	// Holiday errors
	ErrHolidayNotFound = errors.New("holiday not found")
	ErrHolidayExists   = errors.New("a holiday already exists on this date")
)
