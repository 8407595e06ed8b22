package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create inserts a new record. A second record for the same employee and
	// day fails with ErrAlreadyCheckedIn.
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByEmployeeAndDate returns ErrAttendanceNotFound when the day has no record.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (Attendance, error)

	// SetCheckOut stamps checkOut only if it is still unset.
	SetCheckOut(ctx context.Context, id string, checkOut time.Time) (Attendance, error)

	// Update overwrites check-in, check-out, status and notes.
	Update(ctx context.Context, attendance Attendance) (Attendance, error)

	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)

	// CountByStatus groups the records of a day by status.
	CountByStatus(ctx context.Context, date time.Time) (map[Status]int64, error)
}
