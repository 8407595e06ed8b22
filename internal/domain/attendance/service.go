package attendance

import (
	"context"

	"github.com/codezenith/hrms-backend-go/internal/domain/user"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// CheckIn opens today's record for the actor, or for the employee named in
	// the request when the actor is admin/hr.
	CheckIn(ctx context.Context, actor user.Actor, req CheckInRequest) (AttendanceResponse, error)

	// CheckOut closes today's record. Status is not recomputed.
	CheckOut(ctx context.Context, actor user.Actor, req CheckOutRequest) (AttendanceResponse, error)

	// CorrectRecord is an administrative override without state-machine checks.
	CorrectRecord(ctx context.Context, actor user.Actor, req CorrectAttendanceRequest) (AttendanceResponse, error)

	GetTodayStats(ctx context.Context) (TodayStatsResponse, error)

	// GetToday returns the actor's record for today, nil when none exists.
	GetToday(ctx context.Context, actor user.Actor) (*AttendanceResponse, error)

	GetMyAttendance(ctx context.Context, actor user.Actor, filter AttendanceFilter) (ListAttendanceResponse, error)

	ListAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)
}
