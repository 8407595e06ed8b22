package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/codezenith/hrms-backend-go/internal/domain/attendance"
	"github.com/codezenith/hrms-backend-go/internal/domain/audit"
	"github.com/codezenith/hrms-backend-go/internal/domain/employee"
	"github.com/codezenith/hrms-backend-go/internal/domain/schedule"
	"github.com/codezenith/hrms-backend-go/internal/domain/user"
	"github.com/codezenith/hrms-backend-go/internal/pkg/lock"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/codezenith/hrms-backend-go/internal/service/attendance"

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	schedule.ShiftRepository
	locker   lock.Locker
	recorder audit.Recorder
	loc      *time.Location
	now      func() time.Time
	tracer   trace.Tracer
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	shiftRepo schedule.ShiftRepository,
	locker lock.Locker,
	recorder audit.Recorder,
	loc *time.Location,
) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		ShiftRepository:      shiftRepo,
		locker:               locker,
		recorder:             recorder,
		loc:                  loc,
		now:                  time.Now,
		tracer:               otel.Tracer(tracerName),
	}
}

// WithClock replaces the time source, mainly for tests.
func (a *AttendanceServiceImpl) WithClock(now func() time.Time) *AttendanceServiceImpl {
	a.now = now
	return a
}

func (a *AttendanceServiceImpl) localNow() time.Time {
	return a.now().In(a.loc)
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, actor user.Actor, req attendance.CheckInRequest) (resp attendance.AttendanceResponse, err error) {
	ctx, span := a.tracer.Start(ctx, "attendance.CheckIn")
	defer func() { endSpan(span, err) }()

	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := employee.ResolveTarget(ctx, a.EmployeeRepository, actor, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	span.SetAttributes(attribute.String("employee.id", emp.ID))

	now := a.localNow()
	today := attendance.Day(now, a.loc)

	var created attendance.Attendance
	err = a.locker.WithLock(ctx, lock.EmployeeKey("attendance", emp.ID), func(ctx context.Context) error {
		shift, err := a.shiftOf(ctx, emp)
		if err != nil {
			return err
		}

		day := today
		if shift != nil {
			day = shift.InstanceDate(today, now)
		}

		_, err = a.AttendanceRepository.GetByEmployeeAndDate(ctx, emp.ID, day)
		if err == nil {
			return attendance.ErrAlreadyCheckedIn
		}
		if !errors.Is(err, attendance.ErrAttendanceNotFound) {
			return fmt.Errorf("failed to get today's attendance: %w", err)
		}

		created, err = a.AttendanceRepository.Create(ctx, attendance.Attendance{
			EmployeeID: emp.ID,
			Date:       day,
			CheckIn:    &now,
			Status:     attendance.ClassifyCheckIn(shift, now, day),
			Notes:      req.Notes,
		})
		return err
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	slog.InfoContext(ctx, "check-in recorded",
		slog.String("employee_id", emp.ID),
		slog.String("status", string(created.Status)),
	)
	return attendance.NewAttendanceResponse(created), nil
}

// shiftOf returns the employee's assigned shift, or nil when none is assigned
// or the reference is dangling.
func (a *AttendanceServiceImpl) shiftOf(ctx context.Context, emp employee.Employee) (*schedule.Shift, error) {
	if emp.ShiftID == nil {
		return nil, nil
	}
	shift, err := a.ShiftRepository.GetByID(ctx, *emp.ShiftID)
	if errors.Is(err, schedule.ErrShiftNotFound) {
		slog.WarnContext(ctx, "employee references a missing shift",
			slog.String("employee_id", emp.ID),
			slog.String("shift_id", *emp.ShiftID),
		)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}
	return &shift, nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, actor user.Actor, req attendance.CheckOutRequest) (resp attendance.AttendanceResponse, err error) {
	ctx, span := a.tracer.Start(ctx, "attendance.CheckOut")
	defer func() { endSpan(span, err) }()

	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := employee.ResolveTarget(ctx, a.EmployeeRepository, actor, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	span.SetAttributes(attribute.String("employee.id", emp.ID))

	now := a.localNow()

	var updated attendance.Attendance
	err = a.locker.WithLock(ctx, lock.EmployeeKey("attendance", emp.ID), func(ctx context.Context) error {
		record, err := a.openRecord(ctx, emp, now)
		if err != nil {
			return err
		}

		switch record.State() {
		case attendance.StateNoRecord:
			return attendance.ErrNotCheckedIn
		case attendance.StateCheckedOut:
			return attendance.ErrAlreadyCheckedOut
		}

		updated, err = a.AttendanceRepository.SetCheckOut(ctx, record.ID, now)
		return err
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	slog.InfoContext(ctx, "check-out recorded", slog.String("employee_id", emp.ID))
	return attendance.NewAttendanceResponse(updated), nil
}

// openRecord finds the record a check-out applies to. An overnight shift's
// check-out lands on the next calendar day, so when today has no record the
// previous day's still-open record is used.
func (a *AttendanceServiceImpl) openRecord(ctx context.Context, emp employee.Employee, now time.Time) (*attendance.Attendance, error) {
	today := attendance.Day(now, a.loc)

	record, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, emp.ID, today)
	if err == nil {
		return &record, nil
	}
	if !errors.Is(err, attendance.ErrAttendanceNotFound) {
		return nil, fmt.Errorf("failed to get today's attendance: %w", err)
	}

	shift, err := a.shiftOf(ctx, emp)
	if err != nil {
		return nil, err
	}
	if shift == nil || !shift.SpansMidnight() {
		return nil, attendance.ErrNotCheckedIn
	}

	previous, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, emp.ID, today.AddDate(0, 0, -1))
	if errors.Is(err, attendance.ErrAttendanceNotFound) {
		return nil, attendance.ErrNotCheckedIn
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get previous attendance: %w", err)
	}
	if previous.State() != attendance.StateCheckedIn {
		return nil, attendance.ErrNotCheckedIn
	}
	return &previous, nil
}

// CorrectRecord implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CorrectRecord(ctx context.Context, actor user.Actor, req attendance.CorrectAttendanceRequest) (resp attendance.AttendanceResponse, err error) {
	ctx, span := a.tracer.Start(ctx, "attendance.CorrectRecord")
	defer func() { endSpan(span, err) }()

	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record, err := a.AttendanceRepository.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	before := snapshot(record)

	req.Apply(&record)
	updated, err := a.AttendanceRepository.Update(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	a.recorder.Record(ctx, audit.NewEntry(actor, audit.ActionAttendanceCorrect, "attendance", updated.ID, map[string]any{
		"employee_id": updated.EmployeeID,
		"before":      before,
		"after":       snapshot(updated),
	}))

	return attendance.NewAttendanceResponse(updated), nil
}

func snapshot(a attendance.Attendance) map[string]any {
	return map[string]any{
		"check_in":  a.CheckIn,
		"check_out": a.CheckOut,
		"status":    a.Status,
		"notes":     a.Notes,
	}
}

// GetTodayStats implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetTodayStats(ctx context.Context) (attendance.TodayStatsResponse, error) {
	today := attendance.Day(a.localNow(), a.loc)

	counts, err := a.AttendanceRepository.CountByStatus(ctx, today)
	if err != nil {
		return attendance.TodayStatsResponse{}, fmt.Errorf("failed to count attendance: %w", err)
	}
	active, err := a.EmployeeRepository.CountActive(ctx)
	if err != nil {
		return attendance.TodayStatsResponse{}, fmt.Errorf("failed to count employees: %w", err)
	}

	stats := attendance.ComputeDailyStats(counts, active)
	stats.Date = today
	return attendance.NewTodayStatsResponse(stats), nil
}

// GetToday implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetToday(ctx context.Context, actor user.Actor) (*attendance.AttendanceResponse, error) {
	emp, err := employee.ResolveActor(ctx, a.EmployeeRepository, actor)
	if err != nil {
		return nil, err
	}

	now := a.localNow()
	day := attendance.Day(now, a.loc)
	shift, err := a.shiftOf(ctx, emp)
	if err != nil {
		return nil, err
	}
	if shift != nil {
		day = shift.InstanceDate(day, now)
	}

	record, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, emp.ID, day)
	if errors.Is(err, attendance.ErrAttendanceNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get today's attendance: %w", err)
	}

	resp := attendance.NewAttendanceResponse(record)
	return &resp, nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, actor user.Actor, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	emp, err := employee.ResolveActor(ctx, a.EmployeeRepository, actor)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}
	filter.EmployeeID = &emp.ID
	return a.ListAttendance(ctx, filter)
}

// ListAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, total, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, attendance.NewAttendanceResponse(record))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))
	showing := fmt.Sprintf("%d-%d of %d", filter.Offset()+1, min(filter.Page*filter.Limit, int(total)), total)
	if total == 0 {
		showing = "0 of 0"
	}

	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		TotalPages:  totalPages,
		Showing:     showing,
		Attendances: responses,
	}, nil
}
