package schedule

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/codezenith/hrms-backend-go/internal/domain/schedule"
)

type scheduleServiceImpl struct {
	shiftRepo   schedule.ShiftRepository
	holidayRepo schedule.HolidayRepository
}

func NewScheduleService(shiftRepo schedule.ShiftRepository, holidayRepo schedule.HolidayRepository) schedule.ScheduleService {
	return &scheduleServiceImpl{
		shiftRepo:   shiftRepo,
		holidayRepo: holidayRepo,
	}
}

// ==================== SHIFT OPERATIONS ====================

// CreateShift implements schedule.ScheduleService.
func (s *scheduleServiceImpl) CreateShift(ctx context.Context, req schedule.CreateShiftRequest) (schedule.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ShiftResponse{}, err
	}

	created, err := s.shiftRepo.Create(ctx, req.ToShift())
	if err != nil {
		return schedule.ShiftResponse{}, err
	}
	slog.InfoContext(ctx, "shift created",
		slog.String("shift_id", created.ID),
		slog.Bool("spans_midnight", created.SpansMidnight()),
	)
	return schedule.NewShiftResponse(created), nil
}

// ListShifts implements schedule.ScheduleService.
func (s *scheduleServiceImpl) ListShifts(ctx context.Context) ([]schedule.ShiftResponse, error) {
	shifts, err := s.shiftRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}

	responses := make([]schedule.ShiftResponse, 0, len(shifts))
	for _, shift := range shifts {
		responses = append(responses, schedule.NewShiftResponse(shift))
	}
	return responses, nil
}

// UpdateShift implements schedule.ScheduleService.
func (s *scheduleServiceImpl) UpdateShift(ctx context.Context, req schedule.UpdateShiftRequest) (schedule.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ShiftResponse{}, err
	}

	existing, err := s.shiftRepo.GetByID(ctx, req.ID)
	if err != nil {
		return schedule.ShiftResponse{}, err
	}

	req.Apply(&existing)
	updated, err := s.shiftRepo.Update(ctx, existing)
	if err != nil {
		return schedule.ShiftResponse{}, err
	}
	return schedule.NewShiftResponse(updated), nil
}

// DeleteShift implements schedule.ScheduleService.
func (s *scheduleServiceImpl) DeleteShift(ctx context.Context, id string) error {
	return s.shiftRepo.Delete(ctx, id)
}

// ==================== HOLIDAY OPERATIONS ====================

// CreateHoliday implements schedule.ScheduleService.
func (s *scheduleServiceImpl) CreateHoliday(ctx context.Context, req schedule.CreateHolidayRequest) (schedule.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.HolidayResponse{}, err
	}

	exists, err := s.holidayRepo.ExistsOn(ctx, req.ParsedDate)
	if err != nil {
		return schedule.HolidayResponse{}, fmt.Errorf("failed to check holiday date: %w", err)
	}
	if exists {
		return schedule.HolidayResponse{}, schedule.ErrHolidayExists
	}

	created, err := s.holidayRepo.Create(ctx, schedule.Holiday{
		Name:        req.Name,
		Date:        req.ParsedDate,
		Type:        schedule.HolidayType(req.Type),
		Description: req.Description,
	})
	if err != nil {
		return schedule.HolidayResponse{}, err
	}
	return schedule.NewHolidayResponse(created), nil
}

// ListHolidays implements schedule.ScheduleService.
func (s *scheduleServiceImpl) ListHolidays(ctx context.Context, filter schedule.HolidayFilter) ([]schedule.HolidayResponse, error) {
	holidays, err := s.holidayRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	responses := make([]schedule.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, schedule.NewHolidayResponse(h))
	}
	return responses, nil
}

// UpdateHoliday implements schedule.ScheduleService.
func (s *scheduleServiceImpl) UpdateHoliday(ctx context.Context, req schedule.UpdateHolidayRequest) (schedule.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.HolidayResponse{}, err
	}

	existing, err := s.holidayRepo.GetByID(ctx, req.ID)
	if err != nil {
		return schedule.HolidayResponse{}, err
	}

	req.Apply(&existing)
	updated, err := s.holidayRepo.Update(ctx, existing)
	if err != nil {
		return schedule.HolidayResponse{}, err
	}
	return schedule.NewHolidayResponse(updated), nil
}

// DeleteHoliday implements schedule.ScheduleService.
func (s *scheduleServiceImpl) DeleteHoliday(ctx context.Context, id string) error {
	return s.holidayRepo.Delete(ctx, id)
}
