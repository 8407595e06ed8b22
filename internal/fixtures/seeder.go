package fixtures

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/codezenith/hrms-backend-go/internal/domain/leave"
	"github.com/codezenith/hrms-backend-go/internal/domain/master/department"
	"github.com/codezenith/hrms-backend-go/internal/domain/schedule"
	"github.com/codezenith/hrms-backend-go/internal/domain/user"
	"github.com/codezenith/hrms-backend-go/internal/pkg/password"
	"github.com/codezenith/hrms-backend-go/internal/service/master"
)

// LeaveTypeCreator is the part of leave.LeaveService the seeder needs.
type LeaveTypeCreator interface {
	CreateLeaveType(ctx context.Context, req leave.CreateLeaveTypeRequest) (leave.LeaveTypeResponse, error)
}

// Result counts what a seed run inserted and what already existed.
type Result struct {
	Created int
	Skipped int
}

func (r *Result) track(err error, existsErrs ...error) error {
	if err == nil {
		r.Created++
		return nil
	}
	for _, target := range existsErrs {
		if errors.Is(err, target) {
			r.Skipped++
			return nil
		}
	}
	return err
}

// Seeder loads Defaults through the regular services so the same validation
// applies. Running it twice is safe: rows that already exist are skipped.
type Seeder struct {
	users      user.UserRepository
	master     master.MasterService
	schedule   schedule.ScheduleService
	leaveTypes LeaveTypeCreator
	logger     *slog.Logger
}

func NewSeeder(
	users user.UserRepository,
	masterService master.MasterService,
	scheduleService schedule.ScheduleService,
	leaveTypes LeaveTypeCreator,
	logger *slog.Logger,
) *Seeder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Seeder{
		users:      users,
		master:     masterService,
		schedule:   scheduleService,
		leaveTypes: leaveTypes,
		logger:     logger,
	}
}

func (s *Seeder) Seed(ctx context.Context, d Defaults) (Result, error) {
	var result Result

	if err := result.track(s.seedAdmin(ctx, d.Admin), user.ErrUserEmailExists); err != nil {
		return result, fmt.Errorf("failed to seed admin account: %w", err)
	}

	for _, dept := range d.Departments {
		_, err := s.master.CreateDepartment(ctx, dept.Request())
		if err := result.track(err, department.ErrDepartmentNameExists); err != nil {
			return result, fmt.Errorf("failed to seed department %q: %w", dept.Name, err)
		}
	}

	for _, shift := range d.Shifts {
		_, err := s.schedule.CreateShift(ctx, shift.Request())
		if err := result.track(err, schedule.ErrShiftNameExists); err != nil {
			return result, fmt.Errorf("failed to seed shift %q: %w", shift.Name, err)
		}
	}

	for _, lt := range d.LeaveTypes {
		_, err := s.leaveTypes.CreateLeaveType(ctx, lt.Request())
		if err := result.track(err, leave.ErrLeaveTypeNameExists); err != nil {
			return result, fmt.Errorf("failed to seed leave type %q: %w", lt.Name, err)
		}
	}

	for _, h := range d.Holidays {
		_, err := s.schedule.CreateHoliday(ctx, h.Request())
		if err := result.track(err, schedule.ErrHolidayExists); err != nil {
			return result, fmt.Errorf("failed to seed holiday %q: %w", h.Name, err)
		}
	}

	settings, err := d.SettingRequests()
	if err != nil {
		return result, err
	}
	for _, req := range settings {
		_, err := s.master.UpsertSetting(ctx, req)
		if err := result.track(err); err != nil {
			return result, fmt.Errorf("failed to seed setting %q: %w", req.Key, err)
		}
	}

	s.logger.InfoContext(ctx, "seed completed", slog.Int("created", result.Created), slog.Int("skipped", result.Skipped))
	return result, nil
}

func (s *Seeder) seedAdmin(ctx context.Context, admin AdminAccount) error {
	if admin.Email == "" {
		return errors.New("admin email is required")
	}
	if len(admin.Password) < password.MinLength {
		return fmt.Errorf("admin password must be at least %d characters", password.MinLength)
	}

	exists, err := s.users.ExistsByEmail(ctx, admin.Email)
	if err != nil {
		return fmt.Errorf("failed to check admin account: %w", err)
	}
	if exists {
		return user.ErrUserEmailExists
	}

	hash, err := password.Hash(admin.Password)
	if err != nil {
		return err
	}
	_, err = s.users.Create(ctx, user.User{
		Email:        admin.Email,
		Name:         admin.Name,
		PasswordHash: &hash,
		Role:         user.RoleAdmin,
		IsActive:     true,
	})
	return err
}
