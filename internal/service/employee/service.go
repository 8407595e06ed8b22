package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/codezenith/hrms-backend-go/internal/domain/audit"
	"github.com/codezenith/hrms-backend-go/internal/domain/employee"
	"github.com/codezenith/hrms-backend-go/internal/domain/schedule"
	"github.com/codezenith/hrms-backend-go/internal/domain/user"
	"github.com/codezenith/hrms-backend-go/internal/pkg/database"
	"github.com/codezenith/hrms-backend-go/internal/pkg/email"
	"github.com/codezenith/hrms-backend-go/internal/pkg/password"
)

type EmployeeServiceImpl struct {
	txManager    database.TxManager
	employeeRepo employee.EmployeeRepository
	userRepo     user.UserRepository
	shiftRepo    schedule.ShiftRepository
	recorder     audit.Recorder
	mailer       *email.Dispatcher
	loginURL     string
}

func NewEmployeeService(
	txManager database.TxManager,
	employeeRepo employee.EmployeeRepository,
	userRepo user.UserRepository,
	shiftRepo schedule.ShiftRepository,
	recorder audit.Recorder,
	mailer *email.Dispatcher,
	frontendURL string,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		txManager:    txManager,
		employeeRepo: employeeRepo,
		userRepo:     userRepo,
		shiftRepo:    shiftRepo,
		recorder:     recorder,
		mailer:       mailer,
		loginURL:     strings.TrimRight(frontendURL, "/") + "/login",
	}
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, actor user.Actor, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	codeTaken, emailTaken, err := s.employeeRepo.ExistsByCodeOrEmail(ctx, req.EmployeeCode, req.Email)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check employee uniqueness: %w", err)
	}
	if codeTaken {
		return employee.EmployeeResponse{}, employee.ErrEmployeeCodeExists
	}
	if emailTaken {
		return employee.EmployeeResponse{}, employee.ErrEmailExists
	}

	if err := s.ensureShift(ctx, req.ShiftID); err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.employeeRepo.Create(ctx, req.ToEmployee())
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	slog.InfoContext(ctx, "employee created",
		slog.String("employee_id", created.ID),
		slog.String("employee_code", created.EmployeeCode),
	)

	// The employee record stands even when the account cannot be provisioned.
	if linked, err := s.provisionAccount(ctx, actor, created); err != nil {
		slog.ErrorContext(ctx, "failed to provision user account",
			slog.String("employee_id", created.ID),
			slog.Any("error", err),
		)
	} else {
		created = linked
	}

	return employee.NewEmployeeResponse(created), nil
}

// provisionAccount links the employee to the user with the same email,
// creating that user with a temporary password and inviting them when none exists.
func (s *EmployeeServiceImpl) provisionAccount(ctx context.Context, actor user.Actor, emp employee.Employee) (employee.Employee, error) {
	var tempPassword string

	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		account, err := s.userRepo.GetByEmail(ctx, emp.Email)
		switch {
		case err == nil:
			if err := s.userRepo.LinkEmployee(ctx, account.ID, emp.ID); err != nil {
				return fmt.Errorf("failed to link existing user: %w", err)
			}
		case errors.Is(err, user.ErrUserNotFound):
			tempPassword, err = password.Generate()
			if err != nil {
				return err
			}
			hash, err := password.Hash(tempPassword)
			if err != nil {
				return err
			}
			account, err = s.userRepo.Create(ctx, user.User{
				Email:        emp.Email,
				Name:         emp.FullName,
				PasswordHash: &hash,
				Role:         emp.Role,
				EmployeeID:   &emp.ID,
				IsActive:     true,
			})
			if err != nil {
				return fmt.Errorf("failed to create user: %w", err)
			}
		default:
			return fmt.Errorf("failed to get user by email: %w", err)
		}

		if err := s.employeeRepo.LinkUser(ctx, emp.ID, account.ID); err != nil {
			return fmt.Errorf("failed to link user: %w", err)
		}
		emp.UserID = &account.ID
		return nil
	})
	if err != nil {
		return employee.Employee{}, err
	}

	if tempPassword != "" {
		inviter := actor.Name
		if inviter == "" {
			inviter = actor.Email
		}
		to, name := emp.Email, emp.FullName
		s.mailer.Go(ctx, "invitation", to, func(svc email.EmailService) error {
			return svc.SendInvitation(to, name, inviter, s.loginURL, tempPassword)
		})
	}
	return emp, nil
}

func (s *EmployeeServiceImpl) ensureShift(ctx context.Context, shiftID *string) error {
	if shiftID == nil || *shiftID == "" {
		return nil
	}
	if _, err := s.shiftRepo.GetByID(ctx, *shiftID); err != nil {
		if errors.Is(err, schedule.ErrShiftNotFound) {
			return employee.ErrShiftNotFound
		}
		return fmt.Errorf("failed to get shift: %w", err)
	}
	return nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.NewEmployeeResponse(emp), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	filter.Normalize()

	employees, total, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.NewEmployeeResponse(emp))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))
	showing := fmt.Sprintf("%d-%d of %d", filter.Offset()+1, min(filter.Page*filter.Limit, int(total)), total)
	if total == 0 {
		showing = "0 of 0"
	}

	return employee.ListEmployeeResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Showing:    showing,
		Employees:  responses,
	}, nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	existing, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := s.ensureShift(ctx, req.ShiftID); err != nil {
		return employee.EmployeeResponse{}, err
	}

	req.Apply(&existing)
	updated, err := s.employeeRepo.Update(ctx, existing)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.NewEmployeeResponse(updated), nil
}

// DeleteEmployee implements employee.EmployeeService. Attendance and leave
// rows go with the employee; the audit entry keeps a snapshot.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, actor user.Actor, id string) error {
	if !actor.IsAdmin() {
		return user.ErrAdminPrivilegeRequired
	}

	existing, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == actor.EmployeeID || strings.EqualFold(existing.Email, actor.Email) {
		return employee.ErrCannotDeleteSelf
	}

	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	s.recorder.Record(ctx, audit.NewEntry(actor, audit.ActionEmployeeDelete, "employee", id, map[string]any{
		"employee_code": existing.EmployeeCode,
		"full_name":     existing.FullName,
		"email":         existing.Email,
		"department":    existing.Department,
		"position":      existing.Position,
		"role":          existing.Role,
		"status":        existing.Status,
	}))
	return nil
}

// GetMyProfile implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetMyProfile(ctx context.Context, actor user.Actor) (employee.EmployeeResponse, error) {
	emp, err := employee.ResolveActor(ctx, s.employeeRepo, actor)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.NewEmployeeResponse(emp), nil
}

// UpdateMyProfile implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateMyProfile(ctx context.Context, actor user.Actor, req employee.UpdateProfileRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := employee.ResolveActor(ctx, s.employeeRepo, actor)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.employeeRepo.UpdateProfile(ctx, emp.ID, req.Phone, req.Address)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.NewEmployeeResponse(updated), nil
}
