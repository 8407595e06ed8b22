package leave

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/codezenith/hrms-backend-go/internal/domain/audit"
	"github.com/codezenith/hrms-backend-go/internal/domain/employee"
	"github.com/codezenith/hrms-backend-go/internal/domain/leave"
	"github.com/codezenith/hrms-backend-go/internal/domain/user"
	"github.com/codezenith/hrms-backend-go/internal/pkg/database"
	"github.com/codezenith/hrms-backend-go/internal/pkg/email"
	"github.com/codezenith/hrms-backend-go/internal/pkg/lock"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/codezenith/hrms-backend-go/internal/service/leave"

type LeaveServiceImpl struct {
	txManager database.TxManager
	leave.LeaveRequestRepository
	leave.LeaveTypeRepository
	employee.EmployeeRepository
	locker   lock.Locker
	recorder audit.Recorder
	mailer   *email.Dispatcher
	now      func() time.Time
	tracer   trace.Tracer
}

func NewLeaveService(
	txManager database.TxManager,
	leaveRequestRepo leave.LeaveRequestRepository,
	leaveTypeRepo leave.LeaveTypeRepository,
	employeeRepo employee.EmployeeRepository,
	locker lock.Locker,
	recorder audit.Recorder,
	mailer *email.Dispatcher,
) *LeaveServiceImpl {
	return &LeaveServiceImpl{
		txManager:              txManager,
		LeaveRequestRepository: leaveRequestRepo,
		LeaveTypeRepository:    leaveTypeRepo,
		EmployeeRepository:     employeeRepo,
		locker:                 locker,
		recorder:               recorder,
		mailer:                 mailer,
		now:                    time.Now,
		tracer:                 otel.Tracer(tracerName),
	}
}

func (l *LeaveServiceImpl) WithClock(now func() time.Time) *LeaveServiceImpl {
	l.now = now
	return l
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// RequestLeave implements leave.LeaveService.
func (l *LeaveServiceImpl) RequestLeave(ctx context.Context, actor user.Actor, req leave.CreateLeaveRequest) (resp leave.LeaveRequestResponse, err error) {
	ctx, span := l.tracer.Start(ctx, "leave.RequestLeave")
	defer func() { endSpan(span, err) }()

	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	emp, err := employee.ResolveActor(ctx, l.EmployeeRepository, actor)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	span.SetAttributes(attribute.String("employee.id", emp.ID))

	leaveType, err := l.LeaveTypeRepository.GetByName(ctx, req.LeaveType)
	if err != nil {
		if errors.Is(err, leave.ErrLeaveTypeNotFound) {
			return leave.LeaveRequestResponse{}, err
		}
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get leave type: %w", err)
	}

	var created leave.LeaveRequest
	err = l.locker.WithLock(ctx, lock.EmployeeKey("leave", emp.ID), func(ctx context.Context) error {
		return l.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
			existing, err := l.LeaveRequestRepository.List(ctx, leave.LeaveRequestFilter{EmployeeID: &emp.ID})
			if err != nil {
				return fmt.Errorf("failed to list leave requests: %w", err)
			}
			if leave.HasOverlap(existing, req.Range) {
				return leave.ErrOverlappingLeave
			}

			created, err = l.LeaveRequestRepository.Create(ctx, leave.LeaveRequest{
				EmployeeID:  emp.ID,
				LeaveType:   leaveType.Name,
				FromDate:    req.Range.From,
				ToDate:      req.Range.To,
				Days:        req.Range.Days(),
				Reason:      req.Reason,
				Status:      leave.LeaveRequestStatusPending,
				AppliedDate: l.now(),
			})
			return err
		})
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	slog.InfoContext(ctx, "leave requested",
		slog.String("employee_id", emp.ID),
		slog.String("leave_type", created.LeaveType),
		slog.Int("days", created.Days),
	)
	return leave.NewLeaveRequestResponse(created), nil
}

// Decide implements leave.LeaveService.
func (l *LeaveServiceImpl) Decide(ctx context.Context, actor user.Actor, req leave.DecideLeaveRequest) (resp leave.LeaveRequestResponse, err error) {
	ctx, span := l.tracer.Start(ctx, "leave.Decide")
	defer func() { endSpan(span, err) }()

	if !actor.CanApprove() {
		return leave.LeaveRequestResponse{}, user.ErrInsufficientPermissions
	}
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	request, err := l.LeaveRequestRepository.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if request.EmployeeEmail != nil && sameEmail(*request.EmployeeEmail, actor.Email) {
		return leave.LeaveRequestResponse{}, leave.ErrSelfApproval
	}

	target := req.Target()
	if !request.Status.CanTransitionTo(target) {
		return leave.LeaveRequestResponse{}, leave.ErrNotPending
	}

	decidedBy := actor.Name
	if decidedBy == "" {
		decidedBy = actor.Email
	}

	updated, err := l.LeaveRequestRepository.UpdateStatus(ctx, request.ID, target, decidedBy, l.now())
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	action := audit.ActionLeaveApprove
	if target == leave.LeaveRequestStatusRejected {
		action = audit.ActionLeaveReject
	}
	l.recorder.Record(ctx, audit.NewEntry(actor, action, "leave_request", updated.ID, map[string]any{
		"employee_id": updated.EmployeeID,
		"leave_type":  updated.LeaveType,
		"from_date":   updated.FromDate.Format("2006-01-02"),
		"to_date":     updated.ToDate.Format("2006-01-02"),
		"old_status":  request.Status,
		"new_status":  updated.Status,
		"remarks":     req.Remarks,
	}))

	l.notifyDecision(ctx, updated, decidedBy)

	return leave.NewLeaveRequestResponse(updated), nil
}

func (l *LeaveServiceImpl) notifyDecision(ctx context.Context, r leave.LeaveRequest, decidedBy string) {
	if r.EmployeeEmail == nil {
		return
	}
	to := *r.EmployeeEmail
	name := to
	if r.EmployeeName != nil {
		name = *r.EmployeeName
	}
	l.mailer.Go(ctx, "leave_decision", to, func(s email.EmailService) error {
		return s.SendLeaveDecision(to, name, r.LeaveType,
			r.FromDate.Format("2006-01-02"), r.ToDate.Format("2006-01-02"),
			string(r.Status), decidedBy)
	})
}

// Cancel implements leave.LeaveService. Only the requester may cancel and only
// while the request is pending; the row is removed outright.
func (l *LeaveServiceImpl) Cancel(ctx context.Context, actor user.Actor, id string) error {
	request, err := l.LeaveRequestRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if request.EmployeeEmail == nil || !sameEmail(*request.EmployeeEmail, actor.Email) {
		return leave.ErrNotOwner
	}
	if request.Status != leave.LeaveRequestStatusPending {
		return leave.ErrNotPending
	}

	if err := l.LeaveRequestRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete leave request: %w", err)
	}
	slog.InfoContext(ctx, "leave request cancelled", slog.String("leave_request_id", id))
	return nil
}

// ListRequests implements leave.LeaveService.
func (l *LeaveServiceImpl) ListRequests(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequestResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	requests, err := l.LeaveRequestRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, leave.NewLeaveRequestResponse(r))
	}
	return responses, nil
}

// GetMyRequests implements leave.LeaveService.
func (l *LeaveServiceImpl) GetMyRequests(ctx context.Context, actor user.Actor) ([]leave.LeaveRequestResponse, error) {
	emp, err := employee.ResolveActor(ctx, l.EmployeeRepository, actor)
	if err != nil {
		return nil, err
	}
	return l.ListRequests(ctx, leave.LeaveRequestFilter{EmployeeID: &emp.ID})
}

// GetBalance implements leave.LeaveService.
func (l *LeaveServiceImpl) GetBalance(ctx context.Context, employeeID string) ([]leave.BalanceResponse, error) {
	if _, err := l.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	types, err := l.LeaveTypeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave types: %w", err)
	}

	approved := string(leave.LeaveRequestStatusApproved)
	requests, err := l.LeaveRequestRepository.List(ctx, leave.LeaveRequestFilter{EmployeeID: &employeeID, Status: &approved})
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	balances := leave.ComputeBalance(types, requests)
	responses := make([]leave.BalanceResponse, 0, len(balances))
	for _, b := range balances {
		responses = append(responses, leave.BalanceResponse{
			LeaveType: b.LeaveType,
			Total:     b.Total,
			Used:      b.Used,
			Remaining: b.Remaining,
			Color:     b.Color,
		})
	}
	return responses, nil
}

// CreateLeaveType implements leave.LeaveService.
func (l *LeaveServiceImpl) CreateLeaveType(ctx context.Context, req leave.CreateLeaveTypeRequest) (leave.LeaveTypeResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveTypeResponse{}, err
	}

	created, err := l.LeaveTypeRepository.Create(ctx, req.ToLeaveType())
	if err != nil {
		return leave.LeaveTypeResponse{}, err
	}
	return leave.NewLeaveTypeResponse(created), nil
}

// ListLeaveTypes implements leave.LeaveService.
func (l *LeaveServiceImpl) ListLeaveTypes(ctx context.Context) ([]leave.LeaveTypeResponse, error) {
	types, err := l.LeaveTypeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave types: %w", err)
	}

	responses := make([]leave.LeaveTypeResponse, 0, len(types))
	for _, t := range types {
		responses = append(responses, leave.NewLeaveTypeResponse(t))
	}
	return responses, nil
}

// UpdateLeaveType implements leave.LeaveService. Requests reference a type by
// name, so a rename is refused while any request still uses the old name.
func (l *LeaveServiceImpl) UpdateLeaveType(ctx context.Context, req leave.UpdateLeaveTypeRequest) (leave.LeaveTypeResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveTypeResponse{}, err
	}

	current, err := l.LeaveTypeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveTypeResponse{}, err
	}
	oldName := current.Name

	req.Apply(&current)
	if current.Name != oldName {
		if err := l.ensureUnused(ctx, oldName); err != nil {
			return leave.LeaveTypeResponse{}, err
		}
	}

	updated, err := l.LeaveTypeRepository.Update(ctx, current)
	if err != nil {
		return leave.LeaveTypeResponse{}, err
	}
	return leave.NewLeaveTypeResponse(updated), nil
}

// DeleteLeaveType implements leave.LeaveService.
func (l *LeaveServiceImpl) DeleteLeaveType(ctx context.Context, id string) error {
	current, err := l.LeaveTypeRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := l.ensureUnused(ctx, current.Name); err != nil {
		return err
	}
	return l.LeaveTypeRepository.Delete(ctx, id)
}

func (l *LeaveServiceImpl) ensureUnused(ctx context.Context, name string) error {
	count, err := l.LeaveRequestRepository.CountByLeaveType(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to count leave requests: %w", err)
	}
	if count > 0 {
		return leave.ErrLeaveTypeInUse
	}
	return nil
}

func sameEmail(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
