package leave

import (
	"context"

	"github.com/codezenith/hrms-backend-go/internal/domain/user"
)

type LeaveService interface {
	// Leave Request
	RequestLeave(ctx context.Context, actor user.Actor, req CreateLeaveRequest) (LeaveRequestResponse, error)
	// Decide approves or rejects a pending request.
	Decide(ctx context.Context, actor user.Actor, req DecideLeaveRequest) (LeaveRequestResponse, error)
	Cancel(ctx context.Context, actor user.Actor, id string) error
	ListRequests(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequestResponse, error)
	GetMyRequests(ctx context.Context, actor user.Actor) ([]LeaveRequestResponse, error)

	// Balance
	GetBalance(ctx context.Context, employeeID string) ([]BalanceResponse, error)

	// Leave Type
	CreateLeaveType(ctx context.Context, req CreateLeaveTypeRequest) (LeaveTypeResponse, error)
	ListLeaveTypes(ctx context.Context) ([]LeaveTypeResponse, error)
	UpdateLeaveType(ctx context.Context, req UpdateLeaveTypeRequest) (LeaveTypeResponse, error)
	DeleteLeaveType(ctx context.Context, id string) error
}
