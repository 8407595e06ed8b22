package leave

import (
	"context"
	"time"
)

// LeaveTypeRepository - interface for leave_types table
type LeaveTypeRepository interface {
	Create(ctx context.Context, leaveType LeaveType) (LeaveType, error)
	GetByID(ctx context.Context, id string) (LeaveType, error)
	GetByName(ctx context.Context, name string) (LeaveType, error)
	List(ctx context.Context) ([]LeaveType, error)
	Update(ctx context.Context, leaveType LeaveType) (LeaveType, error)
	Delete(ctx context.Context, id string) error
}

// LeaveRequestRepository - interface for leave_requests table
type LeaveRequestRepository interface {
	// Create fails with ErrOverlappingLeave when the store rejects an overlapping range.
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	List(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequest, error)
	// UpdateStatus and Delete only touch a request that is still pending and
	// return ErrNotPending otherwise.
	UpdateStatus(ctx context.Context, id string, status LeaveRequestStatus, approvedBy string, approvedDate time.Time) (LeaveRequest, error)
	Delete(ctx context.Context, id string) error
	CountByLeaveType(ctx context.Context, leaveTypeName string) (int64, error)
}
