package leave

import "errors"

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrOverlappingLeave     = errors.New("leave request overlaps an existing pending or approved request")
	ErrSelfApproval         = errors.New("you cannot approve or reject your own leave request")
	ErrNotOwner             = errors.New("only the requester can cancel this leave request")
	ErrNotPending           = errors.New("leave request is no longer pending")
	ErrInvalidDateRange     = errors.New("to_date must not be before from_date")

	ErrLeaveTypeNotFound   = errors.New("leave type not found")
	ErrLeaveTypeNameExists = errors.New("leave type with this name already exists")
	ErrLeaveTypeInUse      = errors.New("leave type is referenced by existing leave requests")
)
