package employee

import (
	"context"

	"github.com/codezenith/hrms-backend-go/internal/domain/user"
)

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// CreateEmployee creates a new employee and provisions a login for them (admin/hr)
	CreateEmployee(ctx context.Context, actor user.Actor, req CreateEmployeeRequest) (EmployeeResponse, error)

	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// ListEmployees lists employees with search, filters and pagination
	ListEmployees(ctx context.Context, filter EmployeeFilter) (ListEmployeeResponse, error)

	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// DeleteEmployee hard deletes an employee and records an audit entry (admin only)
	DeleteEmployee(ctx context.Context, actor user.Actor, id string) error

	GetMyProfile(ctx context.Context, actor user.Actor) (EmployeeResponse, error)
	UpdateMyProfile(ctx context.Context, actor user.Actor, req UpdateProfileRequest) (EmployeeResponse, error)
}
