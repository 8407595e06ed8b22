package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmployeeCode(ctx context.Context, employeeCode string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	// ExistsByCodeOrEmail reports which of the two unique keys are already taken.
	ExistsByCodeOrEmail(ctx context.Context, employeeCode, email string) (codeTaken bool, emailTaken bool, err error)
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)
	Update(ctx context.Context, emp Employee) (Employee, error)
	UpdateProfile(ctx context.Context, id string, phone, address *string) (Employee, error)
	LinkUser(ctx context.Context, id, userID string) error
	Delete(ctx context.Context, id string) error
	CountActive(ctx context.Context) (int64, error)
}
