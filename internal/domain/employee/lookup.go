package employee

import (
	"context"
	"errors"

	"github.com/codezenith/hrms-backend-go/internal/domain/user"
)

// ResolveActor returns the employee record behind an authenticated actor,
// preferring the linked id and falling back to the account email.
func ResolveActor(ctx context.Context, repo EmployeeRepository, actor user.Actor) (Employee, error) {
	if actor.EmployeeID != "" {
		emp, err := repo.GetByID(ctx, actor.EmployeeID)
		if err == nil || !errors.Is(err, ErrEmployeeNotFound) {
			return emp, err
		}
	}

	emp, err := repo.GetByEmail(ctx, actor.Email)
	if errors.Is(err, ErrEmployeeNotFound) {
		return Employee{}, ErrNoLinkedEmployee
	}
	return emp, err
}

// ResolveTarget picks the employee an operation applies to. Privileged actors
// may name any employee; everyone else may only name themselves.
func ResolveTarget(ctx context.Context, repo EmployeeRepository, actor user.Actor, requested *string) (Employee, error) {
	if requested != nil && *requested != "" && actor.IsPrivileged() {
		return repo.GetByID(ctx, *requested)
	}

	self, err := ResolveActor(ctx, repo, actor)
	if err != nil {
		return Employee{}, err
	}
	if requested != nil && *requested != "" && *requested != self.ID {
		return Employee{}, user.ErrInsufficientPermissions
	}
	return self, nil
}
