package employee

import (
	"time"

	"github.com/codezenith/hrms-backend-go/internal/domain/user"
)

type Employee struct {
	ID           string
	EmployeeCode string
	FullName     string
	Email        string
	Phone        *string
	Department   *string
	Position     *string
	Role         user.Role
	Status       Status
	JoinDate     *time.Time
	Address      *string
	DOB          *time.Time
	ShiftID      *string
	UserID       *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Status string

const (
	StatusActive     Status = "active"
	StatusInactive   Status = "inactive"
	StatusOnLeave    Status = "on-leave"
	StatusTerminated Status = "terminated"
)

var StatusValues = []string{
	string(StatusActive),
	string(StatusInactive),
	string(StatusOnLeave),
	string(StatusTerminated),
}

var RoleValues = []string{
	string(user.RoleAdmin),
	string(user.RoleHR),
	string(user.RoleManager),
	string(user.RoleEmployee),
}
