package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Full access including destructive operations
	RoleHR       Role = "hr"       // Manages employees, attendance and leave
	RoleManager  Role = "manager"  // Can approve leave and view team data
	RoleEmployee Role = "employee" // Regular employee
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleHR, RoleManager, RoleEmployee:
		return true
	}
	return false
}

type User struct {
	ID              string
	Email           string
	Name            string
	PasswordHash    *string
	Role            Role
	EmployeeID      *string
	OAuthProvider   *string
	OAuthProviderID *string
	IsActive        bool
	LastLoginAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Actor is the authenticated caller of an operation, as vouched for by the token issuer.
type Actor struct {
	UserID     string
	EmployeeID string
	Name       string
	Email      string
	Role       Role
}

// IsPrivileged reports whether the actor may act on behalf of other employees.
func (a Actor) IsPrivileged() bool {
	return a.Role == RoleAdmin || a.Role == RoleHR
}

// CanApprove checks if actor can decide leave requests
func (a Actor) CanApprove() bool {
	return a.IsPrivileged() || a.Role == RoleManager
}

// IsAdmin checks if actor is an administrator
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
