package employee

import (
	"strings"
	"time"

	"github.com/codezenith/hrms-backend-go/internal/domain/user"
	"github.com/codezenith/hrms-backend-go/internal/pkg/validator"
)

// ========================================
// EMPLOYEE DTOs
// ========================================

type CreateEmployeeRequest struct {
	EmployeeCode string  `json:"employee_id" validate:"required,max=50"`
	FullName     string  `json:"full_name" validate:"required,max=150"`
	Email        string  `json:"email" validate:"required,email"`
	Phone        *string `json:"phone" validate:"omitempty,phone"`
	Department   *string `json:"department"`
	Position     *string `json:"position"`
	Role         string  `json:"role" validate:"omitempty,oneof=admin hr manager employee"`
	Status       string  `json:"status" validate:"omitempty,oneof=active inactive on-leave terminated"`
	JoinDate     *string `json:"join_date"`
	Address      *string `json:"address"`
	DOB          *string `json:"dob"`
	ShiftID      *string `json:"shift_id" validate:"omitempty,uuid"`
}

func (r *CreateEmployeeRequest) Validate() error {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.EmployeeCode = strings.TrimSpace(r.EmployeeCode)

	if err := validator.Struct(r); err != nil {
		return err
	}

	var errs validator.ValidationErrors
	if r.JoinDate != nil {
		if _, ok := validator.IsValidDate(*r.JoinDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "join_date", Message: "must be in YYYY-MM-DD format"})
		}
	}
	if r.DOB != nil {
		if _, ok := validator.IsValidDate(*r.DOB); !ok {
			errs = append(errs, validator.ValidationError{Field: "dob", Message: "must be in YYYY-MM-DD format"})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToEmployee maps a validated request onto a new Employee, applying defaults.
func (r *CreateEmployeeRequest) ToEmployee() Employee {
	role := user.Role(r.Role)
	if role == "" {
		role = user.RoleEmployee
	}
	status := Status(r.Status)
	if status == "" {
		status = StatusActive
	}
	return Employee{
		EmployeeCode: r.EmployeeCode,
		FullName:     r.FullName,
		Email:        r.Email,
		Phone:        r.Phone,
		Department:   r.Department,
		Position:     r.Position,
		Role:         role,
		Status:       status,
		JoinDate:     parseDatePtr(r.JoinDate),
		Address:      r.Address,
		DOB:          parseDatePtr(r.DOB),
		ShiftID:      r.ShiftID,
	}
}

type UpdateEmployeeRequest struct {
	ID         string  `json:"-"`
	FullName   *string `json:"full_name" validate:"omitempty,max=150"`
	Email      *string `json:"email" validate:"omitempty,email"`
	Phone      *string `json:"phone" validate:"omitempty,phone"`
	Department *string `json:"department"`
	Position   *string `json:"position"`
	Role       *string `json:"role" validate:"omitempty,oneof=admin hr manager employee"`
	Status     *string `json:"status" validate:"omitempty,oneof=active inactive on-leave terminated"`
	JoinDate   *string `json:"join_date"`
	Address    *string `json:"address"`
	DOB        *string `json:"dob"`
	ShiftID    *string `json:"shift_id" validate:"omitempty,uuid"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	if r.Email != nil {
		lower := strings.ToLower(strings.TrimSpace(*r.Email))
		r.Email = &lower
	}
	if err := validator.Struct(r); err != nil {
		return err
	}
	if r.JoinDate != nil {
		if _, ok := validator.IsValidDate(*r.JoinDate); !ok {
			return validator.ValidationErrors{{Field: "join_date", Message: "must be in YYYY-MM-DD format"}}
		}
	}
	if r.DOB != nil {
		if _, ok := validator.IsValidDate(*r.DOB); !ok {
			return validator.ValidationErrors{{Field: "dob", Message: "must be in YYYY-MM-DD format"}}
		}
	}
	return nil
}

// Apply overwrites the fields present in the request.
func (r *UpdateEmployeeRequest) Apply(e *Employee) {
	if r.FullName != nil {
		e.FullName = *r.FullName
	}
	if r.Email != nil {
		e.Email = *r.Email
	}
	if r.Phone != nil {
		e.Phone = r.Phone
	}
	if r.Department != nil {
		e.Department = r.Department
	}
	if r.Position != nil {
		e.Position = r.Position
	}
	if r.Role != nil {
		e.Role = user.Role(*r.Role)
	}
	if r.Status != nil {
		e.Status = Status(*r.Status)
	}
	if r.JoinDate != nil {
		e.JoinDate = parseDatePtr(r.JoinDate)
	}
	if r.Address != nil {
		e.Address = r.Address
	}
	if r.DOB != nil {
		e.DOB = parseDatePtr(r.DOB)
	}
	if r.ShiftID != nil {
		if *r.ShiftID == "" {
			e.ShiftID = nil
		} else {
			e.ShiftID = r.ShiftID
		}
	}
}

// UpdateProfileRequest is the self-service subset of employee fields.
type UpdateProfileRequest struct {
	Phone   *string `json:"phone" validate:"omitempty,phone"`
	Address *string `json:"address" validate:"omitempty,max=500"`
}

func (r *UpdateProfileRequest) Validate() error {
	return validator.Struct(r)
}

type EmployeeFilter struct {
	Search     *string
	Department *string
	Role       *string
	Status     *string
	Page       int
	Limit      int
}

func (f *EmployeeFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
}

func (f EmployeeFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

type EmployeeResponse struct {
	ID           string  `json:"id"`
	EmployeeCode string  `json:"employee_id"`
	FullName     string  `json:"full_name"`
	Email        string  `json:"email"`
	Phone        *string `json:"phone,omitempty"`
	Department   *string `json:"department,omitempty"`
	Position     *string `json:"position,omitempty"`
	Role         string  `json:"role"`
	Status       string  `json:"status"`
	JoinDate     *string `json:"join_date,omitempty"`
	Address      *string `json:"address,omitempty"`
	DOB          *string `json:"dob,omitempty"`
	ShiftID      *string `json:"shift_id,omitempty"`
	UserID       *string `json:"user_id,omitempty"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           e.ID,
		EmployeeCode: e.EmployeeCode,
		FullName:     e.FullName,
		Email:        e.Email,
		Phone:        e.Phone,
		Department:   e.Department,
		Position:     e.Position,
		Role:         string(e.Role),
		Status:       string(e.Status),
		JoinDate:     formatDatePtr(e.JoinDate),
		Address:      e.Address,
		DOB:          formatDatePtr(e.DOB),
		ShiftID:      e.ShiftID,
		UserID:       e.UserID,
		CreatedAt:    e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    e.UpdatedAt.Format(time.RFC3339),
	}
}

type ListEmployeeResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
	Showing    string             `json:"showing"`
	Employees  []EmployeeResponse `json:"employees"`
}

func parseDatePtr(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, ok := validator.IsValidDate(*s)
	if !ok {
		return nil
	}
	return &t
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}
