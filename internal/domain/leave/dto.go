package leave

import (
	"strings"
	"time"

	"github.com/codezenith/hrms-backend-go/internal/pkg/validator"
)

// ========================================
// LEAVE REQUEST DTOs
// ========================================

// CreateLeaveRequest is submitted by the employee taking leave. The number of
// days is derived from the date range.
type CreateLeaveRequest struct {
	LeaveType string `json:"leave_type"`
	FromDate  string `json:"from_date"`
	ToDate    string `json:"to_date"`
	Reason    string `json:"reason"`

	Range DateRange `json:"-"`
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	r.LeaveType = strings.TrimSpace(r.LeaveType)
	if r.LeaveType == "" {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type is required",
		})
	}

	from, fromOK := validator.IsValidDate(r.FromDate)
	if !fromOK {
		errs = append(errs, validator.ValidationError{
			Field:   "from_date",
			Message: "from_date must be in YYYY-MM-DD format",
		})
	}
	to, toOK := validator.IsValidDate(r.ToDate)
	if !toOK {
		errs = append(errs, validator.ValidationError{
			Field:   "to_date",
			Message: "to_date must be in YYYY-MM-DD format",
		})
	}
	if fromOK && toOK && to.Before(from) {
		errs = append(errs, validator.ValidationError{
			Field:   "to_date",
			Message: ErrInvalidDateRange.Error(),
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	r.Range = DateRange{From: from, To: to}
	return nil
}

type Decision string

const (
	DecisionApprove Decision = "approved"
	DecisionReject  Decision = "rejected"
)

type DecideLeaveRequest struct {
	ID      string  `json:"-"`
	Status  string  `json:"status" validate:"required,oneof=approved rejected"`
	Remarks *string `json:"remarks,omitempty"`
}

func (r *DecideLeaveRequest) Validate() error {
	return validator.Struct(r)
}

func (r *DecideLeaveRequest) Target() LeaveRequestStatus {
	return LeaveRequestStatus(r.Status)
}

type LeaveRequestFilter struct {
	EmployeeID *string
	Status     *string
	LeaveType  *string
}

func (f *LeaveRequestFilter) Validate() error {
	// "all" is accepted by clients as a wildcard
	if f.Status != nil && *f.Status == "all" {
		f.Status = nil
	}
	if f.LeaveType != nil && *f.LeaveType == "all" {
		f.LeaveType = nil
	}
	if f.Status != nil && !validator.IsInSlice(*f.Status, LeaveRequestStatusValues) {
		return validator.ValidationErrors{{Field: "status", Message: "status must be one of: pending, approved, rejected"}}
	}
	if f.EmployeeID != nil && !validator.IsValidUUID(*f.EmployeeID) {
		return validator.ValidationErrors{{Field: "employee_id", Message: "employee_id must be a valid UUID"}}
	}
	return nil
}

type LeaveRequestResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	EmployeeCode *string `json:"employee_code,omitempty"`
	LeaveType    string  `json:"leave_type"`
	FromDate     string  `json:"from_date"`
	ToDate       string  `json:"to_date"`
	Days         int     `json:"days"`
	Reason       string  `json:"reason"`
	Status       string  `json:"status"`
	ApprovedBy   *string `json:"approved_by,omitempty"`
	ApprovedDate *string `json:"approved_date,omitempty"`
	AppliedDate  string  `json:"applied_date"`
}

func NewLeaveRequestResponse(r LeaveRequest) LeaveRequestResponse {
	var approvedDate *string
	if r.ApprovedDate != nil {
		s := r.ApprovedDate.Format(time.RFC3339)
		approvedDate = &s
	}
	return LeaveRequestResponse{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		EmployeeName: r.EmployeeName,
		EmployeeCode: r.EmployeeCode,
		LeaveType:    r.LeaveType,
		FromDate:     r.FromDate.Format("2006-01-02"),
		ToDate:       r.ToDate.Format("2006-01-02"),
		Days:         r.Days,
		Reason:       r.Reason,
		Status:       string(r.Status),
		ApprovedBy:   r.ApprovedBy,
		ApprovedDate: approvedDate,
		AppliedDate:  r.AppliedDate.Format(time.RFC3339),
	}
}

type BalanceResponse struct {
	LeaveType string `json:"leave_type"`
	Total     int    `json:"total"`
	Used      int    `json:"used"`
	Remaining int    `json:"remaining"`
	Color     string `json:"color"`
}

// ========================================
// LEAVE TYPE DTOs
// ========================================

type CreateLeaveTypeRequest struct {
	Name         string  `json:"name" validate:"required,max=100"`
	DaysAllowed  int     `json:"days_allowed" validate:"gte=0,max=366"`
	CarryForward bool    `json:"carry_forward"`
	Description  *string `json:"description"`
	Color        string  `json:"color" validate:"omitempty,hexcolor"`
}

func (r *CreateLeaveTypeRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	return validator.Struct(r)
}

func (r *CreateLeaveTypeRequest) ToLeaveType() LeaveType {
	color := r.Color
	if color == "" {
		color = DefaultLeaveTypeColor
	}
	return LeaveType{
		Name:         r.Name,
		DaysAllowed:  r.DaysAllowed,
		CarryForward: r.CarryForward,
		Description:  r.Description,
		Color:        color,
	}
}

type UpdateLeaveTypeRequest struct {
	ID           string  `json:"-"`
	Name         *string `json:"name" validate:"omitempty,min=1,max=100"`
	DaysAllowed  *int    `json:"days_allowed" validate:"omitempty,gte=0,max=366"`
	CarryForward *bool   `json:"carry_forward"`
	Description  *string `json:"description"`
	Color        *string `json:"color" validate:"omitempty,hexcolor"`
}

func (r *UpdateLeaveTypeRequest) Validate() error {
	return validator.Struct(r)
}

func (r *UpdateLeaveTypeRequest) Apply(t *LeaveType) {
	if r.Name != nil {
		t.Name = strings.TrimSpace(*r.Name)
	}
	if r.DaysAllowed != nil {
		t.DaysAllowed = *r.DaysAllowed
	}
	if r.CarryForward != nil {
		t.CarryForward = *r.CarryForward
	}
	if r.Description != nil {
		t.Description = r.Description
	}
	if r.Color != nil {
		t.Color = *r.Color
	}
}

type LeaveTypeResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	DaysAllowed  int     `json:"days_allowed"`
	CarryForward bool    `json:"carry_forward"`
	Description  *string `json:"description,omitempty"`
	Color        string  `json:"color"`
}

func NewLeaveTypeResponse(t LeaveType) LeaveTypeResponse {
	return LeaveTypeResponse{
		ID:           t.ID,
		Name:         t.Name,
		DaysAllowed:  t.DaysAllowed,
		CarryForward: t.CarryForward,
		Description:  t.Description,
		Color:        t.Color,
	}
}
