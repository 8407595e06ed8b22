package attendance

import (
	"time"

	"github.com/codezenith/hrms-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// CheckInRequest carries an optional target employee. It is honoured only for admin/hr actors.
type CheckInRequest struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

func (r *CheckInRequest) Validate() error {
	if r.EmployeeID != nil && !validator.IsValidUUID(*r.EmployeeID) {
		return validator.ValidationErrors{{Field: "employee_id", Message: "employee_id must be a valid UUID"}}
	}
	return nil
}

type CheckOutRequest struct {
	EmployeeID *string `json:"employee_id,omitempty"`
}

func (r *CheckOutRequest) Validate() error {
	if r.EmployeeID != nil && !validator.IsValidUUID(*r.EmployeeID) {
		return validator.ValidationErrors{{Field: "employee_id", Message: "employee_id must be a valid UUID"}}
	}
	return nil
}

// CorrectAttendanceRequest overwrites any subset of the record. Values are only
// checked for format.
type CorrectAttendanceRequest struct {
	ID       string  `json:"-"`
	CheckIn  *string `json:"check_in,omitempty"`  // RFC3339
	CheckOut *string `json:"check_out,omitempty"` // RFC3339
	Status   *string `json:"status,omitempty"`
	Notes    *string `json:"notes,omitempty"`

	ParsedCheckIn  *time.Time `json:"-"`
	ParsedCheckOut *time.Time `json:"-"`
}

func (r *CorrectAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.CheckIn != nil {
		t, ok := validator.IsValidDateTime(*r.CheckIn)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "check_in",
				Message: "check_in must be an ISO8601 timestamp",
			})
		}
		r.ParsedCheckIn = &t
	}

	if r.CheckOut != nil {
		t, ok := validator.IsValidDateTime(*r.CheckOut)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "check_out",
				Message: "check_out must be an ISO8601 timestamp",
			})
		}
		r.ParsedCheckOut = &t
	}

	if r.Status != nil && !validator.IsInSlice(*r.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: present, late, absent, leave",
		})
	}

	if r.CheckIn == nil && r.CheckOut == nil && r.Status == nil && r.Notes == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "body",
			Message: "at least one of check_in, check_out, status, notes is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Apply overwrites the fields present in the request.
func (r *CorrectAttendanceRequest) Apply(a *Attendance) {
	if r.ParsedCheckIn != nil {
		a.CheckIn = r.ParsedCheckIn
	}
	if r.ParsedCheckOut != nil {
		a.CheckOut = r.ParsedCheckOut
	}
	if r.Status != nil {
		a.Status = Status(*r.Status)
	}
	if r.Notes != nil {
		a.Notes = r.Notes
	}
}

type AttendanceResponse struct {
	ID           string   `json:"id"`
	EmployeeID   string   `json:"employee_id"`
	EmployeeName *string  `json:"employee_name,omitempty"`
	EmployeeCode *string  `json:"employee_code,omitempty"`
	Department   *string  `json:"department,omitempty"`
	Date         string   `json:"date"`
	CheckIn      *string  `json:"check_in,omitempty"`
	CheckOut     *string  `json:"check_out,omitempty"`
	WorkedHours  *float64 `json:"worked_hours,omitempty"`
	Status       string   `json:"status"`
	Notes        *string  `json:"notes,omitempty"`
	CreatedAt    string   `json:"created_at"`
	UpdatedAt    string   `json:"updated_at"`
}

func NewAttendanceResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		EmployeeName: a.EmployeeName,
		EmployeeCode: a.EmployeeCode,
		Department:   a.Department,
		Date:         a.Date.Format("2006-01-02"),
		CheckIn:      timePtrToString(a.CheckIn),
		CheckOut:     timePtrToString(a.CheckOut),
		WorkedHours:  a.WorkedHours(),
		Status:       string(a.Status),
		Notes:        a.Notes,
		CreatedAt:    a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    a.UpdatedAt.Format(time.RFC3339),
	}
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

type AttendanceFilter struct {
	EmployeeID *string
	StartDate  *string // YYYY-MM-DD
	EndDate    *string // YYYY-MM-DD
	Status     *string

	Page  int
	Limit int
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.Status != nil && !validator.IsInSlice(*f.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: present, late, absent, leave",
		})
	}

	if f.StartDate != nil {
		if _, valid := validator.IsValidDate(*f.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil {
		if _, valid := validator.IsValidDate(*f.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (f AttendanceFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

type ListAttendanceResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	TotalPages  int                  `json:"total_pages"`
	Showing     string               `json:"showing"`
	Attendances []AttendanceResponse `json:"attendances"`
}

type TodayStatsResponse struct {
	Date           string `json:"date"`
	TotalEmployees int64  `json:"total_employees"`
	Present        int64  `json:"present"`
	Late           int64  `json:"late"`
	Leave          int64  `json:"leave"`
	Absent         int64  `json:"absent"`
}

func NewTodayStatsResponse(s DailyStats) TodayStatsResponse {
	return TodayStatsResponse{
		Date:           s.Date.Format("2006-01-02"),
		TotalEmployees: s.TotalEmployees,
		Present:        s.Present,
		Late:           s.Late,
		Leave:          s.OnLeave,
		Absent:         s.Absent,
	}
}
