package schedule

import (
	"time"

	"github.com/codezenith/hrms-backend-go/internal/pkg/validator"
)

// ========================================
// SHIFT DTOs
// ========================================

type CreateShiftRequest struct {
	Name               string  `json:"name" validate:"required,max=100"`
	StartTime          string  `json:"start_time" validate:"required,clock"`
	EndTime            string  `json:"end_time" validate:"required,clock"`
	GracePeriodMinutes int     `json:"grace_period" validate:"gte=0,max=720"`
	WorkingHours       float64 `json:"working_hours" validate:"gte=0,max=24"`
	Description        *string `json:"description"`
}

func (r *CreateShiftRequest) Validate() error {
	return validator.Struct(r)
}

// ToShift converts a validated request into a Shift. WorkingHours defaults to 8.
func (r *CreateShiftRequest) ToShift() Shift {
	start, _ := ParseClockTime(r.StartTime)
	end, _ := ParseClockTime(r.EndTime)
	hours := r.WorkingHours
	if hours == 0 {
		hours = 8
	}
	return Shift{
		Name:               r.Name,
		StartTime:          start,
		EndTime:            end,
		GracePeriodMinutes: r.GracePeriodMinutes,
		WorkingHours:       hours,
		Description:        r.Description,
	}
}

type UpdateShiftRequest struct {
	ID                 string   `json:"-"`
	Name               *string  `json:"name" validate:"omitempty,max=100"`
	StartTime          *string  `json:"start_time" validate:"omitempty,clock"`
	EndTime            *string  `json:"end_time" validate:"omitempty,clock"`
	GracePeriodMinutes *int     `json:"grace_period" validate:"omitempty,gte=0,max=720"`
	WorkingHours       *float64 `json:"working_hours" validate:"omitempty,gte=0,max=24"`
	Description        *string  `json:"description"`
}

func (r *UpdateShiftRequest) Validate() error {
	return validator.Struct(r)
}

// Apply overwrites the fields present in the request.
func (r *UpdateShiftRequest) Apply(s *Shift) {
	if r.Name != nil {
		s.Name = *r.Name
	}
	if r.StartTime != nil {
		s.StartTime, _ = ParseClockTime(*r.StartTime)
	}
	if r.EndTime != nil {
		s.EndTime, _ = ParseClockTime(*r.EndTime)
	}
	if r.GracePeriodMinutes != nil {
		s.GracePeriodMinutes = *r.GracePeriodMinutes
	}
	if r.WorkingHours != nil {
		s.WorkingHours = *r.WorkingHours
	}
	if r.Description != nil {
		s.Description = r.Description
	}
}

type ShiftResponse struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	StartTime          string  `json:"start_time"`
	EndTime            string  `json:"end_time"`
	GracePeriodMinutes int     `json:"grace_period"`
	WorkingHours       float64 `json:"working_hours"`
	SpansMidnight      bool    `json:"spans_midnight"`
	Description        *string `json:"description,omitempty"`
}

func NewShiftResponse(s Shift) ShiftResponse {
	return ShiftResponse{
		ID:                 s.ID,
		Name:               s.Name,
		StartTime:          s.StartTime.String(),
		EndTime:            s.EndTime.String(),
		GracePeriodMinutes: s.GracePeriodMinutes,
		WorkingHours:       s.WorkingHours,
		SpansMidnight:      s.SpansMidnight(),
		Description:        s.Description,
	}
}

// ========================================
// HOLIDAY DTOs
// ========================================

type HolidayFilter struct {
	Year *int
}

type CreateHolidayRequest struct {
	Name        string  `json:"name"`
	Date        string  `json:"date"`
	Type        string  `json:"type"`
	Description *string `json:"description"`

	ParsedDate time.Time `json:"-"`
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	date, ok := validator.IsValidDate(r.Date)
	if !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}
	r.ParsedDate = date

	if r.Type == "" {
		r.Type = string(HolidayTypePublic)
	}
	if !validator.IsInSlice(r.Type, HolidayTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: public, optional, company",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateHolidayRequest struct {
	ID          string  `json:"-"`
	Name        *string `json:"name"`
	Date        *string `json:"date"`
	Type        *string `json:"type"`
	Description *string `json:"description"`
}

func (r *UpdateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name cannot be empty"})
	}
	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
		}
	}
	if r.Type != nil && !validator.IsInSlice(*r.Type, HolidayTypeValues) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "type must be one of: public, optional, company"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *UpdateHolidayRequest) Apply(h *Holiday) {
	if r.Name != nil {
		h.Name = *r.Name
	}
	if r.Date != nil {
		h.Date, _ = validator.IsValidDate(*r.Date)
	}
	if r.Type != nil {
		h.Type = HolidayType(*r.Type)
	}
	if r.Description != nil {
		h.Description = r.Description
	}
}

type HolidayResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Date        string  `json:"date"`
	Type        string  `json:"type"`
	Description *string `json:"description,omitempty"`
}

func NewHolidayResponse(h Holiday) HolidayResponse {
	return HolidayResponse{
		ID:          h.ID,
		Name:        h.Name,
		Date:        h.Date.Format("2006-01-02"),
		Type:        string(h.Type),
		Description: h.Description,
	}
}
