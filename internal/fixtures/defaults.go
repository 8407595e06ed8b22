package fixtures

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"github.com/codezenith/hrms-backend-go/internal/domain/leave"
	"github.com/codezenith/hrms-backend-go/internal/domain/master/department"
	"github.com/codezenith/hrms-backend-go/internal/domain/master/setting"
	"github.com/codezenith/hrms-backend-go/internal/domain/schedule"
	"gopkg.in/yaml.v3"
)

// Defaults is the reference data a fresh installation starts with.
type Defaults struct {
	Admin       AdminAccount     `yaml:"admin"`
	Departments []DepartmentSeed `yaml:"departments"`
	Shifts      []ShiftSeed      `yaml:"shifts"`
	LeaveTypes  []LeaveTypeSeed  `yaml:"leave_types"`
	Holidays    []HolidaySeed    `yaml:"holidays"`
	Settings    map[string]any   `yaml:"settings"`
}

type AdminAccount struct {
	Email    string `yaml:"email"`
	Name     string `yaml:"name"`
	Password string `yaml:"password"`
}

type DepartmentSeed struct {
	Name        string  `yaml:"name"`
	Head        *string `yaml:"head"`
	Description *string `yaml:"description"`
}

func (d DepartmentSeed) Request() department.CreateDepartmentRequest {
	return department.CreateDepartmentRequest{Name: d.Name, Head: d.Head, Description: d.Description}
}

type ShiftSeed struct {
	Name               string  `yaml:"name"`
	StartTime          string  `yaml:"start_time"`
	EndTime            string  `yaml:"end_time"`
	GracePeriodMinutes int     `yaml:"grace_period_minutes"`
	WorkingHours       float64 `yaml:"working_hours"`
	Description        *string `yaml:"description"`
}

func (s ShiftSeed) Request() schedule.CreateShiftRequest {
	return schedule.CreateShiftRequest{
		Name:               s.Name,
		StartTime:          s.StartTime,
		EndTime:            s.EndTime,
		GracePeriodMinutes: s.GracePeriodMinutes,
		WorkingHours:       s.WorkingHours,
		Description:        s.Description,
	}
}

type LeaveTypeSeed struct {
	Name         string  `yaml:"name"`
	DaysAllowed  int     `yaml:"days_allowed"`
	CarryForward bool    `yaml:"carry_forward"`
	Description  *string `yaml:"description"`
	Color        string  `yaml:"color"`
}

func (l LeaveTypeSeed) Request() leave.CreateLeaveTypeRequest {
	return leave.CreateLeaveTypeRequest{
		Name:         l.Name,
		DaysAllowed:  l.DaysAllowed,
		CarryForward: l.CarryForward,
		Description:  l.Description,
		Color:        l.Color,
	}
}

type HolidaySeed struct {
	Name        string  `yaml:"name"`
	Date        string  `yaml:"date"`
	Type        string  `yaml:"type"`
	Description *string `yaml:"description"`
}

func (h HolidaySeed) Request() schedule.CreateHolidayRequest {
	return schedule.CreateHolidayRequest{Name: h.Name, Date: h.Date, Type: h.Type, Description: h.Description}
}

// Parse decodes a seed document.
func Parse(raw []byte) (Defaults, error) {
	var d Defaults
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return Defaults{}, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return d, nil
}

// SettingRequests converts the free-form settings map into upsert requests.
// Values keep their YAML shape once encoded as JSON.
func (d Defaults) SettingRequests() ([]setting.UpsertSettingRequest, error) {
	requests := make([]setting.UpsertSettingRequest, 0, len(d.Settings))
	for _, key := range slices.Sorted(maps.Keys(d.Settings)) {
		raw, err := json.Marshal(d.Settings[key])
		if err != nil {
			return nil, fmt.Errorf("failed to encode setting %s: %w", key, err)
		}
		requests = append(requests, setting.UpsertSettingRequest{Key: key, Value: raw})
	}
	return requests, nil
}
