package fixtures

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/codezenith/hrms-backend-go/assets"
	"github.com/codezenith/hrms-backend-go/internal/domain/leave"
	"github.com/codezenith/hrms-backend-go/internal/domain/master/department"
	"github.com/codezenith/hrms-backend-go/internal/domain/master/setting"
	"github.com/codezenith/hrms-backend-go/internal/domain/schedule"
	"github.com/codezenith/hrms-backend-go/internal/domain/user"
	"github.com/codezenith/hrms-backend-go/internal/pkg/password"
	"github.com/codezenith/hrms-backend-go/internal/service/master"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memUsers struct {
	user.UserRepository
	created []user.User
}

func (m *memUsers) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range m.created {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *memUsers) Create(_ context.Context, u user.User) (user.User, error) {
	m.created = append(m.created, u)
	return u, nil
}

type recordingMaster struct {
	master.MasterService
	departments map[string]bool
	settings    map[string]json.RawMessage
}

func (r *recordingMaster) CreateDepartment(_ context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if r.departments[req.Name] {
		return department.DepartmentResponse{}, department.ErrDepartmentNameExists
	}
	r.departments[req.Name] = true
	return department.DepartmentResponse{Name: req.Name}, nil
}

func (r *recordingMaster) UpsertSetting(_ context.Context, req setting.UpsertSettingRequest) (setting.SettingResponse, error) {
	r.settings[req.Key] = req.Value
	return setting.SettingResponse{Key: req.Key}, nil
}

type recordingSchedule struct {
	schedule.ScheduleService
	shifts   map[string]schedule.CreateShiftRequest
	holidays map[string]bool
}

func (r *recordingSchedule) CreateShift(_ context.Context, req schedule.CreateShiftRequest) (schedule.ShiftResponse, error) {
	if _, ok := r.shifts[req.Name]; ok {
		return schedule.ShiftResponse{}, schedule.ErrShiftNameExists
	}
	r.shifts[req.Name] = req
	return schedule.ShiftResponse{}, nil
}

func (r *recordingSchedule) CreateHoliday(_ context.Context, req schedule.CreateHolidayRequest) (schedule.HolidayResponse, error) {
	if r.holidays[req.Date] {
		return schedule.HolidayResponse{}, schedule.ErrHolidayExists
	}
	r.holidays[req.Date] = true
	return schedule.HolidayResponse{}, nil
}

type recordingLeaveTypes struct {
	names map[string]bool
}

func (r *recordingLeaveTypes) CreateLeaveType(_ context.Context, req leave.CreateLeaveTypeRequest) (leave.LeaveTypeResponse, error) {
	if r.names[req.Name] {
		return leave.LeaveTypeResponse{}, leave.ErrLeaveTypeNameExists
	}
	r.names[req.Name] = true
	return leave.LeaveTypeResponse{Name: req.Name}, nil
}

type seedFixture struct {
	users      *memUsers
	master     *recordingMaster
	schedule   *recordingSchedule
	leaveTypes *recordingLeaveTypes
	seeder     *Seeder
}

func newSeedFixture() *seedFixture {
	f := &seedFixture{
		users:      &memUsers{},
		master:     &recordingMaster{departments: map[string]bool{}, settings: map[string]json.RawMessage{}},
		schedule:   &recordingSchedule{shifts: map[string]schedule.CreateShiftRequest{}, holidays: map[string]bool{}},
		leaveTypes: &recordingLeaveTypes{names: map[string]bool{}},
	}
	f.seeder = NewSeeder(f.users, f.master, f.schedule, f.leaveTypes, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return f
}

func TestParse_ShippedSeedFile(t *testing.T) {
	d, err := Parse(assets.Seed)
	require.NoError(t, err)

	assert.Equal(t, "admin@codezenith.local", d.Admin.Email)
	assert.Len(t, d.Departments, 4)
	assert.Len(t, d.Shifts, 3)
	assert.Len(t, d.LeaveTypes, 3)
	assert.Len(t, d.Holidays, 3)
	assert.Len(t, d.Settings, 3)

	night := d.Shifts[2].Request()
	assert.Equal(t, "22:00", night.StartTime)
	assert.Equal(t, "06:00", night.EndTime)
	assert.Equal(t, 15, night.GracePeriodMinutes)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("admin: [unterminated"))
	assert.Error(t, err)
}

func TestSettingRequests_EncodesValuesAsJSON(t *testing.T) {
	d := Defaults{Settings: map[string]any{
		"company.name":           "CodeZenith",
		"attendance.work_days":   []any{"mon", "tue"},
		"leave.year_start_month": 1,
	}}

	reqs, err := d.SettingRequests()
	require.NoError(t, err)
	require.Len(t, reqs, 3)

	// sorted by key
	assert.Equal(t, "attendance.work_days", reqs[0].Key)
	assert.JSONEq(t, `["mon","tue"]`, string(reqs[0].Value))
	assert.Equal(t, "company.name", reqs[1].Key)
	assert.JSONEq(t, `"CodeZenith"`, string(reqs[1].Value))
	assert.JSONEq(t, `1`, string(reqs[2].Value))
}

func TestSeeder_Seed(t *testing.T) {
	d, err := Parse(assets.Seed)
	require.NoError(t, err)
	f := newSeedFixture()

	result, err := f.seeder.Seed(context.Background(), d)
	require.NoError(t, err)

	assert.Equal(t, 17, result.Created)
	assert.Zero(t, result.Skipped)

	require.Len(t, f.users.created, 1)
	admin := f.users.created[0]
	assert.Equal(t, user.RoleAdmin, admin.Role)
	assert.True(t, admin.IsActive)
	require.NotNil(t, admin.PasswordHash)
	assert.True(t, password.Matches(*admin.PasswordHash, d.Admin.Password))

	assert.True(t, f.master.departments["Engineering"])
	assert.Contains(t, f.schedule.shifts, "Night")
	assert.True(t, f.leaveTypes.names["Annual Leave"])
	assert.True(t, f.schedule.holidays["2026-08-17"])
	assert.JSONEq(t, `"CodeZenith"`, string(f.master.settings["company.name"]))
}

func TestSeeder_SecondRunSkipsExisting(t *testing.T) {
	d, err := Parse(assets.Seed)
	require.NoError(t, err)
	f := newSeedFixture()

	_, err = f.seeder.Seed(context.Background(), d)
	require.NoError(t, err)

	result, err := f.seeder.Seed(context.Background(), d)
	require.NoError(t, err)

	// settings are upserts and count as created every run
	assert.Equal(t, 3, result.Created)
	assert.Equal(t, 14, result.Skipped)
	assert.Len(t, f.users.created, 1)
}

func TestSeeder_RejectsShortAdminPassword(t *testing.T) {
	f := newSeedFixture()

	_, err := f.seeder.Seed(context.Background(), Defaults{
		Admin: AdminAccount{Email: "admin@example.com", Name: "Admin", Password: "short"},
	})

	require.Error(t, err)
	assert.Empty(t, f.users.created)
}
