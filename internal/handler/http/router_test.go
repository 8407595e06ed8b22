package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/codezenith/hrms-backend-go/internal/domain/attendance"
	"github.com/codezenith/hrms-backend-go/internal/domain/auth"
	"github.com/codezenith/hrms-backend-go/internal/domain/employee"
	"github.com/codezenith/hrms-backend-go/internal/domain/leave"
	"github.com/codezenith/hrms-backend-go/internal/domain/schedule"
	"github.com/codezenith/hrms-backend-go/internal/domain/user"
	"github.com/codezenith/hrms-backend-go/internal/handler/http/response"
	"github.com/codezenith/hrms-backend-go/internal/pkg/jwt"
	"github.com/codezenith/hrms-backend-go/internal/service/master"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret     = "router-test-secret"
	testEmployeeID = "0199a1b2-0000-7000-8000-000000000001"
	testLeaveID    = "0199a1b2-0000-7000-8000-0000000000aa"
)

// Stubs embed the service interface so only the methods a test touches need
// an implementation.

type stubAuthService struct {
	auth.AuthService
	loginErr error
}

func (s *stubAuthService) Login(_ context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if s.loginErr != nil {
		return auth.TokenResponse{}, s.loginErr
	}
	return auth.TokenResponse{AccessToken: "token", TokenType: "Bearer", User: auth.MeResponse{Email: req.Email}}, nil
}

func (s *stubAuthService) Me(_ context.Context, actor user.Actor) (auth.MeResponse, error) {
	return auth.MeResponse{ID: actor.UserID, Email: actor.Email, Role: string(actor.Role)}, nil
}

type stubEmployeeService struct {
	employee.EmployeeService
	deleted []string
}

func (s *stubEmployeeService) ListEmployees(_ context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	return employee.ListEmployeeResponse{}, nil
}

func (s *stubEmployeeService) DeleteEmployee(_ context.Context, _ user.Actor, id string) error {
	s.deleted = append(s.deleted, id)
	return nil
}

type stubAttendanceService struct {
	attendance.AttendanceService
	checkInErr error
	today      *attendance.AttendanceResponse
}

func (s *stubAttendanceService) CheckIn(_ context.Context, actor user.Actor, _ attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if s.checkInErr != nil {
		return attendance.AttendanceResponse{}, s.checkInErr
	}
	return attendance.AttendanceResponse{EmployeeID: actor.EmployeeID, Status: "present"}, nil
}

func (s *stubAttendanceService) GetToday(context.Context, user.Actor) (*attendance.AttendanceResponse, error) {
	return s.today, nil
}

type stubLeaveService struct {
	leave.LeaveService
	decided   leave.DecideLeaveRequest
	cancelled string
	balanceOf string
}

func (s *stubLeaveService) Decide(_ context.Context, _ user.Actor, req leave.DecideLeaveRequest) (leave.LeaveRequestResponse, error) {
	s.decided = req
	return leave.LeaveRequestResponse{ID: req.ID, Status: req.Status}, nil
}

func (s *stubLeaveService) Cancel(_ context.Context, _ user.Actor, id string) error {
	s.cancelled = id
	return nil
}

func (s *stubLeaveService) GetBalance(_ context.Context, employeeID string) ([]leave.BalanceResponse, error) {
	s.balanceOf = employeeID
	return []leave.BalanceResponse{}, nil
}

type stubScheduleService struct {
	schedule.ScheduleService
	filter schedule.HolidayFilter
}

func (s *stubScheduleService) ListHolidays(_ context.Context, filter schedule.HolidayFilter) ([]schedule.HolidayResponse, error) {
	s.filter = filter
	return []schedule.HolidayResponse{}, nil
}

type stubMasterService struct {
	master.MasterService
}

type routerFixture struct {
	router     http.Handler
	jwt        jwt.Service
	auth       *stubAuthService
	employees  *stubEmployeeService
	attendance *stubAttendanceService
	leaves     *stubLeaveService
	schedule   *stubScheduleService
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()

	f := &routerFixture{
		jwt:        jwt.NewJWTService(testSecret, time.Hour),
		auth:       &stubAuthService{},
		employees:  &stubEmployeeService{},
		attendance: &stubAttendanceService{},
		leaves:     &stubLeaveService{},
		schedule:   &stubScheduleService{},
	}
	handlers := Handlers{
		Auth:       NewAuthHandler(f.auth, nil, "http://localhost:3000", false),
		Employee:   NewEmployeeHandler(f.employees),
		Attendance: NewAttendanceHandler(f.attendance),
		Leave:      NewLeaveHandler(f.leaves),
		Schedule:   NewScheduleHandler(f.schedule),
		Master:     NewMasterHandler(&stubMasterService{}),
	}
	f.router = NewRouter(f.jwt, handlers, RouterOptions{
		AllowedOrigins: []string{"http://localhost:3000"},
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	return f
}

func (f *routerFixture) tokenFor(t *testing.T, role user.Role) string {
	t.Helper()
	token, _, err := f.jwt.GenerateAccessToken(user.Actor{
		UserID:     "user-" + string(role),
		EmployeeID: testEmployeeID,
		Name:       "Test " + string(role),
		Email:      string(role) + "@example.com",
		Role:       role,
	})
	require.NoError(t, err)
	return token
}

func (f *routerFixture) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestRouter_Health(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(t, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newRouterFixture(t)

		rec := f.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
			"email":    "hr@example.com",
			"password": "password123",
		})

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeResponse(t, rec)
		assert.True(t, resp.Success)
		data := resp.Data.(map[string]interface{})
		assert.Equal(t, "token", data["access_token"])
		assert.Equal(t, "Bearer", data["token_type"])
	})

	t.Run("invalid credentials", func(t *testing.T) {
		f := newRouterFixture(t)
		f.auth.loginErr = auth.ErrInvalidCredentials

		rec := f.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
			"email":    "hr@example.com",
			"password": "wrong",
		})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, decodeResponse(t, rec).Success)
	})

	t.Run("malformed body", func(t *testing.T) {
		f := newRouterFixture(t)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString("{not json"))
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRouter_GoogleRoutesDisabled(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(t, http.MethodGet, "/api/auth/google", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_Authentication(t *testing.T) {
	f := newRouterFixture(t)

	t.Run("missing token", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/auth/me", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other := jwt.NewJWTService("some-other-secret", time.Hour)
		token, _, err := other.GenerateAccessToken(user.Actor{UserID: "u1", Role: user.RoleAdmin})
		require.NoError(t, err)

		rec := f.do(t, http.MethodGet, "/api/auth/me", token, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/auth/me", f.tokenFor(t, user.RoleEmployee), nil)

		require.Equal(t, http.StatusOK, rec.Code)
		data := decodeResponse(t, rec).Data.(map[string]interface{})
		assert.Equal(t, "employee@example.com", data["email"])
		assert.Equal(t, "employee", data["role"])
	})
}

func TestRouter_Permissions(t *testing.T) {
	tests := []struct {
		name   string
		role   user.Role
		method string
		path   string
		want   int
	}{
		{"employee cannot list employees", user.RoleEmployee, http.MethodGet, "/api/employees", http.StatusForbidden},
		{"manager can list employees", user.RoleManager, http.MethodGet, "/api/employees", http.StatusOK},
		{"hr cannot delete employees", user.RoleHR, http.MethodDelete, "/api/employees/" + testEmployeeID, http.StatusForbidden},
		{"admin can delete employees", user.RoleAdmin, http.MethodDelete, "/api/employees/" + testEmployeeID, http.StatusOK},
		{"employee cannot decide leave", user.RoleEmployee, http.MethodPut, "/api/leaves/" + testLeaveID, http.StatusForbidden},
		{"employee can read a balance", user.RoleEmployee, http.MethodGet, "/api/leaves/balance/" + testEmployeeID, http.StatusOK},
		{"employee cannot read today stats", user.RoleEmployee, http.MethodGet, "/api/attendance/today-stats", http.StatusForbidden},
		{"employee can read holidays", user.RoleEmployee, http.MethodGet, "/api/settings/holidays", http.StatusOK},
		{"employee cannot create holidays", user.RoleEmployee, http.MethodPost, "/api/settings/holidays", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRouterFixture(t)

			rec := f.do(t, tt.method, tt.path, f.tokenFor(t, tt.role), nil)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestRouter_DeleteEmployeePassesID(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(t, http.MethodDelete, "/api/employees/"+testEmployeeID, f.tokenFor(t, user.RoleAdmin), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{testEmployeeID}, f.employees.deleted)
}

func TestRouter_CheckIn(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		f := newRouterFixture(t)

		rec := f.do(t, http.MethodPost, "/api/attendance/check-in", f.tokenFor(t, user.RoleEmployee), nil)

		require.Equal(t, http.StatusCreated, rec.Code)
		data := decodeResponse(t, rec).Data.(map[string]interface{})
		assert.Equal(t, testEmployeeID, data["employee_id"])
	})

	t.Run("duplicate maps to conflict", func(t *testing.T) {
		f := newRouterFixture(t)
		f.attendance.checkInErr = attendance.ErrAlreadyCheckedIn

		rec := f.do(t, http.MethodPost, "/api/attendance/check-in", f.tokenFor(t, user.RoleEmployee), nil)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestRouter_GetTodayWithoutRecord(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(t, http.MethodGet, "/api/attendance/today", f.tokenFor(t, user.RoleEmployee), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Data)
}

func TestRouter_DecideLeave(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(t, http.MethodPut, "/api/leaves/"+testLeaveID, f.tokenFor(t, user.RoleManager), map[string]string{
		"status":  "approved",
		"remarks": "enjoy",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, testLeaveID, f.leaves.decided.ID)
	assert.Equal(t, "approved", f.leaves.decided.Status)
	require.NotNil(t, f.leaves.decided.Remarks)
	assert.Equal(t, "enjoy", *f.leaves.decided.Remarks)
	assert.Equal(t, "Leave request approved", decodeResponse(t, rec).Message)
}

func TestRouter_CancelLeave(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(t, http.MethodDelete, "/api/leaves/"+testLeaveID, f.tokenFor(t, user.RoleEmployee), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, testLeaveID, f.leaves.cancelled)
}

func TestRouter_Balance(t *testing.T) {
	t.Run("own balance uses the token's employee", func(t *testing.T) {
		f := newRouterFixture(t)

		rec := f.do(t, http.MethodGet, "/api/leaves/balance/me", f.tokenFor(t, user.RoleEmployee), nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, testEmployeeID, f.leaves.balanceOf)
	})

	t.Run("account without employee", func(t *testing.T) {
		f := newRouterFixture(t)
		token, _, err := f.jwt.GenerateAccessToken(user.Actor{UserID: "u1", Email: "a@example.com", Role: user.RoleAdmin})
		require.NoError(t, err)

		rec := f.do(t, http.MethodGet, "/api/leaves/balance/me", token, nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Empty(t, f.leaves.balanceOf)
	})

	t.Run("by employee id", func(t *testing.T) {
		f := newRouterFixture(t)

		rec := f.do(t, http.MethodGet, "/api/leaves/balance/"+testEmployeeID, f.tokenFor(t, user.RoleManager), nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, testEmployeeID, f.leaves.balanceOf)
	})
}

func TestRouter_ListHolidaysYear(t *testing.T) {
	t.Run("parses year", func(t *testing.T) {
		f := newRouterFixture(t)

		rec := f.do(t, http.MethodGet, "/api/settings/holidays?year=2025", f.tokenFor(t, user.RoleEmployee), nil)

		require.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, f.schedule.filter.Year)
		assert.Equal(t, 2025, *f.schedule.filter.Year)
	})

	t.Run("rejects non-numeric year", func(t *testing.T) {
		f := newRouterFixture(t)

		rec := f.do(t, http.MethodGet, "/api/settings/holidays?year=next", f.tokenFor(t, user.RoleEmployee), nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Nil(t, f.schedule.filter.Year)
	})
}
