package employee

import (
	"context"
	"errors"
	"testing"

	"github.com/codezenith/hrms-backend-go/internal/domain/audit"
	"github.com/codezenith/hrms-backend-go/internal/domain/employee"
	"github.com/codezenith/hrms-backend-go/internal/domain/user"
	"github.com/codezenith/hrms-backend-go/internal/pkg/email"
	"github.com/codezenith/hrms-backend-go/internal/pkg/password"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const morningShift = "0190f1c2-0000-7000-8000-00000000d001"

type fixture struct {
	svc       employee.EmployeeService
	employees *fakeEmployeeRepo
	users     *fakeUserRepo
	recorder  *fakeRecorder
	mailer    *fakeMailer
	dispatch  *email.Dispatcher
	admin     user.Actor
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		employees: &fakeEmployeeRepo{byID: map[string]employee.Employee{
			"emp-admin": {ID: "emp-admin", EmployeeCode: "ADM001", FullName: "Admin", Email: "admin@example.com", Role: user.RoleAdmin, Status: employee.StatusActive},
		}},
		users:    &fakeUserRepo{users: map[string]user.User{}},
		recorder: &fakeRecorder{},
		mailer:   &fakeMailer{},
		admin:    user.Actor{UserID: "u-admin", EmployeeID: "emp-admin", Name: "Admin", Email: "admin@example.com", Role: user.RoleAdmin},
	}
	f.dispatch = email.NewDispatcher(f.mailer, nil)
	f.svc = NewEmployeeService(passthroughTx{}, f.employees, f.users,
		&fakeShiftRepo{ids: map[string]bool{morningShift: true}},
		f.recorder, f.dispatch, "https://hr.example.com/")
	return f
}

func validCreate() employee.CreateEmployeeRequest {
	shift := morningShift
	return employee.CreateEmployeeRequest{
		EmployeeCode: "EMP001",
		FullName:     "Budi Santoso",
		Email:        " Budi@Example.com ",
		ShiftID:      &shift,
	}
}

func TestCreateEmployee_ProvisionsAccount(t *testing.T) {
	f := newFixture(t)

	resp, err := f.svc.CreateEmployee(context.Background(), f.admin, validCreate())
	require.NoError(t, err)
	f.dispatch.Wait()

	assert.Equal(t, "budi@example.com", resp.Email)
	assert.Equal(t, "employee", resp.Role)
	assert.Equal(t, "active", resp.Status)
	require.NotNil(t, resp.UserID)

	account := f.users.users[*resp.UserID]
	require.NotNil(t, account.EmployeeID)
	assert.Equal(t, resp.ID, *account.EmployeeID)
	assert.True(t, account.IsActive)

	require.Len(t, f.mailer.invitations, 1)
	inv := f.mailer.invitations[0]
	assert.Equal(t, "budi@example.com", inv.to)
	assert.Equal(t, "Admin", inv.inviter)
	assert.Equal(t, "https://hr.example.com/login", inv.loginURL)
	require.NotNil(t, account.PasswordHash)
	assert.True(t, password.Matches(*account.PasswordHash, inv.tempPassword))
}

func TestCreateEmployee_LinksExistingAccount(t *testing.T) {
	f := newFixture(t)
	f.users.users["user-9"] = user.User{ID: "user-9", Email: "budi@example.com", Role: user.RoleEmployee, IsActive: true}

	resp, err := f.svc.CreateEmployee(context.Background(), f.admin, validCreate())
	require.NoError(t, err)
	f.dispatch.Wait()

	require.NotNil(t, resp.UserID)
	assert.Equal(t, "user-9", *resp.UserID)
	assert.Empty(t, f.mailer.invitations, "existing accounts are not re-invited")
}

func TestCreateEmployee_AccountFailureIsSwallowed(t *testing.T) {
	f := newFixture(t)
	f.users.createErr = errors.New("connection reset")
	f.mailer.err = errors.New("smtp down")

	resp, err := f.svc.CreateEmployee(context.Background(), f.admin, validCreate())
	require.NoError(t, err)
	f.dispatch.Wait()

	assert.Nil(t, resp.UserID)
	assert.Contains(t, f.employees.byID, resp.ID)
}

func TestCreateEmployee_Conflicts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.svc.CreateEmployee(ctx, f.admin, validCreate())
	require.NoError(t, err)

	dupCode := validCreate()
	dupCode.Email = "other@example.com"
	_, err = f.svc.CreateEmployee(ctx, f.admin, dupCode)
	assert.ErrorIs(t, err, employee.ErrEmployeeCodeExists)

	dupEmail := validCreate()
	dupEmail.EmployeeCode = "EMP002"
	_, err = f.svc.CreateEmployee(ctx, f.admin, dupEmail)
	assert.ErrorIs(t, err, employee.ErrEmailExists)

	missingShift := validCreate()
	missingShift.EmployeeCode, missingShift.Email = "EMP003", "new@example.com"
	unknown := "0190f1c2-0000-7000-8000-0000000000ff"
	missingShift.ShiftID = &unknown
	_, err = f.svc.CreateEmployee(ctx, f.admin, missingShift)
	assert.ErrorIs(t, err, employee.ErrShiftNotFound)

	f.dispatch.Wait()
}

func TestUpdateEmployee(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created, err := f.svc.CreateEmployee(ctx, f.admin, validCreate())
	require.NoError(t, err)
	f.dispatch.Wait()

	dept := "Engineering"
	unassign := ""
	resp, err := f.svc.UpdateEmployee(ctx, employee.UpdateEmployeeRequest{ID: created.ID, Department: &dept, ShiftID: &unassign})
	require.NoError(t, err)
	assert.Equal(t, &dept, resp.Department)
	assert.Nil(t, resp.ShiftID)
	assert.Equal(t, "Budi Santoso", resp.FullName)

	_, err = f.svc.UpdateEmployee(ctx, employee.UpdateEmployeeRequest{ID: "missing", Department: &dept})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestDeleteEmployee(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created, err := f.svc.CreateEmployee(ctx, f.admin, validCreate())
	require.NoError(t, err)
	f.dispatch.Wait()

	hr := user.Actor{UserID: "u-hr", Name: "HR", Email: "hr@example.com", Role: user.RoleHR}
	assert.ErrorIs(t, f.svc.DeleteEmployee(ctx, hr, created.ID), user.ErrAdminPrivilegeRequired)
	assert.ErrorIs(t, f.svc.DeleteEmployee(ctx, f.admin, "emp-admin"), employee.ErrCannotDeleteSelf)

	require.NoError(t, f.svc.DeleteEmployee(ctx, f.admin, created.ID))
	assert.NotContains(t, f.employees.byID, created.ID)

	require.Len(t, f.recorder.entries, 1)
	entry := f.recorder.entries[0]
	assert.Equal(t, audit.ActionEmployeeDelete, entry.Action)
	assert.Equal(t, created.ID, entry.EntityID)
	assert.Equal(t, "EMP001", entry.Details["employee_code"])

	assert.ErrorIs(t, f.svc.DeleteEmployee(ctx, f.admin, created.ID), employee.ErrEmployeeNotFound)
}

func TestListEmployees(t *testing.T) {
	f := newFixture(t)

	list, err := f.svc.ListEmployees(context.Background(), employee.EmployeeFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, list.Page)
	assert.Equal(t, 20, list.Limit)
	assert.Equal(t, "1-1 of 1", list.Showing)

	none := "Finance"
	list, err = f.svc.ListEmployees(context.Background(), employee.EmployeeFilter{Department: &none})
	require.NoError(t, err)
	assert.Equal(t, "0 of 0", list.Showing)
	assert.Empty(t, list.Employees)
}

func TestMyProfile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	me, err := f.svc.GetMyProfile(ctx, f.admin)
	require.NoError(t, err)
	assert.Equal(t, "ADM001", me.EmployeeCode)

	phone := "+628123456789"
	address := "Jl. Merdeka 1, Jakarta"
	updated, err := f.svc.UpdateMyProfile(ctx, f.admin, employee.UpdateProfileRequest{Phone: &phone, Address: &address})
	require.NoError(t, err)
	assert.Equal(t, &phone, updated.Phone)
	assert.Equal(t, &address, updated.Address)

	_, err = f.svc.GetMyProfile(ctx, user.Actor{Email: "nobody@example.com", Role: user.RoleEmployee})
	assert.ErrorIs(t, err, employee.ErrNoLinkedEmployee)
}
