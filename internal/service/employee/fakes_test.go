package employee

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/codezenith/hrms-backend-go/internal/domain/audit"
	"github.com/codezenith/hrms-backend-go/internal/domain/employee"
	"github.com/codezenith/hrms-backend-go/internal/domain/schedule"
	"github.com/codezenith/hrms-backend-go/internal/domain/user"
)

type passthroughTx struct{}

func (passthroughTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	byID map[string]employee.Employee
	seq  int
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	e, ok := f.byID[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	for _, e := range f.byID {
		if strings.EqualFold(e.Email, email) {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) ExistsByCodeOrEmail(ctx context.Context, code, email string) (bool, bool, error) {
	var codeTaken, emailTaken bool
	for _, e := range f.byID {
		codeTaken = codeTaken || e.EmployeeCode == code
		emailTaken = emailTaken || strings.EqualFold(e.Email, email)
	}
	return codeTaken, emailTaken, nil
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	f.seq++
	e.ID = fmt.Sprintf("emp-%d", f.seq)
	f.byID[e.ID] = e
	return e, nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	var out []employee.Employee
	for _, e := range f.byID {
		if filter.Department != nil && (e.Department == nil || *e.Department != *filter.Department) {
			continue
		}
		out = append(out, e)
	}
	return out, int64(len(out)), nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	f.byID[e.ID] = e
	return e, nil
}

func (f *fakeEmployeeRepo) UpdateProfile(ctx context.Context, id string, phone, address *string) (employee.Employee, error) {
	e := f.byID[id]
	if phone != nil {
		e.Phone = phone
	}
	if address != nil {
		e.Address = address
	}
	f.byID[id] = e
	return e, nil
}

func (f *fakeEmployeeRepo) LinkUser(ctx context.Context, id, userID string) error {
	e := f.byID[id]
	e.UserID = &userID
	f.byID[id] = e
	return nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error {
	delete(f.byID, id)
	return nil
}

type fakeUserRepo struct {
	user.UserRepository
	users     map[string]user.User
	createErr error
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	if f.createErr != nil {
		return user.User{}, f.createErr
	}
	u.ID = fmt.Sprintf("user-%d", len(f.users)+1)
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserRepo) LinkEmployee(ctx context.Context, userID, employeeID string) error {
	u := f.users[userID]
	u.EmployeeID = &employeeID
	f.users[userID] = u
	return nil
}

type fakeShiftRepo struct {
	schedule.ShiftRepository
	ids map[string]bool
}

func (f *fakeShiftRepo) GetByID(ctx context.Context, id string) (schedule.Shift, error) {
	if !f.ids[id] {
		return schedule.Shift{}, schedule.ErrShiftNotFound
	}
	return schedule.Shift{ID: id}, nil
}

type fakeRecorder struct {
	entries []audit.Entry
}

func (f *fakeRecorder) Record(ctx context.Context, entry audit.Entry) {
	f.entries = append(f.entries, entry)
}

type invitation struct {
	to, name, inviter, loginURL, tempPassword string
}

type fakeMailer struct {
	mu          sync.Mutex
	invitations []invitation
	err         error
}

func (m *fakeMailer) SendInvitation(to, employeeName, inviterName, loginURL, tempPassword string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.invitations = append(m.invitations, invitation{to, employeeName, inviterName, loginURL, tempPassword})
	return m.err
}

func (m *fakeMailer) SendLeaveDecision(to, employeeName, leaveType, fromDate, toDate, status, decidedBy string) error {
	return nil
}
