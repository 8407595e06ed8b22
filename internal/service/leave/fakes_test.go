package leave

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/codezenith/hrms-backend-go/internal/domain/audit"
	"github.com/codezenith/hrms-backend-go/internal/domain/employee"
	"github.com/codezenith/hrms-backend-go/internal/domain/leave"
)

type passthroughTx struct{ calls int }

func (p *passthroughTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	p.calls++
	return fn(ctx)
}

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	byID map[string]employee.Employee
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

type fakeLeaveRequestRepo struct {
	employees *fakeEmployeeRepo
	requests  map[string]leave.LeaveRequest
	seq       int
	// beforeWrite runs ahead of UpdateStatus and Delete to simulate another
	// writer landing between the service's read and its write.
	beforeWrite func(id string)
}

func (f *fakeLeaveRequestRepo) join(r leave.LeaveRequest) leave.LeaveRequest {
	if e, ok := f.employees.byID[r.EmployeeID]; ok {
		name, code, mail := e.FullName, e.EmployeeCode, e.Email
		r.EmployeeName, r.EmployeeCode, r.EmployeeEmail = &name, &code, &mail
	}
	return r
}

func (f *fakeLeaveRequestRepo) Create(ctx context.Context, r leave.LeaveRequest) (leave.LeaveRequest, error) {
	f.seq++
	r.ID = fmt.Sprintf("lr-%d", f.seq)
	f.requests[r.ID] = r
	return f.join(r), nil
}

func (f *fakeLeaveRequestRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	r, ok := f.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return f.join(r), nil
}

func (f *fakeLeaveRequestRepo) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, r := range f.requests {
		if filter.EmployeeID != nil && r.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Status != nil && string(r.Status) != *filter.Status {
			continue
		}
		if filter.LeaveType != nil && r.LeaveType != *filter.LeaveType {
			continue
		}
		out = append(out, f.join(r))
	}
	return out, nil
}

func (f *fakeLeaveRequestRepo) UpdateStatus(ctx context.Context, id string, status leave.LeaveRequestStatus, approvedBy string, approvedDate time.Time) (leave.LeaveRequest, error) {
	if f.beforeWrite != nil {
		f.beforeWrite(id)
	}
	r, ok := f.requests[id]
	if !ok || r.Status != leave.LeaveRequestStatusPending {
		return leave.LeaveRequest{}, leave.ErrNotPending
	}
	r.Status = status
	r.ApprovedBy = &approvedBy
	r.ApprovedDate = &approvedDate
	f.requests[id] = r
	return f.join(r), nil
}

func (f *fakeLeaveRequestRepo) Delete(ctx context.Context, id string) error {
	if f.beforeWrite != nil {
		f.beforeWrite(id)
	}
	if r, ok := f.requests[id]; !ok || r.Status != leave.LeaveRequestStatusPending {
		return leave.ErrNotPending
	}
	delete(f.requests, id)
	return nil
}

func (f *fakeLeaveRequestRepo) CountByLeaveType(ctx context.Context, name string) (int64, error) {
	var n int64
	for _, r := range f.requests {
		if r.LeaveType == name {
			n++
		}
	}
	return n, nil
}

type fakeLeaveTypeRepo struct {
	types map[string]leave.LeaveType
	order []string
}

func newFakeLeaveTypeRepo(types ...leave.LeaveType) *fakeLeaveTypeRepo {
	f := &fakeLeaveTypeRepo{types: map[string]leave.LeaveType{}}
	for _, t := range types {
		f.types[t.ID] = t
		f.order = append(f.order, t.ID)
	}
	return f
}

func (f *fakeLeaveTypeRepo) Create(ctx context.Context, t leave.LeaveType) (leave.LeaveType, error) {
	for _, existing := range f.types {
		if strings.EqualFold(existing.Name, t.Name) {
			return leave.LeaveType{}, leave.ErrLeaveTypeNameExists
		}
	}
	t.ID = fmt.Sprintf("lt-%d", len(f.order)+1)
	f.types[t.ID] = t
	f.order = append(f.order, t.ID)
	return t, nil
}

func (f *fakeLeaveTypeRepo) GetByID(ctx context.Context, id string) (leave.LeaveType, error) {
	t, ok := f.types[id]
	if !ok {
		return leave.LeaveType{}, leave.ErrLeaveTypeNotFound
	}
	return t, nil
}

func (f *fakeLeaveTypeRepo) GetByName(ctx context.Context, name string) (leave.LeaveType, error) {
	for _, t := range f.types {
		if strings.EqualFold(t.Name, name) {
			return t, nil
		}
	}
	return leave.LeaveType{}, leave.ErrLeaveTypeNotFound
}

func (f *fakeLeaveTypeRepo) List(ctx context.Context) ([]leave.LeaveType, error) {
	out := make([]leave.LeaveType, 0, len(f.order))
	for _, id := range f.order {
		if t, ok := f.types[id]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeLeaveTypeRepo) Update(ctx context.Context, t leave.LeaveType) (leave.LeaveType, error) {
	f.types[t.ID] = t
	return t, nil
}

func (f *fakeLeaveTypeRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.types[id]; !ok {
		return leave.ErrLeaveTypeNotFound
	}
	delete(f.types, id)
	return nil
}

type fakeRecorder struct {
	entries []audit.Entry
}

func (f *fakeRecorder) Record(ctx context.Context, entry audit.Entry) {
	f.entries = append(f.entries, entry)
}

type sentDecision struct {
	to, name, leaveType, from, to2, status, decidedBy string
}

type fakeMailer struct {
	mu        sync.Mutex
	decisions []sentDecision
}

func (m *fakeMailer) SendInvitation(to, employeeName, inviterName, loginURL, tempPassword string) error {
	return nil
}

func (m *fakeMailer) SendLeaveDecision(to, employeeName, leaveType, fromDate, toDate, status, decidedBy string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.decisions = append(m.decisions, sentDecision{to, employeeName, leaveType, fromDate, toDate, status, decidedBy})
	return nil
}
