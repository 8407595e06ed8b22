package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/codezenith/hrms-backend-go/internal/domain/attendance"
	"github.com/codezenith/hrms-backend-go/internal/domain/audit"
	"github.com/codezenith/hrms-backend-go/internal/domain/employee"
	"github.com/codezenith/hrms-backend-go/internal/domain/schedule"
)

type fakeAttendanceRepo struct {
	records map[string]attendance.Attendance
	seq     int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: map[string]attendance.Attendance{}}
}

func dayKey(t time.Time) string { return t.Format("2006-01-02") }

func (f *fakeAttendanceRepo) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	for _, r := range f.records {
		if r.EmployeeID == a.EmployeeID && dayKey(r.Date) == dayKey(a.Date) {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
	}
	f.seq++
	a.ID = fmt.Sprintf("a-%d", f.seq)
	f.records[a.ID] = a
	return a, nil
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	r, ok := f.records[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return r, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Attendance, error) {
	for _, r := range f.records {
		if r.EmployeeID == employeeID && dayKey(r.Date) == dayKey(date) {
			return r, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) SetCheckOut(ctx context.Context, id string, checkOut time.Time) (attendance.Attendance, error) {
	r, ok := f.records[id]
	if !ok || r.CheckOut != nil {
		return attendance.Attendance{}, attendance.ErrAlreadyCheckedOut
	}
	r.CheckOut = &checkOut
	f.records[id] = r
	return r, nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	if _, ok := f.records[a.ID]; !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	f.records[a.ID] = a
	return a, nil
}

func (f *fakeAttendanceRepo) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	var out []attendance.Attendance
	for _, r := range f.records {
		if filter.EmployeeID != nil && r.EmployeeID != *filter.EmployeeID {
			continue
		}
		out = append(out, r)
	}
	return out, int64(len(out)), nil
}

func (f *fakeAttendanceRepo) CountByStatus(ctx context.Context, date time.Time) (map[attendance.Status]int64, error) {
	counts := map[attendance.Status]int64{}
	for _, r := range f.records {
		if dayKey(r.Date) == dayKey(date) {
			counts[r.Status]++
		}
	}
	return counts, nil
}

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	byID   map[string]employee.Employee
	active int64
}

func newFakeEmployeeRepo(emps ...employee.Employee) *fakeEmployeeRepo {
	f := &fakeEmployeeRepo{byID: map[string]employee.Employee{}}
	for _, e := range emps {
		f.byID[e.ID] = e
	}
	return f
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
		if e.Email == email {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) CountActive(ctx context.Context) (int64, error) {
	return f.active, nil
}

type fakeShiftRepo struct {
	schedule.ShiftRepository
	shifts map[string]schedule.Shift
}

func (f *fakeShiftRepo) GetByID(ctx context.Context, id string) (schedule.Shift, error) {
	s, ok := f.shifts[id]
	if !ok {
		return schedule.Shift{}, schedule.ErrShiftNotFound
	}
	return s, nil
}

type fakeRecorder struct {
	entries []audit.Entry
}

func (f *fakeRecorder) Record(ctx context.Context, entry audit.Entry) {
	f.entries = append(f.entries, entry)
}
