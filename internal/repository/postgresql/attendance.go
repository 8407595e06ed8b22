package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/codezenith/hrms-backend-go/internal/domain/attendance"
	"github.com/codezenith/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const attendanceColumns = `a.id, a.employee_id, a.date, a.check_in, a.check_out, a.status, a.notes,
		a.created_at, a.updated_at, e.full_name, e.employee_code, e.department`

const attendanceSelect = `SELECT ` + attendanceColumns + ` FROM attendance a LEFT JOIN employees e ON e.id = a.employee_id`

var attendanceErrors = pgErrorMapping{
	notFound: attendance.ErrAttendanceNotFound,
	unique:   attendance.ErrAlreadyCheckedIn,
}

type attendanceRepositoryImpl struct {
	db database.Pool
}

func NewAttendanceRepository(db database.Pool) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(
		&a.ID,
		&a.EmployeeID,
		&a.Date,
		&a.CheckIn,
		&a.CheckOut,
		&a.Status,
		&a.Notes,
		&a.CreatedAt,
		&a.UpdatedAt,
		&a.EmployeeName,
		&a.EmployeeCode,
		&a.Department,
	)
	return a, err
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)
	if a.ID == "" {
		a.ID = newID()
	}
	query := `
		WITH inserted AS (
			INSERT INTO attendance (id, employee_id, date, check_in, check_out, status, notes)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING *
		)
		SELECT ` + attendanceColumns + `
		FROM inserted a LEFT JOIN employees e ON e.id = a.employee_id`

	created, err := scanAttendance(q.QueryRow(ctx, query,
		a.ID,
		a.EmployeeID,
		dateArg(a.Date),
		a.CheckIn,
		a.CheckOut,
		a.Status,
		a.Notes,
	))
	if err != nil {
		return attendance.Attendance{}, attendanceErrors.translate(err)
	}
	return created, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)
	a, err := scanAttendance(q.QueryRow(ctx, attendanceSelect+` WHERE a.id = $1`, id))
	if err != nil {
		return attendance.Attendance{}, attendanceErrors.translate(err)
	}
	return a, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)
	a, err := scanAttendance(q.QueryRow(ctx, attendanceSelect+` WHERE a.employee_id = $1 AND a.date = $2`, employeeID, dateArg(date)))
	if err != nil {
		return attendance.Attendance{}, attendanceErrors.translate(err)
	}
	return a, nil
}

// SetCheckOut implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) SetCheckOut(ctx context.Context, id string, checkOut time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		WITH updated AS (
			UPDATE attendance SET check_out = $1, updated_at = NOW()
			WHERE id = $2 AND check_out IS NULL
			RETURNING *
		)
		SELECT ` + attendanceColumns + `
		FROM updated a LEFT JOIN employees e ON e.id = a.employee_id`

	updated, err := scanAttendance(q.QueryRow(ctx, query, checkOut, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedOut
		}
		return attendance.Attendance{}, err
	}
	return updated, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		WITH updated AS (
			UPDATE attendance
			SET check_in = $1, check_out = $2, status = $3, notes = $4, updated_at = NOW()
			WHERE id = $5
			RETURNING *
		)
		SELECT ` + attendanceColumns + `
		FROM updated a LEFT JOIN employees e ON e.id = a.employee_id`

	updated, err := scanAttendance(q.QueryRow(ctx, query, a.CheckIn, a.CheckOut, a.Status, a.Notes, a.ID))
	if err != nil {
		return attendance.Attendance{}, attendanceErrors.translate(err)
	}
	return updated, nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("a.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		conditions = append(conditions, fmt.Sprintf("a.date >= $%d", argIdx))
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		conditions = append(conditions, fmt.Sprintf("a.date <= $%d", argIdx))
		args = append(args, *filter.EndDate)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("a.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM attendance a WHERE "+whereClause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count attendance: %w", err)
	}

	query := fmt.Sprintf(`%s WHERE %s ORDER BY a.date DESC, a.check_in DESC LIMIT $%d OFFSET $%d`,
		attendanceSelect, whereClause, argIdx, argIdx+1)
	args = append(args, filter.Limit, filter.Offset())

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list attendance: %w", err)
	}
	defer rows.Close()

	records := make([]attendance.Attendance, 0)
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

// CountByStatus implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) CountByStatus(ctx context.Context, date time.Time) (map[attendance.Status]int64, error) {
	q := GetQuerier(ctx, r.db)
	rows, err := q.Query(ctx, `SELECT status, COUNT(*) FROM attendance WHERE date = $1 GROUP BY status`, dateArg(date))
	if err != nil {
		return nil, fmt.Errorf("count attendance by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[attendance.Status]int64)
	for rows.Next() {
		var status attendance.Status
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}
