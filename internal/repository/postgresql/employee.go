package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/codezenith/hrms-backend-go/internal/domain/employee"
	"github.com/codezenith/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const employeeColumns = `id, employee_code, full_name, email, phone, department, position, role, status,
		join_date, address, dob, shift_id, user_id, created_at, updated_at`

type employeeRepositoryImpl struct {
	db database.Pool
}

func NewEmployeeRepository(db database.Pool) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID,
		&e.EmployeeCode,
		&e.FullName,
		&e.Email,
		&e.Phone,
		&e.Department,
		&e.Position,
		&e.Role,
		&e.Status,
		&e.JoinDate,
		&e.Address,
		&e.DOB,
		&e.ShiftID,
		&e.UserID,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	return e, err
}

// translateEmployeePgError tells the two unique keys apart by constraint name.
func translateEmployeePgError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.ErrEmployeeNotFound
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case uniqueViolationCode:
		if strings.Contains(pgErr.ConstraintName, "email") {
			return employee.ErrEmailExists
		}
		return employee.ErrEmployeeCodeExists
	case foreignKeyViolationCode:
		if strings.Contains(pgErr.ConstraintName, "shift") {
			return employee.ErrShiftNotFound
		}
	}
	return err
}

func dateArgPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := dateArg(*t)
	return &s
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	e, err := scanEmployee(q.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id))
	if err != nil {
		return employee.Employee{}, translateEmployeePgError(err)
	}
	return e, nil
}

// GetByEmployeeCode implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByEmployeeCode(ctx context.Context, employeeCode string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	e, err := scanEmployee(q.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE employee_code = $1`, employeeCode))
	if err != nil {
		return employee.Employee{}, translateEmployeePgError(err)
	}
	return e, nil
}

// GetByEmail implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	e, err := scanEmployee(q.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE lower(email) = lower($1)`, email))
	if err != nil {
		return employee.Employee{}, translateEmployeePgError(err)
	}
	return e, nil
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO employees (
			id, employee_code, full_name, email, phone, department, position, role, status,
			join_date, address, dob, shift_id, user_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING ` + employeeColumns

	if newEmployee.ID == "" {
		newEmployee.ID = newID()
	}
	created, err := scanEmployee(q.QueryRow(ctx, query,
		newEmployee.ID,
		newEmployee.EmployeeCode,
		newEmployee.FullName,
		newEmployee.Email,
		newEmployee.Phone,
		newEmployee.Department,
		newEmployee.Position,
		newEmployee.Role,
		newEmployee.Status,
		dateArgPtr(newEmployee.JoinDate),
		newEmployee.Address,
		dateArgPtr(newEmployee.DOB),
		newEmployee.ShiftID,
		newEmployee.UserID,
	))
	if err != nil {
		return employee.Employee{}, translateEmployeePgError(err)
	}
	return created, nil
}

// ExistsByCodeOrEmail implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ExistsByCodeOrEmail(ctx context.Context, employeeCode, email string) (bool, bool, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT
			EXISTS(SELECT 1 FROM employees WHERE employee_code = $1),
			EXISTS(SELECT 1 FROM employees WHERE lower(email) = lower($2))
	`
	var codeTaken, emailTaken bool
	if err := q.QueryRow(ctx, query, employeeCode, email).Scan(&codeTaken, &emailTaken); err != nil {
		return false, false, err
	}
	return codeTaken, emailTaken, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.Search != nil && *filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(full_name ILIKE $%d OR employee_code ILIKE $%d OR email ILIKE $%d)", argIdx, argIdx, argIdx))
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}
	if filter.Department != nil && *filter.Department != "" {
		conditions = append(conditions, fmt.Sprintf("department = $%d", argIdx))
		args = append(args, *filter.Department)
		argIdx++
	}
	if filter.Role != nil && *filter.Role != "" {
		conditions = append(conditions, fmt.Sprintf("role = $%d", argIdx))
		args = append(args, *filter.Role)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM employees WHERE "+whereClause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count employees: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM employees WHERE %s ORDER BY full_name ASC LIMIT $%d OFFSET $%d`,
		employeeColumns, whereClause, argIdx, argIdx+1)
	args = append(args, filter.Limit, filter.Offset())

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, err
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return employees, total, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE employees
		SET employee_code = $1, full_name = $2, email = $3, phone = $4, department = $5, position = $6,
			role = $7, status = $8, join_date = $9, address = $10, dob = $11, shift_id = $12,
			updated_at = NOW()
		WHERE id = $13
		RETURNING ` + employeeColumns

	updated, err := scanEmployee(q.QueryRow(ctx, query,
		emp.EmployeeCode,
		emp.FullName,
		emp.Email,
		emp.Phone,
		emp.Department,
		emp.Position,
		emp.Role,
		emp.Status,
		dateArgPtr(emp.JoinDate),
		emp.Address,
		dateArgPtr(emp.DOB),
		emp.ShiftID,
		emp.ID,
	))
	if err != nil {
		return employee.Employee{}, translateEmployeePgError(err)
	}
	return updated, nil
}

// UpdateProfile implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) UpdateProfile(ctx context.Context, id string, phone, address *string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE employees
		SET phone = COALESCE($1, phone), address = COALESCE($2, address), updated_at = NOW()
		WHERE id = $3
		RETURNING ` + employeeColumns

	updated, err := scanEmployee(q.QueryRow(ctx, query, phone, address, id))
	if err != nil {
		return employee.Employee{}, translateEmployeePgError(err)
	}
	return updated, nil
}

// LinkUser implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) LinkUser(ctx context.Context, id, userID string) error {
	q := GetQuerier(ctx, r.db)
	tag, err := q.Exec(ctx, `UPDATE employees SET user_id = $1, updated_at = NOW() WHERE id = $2`, userID, id)
	if err != nil {
		return translateEmployeePgError(err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// CountActive implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) CountActive(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)
	var count int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE status = $1`, employee.StatusActive).Scan(&count); err != nil {
		return 0, fmt.Errorf("count active employees: %w", err)
	}
	return count, nil
}
