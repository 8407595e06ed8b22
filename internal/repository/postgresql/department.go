package postgresql

import (
	"context"

	"github.com/codezenith/hrms-backend-go/internal/domain/master/department"
	"github.com/codezenith/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

var departmentErrors = pgErrorMapping{
	notFound: department.ErrDepartmentNotFound,
	unique:   department.ErrDepartmentNameExists,
}

type departmentRepositoryImpl struct {
	db database.Pool
}

func NewDepartmentRepository(db database.Pool) department.DepartmentRepository {
	return &departmentRepositoryImpl{db: db}
}

func scanDepartment(row pgx.Row) (department.Department, error) {
	var d department.Department
	err := row.Scan(&d.ID, &d.Name, &d.Head, &d.Description, &d.EmployeeCount, &d.CreatedAt, &d.UpdatedAt)
	return d, err
}

// Create implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Create(ctx context.Context, d department.Department) (department.Department, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO departments (id, name, head, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, head, description, 0::bigint, created_at, updated_at
	`
	if d.ID == "" {
		d.ID = newID()
	}
	created, err := scanDepartment(q.QueryRow(ctx, query, d.ID, d.Name, d.Head, d.Description))
	if err != nil {
		return department.Department{}, departmentErrors.translate(err)
	}
	return created, nil
}

// GetByID implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) GetByID(ctx context.Context, id string) (department.Department, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT d.id, d.name, d.head, d.description,
			(SELECT COUNT(*) FROM employees e WHERE e.department = d.name),
			d.created_at, d.updated_at
		FROM departments d
		WHERE d.id = $1
	`
	d, err := scanDepartment(q.QueryRow(ctx, query, id))
	if err != nil {
		return department.Department{}, departmentErrors.translate(err)
	}
	return d, nil
}

// List implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) List(ctx context.Context) ([]department.Department, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT d.id, d.name, d.head, d.description, COUNT(e.id), d.created_at, d.updated_at
		FROM departments d
		LEFT JOIN employees e ON e.department = d.name
		GROUP BY d.id
		ORDER BY d.name ASC
	`
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	departments := make([]department.Department, 0)
	for rows.Next() {
		d, err := scanDepartment(rows)
		if err != nil {
			return nil, err
		}
		departments = append(departments, d)
	}
	return departments, rows.Err()
}

// Update implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Update(ctx context.Context, d department.Department) (department.Department, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE departments
		SET name = $1, head = $2, description = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING id, name, head, description,
			(SELECT COUNT(*) FROM employees e WHERE e.department = $1),
			created_at, updated_at
	`
	updated, err := scanDepartment(q.QueryRow(ctx, query, d.Name, d.Head, d.Description, d.ID))
	if err != nil {
		return department.Department{}, departmentErrors.translate(err)
	}
	return updated, nil
}

// Delete implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	tag, err := q.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return department.ErrDepartmentNotFound
	}
	return nil
}
