package postgresql

import (
	"context"

	"github.com/codezenith/hrms-backend-go/internal/domain/leave"
	"github.com/codezenith/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const leaveTypeColumns = `id, name, days_allowed, carry_forward, description, color, created_at, updated_at`

var leaveTypeErrors = pgErrorMapping{
	notFound: leave.ErrLeaveTypeNotFound,
	unique:   leave.ErrLeaveTypeNameExists,
}

type leaveTypeRepositoryImpl struct {
	db database.Pool
}

func NewLeaveTypeRepository(db database.Pool) leave.LeaveTypeRepository {
	return &leaveTypeRepositoryImpl{db: db}
}

func scanLeaveType(row pgx.Row) (leave.LeaveType, error) {
	var lt leave.LeaveType
	err := row.Scan(
		&lt.ID, &lt.Name, &lt.DaysAllowed, &lt.CarryForward, &lt.Description, &lt.Color,
		&lt.CreatedAt, &lt.UpdatedAt,
	)
	return lt, err
}

// Create implements leave.LeaveTypeRepository.
func (l *leaveTypeRepositoryImpl) Create(ctx context.Context, leaveType leave.LeaveType) (leave.LeaveType, error) {
	q := GetQuerier(ctx, l.db)
	query := `
		INSERT INTO leave_types (id, name, days_allowed, carry_forward, description, color)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + leaveTypeColumns

	if leaveType.ID == "" {
		leaveType.ID = newID()
	}
	created, err := scanLeaveType(q.QueryRow(ctx, query,
		leaveType.ID, leaveType.Name, leaveType.DaysAllowed, leaveType.CarryForward,
		leaveType.Description, leaveType.Color,
	))
	if err != nil {
		return leave.LeaveType{}, leaveTypeErrors.translate(err)
	}
	return created, nil
}

// GetByID implements leave.LeaveTypeRepository.
func (l *leaveTypeRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveType, error) {
	q := GetQuerier(ctx, l.db)
	lt, err := scanLeaveType(q.QueryRow(ctx, `SELECT `+leaveTypeColumns+` FROM leave_types WHERE id = $1`, id))
	if err != nil {
		return leave.LeaveType{}, leaveTypeErrors.translate(err)
	}
	return lt, nil
}

// GetByName implements leave.LeaveTypeRepository.
func (l *leaveTypeRepositoryImpl) GetByName(ctx context.Context, name string) (leave.LeaveType, error) {
	q := GetQuerier(ctx, l.db)
	lt, err := scanLeaveType(q.QueryRow(ctx, `SELECT `+leaveTypeColumns+` FROM leave_types WHERE name = $1`, name))
	if err != nil {
		return leave.LeaveType{}, leaveTypeErrors.translate(err)
	}
	return lt, nil
}

// List implements leave.LeaveTypeRepository.
func (l *leaveTypeRepositoryImpl) List(ctx context.Context) ([]leave.LeaveType, error) {
	q := GetQuerier(ctx, l.db)
	rows, err := q.Query(ctx, `SELECT `+leaveTypeColumns+` FROM leave_types ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leaveTypes := make([]leave.LeaveType, 0)
	for rows.Next() {
		lt, err := scanLeaveType(rows)
		if err != nil {
			return nil, err
		}
		leaveTypes = append(leaveTypes, lt)
	}
	return leaveTypes, rows.Err()
}

// Update implements leave.LeaveTypeRepository.
func (l *leaveTypeRepositoryImpl) Update(ctx context.Context, leaveType leave.LeaveType) (leave.LeaveType, error) {
	q := GetQuerier(ctx, l.db)
	query := `
		UPDATE leave_types
		SET name = $1, days_allowed = $2, carry_forward = $3, description = $4, color = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING ` + leaveTypeColumns

	updated, err := scanLeaveType(q.QueryRow(ctx, query,
		leaveType.Name, leaveType.DaysAllowed, leaveType.CarryForward, leaveType.Description, leaveType.Color,
		leaveType.ID,
	))
	if err != nil {
		return leave.LeaveType{}, leaveTypeErrors.translate(err)
	}
	return updated, nil
}

// Delete implements leave.LeaveTypeRepository.
func (l *leaveTypeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, l.db)
	commandTag, err := q.Exec(ctx, `DELETE FROM leave_types WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return leave.ErrLeaveTypeNotFound
	}
	return nil
}
