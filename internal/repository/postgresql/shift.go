package postgresql

import (
	"context"

	"github.com/codezenith/hrms-backend-go/internal/domain/schedule"
	"github.com/codezenith/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const shiftColumns = `id, name, to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI'),
		grace_period_minutes, working_hours, description, created_at, updated_at`

var shiftErrors = pgErrorMapping{
	notFound:   schedule.ErrShiftNotFound,
	unique:     schedule.ErrShiftNameExists,
	foreignKey: schedule.ErrShiftInUse,
}

type shiftRepositoryImpl struct {
	db database.Pool
}

func NewShiftRepository(db database.Pool) schedule.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

func scanShift(row pgx.Row) (schedule.Shift, error) {
	var s schedule.Shift
	var start, end string
	if err := row.Scan(
		&s.ID, &s.Name, &start, &end,
		&s.GracePeriodMinutes, &s.WorkingHours, &s.Description,
		&s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		return schedule.Shift{}, err
	}

	var err error
	if s.StartTime, err = schedule.ParseClockTime(start); err != nil {
		return schedule.Shift{}, err
	}
	if s.EndTime, err = schedule.ParseClockTime(end); err != nil {
		return schedule.Shift{}, err
	}
	return s, nil
}

// Create implements schedule.ShiftRepository.
func (r *shiftRepositoryImpl) Create(ctx context.Context, shift schedule.Shift) (schedule.Shift, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO shifts (id, name, start_time, end_time, grace_period_minutes, working_hours, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + shiftColumns

	if shift.ID == "" {
		shift.ID = newID()
	}
	created, err := scanShift(q.QueryRow(ctx, query,
		shift.ID, shift.Name, shift.StartTime.String(), shift.EndTime.String(),
		shift.GracePeriodMinutes, shift.WorkingHours, shift.Description,
	))
	if err != nil {
		return schedule.Shift{}, shiftErrors.translate(err)
	}
	return created, nil
}

// GetByID implements schedule.ShiftRepository.
func (r *shiftRepositoryImpl) GetByID(ctx context.Context, id string) (schedule.Shift, error) {
	q := GetQuerier(ctx, r.db)
	s, err := scanShift(q.QueryRow(ctx, `SELECT `+shiftColumns+` FROM shifts WHERE id = $1`, id))
	if err != nil {
		return schedule.Shift{}, shiftErrors.translate(err)
	}
	return s, nil
}

// List implements schedule.ShiftRepository.
func (r *shiftRepositoryImpl) List(ctx context.Context) ([]schedule.Shift, error) {
	q := GetQuerier(ctx, r.db)
	rows, err := q.Query(ctx, `SELECT `+shiftColumns+` FROM shifts ORDER BY start_time ASC, name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shifts := make([]schedule.Shift, 0)
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, s)
	}
	return shifts, rows.Err()
}

// Update implements schedule.ShiftRepository.
func (r *shiftRepositoryImpl) Update(ctx context.Context, shift schedule.Shift) (schedule.Shift, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE shifts
		SET name = $1, start_time = $2, end_time = $3, grace_period_minutes = $4,
			working_hours = $5, description = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING ` + shiftColumns

	updated, err := scanShift(q.QueryRow(ctx, query,
		shift.Name, shift.StartTime.String(), shift.EndTime.String(), shift.GracePeriodMinutes,
		shift.WorkingHours, shift.Description, shift.ID,
	))
	if err != nil {
		return schedule.Shift{}, shiftErrors.translate(err)
	}
	return updated, nil
}

// Delete implements schedule.ShiftRepository.
func (r *shiftRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	tag, err := q.Exec(ctx, `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		return shiftErrors.translate(err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrShiftNotFound
	}
	return nil
}
