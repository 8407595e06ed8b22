package postgresql

import (
	"context"
	"time"

	"github.com/codezenith/hrms-backend-go/internal/domain/schedule"
	"github.com/codezenith/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const holidayColumns = `id, name, date, type, description, created_at, updated_at`

var holidayErrors = pgErrorMapping{
	notFound: schedule.ErrHolidayNotFound,
	unique:   schedule.ErrHolidayExists,
}

type holidayRepositoryImpl struct {
	db database.Pool
}

func NewHolidayRepository(db database.Pool) schedule.HolidayRepository {
	return &holidayRepositoryImpl{db: db}
}

func scanHoliday(row pgx.Row) (schedule.Holiday, error) {
	var h schedule.Holiday
	err := row.Scan(&h.ID, &h.Name, &h.Date, &h.Type, &h.Description, &h.CreatedAt, &h.UpdatedAt)
	return h, err
}

// Create implements schedule.HolidayRepository.
func (r *holidayRepositoryImpl) Create(ctx context.Context, holiday schedule.Holiday) (schedule.Holiday, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO holidays (id, name, date, type, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + holidayColumns

	if holiday.ID == "" {
		holiday.ID = newID()
	}
	created, err := scanHoliday(q.QueryRow(ctx, query,
		holiday.ID, holiday.Name, dateArg(holiday.Date), holiday.Type, holiday.Description,
	))
	if err != nil {
		return schedule.Holiday{}, holidayErrors.translate(err)
	}
	return created, nil
}

// GetByID implements schedule.HolidayRepository.
func (r *holidayRepositoryImpl) GetByID(ctx context.Context, id string) (schedule.Holiday, error) {
	q := GetQuerier(ctx, r.db)
	h, err := scanHoliday(q.QueryRow(ctx, `SELECT `+holidayColumns+` FROM holidays WHERE id = $1`, id))
	if err != nil {
		return schedule.Holiday{}, holidayErrors.translate(err)
	}
	return h, nil
}

// List implements schedule.HolidayRepository.
func (r *holidayRepositoryImpl) List(ctx context.Context, filter schedule.HolidayFilter) ([]schedule.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + holidayColumns + ` FROM holidays`
	args := []interface{}{}
	if filter.Year != nil {
		query += ` WHERE EXTRACT(YEAR FROM date) = $1`
		args = append(args, *filter.Year)
	}
	query += ` ORDER BY date ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	holidays := make([]schedule.Holiday, 0)
	for rows.Next() {
		h, err := scanHoliday(rows)
		if err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}

// Update implements schedule.HolidayRepository.
func (r *holidayRepositoryImpl) Update(ctx context.Context, holiday schedule.Holiday) (schedule.Holiday, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE holidays
		SET name = $1, date = $2, type = $3, description = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING ` + holidayColumns

	updated, err := scanHoliday(q.QueryRow(ctx, query,
		holiday.Name, dateArg(holiday.Date), holiday.Type, holiday.Description, holiday.ID,
	))
	if err != nil {
		return schedule.Holiday{}, holidayErrors.translate(err)
	}
	return updated, nil
}

// Delete implements schedule.HolidayRepository.
func (r *holidayRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	tag, err := q.Exec(ctx, `DELETE FROM holidays WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrHolidayNotFound
	}
	return nil
}

// ExistsOn implements schedule.HolidayRepository.
func (r *holidayRepositoryImpl) ExistsOn(ctx context.Context, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)
	var exists bool
	if err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM holidays WHERE date = $1)`, dateArg(date)).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
