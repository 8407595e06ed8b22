package postgresql

import (
	"context"

	"github.com/codezenith/hrms-backend-go/internal/domain/master/setting"
	"github.com/codezenith/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const settingColumns = `key, value, description, updated_at`

var settingErrors = pgErrorMapping{notFound: setting.ErrSettingNotFound}

type settingRepositoryImpl struct {
	db database.Pool
}

func NewSettingRepository(db database.Pool) setting.SettingRepository {
	return &settingRepositoryImpl{db: db}
}

func scanSetting(row pgx.Row) (setting.Setting, error) {
	var s setting.Setting
	var value []byte
	if err := row.Scan(&s.Key, &value, &s.Description, &s.UpdatedAt); err != nil {
		return setting.Setting{}, err
	}
	s.Value = value
	return s, nil
}

// Get implements setting.SettingRepository.
func (r *settingRepositoryImpl) Get(ctx context.Context, key string) (setting.Setting, error) {
	q := GetQuerier(ctx, r.db)
	s, err := scanSetting(q.QueryRow(ctx, `SELECT `+settingColumns+` FROM settings WHERE key = $1`, key))
	if err != nil {
		return setting.Setting{}, settingErrors.translate(err)
	}
	return s, nil
}

// List implements setting.SettingRepository.
func (r *settingRepositoryImpl) List(ctx context.Context) ([]setting.Setting, error) {
	q := GetQuerier(ctx, r.db)
	rows, err := q.Query(ctx, `SELECT `+settingColumns+` FROM settings ORDER BY key ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	settings := make([]setting.Setting, 0)
	for rows.Next() {
		s, err := scanSetting(rows)
		if err != nil {
			return nil, err
		}
		settings = append(settings, s)
	}
	return settings, rows.Err()
}

// Upsert implements setting.SettingRepository.
func (r *settingRepositoryImpl) Upsert(ctx context.Context, s setting.Setting) (setting.Setting, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO settings (key, value, description)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value,
			description = COALESCE(EXCLUDED.description, settings.description),
			updated_at = NOW()
		RETURNING ` + settingColumns

	saved, err := scanSetting(q.QueryRow(ctx, query, s.Key, string(s.Value), s.Description))
	if err != nil {
		return setting.Setting{}, err
	}
	return saved, nil
}
