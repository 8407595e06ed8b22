package postgresql

import (
	"context"
	"testing"
	"time"

	"github.com/codezenith/hrms-backend-go/internal/domain/schedule"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShiftRepository_GetByID_ParsesClockTimes(t *testing.T) {
	mock := newMockPool(t)
	repo := NewShiftRepository(mock)
	now := time.Now()

	mock.ExpectQuery(`to_char\(start_time, 'HH24:MI'\)`).
		WithArgs("s-1").
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "name", "start_time", "end_time", "grace_period_minutes", "working_hours",
			"description", "created_at", "updated_at",
		}).AddRow("s-1", "Night", "22:00", "06:00", 15, 8.0, (*string)(nil), now, now))

	s, err := repo.GetByID(context.Background(), "s-1")
	require.NoError(t, err)
	assert.Equal(t, "22:00", s.StartTime.String())
	assert.Equal(t, "06:00", s.EndTime.String())
	assert.True(t, s.SpansMidnight())
}

func TestShiftRepository_Delete_InUse(t *testing.T) {
	mock := newMockPool(t)
	repo := NewShiftRepository(mock)

	mock.ExpectExec(`DELETE FROM shifts`).
		WithArgs("s-1").
		WillReturnError(&pgconn.PgError{Code: foreignKeyViolationCode, ConstraintName: "employees_shift_id_fkey"})

	assert.ErrorIs(t, repo.Delete(context.Background(), "s-1"), schedule.ErrShiftInUse)
}
