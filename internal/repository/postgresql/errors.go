package postgresql

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
	checkViolationCode      = "23514"
	exclusionViolationCode  = "23P01"
)

const dateLayout = "2006-01-02"

// pgErrorMapping maps PostgreSQL constraint failures to domain errors for one table.
// A zero value field leaves that class of error untranslated.
type pgErrorMapping struct {
	notFound   error
	unique     error
	foreignKey error
	check      error
	exclusion  error
}

func (m pgErrorMapping) translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) && m.notFound != nil {
		return m.notFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	var mapped error
	switch pgErr.Code {
	case uniqueViolationCode:
		mapped = m.unique
	case foreignKeyViolationCode:
		mapped = m.foreignKey
	case checkViolationCode:
		mapped = m.check
	case exclusionViolationCode:
		mapped = m.exclusion
	}
	if mapped == nil {
		return err
	}
	return mapped
}

// newID returns a time-ordered identifier so primary key inserts stay index friendly.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// dateArg renders the calendar date of t as seen in t's own location.
func dateArg(t time.Time) string {
	return t.Format(dateLayout)
}
