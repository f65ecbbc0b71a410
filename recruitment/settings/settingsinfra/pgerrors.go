package settingsinfra

import (
	"database/sql"
	"errors"

	"github.com/Abraxas-365/crewdesk/pkg/errx"
	"github.com/Abraxas-365/crewdesk/recruitment/settings"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

// writeErr maps a failed insert or update onto the settings registry
func writeErr(err error, operation string) *errx.Error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return settings.ErrDuplicate().WithDetail("constraint", pqErr.Constraint)
	}
	return settings.ErrStorage(err).WithDetail("operation", operation)
}

// affected reports whether a statement touched a row
func affected(result sql.Result, operation string) (bool, error) {
	rows, err := result.RowsAffected()
	if err != nil {
		return false, settings.ErrStorage(err).WithDetail("operation", operation)
	}
	return rows > 0, nil
}
