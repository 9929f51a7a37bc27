package postgres

import (
	"errors"

	"github.com/climatec/dispatch/pkg/core/cerr"
	"github.com/jackc/pgx/v5/pgconn"
)

// unique_violation, https://www.postgresql.org/docs/current/errcodes-appendix.html
const uniqueViolation = "23505"

// AsConflict translates a PostgreSQL unique constraint violation into
// a cerr.Conflict error carrying msg, so a race which slips past a
// read-then-write uniqueness check in the use cases layer still
// surfaces as the same conflict the check would have reported. Other
// errors are returned unchanged.
func AsConflict(err error, msg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.SQLState() == uniqueViolation {
		return cerr.Conflict(errors.New(msg))
	}
	return err
}
