package sqlxrepos

import (
	"database/sql"

	"github.com/lib/pq"
	"github.com/pkg/errors"
)

// trapDuplicateErr maps a postgres unique-constraint violation (23505) to the
// domain duplicate sentinel; anything else is wrapped as a storage error.
func trapDuplicateErr(err error, dupErr error, msg string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
		return dupErr
	}
	return errors.Wrap(err, msg)
}

// trapNoRowsErr maps psql "no rows" err to the domain not-found sentinel.
func trapNoRowsErr(err error, notFoundErr error, msg string) error {
	if err == sql.ErrNoRows {
		return notFoundErr
	}
	return errors.Wrap(err, msg)
}
