package core

import (
	"context"
	"database/sql"
	"fmt"
)

type (
	DBExecutor interface {
		Exec(query string, args ...interface{}) (sql.Result, error)
		ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
		Query(query string, args ...interface{}) (*sql.Rows, error)
		QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
		QueryRow(query string, args ...interface{}) *sql.Row
		QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	}

	DB interface {
		DBExecutor

		BeginTx(ctx context.Context, opts *sql.TxOptions) (DBTransactor, error)
	}

	DBTransactor interface {
		DBExecutor

		Commit() error
		Rollback() error
	}
)

// Atomic runs work inside a single transaction: commit if work returns nil,
// rollback otherwise. The transaction handle is finished - and therefore
// released back to the pool - on every exit path, including a panic in work.
//
// An acquisition failure is reported as ErrConnection and work is never
// invoked. A rollback failure is logged, never raised: the error returned by
// work must reach the caller unchanged.
func Atomic(ctx context.Context, db DB, log Logger, work func(tx DBTransactor) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Error(fmt.Sprintf("beginning transaction: %v", err), err)
		return ErrConnection
	}

	done := false
	defer func() {
		if !done { // work panicked
			rollback(tx, log)
		}
	}()

	if err = work(tx); err != nil {
		done = true
		rollback(tx, log)
		return err
	}

	done = true
	if err = tx.Commit(); err != nil {
		// a failed commit leaves nothing persisted; it cannot be reported as success
		log.Error(fmt.Sprintf("committing transaction: %v", err), err)
		rollback(tx, log)
		return ErrConnection
	}
	return nil
}

func rollback(tx DBTransactor, log Logger) {
	if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
		log.Warn(fmt.Sprintf("rolling back transaction: %v", err), err)
	}
}
