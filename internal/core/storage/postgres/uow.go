package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// UnitOfWork is one database transaction shared by every write that makes up
// a single logical mutation: the version row, the head update, permission
// rows and the changelog entry commit together or not at all.
//
// Helpers that receive a UnitOfWork never commit it; only inTx does.
type UnitOfWork struct {
	tx *sql.Tx
}

func (u *UnitOfWork) exec(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return u.tx.ExecContext(ctx, query, args...)
}

func (u *UnitOfWork) queryRow(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return u.tx.QueryRowContext(ctx, query, args...)
}

// inTx runs fn in a fresh transaction and commits when fn succeeds.
// Any error from fn rolls the whole unit back.
func inTx(ctx context.Context, db *sql.DB, op string, fn func(uow *UnitOfWork) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin tx: %w", op, err)
	}
	defer tx.Rollback() //nolint:errcheck

	if err := fn(&UnitOfWork{tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit: %w", op, err)
	}
	return nil
}
