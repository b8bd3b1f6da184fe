// Package dbutil has helpers for running SQL transactions.
package dbutil

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// DoTx runs fn in a read-write transaction, committing if fn returns nil.
func DoTx(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) error {
	_, err := DoTx1(ctx, db, func(tx *sqlx.Tx) (struct{}, error) {
		return struct{}{}, fn(tx)
	})
	return err
}

// DoTx1 is DoTx for a function with a result.
func DoTx1[T any](ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) (T, error)) (T, error) {
	return doTx(ctx, db, true, fn)
}

// ROTx1 runs fn in a transaction that is always rolled back.
func ROTx1[T any](ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) (T, error)) (T, error) {
	return doTx(ctx, db, false, fn)
}

func doTx[T any](ctx context.Context, db *sqlx.DB, commit bool, fn func(tx *sqlx.Tx) (T, error)) (T, error) {
	var zero T
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return zero, err
	}
	defer tx.Rollback()
	ret, err := fn(tx)
	if err != nil {
		return zero, err
	}
	if commit {
		if err := tx.Commit(); err != nil {
			return zero, err
		}
	}
	return ret, nil
}

// GetTx runs a query returning a single value.
func GetTx[T any](tx *sqlx.Tx, q string, args ...any) (T, error) {
	var ret T
	err := tx.Get(&ret, q, args...)
	return ret, err
}
