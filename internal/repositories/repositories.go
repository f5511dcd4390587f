package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/soulsync/internal/logger"
)

var (
	// ErrConflict is returned when a write violates a unique constraint.
	ErrConflict = errors.New("unique constraint violation")
	// ErrInvalidValue is returned when the database rejects a value, such as a string
	// longer than its column or text that is not valid in the database encoding.
	ErrInvalidValue = errors.New("invalid value")
)

const (
	pgUniqueViolation          = "23505"
	pgStringDataRightTruncated = "22001"
	pgCharacterNotInRepertoire = "22021"
	pgUntranslatableCharacter  = "22P05"
)

// TxGetter returns the transaction bound to ctx, or nil.
type TxGetter func(ctx context.Context) *sqlx.Tx

// executor picks the request transaction when there is one.
func executor(ctx context.Context, db *sqlx.DB, txGetter TxGetter) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}

// mapError converts driver errors into repository errors.
func mapError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgUniqueViolation:
		return fmt.Errorf("%w: %s", ErrConflict, pgErr.ConstraintName)
	case pgStringDataRightTruncated, pgCharacterNotInRepertoire, pgUntranslatableCharacter:
		return fmt.Errorf("%w: %s", ErrInvalidValue, pgErr.Message)
	}
	return err
}

// likePattern builds an ILIKE substring pattern that matches q literally.
func likePattern(q string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(q) + "%"
}

// logQuery logs a statement on a single line.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Debugw("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}
