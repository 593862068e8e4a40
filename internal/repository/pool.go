package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/metinatakli/movie-finder/internal/domain"
)

// Pool is the subset of *pgxpool.Pool the repositories use. Every read runs
// inside its own transaction, so beginning one is all they need.
type Pool interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

// Counts and page rows must come from the same snapshot, otherwise the total
// can disagree with the rows returned next to it.
var readOnlyTxOptions = pgx.TxOptions{
	IsoLevel:   pgx.RepeatableRead,
	AccessMode: pgx.ReadOnly,
}

func inReadOnlyTx(ctx context.Context, db Pool, fn func(tx pgx.Tx) error) error {
	tx, err := db.BeginTx(ctx, readOnlyTxOptions)
	if err != nil {
		return dataAccessError("begin transaction", err)
	}
	defer tx.Rollback(ctx) // no-op if committed

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return dataAccessError("commit transaction", err)
	}

	return nil
}

func dataAccessError(op string, err error) error {
	return domain.NewDataAccessError(op, err, isUnavailable(err))
}

func isUnavailable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgerrcode.IsConnectionException(pgErr.Code) ||
			pgerrcode.IsOperatorIntervention(pgErr.Code) ||
			pgerrcode.IsInsufficientResources(pgErr.Code)
	}

	var connectErr *pgconn.ConnectError
	return errors.As(err, &connectErr)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes user input safe to embed in an ILIKE pattern, so that
// "100%" matches the literal text rather than everything starting with 100.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
