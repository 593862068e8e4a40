package repository

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
)

//go:embed seed.sql
var seedSQL string

// Seed loads the sample catalogue (three countries, four categories and two
// Korean movies) unless the catalogue already holds countries.
func Seed(ctx context.Context, db Pool, logger *slog.Logger) error {
	tx, err := db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return dataAccessError("begin seed transaction", err)
	}
	defer tx.Rollback(ctx) // no-op if committed

	var count int
	if err := tx.QueryRow(ctx, "SELECT count(*) FROM country").Scan(&count); err != nil {
		return dataAccessError("check seed", err)
	}

	if count > 0 {
		logger.Info("catalogue already seeded, skipping", "countries", count)
		return nil
	}

	if _, err := tx.Exec(ctx, seedSQL); err != nil {
		return dataAccessError("seed catalogue", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}

	logger.Info("catalogue seeded with sample data")

	return nil
}
