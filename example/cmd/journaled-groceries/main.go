// The journaled-groceries command runs the basket demo with the
// infrastructure decorators on top: every cost calculation is observed
// (structured logs and metrics hooks), retried on transient errors, and
// appended to a Postgres-backed call journal. It needs a reachable journal
// database; see example/shared/config for the DSN.
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/decoratekit/decorate-go/decorate"
	"github.com/decoratekit/decorate-go/example/pricing"
	"github.com/decoratekit/decorate-go/example/shared/config"
	"github.com/decoratekit/decorate-go/journalengine"
)

const operation = "calculate_bag_cost"

func main() {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	pool, err := pgxpool.NewWithConfig(ctx, config.PostgresPGXPoolJournalConfig())
	if err != nil {
		log.Fatal("Failed to create connection pool, error: ", err)
	}
	defer pool.Close()

	journal, err := journalengine.NewJournalFromPGXPool(pool, journalengine.WithLogger(logger))
	if err != nil {
		log.Fatal("Failed to create call journal, error: ", err)
	}

	obs, err := decorate.NewObserver(decorate.WithLogger(logger))
	if err != nil {
		log.Fatal("Failed to create observer, error: ", err)
	}

	basket := pricing.NewBasket(1.09, os.Stdout)

	calculate := func(ctx context.Context, count int, weightOunces float64) (float64, error) {
		return basket.CalculateCost.Call(count, weightOunces).Unwrap()
	}

	// Validation failures are permanent; only retry everything else.
	notAValidationFailure := func(err error) bool {
		return !errors.Is(err, decorate.ErrResultFailure)
	}

	wrapped := decorate.Journaled2(operation, journal,
		decorate.Retried2(
			decorate.Observed2(operation, obs, calculate),
			decorate.WithRetryCheck(notAValidationFailure),
		),
		decorate.WithJournalLogger(logger),
	)

	if _, callErr := wrapped(ctx, 5, 3.34); callErr != nil {
		logger.Error("calculation failed", "error", callErr.Error())
	}

	_, _ = wrapped(ctx, 0, 3.34)

	filter := journalengine.BuildRecordFilter().
		AnyOperationOf(operation).
		Finalize()

	records, queryErr := journal.Query(ctx, filter)
	if queryErr != nil {
		log.Fatal("Failed to query call journal, error: ", queryErr)
	}

	logger.Info("journaled calls", "record_count", len(records))

	for _, record := range records {
		logger.Info("journal entry",
			"call_id", record.CallID,
			"status", record.Status,
			"occurred_at", record.OccurredAt,
			"details", string(record.DetailsJSON),
		)
	}
}
