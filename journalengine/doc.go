// Package journalengine provides a PostgreSQL-backed journal for call
// records produced by the decorate.Journaled decorators.
//
// The journal appends one row per recorded invocation and supports querying
// records back by operation name, status, and occurred-at time range. It
// works with multiple database adapters (pgx, sql.DB, sqlx) behind a common
// interface.
//
// Usage examples:
//
//	// Basic usage
//	db, _ := pgxpool.New(context.Background(), dsn)
//	journal, _ := journalengine.NewJournalFromPGXPool(db)
//
//	// With a custom table and operational logging
//	journal, _ := journalengine.NewJournalFromPGXPool(
//		db,
//		journalengine.WithTableName("pricing_calls"),
//		journalengine.WithLogger(logger),
//	)
//
//	err := journal.Record(ctx, record)
//
//	filter := journalengine.BuildRecordFilter().
//		AnyOperationOf("calculate_bag_cost").
//		WithStatus(decorate.StatusError).
//		Finalize()
//	records, _ := journal.Query(ctx, filter)
package journalengine
