// Package adapters provides database adapter implementations for the
// PostgreSQL call journal.
//
// It implements the adapter pattern to support multiple PostgreSQL client
// libraries: pgxpool.Pool, sql.DB, and sqlx.DB. All adapters provide
// equivalent functionality through a common DBAdapter interface, so the
// journal works with any supported connection type while the specifics of
// each library stay contained here.
package adapters
