package journalengine

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // driver import
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"github.com/decoratekit/decorate-go/decorate"
	"github.com/decoratekit/decorate-go/journalengine/internal/adapters"
)

var (
	// ErrNilDatabaseConnection is returned when a Journal is built from a nil connection.
	ErrNilDatabaseConnection = errors.New("nil database connection supplied")

	// ErrEmptyTableNameSupplied is returned when WithTableName receives an empty name.
	ErrEmptyTableNameSupplied = errors.New("empty tableName supplied")

	// ErrBuildingQueryFailed is returned when the SQL builder fails.
	ErrBuildingQueryFailed = errors.New("building query failed")

	// ErrRecordingCallFailed is returned when the insert statement fails.
	ErrRecordingCallFailed = errors.New("recording call failed")

	// ErrNoRowsWereAffected is returned when the insert affected no rows.
	ErrNoRowsWereAffected = errors.New("no rows were affected")

	// ErrQueryingCallsFailed is returned when the select statement fails.
	ErrQueryingCallsFailed = errors.New("querying call records failed")

	// ErrScanningDBRowFailed is returned when a result row cannot be scanned.
	ErrScanningDBRowFailed = errors.New("scanning database row failed")
)

const (
	defaultTableName = "call_records"

	logMsgBuildInsertQueryFailed = "failed to build insert query"
	logMsgBuildSelectQueryFailed = "failed to build select query"
	logMsgDBExecFailed           = "database execution failed during call recording"
	logMsgDBQueryFailed          = "database query execution failed"
	logMsgRowsAffectedFailed     = "failed to get rows affected count"
	logMsgScanRowFailed          = "failed to scan database row"
	logMsgCloseRowsFailed        = "failed to close database rows"
	logMsgCallRecorded           = "call recorded"
	logMsgQueryCompleted         = "query completed"
	logMsgSQLExecuted            = "executed sql for: "
	logMsgOperation              = "journal operation: "

	logAttrError       = "error"
	logAttrQuery       = "query"
	logAttrOperation   = "operation"
	logAttrRecordCount = "record_count"
	logAttrDurationMS  = "duration_ms"
	logActionRecord    = "record"
	logActionQuery     = "query"

	colCallID     = "call_id"
	colOperation  = "operation"
	colOccurredAt = "occurred_at"
	colStatus     = "status"
	colDetails    = "details"

	dialectPostgres = "postgres"
)

type sqlQueryString = string

// Journal persists and retrieves call records in a PostgreSQL table.
// It leverages a database adapter and supports customizable logging and
// table configuration.
type Journal struct {
	db        adapters.DBAdapter
	tableName string
	logger    decorate.Logger
}

// Option defines a functional option for configuring a Journal.
type Option func(*Journal) error

// WithTableName sets the table name for the Journal.
func WithTableName(tableName string) Option {
	return func(j *Journal) error {
		if tableName == "" {
			return ErrEmptyTableNameSupplied
		}

		j.tableName = tableName

		return nil
	}
}

// WithLogger sets the logger for the Journal.
//
// Debug level: SQL statements with execution timing (development use)
// Info level: record counts and durations (production-safe)
// Warn level: non-critical issues like cleanup failures
// Error level: failures that cause operation failures.
func WithLogger(logger decorate.Logger) Option {
	return func(j *Journal) error {
		j.logger = logger
		return nil
	}
}

// NewJournalFromPGXPool creates a new Journal using a pgx pool with optional configuration.
func NewJournalFromPGXPool(db *pgxpool.Pool, options ...Option) (Journal, error) {
	if db == nil {
		return Journal{}, ErrNilDatabaseConnection
	}

	return newJournal(adapters.NewPGXAdapter(db), options...)
}

// NewJournalFromSQLDB creates a new Journal using a sql.DB with optional configuration.
func NewJournalFromSQLDB(db *sql.DB, options ...Option) (Journal, error) {
	if db == nil {
		return Journal{}, ErrNilDatabaseConnection
	}

	return newJournal(adapters.NewSQLAdapter(db), options...)
}

// NewJournalFromSQLX creates a new Journal using a sqlx.DB with optional configuration.
func NewJournalFromSQLX(db *sqlx.DB, options ...Option) (Journal, error) {
	if db == nil {
		return Journal{}, ErrNilDatabaseConnection
	}

	return newJournal(adapters.NewSQLXAdapter(db), options...)
}

func newJournal(db adapters.DBAdapter, options ...Option) (Journal, error) {
	j := Journal{
		db:        db,
		tableName: defaultTableName,
	}

	for _, option := range options {
		if err := option(&j); err != nil {
			return Journal{}, err
		}
	}

	return j, nil
}

// Record appends one call record to the journal.
func (j Journal) Record(ctx context.Context, record decorate.CallRecord) error {
	sqlQuery, buildErr := j.buildInsertQuery(record)
	if buildErr != nil {
		j.logError(logMsgBuildInsertQueryFailed, buildErr, logAttrOperation, record.Operation)
		return buildErr
	}

	start := time.Now()
	result, execErr := j.db.Exec(ctx, sqlQuery)
	duration := time.Since(start)
	j.logQueryWithDuration(sqlQuery, logActionRecord, duration)

	if execErr != nil {
		j.logError(logMsgDBExecFailed, execErr, logAttrQuery, sqlQuery)
		return errors.Join(ErrRecordingCallFailed, execErr)
	}

	rowsAffected, rowsAffectedErr := result.RowsAffected()
	if rowsAffectedErr != nil {
		j.logError(logMsgRowsAffectedFailed, rowsAffectedErr)
		return errors.Join(ErrRecordingCallFailed, rowsAffectedErr)
	}

	if rowsAffected == 0 {
		return errors.Join(ErrRecordingCallFailed, ErrNoRowsWereAffected)
	}

	j.logOperation(
		logMsgCallRecorded,
		logAttrOperation, record.Operation,
		logAttrDurationMS, j.durationToMilliseconds(duration),
	)

	return nil
}

// Query retrieves call records matching the filter, ordered by occurred-at
// ascending.
func (j Journal) Query(ctx context.Context, filter Filter) (decorate.CallRecords, error) {
	sqlQuery, buildErr := j.buildSelectQuery(filter)
	if buildErr != nil {
		j.logError(logMsgBuildSelectQueryFailed, buildErr)
		return nil, buildErr
	}

	start := time.Now()
	rows, queryErr := j.db.Query(ctx, sqlQuery)
	duration := time.Since(start)
	j.logQueryWithDuration(sqlQuery, logActionQuery, duration)

	if queryErr != nil {
		j.logError(logMsgDBQueryFailed, queryErr, logAttrQuery, sqlQuery)
		return nil, errors.Join(ErrQueryingCallsFailed, queryErr)
	}
	defer j.closeRows(rows)

	records, scanErr := j.scanRecords(rows)
	if scanErr != nil {
		return nil, scanErr
	}

	j.logOperation(
		logMsgQueryCompleted,
		logAttrRecordCount, len(records),
		logAttrDurationMS, j.durationToMilliseconds(duration),
	)

	return records, nil
}

func (j Journal) buildInsertQuery(record decorate.CallRecord) (sqlQueryString, error) {
	insertStmt := goqu.Dialect(dialectPostgres).
		Insert(j.tableName).
		Cols(colCallID, colOperation, colOccurredAt, colStatus, colDetails).
		Vals(goqu.Vals{
			record.CallID,
			record.Operation,
			record.OccurredAt,
			record.Status,
			record.DetailsJSON,
		})

	sqlQuery, _, toSQLErr := insertStmt.ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

func (j Journal) buildSelectQuery(filter Filter) (sqlQueryString, error) {
	selectStmt := goqu.Dialect(dialectPostgres).
		From(j.tableName).
		Select(colCallID, colOperation, colOccurredAt, colStatus, colDetails).
		Order(goqu.I(colOccurredAt).Asc())

	selectStmt = addWhereClause(filter, selectStmt)

	sqlQuery, _, toSQLErr := selectStmt.ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

func addWhereClause(filter Filter, selectStmt *goqu.SelectDataset) *goqu.SelectDataset {
	expressions := make([]goqu.Expression, 0)

	if operations := filter.Operations(); len(operations) > 0 {
		operationExpressions := make([]goqu.Expression, 0, len(operations))

		for _, operation := range operations {
			operationExpressions = append(operationExpressions, goqu.Ex{colOperation: operation})
		}

		// operations are always filtered with OR
		expressions = append(expressions, goqu.Or(operationExpressions...))
	}

	if filter.Status() != "" {
		expressions = append(expressions, goqu.Ex{colStatus: filter.Status()})
	}

	if !filter.OccurredFrom().IsZero() {
		expressions = append(expressions, goqu.C(colOccurredAt).Gte(filter.OccurredFrom()))
	}

	if !filter.OccurredUntil().IsZero() {
		expressions = append(expressions, goqu.C(colOccurredAt).Lte(filter.OccurredUntil()))
	}

	if len(expressions) == 0 {
		return selectStmt
	}

	return selectStmt.Where(goqu.And(expressions...))
}

type queryResultRow struct {
	callID     string
	operation  string
	occurredAt time.Time
	status     string
	details    []byte
}

func (j Journal) scanRecords(rows adapters.DBRows) (decorate.CallRecords, error) {
	result := queryResultRow{}
	records := make(decorate.CallRecords, 0)

	for rows.Next() {
		scanErr := rows.Scan(&result.callID, &result.operation, &result.occurredAt, &result.status, &result.details)
		if scanErr != nil {
			j.logError(logMsgScanRowFailed, scanErr)
			return nil, errors.Join(ErrScanningDBRowFailed, scanErr)
		}

		records = append(records, decorate.CallRecord{
			CallID:      result.callID,
			Operation:   result.operation,
			OccurredAt:  result.occurredAt,
			Status:      result.status,
			DetailsJSON: result.details,
		})
	}

	return records, nil
}

// closeRows safely closes database rows and logs any errors.
func (j Journal) closeRows(rows adapters.DBRows) {
	if closeErr := rows.Close(); closeErr != nil {
		if j.logger != nil {
			j.logger.Warn(logMsgCloseRowsFailed, logAttrError, closeErr.Error())
		}
	}
}

// logQueryWithDuration logs SQL statements with execution time at debug
// level if the logger is configured.
func (j Journal) logQueryWithDuration(sqlQuery string, action string, duration time.Duration) {
	if j.logger != nil {
		j.logger.Debug(logMsgSQLExecuted+action, logAttrDurationMS, j.durationToMilliseconds(duration), logAttrQuery, sqlQuery)
	}
}

// logOperation logs operational information at info level if the logger is configured.
func (j Journal) logOperation(action string, args ...any) {
	if j.logger != nil {
		j.logger.Info(logMsgOperation+action, args...)
	}
}

// logError logs error information at the error level if the logger is configured.
func (j Journal) logError(message string, err error, args ...any) {
	if j.logger != nil {
		allArgs := []any{logAttrError, err.Error()}
		allArgs = append(allArgs, args...)
		j.logger.Error(message, allArgs...)
	}
}

// durationToMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func (j Journal) durationToMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}
