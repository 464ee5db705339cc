package decorate

import (
	"context"
	"time"
)

// Recorder persists call records produced by the journal decorators.
// Package journalengine provides a Postgres-backed implementation.
type Recorder interface {
	Record(ctx context.Context, record CallRecord) error
}

const logMsgJournalingFailed = "journaling decorated call failed"

// journalConfig holds the injectable pieces of the journal decorators.
type journalConfig struct {
	logger Logger
	clock  func() time.Time
}

// JournalOption configures the journal decorators.
type JournalOption func(*journalConfig)

// WithJournalLogger sets the logger that receives journaling failures.
func WithJournalLogger(logger Logger) JournalOption {
	return func(c *journalConfig) {
		c.logger = logger
	}
}

// WithJournalClock sets the clock used for the occurred-at timestamp.
// Defaults to time.Now.
func WithJournalClock(clock func() time.Time) JournalOption {
	return func(c *journalConfig) {
		c.clock = clock
	}
}

// callDetails is the JSON payload persisted for each journaled invocation.
type callDetails struct {
	Args  []any  `json:"args"`
	Error string `json:"error,omitempty"`
}

// Journaled1 wraps a fallible one-argument operation so that every
// invocation is appended to the recorder as a CallRecord: operation name,
// occurred-at timestamp, outcome status, and a JSON details payload with
// the arguments and, on failure, the error text.
//
// Journaling is an observable side effect, not part of the operation's
// contract: a failure to record is logged and never propagated.
func Journaled1[A1, R any](
	operation string,
	recorder Recorder,
	fn func(context.Context, A1) (R, error),
	options ...JournalOption,
) func(context.Context, A1) (R, error) {

	config := newJournalConfig(options)

	return func(ctx context.Context, a1 A1) (R, error) {
		occurredAt := config.clock()
		value, err := fn(ctx, a1)

		config.record(ctx, recorder, operation, occurredAt, err, a1)

		return value, err
	}
}

// Journaled2 is Journaled1 for two-argument operations.
func Journaled2[A1, A2, R any](
	operation string,
	recorder Recorder,
	fn func(context.Context, A1, A2) (R, error),
	options ...JournalOption,
) func(context.Context, A1, A2) (R, error) {

	config := newJournalConfig(options)

	return func(ctx context.Context, a1 A1, a2 A2) (R, error) {
		occurredAt := config.clock()
		value, err := fn(ctx, a1, a2)

		config.record(ctx, recorder, operation, occurredAt, err, a1, a2)

		return value, err
	}
}

func newJournalConfig(options []JournalOption) journalConfig {
	config := journalConfig{
		clock: time.Now,
	}

	for _, option := range options {
		option(&config)
	}

	return config
}

func (c journalConfig) record(
	ctx context.Context,
	recorder Recorder,
	operation string,
	occurredAt time.Time,
	callErr error,
	args ...any,
) {
	if recorder == nil {
		return
	}

	details := callDetails{Args: args}
	status := StatusSuccess

	if callErr != nil {
		details.Error = callErr.Error()
		status = errorStatus(callErr)
	}

	record, buildErr := BuildCallRecordWithDetails(operation, occurredAt, status, details)
	if buildErr != nil {
		c.logFailure(operation, buildErr)
		return
	}

	if recordErr := recorder.Record(ctx, record); recordErr != nil {
		c.logFailure(operation, recordErr)
	}
}

func (c journalConfig) logFailure(operation string, err error) {
	if c.logger != nil {
		c.logger.Warn(logMsgJournalingFailed, LogAttrOperation, operation, LogAttrError, err.Error())
	}
}
