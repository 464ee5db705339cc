package decorate_test

import (
	"context"
	"errors"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decoratekit/decorate-go/decorate"
)

// fakeRecorder captures records in memory and can be told to fail.
type fakeRecorder struct {
	records []decorate.CallRecord
	failErr error
}

func (f *fakeRecorder) Record(_ context.Context, record decorate.CallRecord) error {
	if f.failErr != nil {
		return f.failErr
	}

	f.records = append(f.records, record)

	return nil
}

// capturingLogger collects warn messages for assertions.
type capturingLogger struct {
	warnMsgs []string
}

func (c *capturingLogger) Debug(string, ...any) {}
func (c *capturingLogger) Info(string, ...any)  {}
func (c *capturingLogger) Error(string, ...any) {}

func (c *capturingLogger) Warn(msg string, _ ...any) {
	c.warnMsgs = append(c.warnMsgs, msg)
}

type journaledDetails struct {
	Args  []any  `json:"args"`
	Error string `json:"error,omitempty"`
}

func Test_Journaled2_RecordsSuccessfulCall(t *testing.T) {
	recorder := &fakeRecorder{}
	occurredAt := time.Date(2024, time.May, 17, 9, 30, 0, 0, time.UTC)

	wrapped := decorate.Journaled2("CalculateBagCost", recorder,
		func(ctx context.Context, count int, weight float64) (float64, error) {
			return float64(count) * weight, nil
		},
		decorate.WithJournalClock(func() time.Time { return occurredAt }),
	)

	value, err := wrapped(context.Background(), 5, 3.34)

	require.NoError(t, err)
	assert.InDelta(t, 16.7, value, 0.0001)
	require.Len(t, recorder.records, 1)

	record := recorder.records[0]
	assert.NotEmpty(t, record.CallID)
	assert.Equal(t, "CalculateBagCost", record.Operation)
	assert.Equal(t, occurredAt, record.OccurredAt)
	assert.Equal(t, decorate.StatusSuccess, record.Status)

	var details journaledDetails
	require.NoError(t, jsoniter.ConfigFastest.Unmarshal(record.DetailsJSON, &details))
	assert.Len(t, details.Args, 2)
	assert.Empty(t, details.Error)
}

func Test_Journaled1_RecordsFailedCallWithErrorText(t *testing.T) {
	recorder := &fakeRecorder{}

	wrapped := decorate.Journaled1("CalculateBagCost", recorder,
		func(ctx context.Context, count int) (float64, error) {
			return 0, errors.New("must have 1 or more apples")
		},
	)

	_, err := wrapped(context.Background(), 0)

	require.Error(t, err)
	require.Len(t, recorder.records, 1)

	record := recorder.records[0]
	assert.Equal(t, decorate.StatusError, record.Status)

	var details journaledDetails
	require.NoError(t, jsoniter.ConfigFastest.Unmarshal(record.DetailsJSON, &details))
	assert.Equal(t, "must have 1 or more apples", details.Error)
}

func Test_Journaled1_RecordingFailureIsLoggedNotPropagated(t *testing.T) {
	recorder := &fakeRecorder{failErr: errors.New("database unavailable")}
	logger := &capturingLogger{}

	wrapped := decorate.Journaled1("CalculateBagCost", recorder,
		func(ctx context.Context, count int) (float64, error) {
			return 42, nil
		},
		decorate.WithJournalLogger(logger),
	)

	value, err := wrapped(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, 42.0, value)
	assert.Len(t, logger.warnMsgs, 1)
}

func Test_Journaled2_NilRecorderDisablesJournaling(t *testing.T) {
	wrapped := decorate.Journaled2("CalculateBagCost", nil,
		func(ctx context.Context, a, b int) (int, error) {
			return a + b, nil
		},
	)

	var value int
	var err error

	assert.NotPanics(t, func() {
		value, err = wrapped(context.Background(), 1, 2)
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, value)
}
