package decorate_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decoratekit/decorate-go/decorate"
)

// fakeMetrics records metric calls for assertions.
type fakeMetrics struct {
	durations map[string][]map[string]string
	counters  map[string][]map[string]string
	values    map[string][]float64
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{
		durations: make(map[string][]map[string]string),
		counters:  make(map[string][]map[string]string),
		values:    make(map[string][]float64),
	}
}

func (f *fakeMetrics) RecordDuration(metric string, _ time.Duration, labels map[string]string) {
	f.durations[metric] = append(f.durations[metric], labels)
}

func (f *fakeMetrics) IncrementCounter(metric string, labels map[string]string) {
	f.counters[metric] = append(f.counters[metric], labels)
}

func (f *fakeMetrics) RecordValue(metric string, value float64, _ map[string]string) {
	f.values[metric] = append(f.values[metric], value)
}

// fakeSpan implements SpanContext and records its lifecycle.
type fakeSpan struct {
	statuses   []string
	attributes map[string]string
	finished   bool
}

func (f *fakeSpan) SetStatus(status string) {
	f.statuses = append(f.statuses, status)
}

func (f *fakeSpan) AddAttribute(key, value string) {
	f.attributes[key] = value
}

// fakeTracing implements TracingCollector and keeps the spans it started.
type fakeTracing struct {
	spans     []*fakeSpan
	spanNames []string
}

func (f *fakeTracing) StartSpan(ctx context.Context, name string, _ map[string]string) (context.Context, decorate.SpanContext) {
	span := &fakeSpan{attributes: make(map[string]string)}
	f.spans = append(f.spans, span)
	f.spanNames = append(f.spanNames, name)

	return ctx, span
}

func (f *fakeTracing) FinishSpan(spanCtx decorate.SpanContext, _ string, attrs map[string]string) {
	span, ok := spanCtx.(*fakeSpan)
	if !ok {
		return
	}

	for key, value := range attrs {
		span.attributes[key] = value
	}

	span.finished = true
}

// recordingLogger collects log calls by level.
type recordingLogger struct {
	debugMsgs []string
	infoMsgs  []string
	warnMsgs  []string
	errorMsgs []string
}

func (r *recordingLogger) Debug(msg string, _ ...any) { r.debugMsgs = append(r.debugMsgs, msg) }
func (r *recordingLogger) Info(msg string, _ ...any)  { r.infoMsgs = append(r.infoMsgs, msg) }
func (r *recordingLogger) Warn(msg string, _ ...any)  { r.warnMsgs = append(r.warnMsgs, msg) }
func (r *recordingLogger) Error(msg string, _ ...any) { r.errorMsgs = append(r.errorMsgs, msg) }

func Test_NewObserver_WithAllOptions(t *testing.T) {
	obs, err := decorate.NewObserver(
		decorate.WithLogger(&recordingLogger{}),
		decorate.WithMetrics(newFakeMetrics()),
		decorate.WithTracing(&fakeTracing{}),
	)

	require.NoError(t, err)
	assert.NotNil(t, obs)
}

func Test_Observed2_SuccessfulCall(t *testing.T) {
	metrics := newFakeMetrics()
	tracing := &fakeTracing{}
	logger := &recordingLogger{}

	obs, err := decorate.NewObserver(
		decorate.WithLogger(logger),
		decorate.WithMetrics(metrics),
		decorate.WithTracing(tracing),
	)
	require.NoError(t, err)

	wrapped := decorate.Observed2("calculate_bag_cost", obs,
		func(ctx context.Context, count int, weight float64) (float64, error) {
			return float64(count) * weight, nil
		},
	)

	value, err := wrapped(context.Background(), 5, 3.34)

	require.NoError(t, err)
	assert.InDelta(t, 16.7, value, 0.0001)

	// one duration sample, no error counter
	require.Len(t, metrics.durations[decorate.CallDurationMetric], 1)
	labels := metrics.durations[decorate.CallDurationMetric][0]
	assert.Equal(t, "calculate_bag_cost", labels[decorate.LogAttrOperation])
	assert.Equal(t, decorate.StatusSuccess, labels[decorate.LogAttrStatus])
	assert.Empty(t, metrics.counters[decorate.CallErrorsMetric])

	// one finished span named after the operation
	require.Len(t, tracing.spans, 1)
	assert.Equal(t, "call.calculate_bag_cost", tracing.spanNames[0])
	assert.True(t, tracing.spans[0].finished)
	assert.Contains(t, tracing.spans[0].statuses, decorate.StatusSuccess)

	// start logged at debug, completion at info
	assert.Len(t, logger.debugMsgs, 1)
	assert.Len(t, logger.infoMsgs, 1)
	assert.Empty(t, logger.errorMsgs)
}

func Test_Observed1_FailedCall(t *testing.T) {
	metrics := newFakeMetrics()
	logger := &recordingLogger{}

	obs, err := decorate.NewObserver(
		decorate.WithLogger(logger),
		decorate.WithMetrics(metrics),
	)
	require.NoError(t, err)

	callErr := errors.New("must have 1 or more apples")

	wrapped := decorate.Observed1("calculate_bag_cost", obs,
		func(ctx context.Context, count int) (float64, error) {
			return 0, callErr
		},
	)

	_, err = wrapped(context.Background(), 0)

	require.ErrorIs(t, err, callErr)

	require.Len(t, metrics.counters[decorate.CallErrorsMetric], 1)
	assert.Equal(t, decorate.StatusError, metrics.counters[decorate.CallErrorsMetric][0][decorate.LogAttrStatus])
	assert.Len(t, logger.errorMsgs, 1)
	assert.Empty(t, logger.infoMsgs)
}

func Test_Observed1_NilObserverPassesThrough(t *testing.T) {
	wrapped := decorate.Observed1("calculate_bag_cost", nil,
		func(ctx context.Context, n int) (int, error) {
			return n * 2, nil
		},
	)

	var value int
	var err error

	assert.NotPanics(t, func() {
		value, err = wrapped(context.Background(), 21)
	})

	assert.NoError(t, err)
	assert.Equal(t, 42, value)
}

func Test_Observed2_ErrorStatusClassification(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus string
	}{
		{
			name:           "cancellation",
			err:            context.Canceled,
			expectedStatus: decorate.StatusCanceled,
		},
		{
			name:           "timeout",
			err:            context.DeadlineExceeded,
			expectedStatus: decorate.StatusTimeout,
		},
		{
			name:           "generic error",
			err:            errors.New("boom"),
			expectedStatus: decorate.StatusError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metrics := newFakeMetrics()

			obs, err := decorate.NewObserver(decorate.WithMetrics(metrics))
			require.NoError(t, err)

			wrapped := decorate.Observed2("op", obs,
				func(ctx context.Context, a, b int) (int, error) {
					return 0, tt.err
				},
			)

			_, _ = wrapped(context.Background(), 1, 2)

			require.Len(t, metrics.durations[decorate.CallDurationMetric], 1)
			labels := metrics.durations[decorate.CallDurationMetric][0]
			assert.Equal(t, tt.expectedStatus, labels[decorate.LogAttrStatus])
		})
	}
}
