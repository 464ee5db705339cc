package decorate

import (
	"context"
	"fmt"
	"math"
	"time"
)

// Metric names emitted by the observed and retried decorators.
const (
	CallDurationMetric          = "call_duration"
	CallErrorsMetric            = "call_errors"
	CallRetriesMetric           = "call_retries"
	CallRetryDelayMetric        = "call_retry_delay"
	CallMaxRetriesReachedMetric = "call_max_retries_reached"
)

// Structured log and span attribute keys.
const (
	LogAttrOperation  = "operation"
	LogAttrStatus     = "status"
	LogAttrError      = "error"
	LogAttrDurationMS = "duration_ms"

	logMsgCallStarted   = "call started"
	logMsgCallCompleted = "call completed"
	logMsgCallFailed    = "call failed"

	spanNamePrefix = "call."
)

// Observer carries the observability backends shared by the ObservedN
// decorators. All backends are optional; a zero Observer observes nothing.
type Observer struct {
	logger           Logger
	contextualLogger ContextualLogger
	metricsCollector MetricsCollector
	tracingCollector TracingCollector
}

// ObserveOption defines a functional option for configuring an Observer.
type ObserveOption func(*Observer) error

// NewObserver creates an Observer with the given options.
func NewObserver(options ...ObserveOption) (*Observer, error) {
	obs := &Observer{}

	for _, option := range options {
		if err := option(obs); err != nil {
			return nil, err
		}
	}

	return obs, nil
}

// WithLogger sets the logger used for call start/success/error messages.
func WithLogger(logger Logger) ObserveOption {
	return func(obs *Observer) error {
		obs.logger = logger
		return nil
	}
}

// WithContextualLogger sets the context-aware logger. When tracing is
// enabled its messages carry automatic trace correlation.
func WithContextualLogger(logger ContextualLogger) ObserveOption {
	return func(obs *Observer) error {
		obs.contextualLogger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector receiving call durations and
// outcome counters.
func WithMetrics(collector MetricsCollector) ObserveOption {
	return func(obs *Observer) error {
		obs.metricsCollector = collector
		return nil
	}
}

// WithTracing sets the tracing collector receiving one span per call.
func WithTracing(collector TracingCollector) ObserveOption {
	return func(obs *Observer) error {
		obs.tracingCollector = collector
		return nil
	}
}

// Observed1 instruments a named fallible operation with logging, metrics
// and tracing. The operation's semantics are untouched: value and error
// pass through unchanged. A nil Observer disables all instrumentation.
func Observed1[A1, R any](
	operation string,
	obs *Observer,
	fn func(context.Context, A1) (R, error),
) func(context.Context, A1) (R, error) {

	return func(ctx context.Context, a1 A1) (R, error) {
		finish := obs.beginCall(&ctx, operation)
		value, err := fn(ctx, a1)
		finish(err)

		return value, err
	}
}

// Observed2 is Observed1 for two-argument operations.
func Observed2[A1, A2, R any](
	operation string,
	obs *Observer,
	fn func(context.Context, A1, A2) (R, error),
) func(context.Context, A1, A2) (R, error) {

	return func(ctx context.Context, a1 A1, a2 A2) (R, error) {
		finish := obs.beginCall(&ctx, operation)
		value, err := fn(ctx, a1, a2)
		finish(err)

		return value, err
	}
}

// beginCall starts span and logging for one invocation and returns the
// completion func that records the outcome.
func (obs *Observer) beginCall(ctx *context.Context, operation string) func(error) {
	if obs == nil {
		return func(error) {}
	}

	start := time.Now()
	callCtx, span := obs.startCallSpan(*ctx, operation)
	*ctx = callCtx

	obs.logCallStart(callCtx, operation)

	return func(err error) {
		duration := time.Since(start)
		status := errorStatus(err)

		obs.recordCallMetrics(callCtx, operation, status, duration)
		obs.finishCallSpan(span, status, duration)

		if err != nil {
			obs.logCallError(callCtx, operation, err, duration)
			return
		}

		obs.logCallSuccess(callCtx, operation, duration)
	}
}

// startCallSpan starts a tracing span if a tracing collector is configured.
func (obs *Observer) startCallSpan(ctx context.Context, operation string) (context.Context, SpanContext) {
	if obs.tracingCollector == nil {
		return ctx, nil
	}

	attrs := map[string]string{LogAttrOperation: operation}

	return obs.tracingCollector.StartSpan(ctx, spanNamePrefix+operation, attrs)
}

// finishCallSpan finishes the span with status and duration attributes.
func (obs *Observer) finishCallSpan(span SpanContext, status string, duration time.Duration) {
	if obs.tracingCollector == nil || span == nil {
		return
	}

	span.SetStatus(status)

	attrs := map[string]string{
		LogAttrStatus:     status,
		LogAttrDurationMS: formatMilliseconds(duration),
	}

	obs.tracingCollector.FinishSpan(span, status, attrs)
}

// recordCallMetrics records the duration histogram for every call and an
// error counter for failed ones, preferring context-aware recording when
// the collector supports it.
func (obs *Observer) recordCallMetrics(ctx context.Context, operation, status string, duration time.Duration) {
	if obs.metricsCollector == nil {
		return
	}

	labels := map[string]string{
		LogAttrOperation: operation,
		LogAttrStatus:    status,
	}

	if contextual, ok := obs.metricsCollector.(ContextualMetricsCollector); ok {
		contextual.RecordDurationContext(ctx, CallDurationMetric, duration, labels)
	} else {
		obs.metricsCollector.RecordDuration(CallDurationMetric, duration, labels)
	}

	if status == StatusSuccess {
		return
	}

	if contextual, ok := obs.metricsCollector.(ContextualMetricsCollector); ok {
		contextual.IncrementCounterContext(ctx, CallErrorsMetric, labels)
	} else {
		obs.metricsCollector.IncrementCounter(CallErrorsMetric, labels)
	}
}

// logCallStart logs the beginning of an invocation at debug level.
func (obs *Observer) logCallStart(ctx context.Context, operation string) {
	if obs.contextualLogger != nil {
		obs.contextualLogger.DebugContext(ctx, logMsgCallStarted, LogAttrOperation, operation)
		return
	}

	if obs.logger != nil {
		obs.logger.Debug(logMsgCallStarted, LogAttrOperation, operation)
	}
}

// logCallSuccess logs a completed invocation at info level.
func (obs *Observer) logCallSuccess(ctx context.Context, operation string, duration time.Duration) {
	if obs.contextualLogger != nil {
		obs.contextualLogger.InfoContext(ctx, logMsgCallCompleted,
			LogAttrOperation, operation, LogAttrDurationMS, toMilliseconds(duration))
		return
	}

	if obs.logger != nil {
		obs.logger.Info(logMsgCallCompleted,
			LogAttrOperation, operation, LogAttrDurationMS, toMilliseconds(duration))
	}
}

// logCallError logs a failed invocation at error level.
func (obs *Observer) logCallError(ctx context.Context, operation string, err error, duration time.Duration) {
	if obs.contextualLogger != nil {
		obs.contextualLogger.ErrorContext(ctx, logMsgCallFailed,
			LogAttrOperation, operation, LogAttrError, err.Error(), LogAttrDurationMS, toMilliseconds(duration))
		return
	}

	if obs.logger != nil {
		obs.logger.Error(logMsgCallFailed,
			LogAttrOperation, operation, LogAttrError, err.Error(), LogAttrDurationMS, toMilliseconds(duration))
	}
}

// toMilliseconds converts a time.Duration to float64 milliseconds with
// 3 decimal places.
func toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}

func formatMilliseconds(d time.Duration) string {
	return fmt.Sprintf("%.3f", toMilliseconds(d))
}
