package decorate

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"
)

const (
	defaultMaxAttempts  = 6
	defaultBaseDelay    = 10 * time.Millisecond
	defaultJitterFactor = 0.3
)

var (
	// ErrNilMetricsCollector is returned when a nil metrics collector is provided to WithRetryMetrics.
	ErrNilMetricsCollector = errors.New("metrics collector must not be nil")

	// ErrEmptyOperationName is returned when an empty operation name is provided to WithRetryMetrics.
	ErrEmptyOperationName = errors.New("operation name must not be empty")

	// ErrInvalidMaxAttempts is returned when max attempts are not positive.
	ErrInvalidMaxAttempts = errors.New("max attempts must be positive")

	// ErrNegativeBaseDelay is returned when the base delay is negative.
	ErrNegativeBaseDelay = errors.New("base delay must not be negative")

	// ErrInvalidJitterFactor is returned when the jitter factor is not between 0.0 and 1.0.
	ErrInvalidJitterFactor = errors.New("jitter factor must be between 0.0 and 1.0")

	// ErrNilRetryCheck is returned when a nil predicate is provided to WithRetryCheck.
	ErrNilRetryCheck = errors.New("retry check must not be nil")
)

// RetryableFunc represents a function that can be retried.
type RetryableFunc func(ctx context.Context) error

// retryConfig holds configuration for exponential backoff retry logic.
type retryConfig struct {
	maxAttempts      int
	baseDelay        time.Duration
	jitterFactor     float64
	retryable        func(error) bool
	metricsCollector MetricsCollector
	operation        string
}

// RetryWithExponentialBackoff executes fn with exponential backoff retry
// logic, retrying only errors the configured predicate marks as retryable,
// up to maxAttempts times.
//
// Retry schedule (default): 0 ms, 10 ms, 20 ms, 40 ms, 80 ms (with 30% jitter).
//
// The default predicate retries every error except context cancellation and
// deadline expiry: retrying timeouts during overload creates cascade
// failures, so those fail fast. Use WithRetryCheck to narrow retries to
// specific transient errors.
func RetryWithExponentialBackoff(
	ctx context.Context,
	fn RetryableFunc,
	options ...RetryOption,
) error {
	config := &retryConfig{
		maxAttempts:  defaultMaxAttempts,
		baseDelay:    defaultBaseDelay,
		jitterFactor: defaultJitterFactor,
		retryable:    defaultRetryable,
	}

	for _, option := range options {
		if err := option(config); err != nil {
			return err
		}
	}

	var lastErr error

	for attempt := 0; attempt < config.maxAttempts; attempt++ {
		if attempt > 0 {
			// Exponential backoff: baseDelay * 2^(attempt-1)
			delay := config.baseDelay * time.Duration(1<<(attempt-1))

			// Add jitter to prevent thundering herd
			jitter := rand.Float64() * float64(delay) * config.jitterFactor //nolint:gosec //math/rand is sufficient for jitter
			backoffDelay := delay + time.Duration(jitter)

			recordRetryDelayMetric(ctx, config, attempt, backoffDelay)

			select {
			case <-time.After(backoffDelay):
				// Continue with retry
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		lastErr = fn(ctx)
		if lastErr == nil {
			return nil // Success
		}

		if !config.retryable(lastErr) {
			return lastErr // Permanent failure
		}

		recordRetryAttemptMetric(ctx, attempt, config, lastErr)
	}

	recordMaxRetriesReachedMetric(ctx, config, lastErr)

	return lastErr // Max attempts reached
}

// Retried1 wraps a fallible one-argument operation with
// RetryWithExponentialBackoff, re-invoking it with the same arguments until
// it succeeds, a permanent error occurs, or attempts are exhausted.
func Retried1[A1, R any](
	fn func(context.Context, A1) (R, error),
	options ...RetryOption,
) func(context.Context, A1) (R, error) {

	return func(ctx context.Context, a1 A1) (R, error) {
		var value R

		err := RetryWithExponentialBackoff(ctx, func(ctx context.Context) error {
			var callErr error
			value, callErr = fn(ctx, a1)

			return callErr
		}, options...)

		return value, err
	}
}

// Retried2 is Retried1 for two-argument operations.
func Retried2[A1, A2, R any](
	fn func(context.Context, A1, A2) (R, error),
	options ...RetryOption,
) func(context.Context, A1, A2) (R, error) {

	return func(ctx context.Context, a1 A1, a2 A2) (R, error) {
		var value R

		err := RetryWithExponentialBackoff(ctx, func(ctx context.Context) error {
			var callErr error
			value, callErr = fn(ctx, a1, a2)

			return callErr
		}, options...)

		return value, err
	}
}

// defaultRetryable treats cancellation and timeouts as permanent, anything
// else as retryable.
func defaultRetryable(err error) bool {
	return !IsCancellationError(err) && !IsTimeoutError(err)
}

// recordRetryDelayMetric records the actual backoff delay before each retry attempt.
func recordRetryDelayMetric(ctx context.Context, config *retryConfig, attempt int, backoffDelay time.Duration) {
	if config.metricsCollector == nil {
		return
	}

	delayLabels := map[string]string{
		LogAttrOperation: config.operation,
		"attempt_number": fmt.Sprintf("%d", attempt),
	}

	if contextual, ok := config.metricsCollector.(ContextualMetricsCollector); ok {
		contextual.RecordDurationContext(ctx, CallRetryDelayMetric, backoffDelay, delayLabels)
	} else {
		config.metricsCollector.RecordDuration(CallRetryDelayMetric, backoffDelay, delayLabels)
	}
}

// recordRetryAttemptMetric tracks retry attempts by operation, attempt number, and error type.
func recordRetryAttemptMetric(ctx context.Context, attempt int, config *retryConfig, lastErr error) {
	if attempt >= config.maxAttempts-1 || config.metricsCollector == nil {
		return
	}

	retryLabels := map[string]string{
		LogAttrOperation: config.operation,
		"attempt_number": fmt.Sprintf("%d", attempt+1),
		"error_type":     errorStatus(lastErr),
	}

	if contextual, ok := config.metricsCollector.(ContextualMetricsCollector); ok {
		contextual.IncrementCounterContext(ctx, CallRetriesMetric, retryLabels)
	} else {
		config.metricsCollector.IncrementCounter(CallRetriesMetric, retryLabels)
	}
}

// recordMaxRetriesReachedMetric tracks retry exhaustion with the final error type.
func recordMaxRetriesReachedMetric(ctx context.Context, config *retryConfig, lastErr error) {
	if config.metricsCollector == nil {
		return
	}

	exhaustedLabels := map[string]string{
		LogAttrOperation:   config.operation,
		"final_error_type": errorStatus(lastErr),
	}

	if contextual, ok := config.metricsCollector.(ContextualMetricsCollector); ok {
		contextual.IncrementCounterContext(ctx, CallMaxRetriesReachedMetric, exhaustedLabels)
	} else {
		config.metricsCollector.IncrementCounter(CallMaxRetriesReachedMetric, exhaustedLabels)
	}
}

// RetryOption configures retry behavior using the functional options pattern.
type RetryOption func(*retryConfig) error

// WithMaxAttempts sets the maximum number of retry attempts.
func WithMaxAttempts(attempts int) RetryOption {
	return func(config *retryConfig) error {
		if attempts <= 0 {
			return ErrInvalidMaxAttempts
		}

		config.maxAttempts = attempts

		return nil
	}
}

// WithBaseDelay sets the base delay for exponential backoff.
// Actual delays: baseDelay, baseDelay*2, baseDelay*4, baseDelay*8, etc.
func WithBaseDelay(delay time.Duration) RetryOption {
	return func(config *retryConfig) error {
		if delay < 0 {
			return ErrNegativeBaseDelay
		}

		config.baseDelay = delay

		return nil
	}
}

// WithJitterFactor sets the jitter factor to prevent thundering herd problems.
// Jitter is added as a percentage of the calculated backoff delay.
// Valid range: 0.0 (no jitter) to 1.0 (100% jitter).
func WithJitterFactor(factor float64) RetryOption {
	return func(config *retryConfig) error {
		if factor < 0.0 || factor > 1.0 {
			return ErrInvalidJitterFactor
		}

		config.jitterFactor = factor

		return nil
	}
}

// WithRetryCheck sets the predicate deciding whether an error is retryable.
func WithRetryCheck(retryable func(error) bool) RetryOption {
	return func(config *retryConfig) error {
		if retryable == nil {
			return ErrNilRetryCheck
		}

		config.retryable = retryable

		return nil
	}
}

// WithRetryMetrics sets the metrics collector for retry instrumentation.
// Requires the operation name to properly label metrics.
func WithRetryMetrics(collector MetricsCollector, operation string) RetryOption {
	return func(config *retryConfig) error {
		if collector == nil {
			return ErrNilMetricsCollector
		}

		if operation == "" {
			return ErrEmptyOperationName
		}

		config.metricsCollector = collector
		config.operation = operation

		return nil
	}
}
