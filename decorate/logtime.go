package decorate

import (
	"fmt"
	"io"
	"os"
	"time"
)

// logTimeConfig holds the injectable pieces of the log-time decorator.
type logTimeConfig struct {
	out   io.Writer
	clock func() time.Time
}

// LogTimeOption configures the log-time decorators.
type LogTimeOption func(*logTimeConfig)

// WithLogTimeWriter sets the writer the timestamp line is written to.
// Defaults to os.Stdout.
func WithLogTimeWriter(out io.Writer) LogTimeOption {
	return func(c *logTimeConfig) {
		c.out = out
	}
}

// WithLogTimeClock sets the clock used to capture the timestamp.
// Defaults to time.Now.
func WithLogTimeClock(clock func() time.Time) LogTimeOption {
	return func(c *logTimeConfig) {
		c.clock = clock
	}
}

func newLogTimeConfig(options []LogTimeOption) logTimeConfig {
	config := logTimeConfig{
		out:   os.Stdout,
		clock: time.Now,
	}

	for _, option := range options {
		option(&config)
	}

	return config
}

// LogTime1 wraps any one-argument callable so that each invocation emits
// exactly one wall-clock timestamp line after delegating, returning the
// inner value unchanged. The timestamp is captured before the delegated
// call, so it marks when the call started. The side effect is independent
// of the inner outcome.
func LogTime1[A1, R any](fn func(A1) R, options ...LogTimeOption) func(A1) R {
	config := newLogTimeConfig(options)

	return func(a1 A1) R {
		now := config.clock()
		value := fn(a1)
		config.emit(now)

		return value
	}
}

// LogTime2 is LogTime1 for two-argument callables.
func LogTime2[A1, A2, R any](fn func(A1, A2) R, options ...LogTimeOption) func(A1, A2) R {
	config := newLogTimeConfig(options)

	return func(a1 A1, a2 A2) R {
		now := config.clock()
		value := fn(a1, a2)
		config.emit(now)

		return value
	}
}

// LogTime3 is LogTime1 for three-argument callables.
func LogTime3[A1, A2, A3, R any](fn func(A1, A2, A3) R, options ...LogTimeOption) func(A1, A2, A3) R {
	config := newLogTimeConfig(options)

	return func(a1 A1, a2 A2, a3 A3) R {
		now := config.clock()
		value := fn(a1, a2, a3)
		config.emit(now)

		return value
	}
}

func (c logTimeConfig) emit(t time.Time) {
	_, _ = fmt.Fprintf(c.out, "> Logged at %s\n", t.Format(time.ANSIC))
}
