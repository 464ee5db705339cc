package decorate

import (
	"errors"
	"fmt"
)

// ErrResultFailure is the sentinel wrapped by Unwrap for failure Results.
var ErrResultFailure = errors.New("result represents a failure")

// Result holds either a success value or a failure with a diagnostic message.
// Exactly one of IsOK / IsBad reports true. A Result is immutable after
// construction; the type itself never fails, it represents the failure of
// another operation.
//
// Access to the value is explicit: callers check IsBad or use Unwrap /
// UnwrapOr instead of relying on an implicit conversion that would read an
// unset value on failure.
type Result[T any] struct {
	value T
	ok    bool
	msg   string
}

// Ok builds a success Result wrapping value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Fail builds a failure Result carrying the diagnostic message.
func Fail[T any](msg string) Result[T] {
	return Result[T]{msg: msg}
}

// Failf builds a failure Result with a formatted diagnostic message.
func Failf[T any](format string, args ...any) Result[T] {
	return Result[T]{msg: fmt.Sprintf(format, args...)}
}

// IsOK reports whether the Result holds a success value.
func (r Result[T]) IsOK() bool {
	return r.ok
}

// IsBad reports whether the Result represents a failure.
func (r Result[T]) IsBad() bool {
	return !r.ok
}

// Value returns the wrapped value. It is only meaningful when IsOK reports
// true; on a failure Result it returns the zero value of T.
func (r Result[T]) Value() T {
	return r.value
}

// Msg returns the diagnostic message. It is empty for success Results.
func (r Result[T]) Msg() string {
	return r.msg
}

// Unwrap returns the value and a nil error on success, or the zero value
// and an error joining ErrResultFailure with the diagnostic message.
func (r Result[T]) Unwrap() (T, error) {
	if r.ok {
		return r.value, nil
	}

	var zero T

	return zero, errors.Join(ErrResultFailure, errors.New(r.msg))
}

// UnwrapOr returns the value on success, or fallback on failure.
func (r Result[T]) UnwrapOr(fallback T) T {
	if r.ok {
		return r.value
	}

	return fallback
}

// MustValue returns the value, panicking if the Result is a failure.
func (r Result[T]) MustValue() T {
	if !r.ok {
		panic(fmt.Sprintf("decorate: MustValue on failure result: %s", r.msg))
	}

	return r.value
}
