package decorate

import (
	"context"
	"errors"
	"io"
	"io/fs"
)

// Status labels used for metrics, span status and call records.
const (
	StatusSuccess  = "success"
	StatusError    = "error"
	StatusCanceled = "canceled"
	StatusTimeout  = "timeout"
	StatusIOError  = "io_error"
)

// IsCancellationError reports whether err stems from context cancellation.
func IsCancellationError(err error) bool {
	return errors.Is(err, context.Canceled)
}

// IsTimeoutError reports whether err stems from a deadline being exceeded.
func IsTimeoutError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}

// IsIOError reports whether err is an I/O-style fault. File system path
// errors and the short-read/short-write sentinels of package io are
// recognized; this category is checked before the generic error bucket.
func IsIOError(err error) bool {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return true
	}

	return errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, io.ErrShortWrite) ||
		errors.Is(err, io.ErrClosedPipe)
}

// errorStatus maps an error to the status label recorded for it.
func errorStatus(err error) string {
	switch {
	case err == nil:
		return StatusSuccess
	case IsCancellationError(err):
		return StatusCanceled
	case IsTimeoutError(err):
		return StatusTimeout
	case IsIOError(err):
		return StatusIOError
	default:
		return StatusError
	}
}
