package decorate

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ErrorClassification(t *testing.T) {
	pathErr := &fs.PathError{Op: "open", Path: "/tmp/x", Err: errors.New("no such file")}

	tests := []struct {
		name           string
		err            error
		expectedStatus string
	}{
		{
			name:           "nil error is success",
			err:            nil,
			expectedStatus: StatusSuccess,
		},
		{
			name:           "context cancellation",
			err:            context.Canceled,
			expectedStatus: StatusCanceled,
		},
		{
			name:           "wrapped cancellation",
			err:            errors.Join(errors.New("query aborted"), context.Canceled),
			expectedStatus: StatusCanceled,
		},
		{
			name:           "deadline exceeded",
			err:            context.DeadlineExceeded,
			expectedStatus: StatusTimeout,
		},
		{
			name:           "path error",
			err:            pathErr,
			expectedStatus: StatusIOError,
		},
		{
			name:           "unexpected EOF",
			err:            io.ErrUnexpectedEOF,
			expectedStatus: StatusIOError,
		},
		{
			name:           "short write",
			err:            io.ErrShortWrite,
			expectedStatus: StatusIOError,
		},
		{
			name:           "closed pipe",
			err:            io.ErrClosedPipe,
			expectedStatus: StatusIOError,
		},
		{
			name:           "generic error",
			err:            errors.New("boom"),
			expectedStatus: StatusError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedStatus, errorStatus(tt.err))
		})
	}
}

func Test_IsCancellationError(t *testing.T) {
	assert.True(t, IsCancellationError(context.Canceled))
	assert.False(t, IsCancellationError(context.DeadlineExceeded))
	assert.False(t, IsCancellationError(errors.New("boom")))
	assert.False(t, IsCancellationError(nil))
}

func Test_IsTimeoutError(t *testing.T) {
	assert.True(t, IsTimeoutError(context.DeadlineExceeded))
	assert.False(t, IsTimeoutError(context.Canceled))
	assert.False(t, IsTimeoutError(nil))
}

func Test_IsIOError(t *testing.T) {
	assert.True(t, IsIOError(&fs.PathError{Op: "read", Path: "x", Err: io.EOF}))
	assert.True(t, IsIOError(io.ErrUnexpectedEOF))
	assert.False(t, IsIOError(errors.New("boom")))
	assert.False(t, IsIOError(nil))
}
