package oteladapters_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/log/noop"

	"github.com/decoratekit/decorate-go/oteladapters"
)

func Test_NewSlogBridgeLogger_Construction(t *testing.T) {
	logger := oteladapters.NewSlogBridgeLogger("test")
	assert.NotNil(t, logger)
}

func Test_NewSlogBridgeLoggerWithHandler_Construction(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, nil)

	logger := oteladapters.NewSlogBridgeLoggerWithHandler(handler)
	assert.NotNil(t, logger)
}

func Test_SlogBridgeLogger_AllLevels(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})

	logger := oteladapters.NewSlogBridgeLoggerWithHandler(handler)
	ctx := context.Background()

	logger.DebugContext(ctx, "call started", "operation", "calculate_bag_cost")
	logger.InfoContext(ctx, "call completed", "operation", "calculate_bag_cost")
	logger.WarnContext(ctx, "journaling decorated call failed", "operation", "calculate_bag_cost")
	logger.ErrorContext(ctx, "call failed", "operation", "calculate_bag_cost")

	output := buf.String()

	assert.Contains(t, output, "call started")
	assert.Contains(t, output, "call completed")
	assert.Contains(t, output, "journaling decorated call failed")
	assert.Contains(t, output, "call failed")
	assert.Contains(t, output, `"operation":"calculate_bag_cost"`)
}

func Test_SlogBridgeLogger_WithAttributes(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, nil)

	logger := oteladapters.NewSlogBridgeLoggerWithHandler(handler)

	logger.InfoContext(context.Background(), "call completed",
		"operation", "calculate_bag_cost",
		"duration_ms", 1.234,
		"record_count", 2,
	)

	output := buf.String()

	assert.Contains(t, output, `"operation":"calculate_bag_cost"`)
	assert.Contains(t, output, `"duration_ms":1.234`)
	assert.Contains(t, output, `"record_count":2`)
}

func Test_NewOTelLogger_Construction(t *testing.T) {
	provider := noop.NewLoggerProvider()
	logger := oteladapters.NewOTelLogger(provider.Logger("test"))

	assert.NotNil(t, logger)
}

func Test_OTelLogger_AllLevelsDoNotPanic(t *testing.T) {
	provider := noop.NewLoggerProvider()
	logger := oteladapters.NewOTelLogger(provider.Logger("test"))
	ctx := context.Background()

	assert.NotPanics(t, func() {
		logger.DebugContext(ctx, "call started", "operation", "calculate_bag_cost")
		logger.InfoContext(ctx, "call completed", "duration_ms", 1.234)
		logger.WarnContext(ctx, "journaling decorated call failed")
		logger.ErrorContext(ctx, "call failed", "error", "must buy 1 or more apples")
	})
}

func Test_OTelLogger_OddArgumentsAreTolerated(t *testing.T) {
	provider := noop.NewLoggerProvider()
	logger := oteladapters.NewOTelLogger(provider.Logger("test"))

	assert.NotPanics(t, func() {
		logger.InfoContext(context.Background(), "call completed", "dangling-key")
	})
}
