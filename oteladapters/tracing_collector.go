package oteladapters

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/decoratekit/decorate-go/decorate"
)

// TracingCollector implements decorate.TracingCollector using the
// OpenTelemetry tracing API, creating one span per decorated call and
// propagating trace context automatically.
type TracingCollector struct {
	tracer trace.Tracer
}

// NewTracingCollector creates a new OpenTelemetry tracing collector. The
// tracer should come from your TracerProvider.
func NewTracingCollector(tracer trace.Tracer) *TracingCollector {
	return &TracingCollector{tracer: tracer}
}

// StartSpan creates a new span with the given name and attributes,
// returning a context carrying the span and a SpanContext wrapper.
func (t *TracingCollector) StartSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, decorate.SpanContext) {
	spanOptions := make([]trace.SpanStartOption, 0, len(attrs))
	for key, value := range attrs {
		spanOptions = append(spanOptions, trace.WithAttributes(attribute.String(key, value)))
	}

	spanCtx, span := t.tracer.Start(ctx, name, spanOptions...)

	return spanCtx, &OTelSpanContext{span: span}
}

// FinishSpan completes a span with the given status and final attributes.
func (t *TracingCollector) FinishSpan(spanCtx decorate.SpanContext, status string, attrs map[string]string) {
	otelSpanCtx, ok := spanCtx.(*OTelSpanContext)
	if !ok {
		return
	}

	for key, value := range attrs {
		otelSpanCtx.span.SetAttributes(attribute.String(key, value))
	}

	otelSpanCtx.setSpanStatus(status)
	otelSpanCtx.span.End()
}

// Ensure TracingCollector implements decorate.TracingCollector.
var _ decorate.TracingCollector = (*TracingCollector)(nil)

// OTelSpanContext implements decorate.SpanContext by wrapping an
// OpenTelemetry span.
type OTelSpanContext struct {
	span trace.Span
}

// SetStatus sets the span status based on the provided status string.
func (s *OTelSpanContext) SetStatus(status string) {
	s.setSpanStatus(status)
}

// AddAttribute adds a string attribute to the span.
func (s *OTelSpanContext) AddAttribute(key, value string) {
	s.span.SetAttributes(attribute.String(key, value))
}

// setSpanStatus maps generic status strings to OpenTelemetry status codes.
func (s *OTelSpanContext) setSpanStatus(status string) {
	switch status {
	case "ok", decorate.StatusSuccess, "completed":
		s.span.SetStatus(codes.Ok, "")
	case decorate.StatusError, "failed", "failure", decorate.StatusIOError:
		s.span.SetStatus(codes.Error, "Operation failed")
	case decorate.StatusCanceled, "cancelled":
		s.span.SetStatus(codes.Error, "Operation cancelled")
	case decorate.StatusTimeout:
		s.span.SetStatus(codes.Error, "Operation timed out")
	default:
		// Unknown status strings are recorded as a span attribute.
		s.span.SetAttributes(attribute.String("status", status))
	}
}

// Ensure OTelSpanContext implements decorate.SpanContext.
var _ decorate.SpanContext = (*OTelSpanContext)(nil)
