// Package telemetry implements ports.Tracer on the OpenTelemetry SDK.
package telemetry

import (
	"context"

	"github.com/bytes00000111/nativelink/internal/core/ports"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// Tracer is a concrete implementation of ports.Tracer.
type Tracer struct {
	provider *sdktrace.TracerProvider
	tracer   trace.Tracer
}

// NewTracer creates a tracer with its own provider. Processors receive every
// span, so a log bridge or an exporter can be attached by the caller.
func NewTracer(name string, processors ...sdktrace.SpanProcessor) *Tracer {
	opts := make([]sdktrace.TracerProviderOption, 0, len(processors))
	for _, processor := range processors {
		opts = append(opts, sdktrace.WithSpanProcessor(processor))
	}
	provider := sdktrace.NewTracerProvider(opts...)
	return &Tracer{
		provider: provider,
		tracer:   provider.Tracer(name),
	}
}

// Start implements ports.Tracer.
func (t *Tracer) Start(ctx context.Context, name string, opts ...ports.SpanOption) (context.Context, ports.Span) {
	cfg := &ports.SpanConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	attrs := make([]attribute.KeyValue, 0, len(cfg.Attributes))
	for key, value := range cfg.Attributes {
		attrs = append(attrs, attribute.String(key, value))
	}

	ctx, span := t.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
	return ctx, &Span{span: span}
}

// Shutdown implements ports.Tracer.
func (t *Tracer) Shutdown(ctx context.Context) error {
	return t.provider.Shutdown(ctx)
}

// Span is a concrete implementation of ports.Span.
type Span struct {
	span trace.Span
}

// AddEvent implements ports.Span.
func (s *Span) AddEvent(name string) {
	s.span.AddEvent(name)
}

// SetError implements ports.Span.
func (s *Span) SetError(err error) {
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

// End implements ports.Span.
func (s *Span) End() {
	s.span.End()
}
