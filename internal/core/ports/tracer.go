package ports

import "context"

// SpanConfig holds options applied when starting a span.
type SpanConfig struct {
	// Attributes are key/value pairs attached at span start.
	Attributes map[string]string
}

// SpanOption configures a SpanConfig.
type SpanOption func(*SpanConfig)

// WithAttribute attaches a string attribute to the span.
func WithAttribute(key, value string) SpanOption {
	return func(c *SpanConfig) {
		if c.Attributes == nil {
			c.Attributes = make(map[string]string)
		}
		c.Attributes[key] = value
	}
}

// Span is a single traced operation.
type Span interface {
	// AddEvent records a point-in-time event on the span.
	AddEvent(name string)

	// SetError marks the span as failed and records the error.
	SetError(err error)

	// End completes the span.
	End()
}

// Tracer creates spans around store and daemon operations.
//
//go:generate mockgen -source=tracer.go -destination=mocks/mock_tracer.go -package=mocks
type Tracer interface {
	// Start creates a new span as a child of the span in ctx, if any.
	Start(ctx context.Context, name string, opts ...SpanOption) (context.Context, Span)

	// Shutdown flushes and stops the tracer.
	Shutdown(ctx context.Context) error
}
