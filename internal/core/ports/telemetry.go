package ports

import (
	"context"
	"time"
)

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Tracer is the entry point for creating spans.
type Tracer interface {
	// Start creates a new span.
	Start(ctx context.Context, name string) (context.Context, Span)
}

// Span represents a unit of work.
type Span interface {
	// End completes the span.
	End()
	// RecordError records an error for the span.
	RecordError(err error)
	// SetAttribute adds a key-value pair to the span.
	SetAttribute(key string, value any)
}

// SpanSummary describes a finished span.
type SpanSummary struct {
	ID         string
	ParentID   string
	Name       string
	Duration   time.Duration
	Attributes map[string]string
	Err        error
}

// TraceRenderer receives finished spans for display.
type TraceRenderer interface {
	// OnSpanComplete is called once per ended span.
	OnSpanComplete(s SpanSummary)
}
