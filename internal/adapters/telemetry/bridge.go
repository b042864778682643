package telemetry

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/moditems/internal/core/ports"
)

var _ sdktrace.SpanProcessor = (*Bridge)(nil)

// Bridge implements sdktrace.SpanProcessor to hand finished spans to a ports.TraceRenderer.
type Bridge struct {
	renderer ports.TraceRenderer
}

// NewBridge returns a new Bridge.
func NewBridge(renderer ports.TraceRenderer) *Bridge {
	return &Bridge{renderer: renderer}
}

// OnStart does nothing; spans are reported once they end.
func (b *Bridge) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

// OnEnd is called when a span ends.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.renderer == nil {
		return
	}

	sc := s.SpanContext()
	if !sc.IsValid() {
		return
	}

	summary := ports.SpanSummary{
		ID:       sc.SpanID().String(),
		Name:     s.Name(),
		Duration: s.EndTime().Sub(s.StartTime()),
	}
	if parent := s.Parent(); parent.IsValid() {
		summary.ParentID = parent.SpanID().String()
	}

	if attrs := s.Attributes(); len(attrs) > 0 {
		summary.Attributes = make(map[string]string, len(attrs))
		for _, kv := range attrs {
			summary.Attributes[string(kv.Key)] = kv.Value.Emit()
		}
	}

	if s.Status().Code == codes.Error {
		desc := s.Status().Description
		if desc == "" {
			desc = "span failed"
		}
		summary.Err = errors.New(desc)
	}

	b.renderer.OnSpanComplete(summary)
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(context.Context) error {
	return nil
}
