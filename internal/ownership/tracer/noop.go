package tracer

import "context"

// NoopTracer is a Tracer that does nothing. Intended for tests and for
// deployments that run without a tracing backend.
type NoopTracer struct{}

// NewNoop creates a tracer that discards all spans.
func NewNoop() *NoopTracer {
	return &NoopTracer{}
}

func (t *NoopTracer) Start(ctx context.Context, _ string, _ ...Attribute) (context.Context, Span) {
	return ctx, noopSpan{}
}

type noopSpan struct{}

func (noopSpan) End(error)                     {}
func (noopSpan) SetAttributes(...Attribute)    {}
func (noopSpan) AddEvent(string, ...Attribute) {}
