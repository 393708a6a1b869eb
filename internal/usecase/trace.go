package usecase

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var usecaseTracer = otel.Tracer("survivor-pool/internal/usecase")

// startUsecaseSpan opens "pool.<Service>.<Method>" under an existing trace.
// Untraced callers (startup, tests) get the context's no-op span back.
func startUsecaseSpan(ctx context.Context, operation string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if !trace.SpanContextFromContext(ctx).IsValid() {
		return ctx, trace.SpanFromContext(ctx)
	}
	return usecaseTracer.Start(ctx, "pool."+operation, trace.WithAttributes(attrs...))
}
