package httpapi

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var apiTracer = otel.Tracer("survivor-pool/internal/interfaces/httpapi")

// startHandlerSpan opens a child of the otelhttp server span. Requests the
// tracing middleware filtered out have no parent and get no span.
func startHandlerSpan(r *http.Request, operation string) (context.Context, trace.Span) {
	ctx := r.Context()
	if !trace.SpanContextFromContext(ctx).IsValid() {
		return ctx, trace.SpanFromContext(ctx)
	}
	return apiTracer.Start(ctx, "pool."+operation, trace.WithAttributes(handlerAttributes(r)...))
}

func handlerAttributes(r *http.Request) []attribute.KeyValue {
	attrs := []attribute.KeyValue{attribute.String("http.route", r.Pattern)}
	if playerID := r.PathValue("playerID"); playerID != "" {
		attrs = append(attrs, attribute.String("pool.player_id", playerID))
	}
	return attrs
}

// recordSpanError marks the active span failed for server-side errors and
// leaves client errors as plain events.
func recordSpanError(ctx context.Context, status int, err error) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}
	span.RecordError(err)
	if status >= http.StatusInternalServerError {
		span.SetStatus(codes.Error, err.Error())
	}
}
