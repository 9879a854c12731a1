package observability

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Span names used across the assistant.
const (
	SpanResearchQuery = "agent.research"
	SpanToolExecution = "tool.execute"
	SpanLLMRequest    = "llm.generate"
)

// GetTracer returns a tracer from the global provider. Without an installed
// provider this is a no-op tracer, so instrumented code paths cost nothing.
func GetTracer(name string) trace.Tracer {
	return otel.Tracer(name)
}
