// Package observability provides metrics and tracing for the research
// assistant: an OpenTelemetry meter backed by the Prometheus exporter, and a
// process-wide metrics recorder with a no-op default.
package observability

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	globalMetrics Metrics = NoopMetrics{}
	metricsMu     sync.RWMutex
)

// Metrics records the domain-level measurements of the assistant.
type Metrics interface {
	// RecordResearchQuery records one completed research query.
	RecordResearchQuery(ctx context.Context, duration time.Duration, iterations, tokens int, err error)

	// RecordToolExecution records one tool invocation.
	RecordToolExecution(ctx context.Context, tool string, duration time.Duration, err error)

	// RecordLLMCall records one LLM request.
	RecordLLMCall(ctx context.Context, model string, duration time.Duration, tokens int, err error)
}

// NoopMetrics discards all measurements.
type NoopMetrics struct{}

func (NoopMetrics) RecordResearchQuery(context.Context, time.Duration, int, int, error) {}
func (NoopMetrics) RecordToolExecution(context.Context, string, time.Duration, error)   {}
func (NoopMetrics) RecordLLMCall(context.Context, string, time.Duration, int, error)    {}

// PrometheusMetrics implements Metrics over OpenTelemetry instruments.
type PrometheusMetrics struct {
	queryDuration   metric.Float64Histogram
	queryIterations metric.Int64Histogram
	queryTotal      metric.Int64Counter
	queryErrors     metric.Int64Counter
	queryTokens     metric.Int64Counter

	toolDuration metric.Float64Histogram
	toolTotal    metric.Int64Counter
	toolErrors   metric.Int64Counter

	llmDuration metric.Float64Histogram
	llmTokens   metric.Int64Counter
	llmErrors   metric.Int64Counter
}

func (m *PrometheusMetrics) RecordResearchQuery(ctx context.Context, duration time.Duration, iterations, tokens int, err error) {
	if m == nil || m.queryDuration == nil {
		return
	}

	m.queryDuration.Record(ctx, duration.Seconds())
	m.queryIterations.Record(ctx, int64(iterations))
	m.queryTotal.Add(ctx, 1)

	if tokens > 0 {
		m.queryTokens.Add(ctx, int64(tokens))
	}
	if err != nil {
		m.queryErrors.Add(ctx, 1)
	}
}

func (m *PrometheusMetrics) RecordToolExecution(ctx context.Context, tool string, duration time.Duration, err error) {
	if m == nil || m.toolDuration == nil {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("tool", tool),
	}

	m.toolDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
	m.toolTotal.Add(ctx, 1, metric.WithAttributes(attrs...))

	if err != nil {
		m.toolErrors.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
}

func (m *PrometheusMetrics) RecordLLMCall(ctx context.Context, model string, duration time.Duration, tokens int, err error) {
	if m == nil || m.llmDuration == nil {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("model", model),
	}

	m.llmDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
	m.llmTokens.Add(ctx, int64(tokens), metric.WithAttributes(attrs...))

	if err != nil {
		m.llmErrors.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
}

// SetGlobalMetrics installs the process-wide metrics recorder.
func SetGlobalMetrics(m Metrics) {
	metricsMu.Lock()
	defer metricsMu.Unlock()
	if m == nil {
		m = NoopMetrics{}
	}
	globalMetrics = m
}

// GetGlobalMetrics returns the process-wide metrics recorder. It never
// returns nil.
func GetGlobalMetrics() Metrics {
	metricsMu.RLock()
	defer metricsMu.RUnlock()
	return globalMetrics
}
