package observability

import (
	"fmt"

	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// InitMetrics builds the OpenTelemetry meter, registers the instruments on
// the default Prometheus registry, and installs the resulting recorder as
// the global one. The /metrics endpoint serves the default registry.
func InitMetrics() (*PrometheusMetrics, error) {
	promExporter, err := prometheus.New()
	if err != nil {
		return nil, fmt.Errorf("failed to create prometheus exporter: %w", err)
	}

	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(promExporter),
	)

	meter := meterProvider.Meter("research-assistant")

	m := &PrometheusMetrics{}

	if m.queryDuration, err = meter.Float64Histogram(
		"research_query_duration_seconds",
		metric.WithDescription("Research query duration in seconds"),
	); err != nil {
		return nil, fmt.Errorf("failed to create query duration histogram: %w", err)
	}

	if m.queryIterations, err = meter.Int64Histogram(
		"research_query_iterations",
		metric.WithDescription("Reasoning iterations per research query"),
	); err != nil {
		return nil, fmt.Errorf("failed to create query iterations histogram: %w", err)
	}

	if m.queryTotal, err = meter.Int64Counter(
		"research_queries_total",
		metric.WithDescription("Total research queries"),
	); err != nil {
		return nil, fmt.Errorf("failed to create query counter: %w", err)
	}

	if m.queryErrors, err = meter.Int64Counter(
		"research_query_errors_total",
		metric.WithDescription("Total failed research queries"),
	); err != nil {
		return nil, fmt.Errorf("failed to create query errors counter: %w", err)
	}

	if m.queryTokens, err = meter.Int64Counter(
		"research_query_tokens_total",
		metric.WithDescription("Total tokens used by research queries"),
	); err != nil {
		return nil, fmt.Errorf("failed to create query tokens counter: %w", err)
	}

	if m.toolDuration, err = meter.Float64Histogram(
		"research_tool_execution_duration_seconds",
		metric.WithDescription("Tool execution duration in seconds"),
	); err != nil {
		return nil, fmt.Errorf("failed to create tool duration histogram: %w", err)
	}

	if m.toolTotal, err = meter.Int64Counter(
		"research_tool_calls_total",
		metric.WithDescription("Total tool calls"),
	); err != nil {
		return nil, fmt.Errorf("failed to create tool calls counter: %w", err)
	}

	if m.toolErrors, err = meter.Int64Counter(
		"research_tool_errors_total",
		metric.WithDescription("Total tool errors"),
	); err != nil {
		return nil, fmt.Errorf("failed to create tool errors counter: %w", err)
	}

	if m.llmDuration, err = meter.Float64Histogram(
		"research_llm_request_duration_seconds",
		metric.WithDescription("LLM request duration in seconds"),
	); err != nil {
		return nil, fmt.Errorf("failed to create llm duration histogram: %w", err)
	}

	if m.llmTokens, err = meter.Int64Counter(
		"research_llm_tokens_total",
		metric.WithDescription("Total LLM tokens used"),
	); err != nil {
		return nil, fmt.Errorf("failed to create llm tokens counter: %w", err)
	}

	if m.llmErrors, err = meter.Int64Counter(
		"research_llm_errors_total",
		metric.WithDescription("Total LLM errors"),
	); err != nil {
		return nil, fmt.Errorf("failed to create llm errors counter: %w", err)
	}

	SetGlobalMetrics(m)
	return m, nil
}
