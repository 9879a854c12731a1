package tools

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/dbhatt90/ai-research-assistant/pkg/llms"
	"github.com/dbhatt90/ai-research-assistant/pkg/observability"
	"github.com/dbhatt90/ai-research-assistant/pkg/registry"
)

// ToolRegistry holds the tool set exposed to the model.
type ToolRegistry struct {
	*registry.BaseRegistry[Tool]
}

func NewToolRegistry() *ToolRegistry {
	return &ToolRegistry{
		BaseRegistry: registry.NewBaseRegistry[Tool](),
	}
}

// RegisterTool adds a tool under its own name.
func (r *ToolRegistry) RegisterTool(tool Tool) error {
	if tool == nil {
		return fmt.Errorf("tool cannot be nil")
	}
	if tool.GetName() == "" {
		return fmt.Errorf("tool name cannot be empty")
	}
	return r.Register(tool.GetName(), tool)
}

// GetTool returns a registered tool by name.
func (r *ToolRegistry) GetTool(name string) (Tool, error) {
	tool, exists := r.Get(name)
	if !exists {
		return nil, fmt.Errorf("tool %s not found", name)
	}
	return tool, nil
}

// ListTools returns the descriptions of all registered tools, sorted by name.
func (r *ToolRegistry) ListTools() []ToolInfo {
	var infos []ToolInfo
	for _, tool := range r.List() {
		infos = append(infos, tool.GetInfo())
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name < infos[j].Name
	})

	return infos
}

// Definitions returns all tools in the LLM wire format.
func (r *ToolRegistry) Definitions() []llms.ToolDefinition {
	infos := r.ListTools()
	defs := make([]llms.ToolDefinition, 0, len(infos))
	for _, info := range infos {
		defs = append(defs, info.Definition())
	}
	return defs
}

// ExecuteTool runs a tool by name. It always returns a usable ToolResult:
// unknown tools, execution errors, and panics all come back as failed
// results with readable text, never as raised errors.
func (r *ToolRegistry) ExecuteTool(ctx context.Context, toolName string, args map[string]interface{}) ToolResult {
	startTime := time.Now()

	tracer := observability.GetTracer("tools")
	ctx, span := tracer.Start(ctx, observability.SpanToolExecution,
		trace.WithAttributes(
			attribute.String("tool.name", toolName),
		),
	)
	defer span.End()

	tool, err := r.GetTool(toolName)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "tool not found")
		observability.GetGlobalMetrics().RecordToolExecution(ctx, toolName, time.Since(startTime), err)

		return buildErrorResult(toolName,
			fmt.Sprintf("Error: unknown tool '%s'.", toolName), time.Since(startTime))
	}

	result := r.executeSafely(ctx, tool, toolName, args, startTime)
	duration := time.Since(startTime)

	var recordErr error
	if !result.Success {
		recordErr = fmt.Errorf("%s", result.Error)
		span.RecordError(recordErr)
		span.SetStatus(codes.Error, result.Error)
	} else {
		span.SetStatus(codes.Ok, "success")
	}
	observability.GetGlobalMetrics().RecordToolExecution(ctx, toolName, duration, recordErr)

	span.SetAttributes(
		attribute.Bool("tool.success", result.Success),
		attribute.Int64("tool.duration_ms", duration.Milliseconds()),
	)

	return result
}

func (r *ToolRegistry) executeSafely(ctx context.Context, tool Tool, toolName string, args map[string]interface{}, startTime time.Time) (result ToolResult) {
	defer func() {
		if rec := recover(); rec != nil {
			result = buildErrorResult(toolName,
				fmt.Sprintf("Error executing %s: %v. Please try again.", toolName, rec),
				time.Since(startTime))
		}
	}()

	result, err := tool.Execute(ctx, args)
	if err != nil {
		return buildErrorResult(toolName,
			fmt.Sprintf("Error executing %s: %v. Please try again.", toolName, err),
			time.Since(startTime))
	}
	return result
}
