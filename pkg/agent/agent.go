// Package agent implements the research loop driver: it alternates model
// reasoning steps with tool execution until the model produces a final
// answer or the iteration ceiling is hit.
package agent

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/dbhatt90/ai-research-assistant/pkg/config"
	"github.com/dbhatt90/ai-research-assistant/pkg/llms"
	"github.com/dbhatt90/ai-research-assistant/pkg/observability"
	"github.com/dbhatt90/ai-research-assistant/pkg/reasoning"
	"github.com/dbhatt90/ai-research-assistant/pkg/tools"
)

// Result is the outcome of one research query. Failures are encoded here
// rather than returned as errors: Response carries readable text either way,
// and Iterations always reports the true number of reasoning steps taken.
type Result struct {
	Response   string `json:"response"`
	Iterations int    `json:"iterations"`
	Success    bool   `json:"success"`
	TokensUsed int    `json:"tokens_used,omitempty"`
}

// Agent drives the research loop over one LLM provider and a tool registry.
type Agent struct {
	config *config.AgentConfig
	llm    llms.LLMProvider
	tools  *tools.ToolRegistry
}

func New(cfg *config.AgentConfig, llm llms.LLMProvider, registry *tools.ToolRegistry) (*Agent, error) {
	if cfg == nil {
		return nil, fmt.Errorf("agent config cannot be nil")
	}
	if llm == nil {
		return nil, fmt.Errorf("LLM provider cannot be nil")
	}
	if registry == nil {
		return nil, fmt.Errorf("tool registry cannot be nil")
	}

	return &Agent{
		config: cfg,
		llm:    llm,
		tools:  registry,
	}, nil
}

// Research runs a query through the reasoning loop and always returns a
// usable Result. Provider errors and panics surface as failed results with
// the iteration count reached so far.
func (a *Agent) Research(ctx context.Context, query string) (result Result) {
	startTime := time.Now()

	tracer := observability.GetTracer("agent")
	ctx, span := tracer.Start(ctx, observability.SpanResearchQuery,
		trace.WithAttributes(
			attribute.String("llm.model", a.llm.GetModelName()),
		),
	)
	defer span.End()

	state := reasoning.NewState(query)

	defer func() {
		if rec := recover(); rec != nil {
			result = a.failure(state, fmt.Errorf("%v", rec))
		}

		span.SetAttributes(
			attribute.Bool("research.success", result.Success),
			attribute.Int("research.iterations", result.Iterations),
		)
		var recordErr error
		if !result.Success {
			recordErr = fmt.Errorf("research query failed")
			span.SetStatus(codes.Error, "research query failed")
		} else {
			span.SetStatus(codes.Ok, "success")
		}
		observability.GetGlobalMetrics().RecordResearchQuery(ctx, time.Since(startTime),
			result.Iterations, result.TokensUsed, recordErr)
	}()

	slog.Info("Processing research query", "query", query)

	definitions := a.tools.Definitions()

	for {
		iteration := state.NextIteration()

		text, toolCalls, tokens, err := a.llm.Generate(ctx, state.Messages(), definitions)
		if err != nil {
			slog.Error("LLM request failed", "iteration", iteration, "error", err)
			return a.failure(state, err)
		}
		state.AddTokens(tokens)
		state.AddMessage(llms.Message{
			Role:      llms.RoleAssistant,
			Content:   text,
			ToolCalls: toolCalls,
		})

		if reasoning.Decide(state.LastMessage(), iteration, a.config.MaxIterations) == reasoning.DecisionTerminate {
			break
		}

		a.executeToolCalls(ctx, state, toolCalls)
	}

	slog.Info("Research query complete",
		"iterations", state.Iteration(), "tokens", state.TotalTokens())

	return Result{
		Response:   state.LastMessage().Content,
		Iterations: state.Iteration(),
		Success:    true,
		TokensUsed: state.TotalTokens(),
	}
}

// executeToolCalls runs the requested tools sequentially, in request order,
// and appends each result to the transcript. Tool failures are already text
// results, so the loop never aborts here.
func (a *Agent) executeToolCalls(ctx context.Context, state *reasoning.State, toolCalls []llms.ToolCall) {
	for _, tc := range toolCalls {
		result := a.tools.ExecuteTool(ctx, tc.Name, tc.Arguments)

		state.AddMessage(llms.Message{
			Role:       llms.RoleTool,
			Content:    result.Content,
			ToolCallID: tc.ID,
			Name:       tc.Name,
		})
	}
}

func (a *Agent) failure(state *reasoning.State, err error) Result {
	return Result{
		Response:   fmt.Sprintf("I encountered an error: %v. Please try rephrasing your question.", err),
		Iterations: state.Iteration(),
		Success:    false,
		TokensUsed: state.TotalTokens(),
	}
}
