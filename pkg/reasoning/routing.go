package reasoning

import (
	"log/slog"

	"github.com/dbhatt90/ai-research-assistant/pkg/llms"
)

// Decision is the routing outcome after a model response.
type Decision int

const (
	// DecisionTerminate ends the loop and uses the last response as the
	// final answer.
	DecisionTerminate Decision = iota

	// DecisionContinueWithTools executes the requested tool calls and loops
	// back to the model.
	DecisionContinueWithTools
)

func (d Decision) String() string {
	switch d {
	case DecisionContinueWithTools:
		return "continue_with_tools"
	default:
		return "terminate"
	}
}

// Decide picks the next step after a model response. The iteration ceiling
// wins over everything: once the step count exceeds maxIterations, the loop
// terminates even if the model asked for more tools.
func Decide(last llms.Message, iteration, maxIterations int) Decision {
	if iteration > maxIterations {
		slog.Warn("Max iterations reached, ending", "iterations", iteration, "max_iterations", maxIterations)
		return DecisionTerminate
	}

	if len(last.ToolCalls) > 0 {
		names := make([]string, 0, len(last.ToolCalls))
		for _, tc := range last.ToolCalls {
			names = append(names, tc.Name)
		}
		slog.Debug("Model requested tools", "tools", names, "iteration", iteration)
		return DecisionContinueWithTools
	}

	slog.Debug("Model produced final answer", "iteration", iteration)
	return DecisionTerminate
}
