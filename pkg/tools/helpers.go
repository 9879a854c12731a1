package tools

import (
	"time"
)

// maxResultsCeiling is the hard cap on requested result counts; model
// requests above it are clamped, never rejected.
const maxResultsCeiling = 10

// buildSuccessResult creates a standardized success ToolResult.
func buildSuccessResult(toolName, content string, executionTime time.Duration) ToolResult {
	return ToolResult{
		Success:       true,
		Content:       content,
		ToolName:      toolName,
		ExecutionTime: executionTime,
	}
}

// buildErrorResult creates a standardized failure ToolResult. The message
// doubles as Content so the model always sees readable text.
func buildErrorResult(toolName, errorMsg string, executionTime time.Duration) ToolResult {
	if errorMsg == "" {
		errorMsg = "unknown error"
	}

	return ToolResult{
		Success:       false,
		Content:       errorMsg,
		Error:         errorMsg,
		ToolName:      toolName,
		ExecutionTime: executionTime,
	}
}

// stringArg extracts a string argument, returning fallback when absent or
// not a string.
func stringArg(args map[string]interface{}, key, fallback string) string {
	if v, ok := args[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

// intArg extracts an integer argument. JSON decoding yields float64, so both
// shapes are accepted.
func intArg(args map[string]interface{}, key string, fallback int) int {
	switch v := args[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return fallback
	}
}

// clampMaxResults resolves the max_results argument against the configured
// default and the hard ceiling.
func clampMaxResults(args map[string]interface{}, fallback int) int {
	n := intArg(args, "max_results", fallback)
	if n < 1 {
		n = fallback
	}
	if n > maxResultsCeiling {
		n = maxResultsCeiling
	}
	return n
}
