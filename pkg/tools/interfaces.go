// Package tools provides the research tools exposed to the model: arXiv
// paper search, web search, learning resource discovery, and PDF paper
// summarization. Tools encode failures into their results instead of
// returning errors, so a broken search never aborts a running query.
package tools

import (
	"context"
	"time"

	"github.com/dbhatt90/ai-research-assistant/pkg/llms"
)

// ToolInfo describes a tool to the model.
type ToolInfo struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  []ToolParameter `json:"parameters,omitempty"`
}

// ToolParameter describes one tool parameter.
type ToolParameter struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Required    bool     `json:"required"`
	Enum        []string `json:"enum,omitempty"`
}

// ToolResult is the outcome of one tool invocation. Content always carries
// text suitable for the model: results on success, a readable error message
// otherwise.
type ToolResult struct {
	Success       bool          `json:"success"`
	Content       string        `json:"content,omitempty"`
	Error         string        `json:"error,omitempty"`
	ToolName      string        `json:"tool_name"`
	ExecutionTime time.Duration `json:"execution_time,omitempty"`
}

// Tool is the interface all research tools implement.
type Tool interface {
	GetInfo() ToolInfo

	Execute(ctx context.Context, args map[string]interface{}) (ToolResult, error)

	GetName() string

	GetDescription() string
}

// Definition converts the tool description to the LLM wire format.
func (info ToolInfo) Definition() llms.ToolDefinition {
	params := make([]llms.ToolParameter, 0, len(info.Parameters))
	for _, p := range info.Parameters {
		params = append(params, llms.ToolParameter{
			Name:        p.Name,
			Type:        p.Type,
			Description: p.Description,
			Required:    p.Required,
		})
	}
	return llms.BuildToolDefinition(info.Name, info.Description, params)
}
