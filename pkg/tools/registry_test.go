package tools

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTool struct {
	name    string
	execute func(ctx context.Context, args map[string]interface{}) (ToolResult, error)
}

func (f *fakeTool) GetName() string        { return f.name }
func (f *fakeTool) GetDescription() string { return "fake tool" }

func (f *fakeTool) GetInfo() ToolInfo {
	return ToolInfo{
		Name:        f.name,
		Description: "fake tool",
		Parameters: []ToolParameter{
			{Name: "query", Type: "string", Description: "query", Required: true},
		},
	}
}

func (f *fakeTool) Execute(ctx context.Context, args map[string]interface{}) (ToolResult, error) {
	return f.execute(ctx, args)
}

func TestRegisterAndListTools(t *testing.T) {
	registry := NewToolRegistry()

	require.NoError(t, registry.RegisterTool(&fakeTool{name: "search_web"}))
	require.NoError(t, registry.RegisterTool(&fakeTool{name: "search_papers"}))

	infos := registry.ListTools()
	require.Len(t, infos, 2)
	assert.Equal(t, "search_papers", infos[0].Name)
	assert.Equal(t, "search_web", infos[1].Name)

	defs := registry.Definitions()
	require.Len(t, defs, 2)
	assert.Equal(t, "object", defs[0].Parameters["type"])
}

func TestRegisterToolRejectsNil(t *testing.T) {
	registry := NewToolRegistry()
	assert.Error(t, registry.RegisterTool(nil))
}

func TestExecuteToolUnknownToolReturnsTextResult(t *testing.T) {
	registry := NewToolRegistry()

	result := registry.ExecuteTool(context.Background(), "nonexistent", nil)

	assert.False(t, result.Success)
	assert.Contains(t, result.Content, "unknown tool 'nonexistent'")
	assert.Equal(t, "nonexistent", result.ToolName)
}

func TestExecuteToolConvertsErrorsToTextResult(t *testing.T) {
	registry := NewToolRegistry()
	require.NoError(t, registry.RegisterTool(&fakeTool{
		name: "broken",
		execute: func(ctx context.Context, args map[string]interface{}) (ToolResult, error) {
			return ToolResult{}, errors.New("connection refused")
		},
	}))

	result := registry.ExecuteTool(context.Background(), "broken", nil)

	assert.False(t, result.Success)
	assert.Contains(t, result.Content, "connection refused")
}

func TestExecuteToolRecoversPanics(t *testing.T) {
	registry := NewToolRegistry()
	require.NoError(t, registry.RegisterTool(&fakeTool{
		name: "panicky",
		execute: func(ctx context.Context, args map[string]interface{}) (ToolResult, error) {
			panic("nil map write")
		},
	}))

	result := registry.ExecuteTool(context.Background(), "panicky", nil)

	assert.False(t, result.Success)
	assert.Contains(t, result.Content, "nil map write")
}

func TestExecuteToolSuccess(t *testing.T) {
	registry := NewToolRegistry()
	require.NoError(t, registry.RegisterTool(&fakeTool{
		name: "echo",
		execute: func(ctx context.Context, args map[string]interface{}) (ToolResult, error) {
			return buildSuccessResult("echo", args["query"].(string), 0), nil
		},
	}))

	result := registry.ExecuteTool(context.Background(), "echo", map[string]interface{}{"query": "hello"})

	assert.True(t, result.Success)
	assert.Equal(t, "hello", result.Content)
}
