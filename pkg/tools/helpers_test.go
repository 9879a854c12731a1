package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampMaxResults(t *testing.T) {
	tests := []struct {
		name string
		args map[string]interface{}
		want int
	}{
		{"absent uses default", map[string]interface{}{}, 5},
		{"json number", map[string]interface{}{"max_results": float64(3)}, 3},
		{"go int", map[string]interface{}{"max_results": 7}, 7},
		{"above ceiling clamps to 10", map[string]interface{}{"max_results": float64(1000)}, 10},
		{"zero uses default", map[string]interface{}{"max_results": float64(0)}, 5},
		{"negative uses default", map[string]interface{}{"max_results": float64(-2)}, 5},
		{"wrong type uses default", map[string]interface{}{"max_results": "many"}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, clampMaxResults(tt.args, 5))
		})
	}
}

func TestStringArg(t *testing.T) {
	args := map[string]interface{}{"query": "transformers", "count": 3}

	assert.Equal(t, "transformers", stringArg(args, "query", ""))
	assert.Equal(t, "fallback", stringArg(args, "missing", "fallback"))
	assert.Equal(t, "fallback", stringArg(args, "count", "fallback"))
}

func TestBuildErrorResultFillsContent(t *testing.T) {
	result := buildErrorResult("search_web", "Error searching web: timeout", 0)

	assert.False(t, result.Success)
	assert.Equal(t, result.Error, result.Content)
	assert.Equal(t, "search_web", result.ToolName)

	empty := buildErrorResult("search_web", "", 0)
	assert.Equal(t, "unknown error", empty.Error)
}

func TestTruncateSnippet(t *testing.T) {
	assert.Equal(t, "short", truncateSnippet("short", 10))
	assert.Equal(t, "abcde...", truncateSnippet("abcdefgh", 5))
}
