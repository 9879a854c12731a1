package llms

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbhatt90/ai-research-assistant/pkg/config"
)

func openAITestConfig(baseURL string) *config.LLMConfig {
	return &config.LLMConfig{
		Provider:       config.LLMProviderOpenAI,
		Model:          "gpt-4o",
		APIKey:         "test-key",
		BaseURL:        baseURL,
		Temperature:    0.7,
		MaxTokens:      4096,
		TimeoutSeconds: 5,
	}
}

func TestOpenAIGenerateText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		resp := OpenAIResponse{
			Choices: []Choice{{
				Message:      OpenAIMessage{Role: RoleAssistant, Content: "Done."},
				FinishReason: "stop",
			}},
			Usage: Usage{TotalTokens: 17},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	provider, err := NewOpenAIProviderFromConfig(openAITestConfig(server.URL))
	require.NoError(t, err)

	text, toolCalls, tokens, err := provider.Generate(context.Background(),
		[]Message{{Role: RoleUser, Content: "hello"}}, nil)
	require.NoError(t, err)

	assert.Equal(t, "Done.", text)
	assert.Empty(t, toolCalls)
	assert.Equal(t, 17, tokens)
}

func TestOpenAIGenerateParsesToolCallArguments(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req OpenAIRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Tools, 1)
		assert.Equal(t, "function", req.Tools[0].Type)

		resp := OpenAIResponse{
			Choices: []Choice{{
				Message: OpenAIMessage{
					Role: RoleAssistant,
					ToolCalls: []OpenAIToolCall{{
						ID:   "call_abc",
						Type: "function",
						Function: OpenAIFunctionCall{
							Name:      "search_papers",
							Arguments: `{"query":"diffusion models","max_results":3}`,
						},
					}},
				},
				FinishReason: "tool_calls",
			}},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	provider, err := NewOpenAIProviderFromConfig(openAITestConfig(server.URL))
	require.NoError(t, err)

	tools := []ToolDefinition{BuildToolDefinition("search_papers", "Search arXiv", []ToolParameter{
		{Name: "query", Type: "string", Description: "Search query", Required: true},
	})}

	_, toolCalls, _, err := provider.Generate(context.Background(),
		[]Message{{Role: RoleUser, Content: "find papers"}}, tools)
	require.NoError(t, err)

	require.Len(t, toolCalls, 1)
	assert.Equal(t, "call_abc", toolCalls[0].ID)
	assert.Equal(t, "diffusion models", toolCalls[0].Arguments["query"])
	assert.Equal(t, float64(3), toolCalls[0].Arguments["max_results"])
}

func TestOpenAIGenerateAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(OpenAIResponse{
			Error: &Error{Message: "rate limited", Type: "rate_limit_error"},
		})
	}))
	defer server.Close()

	provider, err := NewOpenAIProviderFromConfig(openAITestConfig(server.URL))
	require.NoError(t, err)

	_, _, _, err = provider.Generate(context.Background(),
		[]Message{{Role: RoleUser, Content: "hi"}}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestOpenAIConvertMessagesRoundTripsToolCalls(t *testing.T) {
	provider := &OpenAIProvider{config: openAITestConfig("http://localhost")}

	messages := []Message{
		{Role: RoleAssistant, ToolCalls: []ToolCall{{
			ID:        "call_1",
			Name:      "search_web",
			Arguments: map[string]interface{}{"query": "golang"},
		}}},
		{Role: RoleTool, ToolCallID: "call_1", Content: "results"},
	}

	converted := provider.convertMessages(messages)
	require.Len(t, converted, 2)

	require.Len(t, converted[0].ToolCalls, 1)
	assert.Equal(t, "search_web", converted[0].ToolCalls[0].Function.Name)
	assert.JSONEq(t, `{"query":"golang"}`, converted[0].ToolCalls[0].Function.Arguments)
	assert.Equal(t, "call_1", converted[1].ToolCallID)
}
