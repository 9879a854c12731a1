package tools

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbhatt90/ai-research-assistant/pkg/llms"
)

type mockLLM struct {
	response string
	err      error
}

func (m *mockLLM) Generate(ctx context.Context, messages []llms.Message, tools []llms.ToolDefinition) (string, []llms.ToolCall, int, error) {
	if m.err != nil {
		return "", nil, 0, m.err
	}
	return m.response, nil, 10, nil
}

func (m *mockLLM) GetModelName() string    { return "gpt-4o" }
func (m *mockLLM) GetMaxTokens() int       { return 4096 }
func (m *mockLLM) GetTemperature() float64 { return 0.7 }
func (m *mockLLM) Close() error            { return nil }

func newTestSummarizeTool(t *testing.T) *PaperSummarizeTool {
	t.Helper()
	tool, err := NewPaperSummarizeTool(testToolsConfig(), &mockLLM{response: "summary text"})
	require.NoError(t, err)
	return tool
}

func TestSummarizePaperMissingURL(t *testing.T) {
	tool := newTestSummarizeTool(t)

	result, err := tool.Execute(context.Background(), map[string]interface{}{})
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Contains(t, result.Content, "pdf_url is required")
}

func TestSummarizePaperRejectsNonHTTPURL(t *testing.T) {
	tool := newTestSummarizeTool(t)

	result, err := tool.Execute(context.Background(), map[string]interface{}{
		"pdf_url": "ftp://example.com/paper.pdf",
	})
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Contains(t, result.Content, "not a valid http(s) URL")
}

func TestSummarizePaperUnreachableURLReturnsTextResult(t *testing.T) {
	tool := newTestSummarizeTool(t)

	result, err := tool.Execute(context.Background(), map[string]interface{}{
		"pdf_url": "http://127.0.0.1:1/paper.pdf",
	})
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Contains(t, result.Content, "Error downloading PDF")
}

func TestSummarizePaperCorruptPDFReturnsTextResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("this is not a pdf"))
	}))
	defer server.Close()

	tool := newTestSummarizeTool(t)

	result, err := tool.Execute(context.Background(), map[string]interface{}{
		"pdf_url": server.URL + "/paper.pdf",
	})
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Contains(t, result.Content, "Error reading PDF")
}

func TestFocusPromptsFallback(t *testing.T) {
	_, ok := focusPrompts["main findings"]
	assert.True(t, ok)

	_, ok = focusPrompts["vibes"]
	assert.False(t, ok)
}
