package tools

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const duckDuckGoFixture = `<html><body>
<div class="results">
  <div class="result results_links results_links_deep web-result">
    <div class="links_main links_deep result__body">
      <h2 class="result__title">
        <a rel="nofollow" class="result__a" href="https://go.dev/doc/">Go Documentation</a>
      </h2>
      <a class="result__snippet" href="https://go.dev/doc/">Official Go documentation covering the language, tools, and standard library.</a>
    </div>
  </div>
  <div class="result results_links results_links_deep web-result">
    <div class="links_main links_deep result__body">
      <h2 class="result__title">
        <a rel="nofollow" class="result__a" href="//duckduckgo.com/l/?uddg=https%3A%2F%2Fgobyexample.com%2F&amp;rut=abc123">Go by Example</a>
      </h2>
      <a class="result__snippet" href="#">Hands-on introduction to Go using annotated example programs.</a>
    </div>
  </div>
</div>
</body></html>`

func TestParseDuckDuckGoResults(t *testing.T) {
	results, err := parseDuckDuckGoResults(duckDuckGoFixture, 10)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "Go Documentation", results[0].Title)
	assert.Equal(t, "https://go.dev/doc/", results[0].URL)
	assert.Contains(t, results[0].Snippet, "Official Go documentation")

	// Redirect URLs are unwrapped.
	assert.Equal(t, "https://gobyexample.com/", results[1].URL)
}

func TestParseDuckDuckGoResultsHonorsLimit(t *testing.T) {
	results, err := parseDuckDuckGoResults(duckDuckGoFixture, 1)
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestResolveRedirect(t *testing.T) {
	assert.Equal(t, "https://example.com/page",
		resolveRedirect("//duckduckgo.com/l/?uddg=https%3A%2F%2Fexample.com%2Fpage&rut=xyz"))
	assert.Equal(t, "https://plain.example.com", resolveRedirect("https://plain.example.com"))
}

func TestWebSearchFormatsResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "golang tutorials", r.URL.Query().Get("q"))
		w.Write([]byte(duckDuckGoFixture))
	}))
	defer server.Close()

	tool := NewWebSearchTool(testToolsConfig())
	tool.searcher.endpoint = server.URL

	result, err := tool.Execute(context.Background(), map[string]interface{}{
		"query": "golang tutorials",
	})
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Contains(t, result.Content, "Found 2 web results for 'golang tutorials'")
	assert.Contains(t, result.Content, "**Go Documentation**")
	assert.Contains(t, result.Content, "URL: https://go.dev/doc/")
}

func TestWebSearchMissingQuery(t *testing.T) {
	tool := NewWebSearchTool(testToolsConfig())

	result, err := tool.Execute(context.Background(), map[string]interface{}{})
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Contains(t, result.Content, "query is required")
}

func TestWebSearchNoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><div class="no-results">No results.</div></body></html>`))
	}))
	defer server.Close()

	tool := NewWebSearchTool(testToolsConfig())
	tool.searcher.endpoint = server.URL

	result, err := tool.Execute(context.Background(), map[string]interface{}{"query": "zxqy"})
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Contains(t, result.Content, "No web results found for query: 'zxqy'")
}

func TestWebSearchUnreachableEndpointReturnsTextResult(t *testing.T) {
	tool := NewWebSearchTool(testToolsConfig())
	tool.searcher.endpoint = "http://127.0.0.1:1"

	result, err := tool.Execute(context.Background(), map[string]interface{}{"query": "golang"})
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Contains(t, result.Content, "Error searching web")
}
