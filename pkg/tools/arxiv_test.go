package tools

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbhatt90/ai-research-assistant/pkg/config"
)

const arxivFixture = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <entry>
    <id>http://arxiv.org/abs/1706.03762v7</id>
    <published>2017-06-12T17:57:34Z</published>
    <title>Attention Is All You Need</title>
    <summary>The dominant sequence transduction models are based on complex recurrent or
convolutional neural networks.</summary>
    <author><name>Ashish Vaswani</name></author>
    <author><name>Noam Shazeer</name></author>
    <author><name>Niki Parmar</name></author>
    <author><name>Jakob Uszkoreit</name></author>
    <author><name>Llion Jones</name></author>
    <link href="http://arxiv.org/abs/1706.03762v7" rel="alternate" type="text/html"/>
    <link title="pdf" href="http://arxiv.org/pdf/1706.03762v7" rel="related" type="application/pdf"/>
    <category term="cs.CL"/>
    <category term="cs.LG"/>
  </entry>
</feed>`

func testToolsConfig() *config.ToolsConfig {
	cfg := &config.ToolsConfig{}
	cfg.SetDefaults()
	cfg.RequestTimeoutSeconds = 2
	return cfg
}

func TestArxivSearchFormatsPapers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "all:attention", r.URL.Query().Get("search_query"))
		assert.Equal(t, "3", r.URL.Query().Get("max_results"))
		w.Write([]byte(arxivFixture))
	}))
	defer server.Close()

	tool := NewArxivSearchTool(testToolsConfig())
	tool.endpoint = server.URL

	result, err := tool.Execute(context.Background(), map[string]interface{}{
		"query":       "attention",
		"max_results": float64(3),
	})
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Contains(t, result.Content, "Found 1 research papers for 'attention'")
	assert.Contains(t, result.Content, "**Attention Is All You Need**")
	assert.Contains(t, result.Content, "Published: 2017-06-12")
	assert.Contains(t, result.Content, "Ashish Vaswani, Noam Shazeer, Niki Parmar, ... +2 more")
	assert.Contains(t, result.Content, "Categories: cs.CL, cs.LG")
	assert.Contains(t, result.Content, "PDF: http://arxiv.org/pdf/1706.03762v7")
	assert.Contains(t, result.Content, "arXiv: http://arxiv.org/abs/1706.03762v7")
}

func TestArxivSearchClampsMaxResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "10", r.URL.Query().Get("max_results"))
		w.Write([]byte(arxivFixture))
	}))
	defer server.Close()

	tool := NewArxivSearchTool(testToolsConfig())
	tool.endpoint = server.URL

	result, err := tool.Execute(context.Background(), map[string]interface{}{
		"query":       "attention",
		"max_results": float64(1000),
	})
	require.NoError(t, err)
	assert.True(t, result.Success)
}

func TestArxivSearchEmptyFeed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<?xml version="1.0"?><feed xmlns="http://www.w3.org/2005/Atom"></feed>`))
	}))
	defer server.Close()

	tool := NewArxivSearchTool(testToolsConfig())
	tool.endpoint = server.URL

	result, err := tool.Execute(context.Background(), map[string]interface{}{"query": "zxqy"})
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Contains(t, result.Content, "No papers found for query: 'zxqy'")
}

func TestArxivSearchMissingQuery(t *testing.T) {
	tool := NewArxivSearchTool(testToolsConfig())

	result, err := tool.Execute(context.Background(), map[string]interface{}{})
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Contains(t, result.Content, "query is required")
}

func TestArxivSearchUnreachableEndpointReturnsTextResult(t *testing.T) {
	tool := NewArxivSearchTool(testToolsConfig())
	tool.endpoint = "http://127.0.0.1:1"

	result, err := tool.Execute(context.Background(), map[string]interface{}{"query": "attention"})
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Contains(t, result.Content, "Error searching arXiv")
}

func TestFormatAuthors(t *testing.T) {
	assert.Equal(t, "unknown", formatAuthors(nil))
	assert.Equal(t, "A, B", formatAuthors([]atomAuthor{{Name: "A"}, {Name: "B"}}))
	assert.Equal(t, "A, B, C, ... +2 more", formatAuthors([]atomAuthor{
		{Name: "A"}, {Name: "B"}, {Name: "C"}, {Name: "D"}, {Name: "E"},
	}))
}

func TestPDFURLFallsBackToAbsRewrite(t *testing.T) {
	entry := atomEntry{ID: "http://arxiv.org/abs/2301.00001v1"}
	assert.Equal(t, "http://arxiv.org/pdf/2301.00001v1", pdfURL(entry))
}
