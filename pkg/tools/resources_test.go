package tools

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankResourcesPutsQualityDomainsFirst(t *testing.T) {
	results := []searchResult{
		{Title: "Random blog", URL: "https://random.example.com/ml"},
		{Title: "Coursera ML", URL: "https://coursera.org/learn/ml"},
		{Title: "Another blog", URL: "https://blog.example.org/post"},
		{Title: "Fast.ai course", URL: "https://fast.ai/course"},
	}

	ranked := rankResources(results)
	require.Len(t, ranked, 4)

	assert.Equal(t, "Coursera ML", ranked[0].Title)
	assert.Equal(t, "Fast.ai course", ranked[1].Title)
	assert.Equal(t, "Random blog", ranked[2].Title)
}

func TestRankResourcesCapsAtSix(t *testing.T) {
	var results []searchResult
	for i := 0; i < 8; i++ {
		results = append(results, searchResult{Title: "q", URL: "https://github.com/x"})
	}

	// Five quality results plus up to three others, capped at six total.
	ranked := rankResources(results)
	assert.Len(t, ranked, 5)

	results = append(results,
		searchResult{Title: "o", URL: "https://other.example.com/1"},
		searchResult{Title: "o", URL: "https://other.example.com/2"},
	)
	ranked = rankResources(results)
	assert.Len(t, ranked, 6)
}

func TestResourceFinderFormatsAndBadges(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Resource type shapes the crafted query.
		assert.Contains(t, r.URL.Query().Get("q"), "machine learning online course")
		w.Write([]byte(duckDuckGoFixture))
	}))
	defer server.Close()

	tool := NewResourceFinderTool(testToolsConfig())
	tool.searcher.endpoint = server.URL

	result, err := tool.Execute(context.Background(), map[string]interface{}{
		"topic":         "machine learning",
		"resource_type": "courses",
	})
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Contains(t, result.Content, "**Learning Resources: machine learning** (courses)")
	assert.Contains(t, result.Content, "URL: https://go.dev/doc/")
}

func TestResourceFinderUnknownTypeFallsBackToCourses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Query().Get("q"), "Coursera")
		w.Write([]byte(duckDuckGoFixture))
	}))
	defer server.Close()

	tool := NewResourceFinderTool(testToolsConfig())
	tool.searcher.endpoint = server.URL

	result, err := tool.Execute(context.Background(), map[string]interface{}{
		"topic":         "golang",
		"resource_type": "podcasts",
	})
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Contains(t, result.Content, "(courses)")
}

func TestResourceFinderMissingTopic(t *testing.T) {
	tool := NewResourceFinderTool(testToolsConfig())

	result, err := tool.Execute(context.Background(), map[string]interface{}{})
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Contains(t, result.Content, "topic is required")
}
