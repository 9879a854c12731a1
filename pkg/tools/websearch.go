package tools

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dbhatt90/ai-research-assistant/pkg/config"
)

// WebSearchTool searches the web through DuckDuckGo for current information
// that may not appear in academic papers.
type WebSearchTool struct {
	config   *config.ToolsConfig
	searcher *duckDuckGoSearcher
}

func NewWebSearchTool(cfg *config.ToolsConfig) *WebSearchTool {
	return &WebSearchTool{
		config:   cfg,
		searcher: newDuckDuckGoSearcher(cfg),
	}
}

func (t *WebSearchTool) GetName() string {
	return "search_web"
}

func (t *WebSearchTool) GetDescription() string {
	return "Search the web using DuckDuckGo for current information and context. Useful for finding recent content that may not be in academic papers."
}

func (t *WebSearchTool) GetInfo() ToolInfo {
	return ToolInfo{
		Name:        t.GetName(),
		Description: t.GetDescription(),
		Parameters: []ToolParameter{
			{
				Name:        "query",
				Type:        "string",
				Description: "Search query (e.g., \"best data science courses\", \"Python tutorials\")",
				Required:    true,
			},
			{
				Name:        "max_results",
				Type:        "integer",
				Description: "Maximum number of results (default: 5, max: 10)",
				Required:    false,
			},
		},
	}
}

// Execute performs a web search. Failures come back as text results, never
// as errors.
func (t *WebSearchTool) Execute(ctx context.Context, args map[string]interface{}) (ToolResult, error) {
	startTime := time.Now()

	query := stringArg(args, "query", "")
	if query == "" {
		return buildErrorResult(t.GetName(),
			"Error searching web: query is required. Please provide search keywords.",
			time.Since(startTime)), nil
	}

	maxResults := clampMaxResults(args, t.config.DefaultMaxResults)

	results, err := t.searcher.Search(ctx, query, maxResults)
	if err != nil {
		return buildErrorResult(t.GetName(),
			fmt.Sprintf("Error searching web: %v. Please try again.", err),
			time.Since(startTime)), nil
	}

	if len(results) == 0 {
		return buildSuccessResult(t.GetName(),
			fmt.Sprintf("No web results found for query: '%s'. Try rephrasing or using different keywords.", query),
			time.Since(startTime)), nil
	}

	return buildSuccessResult(t.GetName(), formatWebResults(query, results), time.Since(startTime)), nil
}

func formatWebResults(query string, results []searchResult) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d web results for '%s':\n", len(results), query)

	for i, result := range results {
		fmt.Fprintf(&sb, "\n%d. **%s**\n", i+1, result.Title)
		fmt.Fprintf(&sb, "   URL: %s\n", result.URL)
		fmt.Fprintf(&sb, "   %s", truncateSnippet(result.Snippet, 200))
		if i < len(results)-1 {
			sb.WriteString("\n")
		}
	}

	return sb.String()
}
