package tools

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dbhatt90/ai-research-assistant/pkg/config"
)

// resourceQueries maps a resource type to a search query template crafted
// to surface high-quality learning material.
var resourceQueries = map[string]string{
	"courses":   "%s online course Coursera edX Udacity",
	"tutorials": "%s tutorial documentation getting started",
	"books":     "best %s books textbook O'Reilly Manning",
	"videos":    "%s video lecture tutorial YouTube",
}

// qualityDomains are hosts whose results get ranked first and badged.
var qualityDomains = []string{
	"coursera.org", "edx.org", "udacity.com", "mit.edu", "stanford.edu",
	"youtube.com", "github.com", "medium.com", "towardsdatascience.com",
	"kaggle.com", "fast.ai", "deeplearning.ai",
}

// ResourceFinderTool finds curated learning resources on a topic, ranking
// results from known high-quality domains first.
type ResourceFinderTool struct {
	config   *config.ToolsConfig
	searcher *duckDuckGoSearcher
}

func NewResourceFinderTool(cfg *config.ToolsConfig) *ResourceFinderTool {
	return &ResourceFinderTool{
		config:   cfg,
		searcher: newDuckDuckGoSearcher(cfg),
	}
}

func (t *ResourceFinderTool) GetName() string {
	return "find_resources"
}

func (t *ResourceFinderTool) GetDescription() string {
	return "Find curated learning resources on a topic: courses, tutorials, books, or videos, ranked by source quality."
}

func (t *ResourceFinderTool) GetInfo() ToolInfo {
	return ToolInfo{
		Name:        t.GetName(),
		Description: t.GetDescription(),
		Parameters: []ToolParameter{
			{
				Name:        "topic",
				Type:        "string",
				Description: "Subject to learn about (e.g., \"machine learning\", \"distributed systems\")",
				Required:    true,
			},
			{
				Name:        "resource_type",
				Type:        "string",
				Description: "Type of resource (default: courses)",
				Required:    false,
				Enum:        []string{"courses", "tutorials", "books", "videos"},
			},
		},
	}
}

// Execute finds learning resources. Failures come back as text results,
// never as errors.
func (t *ResourceFinderTool) Execute(ctx context.Context, args map[string]interface{}) (ToolResult, error) {
	startTime := time.Now()

	topic := stringArg(args, "topic", "")
	if topic == "" {
		return buildErrorResult(t.GetName(),
			"Error finding resources: topic is required. Please provide a subject to search for.",
			time.Since(startTime)), nil
	}

	resourceType := strings.ToLower(stringArg(args, "resource_type", "courses"))
	template, ok := resourceQueries[resourceType]
	if !ok {
		resourceType = "courses"
		template = resourceQueries[resourceType]
	}

	results, err := t.searcher.Search(ctx, fmt.Sprintf(template, topic), 8)
	if err != nil {
		return buildErrorResult(t.GetName(),
			fmt.Sprintf("Error finding resources: %v. Please try again.", err),
			time.Since(startTime)), nil
	}

	if len(results) == 0 {
		return buildSuccessResult(t.GetName(),
			fmt.Sprintf("No %s found for '%s'.", resourceType, topic),
			time.Since(startTime)), nil
	}

	ranked := rankResources(results)
	return buildSuccessResult(t.GetName(), formatResources(topic, resourceType, ranked), time.Since(startTime)), nil
}

// rankResources puts results from quality domains first: up to five of
// those, then up to three of the rest.
func rankResources(results []searchResult) []searchResult {
	var quality, other []searchResult
	for _, r := range results {
		if isQualityDomain(r.URL) {
			quality = append(quality, r)
		} else {
			other = append(other, r)
		}
	}

	if len(quality) > 5 {
		quality = quality[:5]
	}
	if len(other) > 3 {
		other = other[:3]
	}

	ranked := append(quality, other...)
	if len(ranked) > 6 {
		ranked = ranked[:6]
	}
	return ranked
}

func isQualityDomain(rawURL string) bool {
	for _, domain := range qualityDomains {
		if strings.Contains(rawURL, domain) {
			return true
		}
	}
	return false
}

func formatResources(topic, resourceType string, results []searchResult) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "**Learning Resources: %s** (%s)\n", topic, resourceType)

	for i, result := range results {
		badge := ""
		if isQualityDomain(result.URL) {
			badge = "[recommended] "
		}
		fmt.Fprintf(&sb, "\n%d. %s**%s**\n", i+1, badge, result.Title)
		fmt.Fprintf(&sb, "   URL: %s\n", result.URL)
		fmt.Fprintf(&sb, "   %s", truncateSnippet(result.Snippet, 150))
		if i < len(results)-1 {
			sb.WriteString("\n")
		}
	}

	return sb.String()
}
