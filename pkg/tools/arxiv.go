package tools

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dbhatt90/ai-research-assistant/pkg/config"
	"github.com/dbhatt90/ai-research-assistant/pkg/httpclient"
)

const arxivEndpoint = "http://export.arxiv.org/api/query"

// ArxivSearchTool searches arXiv for academic papers through its Atom API.
type ArxivSearchTool struct {
	config     *config.ToolsConfig
	httpClient *httpclient.Client
	endpoint   string
	userAgent  string
}

// atomFeed is the subset of the arXiv Atom response we consume.
type atomFeed struct {
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	ID         string         `xml:"id"`
	Title      string         `xml:"title"`
	Published  string         `xml:"published"`
	Summary    string         `xml:"summary"`
	Authors    []atomAuthor   `xml:"author"`
	Categories []atomCategory `xml:"category"`
	Links      []atomLink     `xml:"link"`
}

type atomAuthor struct {
	Name string `xml:"name"`
}

type atomCategory struct {
	Term string `xml:"term,attr"`
}

type atomLink struct {
	Href  string `xml:"href,attr"`
	Rel   string `xml:"rel,attr"`
	Title string `xml:"title,attr"`
}

func NewArxivSearchTool(cfg *config.ToolsConfig) *ArxivSearchTool {
	return &ArxivSearchTool{
		config: cfg,
		httpClient: httpclient.New(
			httpclient.WithTimeout(time.Duration(cfg.RequestTimeoutSeconds) * time.Second),
		),
		endpoint:  arxivEndpoint,
		userAgent: cfg.UserAgent,
	}
}

func (t *ArxivSearchTool) GetName() string {
	return "search_papers"
}

func (t *ArxivSearchTool) GetDescription() string {
	return "Search arXiv for academic research papers. Returns paper titles, authors, summaries, and PDF links."
}

func (t *ArxivSearchTool) GetInfo() ToolInfo {
	return ToolInfo{
		Name:        t.GetName(),
		Description: t.GetDescription(),
		Parameters: []ToolParameter{
			{
				Name:        "query",
				Type:        "string",
				Description: "Search query (e.g., \"machine learning\", \"AI agents\", \"transformers\")",
				Required:    true,
			},
			{
				Name:        "max_results",
				Type:        "integer",
				Description: "Maximum number of papers to return (default: 5, max: 10)",
				Required:    false,
			},
		},
	}
}

// Execute searches arXiv. Failures come back as text results, never as
// errors.
func (t *ArxivSearchTool) Execute(ctx context.Context, args map[string]interface{}) (ToolResult, error) {
	startTime := time.Now()

	query := stringArg(args, "query", "")
	if query == "" {
		return buildErrorResult(t.GetName(),
			"Error searching arXiv: query is required. Please provide search keywords.",
			time.Since(startTime)), nil
	}

	maxResults := clampMaxResults(args, t.config.DefaultMaxResults)

	entries, err := t.search(ctx, query, maxResults)
	if err != nil {
		return buildErrorResult(t.GetName(),
			fmt.Sprintf("Error searching arXiv: %v. Please try again with a different query.", err),
			time.Since(startTime)), nil
	}

	if len(entries) == 0 {
		return buildSuccessResult(t.GetName(),
			fmt.Sprintf("No papers found for query: '%s'. Try different keywords or broader terms.", query),
			time.Since(startTime)), nil
	}

	return buildSuccessResult(t.GetName(), formatPapers(query, entries), time.Since(startTime)), nil
}

func (t *ArxivSearchTool) search(ctx context.Context, query string, maxResults int) ([]atomEntry, error) {
	params := url.Values{}
	params.Set("search_query", "all:"+query)
	params.Set("start", "0")
	params.Set("max_results", fmt.Sprintf("%d", maxResults))
	params.Set("sortBy", "relevance")
	params.Set("sortOrder", "descending")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", t.userAgent)

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("arXiv request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var feed atomFeed
	if err := xml.Unmarshal(body, &feed); err != nil {
		return nil, fmt.Errorf("failed to parse arXiv feed: %w", err)
	}

	return feed.Entries, nil
}

func formatPapers(query string, entries []atomEntry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d research papers for '%s':\n", len(entries), query)

	for i, entry := range entries {
		fmt.Fprintf(&sb, "\n%d. **%s**\n", i+1, collapseWhitespace(entry.Title))
		fmt.Fprintf(&sb, "   Published: %s\n", publishedDate(entry.Published))
		fmt.Fprintf(&sb, "   Authors: %s\n", formatAuthors(entry.Authors))
		fmt.Fprintf(&sb, "   Categories: %s\n", formatCategories(entry.Categories))
		fmt.Fprintf(&sb, "   Summary: %s\n", truncateSnippet(collapseWhitespace(entry.Summary), 300))
		fmt.Fprintf(&sb, "   PDF: %s\n", pdfURL(entry))
		fmt.Fprintf(&sb, "   arXiv: %s", strings.TrimSpace(entry.ID))
		if i < len(entries)-1 {
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// formatAuthors lists the first three authors, then a count of the rest.
func formatAuthors(authors []atomAuthor) string {
	names := make([]string, 0, 4)
	for i, a := range authors {
		if i == 3 {
			names = append(names, fmt.Sprintf("... +%d more", len(authors)-3))
			break
		}
		names = append(names, strings.TrimSpace(a.Name))
	}
	if len(names) == 0 {
		return "unknown"
	}
	return strings.Join(names, ", ")
}

func formatCategories(categories []atomCategory) string {
	terms := make([]string, 0, 3)
	for i, c := range categories {
		if i == 3 {
			break
		}
		terms = append(terms, c.Term)
	}
	return strings.Join(terms, ", ")
}

// pdfURL prefers the feed's pdf link, falling back to rewriting the abstract
// URL.
func pdfURL(entry atomEntry) string {
	for _, link := range entry.Links {
		if link.Title == "pdf" {
			return link.Href
		}
	}
	return strings.Replace(strings.TrimSpace(entry.ID), "/abs/", "/pdf/", 1)
}

func publishedDate(published string) string {
	published = strings.TrimSpace(published)
	if len(published) >= 10 {
		return published[:10]
	}
	return published
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
