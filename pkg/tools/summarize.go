package tools

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"

	"github.com/dbhatt90/ai-research-assistant/pkg/config"
	"github.com/dbhatt90/ai-research-assistant/pkg/httpclient"
	"github.com/dbhatt90/ai-research-assistant/pkg/llms"
	"github.com/dbhatt90/ai-research-assistant/pkg/utils"
)

// focusPrompts maps a focus area to its summarization instruction.
var focusPrompts = map[string]string{
	"main findings": "Focus on the main findings, results, and conclusions.",
	"methodology":   "Focus on the research methodology, experimental setup, and techniques used.",
	"results":       "Focus on the quantitative and qualitative results, performance metrics, and outcomes.",
	"introduction":  "Focus on the problem statement, motivation, and background.",
	"full summary":  "Provide a comprehensive summary covering all aspects.",
}

const defaultFocusArea = "main findings"

// PaperSummarizeTool downloads a research paper PDF, extracts its text, and
// produces a focused summary through a single LLM call.
type PaperSummarizeTool struct {
	config       *config.ToolsConfig
	llm          llms.LLMProvider
	httpClient   *httpclient.Client
	tokenCounter *utils.TokenCounter
	userAgent    string
}

func NewPaperSummarizeTool(cfg *config.ToolsConfig, llm llms.LLMProvider) (*PaperSummarizeTool, error) {
	counter, err := utils.NewTokenCounter(llm.GetModelName())
	if err != nil {
		return nil, fmt.Errorf("failed to create token counter: %w", err)
	}

	return &PaperSummarizeTool{
		config: cfg,
		llm:    llm,
		httpClient: httpclient.New(
			httpclient.WithTimeout(time.Duration(cfg.RequestTimeoutSeconds) * time.Second),
		),
		tokenCounter: counter,
		userAgent:    cfg.UserAgent,
	}, nil
}

func (t *PaperSummarizeTool) GetName() string {
	return "summarize_paper"
}

func (t *PaperSummarizeTool) GetDescription() string {
	return "Download and summarize a research paper from a PDF URL. Extracts the text and generates a focused summary."
}

func (t *PaperSummarizeTool) GetInfo() ToolInfo {
	return ToolInfo{
		Name:        t.GetName(),
		Description: t.GetDescription(),
		Parameters: []ToolParameter{
			{
				Name:        "pdf_url",
				Type:        "string",
				Description: "Direct URL to the PDF file (e.g., an arXiv PDF link)",
				Required:    true,
			},
			{
				Name:        "focus_area",
				Type:        "string",
				Description: "What to focus on (default: main findings)",
				Required:    false,
				Enum:        []string{"main findings", "methodology", "results", "introduction", "full summary"},
			},
		},
	}
}

// Execute downloads and summarizes a paper. Failures come back as text
// results, never as errors.
func (t *PaperSummarizeTool) Execute(ctx context.Context, args map[string]interface{}) (ToolResult, error) {
	startTime := time.Now()

	pdfURL := stringArg(args, "pdf_url", "")
	if pdfURL == "" {
		return buildErrorResult(t.GetName(),
			"Error summarizing paper: pdf_url is required. Please provide a direct PDF link.",
			time.Since(startTime)), nil
	}
	if parsed, err := url.Parse(pdfURL); err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return buildErrorResult(t.GetName(),
			fmt.Sprintf("Error summarizing paper: '%s' is not a valid http(s) URL.", pdfURL),
			time.Since(startTime)), nil
	}

	focusArea := strings.ToLower(stringArg(args, "focus_area", defaultFocusArea))
	focusInstruction, ok := focusPrompts[focusArea]
	if !ok {
		focusArea = defaultFocusArea
		focusInstruction = focusPrompts[defaultFocusArea]
	}

	data, err := t.download(ctx, pdfURL)
	if err != nil {
		return buildErrorResult(t.GetName(),
			fmt.Sprintf("Error downloading PDF: %v. Please check if the URL is accessible.", err),
			time.Since(startTime)), nil
	}

	text, pages, err := t.extractText(ctx, data)
	if err != nil {
		return buildErrorResult(t.GetName(),
			fmt.Sprintf("Error reading PDF: %v. The PDF may be corrupted or password-protected.", err),
			time.Since(startTime)), nil
	}
	if strings.TrimSpace(text) == "" {
		return buildErrorResult(t.GetName(),
			"Error reading PDF: no extractable text found. The PDF may be image-only.",
			time.Since(startTime)), nil
	}

	if truncated, cut := t.tokenCounter.Truncate(text, t.config.SummaryTokenBudget); cut {
		text = truncated + "\n\n[Content truncated due to length...]"
	}

	summary, err := t.summarize(ctx, text, focusInstruction)
	if err != nil {
		return buildErrorResult(t.GetName(),
			fmt.Sprintf("Error summarizing paper: %v.", err),
			time.Since(startTime)), nil
	}

	content := fmt.Sprintf("**Paper Summary** (%s, %d pages analyzed):\n\n%s", focusArea, pages, summary)
	return buildSuccessResult(t.GetName(), content, time.Since(startTime)), nil
}

func (t *PaperSummarizeTool) download(ctx context.Context, pdfURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pdfURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", t.userAgent)

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, t.config.MaxPDFSizeBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF body: %w", err)
	}
	if int64(len(data)) > t.config.MaxPDFSizeBytes {
		return nil, fmt.Errorf("PDF exceeds the %d byte size limit", t.config.MaxPDFSizeBytes)
	}

	return data, nil
}

// extractText pulls plain text from the first pages of the PDF, bounded by
// the configured page cap.
func (t *PaperSummarizeTool) extractText(ctx context.Context, data []byte) (string, int, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", 0, err
	}

	pages := reader.NumPage()
	if pages > t.config.MaxPDFPages {
		pages = t.config.MaxPDFPages
	}

	var contentParts []string
	for pageNum := 1; pageNum <= pages; pageNum++ {
		select {
		case <-ctx.Done():
			return "", 0, ctx.Err()
		default:
		}

		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if strings.TrimSpace(text) != "" {
			contentParts = append(contentParts, text)
		}
	}

	return strings.Join(contentParts, "\n"), pages, nil
}

func (t *PaperSummarizeTool) summarize(ctx context.Context, text, focusInstruction string) (string, error) {
	prompt := fmt.Sprintf(`You are analyzing a research paper. %s

Please provide a structured summary with:

1. **Title & Authors** (if identifiable from the text)
2. **Main Topic** (1-2 sentences)
3. **Key Points** (3-5 bullet points based on focus area)
4. **Main Contributions** (what's new/novel)
5. **Limitations** (if mentioned)

Keep the summary concise but informative (300-500 words).

---

PAPER CONTENT:
%s

---

STRUCTURED SUMMARY:`, focusInstruction, text)

	summary, _, _, err := t.llm.Generate(ctx, []llms.Message{
		{Role: llms.RoleUser, Content: prompt},
	}, nil)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(summary) == "" {
		return "", fmt.Errorf("model returned an empty summary")
	}

	return summary, nil
}
