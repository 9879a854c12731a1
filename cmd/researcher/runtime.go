package main

import (
	"fmt"
	"os"

	"github.com/dbhatt90/ai-research-assistant/pkg/agent"
	"github.com/dbhatt90/ai-research-assistant/pkg/config"
	"github.com/dbhatt90/ai-research-assistant/pkg/llms"
	"github.com/dbhatt90/ai-research-assistant/pkg/logger"
	"github.com/dbhatt90/ai-research-assistant/pkg/tools"
)

// buildAgent loads configuration, creates the LLM provider, registers the
// research tools, and returns the assembled agent. Both the query and serve
// commands go through here.
func buildAgent(cli *CLI) (*config.Config, *agent.Agent, error) {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// CLI log flags win over the config file; re-init with the config
	// values only when the flags are left at their defaults.
	if cli.LogLevel == "info" && cli.LogFormat == "simple" {
		logger.Init(logger.ParseLevel(cfg.Logging.Level), os.Stderr, cfg.Logging.Format)
	}

	llm, err := llms.NewProviderFromConfig(&cfg.LLM)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create LLM provider: %w", err)
	}

	registry, err := buildToolRegistry(cfg, llm)
	if err != nil {
		return nil, nil, err
	}

	researcher, err := agent.New(&cfg.Agent, llm, registry)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create agent: %w", err)
	}

	return cfg, researcher, nil
}

func buildToolRegistry(cfg *config.Config, llm llms.LLMProvider) (*tools.ToolRegistry, error) {
	registry := tools.NewToolRegistry()

	summarizer, err := tools.NewPaperSummarizeTool(&cfg.Tools, llm)
	if err != nil {
		return nil, fmt.Errorf("failed to create summarize tool: %w", err)
	}

	for _, tool := range []tools.Tool{
		tools.NewArxivSearchTool(&cfg.Tools),
		tools.NewWebSearchTool(&cfg.Tools),
		tools.NewResourceFinderTool(&cfg.Tools),
		summarizer,
	} {
		if err := registry.RegisterTool(tool); err != nil {
			return nil, fmt.Errorf("failed to register tool: %w", err)
		}
	}

	return registry, nil
}
