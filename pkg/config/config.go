// Package config holds the process-wide settings for the research assistant.
//
// Configuration is environment-sourced (with .env file support) and may be
// overlaid by an optional YAML file. It is constructed once at process start
// and never mutated afterwards; concurrent readers need no synchronization.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration object.
type Config struct {
	LLM     LLMConfig     `yaml:"llm" json:"llm" jsonschema:"title=LLM,description=Language model provider configuration"`
	Agent   AgentConfig   `yaml:"agent" json:"agent" jsonschema:"title=Agent,description=Reasoning loop configuration"`
	Tools   ToolsConfig   `yaml:"tools" json:"tools" jsonschema:"title=Tools,description=Tool adapter limits"`
	Server  ServerConfig  `yaml:"server" json:"server" jsonschema:"title=Server,description=HTTP server configuration"`
	Logging LoggingConfig `yaml:"logging" json:"logging" jsonschema:"title=Logging,description=Logging configuration"`
}

// AgentConfig configures the reasoning loop.
type AgentConfig struct {
	// MaxIterations is the iteration ceiling: once the reasoning-step count
	// exceeds it, the loop terminates regardless of model intent.
	MaxIterations int `yaml:"max_iterations,omitempty" json:"max_iterations,omitempty" jsonschema:"title=Max Iterations,description=Maximum reasoning steps before forced termination,minimum=1,default=10"`
}

func (c *AgentConfig) SetDefaults() {
	if c.MaxIterations == 0 {
		c.MaxIterations = 10
	}
}

func (c *AgentConfig) Validate() error {
	if c.MaxIterations < 1 {
		return fmt.Errorf("max_iterations must be at least 1, got %d", c.MaxIterations)
	}
	return nil
}

// ToolsConfig bounds tool adapter cost and response size.
type ToolsConfig struct {
	// DefaultMaxResults is used when the model omits max_results.
	DefaultMaxResults int `yaml:"default_max_results,omitempty" json:"default_max_results,omitempty" jsonschema:"title=Default Max Results,description=Result count when the model does not ask for one,minimum=1,default=5"`

	// RequestTimeoutSeconds bounds each outbound tool HTTP request.
	RequestTimeoutSeconds int `yaml:"request_timeout_seconds,omitempty" json:"request_timeout_seconds,omitempty" jsonschema:"title=Request Timeout,description=Timeout in seconds for tool HTTP requests,minimum=1,default=30"`

	// MaxPDFPages caps how many pages the summarizer extracts.
	MaxPDFPages int `yaml:"max_pdf_pages,omitempty" json:"max_pdf_pages,omitempty" jsonschema:"title=Max PDF Pages,description=Maximum PDF pages to extract,minimum=1,default=10"`

	// MaxPDFSizeBytes caps the downloaded PDF size.
	MaxPDFSizeBytes int64 `yaml:"max_pdf_size_bytes,omitempty" json:"max_pdf_size_bytes,omitempty" jsonschema:"title=Max PDF Size,description=Maximum PDF download size in bytes,minimum=1024,default=20971520"`

	// SummaryTokenBudget caps how much extracted text is sent to the model.
	SummaryTokenBudget int `yaml:"summary_token_budget,omitempty" json:"summary_token_budget,omitempty" jsonschema:"title=Summary Token Budget,description=Token budget for extracted paper text,minimum=100,default=8000"`

	// UserAgent is sent on outbound tool requests.
	UserAgent string `yaml:"user_agent,omitempty" json:"user_agent,omitempty" jsonschema:"title=User Agent,description=User-Agent header for tool requests"`
}

func (c *ToolsConfig) SetDefaults() {
	if c.DefaultMaxResults == 0 {
		c.DefaultMaxResults = 5
	}
	if c.RequestTimeoutSeconds == 0 {
		c.RequestTimeoutSeconds = 30
	}
	if c.MaxPDFPages == 0 {
		c.MaxPDFPages = 10
	}
	if c.MaxPDFSizeBytes == 0 {
		c.MaxPDFSizeBytes = 20 << 20
	}
	if c.SummaryTokenBudget == 0 {
		c.SummaryTokenBudget = 8000
	}
	if c.UserAgent == "" {
		c.UserAgent = "research-assistant/1.0"
	}
}

func (c *ToolsConfig) Validate() error {
	if c.DefaultMaxResults < 1 {
		return fmt.Errorf("default_max_results must be at least 1, got %d", c.DefaultMaxResults)
	}
	if c.RequestTimeoutSeconds < 1 {
		return fmt.Errorf("request_timeout_seconds must be at least 1, got %d", c.RequestTimeoutSeconds)
	}
	return nil
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Host string `yaml:"host,omitempty" json:"host,omitempty" jsonschema:"title=Host,description=Listen address,default=0.0.0.0"`
	Port int    `yaml:"port,omitempty" json:"port,omitempty" jsonschema:"title=Port,description=Listen port,minimum=1,maximum=65535,default=8080"`
}

func (c *ServerConfig) SetDefaults() {
	if c.Host == "" {
		c.Host = "0.0.0.0"
	}
	if c.Port == 0 {
		c.Port = 8080
	}
}

func (c *ServerConfig) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}
	return nil
}

// Address returns the host:port listen address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LoggingConfig configures the slog logger.
type LoggingConfig struct {
	Level  string `yaml:"level,omitempty" json:"level,omitempty" jsonschema:"title=Level,description=Log level,enum=debug,enum=info,enum=warn,enum=error,default=info"`
	Format string `yaml:"format,omitempty" json:"format,omitempty" jsonschema:"title=Format,description=Log format,enum=simple,enum=verbose,default=simple"`
}

func (c *LoggingConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = "simple"
	}
}

// SetDefaults applies defaults recursively.
func (c *Config) SetDefaults() {
	c.LLM.SetDefaults()
	c.Agent.SetDefaults()
	c.Tools.SetDefaults()
	c.Server.SetDefaults()
	c.Logging.SetDefaults()
}

// Validate checks the configuration recursively.
func (c *Config) Validate() error {
	if err := c.LLM.Validate(); err != nil {
		return fmt.Errorf("llm: %w", err)
	}
	if err := c.Agent.Validate(); err != nil {
		return fmt.Errorf("agent: %w", err)
	}
	if err := c.Tools.Validate(); err != nil {
		return fmt.Errorf("tools: %w", err)
	}
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}

// Load builds the configuration: .env files, then environment variables,
// then an optional YAML overlay, then defaults and validation. Call it once
// at process start and pass the result down.
func Load(path string) (*Config, error) {
	if err := LoadEnvFiles(); err != nil {
		return nil, err
	}

	cfg := FromEnv()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
