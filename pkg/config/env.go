package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadEnvFiles loads .env.local and .env from the working directory.
// Missing files are fine; variables already set in the environment win.
func LoadEnvFiles() error {
	envFiles := []string{".env.local", ".env"}

	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to load %s: %w", file, err)
		}
	}

	return nil
}

// FromEnv builds a Config from environment variables. Unset variables leave
// zero values for SetDefaults to fill in.
func FromEnv() *Config {
	return &Config{
		LLM: LLMConfig{
			Provider:       LLMProvider(os.Getenv("LLM_PROVIDER")),
			Model:          os.Getenv("LLM_MODEL"),
			APIKey:         os.Getenv("LLM_API_KEY"),
			BaseURL:        os.Getenv("LLM_BASE_URL"),
			Temperature:    envFloat("LLM_TEMPERATURE"),
			MaxTokens:      envInt("LLM_MAX_TOKENS"),
			TimeoutSeconds: envInt("LLM_TIMEOUT_SECONDS"),
		},
		Agent: AgentConfig{
			MaxIterations: envInt("MAX_ITERATIONS"),
		},
		Tools: ToolsConfig{
			DefaultMaxResults:     envInt("TOOL_DEFAULT_MAX_RESULTS"),
			RequestTimeoutSeconds: envInt("TOOL_REQUEST_TIMEOUT_SECONDS"),
			MaxPDFPages:           envInt("TOOL_MAX_PDF_PAGES"),
			SummaryTokenBudget:    envInt("TOOL_SUMMARY_TOKEN_BUDGET"),
			UserAgent:             os.Getenv("TOOL_USER_AGENT"),
		},
		Server: ServerConfig{
			Host: os.Getenv("SERVER_HOST"),
			Port: envInt("SERVER_PORT"),
		},
		Logging: LoggingConfig{
			Level:  os.Getenv("LOG_LEVEL"),
			Format: os.Getenv("LOG_FORMAT"),
		},
	}
}

func envInt(key string) int {
	value := os.Getenv(key)
	if value == "" {
		return 0
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}

func envFloat(key string) float64 {
	value := os.Getenv(key)
	if value == "" {
		return 0
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return f
}
