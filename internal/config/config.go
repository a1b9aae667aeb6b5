// README: Config loader with env defaults for HTTP, Gemini, prompt template, logging and tracing.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// ErrMissingAPIKey is returned by Load when GEMINI_API_KEY is not set.
// The pipeline is unusable without it, so callers treat it as fatal at startup.
var ErrMissingAPIKey = errors.New("environment variable GEMINI_API_KEY is required")

type LogConfig struct {
	Level  string
	Format string
	File   string
}

type Config struct {
	HTTP struct {
		Addr string
	}
	AI struct {
		GeminiKey   string
		GeminiModel string
		// PromptTemplate is an optional YAML file overriding the built-in prompt template.
		PromptTemplate string
	}
	Log     LogConfig
	Tracing struct {
		OTLPEndpoint string
		ServiceName  string
	}
}

// Load reads .env (when present) and then the process environment.
func Load() (Config, error) {
	// A missing .env is normal in containers; real env vars always win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	cfg.HTTP.Addr = envOrDefault("WANDERPLAN_HTTP_ADDR", ":8080")
	// Empty means the provider's default model.
	cfg.AI.GeminiModel = envOrDefault("WANDERPLAN_GEMINI_MODEL", "")
	cfg.AI.PromptTemplate = envOrDefault("WANDERPLAN_PROMPT_TEMPLATE", "")
	cfg.Log.Level = envOrDefault("WANDERPLAN_LOG_LEVEL", "info")
	cfg.Log.Format = envOrDefault("WANDERPLAN_LOG_FORMAT", "json")
	cfg.Log.File = envOrDefault("WANDERPLAN_LOG_FILE", "")
	cfg.Tracing.OTLPEndpoint = envOrDefault("WANDERPLAN_OTLP_ENDPOINT", "")
	cfg.Tracing.ServiceName = envOrDefault("WANDERPLAN_SERVICE_NAME", "wanderplan-api")

	key, err := envOrError("GEMINI_API_KEY", ErrMissingAPIKey)
	if err != nil {
		return Config{}, err
	}
	cfg.AI.GeminiKey = key
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envOrError(key string, missing error) (string, error) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v, nil
	}
	return "", missing
}
