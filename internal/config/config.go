// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

// Defaults for knobs that are rarely overridden.
const (
	// DefaultChunkChars is the per-chunk character budget for authenticity
	// analysis.
	DefaultChunkChars = 6000
	// DefaultCacheMaxChars caps the stored content of cached repo file
	// snapshots. Zero or negative disables truncation.
	DefaultCacheMaxChars = 20000
	// DefaultPlatformTimeout bounds one external platform API call.
	DefaultPlatformTimeout = 8 * time.Second
	// DefaultJudgeTimeout bounds one AI judge call.
	DefaultJudgeTimeout = 20 * time.Second
	// DefaultGenerateTimeout bounds one AI question-generation call.
	DefaultGenerateTimeout = 15 * time.Second
	// DefaultFetchDelay is the fixed pause between the two platform calls.
	DefaultFetchDelay = 400 * time.Millisecond
	// DefaultFreshness is how long cached platform stats stay fresh.
	DefaultFreshness = 12 * time.Hour
)

// Config is the engine configuration. All fields are optional in the JSON
// file; missing values fall back to environment variables and defaults.
type Config struct {
	DatabaseURL string `json:"database_url,omitempty" validate:"omitempty,uri"`

	// GeminiAPIKey enables the AI judge, question generation, and follow-ups.
	// Absence is surfaced as a distinct not-configured condition, never a
	// silent fallback.
	GeminiAPIKey string `json:"gemini_api_key,omitempty"`
	GeminiModel  string `json:"gemini_model,omitempty"`

	// GitHubToken is optional; it raises the code-hosting API rate limits.
	GitHubToken string `json:"github_token,omitempty"`

	ChunkChars    int  `json:"chunk_chars,omitempty" validate:"omitempty,gt=0"`
	CacheEnabled  bool `json:"cache_enabled"`
	CacheMaxChars int  `json:"cache_max_chars,omitempty"`

	// AnalyzeConcurrency bounds parallel file analysis per repository.
	AnalyzeConcurrency int `json:"analyze_concurrency,omitempty" validate:"omitempty,gte=1,lte=16"`

	Verbose bool `json:"verbose,omitempty"`
}

var validate = validator.New()

// Default returns the configuration used when no file is given: environment
// variables plus defaults.
func Default() *Config {
	cfg := &Config{
		CacheEnabled:       envBool("AI_REPO_CACHE_ENABLED", true),
		ChunkChars:         envInt("AI_REPO_CHUNK_CHARS", DefaultChunkChars),
		CacheMaxChars:      envInt("AI_REPO_CACHE_CHARS", DefaultCacheMaxChars),
		AnalyzeConcurrency: 4,
	}
	cfg.applyEnv()
	return cfg
}

// Load reads configuration from a JSON file, then applies environment
// variables for unset fields.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := &Config{CacheEnabled: true, AnalyzeConcurrency: 4}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	cfg.applyEnv()
	if cfg.ChunkChars <= 0 {
		cfg.ChunkChars = DefaultChunkChars
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// JudgeConfigured reports whether the AI judge credential is present.
func (c *Config) JudgeConfigured() bool {
	return c.GeminiAPIKey != ""
}

func (c *Config) applyEnv() {
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if c.GeminiAPIKey == "" {
		c.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.GeminiModel == "" {
		c.GeminiModel = os.Getenv("GEMINI_MODEL")
	}
	if c.GitHubToken == "" {
		c.GitHubToken = os.Getenv("GITHUB_TOKEN")
	}
}

func envBool(key string, fallback bool) bool {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	switch raw {
	case "1", "true", "yes", "TRUE", "True":
		return true
	case "0", "false", "no", "FALSE", "False":
		return false
	}
	return fallback
}

func envInt(key string, fallback int) int {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
