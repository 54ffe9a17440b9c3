package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/skillsence/skillverify/internal/config"
	"github.com/skillsence/skillverify/internal/db"
	"github.com/skillsence/skillverify/internal/llm"
	"github.com/skillsence/skillverify/internal/types"
)

// userLocks serializes read-modify-persist passes per user within this
// process.
var userLocks = db.NewUserLocks()

// loadConfig resolves the effective configuration: an explicit file when
// given, environment plus defaults otherwise.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.Default(), nil
}

// llmConfig builds the model configuration, honoring an explicitly
// configured model identifier across both tiers.
func llmConfig(cfg *config.Config) *llm.Config {
	modelCfg := llm.DefaultConfig()
	if cfg.GeminiModel != "" {
		modelCfg = modelCfg.
			WithModel(llm.TierLite, cfg.GeminiModel).
			WithModel(llm.TierStandard, cfg.GeminiModel)
	}
	return modelCfg
}

// connectAndLoadUser opens the database and resolves the target student.
// The caller owns closing the returned handle.
func connectAndLoadUser(ctx context.Context, cfg *config.Config, username string) (*db.DB, *types.UserProfile, error) {
	if cfg.DatabaseURL == "" {
		return nil, nil, fmt.Errorf("DATABASE_URL is required (set the environment variable or database_url in the config file)")
	}
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}

	user, err := database.GetUserByUsername(ctx, username)
	if err != nil {
		database.Close()
		return nil, nil, err
	}
	return database, user, nil
}

// printJSON writes a value as indented JSON to stdout.
func printJSON(value any) error {
	encoded, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, _ = fmt.Fprintln(os.Stdout, string(encoded))
	return nil
}
