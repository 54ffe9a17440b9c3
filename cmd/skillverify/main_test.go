package main

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillsence/skillverify/internal/config"
	"github.com/skillsence/skillverify/internal/db"
	"github.com/skillsence/skillverify/internal/llm"
	"github.com/skillsence/skillverify/internal/types"
)

func TestRootCommand_RegistersSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}
	for _, expected := range []string{"score", "analyze-repo", "interview", "import-linkedin", "status"} {
		assert.True(t, names[expected], "missing subcommand %s", expected)
	}
}

func TestSubcommands_RequireUserFlag(t *testing.T) {
	for _, cmd := range rootCmd.Commands() {
		flag := cmd.Flags().Lookup("user")
		require.NotNil(t, flag, "%s is missing --user", cmd.Name())
	}
}

func TestLoadConfig_NoPathUsesDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.NotNil(t, cfg)
}

type stubLLMClient struct {
	content string
	err     error
	prompt  string
}

func (c *stubLLMClient) GenerateContent(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	c.prompt = prompt
	return c.content, c.err
}

func (c *stubLLMClient) GenerateJSON(context.Context, string, string, llm.ModelTier) (string, error) {
	return "", nil
}

func (c *stubLLMClient) Close() error { return nil }

func TestReadinessSummary_FormatsScoresAndTrimsOutput(t *testing.T) {
	client := &stubLLMClient{content: "  Solid coding base.\n"}
	cards := []db.ScoreCard{
		{ScoreType: types.ScoreCodingSkillIndex, Score: 71},
		{ScoreType: types.ScorePlacementReady, Score: 55},
	}

	summary := readinessSummary(context.Background(), client, cards, true)
	assert.Equal(t, "Solid coding base.", summary)
	assert.Contains(t, client.prompt, "coding 71")
	assert.Contains(t, client.prompt, "placement readiness 55")
	assert.Contains(t, client.prompt, "Mock interview completed: true")
}

func TestReadinessSummary_ModelFailureYieldsEmpty(t *testing.T) {
	client := &stubLLMClient{err: errors.New("model down")}
	assert.Empty(t, readinessSummary(context.Background(), client, nil, false))
}

func TestLLMConfig_ConfiguredModelOverridesBothTiers(t *testing.T) {
	modelCfg := llmConfig(&config.Config{GeminiModel: "gemini-2.5-pro"})
	assert.Equal(t, "gemini-2.5-pro", modelCfg.GetModel(llm.TierLite))
	assert.Equal(t, "gemini-2.5-pro", modelCfg.GetModel(llm.TierStandard))

	defaults := llmConfig(&config.Config{})
	assert.Equal(t, llm.DefaultConfig().GetModel(llm.TierLite), defaults.GetModel(llm.TierLite))
}
