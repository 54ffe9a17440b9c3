package interview

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillsence/skillverify/internal/llm"
	"github.com/skillsence/skillverify/internal/types"
)

func TestParseGeneratedQuestions_Valid(t *testing.T) {
	raw := `[
		{"question": "What is an index?", "difficulty": "easy", "tags": ["sql"]},
		{"question": "Explain sharding.", "difficulty": "hard"},
		{"question": "Describe caching.", "difficulty": "medium", "tags": []}
	]`
	questions, err := parseGeneratedQuestions(raw, 3)
	require.NoError(t, err)
	require.Len(t, questions, 3)

	assert.Equal(t, "ai-1", questions[0].ID)
	assert.Equal(t, types.DifficultyEasy, questions[0].Difficulty)
	assert.Equal(t, types.DifficultyHard, questions[1].Difficulty)
}

func TestParseGeneratedQuestions_TrimsExtra(t *testing.T) {
	raw := `[
		{"question": "one", "difficulty": "easy"},
		{"question": "two", "difficulty": "easy"},
		{"question": "three", "difficulty": "easy"}
	]`
	questions, err := parseGeneratedQuestions(raw, 2)
	require.NoError(t, err)
	assert.Len(t, questions, 2)
}

func TestParseGeneratedQuestions_TooFew(t *testing.T) {
	raw := `[{"question": "only one", "difficulty": "easy"}]`
	_, err := parseGeneratedQuestions(raw, 3)
	require.Error(t, err)

	var genErr *GenerateError
	assert.ErrorAs(t, err, &genErr)
}

func TestParseGeneratedQuestions_NotAList(t *testing.T) {
	_, err := parseGeneratedQuestions(`{"question": "hi", "difficulty": "easy"}`, 1)
	assert.Error(t, err)
}

func TestParseGeneratedQuestions_StripsCodeFence(t *testing.T) {
	raw := "```json\n[{\"question\": \"one\", \"difficulty\": \"easy\"}]\n```"
	questions, err := parseGeneratedQuestions(raw, 1)
	require.NoError(t, err)
	assert.Len(t, questions, 1)
}

func TestGenerator_GenerateQuestionsWithoutClient(t *testing.T) {
	var g *Generator
	_, err := g.GenerateQuestions(context.Background(), nil, 7)
	assert.ErrorIs(t, err, llm.ErrNotConfigured)

	_, err = NewGenerator(nil).GenerateQuestions(context.Background(), nil, 7)
	assert.ErrorIs(t, err, llm.ErrNotConfigured)
}

func TestGenerator_GenerateFollowUpWithoutClient(t *testing.T) {
	var g *Generator
	followUp, err := g.GenerateFollowUp(context.Background(), "q", "a")
	require.NoError(t, err)
	assert.Nil(t, followUp)
}

type recordingClient struct {
	response    string
	err         error
	tier        llm.ModelTier
	hadDeadline bool
}

func (c *recordingClient) GenerateContent(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	return c.response, c.err
}

func (c *recordingClient) GenerateJSON(ctx context.Context, _, _ string, tier llm.ModelTier) (string, error) {
	_, c.hadDeadline = ctx.Deadline()
	c.tier = tier
	return c.response, c.err
}

func (c *recordingClient) Close() error { return nil }

func TestGenerator_GenerateQuestionsBoundsTheModelCall(t *testing.T) {
	client := &recordingClient{response: `[
		{"question": "one", "difficulty": "easy"},
		{"question": "two", "difficulty": "medium"}
	]`}
	questions, err := NewGenerator(client).GenerateQuestions(context.Background(), []string{"sql"}, 2)
	require.NoError(t, err)
	assert.Len(t, questions, 2)
	assert.Equal(t, llm.TierStandard, client.tier)
	assert.True(t, client.hadDeadline)
}

func TestGenerator_GenerateFollowUpBoundsTheModelCall(t *testing.T) {
	client := &recordingClient{response: `{"question": "What broke first?", "difficulty": "easy"}`}
	followUp, err := NewGenerator(client).GenerateFollowUp(context.Background(), "q", "a")
	require.NoError(t, err)
	require.NotNil(t, followUp)
	assert.Equal(t, llm.TierLite, client.tier)
	assert.True(t, client.hadDeadline)
}
