package authenticity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillsence/skillverify/internal/llm"
	"github.com/skillsence/skillverify/internal/types"
)

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

func TestJudgeChunk_BoundsTheModelCall(t *testing.T) {
	client := &recordingClient{response: `{"score": 64, "label": "likely", "rationale": "templated"}`}
	judge := NewLLMJudge(client)

	verdict, err := judge.JudgeChunk(context.Background(), "main.go", "package main", 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 64, verdict.Score)
	assert.Equal(t, llm.TierStandard, client.tier)
	assert.True(t, client.hadDeadline)
}

func TestParseVerdict_ValidDocument(t *testing.T) {
	verdict, err := parseVerdict("main.go", `{"score": 72, "label": "likely", "rationale": "uniform style"}`)
	require.NoError(t, err)
	assert.Equal(t, 72, verdict.Score)
	assert.Equal(t, types.VerdictLikely, verdict.Label)
	assert.Equal(t, "uniform style", verdict.Rationale)
}

func TestParseVerdict_StripsCodeFences(t *testing.T) {
	raw := "```json\n{\"score\": 10, \"label\": \"unlikely\"}\n```"
	verdict, err := parseVerdict("main.go", raw)
	require.NoError(t, err)
	assert.Equal(t, 10, verdict.Score)
}

func TestParseVerdict_RejectsUnknownLabel(t *testing.T) {
	_, err := parseVerdict("main.go", `{"score": 50, "label": "maybe"}`)
	require.Error(t, err)
	var fileErr *FileError
	require.ErrorAs(t, err, &fileErr)
	assert.Equal(t, "main.go", fileErr.Path)
}

func TestParseVerdict_RejectsMissingScore(t *testing.T) {
	_, err := parseVerdict("main.go", `{"label": "likely"}`)
	assert.Error(t, err)
}

func TestParseVerdict_TruncatesLongRationale(t *testing.T) {
	long := make([]byte, 400)
	for i := range long {
		long[i] = 'x'
	}
	verdict, err := parseVerdict("main.go", `{"score": 5, "label": "unlikely", "rationale": "`+string(long)+`"}`)
	require.NoError(t, err)
	assert.Len(t, verdict.Rationale, 200)
}
