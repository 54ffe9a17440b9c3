package authenticity

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/skillsence/skillverify/internal/config"
	"github.com/skillsence/skillverify/internal/llm"
	"github.com/skillsence/skillverify/internal/prompts"
	"github.com/skillsence/skillverify/internal/schemas"
	"github.com/skillsence/skillverify/internal/types"
)

const rationaleMaxChars = 200

// ChunkJudge scores one chunk of file text for AI-authorship likelihood.
type ChunkJudge interface {
	JudgeChunk(ctx context.Context, path, chunk string, chunkIndex, totalChunks int) (*types.ChunkVerdict, error)
}

// LLMJudge implements ChunkJudge over an LLM client.
type LLMJudge struct {
	client llm.Client
}

// NewLLMJudge wraps an LLM client as a chunk judge.
func NewLLMJudge(client llm.Client) *LLMJudge {
	return &LLMJudge{client: client}
}

// JudgeChunk asks the model for a verdict and validates the JSON it
// returns before trusting it.
func (j *LLMJudge) JudgeChunk(ctx context.Context, path, chunk string, chunkIndex, totalChunks int) (*types.ChunkVerdict, error) {
	system, err := prompts.Get("authenticity.json", "judge_system")
	if err != nil {
		return nil, err
	}
	template, err := prompts.Get("authenticity.json", "judge_chunk")
	if err != nil {
		return nil, err
	}
	prompt := prompts.Format(template, map[string]string{
		"Path":        path,
		"ChunkNumber": strconv.Itoa(chunkIndex + 1),
		"TotalChunks": strconv.Itoa(totalChunks),
		"Chunk":       chunk,
	})

	ctx, cancel := context.WithTimeout(ctx, config.DefaultJudgeTimeout)
	defer cancel()
	raw, err := j.client.GenerateJSON(ctx, system, prompt, llm.TierStandard)
	if err != nil {
		return nil, &FileError{Path: path, Message: "AI analysis failed", Cause: err}
	}
	return parseVerdict(path, raw)
}

// parseVerdict validates and normalizes one judge response. Scores clamp
// to [0,100] and rationales truncate to a display-safe length.
func parseVerdict(path, raw string) (*types.ChunkVerdict, error) {
	document := llm.ExtractJSON(raw)
	if err := schemas.Validate(schemas.ChunkVerdict, document); err != nil {
		return nil, &FileError{Path: path, Message: "judge returned invalid verdict", Cause: err}
	}

	var parsed struct {
		Score     float64 `json:"score"`
		Label     string  `json:"label"`
		Rationale string  `json:"rationale"`
	}
	if err := json.Unmarshal([]byte(document), &parsed); err != nil {
		return nil, &FileError{Path: path, Message: "judge returned unparseable verdict", Cause: err}
	}

	score := int(parsed.Score)
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	rationale := parsed.Rationale
	if len(rationale) > rationaleMaxChars {
		rationale = rationale[:rationaleMaxChars]
	}
	verdict := &types.ChunkVerdict{
		Score:     score,
		Label:     types.VerdictLabel(parsed.Label),
		Rationale: rationale,
	}
	return verdict, nil
}

var _ ChunkJudge = (*LLMJudge)(nil)
