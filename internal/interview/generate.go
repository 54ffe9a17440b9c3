package interview

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/skillsence/skillverify/internal/config"
	"github.com/skillsence/skillverify/internal/llm"
	"github.com/skillsence/skillverify/internal/prompts"
	"github.com/skillsence/skillverify/internal/schemas"
	"github.com/skillsence/skillverify/internal/types"
)

// Generator sources interview questions from an LLM. A nil client means
// generation is unavailable and callers fall back to the built-in bank.
type Generator struct {
	client llm.Client
}

// NewGenerator wraps an LLM client as a question generator.
func NewGenerator(client llm.Client) *Generator {
	return &Generator{client: client}
}

// GenerateQuestions asks the model for a tailored technical question
// list. It returns ErrNotConfigured without a client, and a GenerateError
// when the model fails or produces fewer valid questions than requested.
func (g *Generator) GenerateQuestions(ctx context.Context, skills []string, total int) ([]types.Question, error) {
	if g == nil || g.client == nil {
		return nil, llm.ErrNotConfigured
	}

	skillList := "general software engineering"
	if len(skills) > 0 {
		skillList = strings.Join(skills, ", ")
	}

	system, err := prompts.Get("interview.json", "generate_system")
	if err != nil {
		return nil, err
	}
	template, err := prompts.Get("interview.json", "generate_questions")
	if err != nil {
		return nil, err
	}
	prompt := prompts.Format(template, map[string]string{
		"Total":  strconv.Itoa(total),
		"Skills": skillList,
	})

	ctx, cancel := context.WithTimeout(ctx, config.DefaultGenerateTimeout)
	defer cancel()
	raw, err := g.client.GenerateJSON(ctx, system, prompt, llm.TierStandard)
	if err != nil {
		return nil, &GenerateError{Message: "question generation failed", Cause: err}
	}
	return parseGeneratedQuestions(raw, total)
}

// parseGeneratedQuestions validates the model output and normalizes it
// into the requested number of questions.
func parseGeneratedQuestions(raw string, total int) ([]types.Question, error) {
	document := llm.ExtractJSON(raw)
	if err := schemas.Validate(schemas.QuestionList, document); err != nil {
		return nil, &GenerateError{Message: "model returned an invalid question list", Cause: err}
	}

	var parsed []struct {
		Question   string   `json:"question"`
		Difficulty string   `json:"difficulty"`
		Tags       []string `json:"tags"`
	}
	if err := json.Unmarshal([]byte(document), &parsed); err != nil {
		return nil, &GenerateError{Message: "model returned an unparseable question list", Cause: err}
	}

	questions := make([]types.Question, 0, len(parsed))
	for _, item := range parsed {
		question := strings.TrimSpace(item.Question)
		difficulty := types.Difficulty(strings.ToLower(strings.TrimSpace(item.Difficulty)))
		if question == "" {
			continue
		}
		switch difficulty {
		case types.DifficultyEasy, types.DifficultyMedium, types.DifficultyHard:
		default:
			continue
		}
		questions = append(questions, types.Question{
			ID:         "ai-" + strconv.Itoa(len(questions)+1),
			Question:   question,
			Difficulty: difficulty,
			Tags:       item.Tags,
		})
	}

	if len(questions) < total {
		return nil, &GenerateError{Message: "model returned too few usable questions"}
	}
	return questions[:total], nil
}

// GenerateFollowUp asks the model for one short follow-up to the given
// answer. It returns nil with no error when the model declines or is not
// configured; the caller applies its own heuristic fallback.
func (g *Generator) GenerateFollowUp(ctx context.Context, question, answer string) (*types.Question, error) {
	if g == nil || g.client == nil {
		return nil, nil
	}

	system, err := prompts.Get("interview.json", "followup_system")
	if err != nil {
		return nil, err
	}
	template, err := prompts.Get("interview.json", "followup_prompt")
	if err != nil {
		return nil, err
	}
	prompt := prompts.Format(template, map[string]string{
		"Question": question,
		"Answer":   answer,
	})

	ctx, cancel := context.WithTimeout(ctx, config.DefaultGenerateTimeout)
	defer cancel()
	raw, err := g.client.GenerateJSON(ctx, system, prompt, llm.TierLite)
	if err != nil {
		return nil, nil
	}

	document := llm.ExtractJSON(raw)
	if err := schemas.Validate(schemas.FollowUp, document); err != nil {
		return nil, nil
	}
	var parsed struct {
		Question   string `json:"question"`
		Difficulty string `json:"difficulty"`
	}
	if err := json.Unmarshal([]byte(document), &parsed); err != nil {
		return nil, nil
	}

	text := strings.TrimSpace(parsed.Question)
	difficulty := types.Difficulty(strings.ToLower(strings.TrimSpace(parsed.Difficulty)))
	if text == "" || (difficulty != types.DifficultyEasy && difficulty != types.DifficultyMedium) {
		return nil, nil
	}
	return &types.Question{
		Question:   text,
		Difficulty: difficulty,
		Tags:       []string{"followup"},
	}, nil
}
