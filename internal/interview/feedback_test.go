package interview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillsence/skillverify/internal/db"
	"github.com/skillsence/skillverify/internal/types"
)

func feedbackTexts(items []types.FeedbackItem, kind string) []string {
	var texts []string
	for _, item := range items {
		if item.Type == kind {
			texts = append(texts, item.Text)
		}
	}
	return texts
}

func TestBuildMetrics_EmptySession(t *testing.T) {
	questions := []types.Question{
		{Difficulty: types.DifficultyEasy},
		{Difficulty: types.DifficultyMedium},
	}
	metrics := BuildMetrics(nil, questions, 0)
	require.Len(t, metrics, 4)

	assert.Equal(t, "Interview Score", metrics[0].Label)
	assert.Equal(t, 0, metrics[0].Value)
	assert.Equal(t, "Progress", metrics[1].Label)
	assert.Equal(t, 0, metrics[1].Value)
	assert.Equal(t, "Clarity", metrics[2].Label)
	assert.Equal(t, 30, metrics[2].Value)
	assert.Equal(t, "Depth", metrics[3].Label)
	assert.Equal(t, 20, metrics[3].Value)
}

func TestBuildMetrics_MidSession(t *testing.T) {
	questions := []types.Question{
		{Difficulty: types.DifficultyEasy},
		{Difficulty: types.DifficultyMedium},
		{Difficulty: types.DifficultyHard},
		{Difficulty: types.DifficultyMedium},
	}
	answers := []types.Answer{
		{WordCount: 30, Points: 4},
		{WordCount: 20, Points: 5},
	}
	// max score 5+8+12+8 = 33, earned 9.
	metrics := BuildMetrics(answers, questions, 9)
	require.Len(t, metrics, 4)

	assert.Equal(t, 27, metrics[0].Value)
	assert.Equal(t, 50, metrics[1].Value)
	assert.Equal(t, 80, metrics[2].Value)
	assert.Equal(t, 75, metrics[3].Value)
}

func TestBuildMetrics_ClarityAndDepthCapAtHundred(t *testing.T) {
	answers := []types.Answer{{WordCount: 200, Points: 5}}
	questions := []types.Question{{Difficulty: types.DifficultyEasy}}
	metrics := BuildMetrics(answers, questions, 5)
	assert.Equal(t, 100, metrics[2].Value)
	assert.Equal(t, 100, metrics[3].Value)
}

func TestBuildFeedback_ShortHesitantAnswer(t *testing.T) {
	answer := types.Answer{Answer: "um well basically it just works", WordCount: 6}
	items := BuildFeedback(answer)
	require.Len(t, items, 3)

	improvements := feedbackTexts(items, "improvement")
	assert.Contains(t, improvements, "Expand with specifics and measurable outcomes.")
	assert.Contains(t, improvements, "Slow down and reduce filler words for clarity.")
	assert.Contains(t, improvements, "Add stronger action verbs to increase impact.")
}

func TestBuildFeedback_StrongAnswer(t *testing.T) {
	text := "I built the ingestion service and optimized the hot path, which improved " +
		"throughput by forty percent; I am confident the design held up under " +
		"production load because we measured it for three months afterwards"
	answer := types.Answer{Answer: text, WordCount: len(strings.Fields(text))}
	items := BuildFeedback(answer)
	require.Len(t, items, 3)

	strengths := feedbackTexts(items, "strength")
	assert.Contains(t, strengths, "Clear structure with solid context.")
	assert.Contains(t, strengths, "Clarity and pacing are strong.")
	assert.Contains(t, strengths, "Confident, action-oriented tone.")
}

func TestBuildSummary_NoAnswers(t *testing.T) {
	summary := BuildSummary(nil)
	assert.Equal(t, []string{"Willing to engage in the interview."}, summary.Strengths)
	assert.Equal(t, []string{"Provide more detail."}, summary.Improvements)
}

func TestBuildSummary_DetailedProjectAnswers(t *testing.T) {
	answers := []types.Answer{
		{Answer: "In my final year project I designed the schema", WordCount: 40},
		{Answer: "We shipped it to real users", WordCount: 36},
	}
	summary := BuildSummary(answers)
	assert.Contains(t, summary.Strengths, "Strong detail and context in responses.")
	assert.Contains(t, summary.Strengths, "Good use of project-based explanations.")
	assert.Equal(t, []string{"Keep answers concise and structured."}, summary.Improvements)
}

func TestBuildSummary_ThinAnswers(t *testing.T) {
	answers := []types.Answer{{Answer: "it depends", WordCount: 2}}
	summary := BuildSummary(answers)
	assert.Equal(t, []string{"Consistent participation across questions."}, summary.Strengths)
	assert.Contains(t, summary.Improvements, "Add more depth with examples and metrics.")
	assert.Contains(t, summary.Improvements, "Reference a concrete project to back up your claims.")
}

func TestBuildTips_KeyedOffLastDifficulty(t *testing.T) {
	assert.Equal(t,
		[]string{"Keep answers structured: context, action, result.", "Mention measurable impact when possible."},
		BuildTips(nil))
	assert.Equal(t,
		[]string{"Break complex problems into smaller parts.", "Highlight trade-offs and constraints."},
		BuildTips([]types.Answer{{Difficulty: types.DifficultyHard}}))
	assert.Equal(t,
		[]string{"Explain your approach before details.", "Mention edge cases you considered."},
		BuildTips([]types.Answer{{Difficulty: types.DifficultyMedium}}))
	assert.Equal(t,
		[]string{"Use simple, concise explanations.", "Offer a quick example to reinforce the idea."},
		BuildTips([]types.Answer{{Difficulty: types.DifficultyEasy}}))
}

func TestStateFor_ActiveSession(t *testing.T) {
	session := &db.InterviewSession{
		Questions: []types.Question{
			{Question: "first", Difficulty: types.DifficultyEasy},
			{Question: "second", Difficulty: types.DifficultyHard},
		},
		CurrentIndex: 1,
		Score:        10,
	}
	state := StateFor(session)
	assert.Equal(t, 2, state.TotalQuestions)
	assert.Equal(t, 1, state.CurrentIndex)
	assert.Equal(t, "second", state.CurrentQuestion)
	assert.Equal(t, "hard", state.CurrentDifficulty)
	// 10 of 17 points.
	assert.Equal(t, 59, state.Score)
}

func TestStateFor_ExhaustedQuestions(t *testing.T) {
	session := &db.InterviewSession{
		Questions:    []types.Question{{Question: "only", Difficulty: types.DifficultyEasy}},
		CurrentIndex: 1,
		Score:        5,
	}
	state := StateFor(session)
	assert.Empty(t, state.CurrentQuestion)
	assert.Equal(t, 100, state.Score)
}

func TestStateFor_NoQuestions(t *testing.T) {
	state := StateFor(&db.InterviewSession{})
	assert.Equal(t, 0, state.TotalQuestions)
	assert.Equal(t, 0, state.Score)
}
