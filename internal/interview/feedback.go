package interview

import (
	"math"
	"strings"

	"github.com/skillsence/skillverify/internal/db"
	"github.com/skillsence/skillverify/internal/types"
)

var fillerWords = []string{"um", "uh", "like", "basically", "actually"}

var sentimentWords = []string{
	"confident", "achieved", "improved", "delivered",
	"led", "built", "optimized", "reduced",
}

// BuildMetrics computes the four dashboard gauges from the session so
// far. Clarity and depth derive from average answer length; an empty
// answer list counts as a single zero-word answer.
func BuildMetrics(answers []types.Answer, questions []types.Question, score int) []types.Metric {
	answered := len(answers)
	total := len(questions)
	if total < 1 {
		total = 1
	}

	avgWords := 0.0
	if len(answers) > 0 {
		sum := 0
		for _, a := range answers {
			sum += a.WordCount
		}
		avgWords = float64(sum) / float64(len(answers))
	}

	clarity := int(30 + avgWords*2)
	if clarity > 100 {
		clarity = 100
	}
	depth := int(20 + avgWords*2.2)
	if depth > 100 {
		depth = 100
	}
	progress := int(math.Round(float64(answered) / float64(total) * 100))

	maxScore := MaxScore(questions)
	if maxScore < 1 {
		maxScore = 1
	}
	scorePct := int(math.Round(float64(score) / float64(maxScore) * 100))

	return []types.Metric{
		{Label: "Interview Score", Value: scorePct, Color: "primary"},
		{Label: "Progress", Value: progress, Color: "accent"},
		{Label: "Clarity", Value: clarity, Color: "primary"},
		{Label: "Depth", Value: depth, Color: "accent"},
	}
}

// BuildFeedback turns the most recent answer into three targeted
// strength or improvement statements covering depth, clarity, and tone.
func BuildFeedback(answer types.Answer) []types.FeedbackItem {
	text := strings.TrimSpace(answer.Answer)
	lowered := strings.ToLower(text)

	filler := 0
	for _, word := range fillerWords {
		filler += strings.Count(lowered, word)
	}
	clarityScore := 30 + answer.WordCount*2 - filler*5
	if clarityScore < 0 {
		clarityScore = 0
	}
	if clarityScore > 100 {
		clarityScore = 100
	}

	sentiment := 0
	for _, word := range sentimentWords {
		if strings.Contains(lowered, word) {
			sentiment++
		}
	}

	feedback := make([]types.FeedbackItem, 0, 3)
	if answer.WordCount < 20 {
		feedback = append(feedback, types.FeedbackItem{Type: "improvement", Text: "Expand with specifics and measurable outcomes."})
	} else {
		feedback = append(feedback, types.FeedbackItem{Type: "strength", Text: "Clear structure with solid context."})
	}
	if clarityScore < 55 {
		feedback = append(feedback, types.FeedbackItem{Type: "improvement", Text: "Slow down and reduce filler words for clarity."})
	} else {
		feedback = append(feedback, types.FeedbackItem{Type: "strength", Text: "Clarity and pacing are strong."})
	}
	if sentiment >= 2 {
		feedback = append(feedback, types.FeedbackItem{Type: "strength", Text: "Confident, action-oriented tone."})
	} else {
		feedback = append(feedback, types.FeedbackItem{Type: "improvement", Text: "Add stronger action verbs to increase impact."})
	}
	return feedback
}

// BuildSummary produces the end-of-interview wrap-up. Both lists are
// always non-empty.
func BuildSummary(answers []types.Answer) types.InterviewSummary {
	if len(answers) == 0 {
		return types.InterviewSummary{
			Strengths:    []string{"Willing to engage in the interview."},
			Improvements: []string{"Provide more detail."},
		}
	}

	sum := 0
	for _, a := range answers {
		sum += a.WordCount
	}
	avgWords := float64(sum) / float64(len(answers))

	var strengths, improvements []string
	if avgWords >= 35 {
		strengths = append(strengths, "Strong detail and context in responses.")
	} else {
		improvements = append(improvements, "Add more depth with examples and metrics.")
	}

	mentionsProject := false
	for _, a := range answers {
		if strings.Contains(strings.ToLower(a.Answer), "project") {
			mentionsProject = true
			break
		}
	}
	if mentionsProject {
		strengths = append(strengths, "Good use of project-based explanations.")
	} else {
		improvements = append(improvements, "Reference a concrete project to back up your claims.")
	}

	if len(strengths) == 0 {
		strengths = append(strengths, "Consistent participation across questions.")
	}
	if len(improvements) == 0 {
		improvements = append(improvements, "Keep answers concise and structured.")
	}
	return types.InterviewSummary{Strengths: strengths, Improvements: improvements}
}

// BuildTips suggests two coaching tips keyed off the difficulty of the
// last answered question.
func BuildTips(answers []types.Answer) []string {
	if len(answers) == 0 {
		return []string{
			"Keep answers structured: context, action, result.",
			"Mention measurable impact when possible.",
		}
	}
	switch answers[len(answers)-1].Difficulty {
	case types.DifficultyHard:
		return []string{
			"Break complex problems into smaller parts.",
			"Highlight trade-offs and constraints.",
		}
	case types.DifficultyMedium:
		return []string{
			"Explain your approach before details.",
			"Mention edge cases you considered.",
		}
	default:
		return []string{
			"Use simple, concise explanations.",
			"Offer a quick example to reinforce the idea.",
		}
	}
}

// StateFor summarizes where a session stands. The reported score is a
// percentage of the maximum available points.
func StateFor(session *db.InterviewSession) types.InterviewState {
	state := types.InterviewState{
		TotalQuestions: len(session.Questions),
		CurrentIndex:   session.CurrentIndex,
	}
	if session.CurrentIndex >= 0 && session.CurrentIndex < len(session.Questions) {
		current := session.Questions[session.CurrentIndex]
		state.CurrentQuestion = current.Question
		state.CurrentDifficulty = string(current.Difficulty)
	}
	if len(session.Questions) > 0 {
		maxScore := MaxScore(session.Questions)
		if maxScore < 1 {
			maxScore = 1
		}
		state.Score = int(math.Round(float64(session.Score) / float64(maxScore) * 100))
	}
	return state
}
