package interview

import (
	"math"
	"strings"

	"github.com/skillsence/skillverify/internal/types"
)

// difficultyWeight is the maximum points an answer at each difficulty can
// earn. Unknown difficulties fall back to defaultWeight.
var difficultyWeight = map[types.Difficulty]int{
	types.DifficultyEasy:   5,
	types.DifficultyMedium: 8,
	types.DifficultyHard:   12,
}

const defaultWeight = 6

// answerKeywords are terms that signal technical substance in an answer.
var answerKeywords = []string{
	"api", "db", "database", "cache", "optimize",
	"complexity", "latency", "index", "security", "auth",
}

// ScoreAnswer rates one answer against its question difficulty. Quality
// blends answer length and keyword density; every answer earns at least
// one point.
func ScoreAnswer(text string, difficulty types.Difficulty) int {
	weight, ok := difficultyWeight[difficulty]
	if !ok {
		weight = defaultWeight
	}

	wordCount := len(strings.Fields(text))
	lengthFactor := math.Min(float64(wordCount)/40, 1.0)

	lowered := strings.ToLower(text)
	hits := 0
	for _, kw := range answerKeywords {
		if strings.Contains(lowered, kw) {
			hits++
		}
	}
	keywordFactor := math.Min(float64(hits)/4, 1.0)

	quality := 0.5*lengthFactor + 0.5*keywordFactor
	score := int(math.Round(float64(weight) * (0.4 + 0.6*quality)))
	if score < 1 {
		score = 1
	}
	if score > weight {
		score = weight
	}
	return score
}

// MaxScore is the total points available across a question list.
func MaxScore(questions []types.Question) int {
	total := 0
	for _, q := range questions {
		weight, ok := difficultyWeight[q.Difficulty]
		if !ok {
			weight = defaultWeight
		}
		total += weight
	}
	return total
}
