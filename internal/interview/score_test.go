package interview

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skillsence/skillverify/internal/types"
)

func TestScoreAnswer_MinimumOnePoint(t *testing.T) {
	assert.Equal(t, 2, ScoreAnswer("no", types.DifficultyEasy))
	assert.GreaterOrEqual(t, ScoreAnswer("", types.DifficultyEasy), 1)
}

func TestScoreAnswer_CapsAtDifficultyWeight(t *testing.T) {
	// 40+ words and 4+ keywords saturate both quality factors.
	long := "We exposed an api backed by a database with a cache layer to optimize latency " +
		"and added an index plus security and auth checks " +
		"one two three four five six seven eight nine ten eleven twelve thirteen fourteen fifteen sixteen"
	assert.Equal(t, 5, ScoreAnswer(long, types.DifficultyEasy))
	assert.Equal(t, 8, ScoreAnswer(long, types.DifficultyMedium))
	assert.Equal(t, 12, ScoreAnswer(long, types.DifficultyHard))
}

func TestScoreAnswer_UnknownDifficultyUsesDefaultWeight(t *testing.T) {
	short := "a short answer with no technical terms at all"
	score := ScoreAnswer(short, types.Difficulty("summary"))
	assert.GreaterOrEqual(t, score, 1)
	assert.LessOrEqual(t, score, defaultWeight)
}

func TestScoreAnswer_KeywordsRaiseQuality(t *testing.T) {
	plain := "I would look at the problem and try a few ideas until something works out"
	technical := "I would check the database index and the cache to optimize the api latency"
	assert.Greater(t, ScoreAnswer(technical, types.DifficultyMedium), ScoreAnswer(plain, types.DifficultyMedium))
}

func TestMaxScore_SumsDifficultyWeights(t *testing.T) {
	questions := []types.Question{
		{Difficulty: types.DifficultyEasy},
		{Difficulty: types.DifficultyMedium},
		{Difficulty: types.DifficultyHard},
		{Difficulty: types.Difficulty("summary")},
	}
	assert.Equal(t, 5+8+12+6, MaxScore(questions))
	assert.Equal(t, 0, MaxScore(nil))
}
