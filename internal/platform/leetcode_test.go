package platform

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/skillsence/skillverify/internal/types"
)

func submissionStats(all, easy, medium, hard int) leetcodeSubmissionStats {
	return leetcodeSubmissionStats{ACSubmissionNum: []leetcodeSubmissionEntry{
		{Difficulty: "All", Count: all},
		{Difficulty: "Easy", Count: easy},
		{Difficulty: "Medium", Count: medium},
		{Difficulty: "Hard", Count: hard},
	}}
}

func TestBuildLeetCodeStats_TakesLargerOfTwoBlocks(t *testing.T) {
	matched := &leetcodeMatchedUser{
		Username:          "asha",
		SubmitStatsGlobal: submissionStats(120, 60, 45, 15),
		SubmitStats:       submissionStats(100, 70, 20, 10),
		Profile:           types.LeetCodeProfile{Ranking: 5000, StarRating: 3},
	}
	stats := buildLeetCodeStats(matched, time.Now())

	assert.Equal(t, types.SolvedCounts{All: 120, Easy: 70, Medium: 45, Hard: 15}, stats.Solved)
	assert.Equal(t, "asha", stats.Username)
	assert.Equal(t, 5000, stats.Profile.Ranking)
	assert.Equal(t, 120, stats.Raw["submitStatsGlobal"]["All"])
	assert.Equal(t, 70, stats.Raw["submitStats"]["Easy"])
}

func TestBuildLeetCodeStats_DerivesMissingAllBucket(t *testing.T) {
	matched := &leetcodeMatchedUser{
		SubmitStatsGlobal: leetcodeSubmissionStats{ACSubmissionNum: []leetcodeSubmissionEntry{
			{Difficulty: "Easy", Count: 40},
			{Difficulty: "Medium", Count: 25},
			{Difficulty: "Hard", Count: 5},
		}},
	}
	stats := buildLeetCodeStats(matched, time.Now())
	assert.Equal(t, 70, stats.Solved.All)
}

func TestBuildLeetCodeStats_EmptyBlocks(t *testing.T) {
	stats := buildLeetCodeStats(&leetcodeMatchedUser{Username: "new"}, time.Now())
	assert.Equal(t, types.SolvedCounts{}, stats.Solved)
}
