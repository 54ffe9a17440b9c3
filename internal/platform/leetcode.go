package platform

import (
	"context"
	"time"

	"github.com/skillsence/skillverify/internal/fetch"
	"github.com/skillsence/skillverify/internal/types"
)

const leetcodeGraphQLURL = "https://leetcode.com/graphql"

// leetcodeStatsQuery pulls solve counts from both the global and the legacy
// stat blocks; the two disagree for some accounts.
const leetcodeStatsQuery = `
query userStats($username: String!) {
  matchedUser(username: $username) {
    username
    submitStatsGlobal {
      acSubmissionNum {
        difficulty
        count
        submissions
      }
    }
    submitStats {
      acSubmissionNum {
        difficulty
        count
        submissions
      }
    }
    profile {
      ranking
      reputation
      starRating
    }
  }
}`

type leetcodeSubmissionEntry struct {
	Difficulty  string `json:"difficulty"`
	Count       int    `json:"count"`
	Submissions int    `json:"submissions"`
}

type leetcodeSubmissionStats struct {
	ACSubmissionNum []leetcodeSubmissionEntry `json:"acSubmissionNum"`
}

type leetcodeMatchedUser struct {
	Username          string                  `json:"username"`
	SubmitStatsGlobal leetcodeSubmissionStats `json:"submitStatsGlobal"`
	SubmitStats       leetcodeSubmissionStats `json:"submitStats"`
	Profile           types.LeetCodeProfile   `json:"profile"`
}

type leetcodeResponse struct {
	Data struct {
		MatchedUser *leetcodeMatchedUser `json:"matchedUser"`
	} `json:"data"`
}

// FetchLeetCodeStats retrieves a user's solve counts over the public
// GraphQL endpoint. An unknown username is reported as an Error, not a
// transport failure.
func FetchLeetCodeStats(ctx context.Context, username string, timeout time.Duration) (*types.LeetCodeStats, error) {
	payload := map[string]any{
		"query":     leetcodeStatsQuery,
		"variables": map[string]string{"username": username},
	}
	opts := &fetch.Options{Timeout: timeout, UserAgent: fetch.DefaultUserAgent}

	var resp leetcodeResponse
	if err := fetch.JSON(ctx, "POST", leetcodeGraphQLURL, payload, &resp, opts); err != nil {
		return nil, &Error{Platform: "leetcode", Username: username, Message: "stats request failed", Cause: err}
	}
	if resp.Data.MatchedUser == nil {
		return nil, &Error{Platform: "leetcode", Username: username, Message: "User not found"}
	}
	return buildLeetCodeStats(resp.Data.MatchedUser, time.Now()), nil
}

// buildLeetCodeStats reconciles the two stat blocks by taking the larger
// count per difficulty, then derives the total when the All bucket is
// missing.
func buildLeetCodeStats(matched *leetcodeMatchedUser, now time.Time) *types.LeetCodeStats {
	totalsGlobal := countsByDifficulty(matched.SubmitStatsGlobal)
	totalsLocal := countsByDifficulty(matched.SubmitStats)

	totals := make(map[string]int, 4)
	for _, difficulty := range []string{"All", "Easy", "Medium", "Hard"} {
		global := totalsGlobal[difficulty]
		local := totalsLocal[difficulty]
		if local > global {
			totals[difficulty] = local
		} else {
			totals[difficulty] = global
		}
	}
	if totals["All"] == 0 {
		totals["All"] = totals["Easy"] + totals["Medium"] + totals["Hard"]
	}

	return &types.LeetCodeStats{
		Username: matched.Username,
		Solved: types.SolvedCounts{
			All:    totals["All"],
			Easy:   totals["Easy"],
			Medium: totals["Medium"],
			Hard:   totals["Hard"],
		},
		Raw: map[string]map[string]int{
			"submitStatsGlobal": totalsGlobal,
			"submitStats":       totalsLocal,
		},
		Profile:   matched.Profile,
		FetchedAt: now.Format(time.RFC3339),
	}
}

func countsByDifficulty(stats leetcodeSubmissionStats) map[string]int {
	counts := make(map[string]int, len(stats.ACSubmissionNum))
	for _, entry := range stats.ACSubmissionNum {
		counts[entry.Difficulty] = entry.Count
	}
	return counts
}
