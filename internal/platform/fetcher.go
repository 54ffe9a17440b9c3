package platform

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/skillsence/skillverify/internal/config"
	"github.com/skillsence/skillverify/internal/types"
)

// StatsStore is the subset of the store the fetcher writes through.
type StatsStore interface {
	SaveStats(ctx context.Context, userID uuid.UUID, github types.GitHubBlob, leetcode types.LeetCodeBlob, linkedin types.LinkedInStats, analyzedAt time.Time) error
}

// Result is the outcome of one analysis pass over a student's platforms.
type Result struct {
	GitHub    types.GitHubBlob
	LeetCode  types.LeetCodeBlob
	LinkedIn  types.LinkedInStats
	FromCache bool
}

// Fetcher runs the platform analysis pipeline for student profiles.
type Fetcher struct {
	store       StatsStore
	githubToken string
	timeout     time.Duration
	delay       time.Duration
	freshness   time.Duration

	// test seams
	now           func() time.Time
	sleep         func(time.Duration)
	fetchGitHub   func(ctx context.Context, username, token string, timeout time.Duration) (*types.GitHubStats, error)
	fetchLeetCode func(ctx context.Context, username string, timeout time.Duration) (*types.LeetCodeStats, error)
}

// NewFetcher builds a Fetcher from configuration.
func NewFetcher(store StatsStore, cfg *config.Config) *Fetcher {
	return &Fetcher{
		store:         store,
		githubToken:   cfg.GitHubToken,
		timeout:       config.DefaultPlatformTimeout,
		delay:         config.DefaultFetchDelay,
		freshness:     config.DefaultFreshness,
		now:           time.Now,
		sleep:         time.Sleep,
		fetchGitHub:   FetchGitHubStats,
		fetchLeetCode: FetchLeetCodeStats,
	}
}

// Analyze refreshes the cached platform stats for a student. Non-students
// are ignored. Fresh stats are returned untouched unless force is set. A
// platform failure never aborts the pass; it is recorded in that platform's
// blob and the other platforms proceed.
//
// The user's in-memory blobs are updated alongside the store so callers can
// recompute scores without a reload.
func (f *Fetcher) Analyze(ctx context.Context, user *types.UserProfile, force bool) (*Result, error) {
	if user.Role != types.RoleStudent {
		return nil, nil
	}

	if !force && user.LastAnalyzedAt != nil && f.now().Sub(*user.LastAnalyzedAt) < f.freshness {
		return &Result{
			GitHub:    user.GitHubStats,
			LeetCode:  user.LeetCodeStats,
			LinkedIn:  user.LinkedInStats,
			FromCache: true,
		}, nil
	}

	githubUsername := ExtractUsername(user.GitHubLink)
	leetcodeUsername := ExtractUsername(user.LeetCodeLink)

	github := types.GitHubBlob{State: types.StatAbsent}
	if githubUsername != "" {
		stats, err := f.fetchGitHub(ctx, githubUsername, f.githubToken, f.timeout)
		if err != nil {
			github = types.FailedGitHub(err)
		} else {
			github = types.GitHubBlob{State: types.StatPresent, Stats: stats}
		}
	}

	f.sleep(f.delay)

	leetcode := types.LeetCodeBlob{State: types.StatAbsent}
	if leetcodeUsername != "" {
		stats, err := f.fetchLeetCode(ctx, leetcodeUsername, f.timeout)
		if err != nil {
			leetcode = types.FailedLeetCode(err)
		} else {
			leetcode = types.LeetCodeBlob{State: types.StatPresent, Stats: stats}
		}
	}

	linkedin := user.LinkedInSnapshot()
	analyzedAt := f.now()

	if err := f.store.SaveStats(ctx, user.ID, github, leetcode, linkedin, analyzedAt); err != nil {
		return nil, err
	}

	user.GitHubStats = github
	user.LeetCodeStats = leetcode
	user.LinkedInStats = linkedin
	user.LastAnalyzedAt = &analyzedAt

	return &Result{GitHub: github, LeetCode: leetcode, LinkedIn: linkedin}, nil
}

// ExtractUsername pulls the trailing path segment out of a profile link.
// Empty or unparseable links yield an empty username.
func ExtractUsername(link string) string {
	if link == "" {
		return ""
	}
	parsed, err := url.Parse(strings.TrimSpace(link))
	if err != nil {
		return ""
	}
	path := strings.Trim(parsed.Path, "/")
	if path == "" {
		return ""
	}
	segments := strings.Split(path, "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] != "" {
			return segments[i]
		}
	}
	return ""
}
