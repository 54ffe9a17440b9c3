package platform

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillsence/skillverify/internal/config"
	"github.com/skillsence/skillverify/internal/types"
)

type savedStats struct {
	github   types.GitHubBlob
	leetcode types.LeetCodeBlob
	linkedin types.LinkedInStats
	at       time.Time
}

type fakeStatsStore struct {
	saved []savedStats
	err   error
}

func (f *fakeStatsStore) SaveStats(_ context.Context, _ uuid.UUID, github types.GitHubBlob, leetcode types.LeetCodeBlob, linkedin types.LinkedInStats, analyzedAt time.Time) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, savedStats{github: github, leetcode: leetcode, linkedin: linkedin, at: analyzedAt})
	return nil
}

func testFetcher(store StatsStore) *Fetcher {
	f := NewFetcher(store, config.Default())
	f.sleep = func(time.Duration) {}
	return f
}

func linkedStudent() *types.UserProfile {
	return &types.UserProfile{
		ID:           uuid.New(),
		Role:         types.RoleStudent,
		GitHubLink:   "https://github.com/asha",
		LeetCodeLink: "https://leetcode.com/u/asha/",
	}
}

func TestExtractUsername(t *testing.T) {
	assert.Equal(t, "asha", ExtractUsername("https://github.com/asha"))
	assert.Equal(t, "asha", ExtractUsername("https://leetcode.com/u/asha/"))
	assert.Equal(t, "asha", ExtractUsername("https://www.linkedin.com/in/asha"))
	assert.Equal(t, "", ExtractUsername(""))
	assert.Equal(t, "", ExtractUsername("https://github.com/"))
}

func TestAnalyze_IgnoresNonStudents(t *testing.T) {
	store := &fakeStatsStore{}
	result, err := testFetcher(store).Analyze(context.Background(), &types.UserProfile{Role: types.RoleRecruiter}, false)
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Empty(t, store.saved)
}

func TestAnalyze_FreshStatsComeFromCache(t *testing.T) {
	store := &fakeStatsStore{}
	f := testFetcher(store)
	f.fetchGitHub = func(context.Context, string, string, time.Duration) (*types.GitHubStats, error) {
		t.Fatal("fetch should not run for fresh stats")
		return nil, nil
	}

	user := linkedStudent()
	analyzed := time.Now().Add(-1 * time.Hour)
	user.LastAnalyzedAt = &analyzed
	user.GitHubStats = types.GitHubBlob{State: types.StatPresent, Stats: &types.GitHubStats{}}

	result, err := f.Analyze(context.Background(), user, false)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.FromCache)
	assert.Equal(t, types.StatPresent, result.GitHub.State)
	assert.Empty(t, store.saved)
}

func TestAnalyze_ForceBypassesFreshness(t *testing.T) {
	store := &fakeStatsStore{}
	f := testFetcher(store)
	f.fetchGitHub = func(context.Context, string, string, time.Duration) (*types.GitHubStats, error) {
		return &types.GitHubStats{}, nil
	}
	f.fetchLeetCode = func(context.Context, string, time.Duration) (*types.LeetCodeStats, error) {
		return &types.LeetCodeStats{}, nil
	}

	user := linkedStudent()
	analyzed := time.Now().Add(-1 * time.Hour)
	user.LastAnalyzedAt = &analyzed

	result, err := f.Analyze(context.Background(), user, true)
	require.NoError(t, err)
	assert.False(t, result.FromCache)
	require.Len(t, store.saved, 1)
}

func TestAnalyze_StaleStatsRefetch(t *testing.T) {
	store := &fakeStatsStore{}
	f := testFetcher(store)
	f.fetchGitHub = func(context.Context, string, string, time.Duration) (*types.GitHubStats, error) {
		return &types.GitHubStats{Repos: types.GitHubRepos{Count: 3}}, nil
	}
	f.fetchLeetCode = func(context.Context, string, time.Duration) (*types.LeetCodeStats, error) {
		return &types.LeetCodeStats{Solved: types.SolvedCounts{All: 10}}, nil
	}

	user := linkedStudent()
	analyzed := time.Now().Add(-13 * time.Hour)
	user.LastAnalyzedAt = &analyzed

	result, err := f.Analyze(context.Background(), user, false)
	require.NoError(t, err)
	assert.Equal(t, types.StatPresent, result.GitHub.State)
	assert.Equal(t, 3, result.GitHub.Stats.Repos.Count)
	assert.Equal(t, 10, result.LeetCode.Stats.Solved.All)

	// The in-memory profile follows the store.
	assert.Equal(t, types.StatPresent, user.GitHubStats.State)
	require.NotNil(t, user.LastAnalyzedAt)
	assert.WithinDuration(t, time.Now(), *user.LastAnalyzedAt, time.Minute)
}

func TestAnalyze_PlatformFailureIsIsolated(t *testing.T) {
	store := &fakeStatsStore{}
	f := testFetcher(store)
	f.fetchGitHub = func(context.Context, string, string, time.Duration) (*types.GitHubStats, error) {
		return nil, errors.New("rate limited")
	}
	f.fetchLeetCode = func(context.Context, string, time.Duration) (*types.LeetCodeStats, error) {
		return &types.LeetCodeStats{Solved: types.SolvedCounts{All: 5}}, nil
	}

	result, err := f.Analyze(context.Background(), linkedStudent(), false)
	require.NoError(t, err)
	assert.Equal(t, types.StatFailed, result.GitHub.State)
	assert.Equal(t, "rate limited", result.GitHub.Err)
	assert.Equal(t, types.StatPresent, result.LeetCode.State)
	require.Len(t, store.saved, 1)
}

func TestAnalyze_UnlinkedPlatformStaysAbsent(t *testing.T) {
	store := &fakeStatsStore{}
	f := testFetcher(store)
	f.fetchLeetCode = func(context.Context, string, time.Duration) (*types.LeetCodeStats, error) {
		return &types.LeetCodeStats{}, nil
	}

	user := linkedStudent()
	user.GitHubLink = ""

	result, err := f.Analyze(context.Background(), user, false)
	require.NoError(t, err)
	assert.Equal(t, types.StatAbsent, result.GitHub.State)
	assert.Equal(t, types.StatPresent, result.LeetCode.State)
}

func TestAnalyze_StoreErrorPropagates(t *testing.T) {
	store := &fakeStatsStore{err: errors.New("connection reset")}
	f := testFetcher(store)
	f.fetchGitHub = func(context.Context, string, string, time.Duration) (*types.GitHubStats, error) {
		return &types.GitHubStats{}, nil
	}
	f.fetchLeetCode = func(context.Context, string, time.Duration) (*types.LeetCodeStats, error) {
		return &types.LeetCodeStats{}, nil
	}

	_, err := f.Analyze(context.Background(), linkedStudent(), false)
	assert.Error(t, err)
}
