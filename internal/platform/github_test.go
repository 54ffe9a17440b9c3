package platform

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGitHubStats_EmptyAccount(t *testing.T) {
	stats := buildGitHubStats(githubProfileResponse{}, nil, time.Now())

	assert.Equal(t, 0, stats.Repos.Count)
	assert.Equal(t, 0.0, stats.Repos.ForkRatio)
	assert.Empty(t, stats.Repos.Languages)
	assert.Empty(t, stats.Repos.TopLanguages)
}

func TestBuildGitHubStats_Aggregates(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	recent := now.Add(-30 * 24 * time.Hour).Format(time.RFC3339)
	stale := now.Add(-300 * 24 * time.Hour).Format(time.RFC3339)

	repos := []githubRepoResponse{
		{Name: "api", StargazersCount: 12, ForksCount: 3, Language: "Go", PushedAt: recent},
		{Name: "site", StargazersCount: 2, Language: "JavaScript", PushedAt: stale},
		{Name: "fork-of-site", Fork: true, Language: "JavaScript", PushedAt: recent},
		{Name: "notes", PushedAt: "not-a-timestamp"},
		{Name: "scripts", StargazersCount: 1, Language: "Python"},
		{Name: "lab", Fork: true, Language: "Python", PushedAt: recent},
	}
	profile := githubProfileResponse{PublicRepos: 6, Followers: 9, Following: 4}

	stats := buildGitHubStats(profile, repos, now)

	assert.Equal(t, 6, stats.Profile.PublicRepos)
	assert.Equal(t, 6, stats.Repos.Count)
	assert.Equal(t, 15, stats.Repos.Stars)
	assert.Equal(t, 3, stats.Repos.Forks)
	assert.Equal(t, 3, stats.Repos.RecentRepos)
	assert.Equal(t, 2, stats.Repos.Forked)
	assert.Equal(t, 4, stats.Repos.Original)
	assert.Equal(t, 0.333, stats.Repos.ForkRatio)
	assert.Equal(t, []string{"Go", "JavaScript", "Python"}, stats.Repos.Languages)

	require.Len(t, stats.Repos.TopLanguages, 3)
	// JavaScript and Python tie at two repos each; first seen ranks first.
	assert.Equal(t, "JavaScript", stats.Repos.TopLanguages[0].Language)
	assert.Equal(t, 2, stats.Repos.TopLanguages[0].Count)
	assert.Equal(t, "Python", stats.Repos.TopLanguages[1].Language)
	assert.Equal(t, "Go", stats.Repos.TopLanguages[2].Language)
}

func TestBuildGitHubStats_TopLanguagesLimit(t *testing.T) {
	var repos []githubRepoResponse
	for _, lang := range []string{"Go", "Python", "Java", "C", "C++", "Ruby", "PHP", "Rust"} {
		repos = append(repos, githubRepoResponse{Name: lang, Language: lang})
	}
	stats := buildGitHubStats(githubProfileResponse{}, repos, time.Now())
	assert.Len(t, stats.Repos.TopLanguages, 6)
	assert.Len(t, stats.Repos.Languages, 8)
}

func TestBuildGitHubStats_PublicReposFallsBackToListing(t *testing.T) {
	repos := []githubRepoResponse{{Name: "only"}}
	stats := buildGitHubStats(githubProfileResponse{}, repos, time.Now())
	assert.Equal(t, 1, stats.Profile.PublicRepos)
}
