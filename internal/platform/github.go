package platform

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/skillsence/skillverify/internal/fetch"
	"github.com/skillsence/skillverify/internal/types"
)

const (
	githubAPIBase = "https://api.github.com"

	// recentWindow is how far back a push still counts as recent activity.
	recentWindow = 180 * 24 * time.Hour

	topLanguageLimit = 6
	reposPerPage     = 100
)

type githubProfileResponse struct {
	PublicRepos int `json:"public_repos"`
	Followers   int `json:"followers"`
	Following   int `json:"following"`
}

type githubRepoResponse struct {
	Name            string `json:"name"`
	StargazersCount int    `json:"stargazers_count"`
	ForksCount      int    `json:"forks_count"`
	Language        string `json:"language"`
	Fork            bool   `json:"fork"`
	PushedAt        string `json:"pushed_at"`
}

// FetchGitHubStats retrieves and aggregates a user's public GitHub activity.
// The token is optional and only raises rate limits.
func FetchGitHubStats(ctx context.Context, username, token string, timeout time.Duration) (*types.GitHubStats, error) {
	opts := githubOptions(token, timeout)

	var profile githubProfileResponse
	userURL := fmt.Sprintf("%s/users/%s", githubAPIBase, username)
	if err := fetch.JSON(ctx, "GET", userURL, nil, &profile, opts); err != nil {
		return nil, &Error{Platform: "github", Username: username, Message: "profile request failed", Cause: err}
	}

	var repos []githubRepoResponse
	reposURL := fmt.Sprintf("%s/users/%s/repos?per_page=%d&sort=updated", githubAPIBase, username, reposPerPage)
	if err := fetch.JSON(ctx, "GET", reposURL, nil, &repos, opts); err != nil {
		return nil, &Error{Platform: "github", Username: username, Message: "repo listing failed", Cause: err}
	}

	return buildGitHubStats(profile, repos, time.Now()), nil
}

func githubOptions(token string, timeout time.Duration) *fetch.Options {
	headers := map[string]string{"Accept": "application/vnd.github+json"}
	if token != "" {
		headers["Authorization"] = "Bearer " + token
	}
	return &fetch.Options{
		Timeout:   timeout,
		UserAgent: fetch.DefaultUserAgent,
		Headers:   headers,
	}
}

// buildGitHubStats aggregates the raw API responses into the stored stat
// shape. Repos without a detected language stay out of the language lists.
func buildGitHubStats(profile githubProfileResponse, repos []githubRepoResponse, now time.Time) *types.GitHubStats {
	repoCount := len(repos)
	totalStars := 0
	totalForks := 0
	forkedCount := 0
	recentRepos := 0
	languageCounts := make(map[string]int)
	var languageOrder []string

	cutoff := now.Add(-recentWindow)
	for _, repo := range repos {
		totalStars += repo.StargazersCount
		totalForks += repo.ForksCount
		if repo.Fork {
			forkedCount++
		}
		if repo.Language != "" {
			if _, seen := languageCounts[repo.Language]; !seen {
				languageOrder = append(languageOrder, repo.Language)
			}
			languageCounts[repo.Language]++
		}
		if repo.PushedAt != "" {
			pushed, err := time.Parse(time.RFC3339, repo.PushedAt)
			if err == nil && !pushed.Before(cutoff) {
				recentRepos++
			}
		}
	}

	languages := make([]string, 0, len(languageCounts))
	for language := range languageCounts {
		languages = append(languages, language)
	}
	sort.Strings(languages)

	topLanguages := make([]types.LanguageCount, 0, len(languageOrder))
	for _, language := range languageOrder {
		topLanguages = append(topLanguages, types.LanguageCount{Language: language, Count: languageCounts[language]})
	}
	sort.SliceStable(topLanguages, func(i, j int) bool {
		return topLanguages[i].Count > topLanguages[j].Count
	})
	if len(topLanguages) > topLanguageLimit {
		topLanguages = topLanguages[:topLanguageLimit]
	}

	originalCount := repoCount - forkedCount
	if originalCount < 0 {
		originalCount = 0
	}
	forkRatio := 0.0
	if repoCount > 0 {
		forkRatio = math.Round(float64(forkedCount)/float64(repoCount)*1000) / 1000
	}

	publicRepos := profile.PublicRepos
	if publicRepos == 0 {
		publicRepos = repoCount
	}

	return &types.GitHubStats{
		Profile: types.GitHubProfile{
			PublicRepos: publicRepos,
			Followers:   profile.Followers,
			Following:   profile.Following,
		},
		Repos: types.GitHubRepos{
			Count:        repoCount,
			Stars:        totalStars,
			Forks:        totalForks,
			RecentRepos:  recentRepos,
			Languages:    languages,
			Forked:       forkedCount,
			Original:     originalCount,
			ForkRatio:    forkRatio,
			TopLanguages: topLanguages,
		},
		Originality: types.GitHubOriginality{
			ForkRatio: forkRatio,
			Note:      "Higher original repos increase authenticity.",
		},
		FetchedAt: now.Format(time.RFC3339),
	}
}
