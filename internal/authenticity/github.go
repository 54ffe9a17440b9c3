package authenticity

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/skillsence/skillverify/internal/fetch"
)

const (
	githubAPIBase = "https://api.github.com"

	// repoLanguageLimit caps the languages reported per repository.
	repoLanguageLimit = 5
	// commitSampleSize is how many recent commits the heuristic scan reads.
	commitSampleSize = 5
	// readmeSampleChars caps the readme text the heuristic scan reads.
	readmeSampleChars = 4000
)

// repoClient wraps the GitHub REST calls the analyzer needs.
type repoClient struct {
	token   string
	timeout time.Duration

	// baseURL overrides the API host in tests.
	baseURL string
}

func (c *repoClient) base() string {
	if c.baseURL != "" {
		return c.baseURL
	}
	return githubAPIBase
}

type repoMetadata struct {
	Name            string `json:"name"`
	HTMLURL         string `json:"html_url"`
	Description     string `json:"description"`
	DefaultBranch   string `json:"default_branch"`
	Fork            bool   `json:"fork"`
	IsTemplate      bool   `json:"is_template"`
	StargazersCount int    `json:"stargazers_count"`
	ForksCount      int    `json:"forks_count"`
	PushedAt        string `json:"pushed_at"`
	LanguagesURL    string `json:"languages_url"`
}

type treeNode struct {
	Path string `json:"path"`
	Type string `json:"type"`
	SHA  string `json:"sha"`
	Size int    `json:"size"`
}

type treeResponse struct {
	Tree []treeNode `json:"tree"`
}

type blobResponse struct {
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}

type commitEntry struct {
	Commit struct {
		Message string `json:"message"`
	} `json:"commit"`
}

func (c *repoClient) options() *fetch.Options {
	headers := map[string]string{"Accept": "application/vnd.github+json"}
	if c.token != "" {
		headers["Authorization"] = "Bearer " + c.token
	}
	return &fetch.Options{
		Timeout:   c.timeout,
		UserAgent: fetch.DefaultUserAgent,
		Headers:   headers,
	}
}

func (c *repoClient) fetchRepo(ctx context.Context, owner, repo string) (*repoMetadata, error) {
	var data repoMetadata
	url := fmt.Sprintf("%s/repos/%s/%s", c.base(), owner, repo)
	if err := fetch.JSON(ctx, "GET", url, nil, &data, c.options()); err != nil {
		return nil, &RepoError{Owner: owner, Repo: repo, Message: "unable to fetch repository data", Cause: err}
	}
	return &data, nil
}

func (c *repoClient) fetchTree(ctx context.Context, owner, repo, branch string) ([]treeNode, error) {
	var data treeResponse
	url := fmt.Sprintf("%s/repos/%s/%s/git/trees/%s?recursive=1", c.base(), owner, repo, branch)
	if err := fetch.JSON(ctx, "GET", url, nil, &data, c.options()); err != nil {
		return nil, &RepoError{Owner: owner, Repo: repo, Message: "unable to fetch repository tree", Cause: err}
	}
	return data.Tree, nil
}

// fetchBlobText loads one blob and decodes it to text. Non-base64 blobs and
// undecodable bytes yield an empty result, not an error.
func (c *repoClient) fetchBlobText(ctx context.Context, owner, repo, sha string) (string, bool, error) {
	var data blobResponse
	url := fmt.Sprintf("%s/repos/%s/%s/git/blobs/%s", c.base(), owner, repo, sha)
	if err := fetch.JSON(ctx, "GET", url, nil, &data, c.options()); err != nil {
		return "", false, err
	}
	if data.Encoding != "base64" {
		return "", false, nil
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(data.Content, "\n", ""))
	if err != nil {
		return "", false, nil
	}
	return string(decoded), true, nil
}

// fetchLanguages returns the repository's top languages by byte count.
// Failures degrade to an empty list.
func (c *repoClient) fetchLanguages(ctx context.Context, languagesURL string) []string {
	if languagesURL == "" {
		return nil
	}
	var byteCounts map[string]int
	if err := fetch.JSON(ctx, "GET", languagesURL, nil, &byteCounts, c.options()); err != nil {
		return nil
	}
	type langBytes struct {
		name  string
		bytes int
	}
	ranked := make([]langBytes, 0, len(byteCounts))
	for name, count := range byteCounts {
		ranked = append(ranked, langBytes{name: name, bytes: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].bytes != ranked[j].bytes {
			return ranked[i].bytes > ranked[j].bytes
		}
		return ranked[i].name < ranked[j].name
	})
	if len(ranked) > repoLanguageLimit {
		ranked = ranked[:repoLanguageLimit]
	}
	languages := make([]string, len(ranked))
	for i, entry := range ranked {
		languages[i] = entry.name
	}
	return languages
}

// fetchCommitMessages returns recent commit messages. Failures degrade to
// an empty list.
func (c *repoClient) fetchCommitMessages(ctx context.Context, owner, repo string) []string {
	var commits []commitEntry
	url := fmt.Sprintf("%s/repos/%s/%s/commits?per_page=%d", c.base(), owner, repo, commitSampleSize)
	if err := fetch.JSON(ctx, "GET", url, nil, &commits, c.options()); err != nil {
		return nil
	}
	messages := make([]string, 0, len(commits))
	for _, commit := range commits {
		messages = append(messages, commit.Commit.Message)
	}
	return messages
}

// fetchReadme returns the leading readme text. Failures degrade to empty.
func (c *repoClient) fetchReadme(ctx context.Context, owner, repo string) string {
	opts := c.options()
	opts.Headers["Accept"] = "application/vnd.github.raw+json"
	url := fmt.Sprintf("%s/repos/%s/%s/readme", c.base(), owner, repo)
	content, err := fetch.Raw(ctx, url, opts)
	if err != nil {
		return ""
	}
	if len(content) > readmeSampleChars {
		content = content[:readmeSampleChars]
	}
	return content
}

func (c *repoClient) listRepos(ctx context.Context, owner string) ([]repoMetadata, error) {
	var repos []repoMetadata
	url := fmt.Sprintf("%s/users/%s/repos?per_page=100&sort=updated", c.base(), owner)
	if err := fetch.JSON(ctx, "GET", url, nil, &repos, c.options()); err != nil {
		return nil, err
	}
	return repos, nil
}

// ExtractOwnerRepo pulls the owner and repository name out of a repository
// URL. Only github.com hosts are accepted; a trailing .git is stripped.
func ExtractOwnerRepo(repoURL string) (owner, repo string, ok bool) {
	if repoURL == "" {
		return "", "", false
	}
	parsed, err := url.Parse(strings.TrimSpace(repoURL))
	if err != nil {
		return "", "", false
	}
	if parsed.Host != "" && !strings.Contains(strings.ToLower(parsed.Host), "github.com") {
		return "", "", false
	}
	path := strings.Trim(parsed.Path, "/")
	parts := make([]string, 0, 2)
	for _, part := range strings.Split(path, "/") {
		if part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) < 2 {
		return "", "", false
	}
	owner = parts[0]
	repo = strings.TrimSuffix(parts[1], ".git")
	return owner, repo, true
}
