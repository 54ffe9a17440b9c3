// Package types defines the shared domain types for the scoring engine.
package types

import (
	"encoding/json"
	"fmt"
)

// StatState describes whether an external stat blob has been fetched.
type StatState string

// Stat blob states. A blob is Absent until the first fetch attempt,
// Failed when the platform call errored, and Present when data was obtained.
const (
	StatAbsent  StatState = "absent"
	StatFailed  StatState = "failed"
	StatPresent StatState = "present"
)

// GitHubProfile holds account-level counters from the code-hosting API.
type GitHubProfile struct {
	PublicRepos int `json:"public_repos"`
	Followers   int `json:"followers"`
	Following   int `json:"following"`
}

// GitHubRepos holds repository aggregates derived from the repo listing.
type GitHubRepos struct {
	Count        int             `json:"count"`
	Stars        int             `json:"stars"`
	Forks        int             `json:"forks"`
	RecentRepos  int             `json:"recent_repos"`
	Languages    []string        `json:"languages"`
	Forked       int             `json:"forked"`
	Original     int             `json:"original"`
	ForkRatio    float64         `json:"fork_ratio"`
	TopLanguages []LanguageCount `json:"top_languages"`
}

// LanguageCount is one entry of the per-language repo histogram.
type LanguageCount struct {
	Language string `json:"language"`
	Count    int    `json:"count"`
}

// MarshalJSON encodes the entry as a [language, count] pair, the format the
// stored blobs use.
func (lc LanguageCount) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{lc.Language, lc.Count})
}

// UnmarshalJSON decodes a [language, count] pair.
func (lc *LanguageCount) UnmarshalJSON(data []byte) error {
	var pair [2]json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if err := json.Unmarshal(pair[0], &lc.Language); err != nil {
		return fmt.Errorf("language entry: %w", err)
	}
	var count float64
	if err := json.Unmarshal(pair[1], &count); err != nil {
		return fmt.Errorf("language count: %w", err)
	}
	lc.Count = int(count)
	return nil
}

// GitHubOriginality summarizes how much of the account's activity is original.
type GitHubOriginality struct {
	ForkRatio float64 `json:"fork_ratio"`
	Note      string  `json:"note,omitempty"`
}

// GitHubStats is the normalized code-hosting signal for one user.
type GitHubStats struct {
	Profile     GitHubProfile     `json:"profile"`
	Repos       GitHubRepos       `json:"repos"`
	Originality GitHubOriginality `json:"originality"`
	FetchedAt   string            `json:"fetched_at"`
}

// SolvedCounts holds competitive-programming solve counts per difficulty.
type SolvedCounts struct {
	All    int `json:"all"`
	Easy   int `json:"easy"`
	Medium int `json:"medium"`
	Hard   int `json:"hard"`
}

// LeetCodeProfile holds ranking and reputation counters.
type LeetCodeProfile struct {
	Ranking    int     `json:"ranking"`
	Reputation int     `json:"reputation"`
	StarRating float64 `json:"starRating"`
}

// LeetCodeStats is the normalized competitive-programming signal for one user.
type LeetCodeStats struct {
	Username  string                    `json:"username"`
	Solved    SolvedCounts              `json:"solved"`
	Raw       map[string]map[string]int `json:"raw,omitempty"`
	Profile   LeetCodeProfile           `json:"profile"`
	FetchedAt string                    `json:"fetched_at"`
}

// LinkedInStats is the snapshot of self-reported professional-network signal.
// It is derived from stored profile fields, never fetched during scoring.
type LinkedInStats struct {
	Linked          bool `json:"linked"`
	HeadlineLen     int  `json:"headline_len"`
	AboutLen        int  `json:"about_len"`
	ExperienceCount int  `json:"experience_count"`
	SkillCount      int  `json:"skill_count"`
	CertCount       int  `json:"cert_count"`
}

// GitHubBlob is the stored code-hosting stat blob as a tagged variant:
// not yet fetched, fetch failed, or present.
type GitHubBlob struct {
	State StatState
	Err   string
	Stats *GitHubStats
}

// LeetCodeBlob is the stored competitive-programming stat blob as a tagged
// variant.
type LeetCodeBlob struct {
	State StatState
	Err   string
	Stats *LeetCodeStats
}

// FailedGitHub returns a GitHubBlob recording a fetch failure.
func FailedGitHub(err error) GitHubBlob {
	return GitHubBlob{State: StatFailed, Err: err.Error()}
}

// FailedLeetCode returns a LeetCodeBlob recording a fetch failure.
func FailedLeetCode(err error) LeetCodeBlob {
	return LeetCodeBlob{State: StatFailed, Err: err.Error()}
}

// errEnvelope is the stored representation of a failed fetch.
type errEnvelope struct {
	Error string `json:"error"`
}

// MarshalJSON stores absent as null, failed as {"error": ...}, and present
// as the stats payload. This matches the historical blob format.
func (b GitHubBlob) MarshalJSON() ([]byte, error) {
	switch b.State {
	case StatFailed:
		return json.Marshal(errEnvelope{Error: b.Err})
	case StatPresent:
		return json.Marshal(b.Stats)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON restores the tagged variant from the stored blob.
func (b *GitHubBlob) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*b = GitHubBlob{State: StatAbsent}
		return nil
	}
	var env errEnvelope
	if err := json.Unmarshal(data, &env); err == nil && env.Error != "" {
		*b = GitHubBlob{State: StatFailed, Err: env.Error}
		return nil
	}
	var stats GitHubStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return err
	}
	*b = GitHubBlob{State: StatPresent, Stats: &stats}
	return nil
}

// MarshalJSON stores the blob in the same envelope format as GitHubBlob.
func (b LeetCodeBlob) MarshalJSON() ([]byte, error) {
	switch b.State {
	case StatFailed:
		return json.Marshal(errEnvelope{Error: b.Err})
	case StatPresent:
		return json.Marshal(b.Stats)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON restores the tagged variant from the stored blob.
func (b *LeetCodeBlob) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*b = LeetCodeBlob{State: StatAbsent}
		return nil
	}
	var env errEnvelope
	if err := json.Unmarshal(data, &env); err == nil && env.Error != "" {
		*b = LeetCodeBlob{State: StatFailed, Err: env.Error}
		return nil
	}
	var stats LeetCodeStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return err
	}
	*b = LeetCodeBlob{State: StatPresent, Stats: &stats}
	return nil
}
