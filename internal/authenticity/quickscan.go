package authenticity

import (
	"context"
	"strings"

	"github.com/skillsence/skillverify/internal/types"
)

// aiSignalKeywords are substrings in commit messages or readmes that hint
// at AI-assisted authorship.
var aiSignalKeywords = []string{
	"chatgpt", "copilot", "generated by", "ai generated", "openai", "llm",
}

const (
	aiSignalScore = 40

	quickScanBaseScore   = 70
	quickScanForkedScore = 35
	quickScanStarBonus   = 5
	quickScanActiveBonus = 5
	quickScanStarFloor   = 10
)

// AISignalFromText returns the keyword signal score for a piece of text.
func AISignalFromText(text string) int {
	lowered := strings.ToLower(text)
	for _, keyword := range aiSignalKeywords {
		if strings.Contains(lowered, keyword) {
			return aiSignalScore
		}
	}
	return 0
}

// aiSignalFromMessages takes the strongest signal across commit messages.
func aiSignalFromMessages(messages []string) int {
	score := 0
	for _, message := range messages {
		if signal := AISignalFromText(message); signal > score {
			score = signal
		}
	}
	return score
}

// signalBand maps a keyword signal score to its band. The thresholds sit
// below the LLM verdict bands since keyword evidence is weaker.
func signalBand(score int) string {
	switch {
	case score >= 40:
		return "likely"
	case score >= 20:
		return "possible"
	default:
		return "no_signal"
	}
}

// QuickScan runs the heuristic, LLM-free repository scan: keyword signals
// from recent commits and the readme plus an originality score from repo
// metadata. It never needs an AI credential.
func (a *Analyzer) QuickScan(ctx context.Context, owner, repo string) (*types.QuickScanResult, error) {
	repoData, err := a.client.fetchRepo(ctx, owner, repo)
	if err != nil {
		return nil, err
	}

	commitSignal := aiSignalFromMessages(a.client.fetchCommitMessages(ctx, owner, repo))
	readmeSignal := AISignalFromText(a.client.fetchReadme(ctx, owner, repo))
	aiScore := commitSignal
	if readmeSignal > aiScore {
		aiScore = readmeSignal
	}

	copiedOrForked := repoData.Fork || repoData.IsTemplate
	originality := quickScanBaseScore
	if copiedOrForked {
		originality = quickScanForkedScore
	}
	if repoData.StargazersCount > quickScanStarFloor {
		originality += quickScanStarBonus
	}
	if repoData.PushedAt != "" {
		originality += quickScanActiveBonus
	}
	if originality > 100 {
		originality = 100
	}

	return &types.QuickScanResult{
		RepoName:     repoData.Name,
		RepoURL:      repoData.HTMLURL,
		Description:  repoData.Description,
		Score:        originality,
		Languages:    a.client.fetchLanguages(ctx, repoData.LanguagesURL),
		Forked:       repoData.Fork,
		Template:     repoData.IsTemplate,
		AIGenerated:  signalBand(aiScore),
		AIConfidence: aiScore,
		Stars:        repoData.StargazersCount,
		Forks:        repoData.ForksCount,
	}, nil
}
