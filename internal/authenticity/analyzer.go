package authenticity

import (
	"context"
	"math"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/skillsence/skillverify/internal/config"
	"github.com/skillsence/skillverify/internal/db"
	"github.com/skillsence/skillverify/internal/llm"
	"github.com/skillsence/skillverify/internal/types"
)

// SnapshotStore persists analyzed file content for audit and cache reuse.
type SnapshotStore interface {
	UpsertFileSnapshot(ctx context.Context, snap *db.RepoFileSnapshot) error
}

// Analyzer runs full AI-authorship analysis over repositories.
type Analyzer struct {
	judge       ChunkJudge
	client      *repoClient
	snapshots   SnapshotStore
	chunkChars  int
	concurrency int

	cacheEnabled  bool
	cacheMaxChars int

	// AI judge availability is checked before any network call.
	configured bool
}

// NewAnalyzer builds an Analyzer. A nil judge marks the analyzer as not
// configured; every analysis then fails fast with llm.ErrNotConfigured.
func NewAnalyzer(judge ChunkJudge, snapshots SnapshotStore, cfg *config.Config) *Analyzer {
	concurrency := cfg.AnalyzeConcurrency
	if concurrency < 1 {
		concurrency = 1
	}
	return &Analyzer{
		judge:         judge,
		client:        &repoClient{token: cfg.GitHubToken, timeout: config.DefaultPlatformTimeout},
		snapshots:     snapshots,
		chunkChars:    cfg.ChunkChars,
		concurrency:   concurrency,
		cacheEnabled:  cfg.CacheEnabled,
		cacheMaxChars: cfg.CacheMaxChars,
		configured:    judge != nil && cfg.JudgeConfigured(),
	}
}

type analyzedFile struct {
	verdict types.FileVerdict
	weight  int
}

// Analyze runs chunk-level AI-authorship analysis over every text file in
// the repository identified by owner/repo. Files are analyzed concurrently;
// chunks within a file stay sequential, and any file failure fails the
// whole analysis. The user, when non-nil, enables file snapshot caching.
func (a *Analyzer) Analyze(ctx context.Context, owner, repo string, user *types.UserProfile) (*types.RepoAnalysis, error) {
	if !a.configured {
		return nil, llm.ErrNotConfigured
	}

	repoData, err := a.client.fetchRepo(ctx, owner, repo)
	if err != nil {
		return nil, err
	}
	branch := repoData.DefaultBranch
	if branch == "" {
		branch = "main"
	}
	tree, err := a.client.fetchTree(ctx, owner, repo, branch)
	if err != nil {
		return nil, err
	}

	var files []treeNode
	for _, node := range tree {
		if node.Type != "blob" || node.Path == "" || !IsTextPath(node.Path) {
			continue
		}
		files = append(files, node)
	}
	if len(files) == 0 {
		return nil, ErrNoFiles
	}

	results := make([]*analyzedFile, len(files))
	var totalLines int
	var linesMu sync.Mutex

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(a.concurrency)
	for i, file := range files {
		group.Go(func() error {
			analyzed, lines, err := a.analyzeFile(groupCtx, owner, repo, repoData.HTMLURL, file, user)
			if err != nil {
				return err
			}
			results[i] = analyzed
			linesMu.Lock()
			totalLines += lines
			linesMu.Unlock()
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	var fileVerdicts []types.FileVerdict
	totalWeight := 0
	weightedScore := 0
	for _, result := range results {
		if result == nil {
			continue
		}
		fileVerdicts = append(fileVerdicts, result.verdict)
		totalWeight += result.weight
		weightedScore += result.verdict.Score * result.weight
	}
	if totalWeight == 0 {
		return nil, ErrNoWeight
	}

	repoScore := int(math.Round(float64(weightedScore) / float64(totalWeight)))
	sort.SliceStable(fileVerdicts, func(i, j int) bool {
		return fileVerdicts[i].Score > fileVerdicts[j].Score
	})
	topFiles := fileVerdicts
	if len(topFiles) > 5 {
		topFiles = topFiles[:5]
	}

	return &types.RepoAnalysis{
		RepoName:      repoData.Name,
		RepoURL:       repoData.HTMLURL,
		AIGenerated:   types.LabelForScore(repoScore),
		AIConfidence:  repoScore,
		Languages:     a.client.fetchLanguages(ctx, repoData.LanguagesURL),
		FilesAnalyzed: len(fileVerdicts),
		LinesAnalyzed: totalLines,
		TopAIFiles:    topFiles,
	}, nil
}

// analyzeFile loads one blob, snapshots it, and judges its chunks in
// order. A file with no content is skipped (nil result, no error).
func (a *Analyzer) analyzeFile(ctx context.Context, owner, repo, repoURL string, file treeNode, user *types.UserProfile) (*analyzedFile, int, error) {
	content, ok, err := a.client.fetchBlobText(ctx, owner, repo, file.SHA)
	if err != nil || !ok {
		return nil, 0, &FileError{Path: file.Path, Message: "failed to load content", Cause: err}
	}

	lines := CountLines(content)
	a.storeSnapshot(ctx, repoURL, file, content, lines, user)

	chunks := ChunkText(content, a.chunkChars)
	if len(chunks) == 0 {
		return nil, lines, nil
	}

	weighted := 0
	total := 0
	for idx, chunk := range chunks {
		verdict, err := a.judge.JudgeChunk(ctx, file.Path, chunk, idx, len(chunks))
		if err != nil {
			return nil, 0, err
		}
		weighted += verdict.Score * len(chunk)
		total += len(chunk)
	}
	if total == 0 {
		total = 1
	}
	fileScore := int(math.Round(float64(weighted) / float64(total)))

	return &analyzedFile{
		verdict: types.FileVerdict{
			Path:  file.Path,
			Score: fileScore,
			Label: types.LabelForScore(fileScore),
			Lines: lines,
		},
		weight: total,
	}, lines, nil
}

// storeSnapshot caches the analyzed file content. Caching is best effort;
// storage errors do not fail the analysis.
func (a *Analyzer) storeSnapshot(ctx context.Context, repoURL string, file treeNode, content string, lines int, user *types.UserProfile) {
	if a.snapshots == nil || user == nil || !a.cacheEnabled {
		return
	}
	stored := content
	if a.cacheMaxChars > 0 && len(stored) > a.cacheMaxChars {
		stored = stored[:a.cacheMaxChars]
	}
	_ = a.snapshots.UpsertFileSnapshot(ctx, &db.RepoFileSnapshot{
		UserID:  user.ID,
		RepoURL: repoURL,
		Path:    file.Path,
		SHA:     file.SHA,
		Content: stored,
		Size:    file.Size,
		Lines:   lines,
	})
}

// FlagAccountRepos walks every repository on an account and returns the
// ones whose analysis lands in the likely or possible band, plus per-repo
// failures. Account listing failure yields an empty report.
func (a *Analyzer) FlagAccountRepos(ctx context.Context, owner string, user *types.UserProfile) []types.RepoFlag {
	repos, err := a.client.listRepos(ctx, owner)
	if err != nil {
		return nil
	}

	var flagged []types.RepoFlag
	for _, repo := range repos {
		if repo.Name == "" {
			continue
		}
		analysis, err := a.Analyze(ctx, owner, repo.Name, user)
		if err != nil {
			flagged = append(flagged, types.RepoFlag{
				RepoName: repo.Name,
				RepoURL:  repo.HTMLURL,
				Status:   "failed",
				Error:    err.Error(),
			})
			continue
		}
		if analysis.AIGenerated != types.VerdictLikely && analysis.AIGenerated != types.VerdictPossible {
			continue
		}
		flagged = append(flagged, types.RepoFlag{
			RepoName:      analysis.RepoName,
			RepoURL:       analysis.RepoURL,
			AIGenerated:   analysis.AIGenerated,
			AIConfidence:  analysis.AIConfidence,
			Languages:     analysis.Languages,
			FilesAnalyzed: analysis.FilesAnalyzed,
			LinesAnalyzed: analysis.LinesAnalyzed,
			TopAIFiles:    analysis.TopAIFiles,
		})
	}
	return flagged
}
