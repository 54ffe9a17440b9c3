package types

// VerdictLabel is the AI-authorship likelihood band for a chunk, file, or
// repository.
type VerdictLabel string

// Verdict labels.
const (
	VerdictLikely   VerdictLabel = "likely"
	VerdictPossible VerdictLabel = "possible"
	VerdictUnlikely VerdictLabel = "unlikely"
)

// LabelForScore maps a 0-100 authenticity score to its verdict band.
func LabelForScore(score int) VerdictLabel {
	switch {
	case score >= 70:
		return VerdictLikely
	case score >= 40:
		return VerdictPossible
	default:
		return VerdictUnlikely
	}
}

// ChunkVerdict is the judge's verdict for one chunk of file text.
type ChunkVerdict struct {
	Score     int          `json:"score"`
	Label     VerdictLabel `json:"label"`
	Rationale string       `json:"rationale,omitempty"`
}

// FileVerdict is the aggregated verdict for one repository file.
type FileVerdict struct {
	Path  string       `json:"path"`
	Score int          `json:"score"`
	Label VerdictLabel `json:"label"`
	Lines int          `json:"lines"`
}

// RepoAnalysis is the full authenticity analysis result for a repository.
type RepoAnalysis struct {
	RepoName      string        `json:"repo_name"`
	RepoURL       string        `json:"repo_url"`
	AIGenerated   VerdictLabel  `json:"ai_generated"`
	AIConfidence  int           `json:"ai_confidence"`
	Languages     []string      `json:"languages"`
	FilesAnalyzed int           `json:"files_analyzed"`
	LinesAnalyzed int           `json:"lines_analyzed"`
	TopAIFiles    []FileVerdict `json:"top_ai_files"`
}

// RepoFlag is one entry of an account-wide repo scan: either a flagged
// analysis or a per-repo failure.
type RepoFlag struct {
	RepoName      string        `json:"repo_name"`
	RepoURL       string        `json:"repo_url,omitempty"`
	Status        string        `json:"status,omitempty"`
	Error         string        `json:"error,omitempty"`
	AIGenerated   VerdictLabel  `json:"ai_generated,omitempty"`
	AIConfidence  int           `json:"ai_confidence,omitempty"`
	Languages     []string      `json:"languages,omitempty"`
	FilesAnalyzed int           `json:"files_analyzed,omitempty"`
	LinesAnalyzed int           `json:"lines_analyzed,omitempty"`
	TopAIFiles    []FileVerdict `json:"top_ai_files,omitempty"`
}

// QuickScanResult is the heuristic (non-LLM) repository scan: originality
// score plus AI-signal metrics from commit messages and the readme.
type QuickScanResult struct {
	RepoName     string   `json:"repo_name"`
	RepoURL      string   `json:"repo_url"`
	Description  string   `json:"description"`
	Score        int      `json:"score"`
	Languages    []string `json:"languages"`
	Forked       bool     `json:"forked"`
	Template     bool     `json:"template"`
	AIGenerated  string   `json:"ai_generated"`
	AIConfidence int      `json:"ai_confidence"`
	Stars        int      `json:"stars"`
	Forks        int      `json:"forks"`
}
