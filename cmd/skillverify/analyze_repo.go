package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/skillsence/skillverify/internal/authenticity"
	"github.com/skillsence/skillverify/internal/db"
	"github.com/skillsence/skillverify/internal/llm"
	"github.com/skillsence/skillverify/internal/observability"
	"github.com/skillsence/skillverify/internal/platform"
)

var analyzeRepoCmd = &cobra.Command{
	Use:   "analyze-repo",
	Short: "Analyze a GitHub repository for AI-generated code",
	Long:  "Run the chunked AI-authorship judge over every text file of a repository and persist the verdict as a code analysis report. With --quick, run the heuristic commit/readme scan instead (no AI credential needed). With --all, scan every repository of the student's GitHub account.",
	RunE:  runAnalyzeRepo,
}

var (
	analyzeUsername string
	analyzeRepoURL  string
	analyzeQuick    bool
	analyzeAll      bool
	analyzeConfig   string
	analyzeVerbose  bool
)

func init() {
	analyzeRepoCmd.Flags().StringVarP(&analyzeUsername, "user", "u", "", "Username of the student (required)")
	analyzeRepoCmd.Flags().StringVarP(&analyzeRepoURL, "repo", "r", "", "GitHub repository URL (required unless --all)")
	analyzeRepoCmd.Flags().BoolVar(&analyzeQuick, "quick", false, "Heuristic scan without the AI judge")
	analyzeRepoCmd.Flags().BoolVar(&analyzeAll, "all", false, "Scan every repository of the student's GitHub account")
	analyzeRepoCmd.Flags().StringVar(&analyzeConfig, "config", "", "Path to JSON config file")
	analyzeRepoCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print a formatted verdict box")
	_ = analyzeRepoCmd.MarkFlagRequired("user")

	rootCmd.AddCommand(analyzeRepoCmd)
}

func runAnalyzeRepo(_ *cobra.Command, _ []string) error {
	if analyzeRepoURL == "" && !analyzeAll {
		return fmt.Errorf("either --repo or --all is required")
	}
	if analyzeRepoURL != "" && analyzeAll {
		return fmt.Errorf("cannot use --repo together with --all")
	}

	cfg, err := loadConfig(analyzeConfig)
	if err != nil {
		return err
	}

	ctx := context.Background()
	database, user, err := connectAndLoadUser(ctx, cfg, analyzeUsername)
	if err != nil {
		return err
	}
	defer database.Close()

	var judge authenticity.ChunkJudge
	if cfg.JudgeConfigured() {
		client, err := llm.NewClient(ctx, llmConfig(cfg), cfg.GeminiAPIKey)
		if err != nil {
			return err
		}
		defer func() { _ = client.Close() }()
		judge = authenticity.NewLLMJudge(client)
	}
	analyzer := authenticity.NewAnalyzer(judge, database, cfg)

	if analyzeAll {
		owner := platform.ExtractUsername(user.GitHubLink)
		if owner == "" {
			return fmt.Errorf("user %s has no GitHub link", user.Username)
		}
		flags := analyzer.FlagAccountRepos(ctx, owner, user)
		return printJSON(map[string]any{
			"owner":         owner,
			"flagged_repos": flags,
		})
	}

	owner, repo, ok := authenticity.ExtractOwnerRepo(analyzeRepoURL)
	if !ok {
		return fmt.Errorf("invalid GitHub repository URL: %s", analyzeRepoURL)
	}

	if analyzeQuick {
		result, err := analyzer.QuickScan(ctx, owner, repo)
		if err != nil {
			return err
		}
		return printJSON(result)
	}

	analysis, err := analyzer.Analyze(ctx, owner, repo, user)
	if err != nil {
		return err
	}

	report := &db.CodeAnalysisReport{
		UserID:  user.ID,
		RepoURL: analysis.RepoURL,
		Summary: fmt.Sprintf("AI-generated: %s (%d/100)", analysis.AIGenerated, analysis.AIConfidence),
		Score:   analysis.AIConfidence,
		Metrics: map[string]any{
			"ai_generated":   analysis.AIGenerated,
			"languages":      analysis.Languages,
			"files_analyzed": analysis.FilesAnalyzed,
			"lines_analyzed": analysis.LinesAnalyzed,
			"top_ai_files":   analysis.TopAIFiles,
		},
		Status: "completed",
	}
	if err := database.UpsertReport(ctx, report); err != nil {
		return fmt.Errorf("failed to save analysis report: %w", err)
	}
	if err := database.TouchAnalyzedAt(ctx, user.ID, time.Now()); err != nil {
		return fmt.Errorf("failed to update analysis timestamp: %w", err)
	}

	if analyzeVerbose || cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintRepoAnalysis(analysis)
	}
	return printJSON(analysis)
}
