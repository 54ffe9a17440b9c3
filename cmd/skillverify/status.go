package main

import (
	"context"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/skillsence/skillverify/internal/config"
	"github.com/skillsence/skillverify/internal/db"
	"github.com/skillsence/skillverify/internal/llm"
	"github.com/skillsence/skillverify/internal/observability"
	"github.com/skillsence/skillverify/internal/prompts"
	"github.com/skillsence/skillverify/internal/types"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report a student's stored scores, trend, and interview state",
	Long:  "Read the persisted score cards, the snapshot history for the trend window, and whether a mock interview was completed. With an AI credential configured, a short readiness summary is generated as well.",
	RunE:  runStatus,
}

var (
	statusUsername string
	statusDays     int
	statusConfig   string
	statusVerbose  bool
)

func init() {
	statusCmd.Flags().StringVarP(&statusUsername, "user", "u", "", "Username of the student (required)")
	statusCmd.Flags().IntVar(&statusDays, "days", 30, "Days of snapshot history to include")
	statusCmd.Flags().StringVar(&statusConfig, "config", "", "Path to JSON config file")
	statusCmd.Flags().BoolVarP(&statusVerbose, "verbose", "v", false, "Print formatted score cards")
	_ = statusCmd.MarkFlagRequired("user")

	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(statusConfig)
	if err != nil {
		return err
	}

	ctx := context.Background()
	database, user, err := connectAndLoadUser(ctx, cfg, statusUsername)
	if err != nil {
		return err
	}
	defer database.Close()

	cards, err := database.ListScoreCards(ctx, user.ID)
	if err != nil {
		return err
	}
	cutoff := time.Now().AddDate(0, 0, -statusDays)
	snapshots, err := database.ListSnapshotsSince(ctx, user.ID, cutoff)
	if err != nil {
		return err
	}
	interviewed, err := database.HasCompletedSession(ctx, user.ID)
	if err != nil {
		return err
	}

	output := map[string]any{
		"username":            user.Username,
		"profile_verified":    user.ProfileVerified,
		"last_analyzed_at":    user.LastAnalyzedAt,
		"interview_completed": interviewed,
		"scorecards":          cards,
		"snapshots":           snapshots,
	}

	if cfg.JudgeConfigured() {
		client, err := llm.NewClient(ctx, llmConfig(cfg), cfg.GeminiAPIKey)
		if err != nil {
			return err
		}
		defer func() { _ = client.Close() }()
		if summary := readinessSummary(ctx, client, cards, interviewed); summary != "" {
			output["summary"] = summary
		}
	}

	if statusVerbose || cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintScoreCards(cards)
	}
	return printJSON(output)
}

// readinessSummary asks the model for a short plain-text readiness blurb.
// Status output never depends on the model; any failure yields an empty
// string.
func readinessSummary(ctx context.Context, client llm.Client, cards []db.ScoreCard, interviewed bool) string {
	template, err := prompts.Get("status.json", "readiness_summary")
	if err != nil {
		return ""
	}

	scores := make(map[types.ScoreType]int, len(cards))
	for _, card := range cards {
		scores[card.ScoreType] = card.Score
	}
	prompt := prompts.Format(template, map[string]string{
		"Coding":        strconv.Itoa(scores[types.ScoreCodingSkillIndex]),
		"Communication": strconv.Itoa(scores[types.ScoreCommunication]),
		"Authenticity":  strconv.Itoa(scores[types.ScoreAuthenticity]),
		"Placement":     strconv.Itoa(scores[types.ScorePlacementReady]),
		"Interviewed":   strconv.FormatBool(interviewed),
	})

	ctx, cancel := context.WithTimeout(ctx, config.DefaultGenerateTimeout)
	defer cancel()
	text, err := client.GenerateContent(ctx, prompt, llm.TierLite)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(text)
}
