package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/skillsence/skillverify/internal/observability"
	"github.com/skillsence/skillverify/internal/platform"
	"github.com/skillsence/skillverify/internal/scoring"
	"github.com/skillsence/skillverify/internal/skillsync"
	"github.com/skillsence/skillverify/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Refresh platform signals and recompute a student's scores",
	Long:  "Fetch GitHub and LeetCode signals for a student (respecting the freshness window), recompute the four headline scores, sync skills, and persist score cards plus the daily snapshot.",
	RunE:  runScore,
}

var (
	scoreUsername string
	scoreForce    bool
	scoreConfig   string
	scoreVerbose  bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreUsername, "user", "u", "", "Username of the student to score (required)")
	scoreCmd.Flags().BoolVar(&scoreForce, "force", false, "Refetch platform stats even when they are fresh")
	scoreCmd.Flags().StringVar(&scoreConfig, "config", "", "Path to JSON config file")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print formatted score boxes")
	_ = scoreCmd.MarkFlagRequired("user")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(scoreConfig)
	if err != nil {
		return err
	}

	ctx := context.Background()
	database, user, err := connectAndLoadUser(ctx, cfg, scoreUsername)
	if err != nil {
		return err
	}
	defer database.Close()

	if user.Role != types.RoleStudent {
		return fmt.Errorf("scores apply to student profiles only (user %s has role %s)", user.Username, user.Role)
	}

	unlock := userLocks.Lock(user.ID)
	defer unlock()

	// The username lookup ran before the lock was held; re-read the row so
	// the computation starts from the latest stored blobs.
	if fresh, err := database.GetUser(ctx, user.ID); err != nil {
		return err
	} else if fresh != nil {
		user = fresh
	}

	fetcher := platform.NewFetcher(database, cfg)
	result, err := fetcher.Analyze(ctx, user, scoreForce)
	if err != nil {
		return fmt.Errorf("failed to refresh platform stats: %w", err)
	}

	scores, breakdown := scoring.Compute(user)

	if err := skillsync.Sync(ctx, database, user, scores.CodingSkillIndex); err != nil {
		return fmt.Errorf("failed to sync skills: %w", err)
	}

	changes := make(map[types.ScoreType]int, 4)
	for _, scoreType := range types.ScoreTypes() {
		change, err := database.UpsertScoreCard(ctx, user.ID, scoreType, scores.Get(scoreType))
		if err != nil {
			return fmt.Errorf("failed to save score card: %w", err)
		}
		changes[scoreType] = change
	}

	if err := database.UpsertSnapshot(ctx, user.ID, time.Now(), scores); err != nil {
		return fmt.Errorf("failed to save score snapshot: %w", err)
	}

	recommendations := scoring.Recommendations(user)

	if scoreVerbose || cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintScores(scores, &breakdown)
		printer.PrintSyncedSkills(skillsync.Plan(user, scores.CodingSkillIndex))
		printer.PrintRecommendations(recommendations)
	}

	return printJSON(map[string]any{
		"username":        user.Username,
		"scores":          scores,
		"breakdown":       breakdown,
		"changes":         changes,
		"recommendations": recommendations,
		"from_cache":      result != nil && result.FromCache,
	})
}
