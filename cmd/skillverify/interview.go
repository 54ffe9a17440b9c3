package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skillsence/skillverify/internal/db"
	"github.com/skillsence/skillverify/internal/interview"
	"github.com/skillsence/skillverify/internal/llm"
	"github.com/skillsence/skillverify/internal/observability"
	"github.com/skillsence/skillverify/internal/types"
)

var interviewCmd = &cobra.Command{
	Use:   "interview <start|respond|finish|status>",
	Short: "Run a mock interview session",
	Long:  "Drive a stateful mock interview: start opens a session (superseding any active one), respond scores an answer and advances, finish completes early, status reports the stored session.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInterview,
}

var (
	interviewUsername string
	interviewMessage  string
	interviewConfig   string
	interviewVerbose  bool
)

func init() {
	interviewCmd.Flags().StringVarP(&interviewUsername, "user", "u", "", "Username of the student (required)")
	interviewCmd.Flags().StringVarP(&interviewMessage, "message", "m", "", "Answer text (required for respond)")
	interviewCmd.Flags().StringVar(&interviewConfig, "config", "", "Path to JSON config file")
	interviewCmd.Flags().BoolVarP(&interviewVerbose, "verbose", "v", false, "Print a formatted session box")
	_ = interviewCmd.MarkFlagRequired("user")

	rootCmd.AddCommand(interviewCmd)
}

func runInterview(_ *cobra.Command, args []string) error {
	action := args[0]

	cfg, err := loadConfig(interviewConfig)
	if err != nil {
		return err
	}

	ctx := context.Background()
	database, user, err := connectAndLoadUser(ctx, cfg, interviewUsername)
	if err != nil {
		return err
	}
	defer database.Close()

	unlock := userLocks.Lock(user.ID)
	defer unlock()

	var generator *interview.Generator
	if cfg.GeminiAPIKey != "" {
		client, err := llm.NewClient(ctx, llmConfig(cfg), cfg.GeminiAPIKey)
		if err != nil {
			return err
		}
		defer func() { _ = client.Close() }()
		generator = interview.NewGenerator(client)
	}
	engine := interview.NewEngine(database, generator)

	var session *db.InterviewSession
	switch action {
	case "start":
		session, err = engine.Start(ctx, user, skillNames(ctx, database, user))
	case "respond":
		session, err = engine.Respond(ctx, user, interviewMessage)
	case "finish":
		session, err = engine.Finish(ctx, user)
	case "status":
		session, err = database.LatestSession(ctx, user.ID)
		if err == nil && session == nil {
			return printJSON(map[string]any{"status": "idle"})
		}
	default:
		return fmt.Errorf("unknown action %q (expected start, respond, finish, or status)", action)
	}
	if err != nil {
		return err
	}

	state := interview.StateFor(session)
	if interviewVerbose || cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintInterview(session, state)
	}
	return printJSON(map[string]any{
		"status":     session.Status,
		"state":      state,
		"transcript": session.Transcript,
		"feedback":   session.Feedback,
		"metrics":    session.Metrics,
		"tips":       session.Tips,
	})
}

// skillNames collects the user's synced skill rows, falling back to the
// declared skill list when none are stored yet.
func skillNames(ctx context.Context, database *db.DB, user *types.UserProfile) []string {
	skills, err := database.ListSkills(ctx, user.ID)
	if err != nil || len(skills) == 0 {
		return types.SplitSkills(user.StudentSkills)
	}
	names := make([]string, 0, len(skills))
	for _, skill := range skills {
		names = append(names, skill.Name)
	}
	return names
}
