package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skillsence/skillverify/internal/platform"
)

var importLinkedInCmd = &cobra.Command{
	Use:   "import-linkedin",
	Short: "Import a student's public LinkedIn profile",
	Long:  "Render the student's public LinkedIn profile page, extract headline, about, and section counts, and store them on the profile for communication scoring.",
	RunE:  runImportLinkedIn,
}

var (
	importUsername string
	importConfig   string
	importVerbose  bool
)

func init() {
	importLinkedInCmd.Flags().StringVarP(&importUsername, "user", "u", "", "Username of the student (required)")
	importLinkedInCmd.Flags().StringVar(&importConfig, "config", "", "Path to JSON config file")
	importLinkedInCmd.Flags().BoolVarP(&importVerbose, "verbose", "v", false, "Log fetch progress")
	_ = importLinkedInCmd.MarkFlagRequired("user")

	rootCmd.AddCommand(importLinkedInCmd)
}

func runImportLinkedIn(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(importConfig)
	if err != nil {
		return err
	}

	ctx := context.Background()
	database, user, err := connectAndLoadUser(ctx, cfg, importUsername)
	if err != nil {
		return err
	}
	defer database.Close()

	if user.LinkedInLink == "" {
		return fmt.Errorf("user %s has no LinkedIn link", user.Username)
	}

	unlock := userLocks.Lock(user.ID)
	defer unlock()

	profile, err := platform.ImportLinkedInProfile(ctx, user.LinkedInLink, importVerbose || cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to import LinkedIn profile: %w", err)
	}

	err = database.UpdateLinkedInFields(ctx, user.ID,
		profile.Headline, profile.About,
		profile.ExperienceCount, profile.SkillCount, profile.CertCount)
	if err != nil {
		return fmt.Errorf("failed to save LinkedIn fields: %w", err)
	}

	return printJSON(map[string]any{
		"username":         user.Username,
		"headline":         profile.Headline,
		"about_length":     len(profile.About),
		"experience_count": profile.ExperienceCount,
		"skill_count":      profile.SkillCount,
		"cert_count":       profile.CertCount,
	})
}
