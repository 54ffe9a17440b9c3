// Package skillsync reconciles a student's stored skill rows with their
// declared skill list and the languages detected on their GitHub account.
package skillsync

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/skillsence/skillverify/internal/db"
	"github.com/skillsence/skillverify/internal/types"
)

// languageSkillNames is the allowlist of GitHub languages that become
// verified skill rows. Anything outside it is ignored.
var languageSkillNames = map[string]string{
	"JavaScript": "JavaScript",
	"TypeScript": "TypeScript",
	"Python":     "Python",
	"Java":       "Java",
	"C++":        "C++",
	"C":          "C",
	"Go":         "Go",
	"Ruby":       "Ruby",
	"PHP":        "PHP",
	"C#":         "C#",
	"HTML":       "HTML",
	"CSS":        "CSS",
}

const (
	skillBaseScore     = 40
	skillCodingWeight  = 0.3
	languageSkillBonus = 20
	skillScoreCap      = 100
)

// SkillStore is the subset of the store the synchronizer writes through.
type SkillStore interface {
	UpsertSkill(ctx context.Context, userID uuid.UUID, name string, score int, level types.SkillLevel, verified bool) error
}

// Sync upserts one skill row per declared or language-derived skill. Rows
// are only ever created or updated, never deleted, so skills a student
// removes from their declared list keep their last synced state.
func Sync(ctx context.Context, store SkillStore, user *types.UserProfile, codingSkillIndex int) error {
	for _, skill := range Plan(user, codingSkillIndex) {
		if err := store.UpsertSkill(ctx, user.ID, skill.Name, skill.Score, skill.Level, skill.Verified); err != nil {
			return err
		}
	}
	return nil
}

// Plan computes the skill rows Sync would write, without touching storage.
// Declared skills keep their declared order and casing; language-derived
// skills follow in sorted order; duplicates collapse case-insensitively
// with the first occurrence winning.
func Plan(user *types.UserProfile, codingSkillIndex int) []db.Skill {
	declared := types.SplitSkills(user.StudentSkills)
	derived := languageSkills(user)

	var ordered []string
	seen := make(map[string]bool)
	for _, name := range append(declared, sortedNames(derived)...) {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		ordered = append(ordered, name)
	}

	skills := make([]db.Skill, 0, len(ordered))
	for _, name := range ordered {
		score := skillBaseScore + int(math.Round(float64(codingSkillIndex)*skillCodingWeight))
		verified := derived[name]
		if verified {
			score += languageSkillBonus
		}
		if score > skillScoreCap {
			score = skillScoreCap
		}
		skills = append(skills, db.Skill{
			Name:     name,
			Score:    score,
			Level:    LevelForScore(score),
			Verified: verified,
		})
	}
	return skills
}

// LevelForScore maps a skill score onto its qualitative band.
func LevelForScore(score int) types.SkillLevel {
	switch {
	case score >= 85:
		return types.LevelExpert
	case score >= 70:
		return types.LevelAdvanced
	case score >= 55:
		return types.LevelIntermediate
	default:
		return types.LevelBeginner
	}
}

func languageSkills(user *types.UserProfile) map[string]bool {
	derived := make(map[string]bool)
	if user.GitHubStats.State != types.StatPresent || user.GitHubStats.Stats == nil {
		return derived
	}
	for _, lang := range user.GitHubStats.Stats.Repos.Languages {
		if name, ok := languageSkillNames[lang]; ok {
			derived[name] = true
		}
	}
	return derived
}

func sortedNames(set map[string]bool) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
