// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/skillsence/skillverify/internal/db"
	"github.com/skillsence/skillverify/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScores outputs the four headline scores with their largest
// breakdown contributions.
func (p *Printer) PrintScores(scores types.ScoreSet, breakdown *types.Breakdown) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Coding Skill Index:  %3d\n", scores.CodingSkillIndex))
	sb.WriteString(fmt.Sprintf("Communication:       %3d\n", scores.CommunicationScore))
	sb.WriteString(fmt.Sprintf("Authenticity:        %3d\n", scores.AuthenticityScore))
	sb.WriteString(fmt.Sprintf("Placement Ready:     %3d\n", scores.PlacementReady))

	if breakdown != nil && len(breakdown.PlacementReady) > 0 {
		sb.WriteString("\nPlacement factors:\n")
		for _, key := range []string{"coding_weighted", "communication_weighted", "authenticity_weighted", "cgpa_bonus"} {
			if value, ok := breakdown.PlacementReady[key]; ok {
				sb.WriteString(fmt.Sprintf("  %-24s %6.2f\n", key, value))
			}
		}
	}

	p.printBox("STUDENT SCORES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScoreCards outputs the stored score cards with their deltas.
func (p *Printer) PrintScoreCards(cards []db.ScoreCard) {
	if len(cards) == 0 {
		return
	}

	var sb strings.Builder
	for i, card := range cards {
		sb.WriteString(fmt.Sprintf("%-22s %3d", card.ScoreType, card.Score))
		if card.Change != 0 {
			sb.WriteString(fmt.Sprintf("  (%+d)", card.Change))
		}
		if i < len(cards)-1 {
			sb.WriteString("\n")
		}
	}
	p.printBox("SCORE CARDS", sb.String())
}

// PrintRecommendations outputs derived action items.
func (p *Printer) PrintRecommendations(recs []types.Recommendation) {
	if len(recs) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(recs), maxItemsToShow)
	for i := 0; i < count; i++ {
		rec := recs[i]
		sb.WriteString(fmt.Sprintf("• [%s] %s\n", rec.Priority, rec.Title))
		desc := rec.Description
		if len(desc) > 50 {
			desc = desc[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("  %s\n", desc))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(recs) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more", len(recs)-maxItemsToShow))
	}

	p.printBox("RECOMMENDATIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSyncedSkills outputs the skill rows written during a sync pass.
func (p *Printer) PrintSyncedSkills(skills []db.Skill) {
	if len(skills) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Synced %d skills:\n\n", len(skills)))

	count := min(len(skills), maxItemsToShow)
	for i := 0; i < count; i++ {
		skill := skills[i]
		marker := " "
		if skill.Verified {
			marker = "✓"
		}
		sb.WriteString(fmt.Sprintf("%s %-18s %3d  %s\n", marker, skill.Name, skill.Score, skill.Level))
	}
	if len(skills) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(skills)-maxItemsToShow))
	}

	p.printBox("SKILL SYNC", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRepoAnalysis outputs a repository authenticity verdict with its
// most suspicious files.
func (p *Printer) PrintRepoAnalysis(analysis *types.RepoAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Repository: %s\n", analysis.RepoName))
	sb.WriteString(fmt.Sprintf("Verdict:    %s (%d/100)\n", analysis.AIGenerated, analysis.AIConfidence))
	sb.WriteString(fmt.Sprintf("Analyzed:   %d files, %d lines\n", analysis.FilesAnalyzed, analysis.LinesAnalyzed))
	if len(analysis.Languages) > 0 {
		languages := strings.Join(analysis.Languages, ", ")
		if len(languages) > 40 {
			languages = languages[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("Languages:  %s\n", languages))
	}

	if len(analysis.TopAIFiles) > 0 {
		sb.WriteString("\nTop flagged files:\n")
		count := min(len(analysis.TopAIFiles), maxItemsToShow)
		for i := 0; i < count; i++ {
			file := analysis.TopAIFiles[i]
			path := file.Path
			if len(path) > 36 {
				path = "..." + path[len(path)-33:]
			}
			sb.WriteString(fmt.Sprintf("  %3d  %s\n", file.Score, path))
		}
	}

	p.printBox("REPO AUTHENTICITY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintInterview outputs the session state, latest transcript lines, and
// current metrics.
func (p *Printer) PrintInterview(session *db.InterviewSession, state types.InterviewState) {
	if session == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Status:    %s\n", session.Status))
	sb.WriteString(fmt.Sprintf("Question:  %d of %d\n", state.CurrentIndex+1, state.TotalQuestions))
	sb.WriteString(fmt.Sprintf("Score:     %d%%\n", state.Score))

	if len(session.Metrics) > 0 {
		sb.WriteString("\n")
		for _, metric := range session.Metrics {
			sb.WriteString(fmt.Sprintf("%-16s %3d\n", metric.Label, metric.Value))
		}
	}

	if len(session.Transcript) > 0 {
		sb.WriteString("\nRecent transcript:\n")
		start := len(session.Transcript) - 3
		if start < 0 {
			start = 0
		}
		for _, entry := range session.Transcript[start:] {
			text := entry.Text
			if idx := strings.IndexByte(text, '\n'); idx >= 0 {
				text = text[:idx]
			}
			if len(text) > 42 {
				text = text[:39] + "..."
			}
			sb.WriteString(fmt.Sprintf("  %-4s %s\n", entry.Speaker+":", text))
		}
	}

	p.printBox("INTERVIEW", strings.TrimSuffix(sb.String(), "\n"))
}
