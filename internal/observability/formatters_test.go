package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skillsence/skillverify/internal/db"
	"github.com/skillsence/skillverify/internal/types"
)

func TestPrintScores(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	scores := types.ScoreSet{
		CodingSkillIndex:   79,
		CommunicationScore: 24,
		AuthenticityScore:  55,
		PlacementReady:     68,
	}
	breakdown := &types.Breakdown{
		PlacementReady: map[string]float64{
			"coding_weighted": 47.18,
			"cgpa_bonus":      7,
		},
	}

	p.PrintScores(scores, breakdown)
	output := buf.String()

	assert.Contains(t, output, "STUDENT SCORES")
	assert.Contains(t, output, "79")
	assert.Contains(t, output, "coding_weighted")
	assert.Contains(t, output, "cgpa_bonus")
}

func TestPrintScoreCards_EmptyPrintsNothing(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScoreCards(nil)

	assert.Empty(t, buf.String())
}

func TestPrintScoreCards_ShowsDelta(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScoreCards([]db.ScoreCard{
		{ScoreType: types.ScoreCodingSkillIndex, Score: 70, Change: 5},
		{ScoreType: types.ScorePlacementReady, Score: 60},
	})
	output := buf.String()

	assert.Contains(t, output, "coding_skill_index")
	assert.Contains(t, output, "(+5)")
	assert.Contains(t, output, "placement_ready")
}

func TestPrintRecommendations_TruncatesList(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	recs := make([]types.Recommendation, 7)
	for i := range recs {
		recs[i] = types.Recommendation{
			Title:       "Raise LeetCode consistency",
			Description: "Solve a few problems each week",
			Priority:    "medium",
		}
	}

	p.PrintRecommendations(recs)
	output := buf.String()

	assert.Contains(t, output, "RECOMMENDATIONS")
	assert.Contains(t, output, "Raise LeetCode consistency")
	assert.Contains(t, output, "and 2 more")
}

func TestPrintRepoAnalysis(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRepoAnalysis(&types.RepoAnalysis{
		RepoName:      "asha/todo-api",
		AIGenerated:   types.VerdictPossible,
		AIConfidence:  55,
		Languages:     []string{"Go", "JavaScript"},
		FilesAnalyzed: 12,
		LinesAnalyzed: 2400,
		TopAIFiles: []types.FileVerdict{
			{Path: "cmd/server/main.go", Score: 80},
		},
	})
	output := buf.String()

	assert.Contains(t, output, "REPO AUTHENTICITY")
	assert.Contains(t, output, "asha/todo-api")
	assert.Contains(t, output, "possible")
	assert.Contains(t, output, "cmd/server/main.go")
}

func TestPrintRepoAnalysis_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRepoAnalysis(nil)

	assert.Empty(t, buf.String())
}

func TestPrintInterview(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	session := &db.InterviewSession{
		Status: types.SessionActive,
		Metrics: []types.Metric{
			{Label: "Interview Score", Value: 40},
			{Label: "Progress", Value: 30},
		},
		Transcript: []types.TranscriptEntry{
			{Speaker: "AI", Text: "Explain the difference between REST and GraphQL."},
			{Speaker: "You", Text: "REST exposes resources over HTTP verbs."},
		},
	}
	state := types.InterviewState{
		TotalQuestions:  10,
		CurrentIndex:    2,
		CurrentQuestion: "What is a primary key and why is it important?",
		Score:           40,
	}

	p.PrintInterview(session, state)
	output := buf.String()

	assert.Contains(t, output, "INTERVIEW")
	assert.Contains(t, output, "3 of 10")
	assert.Contains(t, output, "Interview Score")
	assert.Contains(t, output, "You:")
}
