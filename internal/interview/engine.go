package interview

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/skillsence/skillverify/internal/db"
	"github.com/skillsence/skillverify/internal/types"
)

const (
	// defaultTotalQuestions is the session length including the intro
	// questions.
	defaultTotalQuestions = 10
	// shortAnswerWords is the length below which an answer earns a
	// heuristic follow-up when the model offers none.
	shortAnswerWords = 25
)

// Store is the session persistence the engine needs.
type Store interface {
	ActiveSession(ctx context.Context, userID uuid.UUID) (*db.InterviewSession, error)
	CreateSession(ctx context.Context, session *db.InterviewSession) error
	SaveSession(ctx context.Context, session *db.InterviewSession) error
	MarkProfileVerified(ctx context.Context, userID uuid.UUID) error
}

// Engine runs stateful mock interview sessions. Starting a session
// supersedes any previous active one; answering advances through the
// question list, optionally inserting AI follow-ups along the way.
type Engine struct {
	store Store
	total int
	rng   *rand.Rand
	now   func() time.Time

	generateQuestions func(ctx context.Context, skills []string, total int) ([]types.Question, error)
	generateFollowUp  func(ctx context.Context, question, answer string) (*types.Question, error)
}

// NewEngine builds an engine over the given store. The generator may be
// nil, in which case every session draws from the built-in bank and
// follow-ups use the short-answer heuristic only.
func NewEngine(store Store, generator *Generator) *Engine {
	return &Engine{
		store:             store,
		total:             defaultTotalQuestions,
		rng:               rand.New(rand.NewSource(time.Now().UnixNano())),
		now:               time.Now,
		generateQuestions: generator.GenerateQuestions,
		generateFollowUp:  generator.GenerateFollowUp,
	}
}

// Start opens a new session for the user, superseding any active one.
// Technical questions come from the AI generator when available and fall
// back to the skill-matched bank selection otherwise.
func (e *Engine) Start(ctx context.Context, user *types.UserProfile, skills []string) (*db.InterviewSession, error) {
	intro := introQuestions()
	technicalTotal := e.total - len(intro)
	if technicalTotal < 0 {
		technicalTotal = 0
	}

	technical, err := e.generateQuestions(ctx, skills, technicalTotal)
	if err != nil || len(technical) < technicalTotal {
		technical = selectFromBank(skills, technicalTotal, e.rng)
	}

	questions := append(intro, technical...)
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	first := questions[0]

	session := &db.InterviewSession{
		UserID:    user.ID,
		Status:    types.SessionActive,
		Questions: questions,
		Answers:   []types.Answer{},
		Transcript: []types.TranscriptEntry{{
			Speaker:       "AI",
			Text:          first.Question,
			Difficulty:    string(first.Difficulty),
			QuestionIndex: 0,
		}},
		Metrics: BuildMetrics(nil, questions, 0),
		Tips:    BuildTips(nil),
	}
	if err := e.store.CreateSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Respond records the user's answer to the current question, scores it,
// and advances the session. A follow-up question may be inserted right
// after the current one; follow-ups themselves never spawn further
// follow-ups. Answering the final question completes the session.
func (e *Engine) Respond(ctx context.Context, user *types.UserProfile, message string) (*db.InterviewSession, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrEmptyMessage
	}

	session, err := e.store.ActiveSession(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrNoActiveSession
	}
	if session.Status != types.SessionActive {
		return nil, ErrAlreadyCompleted
	}
	if len(session.Questions) == 0 {
		return nil, ErrNoQuestions
	}

	index := session.CurrentIndex
	if index >= len(session.Questions) {
		return nil, ErrAlreadyCompleted
	}
	current := session.Questions[index]

	wordCount := len(strings.Fields(message))
	points := ScoreAnswer(message, current.Difficulty)

	session.Answers = append(session.Answers, types.Answer{
		Question:   current.Question,
		Difficulty: current.Difficulty,
		Answer:     message,
		WordCount:  wordCount,
		Points:     points,
	})
	session.Transcript = append(session.Transcript, types.TranscriptEntry{
		Speaker:       "You",
		Text:          message,
		Difficulty:    string(current.Difficulty),
		QuestionIndex: index,
	})
	session.Score += points

	if !current.IsFollowUp() {
		if followUp := e.followUpFor(ctx, current.Question, message, wordCount); followUp != nil {
			session.Questions = append(session.Questions, types.Question{})
			copy(session.Questions[index+2:], session.Questions[index+1:])
			session.Questions[index+1] = *followUp
		}
	}

	if index+1 < len(session.Questions) {
		next := session.Questions[index+1]
		session.Transcript = append(session.Transcript, types.TranscriptEntry{
			Speaker:       "AI",
			Text:          next.Question,
			Difficulty:    string(next.Difficulty),
			QuestionIndex: index + 1,
		})
		session.CurrentIndex = index + 1
	} else {
		summary := BuildSummary(session.Answers)
		completedAt := e.now()
		session.CurrentIndex = index + 1
		session.Status = types.SessionCompleted
		session.CompletedAt = &completedAt
		session.Transcript = append(session.Transcript, types.TranscriptEntry{
			Speaker: "AI",
			Text: fmt.Sprintf(
				"Interview completed. Summary:\nStrengths: %s. Improvements: %s.",
				strings.Join(summary.Strengths, ", "),
				strings.Join(summary.Improvements, ", "),
			),
			Difficulty:    "summary",
			QuestionIndex: index,
		})
	}

	session.Metrics = BuildMetrics(session.Answers, session.Questions, session.Score)
	session.Feedback = BuildFeedback(session.Answers[len(session.Answers)-1])
	session.Tips = BuildTips(session.Answers)

	if err := e.store.SaveSession(ctx, session); err != nil {
		return nil, err
	}
	if session.Status == types.SessionCompleted {
		if err := e.maybeMarkVerified(ctx, user, session); err != nil {
			return nil, err
		}
	}
	return session, nil
}

// Finish completes the active session immediately, regardless of how many
// questions remain.
func (e *Engine) Finish(ctx context.Context, user *types.UserProfile) (*db.InterviewSession, error) {
	session, err := e.store.ActiveSession(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrNoActiveSession
	}

	completedAt := e.now()
	session.Status = types.SessionCompleted
	session.CompletedAt = &completedAt
	if err := e.store.SaveSession(ctx, session); err != nil {
		return nil, err
	}
	if err := e.maybeMarkVerified(ctx, user, session); err != nil {
		return nil, err
	}
	return session, nil
}

// followUpFor picks the follow-up to insert after the current answer, if
// any. The AI suggestion wins; short answers get a canned prompt when the
// model offers nothing.
func (e *Engine) followUpFor(ctx context.Context, question, answer string, wordCount int) *types.Question {
	if e.generateFollowUp != nil {
		if followUp, err := e.generateFollowUp(ctx, question, answer); err == nil && followUp != nil {
			followUp.ID = e.followUpID()
			return followUp
		}
	}
	if wordCount < shortAnswerWords {
		return &types.Question{
			ID:         e.followUpID(),
			Question:   "Can you add more detail and a concrete example to support that?",
			Difficulty: types.DifficultyEasy,
			Tags:       []string{"followup"},
		}
	}
	return nil
}

func (e *Engine) followUpID() string {
	return fmt.Sprintf("followup-%d", 1000+e.rng.Intn(9000))
}

// maybeMarkVerified flags the profile as interview-verified once every
// question in a session has been answered.
func (e *Engine) maybeMarkVerified(ctx context.Context, user *types.UserProfile, session *db.InterviewSession) error {
	total := len(session.Questions)
	if total == 0 || len(session.Answers) < total || user.ProfileVerified {
		return nil
	}
	if err := e.store.MarkProfileVerified(ctx, user.ID); err != nil {
		return err
	}
	user.ProfileVerified = true
	return nil
}
