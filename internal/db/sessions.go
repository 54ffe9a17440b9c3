package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/skillsence/skillverify/internal/types"
)

// InterviewSession is one stored interview session. At most one active
// session exists per user: starting a new session supersedes any previous
// active one in the same transaction.
type InterviewSession struct {
	ID           uuid.UUID               `json:"id"`
	UserID       uuid.UUID               `json:"user_id"`
	Status       types.SessionStatus     `json:"status"`
	Questions    []types.Question        `json:"questions"`
	Answers      []types.Answer          `json:"answers"`
	CurrentIndex int                     `json:"current_index"`
	Score        int                     `json:"score"`
	Transcript   []types.TranscriptEntry `json:"transcript"`
	Feedback     []types.FeedbackItem    `json:"feedback"`
	Metrics      []types.Metric          `json:"metrics"`
	Tips         []string                `json:"tips"`
	CompletedAt  *time.Time              `json:"completed_at,omitempty"`
	CreatedAt    time.Time               `json:"created_at"`
	UpdatedAt    time.Time               `json:"updated_at"`
}

const sessionColumns = `id, user_id, status, questions, answers, current_index,
	score, transcript, feedback, metrics, tips, completed_at, created_at, updated_at`

// ActiveSession retrieves the user's active session. Returns nil when none
// exists.
func (db *DB) ActiveSession(ctx context.Context, userID uuid.UUID) (*InterviewSession, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+sessionColumns+` FROM interview_sessions
		 WHERE user_id = $1 AND status = 'active'
		 ORDER BY created_at DESC LIMIT 1`,
		userID,
	)
	session, err := scanSession(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active session: %w", err)
	}
	return session, nil
}

// LatestSession retrieves the most recent session regardless of status.
// Returns nil when the user has never started one.
func (db *DB) LatestSession(ctx context.Context, userID uuid.UUID) (*InterviewSession, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+sessionColumns+` FROM interview_sessions
		 WHERE user_id = $1 ORDER BY created_at DESC LIMIT 1`,
		userID,
	)
	session, err := scanSession(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest session: %w", err)
	}
	return session, nil
}

// CreateSession inserts a new active session, superseding any previous
// active session for the user in the same transaction.
func (db *DB) CreateSession(ctx context.Context, session *InterviewSession) error {
	questionsJSON, answersJSON, transcriptJSON, feedbackJSON, metricsJSON, tipsJSON, err := marshalSessionBlobs(session)
	if err != nil {
		return err
	}

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx,
		`UPDATE interview_sessions SET status = 'superseded', updated_at = NOW()
		 WHERE user_id = $1 AND status = 'active'`,
		session.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to supersede previous session: %w", err)
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO interview_sessions
		 (user_id, status, questions, answers, current_index, score,
		  transcript, feedback, metrics, tips)
		 VALUES ($1, 'active', $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id, created_at, updated_at`,
		session.UserID, questionsJSON, answersJSON, session.CurrentIndex,
		session.Score, transcriptJSON, feedbackJSON, metricsJSON, tipsJSON,
	).Scan(&session.ID, &session.CreatedAt, &session.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	session.Status = types.SessionActive

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit session creation: %w", err)
	}
	return nil
}

// SaveSession persists the full mutable state of a session.
func (db *DB) SaveSession(ctx context.Context, session *InterviewSession) error {
	questionsJSON, answersJSON, transcriptJSON, feedbackJSON, metricsJSON, tipsJSON, err := marshalSessionBlobs(session)
	if err != nil {
		return err
	}

	_, err = db.pool.Exec(ctx,
		`UPDATE interview_sessions
		 SET status = $1, questions = $2, answers = $3, current_index = $4,
		     score = $5, transcript = $6, feedback = $7, metrics = $8,
		     tips = $9, completed_at = $10, updated_at = NOW()
		 WHERE id = $11`,
		session.Status, questionsJSON, answersJSON, session.CurrentIndex,
		session.Score, transcriptJSON, feedbackJSON, metricsJSON, tipsJSON,
		session.CompletedAt, session.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// HasCompletedSession reports whether the user completed any interview.
func (db *DB) HasCompletedSession(ctx context.Context, userID uuid.UUID) (bool, error) {
	var exists bool
	err := db.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM interview_sessions
		 WHERE user_id = $1 AND status = 'completed')`,
		userID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check completed sessions: %w", err)
	}
	return exists, nil
}

func marshalSessionBlobs(session *InterviewSession) (questions, answers, transcript, feedback, metrics, tips []byte, err error) {
	if questions, err = json.Marshal(session.Questions); err != nil {
		return nil, nil, nil, nil, nil, nil, fmt.Errorf("failed to marshal questions: %w", err)
	}
	if answers, err = json.Marshal(session.Answers); err != nil {
		return nil, nil, nil, nil, nil, nil, fmt.Errorf("failed to marshal answers: %w", err)
	}
	if transcript, err = json.Marshal(session.Transcript); err != nil {
		return nil, nil, nil, nil, nil, nil, fmt.Errorf("failed to marshal transcript: %w", err)
	}
	if feedback, err = json.Marshal(session.Feedback); err != nil {
		return nil, nil, nil, nil, nil, nil, fmt.Errorf("failed to marshal feedback: %w", err)
	}
	if metrics, err = json.Marshal(session.Metrics); err != nil {
		return nil, nil, nil, nil, nil, nil, fmt.Errorf("failed to marshal metrics: %w", err)
	}
	if tips, err = json.Marshal(session.Tips); err != nil {
		return nil, nil, nil, nil, nil, nil, fmt.Errorf("failed to marshal tips: %w", err)
	}
	return questions, answers, transcript, feedback, metrics, tips, nil
}

func scanSession(row pgx.Row) (*InterviewSession, error) {
	var s InterviewSession
	var questionsJSON, answersJSON, transcriptJSON, feedbackJSON, metricsJSON, tipsJSON []byte

	err := row.Scan(
		&s.ID, &s.UserID, &s.Status, &questionsJSON, &answersJSON,
		&s.CurrentIndex, &s.Score, &transcriptJSON, &feedbackJSON,
		&metricsJSON, &tipsJSON, &s.CompletedAt, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	for _, pair := range []struct {
		data []byte
		dst  any
	}{
		{questionsJSON, &s.Questions},
		{answersJSON, &s.Answers},
		{transcriptJSON, &s.Transcript},
		{feedbackJSON, &s.Feedback},
		{metricsJSON, &s.Metrics},
		{tipsJSON, &s.Tips},
	} {
		if len(pair.data) == 0 {
			continue
		}
		if err := json.Unmarshal(pair.data, pair.dst); err != nil {
			return nil, fmt.Errorf("failed to decode session blob: %w", err)
		}
	}
	return &s, nil
}
