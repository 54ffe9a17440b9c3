package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/skillsence/skillverify/internal/types"
)

// ScoreCard holds the current value and delta for one headline score,
// unique on (user, score_type).
type ScoreCard struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"user_id"`
	ScoreType types.ScoreType `json:"score_type"`
	Score     int             `json:"score"`
	Change    int             `json:"change"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// UpsertScoreCard stores a recomputed score, deriving change as the delta
// against the previously stored value (zero when no previous row exists).
// The read and write run in one transaction so concurrent recomputes cannot
// interleave.
func (db *DB) UpsertScoreCard(ctx context.Context, userID uuid.UUID, scoreType types.ScoreType, score int) (change int, err error) {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var previous int
	err = tx.QueryRow(ctx,
		`SELECT score FROM scorecards WHERE user_id = $1 AND score_type = $2 FOR UPDATE`,
		userID, scoreType,
	).Scan(&previous)
	switch err {
	case nil:
		change = score - previous
	case pgx.ErrNoRows:
		change = 0
	default:
		return 0, fmt.Errorf("failed to read previous score: %w", err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO scorecards (user_id, score_type, score, change)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_id, score_type)
		 DO UPDATE SET score = $3, change = $4, updated_at = NOW()`,
		userID, scoreType, score, change,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to upsert scorecard %s: %w", scoreType, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit scorecard upsert: %w", err)
	}
	return change, nil
}

// ListScoreCards retrieves all scorecards for a user.
func (db *DB) ListScoreCards(ctx context.Context, userID uuid.UUID) ([]ScoreCard, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, score_type, score, change, created_at, updated_at
		 FROM scorecards WHERE user_id = $1 ORDER BY score_type`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list scorecards: %w", err)
	}
	defer rows.Close()

	var cards []ScoreCard
	for rows.Next() {
		var c ScoreCard
		if err := rows.Scan(&c.ID, &c.UserID, &c.ScoreType, &c.Score, &c.Change, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan scorecard: %w", err)
		}
		cards = append(cards, c)
	}
	return cards, nil
}
