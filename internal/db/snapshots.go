package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/skillsence/skillverify/internal/types"
)

// ScoreSnapshot is one day's frozen copy of all four headline scores,
// unique on (user, recorded_on).
type ScoreSnapshot struct {
	ID         uuid.UUID      `json:"id"`
	UserID     uuid.UUID      `json:"user_id"`
	RecordedOn time.Time      `json:"recorded_on"`
	Scores     types.ScoreSet `json:"scores"`
	CreatedAt  time.Time      `json:"created_at"`
}

// UpsertSnapshot stores the score set for one calendar day. Repeated
// computation on the same day overwrites the existing row.
func (db *DB) UpsertSnapshot(ctx context.Context, userID uuid.UUID, recordedOn time.Time, scores types.ScoreSet) error {
	scoresJSON, err := json.Marshal(scores)
	if err != nil {
		return fmt.Errorf("failed to marshal scores: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO score_snapshots (user_id, recorded_on, scores)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id, recorded_on)
		 DO UPDATE SET scores = $3`,
		userID, recordedOn.Format("2006-01-02"), scoresJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert snapshot: %w", err)
	}
	return nil
}

// ListSnapshotsSince retrieves snapshots recorded on or after the cutoff
// date, oldest first.
func (db *DB) ListSnapshotsSince(ctx context.Context, userID uuid.UUID, cutoff time.Time) ([]ScoreSnapshot, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, recorded_on, scores, created_at
		 FROM score_snapshots
		 WHERE user_id = $1 AND recorded_on >= $2
		 ORDER BY recorded_on`,
		userID, cutoff.Format("2006-01-02"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []ScoreSnapshot
	for rows.Next() {
		var s ScoreSnapshot
		var scoresJSON []byte
		if err := rows.Scan(&s.ID, &s.UserID, &s.RecordedOn, &scoresJSON, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		if err := json.Unmarshal(scoresJSON, &s.Scores); err != nil {
			return nil, fmt.Errorf("failed to decode snapshot scores: %w", err)
		}
		snapshots = append(snapshots, s)
	}
	return snapshots, nil
}
