package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/skillsence/skillverify/internal/types"
)

// Skill is a per-user skill record, unique on (user, name).
type Skill struct {
	ID        uuid.UUID        `json:"id"`
	UserID    uuid.UUID        `json:"user_id"`
	Name      string           `json:"name"`
	Level     types.SkillLevel `json:"level"`
	Score     int              `json:"score"`
	Verified  bool             `json:"verified"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// UpsertSkill creates or updates a skill by (user, name). Skills are never
// deleted automatically.
func (db *DB) UpsertSkill(ctx context.Context, userID uuid.UUID, name string, score int, level types.SkillLevel, verified bool) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO skills (user_id, name, score, level, verified)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (user_id, name)
		 DO UPDATE SET score = $3, level = $4, verified = $5, updated_at = NOW()`,
		userID, name, score, level, verified,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert skill %s: %w", name, err)
	}
	return nil
}

// ListSkills retrieves all skills for a user ordered by name.
func (db *DB) ListSkills(ctx context.Context, userID uuid.UUID) ([]Skill, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, name, level, score, verified, created_at, updated_at
		 FROM skills WHERE user_id = $1 ORDER BY name`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	defer rows.Close()

	var skills []Skill
	for rows.Next() {
		var s Skill
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.Level, &s.Score, &s.Verified, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		skills = append(skills, s)
	}
	return skills, nil
}
