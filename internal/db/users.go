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

const userColumns = `id, username, email, role, full_name, phone_number,
	college, course, branch, year_of_study, cgpa, student_skills,
	github_link, leetcode_link, linkedin_link, codechef_link,
	hackerrank_link, codeforces_link, gfg_link,
	linkedin_headline, linkedin_about, linkedin_experience_count,
	linkedin_skill_count, linkedin_cert_count,
	github_stats, leetcode_stats, linkedin_stats,
	last_analyzed_at, profile_verified, created_at, updated_at`

// GetUser retrieves a user profile by ID. Returns nil when not found.
func (db *DB) GetUser(ctx context.Context, userID uuid.UUID) (*types.UserProfile, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, userID)
	user, err := scanUser(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// GetUserByUsername retrieves a user profile by username. Returns nil when
// not found.
func (db *DB) GetUserByUsername(ctx context.Context, username string) (*types.UserProfile, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = $1`, username)
	user, err := scanUser(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// SaveStats persists the cached stat blobs and the analysis timestamp
// together, successful or failed fetch alike.
func (db *DB) SaveStats(ctx context.Context, userID uuid.UUID, github types.GitHubBlob, leetcode types.LeetCodeBlob, linkedin types.LinkedInStats, analyzedAt time.Time) error {
	githubJSON, err := json.Marshal(github)
	if err != nil {
		return fmt.Errorf("failed to marshal github stats: %w", err)
	}
	leetcodeJSON, err := json.Marshal(leetcode)
	if err != nil {
		return fmt.Errorf("failed to marshal leetcode stats: %w", err)
	}
	linkedinJSON, err := json.Marshal(linkedin)
	if err != nil {
		return fmt.Errorf("failed to marshal linkedin stats: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`UPDATE users
		 SET github_stats = $1, leetcode_stats = $2, linkedin_stats = $3,
		     last_analyzed_at = $4, updated_at = NOW()
		 WHERE id = $5`,
		githubJSON, leetcodeJSON, linkedinJSON, analyzedAt, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to save stats: %w", err)
	}
	return nil
}

// TouchAnalyzedAt updates only the analysis timestamp.
func (db *DB) TouchAnalyzedAt(ctx context.Context, userID uuid.UUID, analyzedAt time.Time) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE users SET last_analyzed_at = $1, updated_at = NOW() WHERE id = $2`,
		analyzedAt, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update analysis timestamp: %w", err)
	}
	return nil
}

// MarkProfileVerified flips the one-way verification flag. No unverify
// path exists.
func (db *DB) MarkProfileVerified(ctx context.Context, userID uuid.UUID) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE users SET profile_verified = TRUE, updated_at = NOW() WHERE id = $1`,
		userID,
	)
	if err != nil {
		return fmt.Errorf("failed to mark profile verified: %w", err)
	}
	return nil
}

// UpdateLinkedInFields stores imported LinkedIn profile fields.
func (db *DB) UpdateLinkedInFields(ctx context.Context, userID uuid.UUID, headline, about string, experienceCount, skillCount, certCount int) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE users
		 SET linkedin_headline = $1, linkedin_about = $2,
		     linkedin_experience_count = $3, linkedin_skill_count = $4,
		     linkedin_cert_count = $5, updated_at = NOW()
		 WHERE id = $6`,
		headline, about, experienceCount, skillCount, certCount, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update linkedin fields: %w", err)
	}
	return nil
}

func scanUser(row pgx.Row) (*types.UserProfile, error) {
	var u types.UserProfile
	var githubJSON, leetcodeJSON, linkedinJSON []byte

	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.Role, &u.FullName, &u.PhoneNumber,
		&u.College, &u.Course, &u.Branch, &u.YearOfStudy, &u.CGPA, &u.StudentSkills,
		&u.GitHubLink, &u.LeetCodeLink, &u.LinkedInLink, &u.CodeChefLink,
		&u.HackerRankLink, &u.CodeforcesLink, &u.GFGLink,
		&u.LinkedInHeadline, &u.LinkedInAbout, &u.LinkedInExperienceCount,
		&u.LinkedInSkillCount, &u.LinkedInCertCount,
		&githubJSON, &leetcodeJSON, &linkedinJSON,
		&u.LastAnalyzedAt, &u.ProfileVerified, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(githubJSON) > 0 {
		if err := json.Unmarshal(githubJSON, &u.GitHubStats); err != nil {
			return nil, fmt.Errorf("failed to decode github stats: %w", err)
		}
	}
	if len(leetcodeJSON) > 0 {
		if err := json.Unmarshal(leetcodeJSON, &u.LeetCodeStats); err != nil {
			return nil, fmt.Errorf("failed to decode leetcode stats: %w", err)
		}
	}
	if len(linkedinJSON) > 0 {
		if err := json.Unmarshal(linkedinJSON, &u.LinkedInStats); err != nil {
			return nil, fmt.Errorf("failed to decode linkedin stats: %w", err)
		}
	}
	return &u, nil
}
