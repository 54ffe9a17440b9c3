package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CodeAnalysisReport caches one repository's authenticity verdict, unique
// on (user, repo_url).
type CodeAnalysisReport struct {
	ID        uuid.UUID      `json:"id"`
	UserID    uuid.UUID      `json:"user_id"`
	RepoURL   string         `json:"repo_url"`
	Summary   string         `json:"summary"`
	Score     int            `json:"score"`
	Metrics   map[string]any `json:"metrics"`
	Status    string         `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// UpsertReport stores an analysis result, overwriting any previous report
// for the same repository.
func (db *DB) UpsertReport(ctx context.Context, report *CodeAnalysisReport) error {
	metricsJSON, err := json.Marshal(report.Metrics)
	if err != nil {
		return fmt.Errorf("failed to marshal report metrics: %w", err)
	}

	err = db.pool.QueryRow(ctx,
		`INSERT INTO code_analysis_reports (user_id, repo_url, summary, score, metrics, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (user_id, repo_url)
		 DO UPDATE SET summary = $3, score = $4, metrics = $5, status = $6, updated_at = NOW()
		 RETURNING id, created_at, updated_at`,
		report.UserID, report.RepoURL, report.Summary, report.Score, metricsJSON, report.Status,
	).Scan(&report.ID, &report.CreatedAt, &report.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert analysis report: %w", err)
	}
	return nil
}

// ListReports retrieves all analysis reports for a user, newest first.
func (db *DB) ListReports(ctx context.Context, userID uuid.UUID) ([]CodeAnalysisReport, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, repo_url, summary, score, metrics, status, created_at, updated_at
		 FROM code_analysis_reports WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	var reports []CodeAnalysisReport
	for rows.Next() {
		var r CodeAnalysisReport
		var metricsJSON []byte
		if err := rows.Scan(&r.ID, &r.UserID, &r.RepoURL, &r.Summary, &r.Score, &metricsJSON, &r.Status, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		if len(metricsJSON) > 0 {
			if err := json.Unmarshal(metricsJSON, &r.Metrics); err != nil {
				return nil, fmt.Errorf("failed to decode report metrics: %w", err)
			}
		}
		reports = append(reports, r)
	}
	return reports, nil
}

// RepoFileSnapshot caches the (possibly truncated) content of one analyzed
// repository file, unique on (user, repo_url, path, sha).
type RepoFileSnapshot struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	RepoURL   string    `json:"repo_url"`
	Path      string    `json:"path"`
	SHA       string    `json:"sha"`
	Content   string    `json:"content"`
	Size      int       `json:"size"`
	Lines     int       `json:"lines"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpsertFileSnapshot stores a file snapshot for audit and cache reuse.
func (db *DB) UpsertFileSnapshot(ctx context.Context, snap *RepoFileSnapshot) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO repo_file_snapshots (user_id, repo_url, path, sha, content, size, lines)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (user_id, repo_url, path, sha)
		 DO UPDATE SET content = $5, size = $6, lines = $7, updated_at = NOW()`,
		snap.UserID, snap.RepoURL, snap.Path, snap.SHA, snap.Content, snap.Size, snap.Lines,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert file snapshot %s: %w", snap.Path, err)
	}
	return nil
}
