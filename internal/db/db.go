// Package db provides PostgreSQL access for user profiles, skills, score
// history, interview sessions, and analysis report caches.
package db

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// UserLocks provides per-user mutual exclusion for read-modify-persist
// passes (score refresh, interview mutation). Concurrent requests for the
// same user serialize; different users proceed in parallel.
type UserLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

// NewUserLocks creates an empty lock table.
func NewUserLocks() *UserLocks {
	return &UserLocks{locks: make(map[uuid.UUID]*sync.Mutex)}
}

// Lock acquires the mutex for a user, creating it on first use. The
// returned function releases the lock.
func (ul *UserLocks) Lock(userID uuid.UUID) func() {
	ul.mu.Lock()
	lock, ok := ul.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		ul.locks[userID] = lock
	}
	ul.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}
