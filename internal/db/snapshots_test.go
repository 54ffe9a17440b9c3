package db

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillsence/skillverify/internal/types"
)

// testDB connects to the database named by TEST_DATABASE_URL, skipping the
// test when none is configured.
func testDB(t *testing.T) *DB {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	database, err := Connect(context.Background(), url)
	require.NoError(t, err)
	t.Cleanup(database.Close)
	return database
}

// scratchUser inserts a throwaway user row and removes it, with its
// dependent rows, when the test ends.
func scratchUser(t *testing.T, database *DB) uuid.UUID {
	t.Helper()
	ctx := context.Background()
	userID := uuid.New()
	_, err := database.pool.Exec(ctx,
		`INSERT INTO users (id, username, email, role)
		 VALUES ($1, $2, $3, 'student')`,
		userID, "scratch-"+userID.String()[:8], userID.String()[:8]+"@example.test",
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = database.pool.Exec(ctx, `DELETE FROM score_snapshots WHERE user_id = $1`, userID)
		_, _ = database.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)
	})
	return userID
}

func TestUpsertSnapshot_SameDayOverwrites(t *testing.T) {
	database := testDB(t)
	userID := scratchUser(t, database)
	ctx := context.Background()
	day := time.Now()

	first := types.ScoreSet{CodingSkillIndex: 40, CommunicationScore: 20, AuthenticityScore: 30, PlacementReady: 35}
	second := types.ScoreSet{CodingSkillIndex: 55, CommunicationScore: 22, AuthenticityScore: 41, PlacementReady: 48}

	require.NoError(t, database.UpsertSnapshot(ctx, userID, day, first))
	require.NoError(t, database.UpsertSnapshot(ctx, userID, day, second))

	snapshots, err := database.ListSnapshotsSince(ctx, userID, day)
	require.NoError(t, err)
	require.Len(t, snapshots, 1)
	assert.Equal(t, second, snapshots[0].Scores)
}
