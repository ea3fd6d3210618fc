package testhelpers

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

var uniqueCounter int64

func nextSuffix() int64 {
	return atomic.AddInt64(&uniqueCounter, 1)
}

// CreateTestMessage inserts a message row and returns its ID. The timestamp
// is offset by the suffix so inserted rows have a deterministic order.
func CreateTestMessage(t *testing.T, db *pgxpool.Pool, sender string) string {
	t.Helper()

	ctx := context.Background()
	suffix := nextSuffix()
	id := uuid.New().String()
	content := fmt.Sprintf("test-message-%d", suffix)
	sentAt := time.Unix(1700000000+suffix, 0).UTC()

	_, err := db.Exec(ctx,
		"INSERT INTO messages (id, sender, content, sent_at) VALUES ($1, $2, $3, $4)",
		id, sender, content, sentAt)
	require.NoError(t, err)
	return id
}

// TruncateMessages clears the message log between tests.
func TruncateMessages(t *testing.T, db *pgxpool.Pool) {
	t.Helper()

	_, err := db.Exec(context.Background(), "TRUNCATE messages")
	require.NoError(t, err)
}
