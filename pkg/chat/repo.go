package chat

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type MessageStore interface {
	Append(ctx context.Context, msg Message) error
	List(ctx context.Context) ([]Message, error)
}

type PostgresMessageStore struct {
	pool *pgxpool.Pool
}

func NewPostgresMessageStore(pool *pgxpool.Pool) *PostgresMessageStore {
	return &PostgresMessageStore{pool: pool}
}

// Append inserts one message into the log.
func (r *PostgresMessageStore) Append(ctx context.Context, msg Message) error {
	if r.pool == nil {
		return errors.New("db pool is nil")
	}

	const insertSQL = `
		INSERT INTO messages (id, sender, content, sent_at)
		VALUES ($1, $2, $3, $4)
	`

	ctxTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.pool.Exec(ctxTimeout, insertSQL, msg.ID, msg.Sender, msg.Content, msg.Timestamp); err != nil {
		return fmt.Errorf("insert message: %w", err)
	}
	return nil
}

// List returns the full log ordered by timestamp ascending (oldest first).
func (r *PostgresMessageStore) List(ctx context.Context) ([]Message, error) {
	if r.pool == nil {
		return nil, errors.New("db pool is nil")
	}

	const querySQL = `
		SELECT id, sender, content, sent_at
		FROM messages
		ORDER BY sent_at ASC
	`

	ctxTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctxTimeout, querySQL)
	if err != nil {
		return nil, fmt.Errorf("query messages: %w", err)
	}
	defer rows.Close()

	messages := make([]Message, 0)
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.Sender, &m.Content, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return messages, nil
}
