package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"buildsmart_backend/platform/apperr"
)

const conversationNotFoundMessage = "conversation not found"

// Repo implements the Repository interface with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new conversations repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

// Create inserts a new conversation.
func (r *Repo) Create(ctx context.Context, conv Conversation) error {
	stateJSON, err := json.Marshal(conv.State)
	if err != nil {
		return fmt.Errorf("marshal conversation state: %w", err)
	}

	query := `
		INSERT INTO conversations (id, state, last_response, created_at, updated_at)
		VALUES ($1, $2, $3, now(), now())`

	if _, err := r.pool.Exec(ctx, query, conv.ID, stateJSON, conv.LastResponse); err != nil {
		return fmt.Errorf("create conversation: %w", err)
	}
	return nil
}

// Get retrieves a conversation by its ID.
func (r *Repo) Get(ctx context.Context, id uuid.UUID) (Conversation, error) {
	query := `
		SELECT id, state, last_response, created_at, updated_at
		FROM conversations
		WHERE id = $1`

	var conv Conversation
	var stateJSON []byte
	var createdAt, updatedAt time.Time

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&conv.ID, &stateJSON, &conv.LastResponse, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Conversation{}, apperr.NotFound(conversationNotFoundMessage)
		}
		return Conversation{}, fmt.Errorf("get conversation: %w", err)
	}

	if err := json.Unmarshal(stateJSON, &conv.State); err != nil {
		return Conversation{}, fmt.Errorf("unmarshal conversation state: %w", err)
	}

	conv.CreatedAt = createdAt.Format(time.RFC3339)
	conv.UpdatedAt = updatedAt.Format(time.RFC3339)
	return conv, nil
}

// Update replaces the conversation state and last response.
func (r *Repo) Update(ctx context.Context, conv Conversation) error {
	stateJSON, err := json.Marshal(conv.State)
	if err != nil {
		return fmt.Errorf("marshal conversation state: %w", err)
	}

	query := `
		UPDATE conversations
		SET state = $2, last_response = $3, updated_at = now()
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, conv.ID, stateJSON, conv.LastResponse)
	if err != nil {
		return fmt.Errorf("update conversation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(conversationNotFoundMessage)
	}
	return nil
}

// DeleteOlderThan removes conversations not updated since the cutoff.
// Used by the scheduled cleanup task.
func (r *Repo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `DELETE FROM conversations WHERE updated_at < $1`

	tag, err := r.pool.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete stale conversations: %w", err)
	}
	return tag.RowsAffected(), nil
}
