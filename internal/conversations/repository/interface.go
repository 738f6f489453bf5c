package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"buildsmart_backend/internal/engine/domain"
)

// Conversation is a persisted estimation conversation. State is the engine's
// full conversation state, stored as JSONB.
type Conversation struct {
	ID           uuid.UUID    `json:"id"`
	State        domain.State `json:"state"`
	LastResponse string       `json:"lastResponse,omitempty"`
	CreatedAt    string       `json:"createdAt"`
	UpdatedAt    string       `json:"updatedAt"`
}

// Repository is the persistence interface for conversations.
type Repository interface {
	Create(ctx context.Context, conv Conversation) error
	Get(ctx context.Context, id uuid.UUID) (Conversation, error)
	Update(ctx context.Context, conv Conversation) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
