// Package repository provides data access for finalized estimates.
package repository

import (
	"context"

	"github.com/google/uuid"

	"buildsmart_backend/internal/engine/domain"
)

// Estimate is a completed conversation frozen as a shareable record. The
// share token is the only public identifier; estimate IDs never leave the
// backend.
type Estimate struct {
	ID             uuid.UUID
	ConversationID uuid.UUID
	ShareToken     string
	State          domain.State
	Summary        string
	ProductsCost   float64
	LaborCost      float64
	Tax            float64
	Total          float64
	CreatedAt      string
}

// Repository defines data access for estimates.
type Repository interface {
	Create(ctx context.Context, est Estimate) error
	GetByID(ctx context.Context, id uuid.UUID) (Estimate, error)
	GetByShareToken(ctx context.Context, token string) (Estimate, error)
	GetByConversation(ctx context.Context, conversationID uuid.UUID) (Estimate, error)
}
