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

const estimateNotFoundMessage = "estimate not found"

// Repo implements the Repository interface with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new estimates repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

// Create inserts a new estimate.
func (r *Repo) Create(ctx context.Context, est Estimate) error {
	stateJSON, err := json.Marshal(est.State)
	if err != nil {
		return fmt.Errorf("marshal estimate state: %w", err)
	}

	query := `
		INSERT INTO estimates (
			id, conversation_id, share_token, state, summary,
			products_cost, labor_cost, tax, total, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())`

	_, err = r.pool.Exec(ctx, query,
		est.ID, est.ConversationID, est.ShareToken, stateJSON, est.Summary,
		est.ProductsCost, est.LaborCost, est.Tax, est.Total,
	)
	if err != nil {
		return fmt.Errorf("create estimate: %w", err)
	}
	return nil
}

// GetByID retrieves an estimate by its internal ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (Estimate, error) {
	return r.get(ctx, "id = $1", id)
}

// GetByShareToken retrieves an estimate by its public share token.
func (r *Repo) GetByShareToken(ctx context.Context, token string) (Estimate, error) {
	return r.get(ctx, "share_token = $1", token)
}

// GetByConversation retrieves the estimate finalized from a conversation.
func (r *Repo) GetByConversation(ctx context.Context, conversationID uuid.UUID) (Estimate, error) {
	return r.get(ctx, "conversation_id = $1", conversationID)
}

func (r *Repo) get(ctx context.Context, where string, arg any) (Estimate, error) {
	query := `
		SELECT id, conversation_id, share_token, state, summary,
		       products_cost, labor_cost, tax, total, created_at
		FROM estimates
		WHERE ` + where

	var est Estimate
	var stateJSON []byte
	var createdAt time.Time

	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&est.ID, &est.ConversationID, &est.ShareToken, &stateJSON, &est.Summary,
		&est.ProductsCost, &est.LaborCost, &est.Tax, &est.Total, &createdAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Estimate{}, apperr.NotFound(estimateNotFoundMessage)
		}
		return Estimate{}, fmt.Errorf("get estimate: %w", err)
	}

	if err := json.Unmarshal(stateJSON, &est.State); err != nil {
		return Estimate{}, fmt.Errorf("unmarshal estimate state: %w", err)
	}

	est.CreatedAt = createdAt.Format(time.RFC3339)
	return est, nil
}
