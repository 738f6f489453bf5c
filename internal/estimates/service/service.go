// Package service finalizes completed conversations into shareable estimates
// and serves them back by share token.
package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"buildsmart_backend/internal/engine/domain"
	"buildsmart_backend/internal/estimates/repository"
	"buildsmart_backend/internal/events"
	"buildsmart_backend/platform/apperr"
	"buildsmart_backend/platform/logger"
)

// Archiver stores a copy of a finalized estimate in object storage. It is
// optional and best-effort: archival failure never fails finalization.
type Archiver interface {
	ArchiveEstimate(ctx context.Context, est repository.Estimate) error
}

// Service owns estimate finalization and public retrieval.
type Service struct {
	repo     repository.Repository
	bus      events.Bus
	log      *logger.Logger
	baseURL  string
	archiver Archiver
}

// New creates the estimates service. baseURL is the public application base
// used to build share links.
func New(repo repository.Repository, bus events.Bus, log *logger.Logger, baseURL string) *Service {
	return &Service{
		repo:    repo,
		bus:     bus,
		log:     log,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// SetArchiver wires the optional object storage archiver.
func (s *Service) SetArchiver(archiver Archiver) {
	s.archiver = archiver
}

// Finalize freezes a completed conversation as an estimate. It is idempotent
// per conversation: a second call returns the existing estimate unchanged.
func (s *Service) Finalize(ctx context.Context, conversationID uuid.UUID, state domain.State, summary string) (repository.Estimate, error) {
	if existing, err := s.repo.GetByConversation(ctx, conversationID); err == nil {
		return existing, nil
	} else if !apperr.Is(err, apperr.KindNotFound) {
		return repository.Estimate{}, err
	}

	if state.TotalEstimate == nil {
		return repository.Estimate{}, apperr.Validation("conversation has no estimate totals")
	}

	token, err := generateShareToken()
	if err != nil {
		return repository.Estimate{}, err
	}

	est := repository.Estimate{
		ID:             uuid.New(),
		ConversationID: conversationID,
		ShareToken:     token,
		State:          state,
		Summary:        summary,
		ProductsCost:   state.TotalEstimate.ProductsCost,
		LaborCost:      state.TotalEstimate.LaborCost,
		Tax:            state.TotalEstimate.Tax,
		Total:          state.TotalEstimate.Total,
	}

	if err := s.repo.Create(ctx, est); err != nil {
		return repository.Estimate{}, err
	}

	s.bus.Publish(ctx, events.EstimateCreated{
		BaseEvent:      events.NewBaseEvent(),
		EstimateID:     est.ID,
		ConversationID: conversationID,
		ShareToken:     token,
		Total:          est.Total,
	})

	if s.archiver != nil {
		if err := s.archiver.ArchiveEstimate(ctx, est); err != nil {
			s.log.Warn("estimate archival failed", "estimate_id", est.ID.String(), "error", err)
		}
	}

	return est, nil
}

// FindByConversation returns the estimate finalized from a conversation.
func (s *Service) FindByConversation(ctx context.Context, conversationID uuid.UUID) (repository.Estimate, error) {
	return s.repo.GetByConversation(ctx, conversationID)
}

// GetByID returns an estimate by its internal ID.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (repository.Estimate, error) {
	return s.repo.GetByID(ctx, id)
}

// GetByShareToken returns an estimate by its public share token.
func (s *Service) GetByShareToken(ctx context.Context, token string) (repository.Estimate, error) {
	return s.repo.GetByShareToken(ctx, token)
}

// ShareURL builds the public link for a share token.
func (s *Service) ShareURL(token string) string {
	return fmt.Sprintf("%s/estimates/%s", s.baseURL, token)
}

func generateShareToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate share token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
