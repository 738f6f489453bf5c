// Package adapters holds the anti-corruption layer between modules. Each
// adapter maps one module's service onto an interface another module owns,
// so modules never import each other directly.
package adapters

import (
	"context"

	"github.com/google/uuid"

	convservice "buildsmart_backend/internal/conversations/service"
	"buildsmart_backend/internal/engine/domain"
	estservice "buildsmart_backend/internal/estimates/service"
)

// EstimateFinalizerAdapter exposes the estimates service through the
// conversations module's EstimateFinalizer interface.
type EstimateFinalizerAdapter struct {
	estimates *estservice.Service
}

// NewEstimateFinalizerAdapter creates the adapter.
func NewEstimateFinalizerAdapter(estimates *estservice.Service) *EstimateFinalizerAdapter {
	return &EstimateFinalizerAdapter{estimates: estimates}
}

// Compile-time check that the adapter implements the conversations interface.
var _ convservice.EstimateFinalizer = (*EstimateFinalizerAdapter)(nil)

func (a *EstimateFinalizerAdapter) Finalize(ctx context.Context, conversationID uuid.UUID, state domain.State, summary string) (convservice.EstimateRef, error) {
	est, err := a.estimates.Finalize(ctx, conversationID, state, summary)
	if err != nil {
		return convservice.EstimateRef{}, err
	}
	return convservice.EstimateRef{ID: est.ID, ShareToken: est.ShareToken}, nil
}

func (a *EstimateFinalizerAdapter) FindByConversation(ctx context.Context, conversationID uuid.UUID) (convservice.EstimateRef, error) {
	est, err := a.estimates.FindByConversation(ctx, conversationID)
	if err != nil {
		return convservice.EstimateRef{}, err
	}
	return convservice.EstimateRef{ID: est.ID, ShareToken: est.ShareToken}, nil
}
