// Package transport defines the public response shapes for the estimates
// HTTP API.
package transport

import (
	"buildsmart_backend/internal/engine/domain"
	"buildsmart_backend/internal/estimates/repository"
)

// EstimateResponse is the public view of a finalized estimate. It exposes the
// share token, never the internal ID or the conversation it came from.
type EstimateResponse struct {
	ShareToken string                      `json:"shareToken"`
	ShareURL   string                      `json:"shareUrl"`
	Summary    string                      `json:"summary"`
	Rooms      []domain.Room               `json:"rooms"`
	Products   []domain.Product            `json:"selectedProducts,omitempty"`
	LaborCosts []domain.RoomLaborBreakdown `json:"laborCosts,omitempty"`
	Totals     domain.Totals               `json:"totals"`
	CreatedAt  string                      `json:"createdAt"`
}

// FromEstimate maps a stored estimate to its public view.
func FromEstimate(est repository.Estimate, shareURL string) EstimateResponse {
	return EstimateResponse{
		ShareToken: est.ShareToken,
		ShareURL:   shareURL,
		Summary:    est.Summary,
		Rooms:      est.State.Rooms,
		Products:   est.State.SelectedProducts,
		LaborCosts: est.State.LaborCosts,
		Totals: domain.Totals{
			ProductsCost: est.ProductsCost,
			LaborCost:    est.LaborCost,
			Tax:          est.Tax,
			Total:        est.Total,
		},
		CreatedAt: est.CreatedAt,
	}
}
