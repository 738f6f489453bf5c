// Package transport defines the request and response shapes for the
// conversations HTTP API.
package transport

import (
	"buildsmart_backend/internal/conversations/repository"
	"buildsmart_backend/internal/engine/domain"
)

// MessageRequest is one homeowner utterance.
type MessageRequest struct {
	Message string `json:"message" validate:"required,max=2000"`
}

// ConversationResponse is the full conversation view.
type ConversationResponse struct {
	ID        string       `json:"id"`
	Stage     domain.Stage `json:"stage"`
	Message   string       `json:"message"`
	State     domain.State `json:"state"`
	CreatedAt string       `json:"createdAt,omitempty"`
	UpdatedAt string       `json:"updatedAt,omitempty"`
}

// FromConversation maps a stored conversation to its API view.
func FromConversation(conv repository.Conversation, message string) ConversationResponse {
	return ConversationResponse{
		ID:        conv.ID.String(),
		Stage:     conv.State.Stage,
		Message:   message,
		State:     conv.State,
		CreatedAt: conv.CreatedAt,
		UpdatedAt: conv.UpdatedAt,
	}
}
