// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"buildsmart_backend/platform/events"

	"github.com/google/uuid"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// =============================================================================
// Conversation Domain Events
// =============================================================================

// ConversationStarted is published when a new estimation conversation begins.
type ConversationStarted struct {
	BaseEvent
	ConversationID uuid.UUID `json:"conversationId"`
}

func (e ConversationStarted) EventName() string { return "conversations.started" }

// ConversationCompleted is published when a conversation reaches the summary
// stage with a full estimate.
type ConversationCompleted struct {
	BaseEvent
	ConversationID uuid.UUID `json:"conversationId"`
	Total          float64   `json:"total"`
}

func (e ConversationCompleted) EventName() string { return "conversations.completed" }

// =============================================================================
// Estimate Domain Events
// =============================================================================

// EstimateCreated is published when a completed estimate is persisted.
type EstimateCreated struct {
	BaseEvent
	EstimateID     uuid.UUID `json:"estimateId"`
	ConversationID uuid.UUID `json:"conversationId"`
	ShareToken     string    `json:"shareToken"`
	Total          float64   `json:"total"`
}

func (e EstimateCreated) EventName() string { return "estimates.created" }

// EstimateEmailRequested is published when a homeowner leaves an email
// address for estimate delivery.
type EstimateEmailRequested struct {
	BaseEvent
	EstimateID uuid.UUID `json:"estimateId"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
}

func (e EstimateEmailRequested) EventName() string { return "estimates.email_requested" }
