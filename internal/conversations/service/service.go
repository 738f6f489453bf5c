// Package service orchestrates estimation conversations: it runs the
// deterministic engine on every turn, persists state, and raises domain
// events when a conversation completes or the homeowner leaves contact
// details.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"buildsmart_backend/internal/conversations/repository"
	"buildsmart_backend/internal/engine"
	"buildsmart_backend/internal/engine/domain"
	"buildsmart_backend/internal/engine/estimate"
	"buildsmart_backend/internal/events"
	"buildsmart_backend/platform/logger"
)

// Responder rewrites the engine's templated reply in a conversational voice
// and may return a structured patch for slots it recognized. It is optional
// and best-effort: any failure falls back to the engine's own reply.
type Responder interface {
	Respond(ctx context.Context, state domain.State, utterance, fallback string) (string, domain.Patch, error)
}

// EstimateRef identifies a persisted estimate.
type EstimateRef struct {
	ID         uuid.UUID
	ShareToken string
}

// EstimateFinalizer persists a completed conversation as a shareable
// estimate. Implemented by the estimates module.
type EstimateFinalizer interface {
	Finalize(ctx context.Context, conversationID uuid.UUID, state domain.State, summary string) (EstimateRef, error)
	FindByConversation(ctx context.Context, conversationID uuid.UUID) (EstimateRef, error)
}

// Service drives conversation turns and persistence.
type Service struct {
	repo      repository.Repository
	cache     *repository.StateCache
	engine    *engine.Engine
	bus       events.Bus
	log       *logger.Logger
	responder Responder
	finalizer EstimateFinalizer
}

// New creates the conversations service.
func New(repo repository.Repository, cache *repository.StateCache, eng *engine.Engine, bus events.Bus, log *logger.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		engine: eng,
		bus:    bus,
		log:    log,
	}
}

// SetResponder wires the optional LLM responder.
func (s *Service) SetResponder(responder Responder) {
	s.responder = responder
}

// SetFinalizer wires the estimates module (breaks the module cycle).
func (s *Service) SetFinalizer(finalizer EstimateFinalizer) {
	s.finalizer = finalizer
}

// Start creates a new conversation and returns its greeting.
func (s *Service) Start(ctx context.Context) (repository.Conversation, string, error) {
	conv := repository.Conversation{
		ID:           uuid.New(),
		State:        domain.NewState(),
		LastResponse: engine.Greeting(),
	}

	if err := s.repo.Create(ctx, conv); err != nil {
		return repository.Conversation{}, "", err
	}
	s.cacheSet(ctx, conv.ID, conv.State)

	s.bus.Publish(ctx, events.ConversationStarted{
		BaseEvent:      events.NewBaseEvent(),
		ConversationID: conv.ID,
	})
	s.log.ConversationEvent("started", conv.ID.String(), string(conv.State.Stage))

	return conv, engine.Greeting(), nil
}

// Get returns a conversation by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (repository.Conversation, error) {
	return s.repo.Get(ctx, id)
}

// Message runs one conversation turn: loads state, processes the utterance
// through the engine, persists the new state, and raises completion and
// contact events on the transitions that warrant them.
func (s *Service) Message(ctx context.Context, id uuid.UUID, utterance string) (string, repository.Conversation, error) {
	conv, err := s.load(ctx, id)
	if err != nil {
		return "", repository.Conversation{}, err
	}
	prior := conv.State

	response, newState, understood := s.engine.ProcessTurn(prior, utterance)

	// When the engine could not parse the utterance, let the responder
	// rephrase the re-prompt and contribute slots the regex extractors
	// missed.
	if s.responder != nil && !understood {
		if rewritten, patch, err := s.responder.Respond(ctx, newState, utterance, response); err == nil {
			if rewritten != "" {
				response = rewritten
			}
			if !patch.IsEmpty() {
				newState = newState.ApplyPatch(patch)
			}
		} else {
			s.log.Warn("responder failed, using engine reply", "conversation_id", id.String(), "error", err)
		}
	}

	conv.State = newState
	conv.LastResponse = response
	if err := s.repo.Update(ctx, conv); err != nil {
		return "", repository.Conversation{}, err
	}
	s.cacheSet(ctx, id, newState)

	s.afterTurn(ctx, conv, prior)

	return response, conv, nil
}

// Reset discards the conversation state and starts it over in place.
func (s *Service) Reset(ctx context.Context, id uuid.UUID) (repository.Conversation, string, error) {
	conv, err := s.repo.Get(ctx, id)
	if err != nil {
		return repository.Conversation{}, "", err
	}

	conv.State = domain.NewState()
	conv.LastResponse = engine.Greeting()
	if err := s.repo.Update(ctx, conv); err != nil {
		return repository.Conversation{}, "", err
	}
	s.cacheSet(ctx, id, conv.State)
	s.log.ConversationEvent("reset", id.String(), string(conv.State.Stage))

	return conv, engine.Greeting(), nil
}

// DeleteOlderThan removes conversations idle since the cutoff. Called from
// the scheduled cleanup task.
func (s *Service) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	return s.repo.DeleteOlderThan(ctx, cutoff)
}

// load reads the row from the repository and overlays the state from the
// cache when present. The cache holds only the state, not the row metadata.
func (s *Service) load(ctx context.Context, id uuid.UUID) (repository.Conversation, error) {
	conv, err := s.repo.Get(ctx, id)
	if err != nil {
		return repository.Conversation{}, err
	}

	if s.cache != nil {
		if state, ok, cacheErr := s.cache.Get(ctx, id); cacheErr == nil && ok {
			conv.State = state
		} else if cacheErr != nil {
			s.log.Warn("state cache read failed", "conversation_id", id.String(), "error", cacheErr)
		}
	}
	return conv, nil
}

func (s *Service) cacheSet(ctx context.Context, id uuid.UUID, state domain.State) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, id, state); err != nil {
		s.log.Warn("state cache write failed", "conversation_id", id.String(), "error", err)
	}
}

// afterTurn raises the events tied to stage transitions.
func (s *Service) afterTurn(ctx context.Context, conv repository.Conversation, prior domain.State) {
	newState := conv.State

	completed := newState.Stage == domain.StageSummary && prior.Stage != domain.StageSummary
	if completed && newState.TotalEstimate != nil {
		s.finalize(ctx, conv)
	}

	contactCaptured := newState.Contact != nil && prior.Contact == nil
	if contactCaptured {
		s.requestEmail(ctx, conv)
	}
}

func (s *Service) finalize(ctx context.Context, conv repository.Conversation) {
	s.log.ConversationEvent("completed", conv.ID.String(), string(conv.State.Stage))

	if s.finalizer != nil {
		// The stored summary is the canonical report, not the chat reply:
		// the reply carries follow-up prompts that have no place in the
		// persisted, archived, or emailed document.
		if _, err := s.finalizer.Finalize(ctx, conv.ID, conv.State, estimate.Summary(conv.State)); err != nil {
			s.log.Error("estimate finalization failed", "conversation_id", conv.ID.String(), "error", err)
		}
	}

	s.bus.Publish(ctx, events.ConversationCompleted{
		BaseEvent:      events.NewBaseEvent(),
		ConversationID: conv.ID,
		Total:          conv.State.TotalEstimate.Total,
	})
}

func (s *Service) requestEmail(ctx context.Context, conv repository.Conversation) {
	if s.finalizer == nil {
		return
	}
	ref, err := s.finalizer.FindByConversation(ctx, conv.ID)
	if err != nil {
		s.log.Warn("no estimate for contact capture", "conversation_id", conv.ID.String(), "error", err)
		return
	}

	s.bus.Publish(ctx, events.EstimateEmailRequested{
		BaseEvent:  events.NewBaseEvent(),
		EstimateID: ref.ID,
		Email:      conv.State.Contact.Email,
		Phone:      conv.State.Contact.Phone,
	})
}
