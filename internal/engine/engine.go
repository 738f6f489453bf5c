// Package engine implements the conversation-driven estimation core: a
// finite-state dialogue machine that extracts rooms, dimensions, budget, and
// design preferences from free text, recommends products, prices labor, and
// aggregates a complete estimate.
//
// The engine is pure. ProcessTurn receives the full prior state and returns
// a full new state; it performs no I/O, never panics on user input, and
// never partially mutates state on a failed extraction. Persistence,
// transport, and any LLM fallback live in the layers around it.
package engine

import (
	"buildsmart_backend/internal/engine/catalog"
	"buildsmart_backend/internal/engine/domain"
	"buildsmart_backend/internal/engine/policy"
)

// Catalog is the product lookup the recommendation stage consumes. The
// built-in catalog backs it by default; a real product-search service can
// replace it without touching the engine.
type Catalog interface {
	Lookup(roomType domain.RoomType, style domain.DesignStyle, tier domain.BudgetTier) []domain.Product
}

// Engine drives the estimation conversation.
type Engine struct {
	policy  policy.Policy
	catalog Catalog
}

// Option configures an Engine.
type Option func(*Engine)

// WithPolicy overrides the default pricing policy tables.
func WithPolicy(p policy.Policy) Option {
	return func(e *Engine) { e.policy = p }
}

// WithCatalog overrides the built-in product catalog.
func WithCatalog(c Catalog) Option {
	return func(e *Engine) { e.catalog = c }
}

// New creates an engine with the built-in catalog and default policy.
func New(opts ...Option) *Engine {
	e := &Engine{
		policy:  policy.Default(),
		catalog: catalog.New(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// handlerFunc processes one turn for a specific stage. Handlers receive a
// clone of the caller's state and report whether the utterance filled a slot
// or ran a command; false means the reply is a clarifying re-prompt.
type handlerFunc func(e *Engine, state domain.State, utterance string) (string, domain.State, bool)

// stageHandlers is the exhaustive stage transition table. Every defined
// stage has an entry; an unknown stage never reaches dispatch because
// ProcessTurn resets it first.
var stageHandlers = map[domain.Stage]handlerFunc{
	domain.StageGreeting:           (*Engine).handleGreeting,
	domain.StageRoomSelection:      (*Engine).handleRoomSelection,
	domain.StageRoomDimensions:     (*Engine).handleRoomDimensions,
	domain.StageBudget:             (*Engine).handleBudget,
	domain.StageDesignPreferences:  (*Engine).handleDesignPreferences,
	domain.StageProductSuggestions: (*Engine).handleProductSuggestions,
	domain.StageSummary:            (*Engine).handleSummary,
}

// Greeting is the opening message for a fresh conversation.
func Greeting() string {
	return msgWelcome
}

// ProcessTurn runs one conversation turn. The boolean reports whether the
// utterance was understood: false means the reply is a re-prompt and the turn
// filled no slot. A corrupted or foreign stage value is recovered by
// re-initializing to a fresh greeting state rather than failing the call.
func (e *Engine) ProcessTurn(state domain.State, utterance string) (string, domain.State, bool) {
	if !domain.IsKnownStage(state.Stage) {
		fresh := domain.NewState()
		return msgRecovered, fresh, false
	}

	handler := stageHandlers[state.Stage]
	return handler(e, state.Clone(), utterance)
}
