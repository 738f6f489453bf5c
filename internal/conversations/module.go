// Package conversations provides the estimation conversation bounded context
// module. It owns the dialogue lifecycle: starting conversations, running
// engine turns, caching state, and raising completion events.
package conversations

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"buildsmart_backend/internal/conversations/handler"
	"buildsmart_backend/internal/conversations/repository"
	"buildsmart_backend/internal/conversations/service"
	"buildsmart_backend/internal/engine"
	"buildsmart_backend/internal/events"
	apphttp "buildsmart_backend/internal/http"
	"buildsmart_backend/platform/logger"
	"buildsmart_backend/platform/validator"
)

// Module is the conversations bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    repository.Repository
}

// NewModule creates and initializes the conversations module with all its
// dependencies. redisClient is optional; without it state is read from the
// database only.
func NewModule(pool *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration, eng *engine.Engine, bus events.Bus, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)

	var cache *repository.StateCache
	if redisClient != nil {
		cache = repository.NewStateCache(redisClient, cacheTTL)
	}

	svc := service.New(repo, cache, eng, bus, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
		repo:    repo,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "conversations"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// SetResponder wires the optional LLM responder.
func (m *Module) SetResponder(responder service.Responder) {
	m.service.SetResponder(responder)
}

// SetFinalizer wires the estimates module.
func (m *Module) SetFinalizer(finalizer service.EstimateFinalizer) {
	m.service.SetFinalizer(finalizer)
}

// RegisterRoutes mounts conversation routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/conversations")
	group.POST("", m.handler.Start)
	group.GET("/:id", m.handler.Get)
	group.POST("/:id/messages", ctx.MessageRateLimiter.RateLimit(), m.handler.Message)
	group.POST("/:id/reset", m.handler.Reset)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
