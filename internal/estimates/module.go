// Package estimates provides the finalized estimates bounded context module.
// Estimates are read-only snapshots of completed conversations, reachable
// through opaque share tokens.
package estimates

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"buildsmart_backend/internal/estimates/handler"
	"buildsmart_backend/internal/estimates/repository"
	"buildsmart_backend/internal/estimates/service"
	"buildsmart_backend/internal/events"
	apphttp "buildsmart_backend/internal/http"
	"buildsmart_backend/platform/logger"
)

// Module is the estimates bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the estimates module.
func NewModule(pool *pgxpool.Pool, bus events.Bus, log *logger.Logger, baseURL string) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, bus, log, baseURL)
	h := handler.New(svc)

	return &Module{
		handler: h,
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "estimates"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// SetArchiver wires the optional object storage archiver.
func (m *Module) SetArchiver(archiver service.Archiver) {
	m.service.SetArchiver(archiver)
}

// RegisterRoutes mounts the public estimate routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/estimates")
	group.GET("/:token", m.handler.Get)
	group.GET("/:token/export", m.handler.ExportCSV)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
