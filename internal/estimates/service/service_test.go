package service

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"buildsmart_backend/internal/engine/domain"
	"buildsmart_backend/internal/estimates/repository"
	"buildsmart_backend/internal/events"
	"buildsmart_backend/platform/apperr"
	"buildsmart_backend/platform/logger"
)

type fakeRepo struct {
	rows map[uuid.UUID]repository.Estimate
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rows: make(map[uuid.UUID]repository.Estimate)}
}

func (r *fakeRepo) Create(_ context.Context, est repository.Estimate) error {
	r.rows[est.ID] = est
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (repository.Estimate, error) {
	est, ok := r.rows[id]
	if !ok {
		return repository.Estimate{}, apperr.NotFound("estimate not found")
	}
	return est, nil
}

func (r *fakeRepo) GetByShareToken(_ context.Context, token string) (repository.Estimate, error) {
	for _, est := range r.rows {
		if est.ShareToken == token {
			return est, nil
		}
	}
	return repository.Estimate{}, apperr.NotFound("estimate not found")
}

func (r *fakeRepo) GetByConversation(_ context.Context, conversationID uuid.UUID) (repository.Estimate, error) {
	for _, est := range r.rows {
		if est.ConversationID == conversationID {
			return est, nil
		}
	}
	return repository.Estimate{}, apperr.NotFound("estimate not found")
}

type fakeArchiver struct {
	calls int
}

func (a *fakeArchiver) ArchiveEstimate(_ context.Context, _ repository.Estimate) error {
	a.calls++
	return nil
}

func completedState() domain.State {
	state := domain.NewState()
	state.Stage = domain.StageSummary
	state.Rooms = []domain.Room{{
		Type:       domain.RoomKitchen,
		Dimensions: &domain.Dimensions{Length: 10, Width: 12, SquareFootage: 120},
	}}
	state.TotalEstimate = &domain.Totals{
		ProductsCost: 10700,
		LaborCost:    9340,
		Tax:          856,
		Total:        20896,
	}
	return state
}

func newTestService(t *testing.T) (*Service, *fakeRepo, *events.InMemoryBus) {
	t.Helper()
	log := logger.New("development")
	bus := events.NewInMemoryBus(log)
	repo := newFakeRepo()
	svc := New(repo, bus, log, "https://app.example.com/")
	return svc, repo, bus
}

func TestFinalize_CreatesEstimate(t *testing.T) {
	svc, repo, bus := newTestService(t)
	ctx := context.Background()
	conversationID := uuid.New()

	var created int
	bus.Subscribe(events.EstimateCreated{}.EventName(), events.HandlerFunc(func(_ context.Context, _ events.Event) error {
		created++
		return nil
	}))

	est, err := svc.Finalize(ctx, conversationID, completedState(), "Here is your estimate.")
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if len(est.ShareToken) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(est.ShareToken))
	}
	if est.Total != 20896 || est.ProductsCost != 10700 || est.LaborCost != 9340 || est.Tax != 856 {
		t.Fatalf("totals were not copied: %+v", est)
	}
	if est.ConversationID != conversationID {
		t.Fatalf("conversation ID mismatch")
	}
	if len(repo.rows) != 1 {
		t.Fatalf("expected one persisted estimate, got %d", len(repo.rows))
	}

	bus.Wait()
	if created != 1 {
		t.Fatalf("expected one created event, got %d", created)
	}
}

func TestFinalize_IsIdempotentPerConversation(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()
	conversationID := uuid.New()

	first, err := svc.Finalize(ctx, conversationID, completedState(), "summary")
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	second, err := svc.Finalize(ctx, conversationID, completedState(), "summary")
	if err != nil {
		t.Fatalf("finalize again: %v", err)
	}
	if second.ID != first.ID || second.ShareToken != first.ShareToken {
		t.Fatalf("second finalize produced a different estimate")
	}
	if len(repo.rows) != 1 {
		t.Fatalf("expected one persisted estimate, got %d", len(repo.rows))
	}
}

func TestFinalize_RejectsMissingTotals(t *testing.T) {
	svc, _, _ := newTestService(t)

	state := completedState()
	state.TotalEstimate = nil

	_, err := svc.Finalize(context.Background(), uuid.New(), state, "summary")
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestFinalize_CallsArchiver(t *testing.T) {
	svc, _, _ := newTestService(t)
	archiver := &fakeArchiver{}
	svc.SetArchiver(archiver)

	if _, err := svc.Finalize(context.Background(), uuid.New(), completedState(), "summary"); err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if archiver.calls != 1 {
		t.Fatalf("expected one archive call, got %d", archiver.calls)
	}
}

func TestGetByShareToken(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	est, err := svc.Finalize(ctx, uuid.New(), completedState(), "summary")
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}

	found, err := svc.GetByShareToken(ctx, est.ShareToken)
	if err != nil {
		t.Fatalf("get by token: %v", err)
	}
	if found.ID != est.ID {
		t.Fatalf("wrong estimate returned")
	}

	if _, err := svc.GetByShareToken(ctx, "unknown"); !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestShareURL(t *testing.T) {
	svc, _, _ := newTestService(t)

	url := svc.ShareURL("abc123")
	if url != "https://app.example.com/estimates/abc123" {
		t.Fatalf("unexpected share URL: %s", url)
	}
}
