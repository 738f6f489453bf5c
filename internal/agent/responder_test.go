package agent

import (
	"testing"

	"buildsmart_backend/internal/engine/domain"
)

func TestMergePatch_FiltersUnknownRooms(t *testing.T) {
	patch := mergePatch(domain.Patch{}, stateUpdateInput{
		Rooms: []string{"Kitchen", "garage", " basement "},
	})

	if len(patch.Rooms) != 2 {
		t.Fatalf("expected 2 known rooms, got %v", patch.Rooms)
	}
	if patch.Rooms[0] != domain.RoomKitchen || patch.Rooms[1] != domain.RoomBasement {
		t.Fatalf("unexpected rooms: %v", patch.Rooms)
	}
}

func TestMergePatch_NormalizesStyle(t *testing.T) {
	patch := mergePatch(domain.Patch{}, stateUpdateInput{DesignStyle: "modern"})
	if patch.DesignStyle != domain.StyleModern {
		t.Fatalf("expected MODERN, got %q", patch.DesignStyle)
	}

	patch = mergePatch(domain.Patch{}, stateUpdateInput{DesignStyle: "brutalist"})
	if patch.DesignStyle != "" {
		t.Fatalf("unknown style must be dropped, got %q", patch.DesignStyle)
	}
}

func TestMergePatch_BudgetRequiresValidRange(t *testing.T) {
	patch := mergePatch(domain.Patch{}, stateUpdateInput{BudgetMin: 20000, BudgetMax: 10000})
	if patch.Budget != nil {
		t.Fatalf("inverted range must be dropped")
	}

	patch = mergePatch(domain.Patch{}, stateUpdateInput{BudgetMin: 10000, BudgetMax: 20000})
	if patch.Budget == nil || patch.Budget.Min != 10000 || patch.Budget.Max != 20000 {
		t.Fatalf("unexpected budget: %+v", patch.Budget)
	}
}

func TestMergePatch_ContactLowercasesEmail(t *testing.T) {
	patch := mergePatch(domain.Patch{}, stateUpdateInput{Email: " Jane@Example.COM "})
	if patch.Contact == nil || patch.Contact.Email != "jane@example.com" {
		t.Fatalf("unexpected contact: %+v", patch.Contact)
	}

	patch = mergePatch(domain.Patch{}, stateUpdateInput{})
	if patch.Contact != nil {
		t.Fatalf("empty input must not create a contact")
	}
}

func TestMergePatch_KeepsExistingValues(t *testing.T) {
	existing := domain.Patch{Colors: []string{"white"}}
	patch := mergePatch(existing, stateUpdateInput{Colors: []string{"blue"}})
	if len(patch.Colors) != 1 || patch.Colors[0] != "white" {
		t.Fatalf("existing colors must win: %v", patch.Colors)
	}
}
