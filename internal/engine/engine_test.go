package engine

import (
	"strings"
	"testing"

	"buildsmart_backend/internal/engine/domain"
)

func TestProcessTurn_FullKitchenConversation(t *testing.T) {
	e := New()
	state := domain.NewState()

	// Rooms named in the opening message skip the room selection stage.
	reply, state, _ := e.ProcessTurn(state, "I want to remodel my kitchen")
	if state.Stage != domain.StageRoomDimensions {
		t.Fatalf("after greeting: expected ROOM_DIMENSIONS, got %s", state.Stage)
	}
	if len(state.Rooms) != 1 || state.Rooms[0].Type != domain.RoomKitchen {
		t.Fatalf("expected [kitchen], got %+v", state.Rooms)
	}
	if !strings.Contains(reply, "kitchen") {
		t.Fatalf("dimension prompt should name the kitchen: %q", reply)
	}

	_, state, _ = e.ProcessTurn(state, "it's about 10 by 12")
	if state.Stage != domain.StageBudget {
		t.Fatalf("after dimensions: expected BUDGET, got %s", state.Stage)
	}
	dims := state.Rooms[0].Dimensions
	if dims == nil || dims.SquareFootage != 120 {
		t.Fatalf("expected 120 sq ft, got %+v", dims)
	}

	_, state, _ = e.ProcessTurn(state, "$15,000")
	if state.Stage != domain.StageDesignPreferences {
		t.Fatalf("after budget: expected DESIGN_PREFERENCES, got %s", state.Stage)
	}
	if state.Budget == nil || state.Budget.Min != 12000 || state.Budget.Max != 18000 {
		t.Fatalf("expected budget 12000-18000, got %+v", state.Budget)
	}
	if state.Budget.PerSqFt != 125 {
		t.Fatalf("expected 125 per sq ft, got %g", state.Budget.PerSqFt)
	}

	reply, state, _ = e.ProcessTurn(state, "modern, white")
	if state.Stage != domain.StageProductSuggestions {
		t.Fatalf("after preferences: expected PRODUCT_SUGGESTIONS, got %s", state.Stage)
	}
	if state.Preferences.DesignStyle != domain.StyleModern {
		t.Fatalf("expected MODERN, got %s", state.Preferences.DesignStyle)
	}
	if len(state.Preferences.Colors) != 1 || state.Preferences.Colors[0] != "white" {
		t.Fatalf("expected colors [white], got %v", state.Preferences.Colors)
	}
	if len(state.ProductSuggestions) != 3 {
		t.Fatalf("expected 3 suggestions, got %d", len(state.ProductSuggestions))
	}
	// $125/sq ft lands in the medium tier.
	if state.ProductSuggestions[0].Price != 5000 {
		t.Fatalf("expected medium-tier cabinets at 5000, got %g", state.ProductSuggestions[0].Price)
	}
	if !strings.Contains(reply, "1.") {
		t.Fatalf("suggestions should be a numbered list: %q", reply)
	}

	reply, state, _ = e.ProcessTurn(state, "yes")
	if state.Stage != domain.StageSummary {
		t.Fatalf("after selection: expected SUMMARY, got %s", state.Stage)
	}
	if len(state.SelectedProducts) != 3 {
		t.Fatalf("yes must select all suggestions, got %d", len(state.SelectedProducts))
	}
	if state.TotalEstimate == nil {
		t.Fatalf("expected totals on the final state")
	}
	// Products 5000+3500+2200=10700, labor 9340, tax 856.
	if state.TotalEstimate.Total != 20896 {
		t.Fatalf("expected total 20896, got %g", state.TotalEstimate.Total)
	}
	if !strings.Contains(reply, "PROJECT ESTIMATE SUMMARY") {
		t.Fatalf("summary reply missing the report: %q", reply)
	}
}

func TestProcessTurn_GreetingWithoutRooms(t *testing.T) {
	e := New()
	_, state, _ := e.ProcessTurn(domain.NewState(), "hi there")
	if state.Stage != domain.StageRoomSelection {
		t.Fatalf("expected ROOM_SELECTION, got %s", state.Stage)
	}
	if len(state.Rooms) != 0 {
		t.Fatalf("no rooms should be seeded yet, got %+v", state.Rooms)
	}
}

func TestProcessTurn_MultipleRoomsCollectDimensionsInOrder(t *testing.T) {
	e := New()
	_, state, _ := e.ProcessTurn(domain.NewState(), "kitchen and bathroom")
	if len(state.Rooms) != 2 {
		t.Fatalf("expected 2 rooms, got %d", len(state.Rooms))
	}

	reply, state, _ := e.ProcessTurn(state, "10 by 12")
	if state.Stage != domain.StageRoomDimensions {
		t.Fatalf("expected to stay in ROOM_DIMENSIONS for the second room, got %s", state.Stage)
	}
	if state.CurrentRoomIndex != 1 {
		t.Fatalf("expected index to advance to 1, got %d", state.CurrentRoomIndex)
	}
	if !strings.Contains(reply, "bathroom") {
		t.Fatalf("expected prompt for the bathroom: %q", reply)
	}

	_, state, _ = e.ProcessTurn(state, "small")
	if state.Stage != domain.StageBudget {
		t.Fatalf("expected BUDGET after the last room, got %s", state.Stage)
	}
	if got := state.TotalSquareFootage(); got != 160 {
		t.Fatalf("expected 160 total sq ft (120 + small bathroom 40), got %g", got)
	}
}

func TestProcessTurn_FailedExtractionLeavesStateUntouched(t *testing.T) {
	e := New()
	_, state, _ := e.ProcessTurn(domain.NewState(), "my kitchen")

	reply, after, _ := e.ProcessTurn(state, "the weather is nice")
	if after.Stage != domain.StageRoomDimensions {
		t.Fatalf("failed extraction must not advance the stage, got %s", after.Stage)
	}
	if after.Rooms[0].Dimensions != nil {
		t.Fatalf("failed extraction must not set dimensions")
	}
	if reply == "" {
		t.Fatalf("expected a clarifying re-prompt")
	}
}

func TestProcessTurn_ReportsWhetherUtteranceWasUnderstood(t *testing.T) {
	e := New()

	// Small talk at the greeting is a re-prompt even though it moves the
	// stage to room selection.
	_, state, understood := e.ProcessTurn(domain.NewState(), "hello there friend")
	if understood {
		t.Fatalf("small talk at greeting must not count as understood")
	}
	if state.Stage != domain.StageRoomSelection {
		t.Fatalf("expected ROOM_SELECTION, got %s", state.Stage)
	}

	_, state, understood = e.ProcessTurn(state, "the kitchen")
	if !understood {
		t.Fatalf("a detected room must count as understood")
	}

	_, _, understood = e.ProcessTurn(state, "no idea really")
	if understood {
		t.Fatalf("unparseable dimensions must not count as understood")
	}
}

func TestProcessTurn_DoesNotMutateInputState(t *testing.T) {
	e := New()
	_, state, _ := e.ProcessTurn(domain.NewState(), "my kitchen")

	before := state.Clone()
	_, _, _ = e.ProcessTurn(state, "10 by 12")

	if state.Stage != before.Stage {
		t.Fatalf("input stage mutated: %s", state.Stage)
	}
	if state.Rooms[0].Dimensions != nil {
		t.Fatalf("input rooms mutated")
	}
}

func TestProcessTurn_BudgetShapedInputAtDimensionStage(t *testing.T) {
	e := New()
	_, state, _ := e.ProcessTurn(domain.NewState(), "my kitchen")

	reply, after, _ := e.ProcessTurn(state, "my budget is $20,000")
	if after.Stage != domain.StageRoomDimensions {
		t.Fatalf("budget talk must not advance the dimension stage, got %s", after.Stage)
	}
	if !strings.Contains(reply, "size") {
		t.Fatalf("expected guidance back to room size: %q", reply)
	}
}

func TestProcessTurn_DimensionShapedInputAtBudgetStage(t *testing.T) {
	e := New()
	_, state, _ := e.ProcessTurn(domain.NewState(), "my kitchen")
	_, state, _ = e.ProcessTurn(state, "10 by 12")

	_, after, _ := e.ProcessTurn(state, "12 by 14")
	if after.Stage != domain.StageBudget {
		t.Fatalf("measurements must not advance the budget stage, got %s", after.Stage)
	}
	if after.Budget != nil {
		t.Fatalf("measurements must not set a budget")
	}
}

func TestProcessTurn_UnknownStageRecovers(t *testing.T) {
	e := New()
	corrupted := domain.State{Stage: domain.Stage("NEGOTIATION")}

	reply, state, _ := e.ProcessTurn(corrupted, "hello")
	if state.Stage != domain.StageGreeting {
		t.Fatalf("expected recovery to GREETING, got %s", state.Stage)
	}
	if reply != msgRecovered {
		t.Fatalf("expected the recovery message, got %q", reply)
	}
}

func TestProcessTurn_StartOverFromSummary(t *testing.T) {
	e := New()
	state := completedConversation(t, e)

	_, fresh, _ := e.ProcessTurn(state, "let's start over")
	if fresh.Stage != domain.StageGreeting {
		t.Fatalf("expected GREETING, got %s", fresh.Stage)
	}
	if len(fresh.Rooms) != 0 || fresh.Budget != nil || fresh.TotalEstimate != nil {
		t.Fatalf("start over must discard all prior data: %+v", fresh)
	}
}

func TestProcessTurn_ShowMoreProductsFromSummary(t *testing.T) {
	e := New()
	state := completedConversation(t, e)

	_, back, _ := e.ProcessTurn(state, "show me more products")
	if back.Stage != domain.StageProductSuggestions {
		t.Fatalf("expected PRODUCT_SUGGESTIONS, got %s", back.Stage)
	}
	if len(back.Rooms) == 0 || back.Budget == nil {
		t.Fatalf("revisiting products must keep rooms and budget")
	}
}

func TestProcessTurn_EmailCaptureAtSummary(t *testing.T) {
	e := New()
	state := completedConversation(t, e)

	reply, after, _ := e.ProcessTurn(state, "send it to jane@example.com")
	if after.Stage != domain.StageSummary {
		t.Fatalf("email capture must stay at SUMMARY, got %s", after.Stage)
	}
	if after.Contact == nil || after.Contact.Email != "jane@example.com" {
		t.Fatalf("expected contact email captured, got %+v", after.Contact)
	}
	if !strings.Contains(reply, "jane@example.com") {
		t.Fatalf("confirmation should echo the address: %q", reply)
	}
}

func TestProcessTurn_LaborOnlySelection(t *testing.T) {
	e := New()
	state := conversationAtProductSuggestions(t, e)

	_, after, _ := e.ProcessTurn(state, "no thanks, just labor")
	if after.Stage != domain.StageSummary {
		t.Fatalf("expected SUMMARY, got %s", after.Stage)
	}
	if len(after.SelectedProducts) != 0 {
		t.Fatalf("labor only must select nothing, got %d", len(after.SelectedProducts))
	}
	if after.TotalEstimate.ProductsCost != 0 || after.TotalEstimate.Tax != 0 {
		t.Fatalf("labor-only totals must carry no products or tax: %+v", after.TotalEstimate)
	}
}

func TestProcessTurn_SelectionByNumber(t *testing.T) {
	e := New()
	state := conversationAtProductSuggestions(t, e)

	_, after, _ := e.ProcessTurn(state, "just 1 and 3")
	if len(after.SelectedProducts) != 2 {
		t.Fatalf("expected 2 selected products, got %d", len(after.SelectedProducts))
	}
	if after.SelectedProducts[0].ID != state.ProductSuggestions[0].ID ||
		after.SelectedProducts[1].ID != state.ProductSuggestions[2].ID {
		t.Fatalf("expected suggestions 1 and 3, got %+v", after.SelectedProducts)
	}
}

func conversationAtProductSuggestions(t *testing.T, e *Engine) domain.State {
	t.Helper()
	_, state, _ := e.ProcessTurn(domain.NewState(), "my kitchen")
	_, state, _ = e.ProcessTurn(state, "10 by 12")
	_, state, _ = e.ProcessTurn(state, "$15,000")
	_, state, _ = e.ProcessTurn(state, "modern, white")
	if state.Stage != domain.StageProductSuggestions {
		t.Fatalf("setup failed: expected PRODUCT_SUGGESTIONS, got %s", state.Stage)
	}
	return state
}

func completedConversation(t *testing.T, e *Engine) domain.State {
	t.Helper()
	state := conversationAtProductSuggestions(t, e)
	_, state, _ = e.ProcessTurn(state, "yes")
	if state.Stage != domain.StageSummary {
		t.Fatalf("setup failed: expected SUMMARY, got %s", state.Stage)
	}
	return state
}
