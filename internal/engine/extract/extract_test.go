package extract

import (
	"testing"

	"buildsmart_backend/internal/engine/domain"
	"buildsmart_backend/internal/engine/policy"
)

func TestDetectRooms_SingleRoom(t *testing.T) {
	rooms := DetectRooms("I want to remodel my kitchen")
	if len(rooms) != 1 {
		t.Fatalf("expected 1 room, got %d", len(rooms))
	}
	if rooms[0] != domain.RoomKitchen {
		t.Fatalf("expected kitchen, got %s", rooms[0])
	}
}

func TestDetectRooms_MultipleRooms(t *testing.T) {
	rooms := DetectRooms("the kitchen and the basement need work")
	if len(rooms) != 2 {
		t.Fatalf("expected 2 rooms, got %d", len(rooms))
	}
	if rooms[0] != domain.RoomKitchen || rooms[1] != domain.RoomBasement {
		t.Fatalf("expected kitchen then basement, got %v", rooms)
	}
}

func TestDetectRooms_MasterBathroomWinsOverBathroom(t *testing.T) {
	rooms := DetectRooms("our master bath is dated")
	if len(rooms) != 1 {
		t.Fatalf("expected 1 room, got %d", len(rooms))
	}
	if rooms[0] != domain.RoomMasterBathroom {
		t.Fatalf("expected master bathroom, got %s", rooms[0])
	}
}

func TestDetectRooms_NoMatch(t *testing.T) {
	if rooms := DetectRooms("hello there"); len(rooms) != 0 {
		t.Fatalf("expected no rooms, got %v", rooms)
	}
}

func TestExtractDimensions_LengthByWidth(t *testing.T) {
	dims, result := ExtractDimensions("it's about 10 by 12", domain.RoomKitchen, policy.Default())
	if result != DimensionMatch {
		t.Fatalf("expected match, got %d", result)
	}
	if dims.Length != 10 || dims.Width != 12 {
		t.Fatalf("expected 10x12, got %gx%g", dims.Length, dims.Width)
	}
	if dims.SquareFootage != 120 {
		t.Fatalf("expected 120 sq ft, got %g", dims.SquareFootage)
	}
}

func TestExtractDimensions_ExplicitSquareFeet(t *testing.T) {
	dims, result := ExtractDimensions("around 150 square feet", domain.RoomKitchen, policy.Default())
	if result != DimensionMatch {
		t.Fatalf("expected match, got %d", result)
	}
	if dims.SquareFootage != 150 {
		t.Fatalf("expected 150 sq ft, got %g", dims.SquareFootage)
	}
	if dims.IsEstimate {
		t.Fatalf("explicit square footage must not be flagged as estimate")
	}
}

func TestExtractDimensions_BareFeetIsIncomplete(t *testing.T) {
	_, result := ExtractDimensions("it's 12 feet", domain.RoomKitchen, policy.Default())
	if result != DimensionIncomplete {
		t.Fatalf("expected incomplete, got %d", result)
	}
}

func TestExtractDimensions_SizeDescriptorUsesRoomDefault(t *testing.T) {
	dims, result := ExtractDimensions("it's a small bathroom", domain.RoomBathroom, policy.Default())
	if result != DimensionMatch {
		t.Fatalf("expected match, got %d", result)
	}
	if dims.SquareFootage != 40 {
		t.Fatalf("expected 40 sq ft for a small bathroom, got %g", dims.SquareFootage)
	}
	if !dims.IsEstimate {
		t.Fatalf("descriptor-based dimensions must be flagged as estimate")
	}
}

func TestExtractDimensions_ImplausibleSide(t *testing.T) {
	_, result := ExtractDimensions("500 by 300", domain.RoomKitchen, policy.Default())
	if result != DimensionOutOfBounds {
		t.Fatalf("expected out of bounds, got %d", result)
	}
}

func TestExtractDimensions_ImplausibleSquareFootage(t *testing.T) {
	_, result := ExtractDimensions("50000 sq ft", domain.RoomKitchen, policy.Default())
	if result != DimensionOutOfBounds {
		t.Fatalf("expected out of bounds, got %d", result)
	}
}

func TestExtractDimensions_Idempotent(t *testing.T) {
	first, _ := ExtractDimensions("10 by 12", domain.RoomKitchen, policy.Default())
	second, _ := ExtractDimensions("10 by 12", domain.RoomKitchen, policy.Default())
	if first != second {
		t.Fatalf("expected identical results, got %+v and %+v", first, second)
	}
}

func TestExtractBudget_ExplicitRange(t *testing.T) {
	budget, result := ExtractBudget("$10,000-$20,000", 0, policy.Default())
	if result != BudgetMatch {
		t.Fatalf("expected match, got %d", result)
	}
	if budget.Min != 10000 || budget.Max != 20000 {
		t.Fatalf("expected 10000-20000, got %g-%g", budget.Min, budget.Max)
	}
}

func TestExtractBudget_RangeWithThousandSuffix(t *testing.T) {
	budget, result := ExtractBudget("somewhere between 10 to 20k", 0, policy.Default())
	if result != BudgetMatch {
		t.Fatalf("expected match, got %d", result)
	}
	if budget.Min != 10000 || budget.Max != 20000 {
		t.Fatalf("expected 10000-20000, got %g-%g", budget.Min, budget.Max)
	}
}

func TestExtractBudget_SingleAmountWidensToBand(t *testing.T) {
	budget, result := ExtractBudget("around $25,000", 0, policy.Default())
	if result != BudgetMatch {
		t.Fatalf("expected match, got %d", result)
	}
	if budget.Min != 20000 || budget.Max != 30000 {
		t.Fatalf("expected 20000-30000, got %g-%g", budget.Min, budget.Max)
	}
}

func TestExtractBudget_UnderQualifierCapsAtAmount(t *testing.T) {
	budget, result := ExtractBudget("under $30,000 please", 0, policy.Default())
	if result != BudgetMatch {
		t.Fatalf("expected match, got %d", result)
	}
	if budget.Min != 0 || budget.Max != 30000 {
		t.Fatalf("expected 0-30000, got %g-%g", budget.Min, budget.Max)
	}
}

func TestExtractBudget_KeywordBandScalesWithArea(t *testing.T) {
	budget, result := ExtractBudget("we're on a tight budget", 120, policy.Default())
	if result != BudgetMatch {
		t.Fatalf("expected match, got %d", result)
	}
	// 75*120=9000, 125*120=15000, both already at $1,000 boundaries,
	// min floored to 5000 does not apply.
	if budget.Min != 9000 || budget.Max != 15000 {
		t.Fatalf("expected 9000-15000, got %g-%g", budget.Min, budget.Max)
	}
}

func TestExtractBudget_KeywordBandAppliesFloors(t *testing.T) {
	budget, result := ExtractBudget("keep it low", 40, policy.Default())
	if result != BudgetMatch {
		t.Fatalf("expected match, got %d", result)
	}
	// 75*40=3000 floors to 5000; 125*40=5000 floors to 10000.
	if budget.Min != 5000 || budget.Max != 10000 {
		t.Fatalf("expected floors 5000-10000, got %g-%g", budget.Min, budget.Max)
	}
}

func TestExtractBudget_ImplausibleAmount(t *testing.T) {
	if _, result := ExtractBudget("$500", 0, policy.Default()); result != BudgetImplausible {
		t.Fatalf("expected implausible for $500, got %d", result)
	}
	if _, result := ExtractBudget("$2,000,000", 0, policy.Default()); result != BudgetImplausible {
		t.Fatalf("expected implausible for $2,000,000, got %d", result)
	}
}

func TestExtractBudget_NoMatch(t *testing.T) {
	if _, result := ExtractBudget("I like blue", 120, policy.Default()); result != BudgetNoMatch {
		t.Fatalf("expected no match, got %d", result)
	}
}

func TestDetectStyle_HighestCountWins(t *testing.T) {
	style, ok := DetectStyle("classic and timeless, maybe a bit modern")
	if !ok {
		t.Fatalf("expected a style")
	}
	if style != domain.StyleTraditional {
		t.Fatalf("expected traditional (2 hits beats 1), got %s", style)
	}
}

func TestDetectStyle_TieDefaultsToModern(t *testing.T) {
	style, ok := DetectStyle("farmhouse but also classic")
	if !ok {
		t.Fatalf("expected a style")
	}
	if style != domain.StyleModern {
		t.Fatalf("expected tie to resolve to modern, got %s", style)
	}
}

func TestDetectStyle_NoKeywords(t *testing.T) {
	if _, ok := DetectStyle("whatever you think"); ok {
		t.Fatalf("expected no style detected")
	}
}

func TestExtractColors(t *testing.T) {
	colors := ExtractColors("White cabinets with navy accents")
	if len(colors) != 2 {
		t.Fatalf("expected 2 colors, got %v", colors)
	}
	if colors[0] != "white" || colors[1] != "navy" {
		t.Fatalf("expected white and navy, got %v", colors)
	}
}

func TestExtractMaterials_LongerPhraseShadowsSubstring(t *testing.T) {
	materials := ExtractMaterials("subway tile backsplash")
	if len(materials) != 1 {
		t.Fatalf("expected 1 material, got %v", materials)
	}
	if materials[0] != "subway tile" {
		t.Fatalf("expected subway tile, got %v", materials)
	}
}

func TestParseSelection_Affirmative(t *testing.T) {
	_, result := ParseSelection("yes, sounds good", 3)
	if result != SelectionAll {
		t.Fatalf("expected all, got %d", result)
	}
}

func TestParseSelection_Negative(t *testing.T) {
	_, result := ParseSelection("no thanks, labor only", 3)
	if result != SelectionNone {
		t.Fatalf("expected none, got %d", result)
	}
}

func TestParseSelection_ByNumber(t *testing.T) {
	indices, result := ParseSelection("add products 1 and 3", 3)
	if result != SelectionSome {
		t.Fatalf("expected some, got %d", result)
	}
	if len(indices) != 2 || indices[0] != 0 || indices[1] != 2 {
		t.Fatalf("expected indices [0 2], got %v", indices)
	}
}

func TestParseSelection_OutOfRangeNumbersIgnored(t *testing.T) {
	_, result := ParseSelection("give me number 9", 3)
	if result != SelectionNoMatch {
		t.Fatalf("expected no match, got %d", result)
	}
}

func TestExtractEmail(t *testing.T) {
	email, ok := ExtractEmail("send it to Jane.Doe@Example.com please")
	if !ok {
		t.Fatalf("expected an email")
	}
	if email != "jane.doe@example.com" {
		t.Fatalf("expected lowercased email, got %s", email)
	}
}

func TestWantsRestartAndMoreProducts(t *testing.T) {
	if !WantsRestart("let's start over") {
		t.Fatalf("expected restart intent")
	}
	if WantsRestart("show me more products") {
		t.Fatalf("more products must not read as restart")
	}
	if !WantsMoreProducts("show me more products") {
		t.Fatalf("expected more-products intent")
	}
}
