package estimate

import (
	"strings"
	"testing"

	"buildsmart_backend/internal/engine/domain"
)

func TestAggregate(t *testing.T) {
	products := []domain.Product{
		{Name: "Cabinets", Price: 5000},
		{Name: "Countertops", Price: 3500},
	}
	laborCosts := []domain.RoomLaborBreakdown{
		{RoomName: "kitchen", TotalCost: 9340},
	}

	totals := Aggregate(products, laborCosts)
	if totals.ProductsCost != 8500 {
		t.Fatalf("expected products cost 8500, got %g", totals.ProductsCost)
	}
	if totals.LaborCost != 9340 {
		t.Fatalf("expected labor cost 9340, got %g", totals.LaborCost)
	}
	if totals.Tax != 680 {
		t.Fatalf("expected tax 680 (8%% of products only), got %g", totals.Tax)
	}
	if totals.Total != 18520 {
		t.Fatalf("expected total 18520, got %g", totals.Total)
	}
}

func TestAggregate_LaborIsNeverTaxed(t *testing.T) {
	laborCosts := []domain.RoomLaborBreakdown{{RoomName: "bathroom", TotalCost: 7570}}
	totals := Aggregate(nil, laborCosts)
	if totals.Tax != 0 {
		t.Fatalf("labor-only estimate must carry no tax, got %g", totals.Tax)
	}
	if totals.Total != 7570 {
		t.Fatalf("expected total 7570, got %g", totals.Total)
	}
}

func TestAggregate_TaxRoundsToCents(t *testing.T) {
	products := []domain.Product{{Price: 333.33}}
	totals := Aggregate(products, nil)
	// 333.33 * 0.08 = 26.6664, rounds to 26.67.
	if totals.Tax != 26.67 {
		t.Fatalf("expected tax 26.67, got %g", totals.Tax)
	}
}

func TestClassifyBudget(t *testing.T) {
	budget := &domain.Budget{Min: 12000, Max: 18000}

	fit, delta := ClassifyBudget(domain.Totals{Total: 15000}, budget)
	if fit != FitWithin || delta != 0 {
		t.Fatalf("expected within, got fit %d delta %g", fit, delta)
	}

	fit, delta = ClassifyBudget(domain.Totals{Total: 10000}, budget)
	if fit != FitUnder || delta != 2000 {
		t.Fatalf("expected under by 2000, got fit %d delta %g", fit, delta)
	}

	fit, delta = ClassifyBudget(domain.Totals{Total: 20000}, budget)
	if fit != FitOver || delta != 2000 {
		t.Fatalf("expected over by 2000, got fit %d delta %g", fit, delta)
	}

	fit, _ = ClassifyBudget(domain.Totals{Total: 20000}, nil)
	if fit != FitUnknown {
		t.Fatalf("expected unknown without a budget, got %d", fit)
	}
}

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{950, "950"},
		{1000, "1,000"},
		{18520, "18,520"},
		{1234567, "1,234,567"},
		{26.67, "26.67"},
		{1500.5, "1,500.50"},
	}
	for _, tc := range cases {
		if got := FormatAmount(tc.in); got != tc.want {
			t.Fatalf("FormatAmount(%g) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSummary_ContainsEverySection(t *testing.T) {
	budget := &domain.Budget{Min: 12000, Max: 18000, PerSqFt: 125}
	totals := Aggregate(
		[]domain.Product{{Name: "Flat-Panel Cabinets", Price: 5000}},
		[]domain.RoomLaborBreakdown{{
			RoomName:  "kitchen",
			TotalCost: 9340,
			Items:     []domain.LaborLineItem{{Name: "Demolition", Cost: 1200}},
		}},
	)
	state := domain.State{
		Stage: domain.StageSummary,
		Rooms: []domain.Room{{
			Type:       domain.RoomKitchen,
			Dimensions: &domain.Dimensions{Length: 10, Width: 12, SquareFootage: 120},
		}},
		Budget: budget,
		Preferences: domain.Preferences{
			DesignStyle: domain.StyleModern,
			Colors:      []string{"white"},
		},
		SelectedProducts: []domain.Product{{Name: "Flat-Panel Cabinets", Price: 5000}},
		LaborCosts: []domain.RoomLaborBreakdown{{
			RoomName:  "kitchen",
			TotalCost: 9340,
			Items:     []domain.LaborLineItem{{Name: "Demolition", Cost: 1200}},
		}},
		TotalEstimate: &totals,
	}

	text := Summary(state)
	for _, want := range []string{
		"PROJECT ESTIMATE SUMMARY",
		"Kitchen: 10 ft x 12 ft (120 sq ft)",
		"Budget: $12,000 - $18,000",
		"Style: Modern",
		"Colors: white",
		"Flat-Panel Cabinets: $5,000",
		"Demolition: $1,200",
		"TOTAL:",
		"falls within your budget",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("summary missing %q:\n%s", want, text)
		}
	}
}

func TestSummary_Deterministic(t *testing.T) {
	state := domain.State{
		Stage: domain.StageSummary,
		Rooms: []domain.Room{{Type: domain.RoomBathroom, Dimensions: &domain.Dimensions{SquareFootage: 40}}},
	}
	if Summary(state) != Summary(state) {
		t.Fatalf("summary must be deterministic for a given state")
	}
}
