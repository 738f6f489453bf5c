package labor

import (
	"strings"
	"testing"

	"buildsmart_backend/internal/engine/domain"
)

func TestTradeCostAlwaysUsesMaxRate(t *testing.T) {
	for trade, rate := range tradeRates {
		got := TradeCost(trade, 100)
		want := rate.Max * 100
		if got != want {
			t.Fatalf("%s: got %g, want max rate %g", trade, got, want)
		}
		if rate.Min != rate.Max && got == rate.Min*100 {
			t.Fatalf("%s: cost used the min rate", trade)
		}
	}
}

func TestFixtureCostAlwaysUsesMaxRate(t *testing.T) {
	for fixture, rate := range fixtureRates {
		if got := FixtureCost(fixture, 3); got != rate.Max*3 {
			t.Fatalf("%s: got %g, want %g", fixture, got, rate.Max*3)
		}
	}
}

func TestHourlyCostAlwaysUsesMaxRate(t *testing.T) {
	if got := HourlyCost(HourlyGeneral, 8); got != 75*8 {
		t.Fatalf("general: got %g, want %g", got, 75.0*8)
	}
	if got := HourlyCost(HourlySpecialized, 8); got != 120*8 {
		t.Fatalf("specialized: got %g, want %g", got, 120.0*8)
	}
}

func TestCostForUnknownKeyIsZero(t *testing.T) {
	if got := TradeCost("masonry", 100); got != 0 {
		t.Fatalf("unknown trade: got %g, want 0", got)
	}
	if got := FixtureCost("skylight", 2); got != 0 {
		t.Fatalf("unknown fixture: got %g, want 0", got)
	}
}

func TestCalculateRoom_Kitchen(t *testing.T) {
	room := domain.Room{
		Type:       domain.RoomKitchen,
		Dimensions: &domain.Dimensions{Length: 10, Width: 12, SquareFootage: 120},
	}

	breakdown := CalculateRoom(room, nil)
	if breakdown.SquareFootage != 120 {
		t.Fatalf("expected 120 sq ft, got %g", breakdown.SquareFootage)
	}
	// Schedule: 1200+1800+1440+800+1200+300+1500+600 = 8840.
	// Fixtures: 4 can lights at $125 = 500.
	if breakdown.TotalCost != 9340 {
		t.Fatalf("expected total 9340, got %g", breakdown.TotalCost)
	}

	var sum float64
	for _, item := range breakdown.Items {
		if item.Cost < 0 {
			t.Fatalf("negative line item %s: %g", item.Name, item.Cost)
		}
		sum += item.Cost
	}
	if sum != breakdown.TotalCost {
		t.Fatalf("line items sum %g does not match total %g", sum, breakdown.TotalCost)
	}
}

func TestCalculateRoom_Bathroom(t *testing.T) {
	room := domain.Room{
		Type:       domain.RoomBathroom,
		Dimensions: &domain.Dimensions{SquareFootage: 40},
	}

	breakdown := CalculateRoom(room, nil)
	// Schedule: 480+1800+900+600+600+2000+240 = 6620.
	// Fixtures: 4 can lights (500) + bath fan (200) + toilet (250) = 950.
	if breakdown.TotalCost != 7570 {
		t.Fatalf("expected total 7570, got %g", breakdown.TotalCost)
	}
}

func TestCalculateRoom_MasterBathroomUsesBathroomSchedule(t *testing.T) {
	small := domain.Room{
		Type:       domain.RoomBathroom,
		Dimensions: &domain.Dimensions{SquareFootage: 40},
	}
	master := domain.Room{
		Type:       domain.RoomMasterBathroom,
		Dimensions: &domain.Dimensions{SquareFootage: 40},
	}
	if CalculateRoom(small, nil).TotalCost != CalculateRoom(master, nil).TotalCost {
		t.Fatalf("master bathroom must price on the bathroom schedule")
	}
}

func TestCalculateRoom_FixtureOverrides(t *testing.T) {
	room := domain.Room{
		Type:       domain.RoomBasement,
		Dimensions: &domain.Dimensions{SquareFootage: 400},
	}

	base := CalculateRoom(room, nil)
	withEgress := CalculateRoom(room, FixtureQuantities{FixtureEgressWindow: 1})
	if withEgress.TotalCost != base.TotalCost+2500 {
		t.Fatalf("expected egress window to add 2500, got %g over %g", withEgress.TotalCost, base.TotalCost)
	}

	fewerLights := CalculateRoom(room, FixtureQuantities{FixtureCanLight: 2})
	if fewerLights.TotalCost != base.TotalCost-2*125 {
		t.Fatalf("expected 2 fewer can lights to subtract 250, got %g over %g", fewerLights.TotalCost, base.TotalCost)
	}
}

func TestCalculateRoom_ZeroQuantityFixtureOmitted(t *testing.T) {
	room := domain.Room{
		Type:       domain.RoomBasement,
		Dimensions: &domain.Dimensions{SquareFootage: 400},
	}
	for _, item := range CalculateRoom(room, nil).Items {
		if strings.Contains(item.Name, "Egress") {
			t.Fatalf("egress window defaults to zero and must not appear: %s", item.Name)
		}
	}
}

func TestCalculateRoom_NoDimensions(t *testing.T) {
	breakdown := CalculateRoom(domain.Room{Type: domain.RoomKitchen}, nil)
	if len(breakdown.Items) != 0 || breakdown.TotalCost != 0 {
		t.Fatalf("room without dimensions must not be priced, got %+v", breakdown)
	}
}

func TestCalculateAll(t *testing.T) {
	rooms := []domain.Room{
		{Type: domain.RoomKitchen, Dimensions: &domain.Dimensions{SquareFootage: 120}},
		{Type: domain.RoomBedroom},
		{Type: domain.RoomBathroom, Dimensions: &domain.Dimensions{SquareFootage: 40}},
	}

	breakdowns, total := CalculateAll(rooms)
	if len(breakdowns) != 2 {
		t.Fatalf("expected the undimensioned room to be skipped, got %d breakdowns", len(breakdowns))
	}

	var sum float64
	for _, b := range breakdowns {
		sum += b.TotalCost
	}
	if sum != total {
		t.Fatalf("breakdown sum %g does not match total %g", sum, total)
	}
}
