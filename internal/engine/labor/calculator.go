package labor

import (
	"fmt"

	"buildsmart_backend/internal/engine/domain"
)

// FixtureQuantities overrides the default fixture counts for a room.
type FixtureQuantities map[string]int

// defaultFixtures lists the fixtures a room of the given kind typically
// needs, with default quantities used when the homeowner did not say.
func defaultFixtures(roomType domain.RoomType) []fixtureSpec {
	switch {
	case roomType == domain.RoomKitchen:
		return []fixtureSpec{
			{FixtureCanLight, 4},
		}
	case roomType.IsBathroom():
		return []fixtureSpec{
			{FixtureCanLight, 4},
			{FixtureBathFan, 1},
			{FixtureToilet, 1},
		}
	case roomType == domain.RoomBedroom:
		return []fixtureSpec{
			{FixtureInteriorDoor, 1},
		}
	case roomType == domain.RoomBasement:
		return []fixtureSpec{
			{FixtureCanLight, 4},
			{FixtureInteriorDoor, 1},
			{FixtureEgressWindow, 0},
		}
	default:
		return nil
	}
}

type fixtureSpec struct {
	fixture  string
	quantity int
}

// baseItem is one room-schedule labor task. Exactly one of perSqFtRate and
// flatFee is set.
type baseItem struct {
	name        string
	perSqFtRate float64
	flatFee     float64
	description string
}

func kitchenSchedule() []baseItem {
	return []baseItem{
		{name: "Demolition", perSqFtRate: 10, description: "Remove existing cabinets, counters, and flooring"},
		{name: "Cabinet Installation", perSqFtRate: 15, description: "Install base and wall cabinets"},
		{name: "Countertop Installation", perSqFtRate: 12, description: "Template, fabricate, and set countertops"},
		{name: "Plumbing", flatFee: 800, description: "Reconnect sink, faucet, and dishwasher"},
		{name: "Electrical", flatFee: 1200, description: "Outlets, switches, and appliance circuits"},
		{name: "Flooring", perSqFtRate: 2.50, description: "Install new flooring"},
		{name: "Backsplash", flatFee: 1500, description: "Install tile backsplash"},
		{name: "Finishing", perSqFtRate: 5, description: "Paint, caulk, and final detail work"},
	}
}

func bathroomSchedule() []baseItem {
	return []baseItem{
		{name: "Demolition", perSqFtRate: 12, description: "Remove existing fixtures, tile, and flooring"},
		{name: "Plumbing", flatFee: 1800, description: "Rough-in and fixture connections"},
		{name: "Electrical", flatFee: 900, description: "Lighting, outlets, and fan circuit"},
		{name: "Tile Work", perSqFtRate: 15, description: "Floor and wall tile installation"},
		{name: "Vanity Installation", flatFee: 600, description: "Set vanity, sink, and faucet"},
		{name: "Shower/Tub Installation", flatFee: 2000, description: "Set shower base or tub"},
		{name: "Finishing", perSqFtRate: 6, description: "Paint, caulk, and final detail work"},
	}
}

func generalSchedule() []baseItem {
	return []baseItem{
		{name: "Demolition", perSqFtRate: 8, description: "Remove existing finishes"},
		{name: "Framing", perSqFtRate: tradeRates[TradeFraming].Max, description: "Frame new walls and openings"},
		{name: "Drywall", perSqFtRate: tradeRates[TradeDrywall].Max, description: "Hang, tape, and finish drywall"},
		{name: "Painting", perSqFtRate: tradeRates[TradePaint].Max, description: "Prime and paint walls and ceiling"},
		{name: "Flooring", perSqFtRate: tradeRates[TradeFlooring].Max, description: "Install new flooring"},
		{name: "Trim", perSqFtRate: tradeRates[TradeTrim].Max, description: "Baseboard and casing installation"},
		{name: "Finishing", perSqFtRate: 4, description: "Final detail work and cleanup"},
	}
}

func scheduleFor(roomType domain.RoomType) []baseItem {
	switch {
	case roomType == domain.RoomKitchen:
		return kitchenSchedule()
	case roomType.IsBathroom():
		return bathroomSchedule()
	default:
		return generalSchedule()
	}
}

// CalculateRoom prices the labor for one room: the room schedule's
// per-square-foot and flat-fee items plus the room's typical fixtures at
// default quantities. Overrides replace a default quantity when the
// homeowner specified a count.
func CalculateRoom(room domain.Room, overrides FixtureQuantities) domain.RoomLaborBreakdown {
	breakdown := domain.RoomLaborBreakdown{
		RoomType: room.Type,
		RoomName: room.Type.DisplayName(),
	}
	if room.Dimensions == nil {
		return breakdown
	}
	sqft := room.Dimensions.SquareFootage
	breakdown.SquareFootage = sqft

	for _, item := range scheduleFor(room.Type) {
		cost := item.flatFee
		if item.perSqFtRate > 0 {
			cost = item.perSqFtRate * sqft
		}
		breakdown.Items = append(breakdown.Items, domain.LaborLineItem{
			Name:        item.name,
			Cost:        cost,
			Description: item.description,
		})
	}

	for _, spec := range defaultFixtures(room.Type) {
		quantity := spec.quantity
		if override, ok := overrides[spec.fixture]; ok {
			quantity = override
		}
		if quantity <= 0 {
			continue
		}
		breakdown.Items = append(breakdown.Items, domain.LaborLineItem{
			Name:        fixtureItemName(spec.fixture, quantity),
			Cost:        FixtureCost(spec.fixture, quantity),
			Description: fmt.Sprintf("Install %d %s", quantity, pluralize(spec.fixture, quantity)),
		})
	}

	for _, item := range breakdown.Items {
		breakdown.TotalCost += item.Cost
	}
	return breakdown
}

// CalculateAll prices every room with dimensions and returns the per-room
// breakdowns plus the overall labor total.
func CalculateAll(rooms []domain.Room) ([]domain.RoomLaborBreakdown, float64) {
	var breakdowns []domain.RoomLaborBreakdown
	var total float64
	for _, room := range rooms {
		if room.Dimensions == nil {
			continue
		}
		breakdown := CalculateRoom(room, nil)
		breakdowns = append(breakdowns, breakdown)
		total += breakdown.TotalCost
	}
	return breakdowns, total
}

func fixtureItemName(fixture string, quantity int) string {
	return fmt.Sprintf("%s (%d)", titleCase(fixture), quantity)
}

func pluralize(fixture string, quantity int) string {
	if quantity == 1 {
		return fixture
	}
	return fixture + "s"
}

func titleCase(s string) string {
	out := []byte(s)
	upper := true
	for i := 0; i < len(out); i++ {
		c := out[i]
		if upper && c >= 'a' && c <= 'z' {
			out[i] = c - 'a' + 'A'
		}
		upper = c == ' ' || c == '/'
	}
	return string(out)
}
