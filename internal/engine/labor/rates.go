// Package labor prices the construction work for each room. Published rates
// carry a min/max range, but every cost uses the maximum of the range. That
// is a business rule, not an approximation: estimates must never undershoot
// because a trade came in at the low end.
package labor

// Rate is a published labor rate range.
type Rate struct {
	Min float64
	Max float64
}

// Per-square-foot trade rates.
const (
	TradeFraming      = "framing"
	TradeDrywall      = "drywall"
	TradePaint        = "paint"
	TradeFlooring     = "flooring"
	TradeInsulation   = "insulation"
	TradeTrim         = "trim"
	TradeTileFloor    = "tile floor"
	TradeTileShower   = "tile shower"
	TradeCeiling      = "ceiling"
	TradePaintTouchUp = "paint touch-up"
	TradeTwoTone      = "two-tone paint"
)

var tradeRates = map[string]Rate{
	TradeFraming:      {Min: 3.25, Max: 3.75},
	TradeDrywall:      {Min: 1.90, Max: 2.25},
	TradePaint:        {Min: 0.95, Max: 1.10},
	TradeFlooring:     {Min: 1.75, Max: 2.50},
	TradeInsulation:   {Min: 1.00, Max: 1.50},
	TradeTrim:         {Min: 1.50, Max: 2.25},
	TradeTileFloor:    {Min: 10.00, Max: 12.50},
	TradeTileShower:   {Min: 12.50, Max: 15.00},
	TradeCeiling:      {Min: 1.50, Max: 2.25},
	TradePaintTouchUp: {Min: 1.00, Max: 1.10},
	TradeTwoTone:      {Min: 1.10, Max: 1.20},
}

// Fixture labor rates, per unit unless noted.
const (
	FixtureCanLight         = "can light"
	FixtureBathFan          = "bath fan"
	FixtureToilet           = "toilet"
	FixtureVanity           = "vanity"
	FixtureTileShower       = "tile shower" // lump sum
	FixtureFiberglassShower = "fiberglass shower/tub"
	FixtureInteriorDoor     = "interior door"
	FixtureEgressWindow     = "egress window"
)

var fixtureRates = map[string]Rate{
	FixtureCanLight:         {Min: 100, Max: 125},
	FixtureBathFan:          {Min: 200, Max: 200},
	FixtureToilet:           {Min: 200, Max: 250},
	FixtureVanity:           {Min: 250, Max: 300},
	FixtureTileShower:       {Min: 3000, Max: 4500},
	FixtureFiberglassShower: {Min: 750, Max: 1200},
	FixtureInteriorDoor:     {Min: 150, Max: 200},
	FixtureEgressWindow:     {Min: 2000, Max: 2500},
}

// Hourly labor categories.
const (
	HourlyGeneral     = "general"
	HourlySpecialized = "specialized"
)

var hourlyRates = map[string]Rate{
	HourlyGeneral:     {Min: 60, Max: 75},
	HourlySpecialized: {Min: 85, Max: 120},
}

// TradeRate returns the published per-square-foot rate for a trade.
func TradeRate(trade string) (Rate, bool) {
	rate, ok := tradeRates[trade]
	return rate, ok
}

// FixtureRate returns the published per-unit rate for a fixture.
func FixtureRate(fixture string) (Rate, bool) {
	rate, ok := fixtureRates[fixture]
	return rate, ok
}

// HourlyRate returns the published hourly rate for a labor category.
func HourlyRate(category string) (Rate, bool) {
	rate, ok := hourlyRates[category]
	return rate, ok
}

// TradeCost prices a trade over an area. Always the max rate.
func TradeCost(trade string, squareFootage float64) float64 {
	rate, ok := tradeRates[trade]
	if !ok {
		return 0
	}
	return rate.Max * squareFootage
}

// FixtureCost prices a fixture install. Always the max rate.
func FixtureCost(fixture string, quantity int) float64 {
	rate, ok := fixtureRates[fixture]
	if !ok {
		return 0
	}
	return rate.Max * float64(quantity)
}

// HourlyCost prices hourly work. Always the max rate.
func HourlyCost(category string, hours float64) float64 {
	rate, ok := hourlyRates[category]
	if !ok {
		return 0
	}
	return rate.Max * hours
}
