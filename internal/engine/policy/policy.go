// Package policy holds the tunable pricing policy tables: size-descriptor
// square footage defaults and budget keyword bands. The numbers ship as
// compiled-in defaults but can be overridden from a YAML file so product
// owners can adjust them without a release.
package policy

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"buildsmart_backend/internal/engine/domain"
)

const defaultKey = "default"

// Band is a budget keyword band expressed in dollars per square foot.
type Band struct {
	MinPerSqFt float64 `yaml:"minPerSqFt"`
	MaxPerSqFt float64 `yaml:"maxPerSqFt"`
}

// Policy is the full set of tunable tables.
type Policy struct {
	// SizeDefaults maps a size descriptor ("small"/"medium"/"large") to
	// square footage per room type, with a "default" fallback key.
	SizeDefaults map[string]map[string]float64 `yaml:"sizeDefaults"`
	// BudgetBands maps a budget keyword tier to a per-square-foot band.
	BudgetBands map[string]Band `yaml:"budgetBands"`
	// BudgetFloorMin and BudgetFloorMax floor the derived budget range.
	BudgetFloorMin float64 `yaml:"budgetFloorMin"`
	BudgetFloorMax float64 `yaml:"budgetFloorMax"`
}

// Default returns the compiled-in policy.
func Default() Policy {
	return Policy{
		SizeDefaults: map[string]map[string]float64{
			"small": {
				string(domain.RoomBathroom): 40,
				string(domain.RoomKitchen):  100,
				string(domain.RoomBedroom):  120,
				defaultKey:                  150,
			},
			"medium": {
				string(domain.RoomBathroom): 60,
				string(domain.RoomKitchen):  150,
				string(domain.RoomBedroom):  180,
				defaultKey:                  250,
			},
			"large": {
				string(domain.RoomBathroom): 80,
				string(domain.RoomKitchen):  200,
				string(domain.RoomBedroom):  250,
				defaultKey:                  350,
			},
		},
		BudgetBands: map[string]Band{
			string(domain.TierLow):    {MinPerSqFt: 75, MaxPerSqFt: 125},
			string(domain.TierMedium): {MinPerSqFt: 125, MaxPerSqFt: 225},
			string(domain.TierHigh):   {MinPerSqFt: 225, MaxPerSqFt: 400},
		},
		BudgetFloorMin: 5000,
		BudgetFloorMax: 10000,
	}
}

// Load reads a YAML policy file and overlays it on the defaults. Tables
// omitted from the file keep their default values.
func Load(path string) (Policy, error) {
	base := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Policy{}, fmt.Errorf("read policy file: %w", err)
	}

	var overlay Policy
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return Policy{}, fmt.Errorf("parse policy file: %w", err)
	}

	if len(overlay.SizeDefaults) > 0 {
		base.SizeDefaults = overlay.SizeDefaults
	}
	if len(overlay.BudgetBands) > 0 {
		base.BudgetBands = overlay.BudgetBands
	}
	if overlay.BudgetFloorMin > 0 {
		base.BudgetFloorMin = overlay.BudgetFloorMin
	}
	if overlay.BudgetFloorMax > 0 {
		base.BudgetFloorMax = overlay.BudgetFloorMax
	}
	return base, nil
}

// SizeDefault returns the default square footage for a descriptor and room
// type, falling back to the descriptor's "default" entry. Bathrooms of any
// kind share the bathroom defaults.
func (p Policy) SizeDefault(descriptor string, roomType domain.RoomType) (float64, bool) {
	table, ok := p.SizeDefaults[descriptor]
	if !ok {
		return 0, false
	}
	key := string(roomType)
	if roomType.IsBathroom() {
		key = string(domain.RoomBathroom)
	}
	if sqft, ok := table[key]; ok {
		return sqft, true
	}
	if sqft, ok := table[defaultKey]; ok {
		return sqft, true
	}
	return 0, false
}

// BudgetBand returns the per-square-foot band for a keyword tier.
func (p Policy) BudgetBand(tier domain.BudgetTier) (Band, bool) {
	band, ok := p.BudgetBands[string(tier)]
	return band, ok
}
