package catalog

import (
	"testing"

	"buildsmart_backend/internal/engine/domain"
)

func TestLookup_ModernKitchenMediumTier(t *testing.T) {
	products := New().Lookup(domain.RoomKitchen, domain.StyleModern, domain.TierMedium)
	if len(products) != 3 {
		t.Fatalf("expected 3 products, got %d", len(products))
	}
	if products[0].Name != "Custom Flat-Panel Cabinets" || products[0].Price != 5000 {
		t.Fatalf("unexpected first product: %s $%g", products[0].Name, products[0].Price)
	}
	if products[1].Name != "Quartz Countertops" || products[1].Price != 3500 {
		t.Fatalf("unexpected second product: %s $%g", products[1].Name, products[1].Price)
	}
	// Style-agnostic flooring fills the third slot.
	if products[2].Name != "Luxury Vinyl Plank Flooring" || products[2].Price != 2200 {
		t.Fatalf("unexpected third product: %s $%g", products[2].Name, products[2].Price)
	}
}

func TestLookup_TierChangesPriceNotLineup(t *testing.T) {
	low := New().Lookup(domain.RoomKitchen, domain.StyleFarmhouse, domain.TierLow)
	high := New().Lookup(domain.RoomKitchen, domain.StyleFarmhouse, domain.TierHigh)
	if len(low) != len(high) {
		t.Fatalf("tier must not change the lineup: %d vs %d", len(low), len(high))
	}
	for i := range low {
		if low[i].Name != high[i].Name {
			t.Fatalf("tier must not change the lineup: %s vs %s", low[i].Name, high[i].Name)
		}
		if low[i].Price >= high[i].Price {
			t.Fatalf("%s: low tier $%g must price under high tier $%g", low[i].Name, low[i].Price, high[i].Price)
		}
	}
}

func TestLookup_MasterBathroomMatchesBathroomEntries(t *testing.T) {
	products := New().Lookup(domain.RoomMasterBathroom, domain.StyleTraditional, domain.TierMedium)
	if len(products) == 0 {
		t.Fatalf("expected bathroom products for a master bathroom")
	}
	if products[0].Name != "Traditional Vanity" {
		t.Fatalf("expected traditional vanity first, got %s", products[0].Name)
	}
}

func TestLookup_GeneralRoom(t *testing.T) {
	products := New().Lookup(domain.RoomBedroom, domain.StyleModern, domain.TierMedium)
	if len(products) != 3 {
		t.Fatalf("expected 3 general products, got %d", len(products))
	}
	for _, p := range products {
		switch p.Category {
		case domain.CategoryPaint, domain.CategoryFlooring, domain.CategoryTrim:
		default:
			t.Fatalf("unexpected category %s for a bedroom", p.Category)
		}
	}
}

func TestLookup_UnknownRoomTypePricesAsGeneral(t *testing.T) {
	products := New().Lookup(domain.RoomType("sunroom"), domain.StyleModern, domain.TierMedium)
	if len(products) == 0 {
		t.Fatalf("unknown room types must still get general suggestions")
	}
}

func TestLookup_IDCarriesTier(t *testing.T) {
	products := New().Lookup(domain.RoomKitchen, domain.StyleModern, domain.TierHigh)
	if products[0].ID != "kitchen-cabinets-modern-high" {
		t.Fatalf("expected tier-suffixed id, got %s", products[0].ID)
	}
}

func TestLookup_Deterministic(t *testing.T) {
	first := New().Lookup(domain.RoomKitchen, domain.StyleModern, domain.TierMedium)
	second := New().Lookup(domain.RoomKitchen, domain.StyleModern, domain.TierMedium)
	if len(first) != len(second) {
		t.Fatalf("lookup must be deterministic")
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("lookup order changed between calls: %s vs %s", first[i].ID, second[i].ID)
		}
	}
}
