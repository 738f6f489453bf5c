// Package catalog holds the static product reference data and the
// recommendation lookup. Entries are declared in a fixed order so
// recommendation output is deterministic and testable.
package catalog

import (
	"fmt"

	"buildsmart_backend/internal/engine/domain"
)

// maxSuggestions caps the number of products returned per room lookup.
const maxSuggestions = 3

// tieredPrice holds the price of a synthetic catalog entry per budget tier.
type tieredPrice struct {
	low    float64
	medium float64
	high   float64
}

func (p tieredPrice) forTier(tier domain.BudgetTier) float64 {
	switch tier {
	case domain.TierLow:
		return p.low
	case domain.TierHigh:
		return p.high
	default:
		return p.medium
	}
}

// entry is one catalog product template. Styles is nil for style-agnostic
// entries.
type entry struct {
	id          string
	name        string
	brand       string
	category    domain.ProductCategory
	description string
	roomTypes   []domain.RoomType
	styles      []domain.DesignStyle
	price       tieredPrice
}

var kitchenRooms = []domain.RoomType{domain.RoomKitchen}
var bathroomRooms = []domain.RoomType{domain.RoomBathroom, domain.RoomMasterBathroom}
var generalRooms = []domain.RoomType{
	domain.RoomBedroom, domain.RoomLivingRoom, domain.RoomDiningRoom,
	domain.RoomBasement, domain.RoomOther,
}

var entries = []entry{
	// Kitchen
	{
		id: "kitchen-cabinets-modern", name: "Custom Flat-Panel Cabinets",
		brand: "BuildSmart Select", category: domain.CategoryCabinets,
		description: "Frameless flat-panel cabinets with soft-close hardware",
		roomTypes:   kitchenRooms,
		styles:      []domain.DesignStyle{domain.StyleModern, domain.StyleContemporary, domain.StyleMinimalist},
		price:       tieredPrice{3500, 5000, 8000},
	},
	{
		id: "kitchen-countertop-quartz", name: "Quartz Countertops",
		brand: "BuildSmart Select", category: domain.CategoryCountertops,
		description: "Engineered quartz slab countertops, polished finish",
		roomTypes:   kitchenRooms,
		styles:      []domain.DesignStyle{domain.StyleModern, domain.StyleContemporary, domain.StyleMinimalist},
		price:       tieredPrice{2800, 3500, 5000},
	},
	{
		id: "kitchen-cabinets-shaker", name: "Shaker Cabinets",
		brand: "BuildSmart Select", category: domain.CategoryCabinets,
		description: "Painted shaker-style cabinets with bar pulls",
		roomTypes:   kitchenRooms,
		styles:      []domain.DesignStyle{domain.StyleFarmhouse, domain.StyleRustic},
		price:       tieredPrice{3200, 4500, 7000},
	},
	{
		id: "kitchen-countertop-butcher", name: "Butcher Block Countertops",
		brand: "BuildSmart Select", category: domain.CategoryCountertops,
		description: "Solid wood butcher block, oiled finish",
		roomTypes:   kitchenRooms,
		styles:      []domain.DesignStyle{domain.StyleFarmhouse, domain.StyleRustic},
		price:       tieredPrice{1800, 2500, 3800},
	},
	{
		id: "kitchen-cabinets-raised", name: "Raised-Panel Cabinets",
		brand: "BuildSmart Select", category: domain.CategoryCabinets,
		description: "Classic raised-panel cabinets in stained hardwood",
		roomTypes:   kitchenRooms,
		styles: []domain.DesignStyle{
			domain.StyleTraditional, domain.StyleTransitional,
			domain.StyleIndustrial,
		},
		price: tieredPrice{3800, 5500, 8500},
	},
	{
		id: "kitchen-countertop-granite", name: "Granite Countertops",
		brand: "BuildSmart Select", category: domain.CategoryCountertops,
		description: "Natural granite slab countertops",
		roomTypes:   kitchenRooms,
		styles: []domain.DesignStyle{
			domain.StyleTraditional, domain.StyleTransitional,
			domain.StyleIndustrial,
		},
		price: tieredPrice{2500, 3200, 4800},
	},
	{
		id: "kitchen-flooring-lvp", name: "Luxury Vinyl Plank Flooring",
		brand: "BuildSmart Select", category: domain.CategoryFlooring,
		description: "Waterproof luxury vinyl plank, wood-look finish",
		roomTypes:   kitchenRooms,
		price:       tieredPrice{1500, 2200, 3500},
	},

	// Bathroom
	{
		id: "bath-vanity-floating", name: "Floating Vanity",
		brand: "BuildSmart Select", category: domain.CategoryVanity,
		description: "Wall-mounted vanity with integrated sink",
		roomTypes:   bathroomRooms,
		styles:      []domain.DesignStyle{domain.StyleModern, domain.StyleContemporary, domain.StyleMinimalist},
		price:       tieredPrice{800, 1200, 2500},
	},
	{
		id: "bath-shower-glass", name: "Glass Shower Enclosure",
		brand: "BuildSmart Select", category: domain.CategoryShower,
		description: "Frameless glass shower enclosure",
		roomTypes:   bathroomRooms,
		styles:      []domain.DesignStyle{domain.StyleModern, domain.StyleContemporary, domain.StyleMinimalist},
		price:       tieredPrice{1200, 1800, 3000},
	},
	{
		id: "bath-vanity-traditional", name: "Traditional Vanity",
		brand: "BuildSmart Select", category: domain.CategoryVanity,
		description: "Furniture-style vanity with stone top",
		roomTypes:   bathroomRooms,
		styles: []domain.DesignStyle{
			domain.StyleTraditional, domain.StyleTransitional,
			domain.StyleFarmhouse, domain.StyleRustic, domain.StyleIndustrial,
		},
		price: tieredPrice{700, 1100, 2200},
	},
	{
		id: "bath-shower-tiled", name: "Tiled Shower Surround",
		brand: "BuildSmart Select", category: domain.CategoryShower,
		description: "Full-height tiled shower surround",
		roomTypes:   bathroomRooms,
		styles: []domain.DesignStyle{
			domain.StyleTraditional, domain.StyleTransitional,
			domain.StyleFarmhouse, domain.StyleRustic, domain.StyleIndustrial,
		},
		price: tieredPrice{1500, 2200, 3500},
	},
	{
		id: "bath-flooring-porcelain", name: "Porcelain Tile Flooring",
		brand: "BuildSmart Select", category: domain.CategoryFlooring,
		description: "Porcelain floor tile with slip-resistant finish",
		roomTypes:   bathroomRooms,
		price:       tieredPrice{800, 1200, 2000},
	},

	// General rooms
	{
		id: "general-paint-premium", name: "Premium Paint Package",
		brand: "BuildSmart Select", category: domain.CategoryPaint,
		description: "Two-coat premium paint, walls and ceiling",
		roomTypes:   generalRooms,
		price:       tieredPrice{300, 500, 800},
	},
	{
		id: "general-flooring-hardwood", name: "Engineered Hardwood Flooring",
		brand: "BuildSmart Select", category: domain.CategoryFlooring,
		description: "Engineered hardwood planks, click-lock install",
		roomTypes:   generalRooms,
		price:       tieredPrice{2000, 3000, 4500},
	},
	{
		id: "general-trim-package", name: "Trim Package",
		brand: "BuildSmart Select", category: domain.CategoryTrim,
		description: "Baseboard, casing, and crown trim package",
		roomTypes:   generalRooms,
		price:       tieredPrice{600, 900, 1500},
	},
}

// Catalog is the in-memory product catalog.
type Catalog struct {
	entries []entry
}

// New returns the built-in catalog.
func New() *Catalog {
	return &Catalog{entries: entries}
}

// Lookup returns up to three products for the room, style, and budget tier,
// in catalog declaration order. Style-specific entries are matched first;
// style-agnostic entries for the room fill the remaining slots, so a room
// with no styled match still gets flooring and paint rather than nothing.
func (c *Catalog) Lookup(roomType domain.RoomType, style domain.DesignStyle, tier domain.BudgetTier) []domain.Product {
	var out []domain.Product

	for _, e := range c.entries {
		if len(out) >= maxSuggestions {
			break
		}
		if !e.matchesRoom(roomType) {
			continue
		}
		if len(e.styles) > 0 && !e.matchesStyle(style) {
			continue
		}
		out = append(out, e.toProduct(tier))
	}

	if len(out) == 0 {
		for _, e := range c.entries {
			if len(out) >= maxSuggestions {
				break
			}
			if len(e.styles) == 0 && (e.category == domain.CategoryFlooring || e.category == domain.CategoryPaint) {
				out = append(out, e.toProduct(tier))
			}
		}
	}
	return out
}

func (e entry) matchesRoom(roomType domain.RoomType) bool {
	for _, rt := range e.roomTypes {
		if rt == roomType {
			return true
		}
	}
	// Unknown room types price like general rooms.
	if !domain.IsKnownRoomType(roomType) {
		for _, rt := range e.roomTypes {
			if rt == domain.RoomOther {
				return true
			}
		}
	}
	return false
}

func (e entry) matchesStyle(style domain.DesignStyle) bool {
	for _, s := range e.styles {
		if s == style {
			return true
		}
	}
	return false
}

func (e entry) toProduct(tier domain.BudgetTier) domain.Product {
	return domain.Product{
		ID:          fmt.Sprintf("%s-%s", e.id, tier),
		Name:        e.name,
		Brand:       e.brand,
		Category:    e.category,
		Price:       e.price.forTier(tier),
		Description: e.description,
		RoomTypes:   e.roomTypes,
		Styles:      e.styles,
	}
}
