package domain

// RoomType is a closed enumeration of the room kinds the engine knows how to
// price.
type RoomType string

const (
	RoomKitchen        RoomType = "kitchen"
	RoomBathroom       RoomType = "bathroom"
	RoomMasterBathroom RoomType = "master bathroom"
	RoomBedroom        RoomType = "bedroom"
	RoomLivingRoom     RoomType = "living room"
	RoomDiningRoom     RoomType = "dining room"
	RoomBasement       RoomType = "basement"
	RoomOther          RoomType = "other"
)

var knownRoomTypes = map[RoomType]struct{}{
	RoomKitchen:        {},
	RoomBathroom:       {},
	RoomMasterBathroom: {},
	RoomBedroom:        {},
	RoomLivingRoom:     {},
	RoomDiningRoom:     {},
	RoomBasement:       {},
	RoomOther:          {},
}

// IsKnownRoomType reports whether t is a defined room type.
func IsKnownRoomType(t RoomType) bool {
	_, ok := knownRoomTypes[t]
	return ok
}

// IsBathroom reports whether the room is priced with the bathroom labor
// schedule. Master bathrooms share the bathroom schedule.
func (t RoomType) IsBathroom() bool {
	return t == RoomBathroom || t == RoomMasterBathroom
}

// DisplayName returns the label used in prompts and summaries.
func (t RoomType) DisplayName() string {
	if t == RoomOther {
		return "room"
	}
	return string(t)
}

// DesignStyle is a closed enumeration of supported design styles.
type DesignStyle string

const (
	StyleModern       DesignStyle = "MODERN"
	StyleTraditional  DesignStyle = "TRADITIONAL"
	StyleContemporary DesignStyle = "CONTEMPORARY"
	StyleFarmhouse    DesignStyle = "FARMHOUSE"
	StyleIndustrial   DesignStyle = "INDUSTRIAL"
	StyleMinimalist   DesignStyle = "MINIMALIST"
	StyleRustic       DesignStyle = "RUSTIC"
	StyleTransitional DesignStyle = "TRANSITIONAL"
)

var knownDesignStyles = map[DesignStyle]struct{}{
	StyleModern:       {},
	StyleTraditional:  {},
	StyleContemporary: {},
	StyleFarmhouse:    {},
	StyleIndustrial:   {},
	StyleMinimalist:   {},
	StyleRustic:       {},
	StyleTransitional: {},
}

// IsKnownDesignStyle reports whether s is a defined design style.
func IsKnownDesignStyle(s DesignStyle) bool {
	_, ok := knownDesignStyles[s]
	return ok
}

// ProductCategory is a closed enumeration of recommendable product categories.
type ProductCategory string

const (
	CategoryCabinets    ProductCategory = "cabinets"
	CategoryCountertops ProductCategory = "countertops"
	CategoryFlooring    ProductCategory = "flooring"
	CategoryVanity      ProductCategory = "vanity"
	CategoryShower      ProductCategory = "shower"
	CategoryPaint       ProductCategory = "paint"
	CategoryTrim        ProductCategory = "trim"
)

// BudgetTier classifies spending intensity from budget per square foot.
type BudgetTier string

const (
	TierLow    BudgetTier = "low"
	TierMedium BudgetTier = "medium"
	TierHigh   BudgetTier = "high"
)

// TierForPerSqFt maps budget-per-square-foot to a tier: under 100 is low,
// 100 through 250 is medium, above 250 is high.
func TierForPerSqFt(perSqFt float64) BudgetTier {
	switch {
	case perSqFt < 100:
		return TierLow
	case perSqFt > 250:
		return TierHigh
	default:
		return TierMedium
	}
}
