package domain

// Dimensions holds the measured or estimated size of a single room.
// When Length and Width are both set, SquareFootage is their product.
// IsEstimate marks square footage derived from a size descriptor
// ("small"/"medium"/"large") rather than numbers the homeowner gave.
type Dimensions struct {
	Length        float64 `json:"length,omitempty"`
	Width         float64 `json:"width,omitempty"`
	SquareFootage float64 `json:"squareFootage"`
	CeilingHeight float64 `json:"ceilingHeight,omitempty"`
	IsEstimate    bool    `json:"isEstimate,omitempty"`
}

// Room is one room included in the remodeling project. Rooms are created
// during room selection and never removed within a session.
type Room struct {
	Type       RoomType          `json:"type"`
	Dimensions *Dimensions       `json:"dimensions,omitempty"`
	Products   []ProductCategory `json:"products,omitempty"`
}

// Budget is the homeowner's spending range for the whole project.
// Min <= Max always holds. PerSqFt is derived once total square footage is
// known and drives the budget tier.
type Budget struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	PerSqFt float64 `json:"perSqFt,omitempty"`
}

// Tier returns the budget tier for this budget.
func (b Budget) Tier() BudgetTier {
	return TierForPerSqFt(b.PerSqFt)
}

// Preferences captures design choices collected during the preferences stage.
// Later stages read but never mutate it.
type Preferences struct {
	DesignStyle DesignStyle `json:"designStyle,omitempty"`
	Colors      []string    `json:"colorPreferences,omitempty"`
	Materials   []string    `json:"materialPreferences,omitempty"`
	Additional  []string    `json:"additionalPreferences,omitempty"`
}

// Product is an immutable catalog entry. Price reflects the budget tier the
// entry was generated for.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Brand       string          `json:"brand,omitempty"`
	Category    ProductCategory `json:"category"`
	Price       float64         `json:"price"`
	Description string          `json:"description,omitempty"`
	RoomTypes   []RoomType      `json:"roomTypes,omitempty"`
	Styles      []DesignStyle   `json:"designStyles,omitempty"`
}

// LaborLineItem is a single priced labor task within a room.
type LaborLineItem struct {
	Name        string  `json:"name"`
	Cost        float64 `json:"cost"`
	Description string  `json:"description,omitempty"`
}

// RoomLaborBreakdown is the full labor estimate for one room.
type RoomLaborBreakdown struct {
	RoomType      RoomType        `json:"roomType"`
	RoomName      string          `json:"roomName"`
	SquareFootage float64         `json:"squareFootage"`
	Items         []LaborLineItem `json:"items"`
	TotalCost     float64         `json:"totalCost"`
}

// Totals is the aggregated estimate. Tax applies to products only.
type Totals struct {
	ProductsCost float64 `json:"productsCost"`
	LaborCost    float64 `json:"laborCost"`
	Tax          float64 `json:"tax"`
	Total        float64 `json:"total"`
}

// Contact holds delivery details collected at the summary stage.
type Contact struct {
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// State is the complete conversation state. The engine treats it as a value:
// every turn receives the full prior state and returns a full new state, and
// no reference is retained across calls. Sessions are therefore independent
// without any locking.
type State struct {
	Stage              Stage                `json:"stage"`
	Rooms              []Room               `json:"rooms"`
	CurrentRoomIndex   int                  `json:"currentRoomIndex"`
	Budget             *Budget              `json:"budget,omitempty"`
	Preferences        Preferences          `json:"preferences"`
	ProductSuggestions []Product            `json:"productSuggestions,omitempty"`
	SelectedProducts   []Product            `json:"selectedProducts,omitempty"`
	LaborCosts         []RoomLaborBreakdown `json:"laborCosts,omitempty"`
	TotalEstimate      *Totals              `json:"totalEstimate,omitempty"`
	Contact            *Contact             `json:"contact,omitempty"`
}

// NewState returns the initial conversation state.
func NewState() State {
	return State{
		Stage: StageGreeting,
		Rooms: []Room{},
	}
}

// TotalSquareFootage sums the square footage of all rooms with dimensions.
func (s State) TotalSquareFootage() float64 {
	var total float64
	for _, room := range s.Rooms {
		if room.Dimensions != nil {
			total += room.Dimensions.SquareFootage
		}
	}
	return total
}

// CurrentRoom returns the room awaiting dimensions, or nil when the index is
// out of range.
func (s State) CurrentRoom() *Room {
	if s.CurrentRoomIndex < 0 || s.CurrentRoomIndex >= len(s.Rooms) {
		return nil
	}
	return &s.Rooms[s.CurrentRoomIndex]
}

// Clone returns a deep copy of the state. Handlers clone before mutating so a
// failed extraction never leaves the caller's state partially changed.
func (s State) Clone() State {
	out := s
	out.Rooms = make([]Room, len(s.Rooms))
	for i, room := range s.Rooms {
		out.Rooms[i] = room
		if room.Dimensions != nil {
			dims := *room.Dimensions
			out.Rooms[i].Dimensions = &dims
		}
		out.Rooms[i].Products = append([]ProductCategory(nil), room.Products...)
	}
	if s.Budget != nil {
		budget := *s.Budget
		out.Budget = &budget
	}
	out.Preferences.Colors = append([]string(nil), s.Preferences.Colors...)
	out.Preferences.Materials = append([]string(nil), s.Preferences.Materials...)
	out.Preferences.Additional = append([]string(nil), s.Preferences.Additional...)
	out.ProductSuggestions = cloneProducts(s.ProductSuggestions)
	out.SelectedProducts = cloneProducts(s.SelectedProducts)
	out.LaborCosts = make([]RoomLaborBreakdown, len(s.LaborCosts))
	for i, breakdown := range s.LaborCosts {
		out.LaborCosts[i] = breakdown
		out.LaborCosts[i].Items = append([]LaborLineItem(nil), breakdown.Items...)
	}
	if s.TotalEstimate != nil {
		totals := *s.TotalEstimate
		out.TotalEstimate = &totals
	}
	if s.Contact != nil {
		contact := *s.Contact
		out.Contact = &contact
	}
	return out
}

func cloneProducts(products []Product) []Product {
	if products == nil {
		return nil
	}
	out := make([]Product, len(products))
	for i, p := range products {
		out[i] = p
		out[i].RoomTypes = append([]RoomType(nil), p.RoomTypes...)
		out[i].Styles = append([]DesignStyle(nil), p.Styles...)
	}
	return out
}
