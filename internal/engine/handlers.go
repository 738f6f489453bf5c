package engine

import (
	"fmt"
	"math"
	"strings"

	"buildsmart_backend/internal/engine/domain"
	"buildsmart_backend/internal/engine/estimate"
	"buildsmart_backend/internal/engine/extract"
	"buildsmart_backend/internal/engine/labor"
	"buildsmart_backend/platform/phone"
)

func (e *Engine) handleGreeting(state domain.State, utterance string) (string, domain.State, bool) {
	detected := extract.DetectRooms(utterance)
	if len(detected) == 0 {
		state.Stage = domain.StageRoomSelection
		return msgWelcome, state, false
	}
	return e.seedRooms(state, detected)
}

func (e *Engine) handleRoomSelection(state domain.State, utterance string) (string, domain.State, bool) {
	detected := extract.DetectRooms(utterance)
	if len(detected) == 0 {
		return msgRoomsNotDetected, state, false
	}
	return e.seedRooms(state, detected)
}

// seedRooms records the detected rooms and moves to collecting dimensions
// for the first one.
func (e *Engine) seedRooms(state domain.State, detected []domain.RoomType) (string, domain.State, bool) {
	state.Rooms = make([]domain.Room, 0, len(detected))
	for _, roomType := range detected {
		state.Rooms = append(state.Rooms, domain.Room{Type: roomType})
	}
	state.CurrentRoomIndex = 0
	state.Stage = domain.StageRoomDimensions

	first := state.Rooms[0].Type.DisplayName()
	var b strings.Builder
	b.WriteString("Great! We'll plan your ")
	b.WriteString(joinRoomNames(detected))
	b.WriteString(fmt.Sprintf(". Let's start with the %s. How big is it? "+
		"You can say \"10 by 12\", \"120 square feet\", or \"small\", \"medium\", or \"large\".", first))
	return b.String(), state, true
}

func (e *Engine) handleRoomDimensions(state domain.State, utterance string) (string, domain.State, bool) {
	room := state.CurrentRoom()
	if room == nil {
		// Room list and index disagree; the state did not come from this
		// engine. Recover rather than fail.
		fresh := domain.NewState()
		return msgRecovered, fresh, false
	}
	roomName := room.Type.DisplayName()

	if extract.LooksLikeBudget(utterance) && !extract.LooksLikeDimensions(utterance) {
		return fmt.Sprintf(msgDimensionsBudgetGuard, roomName), state, false
	}

	dims, result := extract.ExtractDimensions(utterance, room.Type, e.policy)
	switch result {
	case extract.DimensionIncomplete:
		return fmt.Sprintf(msgDimensionsIncomplete, roomName), state, false
	case extract.DimensionOutOfBounds:
		return fmt.Sprintf(msgDimensionsImplausible, roomName), state, false
	case extract.DimensionNoMatch:
		return fmt.Sprintf(msgDimensionsNotDetected, roomName), state, false
	}

	room.Dimensions = &dims

	if state.CurrentRoomIndex+1 < len(state.Rooms) {
		state.CurrentRoomIndex++
		next := state.Rooms[state.CurrentRoomIndex].Type.DisplayName()
		return fmt.Sprintf(msgAskNextRoomDimensions, describeDimensions(dims), roomName, next), state, true
	}

	state.Stage = domain.StageBudget
	total := estimate.FormatAmount(state.TotalSquareFootage())
	return fmt.Sprintf(msgAskBudget, total+" square feet"), state, true
}

func (e *Engine) handleBudget(state domain.State, utterance string) (string, domain.State, bool) {
	if extract.LooksLikeDimensions(utterance) && !extract.LooksLikeBudget(utterance) {
		return msgBudgetDimensionGuard, state, false
	}

	budget, result := extract.ExtractBudget(utterance, state.TotalSquareFootage(), e.policy)
	switch result {
	case extract.BudgetImplausible:
		return msgBudgetImplausible, state, false
	case extract.BudgetNoMatch:
		return msgBudgetNotDetected, state, false
	}

	if totalSqFt := state.TotalSquareFootage(); totalSqFt > 0 {
		budget.PerSqFt = math.Round((budget.Min + budget.Max) / (2 * totalSqFt))
	}
	state.Budget = &budget
	state.Stage = domain.StageDesignPreferences
	return fmt.Sprintf(msgAskPreferences, budget.PerSqFt, budget.Tier()), state, true
}

func (e *Engine) handleDesignPreferences(state domain.State, utterance string) (string, domain.State, bool) {
	style, styleFound := extract.DetectStyle(utterance)
	colors := extract.ExtractColors(utterance)
	materials := extract.ExtractMaterials(utterance)
	additional := extract.ExtractAdditional(utterance)

	if !styleFound && len(colors) == 0 && len(materials) == 0 {
		if extract.LooksLikeBudget(utterance) || extract.LooksLikeDimensions(utterance) {
			return msgPreferencesGuard, state, false
		}
		return msgPreferencesNotDetected, state, false
	}

	if !styleFound {
		style = domain.StyleModern
	}
	state.Preferences = domain.Preferences{
		DesignStyle: style,
		Colors:      colors,
		Materials:   materials,
		Additional:  additional,
	}

	return e.suggestProducts(state)
}

// suggestProducts fills product suggestions for every room and moves to the
// selection stage.
func (e *Engine) suggestProducts(state domain.State) (string, domain.State, bool) {
	tier := domain.TierMedium
	if state.Budget != nil {
		tier = state.Budget.Tier()
	}

	state.ProductSuggestions = nil
	for i := range state.Rooms {
		products := e.catalog.Lookup(state.Rooms[i].Type, state.Preferences.DesignStyle, tier)
		state.ProductSuggestions = append(state.ProductSuggestions, products...)
		state.Rooms[i].Products = productCategories(products)
	}
	state.Stage = domain.StageProductSuggestions

	var b strings.Builder
	b.WriteString("Based on your style and budget, here's what I'd suggest:\n\n")
	for i, p := range state.ProductSuggestions {
		b.WriteString(fmt.Sprintf("%d. %s - $%s\n   %s\n", i+1, p.Name, estimate.FormatAmount(p.Price), p.Description))
	}
	b.WriteString("\nWould you like to include these in your estimate? " +
		"Say \"yes\" for all, \"no\" for labor only, or pick by number.")
	return b.String(), state, true
}

func (e *Engine) handleProductSuggestions(state domain.State, utterance string) (string, domain.State, bool) {
	indices, result := extract.ParseSelection(utterance, len(state.ProductSuggestions))
	switch result {
	case extract.SelectionNoMatch:
		return msgSelectionNotDetected, state, false
	case extract.SelectionAll:
		state.SelectedProducts = append([]domain.Product(nil), state.ProductSuggestions...)
	case extract.SelectionNone:
		state.SelectedProducts = nil
	case extract.SelectionSome:
		state.SelectedProducts = nil
		for _, idx := range indices {
			state.SelectedProducts = append(state.SelectedProducts, state.ProductSuggestions[idx])
		}
	}

	breakdowns, _ := labor.CalculateAll(state.Rooms)
	state.LaborCosts = breakdowns
	totals := estimate.Aggregate(state.SelectedProducts, state.LaborCosts)
	state.TotalEstimate = &totals
	state.Stage = domain.StageSummary

	return estimate.Summary(state) + "\n" + msgSummaryFollowUp, state, true
}

func (e *Engine) handleSummary(state domain.State, utterance string) (string, domain.State, bool) {
	if extract.WantsRestart(utterance) {
		fresh := domain.NewState()
		return "No problem, let's start over. " + msgWelcome, fresh, true
	}

	if extract.WantsMoreProducts(utterance) {
		return e.suggestProducts(state)
	}

	if email, ok := extract.ExtractEmail(utterance); ok {
		contact := domain.Contact{Email: email}
		if raw, ok := extract.ExtractPhone(utterance); ok {
			contact.Phone = phone.NormalizeE164(raw)
		}
		state.Contact = &contact
		return fmt.Sprintf(msgContactSaved, email), state, true
	}

	return msgSummaryFollowUp, state, false
}

func joinRoomNames(roomTypes []domain.RoomType) string {
	names := make([]string, len(roomTypes))
	for i, roomType := range roomTypes {
		names[i] = roomType.DisplayName()
	}
	switch len(names) {
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + ", and " + names[len(names)-1]
	}
}

func describeDimensions(dims domain.Dimensions) string {
	if dims.Length > 0 && dims.Width > 0 {
		return fmt.Sprintf("%g by %g feet", dims.Length, dims.Width)
	}
	if dims.IsEstimate {
		return fmt.Sprintf("roughly %g square feet", dims.SquareFootage)
	}
	return fmt.Sprintf("%g square feet", dims.SquareFootage)
}

func productCategories(products []domain.Product) []domain.ProductCategory {
	categories := make([]domain.ProductCategory, 0, len(products))
	seen := make(map[domain.ProductCategory]struct{})
	for _, p := range products {
		if _, ok := seen[p.Category]; !ok {
			seen[p.Category] = struct{}{}
			categories = append(categories, p.Category)
		}
	}
	return categories
}
