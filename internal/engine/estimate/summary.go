package estimate

import (
	"fmt"
	"strings"

	"buildsmart_backend/internal/engine/domain"
)

// Summary renders the final human-readable project report from state. It is
// a pure function: plain text only, no markup, no I/O, deterministic for a
// given state.
func Summary(state domain.State) string {
	var b strings.Builder

	b.WriteString("PROJECT ESTIMATE SUMMARY\n")
	b.WriteString("========================\n\n")

	b.WriteString("Rooms:\n")
	for _, room := range state.Rooms {
		b.WriteString("  - " + titleWords(room.Type.DisplayName()))
		if room.Dimensions != nil {
			dims := room.Dimensions
			switch {
			case dims.Length > 0 && dims.Width > 0:
				b.WriteString(fmt.Sprintf(": %g ft x %g ft (%g sq ft)", dims.Length, dims.Width, dims.SquareFootage))
			case dims.IsEstimate:
				b.WriteString(fmt.Sprintf(": approx. %g sq ft", dims.SquareFootage))
			default:
				b.WriteString(fmt.Sprintf(": %g sq ft", dims.SquareFootage))
			}
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if state.Budget != nil {
		b.WriteString(fmt.Sprintf("Budget: $%s - $%s", FormatAmount(state.Budget.Min), FormatAmount(state.Budget.Max)))
		if state.Budget.PerSqFt > 0 {
			b.WriteString(fmt.Sprintf(" ($%g/sq ft, %s tier)", state.Budget.PerSqFt, state.Budget.Tier()))
		}
		b.WriteString("\n\n")
	}

	prefs := state.Preferences
	if prefs.DesignStyle != "" || len(prefs.Colors) > 0 || len(prefs.Materials) > 0 {
		b.WriteString("Preferences:\n")
		if prefs.DesignStyle != "" {
			b.WriteString("  Style: " + titleWords(strings.ToLower(string(prefs.DesignStyle))) + "\n")
		}
		if len(prefs.Colors) > 0 {
			b.WriteString("  Colors: " + strings.Join(prefs.Colors, ", ") + "\n")
		}
		if len(prefs.Materials) > 0 {
			b.WriteString("  Materials: " + strings.Join(prefs.Materials, ", ") + "\n")
		}
		if len(prefs.Additional) > 0 {
			b.WriteString("  Additional: " + strings.Join(prefs.Additional, ", ") + "\n")
		}
		b.WriteString("\n")
	}

	if len(state.SelectedProducts) > 0 {
		b.WriteString("Selected Products:\n")
		for _, p := range state.SelectedProducts {
			b.WriteString(fmt.Sprintf("  - %s: $%s\n", p.Name, FormatAmount(p.Price)))
		}
		b.WriteString("\n")
	}

	if len(state.LaborCosts) > 0 {
		b.WriteString("Labor:\n")
		for _, breakdown := range state.LaborCosts {
			b.WriteString(fmt.Sprintf("  %s ($%s):\n", titleWords(breakdown.RoomName), FormatAmount(breakdown.TotalCost)))
			for _, item := range breakdown.Items {
				b.WriteString(fmt.Sprintf("    - %s: $%s\n", item.Name, FormatAmount(item.Cost)))
			}
		}
		b.WriteString("\n")
	}

	if state.TotalEstimate != nil {
		totals := state.TotalEstimate
		b.WriteString("Totals:\n")
		b.WriteString(fmt.Sprintf("  Products: $%s\n", FormatAmount(totals.ProductsCost)))
		b.WriteString(fmt.Sprintf("  Labor:    $%s\n", FormatAmount(totals.LaborCost)))
		b.WriteString(fmt.Sprintf("  Tax:      $%s\n", FormatAmount(totals.Tax)))
		b.WriteString(fmt.Sprintf("  TOTAL:    $%s\n", FormatAmount(totals.Total)))

		fit, delta := ClassifyBudget(*totals, state.Budget)
		if message := BudgetMessage(fit, delta); message != "" {
			b.WriteString("\n" + message + "\n")
		}
	}

	return b.String()
}

func titleWords(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 && word[0] >= 'a' && word[0] <= 'z' {
			words[i] = string(word[0]-'a'+'A') + word[1:]
		}
	}
	return strings.Join(words, " ")
}
