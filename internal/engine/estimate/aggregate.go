// Package estimate aggregates product and labor costs into the final totals
// and classifies them against the homeowner's budget.
package estimate

import (
	"fmt"
	"math"

	"buildsmart_backend/internal/engine/domain"
)

// productTaxRate applies to products only. Labor is never taxed.
const productTaxRate = 0.08

// BudgetFit classifies the estimate total against the budget range.
type BudgetFit int

const (
	// FitWithin means the total falls inside the budget range.
	FitWithin BudgetFit = iota
	// FitUnder means the total is below the budget minimum.
	FitUnder
	// FitOver means the total exceeds the budget maximum.
	FitOver
	// FitUnknown means no budget was captured.
	FitUnknown
)

// Aggregate computes the estimate totals from the selected products and the
// per-room labor breakdowns.
func Aggregate(products []domain.Product, laborCosts []domain.RoomLaborBreakdown) domain.Totals {
	var productsCost float64
	for _, p := range products {
		productsCost += p.Price
	}

	var laborCost float64
	for _, breakdown := range laborCosts {
		laborCost += breakdown.TotalCost
	}

	tax := Round2(productsCost * productTaxRate)
	return domain.Totals{
		ProductsCost: productsCost,
		LaborCost:    laborCost,
		Tax:          tax,
		Total:        productsCost + laborCost + tax,
	}
}

// ClassifyBudget compares the total against the budget. The classification
// is advisory: the estimate completes regardless of fit.
func ClassifyBudget(totals domain.Totals, budget *domain.Budget) (BudgetFit, float64) {
	if budget == nil {
		return FitUnknown, 0
	}
	switch {
	case totals.Total < budget.Min:
		return FitUnder, budget.Min - totals.Total
	case totals.Total > budget.Max:
		return FitOver, totals.Total - budget.Max
	default:
		return FitWithin, 0
	}
}

// BudgetMessage renders the advisory budget-fit line for the summary.
func BudgetMessage(fit BudgetFit, delta float64) string {
	switch fit {
	case FitUnder:
		return fmt.Sprintf("Good news: this estimate comes in $%s under your budget minimum.", FormatAmount(delta))
	case FitOver:
		return fmt.Sprintf("Heads up: this estimate exceeds your budget by $%s. We can revisit product choices to bring it down.", FormatAmount(delta))
	case FitWithin:
		return "This estimate falls within your budget range."
	default:
		return ""
	}
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatAmount renders a dollar amount with thousands separators and no
// cents when the value is whole.
func FormatAmount(v float64) string {
	rounded := Round2(v)
	whole := int64(rounded)
	frac := rounded - float64(whole)

	text := groupThousands(whole)
	if frac > 0.004 {
		text = fmt.Sprintf("%s.%02d", text, int(math.Round(frac*100)))
	}
	return text
}

func groupThousands(v int64) string {
	if v < 0 {
		return "-" + groupThousands(-v)
	}
	if v < 1000 {
		return fmt.Sprintf("%d", v)
	}
	return fmt.Sprintf("%s,%03d", groupThousands(v/1000), v%1000)
}
