package extract

import (
	"math"
	"regexp"
	"strings"

	"buildsmart_backend/internal/engine/domain"
	"buildsmart_backend/internal/engine/policy"
)

// BudgetResult classifies a budget extraction attempt.
type BudgetResult int

const (
	// BudgetNoMatch means nothing budget-shaped was found.
	BudgetNoMatch BudgetResult = iota
	// BudgetMatch means a usable range was extracted.
	BudgetMatch
	// BudgetImplausible means an amount parsed but fails the sanity bounds
	// and needs a confirmation re-prompt.
	BudgetImplausible
)

const (
	minPlausibleBudget = 1000
	maxPlausibleBudget = 1000000
)

var (
	budgetRangeRe  = regexp.MustCompile(`\$?\s*(\d[\d,]*(?:\.\d+)?)\s*(k|thousand)?\s*(?:-|–|to)\s*\$?\s*(\d[\d,]*(?:\.\d+)?)\s*(k|thousand)?`)
	budgetSingleRe = regexp.MustCompile(`\$\s*(\d[\d,]*(?:\.\d+)?)\s*(k|thousand)?|(\d[\d,]*(?:\.\d+)?)\s*(k|thousand)\b|(\d[\d,]*(?:\.\d+)?)\s*dollars`)
)

var capQualifiers = []string{"under", "less than", "up to", "at most", "no more than", "max"}

var budgetKeywordTiers = []struct {
	keywords []string
	tier     domain.BudgetTier
}{
	{[]string{"low", "tight", "limited", "small budget", "modest", "cheap"}, domain.TierLow},
	{[]string{"medium", "average", "moderate", "mid-range", "mid range"}, domain.TierMedium},
	{[]string{"high", "luxury", "premium", "high-end", "high end", "no limit"}, domain.TierHigh},
}

// ExtractBudget parses a budget range from an utterance. Patterns are tried
// in priority order: an explicit range, a single amount (widened to a ±20%
// band, or capped at the amount when qualified by "under"/"less than"/"up
// to"), then descriptive keywords scaled by the project's total square
// footage through the policy bands. Amounts outside $1,000–$1,000,000 are
// reported as implausible rather than accepted.
func ExtractBudget(utterance string, totalSqFt float64, pol policy.Policy) (domain.Budget, BudgetResult) {
	text := strings.ToLower(utterance)

	if match := budgetRangeRe.FindStringSubmatch(text); match != nil {
		low := normalizeAmount(match[1], match[2])
		high := normalizeAmount(match[3], match[4])
		// A bare "10-20" range means thousands were implied on both sides
		// when only one side carried the suffix.
		if match[2] == "" && match[4] != "" {
			low = normalizeAmount(match[1], match[4])
		}
		if low > high {
			low, high = high, low
		}
		if low < minPlausibleBudget || high > maxPlausibleBudget {
			return domain.Budget{}, BudgetImplausible
		}
		return domain.Budget{Min: low, Max: high}, BudgetMatch
	}

	if match := budgetSingleRe.FindStringSubmatch(text); match != nil {
		amount := singleAmount(match)
		if amount > 0 {
			if amount < minPlausibleBudget || amount > maxPlausibleBudget {
				return domain.Budget{}, BudgetImplausible
			}
			for _, qualifier := range capQualifiers {
				if strings.Contains(text, qualifier) {
					return domain.Budget{Min: 0, Max: amount}, BudgetMatch
				}
			}
			return domain.Budget{
				Min: math.Round(amount * 0.8),
				Max: math.Round(amount * 1.2),
			}, BudgetMatch
		}
	}

	if totalSqFt > 0 {
		for _, entry := range budgetKeywordTiers {
			for _, keyword := range entry.keywords {
				// Phrases match as substrings, single words only on word
				// boundaries so "yellow" never reads as "low".
				matched := strings.Contains(keyword, " ") && strings.Contains(text, keyword) ||
					!strings.Contains(keyword, " ") && containsWord(text, keyword)
				if matched {
					if band, ok := pol.BudgetBand(entry.tier); ok {
						return bandBudget(band, totalSqFt, pol), BudgetMatch
					}
				}
			}
		}
	}

	return domain.Budget{}, BudgetNoMatch
}

// LooksLikeBudget reports whether the utterance is budget-shaped. Used to
// give guidance when money talk arrives at the wrong stage.
func LooksLikeBudget(utterance string) bool {
	text := strings.ToLower(utterance)
	if strings.Contains(text, "$") || strings.Contains(text, "budget") || strings.Contains(text, "dollar") {
		return true
	}
	if match := budgetSingleRe.FindStringSubmatch(text); match != nil {
		return singleAmount(match) > 0
	}
	return false
}

func bandBudget(band policy.Band, totalSqFt float64, pol policy.Policy) domain.Budget {
	low := roundToThousand(band.MinPerSqFt * totalSqFt)
	high := roundToThousand(band.MaxPerSqFt * totalSqFt)
	if low < pol.BudgetFloorMin {
		low = pol.BudgetFloorMin
	}
	if high < pol.BudgetFloorMax {
		high = pol.BudgetFloorMax
	}
	return domain.Budget{Min: low, Max: high}
}

func singleAmount(match []string) float64 {
	switch {
	case match[1] != "":
		return normalizeAmount(match[1], match[2])
	case match[3] != "":
		return normalizeAmount(match[3], match[4])
	case match[5] != "":
		return normalizeAmount(match[5], "")
	}
	return 0
}

func normalizeAmount(raw, suffix string) float64 {
	amount := parseNumber(raw)
	if suffix != "" {
		amount *= 1000
	}
	return amount
}

func roundToThousand(v float64) float64 {
	return math.Round(v/1000) * 1000
}
