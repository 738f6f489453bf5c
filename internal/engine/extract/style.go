package extract

import (
	"strings"

	"buildsmart_backend/internal/engine/domain"
)

var styleKeywords = []struct {
	style    domain.DesignStyle
	keywords []string
}{
	{domain.StyleModern, []string{"modern", "sleek", "clean lines"}},
	{domain.StyleTraditional, []string{"traditional", "classic", "timeless", "elegant"}},
	{domain.StyleContemporary, []string{"contemporary", "current", "up to date"}},
	{domain.StyleFarmhouse, []string{"farmhouse", "country", "barn", "shiplap"}},
	{domain.StyleIndustrial, []string{"industrial", "exposed brick", "metal", "warehouse"}},
	{domain.StyleMinimalist, []string{"minimalist", "minimal", "simple", "uncluttered"}},
	{domain.StyleRustic, []string{"rustic", "reclaimed", "weathered", "lodge"}},
	{domain.StyleTransitional, []string{"transitional", "blend", "mix of styles"}},
}

var colorVocabulary = []string{
	"white", "black", "gray", "grey", "beige", "cream", "brown", "tan",
	"blue", "navy", "green", "sage", "red", "orange", "yellow", "gold",
	"purple", "pink", "silver", "bronze", "copper", "charcoal", "ivory",
	"taupe",
}

var materialVocabulary = []string{
	"granite", "quartz", "marble", "butcher block", "laminate", "porcelain",
	"ceramic", "subway tile", "tile", "hardwood", "oak", "maple", "walnut",
	"cherry", "pine", "bamboo", "vinyl", "stainless steel", "brass",
	"nickel", "chrome", "glass", "concrete", "stone", "brick", "leather",
	"wrought iron", "matte",
}

var additionalVocabulary = []string{
	"eco-friendly", "eco friendly", "sustainable", "low-maintenance",
	"low maintenance", "durable", "pet-friendly", "pet friendly",
}

// DetectStyle counts keyword hits per design style and returns the style
// with the strictly highest count. Ties resolve to MODERN. The boolean is
// false when no style keyword matched at all.
func DetectStyle(utterance string) (domain.DesignStyle, bool) {
	text := strings.ToLower(utterance)

	best := domain.DesignStyle("")
	bestCount := 0
	tied := false

	for _, entry := range styleKeywords {
		count := 0
		for _, keyword := range entry.keywords {
			if strings.Contains(text, keyword) {
				count++
			}
		}
		switch {
		case count > bestCount:
			best = entry.style
			bestCount = count
			tied = false
		case count == bestCount && count > 0:
			tied = true
		}
	}

	if bestCount == 0 {
		return "", false
	}
	if tied {
		return domain.StyleModern, true
	}
	return best, true
}

// ExtractColors returns the deduplicated, lower-cased colors mentioned in
// the utterance, in vocabulary order.
func ExtractColors(utterance string) []string {
	return matchVocabulary(utterance, colorVocabulary)
}

// ExtractMaterials returns the deduplicated, lower-cased materials mentioned
// in the utterance, in vocabulary order. Longer phrases are listed before
// their substrings in the vocabulary so "subway tile" wins over "tile".
func ExtractMaterials(utterance string) []string {
	matched := matchVocabulary(utterance, materialVocabulary)
	return dropShadowedMaterials(matched)
}

// ExtractAdditional returns recognized additional preference phrases,
// normalized to their hyphenated forms.
func ExtractAdditional(utterance string) []string {
	matched := matchVocabulary(utterance, additionalVocabulary)
	normalized := make([]string, 0, len(matched))
	seen := make(map[string]struct{})
	for _, phrase := range matched {
		canonical := strings.ReplaceAll(phrase, " ", "-")
		if canonical == "sustainable" {
			canonical = "eco-friendly"
		}
		if _, ok := seen[canonical]; !ok {
			seen[canonical] = struct{}{}
			normalized = append(normalized, canonical)
		}
	}
	return normalized
}

func matchVocabulary(utterance string, vocabulary []string) []string {
	text := strings.ToLower(utterance)
	var matched []string
	for _, term := range vocabulary {
		if strings.Contains(text, term) {
			matched = append(matched, term)
		}
	}
	return matched
}

// dropShadowedMaterials removes a material that only matched as a substring
// of a longer matched phrase ("tile" inside "subway tile").
func dropShadowedMaterials(matched []string) []string {
	out := make([]string, 0, len(matched))
	for i, term := range matched {
		shadowed := false
		for j, other := range matched {
			if i != j && len(other) > len(term) && strings.Contains(other, term) {
				shadowed = true
				break
			}
		}
		if !shadowed {
			out = append(out, term)
		}
	}
	return out
}
