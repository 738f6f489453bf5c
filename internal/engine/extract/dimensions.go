package extract

import (
	"regexp"
	"strconv"
	"strings"

	"buildsmart_backend/internal/engine/domain"
	"buildsmart_backend/internal/engine/policy"
)

// DimensionResult classifies a dimension extraction attempt.
type DimensionResult int

const (
	// DimensionNoMatch means the utterance contained nothing dimension-shaped.
	DimensionNoMatch DimensionResult = iota
	// DimensionMatch means a usable set of dimensions was extracted.
	DimensionMatch
	// DimensionIncomplete means a single bare measurement was given; both
	// length and width are still needed.
	DimensionIncomplete
	// DimensionOutOfBounds means the value parsed but fails the sanity
	// bounds and needs confirmation, not silent acceptance.
	DimensionOutOfBounds
)

const (
	minSideFeet = 1
	maxSideFeet = 100
	minSqFt     = 10
	maxSqFt     = 10000
)

var (
	lengthWidthRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:x|×|by)\s*(\d+(?:\.\d+)?)`)
	squareFeetRe  = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:sq\.?\s*ft|sqft|square\s+f(?:ee|oo)t)`)
	bareFeetRe    = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:feet|foot|ft)\b`)
)

// Ordered so the result is deterministic when an utterance carries more
// than one descriptor.
var sizeDescriptors = []struct {
	word       string
	descriptor string
}{
	{"tiny", "small"},
	{"small", "small"},
	{"medium", "medium"},
	{"average", "medium"},
	{"big", "large"},
	{"large", "large"},
	{"huge", "large"},
	{"spacious", "large"},
}

// ExtractDimensions parses room dimensions from an utterance. Patterns are
// tried in priority order: an explicit length-by-width pair, an explicit
// square footage, a single bare measurement (incomplete), then a size
// descriptor resolved through the policy defaults for the room type.
func ExtractDimensions(utterance string, roomType domain.RoomType, pol policy.Policy) (domain.Dimensions, DimensionResult) {
	text := strings.ToLower(utterance)

	if match := lengthWidthRe.FindStringSubmatch(text); match != nil {
		length := parseNumber(match[1])
		width := parseNumber(match[2])
		if length < minSideFeet || length > maxSideFeet || width < minSideFeet || width > maxSideFeet {
			return domain.Dimensions{}, DimensionOutOfBounds
		}
		return domain.Dimensions{
			Length:        length,
			Width:         width,
			SquareFootage: length * width,
		}, DimensionMatch
	}

	if match := squareFeetRe.FindStringSubmatch(text); match != nil {
		sqft := parseNumber(match[1])
		if sqft < minSqFt || sqft > maxSqFt {
			return domain.Dimensions{}, DimensionOutOfBounds
		}
		return domain.Dimensions{SquareFootage: sqft}, DimensionMatch
	}

	if bareFeetRe.MatchString(text) {
		return domain.Dimensions{}, DimensionIncomplete
	}

	for _, entry := range sizeDescriptors {
		if containsWord(text, entry.word) {
			if sqft, ok := pol.SizeDefault(entry.descriptor, roomType); ok {
				return domain.Dimensions{SquareFootage: sqft, IsEstimate: true}, DimensionMatch
			}
		}
	}

	return domain.Dimensions{}, DimensionNoMatch
}

// LooksLikeDimensions reports whether the utterance is dimension-shaped.
// Used to give guidance when measurements arrive at the wrong stage.
func LooksLikeDimensions(utterance string) bool {
	text := strings.ToLower(utterance)
	return lengthWidthRe.MatchString(text) || squareFeetRe.MatchString(text)
}

func parseNumber(raw string) float64 {
	value, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
	if err != nil {
		return 0
	}
	return value
}

func containsWord(text, word string) bool {
	idx := strings.Index(text, word)
	for idx >= 0 {
		before := idx == 0 || !isLetter(text[idx-1])
		afterIdx := idx + len(word)
		after := afterIdx >= len(text) || !isLetter(text[afterIdx])
		if before && after {
			return true
		}
		next := strings.Index(text[idx+1:], word)
		if next < 0 {
			return false
		}
		idx = idx + 1 + next
	}
	return false
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
