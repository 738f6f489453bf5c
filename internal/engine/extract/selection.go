package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// SelectionResult classifies a product selection reply.
type SelectionResult int

const (
	// SelectionNoMatch means the reply was not a recognizable selection.
	SelectionNoMatch SelectionResult = iota
	// SelectionAll means every suggested product was accepted.
	SelectionAll
	// SelectionNone means the suggestions were declined.
	SelectionNone
	// SelectionSome means specific products were picked by number.
	SelectionSome
)

var (
	affirmativeRe = regexp.MustCompile(`\b(yes|yeah|yep|sure|ok|okay|add|include|all of them|sounds good|perfect|great)\b`)
	negativeRe    = regexp.MustCompile(`\b(no|nope|none|skip|don'?t|without|just labor|labor only)\b`)
	indexRe       = regexp.MustCompile(`\b(\d+)\b`)
	emailRe       = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	phoneRe       = regexp.MustCompile(`\+?\d[\d\s().\-]{6,}\d`)
)

// ParseSelection interprets a reply to a numbered product list of the given
// length. Explicit numbers win over a bare yes/no so "yes, add 1 and 3"
// selects products 1 and 3 only.
func ParseSelection(utterance string, count int) ([]int, SelectionResult) {
	text := strings.ToLower(utterance)

	var indices []int
	seen := make(map[int]struct{})
	for _, match := range indexRe.FindAllStringSubmatch(text, -1) {
		n, err := strconv.Atoi(match[1])
		if err != nil || n < 1 || n > count {
			continue
		}
		if _, ok := seen[n]; !ok {
			seen[n] = struct{}{}
			indices = append(indices, n-1)
		}
	}
	if len(indices) > 0 {
		return indices, SelectionSome
	}

	if negativeRe.MatchString(text) {
		return nil, SelectionNone
	}
	if affirmativeRe.MatchString(text) {
		return nil, SelectionAll
	}
	return nil, SelectionNoMatch
}

// WantsMoreProducts reports whether a summary-stage reply asks to see other
// product options.
func WantsMoreProducts(utterance string) bool {
	text := strings.ToLower(utterance)
	for _, keyword := range []string{"more", "other", "different", "alternative", "something else"} {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

// WantsRestart reports whether the reply asks to start the conversation over.
func WantsRestart(utterance string) bool {
	text := strings.ToLower(utterance)
	for _, keyword := range []string{"start over", "restart", "start again", "new estimate", "reset"} {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

// ExtractEmail returns the first email address in the utterance, if any.
func ExtractEmail(utterance string) (string, bool) {
	match := emailRe.FindString(utterance)
	if match == "" {
		return "", false
	}
	return strings.ToLower(match), true
}

// ExtractPhone returns the first phone-shaped token in the utterance, if any.
// Normalization to E.164 is the caller's concern.
func ExtractPhone(utterance string) (string, bool) {
	match := phoneRe.FindString(utterance)
	if match == "" {
		return "", false
	}
	return strings.TrimSpace(match), true
}
