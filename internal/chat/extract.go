package chat

import (
	"regexp"
	"strings"
)

// tickerPattern matches an uppercase symbol with an optional two-letter
// exchange suffix, e.g. AAPL, BRK-B or RELIANCE.NS.
var tickerPattern = regexp.MustCompile(`^[A-Z][A-Z0-9-]{1,9}(\.[A-Z]{2})?$`)

// excludedWords are all-caps tokens that look like symbols but are ordinary
// words in finance questions.
var excludedWords = map[string]bool{
	"ANALYSIS":       true,
	"TECHNICAL":      true,
	"NEWS":           true,
	"FUNDAMENTAL":    true,
	"FUNDAMENTALS":   true,
	"RECOMMENDATION": true,
	"PLEASE":         true,
	"FOR":            true,
	"AND":            true,
	"THE":            true,
	"WHAT":           true,
	"ABOUT":          true,
	"STOCK":          true,
	"STOCKS":         true,
	"SHARE":          true,
	"SHARES":         true,
	"PRICE":          true,
	"BUY":            true,
	"SELL":           true,
	"HOLD":           true,
	"SIP":            true,
}

// ExtractTicker scans an utterance for the most likely stock symbol.
// Only tokens written fully in capitals count as candidates; an explicit
// exchange-qualified symbol wins outright, otherwise the shortest candidate
// is taken. The result is a heuristic guess, not a validated symbol — the
// analysis tools are the actual validators.
func ExtractTicker(utterance string) (string, bool) {
	var candidates []string

	for _, token := range strings.Fields(utterance) {
		token = strings.Trim(token, ".,!?;:'\"()")
		if !tickerPattern.MatchString(token) {
			continue
		}
		if excludedWords[token] {
			continue
		}
		candidates = append(candidates, token)
	}

	if len(candidates) == 0 {
		return "", false
	}

	// Exchange-qualified symbols are unambiguous
	for _, c := range candidates {
		if strings.Contains(c, ".") {
			return c, true
		}
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if len(c) < len(best) {
			best = c
		}
	}
	return best, true
}
