// Package ticker recognises stock symbols in free-text chat input.
package ticker

import (
	"regexp"
	"strings"

	"stockwise/internal/dto"
)

// Rule is one matching strategy. Pattern must have exactly one capture group
// holding the symbol letters.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
}

// Rules are evaluated first to last and the first match wins. Explicit
// "stock price" phrasing is preferred over guessing a bare word.
var Rules = []Rule{
	{
		Name:    "symbol-stock-price",
		Pattern: regexp.MustCompile(`(?i)(?:what's|what is|show me|give me)?\s*\$?\b([a-z]{1,5})\s+stock price`),
	},
	{
		Name:    "stock-price-of-symbol",
		Pattern: regexp.MustCompile(`(?i)stock price of\s*\$?\b([a-z]{1,5})\b`),
	},
	{
		Name:    "bare-symbol",
		Pattern: regexp.MustCompile(`(?i)^\$?([a-z]{1,5})$`),
	},
}

// Extract returns the upper-cased symbol referenced by text, if any.
func Extract(text string) (string, bool) {
	symbol, _, ok := Match(text)
	return symbol, ok
}

// Match is Extract that also reports which rule fired.
func Match(text string) (symbol string, rule string, ok bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", "", false
	}

	for _, r := range Rules {
		m := r.Pattern.FindStringSubmatch(text)
		if len(m) < 2 {
			continue
		}
		return strings.ToUpper(m[1]), r.Name, true
	}
	return "", "", false
}

// LatestUserTurn returns the content of the last user message, or "".
func LatestUserTurn(messages []dto.ChatMessage) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == dto.RoleUser {
			return messages[i].Content
		}
	}
	return ""
}
