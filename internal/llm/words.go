package llm

import (
	"regexp"
	"strings"
)

// capsWordPattern matches the ALL-CAPS tokens the prompt asks the coach
// to use for puzzle words. Hyphens and apostrophes cover multi-part
// board words like "T-SHIRT".
var capsWordPattern = regexp.MustCompile(`\b[A-Z][A-Z'-]+\b`)

// stopTokens are common all-caps tokens that are prose, not puzzle
// words, and must not trip the strict word check.
var stopTokens = map[string]bool{
	"ALL": true, "CAPS": true, "DO": true, "NOT": true, "OK": true,
	"AND": true, "OR": true, "THE": true, "NO": true, "SO": true,
}

// extractCapsWords extracts the distinct ALL-CAPS tokens from commentary
// text, in order of first appearance.
func extractCapsWords(text string) []string {
	matches := capsWordPattern.FindAllString(text, -1)

	seen := make(map[string]bool)
	var unique []string
	for _, w := range matches {
		w = strings.Trim(w, "'-")
		if w == "" || stopTokens[w] {
			continue
		}
		if !seen[w] {
			seen[w] = true
			unique = append(unique, w)
		}
	}

	return unique
}

// verifyAllowedWords returns the extracted words that are not on the
// allowlist (case-insensitive).
func verifyAllowedWords(used, allowed []string) []string {
	var leaked []string
	for _, w := range used {
		if !containsFold(allowed, w) {
			leaked = append(leaked, w)
		}
	}
	return leaked
}
