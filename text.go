package jobsift

import (
	"regexp"
	"strings"
)

// whitespaceClass matches the whitespace characters that show up in scraped
// footer text: ASCII whitespace, NBSP, and the Unicode space-separator block
// up to and including the zero-width space.
const whitespaceClass = `\s\x{00A0}\x{2000}-\x{200B}`

var whitespaceRx = regexp.MustCompile(`[` + whitespaceClass + `]+`)

// NormalizeText collapses every run of whitespace (including NBSP and the
// zero-width family) to a single ASCII space and trims both ends. It is
// idempotent: NormalizeText(NormalizeText(s)) == NormalizeText(s).
func NormalizeText(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(whitespaceRx.ReplaceAllString(s, " "))
}

// Truncate shortens s to at most max runes, appending "..." when anything
// was cut. Used for the preview fields carried by debug records.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
