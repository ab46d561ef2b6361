package jobsift

import (
	"regexp"
	"strings"
)

// phoneSepClass matches the separators that sites sprinkle between digit
// groups: the whitespace class plus dots, hyphens, and parentheses.
const phoneSepClass = `[` + whitespaceClass + `\.\-\(\)]`

// phoneRx matches Vietnamese phone shapes: an optional international prefix
// or a leading zero, followed by 8-10 digit groups optionally interleaved
// with separators. Digit-run boundaries are verified separately since RE2
// has no lookarounds.
var phoneRx = regexp.MustCompile(`(?:\+?84|0)(?:` + phoneSepClass + `*\d){8,10}`)

var (
	keepDigitsPlusRx = regexp.MustCompile(`[^\d+]`)
	keepDigitsRx     = regexp.MustCompile(`\D`)
)

// CleanPhone reduces a raw phone candidate to its canonical local form:
// strip everything but digits and a leading plus, rewrite a leading +84
// country prefix to the local leading zero, then strip any remaining
// non-digits. The result is accepted only if 10 or 11 digits remain;
// anything else is expected noise and reported as ok=false, not an error.
func CleanPhone(raw string) (string, bool) {
	s := keepDigitsPlusRx.ReplaceAllString(raw, "")
	if strings.HasPrefix(s, "+84") {
		s = "0" + s[3:]
	}
	s = keepDigitsRx.ReplaceAllString(s, "")
	// VN: mobile numbers are 10 digits; landlines 10-11 depending on the
	// area code.
	if len(s) < 10 || len(s) > 11 {
		return "", false
	}
	return s, true
}

// ExtractPhones scans text for phone-shaped substrings, validates each with
// CleanPhone, and returns the cleaned numbers deduplicated in first-seen
// order. Candidates embedded in a longer digit run are discarded.
func ExtractPhones(text string) []string {
	var phones []string
	seen := make(map[string]bool)

	for _, loc := range phoneRx.FindAllStringIndex(text, -1) {
		if !digitBoundary(text, loc[0], loc[1]) {
			continue
		}
		n, ok := CleanPhone(text[loc[0]:loc[1]])
		if !ok || seen[n] {
			continue
		}
		seen[n] = true
		phones = append(phones, n)
	}

	return phones
}

// digitBoundary reports whether the match at [start, end) is not embedded
// in a longer digit run.
func digitBoundary(s string, start, end int) bool {
	if start > 0 && isASCIIDigit(s[start-1]) {
		return false
	}
	if end < len(s) && isASCIIDigit(s[end]) {
		return false
	}
	return true
}

func isASCIIDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
