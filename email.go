package jobsift

import (
	"regexp"
	"strings"
)

// emailRx matches local@domain.tld shapes case-insensitively. Deliberately
// loose: no RFC-full validation and no DNS checks, since footer emails are
// display text, not submitted addresses.
var emailRx = regexp.MustCompile(`(?i)[A-Z0-9._%+\-]+@[A-Z0-9.\-]+\.[A-Z]{2,}`)

// ExtractEmails scans text for email-shaped substrings, folds them to
// lowercase, and returns them deduplicated in first-seen order.
func ExtractEmails(text string) []string {
	var emails []string
	seen := make(map[string]bool)

	for _, m := range emailRx.FindAllString(text, -1) {
		e := strings.ToLower(m)
		if seen[e] {
			continue
		}
		seen[e] = true
		emails = append(emails, e)
	}

	return emails
}
