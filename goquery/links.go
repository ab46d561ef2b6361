package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/minhdn/jobsift"
)

// selectorConfig defines a CSS selector with its structural priority and
// source label.
type selectorConfig struct {
	selector string
	priority jobsift.LinkPriority
}

// harvestConfigs are scanned in structural priority order. The catch-all
// anchor scan runs last so that sites with non-semantic markup still get
// their links discovered, at the lowest priority.
var harvestConfigs = []selectorConfig{
	{"nav a[href], header a[href]", jobsift.PriorityContentLink},
	{"main a[href], article a[href]", jobsift.PriorityContentLink},
	{"footer a[href]", jobsift.PriorityFooterLink},
	{"a[href]", jobsift.PriorityFallbackLink},
}

// LinkHarvester collects same-host candidate links from a page and runs
// each through a career URL classifier to set its visit priority.
type LinkHarvester struct {
	classifier jobsift.CareerClassifier
}

// Ensure LinkHarvester implements jobsift.LinkHarvester.
var _ jobsift.LinkHarvester = (*LinkHarvester)(nil)

// NewLinkHarvester creates a LinkHarvester using the given classifier.
func NewLinkHarvester(classifier jobsift.CareerClassifier) *LinkHarvester {
	return &LinkHarvester{classifier: classifier}
}

// HarvestLinks parses HTML and returns candidate links for the frontier.
// Links are resolved against baseURL, restricted to the same host, stripped
// of fragments, and deduplicated keeping the highest priority version.
// A link the classifier accepts is promoted to PriorityCareerMatch with the
// matching pattern attached; a link it rejects on a strong non-career
// indicator is dropped; everything else keeps its structural priority.
func (h *LinkHarvester) HarvestLinks(htmlDoc string, baseURL string) ([]jobsift.CandidateLink, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, jobsift.Errorf(jobsift.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlDoc))
	if err != nil {
		return nil, jobsift.Errorf(jobsift.EINVALID, "failed to parse HTML: %v", err)
	}

	// Track seen URLs with their index in the result slice for O(1)
	// priority upgrades.
	seen := make(map[string]int)
	var links []jobsift.CandidateLink

	for _, config := range harvestConfigs {
		doc.Find(config.selector).Each(func(_ int, sel *goquery.Selection) {
			href, exists := sel.Attr("href")
			if !exists || href == "" {
				return
			}

			// Skip non-HTTP links (javascript:, mailto:, tel:, data:).
			if isNonHTTPLink(href) {
				return
			}

			resolved := resolveURL(base, href)
			if resolved == "" {
				return
			}

			// Exact host match; subdomains are considered external.
			if !isSameHost(base, resolved) {
				return
			}

			priority := config.priority
			var patterns []string
			verdict := h.classifier.Classify(resolved)
			switch {
			case verdict.Accepted:
				priority = jobsift.PriorityCareerMatch
				patterns = verdict.MatchedPatterns
			case len(verdict.MatchedPatterns) > 0:
				// Strong non-career URL; not worth a queue slot.
				return
			}

			link := jobsift.CandidateLink{
				URL:             resolved,
				Priority:        priority,
				Text:            strings.TrimSpace(sel.Text()),
				MatchedPatterns: patterns,
			}

			if idx, ok := seen[resolved]; ok {
				if priority > links[idx].Priority {
					links[idx] = link
				}
			} else {
				seen[resolved] = len(links)
				links = append(links, link)
			}
		})
	}

	return links, nil
}

// resolveURL resolves a relative URL against a base URL. Returns "" if the
// href cannot be parsed or if the resolved URL is self-referential (same as
// base after stripping fragments). Fragments are stripped so anchor
// variants of one page deduplicate.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""

	result := resolved.String()
	baseNoFragment := *base
	baseNoFragment.Fragment = ""
	if result == baseNoFragment.String() {
		return ""
	}
	return result
}

// isSameHost checks if the resolved URL has the same host as the base URL.
func isSameHost(base *url.URL, resolved string) bool {
	u, err := url.Parse(resolved)
	if err != nil {
		return false
	}
	return u.Host == base.Host
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
