// Package goquery implements jobsift's DOM-facing services using CSS
// selection: footer contact extraction, job-element scoring, and career
// link harvesting.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/minhdn/jobsift"
	"golang.org/x/net/html"
)

// footerSelectors are tried in order before falling back to heuristic
// footer location. Semantic markup wins over naming conventions.
var footerSelectors = []string{
	"footer",
	`[role="contentinfo"]`,
	"#footer",
	".footer",
	".site-footer",
	".main-footer",
	".bottom-footer",
}

// ContactExtractor finds a page's footer region and pulls phone numbers
// and email addresses out of it.
type ContactExtractor struct{}

// NewContactExtractor creates a new ContactExtractor.
func NewContactExtractor() *ContactExtractor {
	return &ContactExtractor{}
}

// Ensure ContactExtractor implements jobsift.ContactService.
var _ jobsift.ContactService = (*ContactExtractor)(nil)

// ExtractContacts locates the footer region and extracts contacts from it.
// Extraction is total: malformed HTML or a missing footer yields an empty
// bundle with the whole document as the search region, never an error.
// Numbers found via explicit tel: links are ordered ahead of numbers found
// in the footer text.
func (e *ContactExtractor) ExtractContacts(html string) *jobsift.ContactBundle {
	bundle := &jobsift.ContactBundle{Phones: []string{}, Emails: []string{}}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return bundle
	}

	footer, tag := locateFooter(doc)
	bundle.Debug.FooterTag = tag

	// tel: links first. They are the site's own statement of the number.
	telPhones := telLinkPhones(footer)
	bundle.Debug.TelRaw = telPhones

	text := jobsift.NormalizeText(selectionText(footer))
	bundle.Debug.TextFirst200 = jobsift.Truncate(text, 200)

	seen := make(map[string]bool)
	for _, p := range telPhones {
		if !seen[p] {
			seen[p] = true
			bundle.Phones = append(bundle.Phones, p)
		}
	}
	for _, p := range jobsift.ExtractPhones(text) {
		if !seen[p] {
			seen[p] = true
			bundle.Phones = append(bundle.Phones, p)
		}
	}

	bundle.Emails = footerEmails(footer, text)

	return bundle
}

// locateFooter picks the footer region by cascading from semantic markup to
// naming conventions to position. The returned tag is "" when the whole
// document is used.
func locateFooter(doc *goquery.Document) (*goquery.Selection, string) {
	for _, selector := range footerSelectors {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			return sel, goquery.NodeName(sel)
		}
	}

	// Naming convention: any element whose id or class mentions "footer",
	// case-insensitively. Attribute selectors match case-sensitively, so
	// compare lowercased values by hand.
	if sel := findByFooterNaming(doc); sel != nil {
		return sel, goquery.NodeName(sel)
	}

	// Position: contact blocks live at the bottom of the page, so the last
	// sectioning element is the best remaining guess.
	if sel := doc.Find("footer, section, div").Last(); sel.Length() > 0 {
		return sel, goquery.NodeName(sel)
	}

	return doc.Selection, ""
}

// findByFooterNaming returns the first element, in document order, whose id
// or class contains "footer" in any letter case. Nil when none qualifies.
func findByFooterNaming(doc *goquery.Document) *goquery.Selection {
	var found *goquery.Selection
	doc.Find("[id], [class]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		id, _ := sel.Attr("id")
		class, _ := sel.Attr("class")
		if strings.Contains(strings.ToLower(id), "footer") ||
			strings.Contains(strings.ToLower(class), "footer") {
			found = sel
			return false
		}
		return true
	})
	return found
}

// selectionText returns the selection's text with a space between adjacent
// text nodes. Plain Text() concatenates them directly, which in minified
// HTML merges a phone number into the digits of a neighboring node and
// makes it unextractable.
func selectionText(sel *goquery.Selection) string {
	var parts []string
	for _, node := range sel.Nodes {
		collectText(node, &parts)
	}
	return strings.Join(parts, " ")
}

func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		if t := strings.TrimSpace(n.Data); t != "" {
			*parts = append(*parts, t)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}

// telLinkPhones collects cleaned numbers from tel: anchors, deduplicated in
// document order.
func telLinkPhones(sel *goquery.Selection) []string {
	var phones []string
	seen := make(map[string]bool)

	sel.Find(`a[href^="tel:"]`).Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		raw := strings.TrimPrefix(href, "tel:")
		n, ok := jobsift.CleanPhone(raw)
		if !ok || seen[n] {
			return
		}
		seen[n] = true
		phones = append(phones, n)
	})

	return phones
}

// footerEmails merges addresses from mailto: anchors with addresses found
// in the footer text. A mailto link whose visible text is a call to action
// rather than the address itself would otherwise be lost.
func footerEmails(sel *goquery.Selection, text string) []string {
	var emails []string
	seen := make(map[string]bool)

	add := func(candidates []string) {
		for _, e := range candidates {
			if !seen[e] {
				seen[e] = true
				emails = append(emails, e)
			}
		}
	}

	sel.Find(`a[href^="mailto:"]`).Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		addr := strings.TrimPrefix(href, "mailto:")
		// Drop ?subject=... and friends.
		if i := strings.IndexByte(addr, '?'); i >= 0 {
			addr = addr[:i]
		}
		add(jobsift.ExtractEmails(addr))
	})

	add(jobsift.ExtractEmails(text))

	if emails == nil {
		emails = []string{}
	}
	return emails
}
