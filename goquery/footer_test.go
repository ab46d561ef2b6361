package goquery_test

import (
	"strings"
	"testing"

	"github.com/minhdn/jobsift/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactExtractor_SemanticFooter(t *testing.T) {
	t.Parallel()

	html := `<html><body>
		<main><p>Call our HQ at 0999 999 999</p></main>
		<footer>
			<p>Hotline: 0901 234 567</p>
			<p>Email: hr@example.vn</p>
		</footer>
	</body></html>`

	b := goquery.NewContactExtractor().ExtractContacts(html)

	assert.Equal(t, []string{"0901234567"}, b.Phones)
	assert.Equal(t, []string{"hr@example.vn"}, b.Emails)
	assert.Equal(t, "footer", b.Debug.FooterTag)
	assert.Contains(t, b.Debug.TextFirst200, "Hotline: 0901 234 567")
}

func TestContactExtractor_TelLinksOrderedFirst(t *testing.T) {
	t.Parallel()

	html := `<html><body><footer>
		<p>Văn phòng: 0281 234 567</p>
		<a href="tel:+84901234567">Gọi ngay</a>
	</footer></body></html>`

	b := goquery.NewContactExtractor().ExtractContacts(html)

	assert.Equal(t, []string{"0901234567", "0281234567"}, b.Phones)
	assert.Equal(t, []string{"0901234567"}, b.Debug.TelRaw)
}

func TestContactExtractor_TelLinkDeduplicatesAgainstText(t *testing.T) {
	t.Parallel()

	html := `<html><body><footer>
		<a href="tel:0901234567">0901 234 567</a>
	</footer></body></html>`

	b := goquery.NewContactExtractor().ExtractContacts(html)

	assert.Equal(t, []string{"0901234567"}, b.Phones)
}

func TestContactExtractor_FooterClassFallback(t *testing.T) {
	t.Parallel()

	html := `<html><body>
		<div class="main-content"><p>Nothing here</p></div>
		<div class="global-footer-wrap"><p>Liên hệ: 0901234567</p></div>
	</body></html>`

	b := goquery.NewContactExtractor().ExtractContacts(html)

	assert.Equal(t, []string{"0901234567"}, b.Phones)
	assert.Equal(t, "div", b.Debug.FooterTag)
}

func TestContactExtractor_FooterClassFallbackIgnoresCase(t *testing.T) {
	t.Parallel()

	html := `<html><body>
		<div class="Site-Footer"><p>Hotline: 0901234567</p></div>
		<div><p>Legal notice</p></div>
	</body></html>`

	b := goquery.NewContactExtractor().ExtractContacts(html)

	assert.Equal(t, []string{"0901234567"}, b.Phones)
	assert.Equal(t, "div", b.Debug.FooterTag)
}

func TestContactExtractor_FooterIDFallbackIgnoresCase(t *testing.T) {
	t.Parallel()

	html := `<html><body>
		<section id="PageFooter"><p>Email: hr@example.vn</p></section>
		<div><p>Legal notice</p></div>
	</body></html>`

	b := goquery.NewContactExtractor().ExtractContacts(html)

	assert.Equal(t, []string{"hr@example.vn"}, b.Emails)
	assert.Equal(t, "section", b.Debug.FooterTag)
}

func TestContactExtractor_MinifiedAdjacentTextNodes(t *testing.T) {
	t.Parallel()

	// Minified markup puts sibling text nodes back to back. Without a
	// separator the phone digits merge into the neighboring "24/7" run
	// and the number fails the boundary check.
	html := `<html><body><footer><span>Hotline: 0901234567</span><span>24/7 line</span></footer></body></html>`

	b := goquery.NewContactExtractor().ExtractContacts(html)

	assert.Equal(t, []string{"0901234567"}, b.Phones)
	assert.Contains(t, b.Debug.TextFirst200, "0901234567 24/7")
}

func TestContactExtractor_LastBlockFallback(t *testing.T) {
	t.Parallel()

	// No footer markup at all; the last div is the best positional guess.
	html := `<html><body>
		<div><p>Intro</p></div>
		<div><p>Contact: hello@example.com, 0901234567</p></div>
	</body></html>`

	b := goquery.NewContactExtractor().ExtractContacts(html)

	assert.Equal(t, "div", b.Debug.FooterTag)
	assert.Equal(t, []string{"0901234567"}, b.Phones)
	assert.Equal(t, []string{"hello@example.com"}, b.Emails)
}

func TestContactExtractor_WholeDocumentFallback(t *testing.T) {
	t.Parallel()

	html := `<html><body><p>Reach us: 0901234567</p></body></html>`

	b := goquery.NewContactExtractor().ExtractContacts(html)

	assert.Empty(t, b.Debug.FooterTag)
	assert.Equal(t, []string{"0901234567"}, b.Phones)
}

func TestContactExtractor_MailtoLink(t *testing.T) {
	t.Parallel()

	html := `<html><body><footer>
		<a href="mailto:Jobs@Example.COM?subject=CV">Email us</a>
	</footer></body></html>`

	b := goquery.NewContactExtractor().ExtractContacts(html)

	assert.Equal(t, []string{"jobs@example.com"}, b.Emails)
}

func TestContactExtractor_EmptyBundle(t *testing.T) {
	t.Parallel()

	b := goquery.NewContactExtractor().ExtractContacts("<html><body><footer><p>hi</p></footer></body></html>")

	require.NotNil(t, b)
	assert.Empty(t, b.Phones)
	assert.Empty(t, b.Emails)
	assert.NotNil(t, b.Phones)
	assert.NotNil(t, b.Emails)
}

func TestContactExtractor_DebugTextTruncated(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("contact info ", 40)
	html := "<html><body><footer><p>" + long + "</p></footer></body></html>"

	b := goquery.NewContactExtractor().ExtractContacts(html)

	assert.Len(t, b.Debug.TextFirst200, 203) // 200 chars plus ellipsis
	assert.True(t, strings.HasSuffix(b.Debug.TextFirst200, "..."))
}
