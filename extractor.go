package jobsift

// TextResult holds the main text extracted from an HTML page.
type TextResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// Text is the main content as plain text, with boilerplate
	// (nav, footer, sidebar, ads) removed.
	Text string
}

// TextExtractor extracts main content text from HTML pages. The scan layer
// runs the job scorer over this text to validate that an accepted career
// URL actually carries job content.
type TextExtractor interface {
	Extract(html string) (*TextResult, error)
}
