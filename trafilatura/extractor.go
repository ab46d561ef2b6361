// Package trafilatura implements jobsift.TextExtractor using
// go-trafilatura's boilerplate removal.
package trafilatura

import (
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"github.com/minhdn/jobsift"
)

// Ensure Extractor implements jobsift.TextExtractor at compile time.
var _ jobsift.TextExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content text from HTML.
// Navigation, footers, sidebars, and ads are stripped, so the job scorer
// sees only the text a visitor would read.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the page title and main text.
func (e *Extractor) Extract(rawHTML string) (*jobsift.TextResult, error) {
	if rawHTML == "" {
		return nil, jobsift.Errorf(jobsift.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	return &jobsift.TextResult{
		Title: result.Metadata.Title,
		Text:  result.ContentText,
	}, nil
}
