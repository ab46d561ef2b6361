package mock

import "github.com/minhdn/jobsift"

var _ jobsift.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of jobsift.TextExtractor.
type TextExtractor struct {
	ExtractFn func(html string) (*jobsift.TextResult, error)
}

func (e *TextExtractor) Extract(html string) (*jobsift.TextResult, error) {
	return e.ExtractFn(html)
}
