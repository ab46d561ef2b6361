package mock

import "github.com/minhdn/jobsift"

var _ jobsift.Converter = (*Converter)(nil)

// Converter is a mock implementation of jobsift.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
