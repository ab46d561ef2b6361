package mock

import "github.com/minhdn/jobsift"

var _ jobsift.CareerClassifier = (*CareerClassifier)(nil)

// CareerClassifier is a mock implementation of jobsift.CareerClassifier.
type CareerClassifier struct {
	ClassifyFn func(rawURL string) jobsift.CareerURLVerdict
}

func (c *CareerClassifier) Classify(rawURL string) jobsift.CareerURLVerdict {
	return c.ClassifyFn(rawURL)
}
