package mock

import "github.com/minhdn/jobsift"

var _ jobsift.LinkHarvester = (*LinkHarvester)(nil)

// LinkHarvester is a mock implementation of jobsift.LinkHarvester.
type LinkHarvester struct {
	HarvestLinksFn func(html string, baseURL string) ([]jobsift.CandidateLink, error)
}

func (h *LinkHarvester) HarvestLinks(html string, baseURL string) ([]jobsift.CandidateLink, error) {
	return h.HarvestLinksFn(html, baseURL)
}
