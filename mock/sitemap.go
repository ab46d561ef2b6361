package mock

import (
	"context"

	"github.com/minhdn/jobsift"
)

var _ jobsift.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of jobsift.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *jobsift.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *jobsift.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}
