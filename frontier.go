package jobsift

import "context"

// LinkPriority represents visit priority for candidate career URLs
// (higher = more promising).
type LinkPriority int

// Priority levels for candidate ordering.
const (
	PriorityIgnore       LinkPriority = 0
	PriorityFallbackLink LinkPriority = 5
	PrioritySitemap      LinkPriority = 10
	PriorityFooterLink   LinkPriority = 20
	PriorityContentLink  LinkPriority = 50
	PriorityCareerMatch  LinkPriority = 100
)

// CandidateLink is a URL that may lead to a careers page, with the
// classifier evidence that put it in the queue.
type CandidateLink struct {
	URL             string
	Priority        LinkPriority
	Text            string
	MatchedPatterns []string
}

// LinkHarvester collects same-host candidate links from a fetched page,
// classified and prioritized for the frontier.
type LinkHarvester interface {
	HarvestLinks(html string, baseURL string) ([]CandidateLink, error)
}

// URLFrontier manages a visit queue with deduplication.
type URLFrontier interface {
	// Push adds a candidate to the frontier.
	// Returns false if the URL has already been seen.
	Push(link CandidateLink) bool

	// Pop returns the next candidate by priority.
	// Returns false if the frontier is empty.
	Pop() (CandidateLink, bool)

	// Len returns the number of candidates in the queue.
	Len() int

	// Seen returns true if the URL has been processed or queued.
	Seen(url string) bool
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
