package jobsift

import (
	"context"
	"time"
)

// Report is the aggregated result of scanning one site: footer contacts
// from the landing page plus every accepted career page with its scored
// job fragments.
type Report struct {
	ID          string        `json:"id"`
	URL         string        `json:"url"`
	ContentHash string        `json:"contentHash"`
	Contacts    *ContactBundle `json:"contacts"`
	CareerPages []CareerPage  `json:"careerPages"`
	CreatedAt   time.Time     `json:"createdAt"`
}

// Validate returns an error if the report contains invalid fields.
func (r *Report) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "report URL required")
	}
	return nil
}

// CareerPage is one accepted career URL with the evidence gathered from it.
type CareerPage struct {
	// URL of the page and the classifier patterns that accepted it.
	URL             string   `json:"url"`
	MatchedPatterns []string `json:"matchedPatterns"`

	// FetchError describes a fetch failure for this page, if any.
	// A page can be accepted by the classifier yet unreachable; that is
	// not the same as reachable-but-empty.
	FetchError string `json:"fetchError,omitempty"`

	// PageProfile scores the page's extracted main text as a whole.
	PageProfile *JobIndicatorProfile `json:"pageProfile,omitempty"`

	// Jobs holds the listing fragments that met the ruleset threshold,
	// best first.
	Jobs []JobListing `json:"jobs,omitempty"`
}

// JobListing is one scored listing fragment, rendered to markdown for
// human review.
type JobListing struct {
	Markdown string               `json:"markdown"`
	Profile  *JobIndicatorProfile `json:"profile"`
}

// ReportService stores and retrieves scan reports. Implementations act as
// a result cache: a report for a URL younger than the caller's TTL short-
// circuits a rescan.
type ReportService interface {
	// SaveReport persists a report, assigning its ID and timestamps.
	SaveReport(ctx context.Context, report *Report) error

	// FindReportByURL retrieves the most recent report for a URL no
	// older than maxAge. Returns ENOTFOUND if none qualifies.
	FindReportByURL(ctx context.Context, url string, maxAge time.Duration) (*Report, error)

	// DeleteExpiredReports removes reports older than maxAge and
	// returns how many were deleted.
	DeleteExpiredReports(ctx context.Context, maxAge time.Duration) (int, error)
}
