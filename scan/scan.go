// Package scan orchestrates site scans: it fetches the landing page,
// extracts footer contacts, finds and visits candidate career pages, and
// assembles the evidence into a report.
package scan

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/minhdn/jobsift"
	"golang.org/x/sync/errgroup"
)

// Frontier configuration.
const (
	// frontierExpectedURLs is the expected number of URLs for Bloom filter sizing.
	frontierExpectedURLs = 10000
	// frontierFalsePositiveRate is the acceptable false positive rate for deduplication.
	frontierFalsePositiveRate = 0.01
)

// Defaults applied when the corresponding Scanner field is zero.
const (
	defaultConcurrency  = 4
	defaultMaxPages     = 10
	defaultMaxFragments = 10
)

// Scanner coordinates one site scan end to end. Fetcher, Contacts,
// Harvester, Scorer, and Rules are required; the remaining collaborators
// are optional and skipped when nil.
type Scanner struct {
	Fetcher   jobsift.Fetcher
	Contacts  jobsift.ContactService
	Harvester jobsift.LinkHarvester
	Scorer    jobsift.JobScorer
	Rules     jobsift.Ruleset

	// Renderer, when set, is a JS-rendering fetcher used as a fallback:
	// for pages the plain fetcher cannot retrieve, and for accepted
	// career pages where the static HTML yields no listing fragments.
	Renderer jobsift.Fetcher

	// Sitemaps supplements link harvesting with sitemap discovery.
	// Discovered URLs are run through Classifier; only accepted ones are
	// queued.
	Sitemaps   jobsift.SitemapService
	Classifier jobsift.CareerClassifier

	// Texts extracts main content for the page-level score.
	Texts jobsift.TextExtractor

	// Converter renders accepted fragments to markdown. When nil the raw
	// fragment HTML is kept.
	Converter jobsift.Converter

	// Reports caches scan results. A cached report younger than CacheTTL
	// short-circuits the scan.
	Reports  jobsift.ReportService
	CacheTTL time.Duration

	RateLimiter  jobsift.DomainLimiter
	Concurrency  int
	MaxPages     int
	MaxFragments int
	RetryDelays  []time.Duration
}

// Scan runs a full scan of the site at baseURL and returns the report.
func (s *Scanner) Scan(ctx context.Context, baseURL string) (*jobsift.Report, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, jobsift.Errorf(jobsift.EINVALID, "invalid base URL: %v", err)
	}
	if base.Host == "" {
		return nil, jobsift.Errorf(jobsift.EINVALID, "base URL %q has no host", baseURL)
	}

	if s.Reports != nil && s.CacheTTL > 0 {
		cached, err := s.Reports.FindReportByURL(ctx, baseURL, s.CacheTTL)
		if err == nil {
			return cached, nil
		}
		if jobsift.ErrorCode(err) != jobsift.ENOTFOUND {
			return nil, err
		}
	}

	html, err := s.fetch(ctx, baseURL)
	if err != nil {
		return nil, err
	}

	report := &jobsift.Report{
		URL:         baseURL,
		ContentHash: computeHash(html),
		Contacts:    s.Contacts.ExtractContacts(html),
		CreatedAt:   time.Now(),
	}

	frontier := NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)
	// The landing page itself is never a candidate.
	frontier.Push(jobsift.CandidateLink{URL: baseURL, Priority: jobsift.PriorityIgnore})
	frontier.Pop()

	s.pushHarvested(frontier, html, baseURL)
	s.pushSitemapURLs(ctx, frontier, baseURL)

	report.CareerPages = s.visitCareerPages(ctx, frontier)

	if s.Reports != nil {
		if err := s.Reports.SaveReport(ctx, report); err != nil {
			return nil, err
		}
	}

	return report, nil
}

// pushHarvested extracts candidate links from a page and queues them.
func (s *Scanner) pushHarvested(frontier *Frontier, html, pageURL string) {
	links, err := s.Harvester.HarvestLinks(html, pageURL)
	if err != nil {
		return
	}
	for _, link := range links {
		frontier.Push(link)
	}
}

// pushSitemapURLs queues career-classified sitemap URLs. Sitemap failures
// are not fatal; most small-business sites have none.
func (s *Scanner) pushSitemapURLs(ctx context.Context, frontier *Frontier, baseURL string) {
	if s.Sitemaps == nil {
		return
	}
	urls, err := s.Sitemaps.DiscoverURLs(ctx, baseURL, nil)
	if err != nil {
		return
	}

	classifier := s.Classifier
	if classifier == nil {
		classifier = jobsift.DefaultCareerRules()
	}

	for _, u := range urls {
		verdict := classifier.Classify(u)
		if !verdict.Accepted {
			continue
		}
		frontier.Push(jobsift.CandidateLink{
			URL:             u,
			Priority:        jobsift.PrioritySitemap,
			MatchedPatterns: verdict.MatchedPatterns,
		})
	}
}

// visitCareerPages drains the frontier in waves: each wave takes the
// currently queued candidates the classifier matched, visits them
// concurrently, then queues any new career links found on those pages.
// Waves repeat until MaxPages pages have been visited or no candidates
// remain.
func (s *Scanner) visitCareerPages(ctx context.Context, frontier *Frontier) []jobsift.CareerPage {
	maxPages := s.MaxPages
	if maxPages <= 0 {
		maxPages = defaultMaxPages
	}
	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	var pages []jobsift.CareerPage
	visited := 0

	for visited < maxPages {
		batch := s.nextBatch(frontier, maxPages-visited)
		if len(batch) == 0 {
			break
		}
		visited += len(batch)

		results := make([]careerPageResult, len(batch))

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(concurrency)
		for i, link := range batch {
			i, link := i, link
			g.Go(func() error {
				results[i] = s.visitPage(gctx, link)
				return nil
			})
		}
		_ = g.Wait()

		for _, r := range results {
			pages = append(pages, r.page)
			for _, link := range r.harvested {
				frontier.Push(link)
			}
		}

		if ctx.Err() != nil {
			break
		}
	}

	return pages
}

// nextBatch pops up to n candidates worth visiting. Candidates below the
// sitemap-match priority are navigation noise; the max-heap ordering
// guarantees none of higher priority remain once one is seen.
func (s *Scanner) nextBatch(frontier *Frontier, n int) []jobsift.CandidateLink {
	var batch []jobsift.CandidateLink
	for len(batch) < n {
		link, ok := frontier.Pop()
		if !ok {
			break
		}
		if link.Priority < jobsift.PrioritySitemap {
			break
		}
		if link.Priority < jobsift.PriorityCareerMatch && len(link.MatchedPatterns) == 0 {
			continue
		}
		batch = append(batch, link)
	}
	return batch
}

type careerPageResult struct {
	page      jobsift.CareerPage
	harvested []jobsift.CandidateLink
}

// visitPage fetches one accepted career page and gathers its evidence.
// Fetch failures are recorded on the page, not returned; one unreachable
// page must not sink the scan.
func (s *Scanner) visitPage(ctx context.Context, link jobsift.CandidateLink) careerPageResult {
	result := careerPageResult{
		page: jobsift.CareerPage{
			URL:             link.URL,
			MatchedPatterns: link.MatchedPatterns,
		},
	}

	html, err := s.fetch(ctx, link.URL)
	if err != nil {
		result.page.FetchError = err.Error()
		return result
	}

	if s.Texts != nil {
		if extracted, err := s.Texts.Extract(html); err == nil {
			result.page.PageProfile = s.Scorer.ScoreText(extracted.Text)
		}
	}

	maxFragments := s.MaxFragments
	if maxFragments <= 0 {
		maxFragments = defaultMaxFragments
	}
	fragments := s.Scorer.ScoreContainers(html, maxFragments)

	// Listings rendered client-side are invisible to the plain fetcher.
	// When the static HTML yields nothing, render the page and rescore.
	if len(fragments) == 0 && s.Renderer != nil {
		if rendered, err := s.Renderer.Fetch(ctx, link.URL); err == nil {
			html = rendered
			fragments = s.Scorer.ScoreContainers(rendered, maxFragments)
		}
	}

	for _, frag := range fragments {
		markdown := frag.HTML
		if s.Converter != nil {
			if md, err := s.Converter.Convert(frag.HTML); err == nil {
				markdown = md
			}
		}
		result.page.Jobs = append(result.page.Jobs, jobsift.JobListing{
			Markdown: markdown,
			Profile:  frag.Profile,
		})
	}

	if links, err := s.Harvester.HarvestLinks(html, link.URL); err == nil {
		result.harvested = links
	}

	return result
}

// fetch retrieves a URL with rate limiting and retries, falling back to
// the renderer when the plain fetcher fails outright.
func (s *Scanner) fetch(ctx context.Context, rawURL string) (string, error) {
	if s.RateLimiter != nil {
		u, err := url.Parse(rawURL)
		if err != nil {
			return "", jobsift.Errorf(jobsift.EINVALID, "invalid URL: %v", err)
		}
		if err := s.RateLimiter.Wait(ctx, u.Host); err != nil {
			return "", err
		}
	}

	html, err := FetchWithRetryDelays(ctx, rawURL, s.Fetcher.Fetch, s.RetryDelays)
	if err == nil {
		return html, nil
	}
	if s.Renderer != nil {
		if rendered, rerr := s.Renderer.Fetch(ctx, rawURL); rerr == nil {
			return rendered, nil
		}
	}
	return "", err
}

// computeHash computes a content hash using xxhash.
func computeHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}
