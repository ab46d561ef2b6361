package goquery_test

import (
	"testing"

	"github.com/minhdn/jobsift"
	"github.com/minhdn/jobsift/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkHarvester_HarvestLinks(t *testing.T) {
	t.Parallel()

	harvester := goquery.NewLinkHarvester(jobsift.DefaultCareerRules())

	t.Run("career link promoted with patterns", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><nav>
			<a href="/tuyen-dung">Tuyển dụng</a>
			<a href="/pricing">Pricing</a>
		</nav></body></html>`

		links, err := harvester.HarvestLinks(html, "https://example.vn/")
		require.NoError(t, err)
		require.Len(t, links, 2)

		assert.Equal(t, "https://example.vn/tuyen-dung", links[0].URL)
		assert.Equal(t, jobsift.PriorityCareerMatch, links[0].Priority)
		assert.Equal(t, []string{"/tuyen-dung"}, links[0].MatchedPatterns)
		assert.Equal(t, "Tuyển dụng", links[0].Text)

		assert.Equal(t, "https://example.vn/pricing", links[1].URL)
		assert.Equal(t, jobsift.PriorityContentLink, links[1].Priority)
		assert.Empty(t, links[1].MatchedPatterns)
	})

	t.Run("non-career indicator drops link", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><nav>
			<a href="/blog/latest">Blog</a>
			<a href="/news/today">News</a>
		</nav></body></html>`

		links, err := harvester.HarvestLinks(html, "https://example.com/")
		require.NoError(t, err)
		assert.Empty(t, links)
	})

	t.Run("external links filtered", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><footer>
			<a href="https://other.com/careers">Careers elsewhere</a>
			<a href="https://jobs.example.com/careers">Subdomain careers</a>
			<a href="/careers">Our careers</a>
		</footer></body></html>`

		links, err := harvester.HarvestLinks(html, "https://example.com/")
		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, "https://example.com/careers", links[0].URL)
	})

	t.Run("non-http links skipped", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><footer>
			<a href="mailto:hr@example.com">Email</a>
			<a href="tel:0901234567">Call</a>
			<a href="javascript:void(0)">Menu</a>
		</footer></body></html>`

		links, err := harvester.HarvestLinks(html, "https://example.com/")
		require.NoError(t, err)
		assert.Empty(t, links)
	})

	t.Run("fragments stripped and deduplicated keeping highest priority", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<div><a href="/careers#openings">Openings</a></div>
			<footer><a href="/careers">Careers</a></footer>
		</body></html>`

		links, err := harvester.HarvestLinks(html, "https://example.com/")
		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, "https://example.com/careers", links[0].URL)
		assert.Equal(t, jobsift.PriorityCareerMatch, links[0].Priority)
	})

	t.Run("self-referential links dropped", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><nav><a href="#top">Top</a></nav></body></html>`

		links, err := harvester.HarvestLinks(html, "https://example.com/")
		require.NoError(t, err)
		assert.Empty(t, links)
	})

	t.Run("catch-all picks up links outside semantic containers", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div class="menu">
			<a href="/jobs">Jobs</a>
			<a href="/widgets">Widgets</a>
		</div></body></html>`

		links, err := harvester.HarvestLinks(html, "https://example.com/")
		require.NoError(t, err)
		require.Len(t, links, 2)
		assert.Equal(t, jobsift.PriorityCareerMatch, links[0].Priority)
		assert.Equal(t, jobsift.PriorityFallbackLink, links[1].Priority)
	})

	t.Run("invalid base URL", func(t *testing.T) {
		t.Parallel()

		_, err := harvester.HarvestLinks("<html></html>", "://nope")
		require.Error(t, err)
		assert.Equal(t, jobsift.EINVALID, jobsift.ErrorCode(err))
	})
}
