package goquery

import (
	"regexp"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/minhdn/jobsift"
	"golang.org/x/net/html"
)

// containerSelectors match the repeated wrappers job boards put listings
// in, from dedicated classes down to generic list items. Ordered roughly
// most to least specific; node-level deduplication handles overlap.
var containerSelectors = []string{
	".job-item",
	`div[class*="job"]`,
	`div[role="listitem"]`,
	".wixui-repeater__item",
	"article",
	"li",
}

// minContainerText is the shortest normalized text a container can have and
// still be worth scoring. Shorter fragments are navigation crumbs, not
// listings.
const minContainerText = 20

// ElementScorer scores DOM fragments for job-posting likelihood against a
// compiled ruleset.
type ElementScorer struct {
	rules    jobsift.Ruleset
	salary   []*regexp.Regexp
	location []*regexp.Regexp
	company  []*regexp.Regexp
}

// NewElementScorer compiles the ruleset's patterns. Returns EINVALID if any
// pattern does not compile.
func NewElementScorer(rules jobsift.Ruleset) (*ElementScorer, error) {
	s := &ElementScorer{rules: rules}

	var err error
	if s.salary, err = compilePatterns(rules.SalaryPatterns); err != nil {
		return nil, jobsift.Errorf(jobsift.EINVALID, "ruleset %q: salary pattern: %v", rules.Name, err)
	}
	if s.location, err = compilePatterns(rules.LocationPatterns); err != nil {
		return nil, jobsift.Errorf(jobsift.EINVALID, "ruleset %q: location pattern: %v", rules.Name, err)
	}
	if s.company, err = compilePatterns(rules.CompanyPatterns); err != nil {
		return nil, jobsift.Errorf(jobsift.EINVALID, "ruleset %q: company pattern: %v", rules.Name, err)
	}

	return s, nil
}

func compilePatterns(patterns []string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		rx, err := regexp.Compile(p)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, rx)
	}
	return compiled, nil
}

// Ensure ElementScorer implements jobsift.JobScorer.
var _ jobsift.JobScorer = (*ElementScorer)(nil)

// ScoreText scores already-extracted plain text. Scoring is total; empty
// text simply scores zero.
func (s *ElementScorer) ScoreText(text string) *jobsift.JobIndicatorProfile {
	text = jobsift.NormalizeText(text)
	profile := s.score(text)
	profile.Element.TextLength = len(text)
	profile.Element.TextPreview = jobsift.Truncate(text, 300)
	return profile
}

// ScoreFragment parses an HTML fragment and scores its text content. A
// fragment that cannot be read scores zero with Failure set; scoring never
// returns an error.
func (s *ElementScorer) ScoreFragment(fragment string) *jobsift.JobIndicatorProfile {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		profile := s.score("")
		profile.Failure = err.Error()
		return profile
	}

	sel := doc.Find("body").Children().First()
	if sel.Length() == 0 {
		// Bare text with no element wrapper.
		return s.ScoreText(doc.Find("body").Text())
	}
	return s.scoreSelection(sel)
}

// ScoreContainers scans a full document for listing containers and returns
// the fragments whose score meets the ruleset threshold, best first, at
// most max entries (max <= 0 means no limit).
func (s *ElementScorer) ScoreContainers(document string, max int) []jobsift.ScoredFragment {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(document))
	if err != nil {
		return nil
	}

	var fragments []jobsift.ScoredFragment
	visited := make(map[*html.Node]bool)

	for _, selector := range containerSelectors {
		doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			node := sel.Get(0)
			if visited[node] {
				return
			}
			visited[node] = true

			if len(jobsift.NormalizeText(sel.Text())) < minContainerText {
				return
			}

			profile := s.scoreSelection(sel)
			if !s.rules.Accepts(profile.Score) {
				return
			}

			outer, err := goquery.OuterHtml(sel)
			if err != nil {
				return
			}
			fragments = append(fragments, jobsift.ScoredFragment{
				HTML:    outer,
				Profile: profile,
			})
		})
	}

	sort.SliceStable(fragments, func(i, j int) bool {
		return fragments[i].Profile.Score > fragments[j].Profile.Score
	})

	if max > 0 && len(fragments) > max {
		fragments = fragments[:max]
	}
	return fragments
}

// ScoreSelector scores the elements a CSS selector matches in a full
// document, best first, at most max entries (max <= 0 means no limit).
// Unlike ScoreContainers it keeps every match regardless of threshold so
// callers can inspect near-misses. Unmatched or invalid selectors yield
// no fragments.
func (s *ElementScorer) ScoreSelector(document, selector string, max int) []jobsift.ScoredFragment {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(document))
	if err != nil {
		return nil
	}

	var fragments []jobsift.ScoredFragment
	doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
		outer, err := goquery.OuterHtml(sel)
		if err != nil {
			return
		}
		fragments = append(fragments, jobsift.ScoredFragment{
			HTML:    outer,
			Profile: s.scoreSelection(sel),
		})
	})

	sort.SliceStable(fragments, func(i, j int) bool {
		return fragments[i].Profile.Score > fragments[j].Profile.Score
	})

	if max > 0 && len(fragments) > max {
		fragments = fragments[:max]
	}
	return fragments
}

// scoreSelection scores an element's text and fills in its display
// metadata.
func (s *ElementScorer) scoreSelection(sel *goquery.Selection) *jobsift.JobIndicatorProfile {
	text := jobsift.NormalizeText(sel.Text())
	profile := s.score(text)

	profile.Element.Tag = goquery.NodeName(sel)
	if classes, ok := sel.Attr("class"); ok {
		profile.Element.Classes = strings.Fields(classes)
	}
	profile.Element.ID, _ = sel.Attr("id")
	profile.Element.TextLength = len(text)
	profile.Element.HasLinks = sel.Find("a").Length() > 0
	profile.Element.HasImages = sel.Find("img").Length() > 0
	profile.Element.TextPreview = jobsift.Truncate(text, 300)
	if outer, err := goquery.OuterHtml(sel); err == nil {
		profile.Element.HTMLPreview = jobsift.Truncate(outer, 200)
	}

	return profile
}

// score applies the five indicator categories to normalized text. Each
// distinct keyword counts once; the other categories contribute at most
// once each.
func (s *ElementScorer) score(text string) *jobsift.JobIndicatorProfile {
	lower := strings.ToLower(text)
	profile := &jobsift.JobIndicatorProfile{FoundKeywords: []string{}}

	for _, kw := range s.rules.Keywords {
		if strings.Contains(lower, kw) {
			profile.FoundKeywords = append(profile.FoundKeywords, kw)
		}
	}
	if len(profile.FoundKeywords) > 0 {
		profile.Flags.HasJobKeywords = true
		profile.Score += s.rules.KeywordWeight * len(profile.FoundKeywords)
	}

	if anyMatch(s.salary, text) {
		profile.Flags.HasSalaryInfo = true
		profile.Score += s.rules.SalaryWeight
	}
	if anyMatch(s.location, text) {
		profile.Flags.HasLocationInfo = true
		profile.Score += s.rules.LocationWeight
	}
	for _, phrase := range s.rules.ApplyPhrases {
		if strings.Contains(lower, phrase) {
			profile.Flags.HasApplyButton = true
			profile.Score += s.rules.ApplyWeight
			break
		}
	}
	if anyMatch(s.company, text) {
		profile.Flags.HasCompanyInfo = true
		profile.Score += s.rules.CompanyWeight
	}

	profile.Confidence = s.rules.Confidence(profile.Score)
	return profile
}

func anyMatch(patterns []*regexp.Regexp, text string) bool {
	for _, rx := range patterns {
		if rx.MatchString(text) {
			return true
		}
	}
	return false
}
