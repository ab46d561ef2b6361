package main

import (
	"encoding/json"
	"fmt"

	"github.com/minhdn/jobsift"
	"github.com/minhdn/jobsift/goquery"
)

// scoreOutput is the JSON shape of the score command's result.
type scoreOutput struct {
	URL       string                       `json:"url"`
	Ruleset   string                       `json:"ruleset"`
	Page      *jobsift.JobIndicatorProfile `json:"page"`
	Fragments []jobsift.ScoredFragment     `json:"fragments"`
}

// Run executes the score command.
func (c *ScoreCmd) Run(deps *Dependencies) error {
	rules, ok := jobsift.LookupRuleset(c.Ruleset)
	if !ok {
		fmt.Fprintf(deps.Stderr, "error: unknown ruleset %q (try likely-job or job-element)\n", c.Ruleset)
		return jobsift.Errorf(jobsift.EINVALID, "unknown ruleset %q", c.Ruleset)
	}

	scorer, err := goquery.NewElementScorer(rules)
	if err != nil {
		return err
	}

	html, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobsift.ErrorMessage(err))
		return err
	}

	fragments := scorer.ScoreContainers(html, c.Max)
	if c.Selector != "" {
		fragments = scorer.ScoreSelector(html, c.Selector, c.Max)
	}

	result := scoreOutput{
		URL:       c.URL,
		Ruleset:   rules.Name,
		Page:      scorer.ScoreFragment(html),
		Fragments: fragments,
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, string(out))

	return nil
}
