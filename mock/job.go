package mock

import "github.com/minhdn/jobsift"

var _ jobsift.JobScorer = (*JobScorer)(nil)

// JobScorer is a mock implementation of jobsift.JobScorer.
type JobScorer struct {
	ScoreFragmentFn   func(html string) *jobsift.JobIndicatorProfile
	ScoreTextFn       func(text string) *jobsift.JobIndicatorProfile
	ScoreContainersFn func(html string, max int) []jobsift.ScoredFragment
}

func (s *JobScorer) ScoreFragment(html string) *jobsift.JobIndicatorProfile {
	return s.ScoreFragmentFn(html)
}

func (s *JobScorer) ScoreText(text string) *jobsift.JobIndicatorProfile {
	return s.ScoreTextFn(text)
}

func (s *JobScorer) ScoreContainers(html string, max int) []jobsift.ScoredFragment {
	return s.ScoreContainersFn(html, max)
}
