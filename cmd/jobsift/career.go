package main

import (
	"encoding/json"
	"fmt"

	"github.com/minhdn/jobsift"
)

// careerOutput pairs a URL with its classification verdict.
type careerOutput struct {
	URL     string                   `json:"url"`
	Verdict jobsift.CareerURLVerdict `json:"verdict"`
}

// Run executes the career command.
func (c *CareerCmd) Run(deps *Dependencies) error {
	results := make([]careerOutput, 0, len(c.URLs))
	for _, u := range c.URLs {
		results = append(results, careerOutput{
			URL:     u,
			Verdict: deps.Classifier.Classify(u),
		})
	}

	out, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, string(out))

	return nil
}
