package main

import (
	"encoding/json"
	"fmt"

	"github.com/minhdn/jobsift"
)

// Run executes the scan command.
func (c *ScanCmd) Run(deps *Dependencies) error {
	report, err := deps.Scanner.Scan(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobsift.ErrorMessage(err))
		return err
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, string(out))

	return nil
}
