package main

import (
	"fmt"

	"github.com/minhdn/jobsift"
)

// Run executes the clean command.
func (c *CleanCmd) Run(deps *Dependencies) error {
	n, err := deps.Reports.DeleteExpiredReports(deps.Ctx, c.MaxAge)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobsift.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted %d expired report(s)\n", n)
	return nil
}
