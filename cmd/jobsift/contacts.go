package main

import (
	"encoding/json"
	"fmt"

	"github.com/minhdn/jobsift"
)

// Run executes the contacts command.
func (c *ContactsCmd) Run(deps *Dependencies) error {
	html, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobsift.ErrorMessage(err))
		return err
	}

	bundle := deps.Contacts.ExtractContacts(html)

	out, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, string(out))

	return nil
}
