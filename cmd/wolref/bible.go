package main

import (
	"encoding/json"
	"fmt"

	"github.com/pbartosik/wolref"
)

// Run executes the bible command.
func (c *BibleCmd) Run(deps *Dependencies) error {
	index, err := deps.Bible.Scrape(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wolref.ErrorMessage(err))
		return err
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(index)
}
