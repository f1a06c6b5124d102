package main

import (
	"encoding/json"
	"fmt"

	"github.com/pbartosik/wolref"
)

// Run executes the article command.
func (c *ArticleCmd) Run(deps *Dependencies) error {
	article, err := deps.Articles.Scrape(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wolref.ErrorMessage(err))
		return err
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(article)
}
