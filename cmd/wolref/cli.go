package main

import (
	"context"
	"io"
	"time"

	"github.com/pbartosik/wolref/scrape"
)

// Dependencies holds the wired services for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Articles *scrape.ArticleScraper
	Bible    *scrape.BibleIndexScraper
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Article ArticleCmd `cmd:"" help:"Scrape an article page with its resolved references"`
	Bible   BibleCmd   `cmd:"" help:"Build a passage index for a Bible chapter page"`

	BaseURL     string        `default:"" help:"Override the payload base URL"`
	Timeout     time.Duration `default:"10s" help:"Per-request fetch timeout"`
	Concurrency int           `short:"c" default:"10" help:"Concurrent fetch limit"`
	RPS         float64       `default:"1.0" help:"Requests per second per domain"`
	Verbose     bool          `short:"v" help:"Enable debug logging"`
}

// ArticleCmd is the "article" subcommand.
type ArticleCmd struct {
	URL string `arg:"" help:"Article page URL"`
}

// BibleCmd is the "bible" subcommand.
type BibleCmd struct {
	URL string `arg:"" help:"Bible chapter page URL"`
}
