// Command wolref scrapes publication pages and resolves their embedded
// cross references, printing structured JSON.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/pbartosik/wolref/goquery"
	"github.com/pbartosik/wolref/htmltomarkdown"
	wolhttp "github.com/pbartosik/wolref/http"
	"github.com/pbartosik/wolref/resolve"
	"github.com/pbartosik/wolref/scrape"
	wolslog "github.com/pbartosik/wolref/slog"
)

func main() {
	ctx := context.Background()

	if err := Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Run executes the CLI with the given arguments.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("wolref"),
		kong.Description("Scrape publication pages and resolve their cross references."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'wolref --help' to see available commands")
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps := buildDependencies(ctx, cli, stdout, stderr)
	return kongCtx.Run(deps)
}

// buildDependencies wires the full stack from CLI flags.
func buildDependencies(ctx context.Context, cli *CLI, stdout, stderr io.Writer) *Dependencies {
	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	resolver := wolslog.NewLoggingResolver(&resolve.Resolver{
		Payloads:    wolhttp.NewPayloadFetcher(wolhttp.WithPayloadTimeout(cli.Timeout)),
		Extractor:   goquery.NewExtractor(),
		BaseURL:     cli.BaseURL,
		RateLimiter: resolve.NewDomainLimiter(cli.RPS),
	}, logger)

	engine := wolslog.NewLoggingDocumentResolver(&resolve.Engine{
		Resolver:    resolver,
		Concurrency: cli.Concurrency,
	}, logger)

	fetcher := wolhttp.NewFetcher(wolhttp.WithTimeout(cli.Timeout))

	return &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Articles: &scrape.ArticleScraper{
			Fetcher:   fetcher,
			Converter: htmltomarkdown.NewConverter(),
			Documents: engine,
		},
		Bible: &scrape.BibleIndexScraper{
			Fetcher:   fetcher,
			Documents: engine,
		},
	}
}
