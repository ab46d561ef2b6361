package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/minhdn/jobsift"
	"github.com/minhdn/jobsift/goquery"
	"github.com/minhdn/jobsift/htmltomarkdown"
	jobsifthttp "github.com/minhdn/jobsift/http"
	"github.com/minhdn/jobsift/rod"
	"github.com/minhdn/jobsift/scan"
	jobsiftslog "github.com/minhdn/jobsift/slog"
	"github.com/minhdn/jobsift/sqlite"
	"github.com/minhdn/jobsift/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used for the report cache.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("jobsift"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'jobsift --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if cli.DB != "" {
		m.DBPath = cli.DB
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	deps.Fetcher = jobsiftslog.NewLoggingFetcher(jobsifthttp.NewFetcher(), deps.Logger)
	defer deps.Fetcher.Close()

	deps.Contacts = jobsiftslog.NewLoggingContactService(goquery.NewContactExtractor(), deps.Logger)
	deps.Classifier = jobsiftslog.NewLoggingCareerClassifier(jobsift.DefaultCareerRules(), deps.Logger)

	// The report cache backs scan and clean only.
	if cmd == "scan" || cmd == "clean" {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set JOBSIFT_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		deps.DB = m.DB
		deps.Reports = sqlite.NewReportService(m.DB)
	}

	if cmd == "scan" {
		scorer, err := goquery.NewElementScorer(jobsift.RulesetJobElement())
		if err != nil {
			return err
		}

		deps.Scanner = &scan.Scanner{
			Fetcher:     deps.Fetcher,
			Contacts:    deps.Contacts,
			Harvester:   goquery.NewLinkHarvester(deps.Classifier),
			Scorer:      scorer,
			Rules:       jobsift.RulesetJobElement(),
			Classifier:  deps.Classifier,
			Sitemaps:    jobsiftslog.NewLoggingSitemapService(jobsifthttp.NewSitemapService(nil), deps.Logger),
			Texts:       trafilatura.NewExtractor(),
			Converter:   htmltomarkdown.NewConverter(),
			Reports:     deps.Reports,
			CacheTTL:    cli.Scan.CacheTTL,
			RateLimiter: scan.NewDomainLimiter(cli.Scan.RPS),
			Concurrency: cli.Scan.Concurrency,
			MaxPages:    cli.Scan.MaxPages,
			RetryDelays: scan.DefaultRetryDelays(),
		}

		if cli.Scan.Render {
			renderer, err := rod.NewFetcher()
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			defer renderer.Close()
			deps.Scanner.Renderer = jobsiftslog.NewLoggingFetcher(renderer, deps.Logger)
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("JOBSIFT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "jobsift.db"
	}
	dir := filepath.Join(home, ".jobsift")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "jobsift.db")
}
