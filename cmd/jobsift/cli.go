package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/minhdn/jobsift"
	"github.com/minhdn/jobsift/scan"
	"github.com/minhdn/jobsift/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Logger     *slog.Logger
	DB         *sqlite.DB
	Fetcher    jobsift.Fetcher
	Contacts   jobsift.ContactService
	Classifier jobsift.CareerClassifier
	Reports    jobsift.ReportService
	Scanner    *scan.Scanner
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool   `short:"v" help:"Enable debug logging"`
	DB      string `help:"Report cache path (overrides JOBSIFT_DB)"`

	Contacts ContactsCmd `cmd:"" help:"Extract footer contacts from a page"`
	Score    ScoreCmd    `cmd:"" help:"Score a page's fragments for job content"`
	Career   CareerCmd   `cmd:"" help:"Classify URLs as career pages"`
	Scan     ScanCmd     `cmd:"" help:"Run a full site scan"`
	Clean    CleanCmd    `cmd:"" help:"Delete expired cached reports"`
}

// ContactsCmd is the "contacts" subcommand.
type ContactsCmd struct {
	URL string `arg:"" help:"Page URL"`
}

// ScoreCmd is the "score" subcommand.
type ScoreCmd struct {
	URL      string `arg:"" help:"Page URL"`
	Ruleset  string `short:"r" default:"job-element" help:"Ruleset preset (likely-job or job-element)"`
	Selector string `short:"s" help:"Score elements matching this CSS selector instead of the container scan"`
	Max      int    `short:"m" default:"10" help:"Maximum fragments to report"`
}

// CareerCmd is the "career" subcommand. It classifies URLs without
// fetching anything.
type CareerCmd struct {
	URLs []string `arg:"" help:"URLs to classify"`
}

// ScanCmd is the "scan" subcommand.
type ScanCmd struct {
	URL         string        `arg:"" help:"Site URL"`
	Concurrency int           `short:"c" default:"10" help:"Concurrent fetch limit"`
	MaxPages    int           `default:"10" help:"Maximum career pages to visit"`
	RPS         float64       `default:"2" help:"Requests per second per domain"`
	CacheTTL    time.Duration `default:"1h" help:"Reuse cached reports younger than this (0 disables caching)"`
	Render      bool          `help:"Use a headless browser for JS-rendered pages"`
}

// CleanCmd is the "clean" subcommand.
type CleanCmd struct {
	MaxAge time.Duration `default:"24h" help:"Delete cached reports older than this"`
}
