// Command phonesub is the CLI entrypoint for the phoneme replacement tool.
//
// It parses flags, loads the phoneme and rule data, and then either lists
// the rules (--rules), verifies documented rule examples (--check), looks up
// words given on the command line, or runs the interactive prompt.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/backmassage/phonesub/internal/check"
	"github.com/backmassage/phonesub/internal/config"
	"github.com/backmassage/phonesub/internal/data"
	"github.com/backmassage/phonesub/internal/display"
	"github.com/backmassage/phonesub/internal/logging"
	"github.com/backmassage/phonesub/internal/rules"
	"github.com/backmassage/phonesub/internal/session"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "phonesub: unexpected error: %v\n", r)
			code = 1
		}
	}()

	// Phase 1: Bootstrap. The logger doesn't exist yet, so errors go
	// directly to stderr via fmt.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, os.Args[1:], version); err != nil {
		fmt.Fprintf(os.Stderr, "phonesub: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "phonesub: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "phonesub: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Load data and build the catalog once; it is read-only from here on.
	ds, cat, err := data.LoadCatalog(cfg.DataDir, cfg.Strict, cfg.Verbose, log)
	if err != nil {
		log.Error("%v", err)
		log.Error("Please ensure the data directory is in the correct location.")
		return 1
	}

	eng := rules.NewEngine(cat)
	opts := session.Options{Verbose: cfg.Verbose, Log: log}

	if !cfg.Interactive() {
		switch {
		case cfg.ListRules:
			display.FormatRules(os.Stdout, cat.Rules())
		case cfg.CheckOnly:
			if !check.RunCheck(cat, cfg.Verbose, log) {
				return 1
			}
		default:
			session.Once(os.Stdout, eng, cfg.Words, opts)
		}
		return 0
	}

	// Phase 3: Interactive mode.
	display.PrintBanner(os.Stdout)
	log.Debug(cfg.Verbose, "phonesub v%s (%s)", version, commit)
	log.Success("Loaded phoneme data successfully!")
	if cfg.ShowPhonemes {
		fmt.Println()
		display.FormatPhonemes(os.Stdout, ds.Phonemes)
	}

	// Cancel the session on SIGINT/SIGTERM so the prompt exits cleanly.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	stats := session.Run(ctx, os.Stdin, os.Stdout, eng, opts)
	log.Debug(cfg.Verbose, "Session: %d queries, %d suggestions, %d unmatched",
		stats.Queries, stats.Suggestions, stats.Unmatched)
	return 0
}
