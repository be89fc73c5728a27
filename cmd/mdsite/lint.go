package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alnah/go-mdsite/internal/lint"
)

// ErrLintFailed indicates that at least one document would fail to build.
var ErrLintFailed = errors.New("lint found errors")

// runLintCmd handles the lint command.
func runLintCmd(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseLintFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(flags.common, nil, positional, env)
	if err != nil {
		return err
	}

	pages, err := discoverPages(cfg.Content.Dir, cfg.Output.Dir)
	if err != nil {
		return fmt.Errorf("discovering pages: %w", err)
	}
	if len(pages) == 0 {
		return fmt.Errorf("%w in %s", ErrNoPages, cfg.Content.Dir)
	}

	reports, err := lintPages(ctx, lint.New(), pages)
	if err != nil {
		return err
	}

	if flags.json {
		if err := writeLintJSON(env.Stdout, reports); err != nil {
			return err
		}
	} else {
		printLintReports(env.Stdout, reports, flags.common.quiet)
	}

	failed := 0
	for _, r := range reports {
		if r.HasErrors() {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d file(s) would fail to build", ErrLintFailed, failed, len(reports))
	}
	return nil
}

// lintPages checks every page in order.
func lintPages(ctx context.Context, l *lint.Linter, pages []PageToBuild) ([]lint.Report, error) {
	reports := make([]lint.Report, 0, len(pages))
	for _, p := range pages {
		content, err := os.ReadFile(p.InputPath) // #nosec G304 -- walked from the content directory
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		}
		issues, err := l.Check(ctx, content)
		if err != nil {
			return nil, err
		}
		if issues == nil {
			issues = []lint.Issue{}
		}
		reports = append(reports, lint.Report{Path: p.InputPath, Issues: issues})
	}
	return reports, nil
}

func writeLintJSON(w io.Writer, reports []lint.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(reports)
}

// printLintReports prints one line per issue, then a summary.
// Quiet mode keeps errors only.
func printLintReports(w io.Writer, reports []lint.Report, quiet bool) {
	var errCount, warnCount int
	for _, r := range reports {
		for _, i := range r.Issues {
			if i.Severity == lint.SeverityError {
				errCount++
			} else {
				warnCount++
				if quiet {
					continue
				}
			}
			fmt.Fprintf(w, "%s: %s\n", r.Path, i)
		}
	}
	if !quiet {
		fmt.Fprintf(w, "\n%d file(s) checked, %d error(s), %d warning(s)\n", len(reports), errCount, warnCount)
	}
}
