package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	mdsite "github.com/alnah/go-mdsite"
	"github.com/alnah/go-mdsite/internal/config"
	"github.com/alnah/go-mdsite/internal/fileutil"
	"github.com/alnah/go-mdsite/internal/hints"
)

// Sentinel errors for build operations.
var (
	ErrReadMarkdown = errors.New("failed to read markdown file")
	ErrWritePage    = errors.New("failed to write page")
	ErrNoPages      = errors.New("no markdown files found")
)

// markdownExtensions lists the extensions treated as pages.
var markdownExtensions = []string{".md", ".markdown"}

// PageConverter is the interface for the page conversion service.
type PageConverter interface {
	Convert(ctx context.Context, input mdsite.Input) (*mdsite.Page, error)
}

// Compile-time interface implementation check.
var _ PageConverter = (*mdsite.Converter)(nil)

// PageToBuild represents a single markdown file and its output page.
type PageToBuild struct {
	InputPath  string
	OutputPath string
}

// BuildResult holds the outcome of a single page build.
type BuildResult struct {
	InputPath  string
	OutputPath string
	Bytes      int
	Err        error
	Duration   time.Duration
}

// BuildSummary totals a site build.
type BuildSummary struct {
	Succeeded   int
	Failed      int
	PageBytes   int64
	StaticFiles int
	StaticBytes int64
	Duration    time.Duration
}

// BuildError reports failed pages. It unwraps to every page error so
// errors.Is matches the underlying causes.
type BuildError struct {
	Failed int
	Total  int
	Errs   []error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("%d of %d page(s) failed", e.Failed, e.Total)
}

func (e *BuildError) Unwrap() []error {
	return e.Errs
}

// runBuildCmd handles the build command.
func runBuildCmd(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseBuildFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(flags.common, &flags.site, positional, env)
	if err != nil {
		return err
	}
	return runBuild(ctx, cfg, flags.common, env)
}

// runBuild builds the site described by cfg and prints the results.
func runBuild(ctx context.Context, cfg *config.Config, common commonFlags, env *Environment) error {
	conv, err := newConverter(cfg)
	if err != nil {
		return err
	}

	results, summary, err := buildSite(ctx, conv, cfg, env.logger(common.verbose))
	if err != nil {
		return err
	}

	printBuildResults(results, summary, common.quiet, common.verbose, env)

	if summary.Failed > 0 {
		buildErr := &BuildError{Failed: summary.Failed, Total: len(results)}
		for _, r := range results {
			if r.Err != nil {
				buildErr.Errs = append(buildErr.Errs, r.Err)
			}
		}
		return buildErr
	}
	return nil
}

// buildSite resets the output directory, copies the static tree and
// converts every page. Pages are built one at a time; a failed page is
// recorded and the build continues. Cancellation stops before the next page.
func buildSite(ctx context.Context, conv PageConverter, cfg *config.Config, log *slog.Logger) ([]BuildResult, BuildSummary, error) {
	start := time.Now()
	var summary BuildSummary

	pages, err := discoverPages(cfg.Content.Dir, cfg.Output.Dir)
	if err != nil {
		return nil, summary, fmt.Errorf("discovering pages: %w", err)
	}
	if len(pages) == 0 {
		return nil, summary, fmt.Errorf("%w in %s", ErrNoPages, cfg.Content.Dir)
	}

	if err := checkOutputDir(cfg.Output.Dir, cfg.Content.Dir, cfg.Static.Dir); err != nil {
		return nil, summary, fmt.Errorf("%w%s", err, hints.ForOutputDirectory())
	}
	if err := fileutil.ResetDir(cfg.Output.Dir); err != nil {
		if errors.Is(err, fileutil.ErrUnsafeReset) {
			return nil, summary, fmt.Errorf("%w%s", err, hints.ForOutputDirectory())
		}
		return nil, summary, fmt.Errorf("preparing output: %w", err)
	}

	if fileutil.DirExists(cfg.Static.Dir) {
		stats, err := fileutil.CopyTree(cfg.Static.Dir, cfg.Output.Dir)
		if err != nil {
			return nil, summary, fmt.Errorf("copying static files: %w", err)
		}
		summary.StaticFiles = stats.Files
		summary.StaticBytes = stats.Bytes
		log.Debug("static copied", "dir", cfg.Static.Dir, "files", stats.Files, "size", humanize.Bytes(uint64(stats.Bytes)))
	}

	results := make([]BuildResult, 0, len(pages))
	for _, p := range pages {
		if err := ctx.Err(); err != nil {
			return nil, summary, err
		}
		r := buildPage(ctx, conv, p)
		if r.Err != nil {
			summary.Failed++
			log.Debug("page failed", "input", r.InputPath, "error", r.Err)
		} else {
			summary.Succeeded++
			summary.PageBytes += int64(r.Bytes)
			log.Debug("page built", "input", r.InputPath, "output", r.OutputPath, "duration", r.Duration)
		}
		results = append(results, r)
	}

	summary.Duration = time.Since(start)
	return results, summary, nil
}

// checkOutputDir refuses an output directory that is, or contains, one of
// the source directories.
func checkOutputDir(outputDir string, sources ...string) error {
	out, err := filepath.Abs(outputDir)
	if err != nil {
		return fmt.Errorf("%w: %v", fileutil.ErrUnsafeReset, err)
	}
	for _, src := range sources {
		abs, err := filepath.Abs(src)
		if err != nil {
			continue
		}
		rel, err := filepath.Rel(out, abs)
		if err != nil {
			continue
		}
		if rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))) {
			return fmt.Errorf("%w: output %s would remove %s", fileutil.ErrUnsafeReset, outputDir, src)
		}
	}
	return nil
}

// buildPage converts one markdown file and writes its page.
func buildPage(ctx context.Context, conv PageConverter, p PageToBuild) BuildResult {
	start := time.Now()
	result := BuildResult{InputPath: p.InputPath, OutputPath: p.OutputPath}

	content, err := os.ReadFile(p.InputPath) // #nosec G304 -- walked from the content directory
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		return result
	}

	page, err := conv.Convert(ctx, mdsite.Input{Markdown: string(content)})
	if err != nil {
		result.Err = err
		return result
	}

	if err := fileutil.WriteFile(p.OutputPath, page.HTML); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWritePage, err)
		return result
	}

	result.Bytes = len(page.HTML)
	result.Duration = time.Since(start)
	return result
}

// discoverPages finds every markdown file below contentDir and maps it to
// an .html path below outputDir with the same relative layout.
func discoverPages(contentDir, outputDir string) ([]PageToBuild, error) {
	info, err := os.Stat(contentDir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", fileutil.ErrNotDirectory, contentDir)
	}

	var pages []PageToBuild
	err = filepath.WalkDir(contentDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !isMarkdown(path) {
			return nil
		}
		out, err := resolveOutputPath(path, contentDir, outputDir)
		if err != nil {
			return err
		}
		pages = append(pages, PageToBuild{InputPath: path, OutputPath: out})
		return nil
	})
	return pages, err
}

// resolveOutputPath determines the page path for a markdown file:
// content/a/b.md becomes public/a/b.html.
func resolveOutputPath(inputPath, contentDir, outputDir string) (string, error) {
	rel, err := filepath.Rel(contentDir, inputPath)
	if err != nil {
		return "", err
	}
	rel = strings.TrimSuffix(rel, filepath.Ext(rel)) + ".html"
	return filepath.Join(outputDir, rel), nil
}

// isMarkdown reports whether path has a markdown extension.
func isMarkdown(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range markdownExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// printBuildResults outputs build results using the provided writers.
func printBuildResults(results []BuildResult, summary BuildSummary, quiet, verbose bool, env *Environment) {
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v%s\n", r.InputPath, r.Err, hintFor(r.Err))
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%s, %v)\n",
				r.InputPath, r.OutputPath, humanize.Bytes(uint64(r.Bytes)), r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if quiet {
		return
	}
	fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed, %s written", summary.Succeeded, summary.Failed, humanize.Bytes(uint64(summary.PageBytes)))
	if summary.StaticFiles > 0 {
		fmt.Fprintf(env.Stdout, ", %s static file(s) copied (%s)",
			humanize.Comma(int64(summary.StaticFiles)), humanize.Bytes(uint64(summary.StaticBytes)))
	}
	fmt.Fprintf(env.Stdout, " in %v\n", summary.Duration.Round(time.Millisecond))
}

// hintFor returns the hint for a page error, if any.
func hintFor(err error) string {
	switch {
	case errors.Is(err, mdsite.ErrUnterminatedSpan):
		return hints.ForUnterminatedSpan()
	case errors.Is(err, mdsite.ErrNoTitleFound):
		return hints.ForNoTitle()
	default:
		return ""
	}
}
