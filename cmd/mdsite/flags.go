package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// siteFlags holds the flags that shape a build.
type siteFlags struct {
	output       string
	static       string
	template     string
	style        string
	assetPath    string
	basePath     string
	defaultTitle string
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common commonFlags
	site   siteFlags
}

// serveFlags holds all flags for the serve command.
type serveFlags struct {
	common commonFlags
	site   siteFlags
	addr   string
	build  bool
}

// lintFlags holds all flags for the lint command.
type lintFlags struct {
	common commonFlags
	json   bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addSiteFlags adds build-shaping flags to a FlagSet.
func addSiteFlags(fs *flag.FlagSet, f *siteFlags) {
	fs.StringVarP(&f.output, "output", "o", "", "output directory (wiped on build)")
	fs.StringVar(&f.static, "static", "", "static directory copied into the output")
	fs.StringVar(&f.template, "template", "", "page template name or file path")
	fs.StringVar(&f.style, "style", "", "CSS style name or file path")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.StringVar(&f.basePath, "base-path", "", "URL prefix for root-relative links")
	fs.StringVar(&f.defaultTitle, "default-title", "", "title for pages without a level-1 heading")
}

// newBuildFlagSet registers build flags into f.
// Shared by parseBuildFlags and completion generation.
func newBuildFlagSet(f *buildFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	addSiteFlags(fs, &f.site)
	addCommonFlags(fs, &f.common)
	return fs
}

// newServeFlagSet registers serve flags into f.
func newServeFlagSet(f *serveFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.StringVar(&f.addr, "addr", "", "listen address (default :8888)")
	fs.BoolVar(&f.build, "build", false, "build the site before serving")
	addSiteFlags(fs, &f.site)
	addCommonFlags(fs, &f.common)
	return fs
}

// newLintFlagSet registers lint flags into f.
func newLintFlagSet(f *lintFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("lint", flag.ContinueOnError)
	fs.BoolVar(&f.json, "json", false, "print reports as JSON")
	addCommonFlags(fs, &f.common)
	return fs
}

// parseBuildFlags parses build command flags and returns positional args.
func parseBuildFlags(args []string, usage io.Writer) (*buildFlags, []string, error) {
	f := &buildFlags{}
	fs := newBuildFlagSet(f)
	fs.SetOutput(usage)
	fs.Usage = func() { printBuildUsage(usage) }
	if err := fs.Parse(args); err != nil {
		return nil, nil, usageError(err)
	}
	return f, fs.Args(), nil
}

// parseServeFlags parses serve command flags and returns positional args.
func parseServeFlags(args []string, usage io.Writer) (*serveFlags, []string, error) {
	f := &serveFlags{}
	fs := newServeFlagSet(f)
	fs.SetOutput(usage)
	fs.Usage = func() { printServeUsage(usage) }
	if err := fs.Parse(args); err != nil {
		return nil, nil, usageError(err)
	}
	return f, fs.Args(), nil
}

// parseLintFlags parses lint command flags and returns positional args.
func parseLintFlags(args []string, usage io.Writer) (*lintFlags, []string, error) {
	f := &lintFlags{}
	fs := newLintFlagSet(f)
	fs.SetOutput(usage)
	fs.Usage = func() { printLintUsage(usage) }
	if err := fs.Parse(args); err != nil {
		return nil, nil, usageError(err)
	}
	return f, fs.Args(), nil
}

// newConfigFlagSet registers config command flags into f.
func newConfigFlagSet(f *commonFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	addCommonFlags(fs, f)
	return fs
}

// parseConfigFlags parses the config command flags.
func parseConfigFlags(args []string, usage io.Writer) (*commonFlags, error) {
	f := &commonFlags{}
	fs := newConfigFlagSet(f)
	fs.SetOutput(usage)
	fs.Usage = func() { printConfigUsage(usage) }
	if err := fs.Parse(args); err != nil {
		return nil, usageError(err)
	}
	return f, nil
}
