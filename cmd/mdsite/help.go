package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdsite <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build       Convert a content directory into a static site")
	fmt.Fprintln(w, "  serve       Preview the generated site over HTTP")
	fmt.Fprintln(w, "  lint        Report markdown the site renderer does not support")
	fmt.Fprintln(w, "  config      Print the effective configuration")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'mdsite help <command>' for details on a specific command.")
}

// printSiteFlags prints the flags shared by build and serve.
func printSiteFlags(w io.Writer) {
	fmt.Fprintln(w, "Site:")
	fmt.Fprintln(w, "  -o, --output <dir>         Output directory, wiped on build (default: public)")
	fmt.Fprintln(w, "      --static <dir>         Static directory copied as is (default: static)")
	fmt.Fprintln(w, "      --template <s>         Template name or file path (default: built-in)")
	fmt.Fprintln(w, "      --style <s>            CSS style name or file path")
	fmt.Fprintln(w, "      --asset-path <dir>     Custom asset directory (styles/, templates/)")
	fmt.Fprintln(w, "      --base-path <path>     URL prefix for root-relative links (default: /)")
	fmt.Fprintln(w, "      --default-title <s>    Title for pages without a level-1 heading")
}

// printCommonFlags prints the flags accepted by every command.
func printCommonFlags(w io.Writer) {
	fmt.Fprintln(w, "Common:")
	fmt.Fprintln(w, "  -c, --config <name>        Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet                Only show errors")
	fmt.Fprintln(w, "  -v, --verbose              Show detailed timing")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdsite build [content-dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert every .md and .markdown file below content-dir (default: content)")
	fmt.Fprintln(w, "into an .html page, mirroring the directory layout, after copying the")
	fmt.Fprintln(w, "static directory into the output.")
	fmt.Fprintln(w)
	printSiteFlags(w)
	fmt.Fprintln(w)
	printCommonFlags(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MDSITE_CONFIG, MDSITE_CONTENT_DIR, MDSITE_STATIC_DIR, MDSITE_OUTPUT_DIR,")
	fmt.Fprintln(w, "  MDSITE_TEMPLATE, MDSITE_STYLE, MDSITE_BASE_PATH")
}

// printServeUsage prints usage for the serve command.
func printServeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdsite serve [dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Serve dir (default: the output directory) until interrupted.")
	fmt.Fprintln(w, "Paths without an extension resolve to .html pages.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Server:")
	fmt.Fprintln(w, "      --addr <addr>          Listen address (default: :8888, env MDSITE_ADDR)")
	fmt.Fprintln(w, "      --build                Build the site first")
	fmt.Fprintln(w)
	printSiteFlags(w)
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// printLintUsage prints usage for the lint command.
func printLintUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdsite lint [content-dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Report constructs the renderer does not support (warnings) and")
	fmt.Fprintln(w, "documents that would fail to build (errors).")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "      --json                 Print reports as JSON")
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdsite config [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the configuration after config file, environment and defaults")
	fmt.Fprintln(w, "are applied. Useful as a starting point for a config file:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  mdsite config > mdsite.yaml")
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}

	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "serve":
		printServeUsage(env.Stdout)
	case "lint":
		printLintUsage(env.Stdout)
	case "config":
		printConfigUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: mdsite version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: mdsite help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: unknown command %q", ErrUsage, args[0])
	}
	return nil
}
