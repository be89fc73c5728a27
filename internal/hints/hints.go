// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import "strings"

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and the first user-level path that was searched.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-mdsite") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory errors.
func ForOutputDirectory() string {
	return format("choose a dedicated directory with --output; it is wiped on every build")
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", ") + "; or pass a path to a .css file")
}

// ForTemplate returns hints for templates that cannot be used.
func ForTemplate() string {
	return format("templates must contain {{ Content }}; {{ Title }} is optional")
}

// ForUnterminatedSpan returns a hint for unbalanced inline delimiters.
func ForUnterminatedSpan() string {
	return format("every **, * and ` needs a closing match in the same block; run `mdsite lint` to locate it")
}

// ForNoTitle returns a hint for pages without a level-1 heading.
func ForNoTitle() string {
	return format("start the page with a '# Title' block or set site.defaultTitle")
}

// ForAddressInUse returns a hint for a preview server that cannot bind.
func ForAddressInUse(addr string) string {
	return format("another process is listening on " + addr + "; pick one with --addr")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
