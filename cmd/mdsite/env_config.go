package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/alnah/go-mdsite/internal/config"
)

// envPrefix namespaces the environment variables read by the CLI.
const envPrefix = "MDSITE_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // MDSITE_CONFIG: config file name or path
	ContentDir string // MDSITE_CONTENT_DIR: markdown source directory
	StaticDir  string // MDSITE_STATIC_DIR: static directory
	OutputDir  string // MDSITE_OUTPUT_DIR: generated site directory
	Template   string // MDSITE_TEMPLATE: template name or path
	Style      string // MDSITE_STYLE: CSS style name or path
	BasePath   string // MDSITE_BASE_PATH: URL prefix
	Addr       string // MDSITE_ADDR: preview server address
}

// knownEnvVars lists valid MDSITE_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MDSITE_CONFIG":      true,
	"MDSITE_CONTENT_DIR": true,
	"MDSITE_STATIC_DIR":  true,
	"MDSITE_OUTPUT_DIR":  true,
	"MDSITE_TEMPLATE":    true,
	"MDSITE_STYLE":       true,
	"MDSITE_BASE_PATH":   true,
	"MDSITE_ADDR":        true,
}

// loadEnvConfig reads MDSITE_* variables through lookup.
func loadEnvConfig(lookup func(string) (string, bool)) *envConfig {
	get := func(key string) string {
		v, _ := lookup(key)
		return strings.TrimSpace(v)
	}
	return &envConfig{
		ConfigPath: get("MDSITE_CONFIG"),
		ContentDir: get("MDSITE_CONTENT_DIR"),
		StaticDir:  get("MDSITE_STATIC_DIR"),
		OutputDir:  get("MDSITE_OUTPUT_DIR"),
		Template:   get("MDSITE_TEMPLATE"),
		Style:      get("MDSITE_STYLE"),
		BasePath:   get("MDSITE_BASE_PATH"),
		Addr:       get("MDSITE_ADDR"),
	}
}

// warnUnknownEnvVars prints a warning for each MDSITE_* variable that is
// not recognized, which usually means a typo.
func warnUnknownEnvVars(environ []string, w io.Writer) {
	for _, kv := range environ {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, envPrefix) && !knownEnvVars[key] {
			fmt.Fprintf(w, "warning: unknown environment variable %s\n", key)
		}
	}
}

// applyEnvConfig overrides config values with non-empty environment values.
// Precedence: flags > env > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	override(&cfg.Content.Dir, env.ContentDir)
	override(&cfg.Static.Dir, env.StaticDir)
	override(&cfg.Output.Dir, env.OutputDir)
	override(&cfg.Template.Path, env.Template)
	override(&cfg.Style.Name, env.Style)
	override(&cfg.Site.BasePath, env.BasePath)
	override(&cfg.Serve.Addr, env.Addr)
}

// override sets *field to value when value is not empty.
func override(field *string, value string) {
	if value != "" {
		*field = value
	}
}
