// Package config loads the YAML site configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-mdsite/internal/fileutil"
	"github.com/alnah/go-mdsite/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidField    = errors.New("invalid config field")
)

// Field length limits.
const (
	MaxPathLength  = 4096
	MaxNameLength  = 100
	MaxAddrLength  = 255
	MaxTitleLength = 200
)

// Default values applied by DefaultConfig.
const (
	DefaultContentDir = "content"
	DefaultStaticDir  = "static"
	DefaultOutputDir  = "public"
	DefaultBasePath   = "/"
	DefaultAddr       = ":8888"
)

// appDir is the directory searched under the user config dir.
const appDir = "go-mdsite"

// Config holds all configuration for building and serving a site.
type Config struct {
	Content  ContentConfig  `yaml:"content"`
	Static   StaticConfig   `yaml:"static"`
	Output   OutputConfig   `yaml:"output"`
	Template TemplateConfig `yaml:"template"`
	Style    StyleConfig    `yaml:"style"`
	Assets   AssetsConfig   `yaml:"assets"`
	Site     SiteConfig     `yaml:"site"`
	Serve    ServeConfig    `yaml:"serve"`
}

// ContentConfig defines where markdown sources live.
type ContentConfig struct {
	Dir string `yaml:"dir"`
}

// StaticConfig defines the tree copied verbatim into the output.
type StaticConfig struct {
	Dir string `yaml:"dir"` // Missing directory is not an error
}

// OutputConfig defines the generated site location.
type OutputConfig struct {
	Dir string `yaml:"dir"` // Wiped and recreated on every build
}

// TemplateConfig selects the page template.
type TemplateConfig struct {
	Path string `yaml:"path"` // Template name or file path (empty = built-in)
}

// StyleConfig selects the CSS injected into every page.
type StyleConfig struct {
	Name string `yaml:"name"` // Style name or file path (empty = no CSS)
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// SiteConfig holds site-wide page options.
type SiteConfig struct {
	BasePath     string `yaml:"basePath"`     // URL prefix for root-relative links
	DefaultTitle string `yaml:"defaultTitle"` // Used when a page has no level-1 heading
}

// ServeConfig defines the preview server.
type ServeConfig struct {
	Addr string `yaml:"addr"`
}

// Validate checks field lengths and shapes.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"content.dir", c.Content.Dir, MaxPathLength},
		{"static.dir", c.Static.Dir, MaxPathLength},
		{"output.dir", c.Output.Dir, MaxPathLength},
		{"template.path", c.Template.Path, MaxPathLength},
		{"style.name", c.Style.Name, MaxPathLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
		{"site.basePath", c.Site.BasePath, MaxPathLength},
		{"site.defaultTitle", c.Site.DefaultTitle, MaxTitleLength},
		{"serve.addr", c.Serve.Addr, MaxAddrLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if bp := c.Site.BasePath; bp != "" && (!strings.HasPrefix(bp, "/") || strings.HasPrefix(bp, "//")) {
		return fmt.Errorf("%w: site.basePath %q must start with a single /", ErrInvalidField, bp)
	}

	if c.Output.Dir != "" {
		clean := filepath.Clean(c.Output.Dir)
		if clean == "." || clean == string(filepath.Separator) {
			return fmt.Errorf("%w: output.dir %q would wipe the working or root directory", ErrInvalidField, c.Output.Dir)
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills empty fields that have a default value.
func (c *Config) ApplyDefaults() {
	setDefault(&c.Content.Dir, DefaultContentDir)
	setDefault(&c.Static.Dir, DefaultStaticDir)
	setDefault(&c.Output.Dir, DefaultOutputDir)
	setDefault(&c.Site.BasePath, DefaultBasePath)
	setDefault(&c.Serve.Addr, DefaultAddr)
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Fields absent from the file take their default values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SearchPaths returns the candidate files for a config name, in lookup
// order: current directory, then the user config directory.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, appDir, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
