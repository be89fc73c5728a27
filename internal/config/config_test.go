package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	checks := map[string][2]string{
		"content.dir":   {cfg.Content.Dir, DefaultContentDir},
		"static.dir":    {cfg.Static.Dir, DefaultStaticDir},
		"output.dir":    {cfg.Output.Dir, DefaultOutputDir},
		"site.basePath": {cfg.Site.BasePath, DefaultBasePath},
		"serve.addr":    {cfg.Serve.Addr, DefaultAddr},
		"template.path": {cfg.Template.Path, ""},
		"style.name":    {cfg.Style.Name, ""},
	}
	for field, c := range checks {
		if c[0] != c[1] {
			t.Errorf("%s = %q, want %q", field, c[0], c[1])
		}
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() error = %v", err)
	}
}

func TestValidateFieldLength(t *testing.T) {
	t.Parallel()

	if err := validateFieldLength("f", "1234567890", 10); err != nil {
		t.Errorf("value at limit: error = %v", err)
	}
	err := validateFieldLength("test.field", "12345678901", 10)
	if !errors.Is(err, ErrFieldTooLong) {
		t.Fatalf("error = %v, want ErrFieldTooLong", err)
	}
	if !strings.Contains(err.Error(), "test.field") {
		t.Errorf("error %q should name the field", err)
	}
}

// ---------------------------------------------------------------------------
// TestConfig_Validate - Field checks
// ---------------------------------------------------------------------------

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "sub path base", mutate: func(c *Config) { c.Site.BasePath = "/docs/" }},
		{name: "empty base path", mutate: func(c *Config) { c.Site.BasePath = "" }},
		{name: "relative base path", mutate: func(c *Config) { c.Site.BasePath = "docs" }, wantErr: ErrInvalidField},
		{name: "protocol-relative base path", mutate: func(c *Config) { c.Site.BasePath = "//cdn" }, wantErr: ErrInvalidField},
		{name: "output is working dir", mutate: func(c *Config) { c.Output.Dir = "./" }, wantErr: ErrInvalidField},
		{name: "output is root", mutate: func(c *Config) { c.Output.Dir = "/" }, wantErr: ErrInvalidField},
		{name: "nested output", mutate: func(c *Config) { c.Output.Dir = "build/site" }},
		{
			name:    "title too long",
			mutate:  func(c *Config) { c.Site.DefaultTitle = strings.Repeat("x", MaxTitleLength+1) },
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "addr too long",
			mutate:  func(c *Config) { c.Serve.Addr = strings.Repeat("x", MaxAddrLength+1) },
			wantErr: ErrFieldTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestLoadConfig - File loading
// ---------------------------------------------------------------------------

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "site.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("full file", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, `content:
  dir: docs
output:
  dir: dist
template:
  path: ./layout.html
style:
  name: minimal
site:
  basePath: /handbook
  defaultTitle: Handbook
serve:
  addr: 127.0.0.1:9000
`)
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Content.Dir != "docs" || cfg.Output.Dir != "dist" {
			t.Errorf("dirs = %q, %q", cfg.Content.Dir, cfg.Output.Dir)
		}
		if cfg.Template.Path != "./layout.html" || cfg.Style.Name != "minimal" {
			t.Errorf("template/style = %q, %q", cfg.Template.Path, cfg.Style.Name)
		}
		if cfg.Site.BasePath != "/handbook" || cfg.Site.DefaultTitle != "Handbook" {
			t.Errorf("site = %+v", cfg.Site)
		}
		if cfg.Serve.Addr != "127.0.0.1:9000" {
			t.Errorf("serve.addr = %q", cfg.Serve.Addr)
		}
		if cfg.Static.Dir != DefaultStaticDir {
			t.Errorf("static.dir = %q, want default %q", cfg.Static.Dir, DefaultStaticDir)
		}
	})

	t.Run("partial section keeps defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := LoadConfig(writeConfig(t, "site:\n  defaultTitle: Notes\n"))
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Site.BasePath != DefaultBasePath {
			t.Errorf("site.basePath = %q, want %q", cfg.Site.BasePath, DefaultBasePath)
		}
		if cfg.Output.Dir != DefaultOutputDir {
			t.Errorf("output.dir = %q, want %q", cfg.Output.Dir, DefaultOutputDir)
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig(writeConfig(t, "output:\n  defaultDir: x\n"))
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("LoadConfig() error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("invalid value rejected", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig(writeConfig(t, "site:\n  basePath: docs\n"))
		if !errors.Is(err, ErrInvalidField) {
			t.Errorf("LoadConfig() error = %v, want ErrInvalidField", err)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()

		if _, err := LoadConfig(""); !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("LoadConfig(\"\") error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("missing path", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("LoadConfig() error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("missing name lists searched paths", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig("mdsite-test-config-that-does-not-exist")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("LoadConfig() error = %v, want ErrConfigNotFound", err)
		}
		if !strings.Contains(err.Error(), "mdsite-test-config-that-does-not-exist.yml") {
			t.Errorf("error %q should list the tried paths", err)
		}
	})
}

func TestSearchPaths(t *testing.T) {
	t.Parallel()

	paths := SearchPaths("site")
	if len(paths) < 2 {
		t.Fatalf("SearchPaths() = %v, want at least the local candidates", paths)
	}
	if paths[0] != "site.yaml" || paths[1] != "site.yml" {
		t.Errorf("local candidates = %v, want site.yaml then site.yml", paths[:2])
	}
	for _, p := range paths[2:] {
		if !strings.Contains(p, appDir) {
			t.Errorf("user path %q should be under %s", p, appDir)
		}
	}
}
