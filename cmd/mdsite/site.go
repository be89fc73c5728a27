package main

import (
	"errors"
	"fmt"

	mdsite "github.com/alnah/go-mdsite"
	"github.com/alnah/go-mdsite/internal/config"
	"github.com/alnah/go-mdsite/internal/fileutil"
	"github.com/alnah/go-mdsite/internal/hints"
)

// loadConfig resolves the effective configuration for a command.
// Precedence: flags > env > config file > defaults. The content directory
// may also be given as the first positional argument.
func loadConfig(common commonFlags, site *siteFlags, args []string, env *Environment) (*config.Config, error) {
	if !common.quiet {
		warnUnknownEnvVars(env.Environ(), env.Stderr)
	}
	envCfg := loadEnvConfig(env.LookupEnv)

	name := common.config
	if name == "" {
		name = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
				return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
			}
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	applyEnvConfig(envCfg, cfg)
	if site != nil {
		mergeSiteFlags(site, cfg)
	}

	switch len(args) {
	case 0:
	case 1:
		cfg.Content.Dir = args[0]
	default:
		return nil, fmt.Errorf("%w: expected at most one directory, got %d", ErrUsage, len(args))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeSiteFlags merges CLI flags into config. CLI values override config values.
func mergeSiteFlags(f *siteFlags, cfg *config.Config) {
	override(&cfg.Output.Dir, f.output)
	override(&cfg.Static.Dir, f.static)
	override(&cfg.Template.Path, f.template)
	override(&cfg.Style.Name, f.style)
	override(&cfg.Assets.BasePath, f.assetPath)
	override(&cfg.Site.BasePath, f.basePath)
	override(&cfg.Site.DefaultTitle, f.defaultTitle)
}

// newConverter builds the page converter described by cfg.
func newConverter(cfg *config.Config) (*mdsite.Converter, error) {
	opts := []mdsite.Option{
		mdsite.WithBasePath(cfg.Site.BasePath),
		mdsite.WithDefaultTitle(cfg.Site.DefaultTitle),
	}
	if cfg.Template.Path != "" {
		opts = append(opts, mdsite.WithTemplate(cfg.Template.Path))
	}
	if cfg.Style.Name != "" {
		opts = append(opts, mdsite.WithStyle(cfg.Style.Name))
	}
	var loader mdsite.AssetLoader
	if cfg.Assets.BasePath != "" {
		var err error
		if loader, err = mdsite.NewAssetLoader(cfg.Assets.BasePath); err != nil {
			return nil, err
		}
		opts = append(opts, mdsite.WithAssetLoader(loader))
	}

	conv, err := mdsite.NewConverter(opts...)
	switch {
	case err == nil:
		return conv, nil
	case errors.Is(err, mdsite.ErrStyleNotFound):
		return nil, fmt.Errorf("%w%s", err, hints.ForStyleNotFound(mdsite.AvailableStyles(loader)))
	case errors.Is(err, mdsite.ErrTemplateMissingContent), errors.Is(err, mdsite.ErrTemplateNotFound):
		return nil, fmt.Errorf("%w%s", err, hints.ForTemplate())
	default:
		return nil, err
	}
}
