package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"syscall"

	"github.com/alnah/go-mdsite/internal/hints"
	"github.com/alnah/go-mdsite/internal/server"
)

// runServeCmd handles the serve command.
func runServeCmd(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseServeFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: expected at most one directory, got %d", ErrUsage, len(positional))
	}

	cfg, err := loadConfig(flags.common, &flags.site, nil, env)
	if err != nil {
		return err
	}
	override(&cfg.Serve.Addr, flags.addr)
	if len(positional) == 1 {
		cfg.Output.Dir = positional[0]
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if flags.build {
		if err := runBuild(ctx, cfg, flags.common, env); err != nil {
			return err
		}
	}

	log := env.logger(flags.common.verbose)
	if flags.common.quiet {
		log = slog.New(slog.DiscardHandler)
	}

	srv, err := server.New(cfg.Output.Dir, log)
	if err != nil {
		return err
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Serving %s at %s (Ctrl+C to stop)\n", cfg.Output.Dir, displayURL(cfg.Serve.Addr))
	}

	if err := srv.ListenAndServe(ctx, cfg.Serve.Addr); err != nil {
		if errors.Is(err, syscall.EADDRINUSE) {
			return fmt.Errorf("serving: %w%s", err, hints.ForAddressInUse(cfg.Serve.Addr))
		}
		return fmt.Errorf("serving: %w", err)
	}
	return nil
}

// displayURL turns a listen address into a browsable URL.
func displayURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "http://localhost" + addr
	}
	return "http://" + addr
}
