package main

import (
	"errors"
	"os"

	mdsite "github.com/alnah/go-mdsite"
	"github.com/alnah/go-mdsite/internal/config"
	"github.com/alnah/go-mdsite/internal/fileutil"
)

// Exit codes for the mdsite CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess  = 0 // Build, serve or lint completed cleanly
	ExitGeneral  = 1 // General/unexpected error
	ExitUsage    = 2 // Invalid flags, config, template or style
	ExitIO       = 3 // File not found, permission denied, write failure
	ExitMarkdown = 4 // Document rejected by the renderer
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Markdown errors (exit 4)
	if errors.Is(err, mdsite.ErrUnterminatedSpan) ||
		errors.Is(err, mdsite.ErrMissingTag) ||
		errors.Is(err, mdsite.ErrEmptyChildren) ||
		errors.Is(err, mdsite.ErrEmptyLeafValue) ||
		errors.Is(err, mdsite.ErrNoTitleFound) ||
		errors.Is(err, mdsite.ErrEmptyMarkdown) ||
		errors.Is(err, ErrLintFailed) {
		return ExitMarkdown
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidField) ||
		errors.Is(err, mdsite.ErrStyleNotFound) ||
		errors.Is(err, mdsite.ErrTemplateNotFound) ||
		errors.Is(err, mdsite.ErrTemplateMissingContent) ||
		errors.Is(err, mdsite.ErrInvalidBasePath) ||
		errors.Is(err, mdsite.ErrInvalidAssetPath) ||
		errors.Is(err, fileutil.ErrUnsafeReset) ||
		errors.Is(err, ErrUnsupportedShell) ||
		errors.Is(err, ErrUsage) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, fileutil.ErrNotDirectory) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrWritePage) ||
		errors.Is(err, ErrNoPages) {
		return ExitIO
	}

	return ExitGeneral
}
