package mdsite

import (
	"errors"

	"github.com/alnah/go-mdsite/internal/assets"
	"github.com/alnah/go-mdsite/internal/htmlnode"
	"github.com/alnah/go-mdsite/internal/inline"
	"github.com/alnah/go-mdsite/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown = errors.New("markdown content cannot be empty")

	// Markdown errors.
	ErrUnterminatedSpan = inline.ErrUnterminatedSpan
	ErrNoTitleFound     = pipeline.ErrNoTitleFound

	// Node rendering errors.
	ErrMissingTag     = htmlnode.ErrMissingTag
	ErrEmptyChildren  = htmlnode.ErrEmptyChildren
	ErrEmptyLeafValue = htmlnode.ErrEmptyLeafValue

	// Page assembly errors.
	ErrTemplateMissingContent = pipeline.ErrTemplateMissingContent
	ErrInvalidBasePath        = pipeline.ErrInvalidBasePath

	// Asset loading errors.
	ErrStyleNotFound    = assets.ErrStyleNotFound
	ErrTemplateNotFound = assets.ErrTemplateNotFound
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
