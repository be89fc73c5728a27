package inline

import "errors"

// Sentinel errors for inline extraction.
var (
	// ErrUnterminatedSpan indicates an opening delimiter with no closing match.
	ErrUnterminatedSpan = errors.New("unterminated inline span")

	// ErrUnknownKind indicates a span kind with no HTML mapping.
	ErrUnknownKind = errors.New("unknown span kind")
)
