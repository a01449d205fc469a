package serverutils

import (
	"errors"
	"fmt"
)

// Typed service errors so the HTTP layer can distinguish caller mistakes
// from extraction failures and upstream-provider outages.

// ValidationError covers bad input: missing file, disallowed extension,
// empty form field. Mapped to 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ExtractionError covers corrupt or unreadable uploads. Mapped to 500.
type ExtractionError struct {
	Err error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("document extraction failed: %v", e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// UpstreamError covers failures of external collaborators: generation,
// embedding, translation. Mapped to 502.
type UpstreamError struct {
	Service string
	Err     error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s unavailable: %v", e.Service, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
