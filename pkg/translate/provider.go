package translate

import (
	"context"
)

// Provider defines the contract for any translation backend
type Provider interface {
	// Translate converts text from a source language to a target language.
	// Both languages are ISO 639-1 style codes ("en", "hi", "ne").
	Translate(ctx context.Context, text, source, target string) (string, error)
}
