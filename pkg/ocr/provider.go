package ocr

import (
	"context"
)

// Provider defines the contract for optical character recognition backends
type Provider interface {
	// ExtractText runs OCR over an image and returns best-effort text.
	// mimeType is the image content type ("image/png", "image/jpeg").
	ExtractText(ctx context.Context, image []byte, mimeType string) (string, error)
}
