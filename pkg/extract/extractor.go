package extract

import (
	"context"
	"fmt"
	"strings"

	"customs-clearance-be/pkg/ocr"
)

// allowedExtensions is the set of upload types the extractor understands.
var allowedExtensions = map[string]bool{
	"pdf":  true,
	"docx": true,
	"jpg":  true,
	"jpeg": true,
	"png":  true,
}

// AllowedExtension reports whether ext (without the leading dot) is supported.
func AllowedExtension(ext string) bool {
	return allowedExtensions[strings.ToLower(ext)]
}

// Extractor turns an uploaded document into raw text. It works entirely on
// in-memory bytes; nothing is written to disk.
type Extractor struct {
	ocrProvider ocr.Provider
}

func NewExtractor(ocrProvider ocr.Provider) *Extractor {
	return &Extractor{ocrProvider: ocrProvider}
}

// Extract dispatches on the declared extension and returns the extracted
// text, which may be empty for documents with no readable content.
func (e *Extractor) Extract(ctx context.Context, data []byte, ext string) (string, error) {
	ext = strings.ToLower(ext)
	if !AllowedExtension(ext) {
		return "", fmt.Errorf("unsupported file extension: %s", ext)
	}

	switch ext {
	case "pdf":
		return extractPDF(data)
	case "docx":
		return extractDOCX(data)
	case "jpg", "jpeg":
		return e.ocrProvider.ExtractText(ctx, data, "image/jpeg")
	case "png":
		return e.ocrProvider.ExtractText(ctx, data, "image/png")
	}
	return "", fmt.Errorf("unsupported file extension: %s", ext)
}
