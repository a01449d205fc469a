package lang

import (
	"strings"

	"github.com/abadojack/whatlanggo"
)

// Detector detects the language of user input. Detection never fails:
// short or ambiguous input falls back to the pivot language so downstream
// components always receive a usable language code.
type Detector interface {
	// Detect returns a supported language code, already coerced to the
	// pivot language when detection is unreliable or out of the set.
	Detect(text string) string
}

// iso3to1 maps whatlanggo ISO 639-3 codes to the ISO 639-1 style codes the
// translator expects. Only languages we can ever localize to are listed.
var iso3to1 = map[string]string{
	"eng": "en",
	"hin": "hi",
	"nep": "ne",
	"mai": "mai",
}

// WhatlangDetector implements Detector with whatlanggo trigram detection.
type WhatlangDetector struct {
	minConfidence float64
}

var _ Detector = &WhatlangDetector{}

func NewDetector() *WhatlangDetector {
	return &WhatlangDetector{
		minConfidence: 0.4,
	}
}

func (d *WhatlangDetector) Detect(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Pivot
	}

	info := whatlanggo.Detect(trimmed)
	if info.Confidence < d.minConfidence {
		return Pivot
	}

	code, ok := iso3to1[whatlanggo.LangToString(info.Lang)]
	if !ok {
		return Pivot
	}
	return Normalize(code)
}
