package lang

import (
	"context"
	"fmt"

	"customs-clearance-be/pkg/translate"
)

// Localizer applies the translation policy around a translate.Provider:
// pivot-to-pivot never touches the external service, and a required
// translation that fails surfaces as an error rather than silently
// returning text in the wrong language.
type Localizer struct {
	translator translate.Provider
}

func NewLocalizer(translator translate.Provider) *Localizer {
	return &Localizer{translator: translator}
}

// ToPivot translates caller text into the pivot language. When source is
// already the pivot language the text passes through untouched.
func (l *Localizer) ToPivot(ctx context.Context, text, source string) (string, error) {
	source = Normalize(source)
	if source == Pivot {
		return text, nil
	}
	translated, err := l.translator.Translate(ctx, text, source, Pivot)
	if err != nil {
		return "", fmt.Errorf("translate to pivot: %w", err)
	}
	return translated, nil
}

// Localize translates pivot-language text into the caller's language.
// A pivot target passes through with zero external calls.
func (l *Localizer) Localize(ctx context.Context, text, target string) (string, error) {
	target = Normalize(target)
	if target == Pivot {
		return text, nil
	}
	translated, err := l.translator.Translate(ctx, text, Pivot, target)
	if err != nil {
		return "", fmt.Errorf("localize to %s: %w", target, err)
	}
	return translated, nil
}
