package lang

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTranslator struct {
	calls int
	err   error
}

func (f *fakeTranslator) Translate(_ context.Context, text, source, target string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return fmt.Sprintf("[%s>%s] %s", source, target, text), nil
}

func TestToPivotSkipsTranslatorForPivotSource(t *testing.T) {
	tr := &fakeTranslator{}
	l := NewLocalizer(tr)

	got, err := l.ToPivot(context.Background(), "What is an HS code?", "en")
	require.NoError(t, err)
	assert.Equal(t, "What is an HS code?", got)
	assert.Equal(t, 0, tr.calls)
}

func TestToPivotTranslatesSupportedSource(t *testing.T) {
	tr := &fakeTranslator{}
	l := NewLocalizer(tr)

	got, err := l.ToPivot(context.Background(), "एचएस कोड क्या है?", "hi")
	require.NoError(t, err)
	assert.Equal(t, "[hi>en] एचएस कोड क्या है?", got)
	assert.Equal(t, 1, tr.calls)
}

func TestToPivotCoercesUnknownSource(t *testing.T) {
	tr := &fakeTranslator{}
	l := NewLocalizer(tr)

	// An out-of-set code normalizes to the pivot, so no call happens.
	got, err := l.ToPivot(context.Background(), "bonjour", "fr")
	require.NoError(t, err)
	assert.Equal(t, "bonjour", got)
	assert.Equal(t, 0, tr.calls)
}

func TestLocalizeSkipsTranslatorForPivotTarget(t *testing.T) {
	tr := &fakeTranslator{}
	l := NewLocalizer(tr)

	got, err := l.Localize(context.Background(), "HS codes classify goods.", "en")
	require.NoError(t, err)
	assert.Equal(t, "HS codes classify goods.", got)
	assert.Equal(t, 0, tr.calls)
}

func TestLocalizeTranslatesToTarget(t *testing.T) {
	tr := &fakeTranslator{}
	l := NewLocalizer(tr)

	got, err := l.Localize(context.Background(), "HS codes classify goods.", "ne")
	require.NoError(t, err)
	assert.Equal(t, "[en>ne] HS codes classify goods.", got)
}

func TestTranslationFailureSurfaces(t *testing.T) {
	tr := &fakeTranslator{err: errors.New("quota exceeded")}
	l := NewLocalizer(tr)

	_, err := l.ToPivot(context.Background(), "नमस्ते", "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "translate to pivot")

	_, err = l.Localize(context.Background(), "hello", "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "localize to hi")
}
