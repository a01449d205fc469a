package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectFallsBackToPivot(t *testing.T) {
	d := NewDetector()

	tests := []struct {
		name string
		text string
	}{
		{"empty input", ""},
		{"whitespace only", "   \n\t"},
		{"unsupported language coerced", "Что такое таможенная декларация и зачем она нужна при импорте товаров?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, Pivot, d.Detect(tt.text))
		})
	}
}

func TestDetectEnglish(t *testing.T) {
	d := NewDetector()
	got := d.Detect("What documents are required for customs clearance of imported textile goods?")
	assert.Equal(t, "en", got)
}

func TestDetectAlwaysReturnsSupportedCode(t *testing.T) {
	d := NewDetector()

	inputs := []string{
		"एचएस कोड क्या होता है और आयात शुल्क की गणना कैसे की जाती है?",
		"भन्सार घोषणा फारम कसरी भर्ने र कुन कागजातहरू आवश्यक पर्छन्?",
		"customs",
		"7101.10",
	}

	for _, input := range inputs {
		got := d.Detect(input)
		assert.True(t, IsSupported(got), "Detect(%q) = %q, not in the supported set", input, got)
	}
}
