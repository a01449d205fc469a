package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitTextShortInputIsOneChunk(t *testing.T) {
	chunks := SplitText("short passage", 1000, 100)
	require.Len(t, chunks, 1)
	assert.Equal(t, "short passage", chunks[0])
}

func TestSplitTextChunksOverlap(t *testing.T) {
	text := strings.Repeat("customs declaration tariff duty ", 100) // ~3200 chars
	chunks := SplitText(text, 1000, 100)

	require.Greater(t, len(chunks), 2)
	for i, c := range chunks {
		assert.LessOrEqual(t, len([]rune(c)), 1000, "chunk %d too long", i)
	}

	// Overlap duplicates text at the boundaries, so the chunks together
	// carry more characters than the input.
	var total int
	for _, c := range chunks {
		total += len([]rune(c))
	}
	assert.Greater(t, total, len([]rune(text)))
}

func TestSplitTextCutsAtWhitespace(t *testing.T) {
	text := strings.Repeat("supercalifragilistic ", 200)
	chunks := SplitText(text, 500, 50)

	for i, c := range chunks[:len(chunks)-1] {
		assert.True(t, strings.HasSuffix(c, " "), "chunk %d does not end on a word boundary: %q", i, c[len(c)-10:])
	}
}

func TestSplitTextDegenerateOverlap(t *testing.T) {
	text := strings.Repeat("x", 250)
	// overlap >= chunkSize must not loop forever
	chunks := SplitText(text, 100, 100)
	assert.NotEmpty(t, chunks)
}
