package utils

import "strings"

// SplitText splits a long string into chunks of approximately chunkSize
// characters with an overlap to preserve context at boundaries. Chunks are
// cut at the nearest whitespace before the boundary when one is close, so
// words are not split in half.
func SplitText(text string, chunkSize int, overlap int) []string {
	if len(text) <= chunkSize {
		return []string{text}
	}

	step := chunkSize - overlap
	if step <= 0 {
		step = chunkSize // fallback if overlap >= chunkSize
	}

	runes := []rune(text)
	totalLen := len(runes)

	var chunks []string
	for i := 0; i < totalLen; i += step {
		end := i + chunkSize
		if end > totalLen {
			end = totalLen
		} else {
			// Back off to a whitespace boundary when one is nearby.
			for j := end; j > end-50 && j > i; j-- {
				if isSpace(runes[j-1]) {
					end = j
					break
				}
			}
		}

		chunks = append(chunks, string(runes[i:end]))

		if end == totalLen {
			break
		}
	}

	return chunks
}

func isSpace(r rune) bool {
	return strings.ContainsRune(" \t\n\r", r)
}
