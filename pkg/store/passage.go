package store

// Passage is a retrieved reference fragment used as grounding context for
// answer generation.
type Passage struct {
	ID      string  `json:"id"`
	Title   string  `json:"title"`
	Content string  `json:"content"`
	Score   float64 `json:"score"`
}
