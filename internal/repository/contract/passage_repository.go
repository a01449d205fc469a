package contract

import (
	"context"

	"customs-clearance-be/internal/model"
)

// ScoredPassage pairs an indexed passage with its cosine similarity to a query
type ScoredPassage struct {
	Passage    *model.Passage
	Similarity float64
}

type PassageRepository interface {
	CreateBulk(ctx context.Context, passages []*model.Passage) error
	SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, threshold float64) ([]*ScoredPassage, error)
	DeleteBySourceTitle(ctx context.Context, sourceTitle string) error
	Count(ctx context.Context) (int64, error)
}
