package implementation

import (
	"context"

	"customs-clearance-be/internal/model"
	"customs-clearance-be/internal/repository/contract"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type PassageRepositoryImpl struct {
	db *gorm.DB
}

var _ contract.PassageRepository = &PassageRepositoryImpl{}

func NewPassageRepository(db *gorm.DB) *PassageRepositoryImpl {
	return &PassageRepositoryImpl{db: db}
}

func (r *PassageRepositoryImpl) CreateBulk(ctx context.Context, passages []*model.Passage) error {
	if len(passages) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(passages).Error
}

// SearchSimilarWithScore returns passages with similarity scores, filtered by threshold.
// Cosine distance in pgvector is 1 - cosine_similarity, so similarity is
// computed as 1 - (embedding_value <=> query_vector).
func (r *PassageRepositoryImpl) SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, threshold float64) ([]*contract.ScoredPassage, error) {
	if limit <= 0 {
		limit = 3
	}

	type result struct {
		model.Passage
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	err := r.db.WithContext(ctx).
		Table("reference_passages").
		Select("reference_passages.*, 1 - (embedding_value <=> ?) as similarity", queryVector).
		Where("reference_passages.deleted_at IS NULL").
		Where("1 - (embedding_value <=> ?) >= ?", queryVector, threshold).
		Order("similarity DESC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	scored := make([]*contract.ScoredPassage, len(results))
	for i := range results {
		passage := results[i].Passage
		scored[i] = &contract.ScoredPassage{
			Passage:    &passage,
			Similarity: results[i].Similarity,
		}
	}
	return scored, nil
}

func (r *PassageRepositoryImpl) DeleteBySourceTitle(ctx context.Context, sourceTitle string) error {
	return r.db.WithContext(ctx).
		Where("source_title = ?", sourceTitle).
		Delete(&model.Passage{}).Error
}

func (r *PassageRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Passage{}).Count(&count).Error
	return count, err
}
