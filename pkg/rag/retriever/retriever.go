package retriever

import (
	"context"
	"fmt"
	"log"

	"customs-clearance-be/internal/repository/contract"
	"customs-clearance-be/pkg/embedding"
	"customs-clearance-be/pkg/store"
)

// Retriever returns the most relevant reference passages for a query.
// An empty result is not an error; the answer generator handles it.
type Retriever interface {
	Retrieve(ctx context.Context, query string, k int) ([]store.Passage, error)
}

// Config encapsulates retrieval parameters
type Config struct {
	TopK      int
	Threshold float64
}

// DefaultConfig returns default retrieval configuration
func DefaultConfig() Config {
	return Config{
		TopK:      3,
		Threshold: 0.0,
	}
}

// PgRetriever embeds the query and runs a pgvector similarity search over
// the reference passage index.
type PgRetriever struct {
	embeddingProvider embedding.EmbeddingProvider
	passageRepo       contract.PassageRepository
	config            Config
	logger            *log.Logger
}

var _ Retriever = &PgRetriever{}

func NewPgRetriever(
	embeddingProvider embedding.EmbeddingProvider,
	passageRepo contract.PassageRepository,
	config Config,
	logger *log.Logger,
) *PgRetriever {
	return &PgRetriever{
		embeddingProvider: embeddingProvider,
		passageRepo:       passageRepo,
		config:            config,
		logger:            logger,
	}
}

func (r *PgRetriever) Retrieve(ctx context.Context, query string, k int) ([]store.Passage, error) {
	if k <= 0 {
		k = r.config.TopK
	}

	embeddingRes, err := r.embeddingProvider.Generate(query, "RETRIEVAL_QUERY")
	if err != nil {
		return nil, fmt.Errorf("embedding generation failed: %w", err)
	}

	scored, err := r.passageRepo.SearchSimilarWithScore(
		ctx,
		embeddingRes.Embedding.Values,
		k,
		r.config.Threshold,
	)
	if err != nil {
		r.logger.Printf("[ERROR] Vector search failed: %v", err)
		return nil, err
	}

	passages := make([]store.Passage, 0, len(scored))
	for _, s := range scored {
		passages = append(passages, store.Passage{
			ID:      s.Passage.Id.String(),
			Title:   s.Passage.SourceTitle,
			Content: s.Passage.Content,
			Score:   s.Similarity,
		})
	}

	r.logger.Printf("[DEBUG] Retrieved %d passages for query", len(passages))
	return passages, nil
}
