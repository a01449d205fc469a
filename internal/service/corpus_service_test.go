package service

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"customs-clearance-be/internal/dto"
	"customs-clearance-be/internal/model"
	"customs-clearance-be/internal/repository/contract"
	"customs-clearance-be/pkg/embedding"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePassageRepo is an in-memory stand-in for the pgvector-backed repository.
type fakePassageRepo struct {
	mu       sync.Mutex
	passages []*model.Passage
}

func (r *fakePassageRepo) CreateBulk(_ context.Context, passages []*model.Passage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.passages = append(r.passages, passages...)
	return nil
}

func (r *fakePassageRepo) SearchSimilarWithScore(context.Context, []float32, int, float64) ([]*contract.ScoredPassage, error) {
	return nil, nil
}

func (r *fakePassageRepo) DeleteBySourceTitle(_ context.Context, sourceTitle string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.passages[:0]
	for _, p := range r.passages {
		if p.SourceTitle != sourceTitle {
			kept = append(kept, p)
		}
	}
	r.passages = kept
	return nil
}

func (r *fakePassageRepo) Count(context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.passages)), nil
}

func (r *fakePassageRepo) snapshot() []*model.Passage {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*model.Passage, len(r.passages))
	copy(out, r.passages)
	return out
}

type fakeEmbedder struct{}

func (fakeEmbedder) Generate(string, string) (*embedding.EmbeddingResponse, error) {
	res := &embedding.EmbeddingResponse{}
	res.Embedding.Values = make([]float32, 384)
	return res, nil
}

func waitForCount(t *testing.T, repo *fakePassageRepo, want int) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		count, _ := repo.Count(context.Background())
		if count == int64(want) {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	count, _ := repo.Count(context.Background())
	t.Fatalf("passage count = %d, want %d", count, want)
}

func TestAddDocumentIsIndexedByConsumer(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	repo := &fakePassageRepo{}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	consumer := NewConsumerService(pubSub, "embed_passage", repo, fakeEmbedder{})
	require.NoError(t, consumer.Consume(ctx))

	corpus := NewCorpusService(pubSub, "embed_passage", repo)
	err := corpus.AddDocument(ctx, &dto.CreateCorpusDocumentRequest{
		Title:   "HS Nomenclature Guide",
		Content: "The Harmonized System assigns six digit codes to traded goods.",
	})
	require.NoError(t, err)

	waitForCount(t, repo, 1)
	stored := repo.snapshot()
	assert.Equal(t, "HS Nomenclature Guide", stored[0].SourceTitle)
	assert.Equal(t, 0, stored[0].ChunkIndex)
	assert.Contains(t, string(stored[0].Metadata), "HS Nomenclature Guide")
}

func TestLongDocumentIsChunked(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	repo := &fakePassageRepo{}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	consumer := NewConsumerService(pubSub, "embed_passage", repo, fakeEmbedder{})
	require.NoError(t, consumer.Consume(ctx))

	corpus := NewCorpusService(pubSub, "embed_passage", repo)
	long := strings.Repeat("Import duty is assessed on the CIF value of the shipment. ", 60)
	err := corpus.AddDocument(ctx, &dto.CreateCorpusDocumentRequest{
		Title:   "Tariff Guide",
		Content: long,
	})
	require.NoError(t, err)

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if count, _ := repo.Count(ctx); count >= 2 {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	stored := repo.snapshot()
	require.GreaterOrEqual(t, len(stored), 2)
	for i, p := range stored {
		assert.Equal(t, i, p.ChunkIndex)
		assert.Equal(t, "Tariff Guide", p.SourceTitle)
	}
}

func TestReingestReplacesPreviousPassages(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	repo := &fakePassageRepo{}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	consumer := NewConsumerService(pubSub, "embed_passage", repo, fakeEmbedder{})
	require.NoError(t, consumer.Consume(ctx))

	corpus := NewCorpusService(pubSub, "embed_passage", repo)
	doc := &dto.CreateCorpusDocumentRequest{Title: "Packing List Rules", Content: "Original content."}
	require.NoError(t, corpus.AddDocument(ctx, doc))
	waitForCount(t, repo, 1)

	doc.Content = "Revised content."
	require.NoError(t, corpus.AddDocument(ctx, doc))
	waitForCount(t, repo, 1)

	assert.Equal(t, "Revised content.", repo.snapshot()[0].Content)
}

func TestStatsReportsPassageCount(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	repo := &fakePassageRepo{}
	repo.passages = append(repo.passages, &model.Passage{}, &model.Passage{})

	corpus := NewCorpusService(pubSub, "embed_passage", repo)
	stats, err := corpus.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.PassageCount)
}
