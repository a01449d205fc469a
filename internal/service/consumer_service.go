package service

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"customs-clearance-be/internal/dto"
	"customs-clearance-be/internal/model"
	"customs-clearance-be/internal/repository/contract"
	"customs-clearance-be/pkg/embedding"
	"customs-clearance-be/pkg/utils"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

const (
	chunkSize    = 1000
	chunkOverlap = 100
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	passageRepo       contract.PassageRepository
	embeddingProvider embedding.EmbeddingProvider
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	passageRepo contract.PassageRepository,
	embeddingProvider embedding.EmbeddingProvider,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		passageRepo:       passageRepo,
		embeddingProvider: embeddingProvider,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishEmbedPassageMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal embed message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Indexing corpus document: %s", payload.Title)

	// Re-ingesting a document replaces its previous passages.
	if err := cs.passageRepo.DeleteBySourceTitle(ctx, payload.Title); err != nil {
		log.Printf("[ERROR] Failed to clear old passages for %s: %v", payload.Title, err)
		msg.Nack()
		return
	}

	chunks := utils.SplitText(payload.Content, chunkSize, chunkOverlap)

	metadata, _ := json.Marshal(map[string]string{"source_title": payload.Title})

	passages := make([]*model.Passage, 0, len(chunks))
	for i, chunk := range chunks {
		if strings.TrimSpace(chunk) == "" {
			continue
		}
		embeddingRes, err := cs.embeddingProvider.Generate(chunk, "RETRIEVAL_DOCUMENT")
		if err != nil {
			log.Printf("[ERROR] Embedding failed for %s chunk %d: %v", payload.Title, i, err)
			msg.Nack() // Retriable: provider may recover
			return
		}
		passages = append(passages, &model.Passage{
			Content:        chunk,
			EmbeddingValue: pgvector.NewVector(embeddingRes.Embedding.Values),
			SourceTitle:    payload.Title,
			ChunkIndex:     i,
			Metadata:       datatypes.JSON(metadata),
		})
	}

	if err := cs.passageRepo.CreateBulk(ctx, passages); err != nil {
		log.Printf("[ERROR] Failed to store passages for %s: %v", payload.Title, err)
		msg.Nack()
		return
	}

	log.Printf("[INFO] Indexed %d passages for %s", len(passages), payload.Title)
	msg.Ack()
}
