package service

import (
	"context"
	"encoding/json"

	"customs-clearance-be/internal/dto"
	"customs-clearance-be/internal/repository/contract"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// ICorpusService manages the reference passage index: documents are
// published to the embed topic and indexed asynchronously by the consumer.
type ICorpusService interface {
	AddDocument(ctx context.Context, req *dto.CreateCorpusDocumentRequest) error
	Stats(ctx context.Context) (*dto.CorpusStatsResponse, error)
}

type corpusService struct {
	pubSub      *gochannel.GoChannel
	topicName   string
	passageRepo contract.PassageRepository
}

func NewCorpusService(
	pubSub *gochannel.GoChannel,
	topicName string,
	passageRepo contract.PassageRepository,
) ICorpusService {
	return &corpusService{
		pubSub:      pubSub,
		topicName:   topicName,
		passageRepo: passageRepo,
	}
}

func (s *corpusService) AddDocument(ctx context.Context, req *dto.CreateCorpusDocumentRequest) error {
	payload, err := json.Marshal(dto.PublishEmbedPassageMessage{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	return s.pubSub.Publish(s.topicName, msg)
}

func (s *corpusService) Stats(ctx context.Context) (*dto.CorpusStatsResponse, error) {
	count, err := s.passageRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.CorpusStatsResponse{PassageCount: count}, nil
}
