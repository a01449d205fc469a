package service

import (
	"context"

	"customs-clearance-be/internal/pkg/logger"
	"customs-clearance-be/internal/pkg/serverutils"
	"customs-clearance-be/internal/repository/memory"
	"customs-clearance-be/pkg/lang"
	"customs-clearance-be/pkg/llm"
	"customs-clearance-be/pkg/rag/answer"
	"customs-clearance-be/pkg/rag/retriever"
	"customs-clearance-be/pkg/store"
)

// IChatService is the conversation orchestrator: one Ask composes language
// normalization, retrieval, grounded generation, session memory threading,
// and localization of the answer.
type IChatService interface {
	Ask(ctx context.Context, rawText, sessionID string) (string, error)
}

type chatService struct {
	detector    lang.Detector
	localizer   *lang.Localizer
	retriever   retriever.Retriever
	generator   *answer.Generator
	sessionRepo *memory.SessionRepository
	topK        int
	sysLogger   logger.ILogger
}

func NewChatService(
	detector lang.Detector,
	localizer *lang.Localizer,
	ret retriever.Retriever,
	generator *answer.Generator,
	sessionRepo *memory.SessionRepository,
	topK int,
	sysLogger logger.ILogger,
) IChatService {
	return &chatService{
		detector:    detector,
		localizer:   localizer,
		retriever:   ret,
		generator:   generator,
		sessionRepo: sessionRepo,
		topK:        topK,
		sysLogger:   sysLogger,
	}
}

// Ask answers one user query against the session's conversation.
//
// The query is normalized to the pivot language before retrieval and
// generation; history is stored in the pivot language regardless of the
// caller's language; the answer is localized back to the caller's detected
// language. Any failure propagates to the caller, never a partial answer.
func (s *chatService) Ask(ctx context.Context, rawText, sessionID string) (string, error) {
	userLang := s.detector.Detect(rawText)

	query, err := s.localizer.ToPivot(ctx, rawText, userLang)
	if err != nil {
		return "", &serverutils.UpstreamError{Service: "translation", Err: err}
	}

	session := s.sessionRepo.GetOrCreate(sessionID)

	// Serialize asks on the same session so the history read and the turn
	// append cannot interleave with a concurrent request.
	session.Lock()
	defer session.Unlock()

	history := turnsToMessages(session.Turns())

	passages, err := s.retriever.Retrieve(ctx, query, s.topK)
	if err != nil {
		return "", &serverutils.UpstreamError{Service: "retrieval", Err: err}
	}

	answerText, err := s.generator.Generate(ctx, query, passages, history)
	if err != nil {
		return "", &serverutils.UpstreamError{Service: "generation", Err: err}
	}

	// History is always pivot-language, whatever the caller spoke.
	session.Append(store.RoleUser, query)
	session.Append(store.RoleAssistant, answerText)

	localized, err := s.localizer.Localize(ctx, answerText, userLang)
	if err != nil {
		return "", &serverutils.UpstreamError{Service: "translation", Err: err}
	}

	s.sysLogger.Info("chat", "answered question", map[string]interface{}{
		"session_id": sessionID,
		"language":   userLang,
		"passages":   len(passages),
		"turns":      session.Len(),
	})

	return localized, nil
}

func turnsToMessages(turns []store.Turn) []llm.Message {
	messages := make([]llm.Message, len(turns))
	for i, t := range turns {
		messages[i] = llm.Message{Role: t.Role, Content: t.Content}
	}
	return messages
}
