package service

import (
	"context"
	"path/filepath"
	"strings"

	"customs-clearance-be/internal/constant"
	"customs-clearance-be/internal/pkg/logger"
	"customs-clearance-be/internal/pkg/serverutils"
	"customs-clearance-be/pkg/extract"
	"customs-clearance-be/pkg/lang"
	"customs-clearance-be/pkg/llm"
)

// UploadResult carries the outcome of one document analysis. NoReadableText
// marks the defined success response for uploads with no extractable text;
// it is not a failure and no model was consulted.
type UploadResult struct {
	NoReadableText bool
	Verification   string
	Analysis       string
}

// IDocumentService is the document verification pipeline: extract text from
// an upload, verify it with one bounded generation call, and run the full
// text through the conversational pipeline for an independent analysis.
type IDocumentService interface {
	AnalyzeUpload(ctx context.Context, data []byte, filename, sessionID string) (*UploadResult, error)
}

type documentService struct {
	extractor   *extract.Extractor
	llmProvider llm.LLMProvider
	chatService IChatService
	detector    lang.Detector
	localizer   *lang.Localizer
	sysLogger   logger.ILogger
}

func NewDocumentService(
	extractor *extract.Extractor,
	llmProvider llm.LLMProvider,
	chatService IChatService,
	detector lang.Detector,
	localizer *lang.Localizer,
	sysLogger logger.ILogger,
) IDocumentService {
	return &documentService{
		extractor:   extractor,
		llmProvider: llmProvider,
		chatService: chatService,
		detector:    detector,
		localizer:   localizer,
		sysLogger:   sysLogger,
	}
}

func (s *documentService) AnalyzeUpload(ctx context.Context, data []byte, filename, sessionID string) (*UploadResult, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if !extract.AllowedExtension(ext) {
		return nil, serverutils.NewValidationError("Invalid file format")
	}

	text, err := s.extractor.Extract(ctx, data, ext)
	if err != nil {
		s.sysLogger.Error("upload", "extraction failed", map[string]interface{}{
			"filename": filename,
			"error":    err.Error(),
		})
		return nil, &serverutils.ExtractionError{Err: err}
	}

	if strings.TrimSpace(text) == "" {
		// Defined success, not an error: no model calls happen.
		return &UploadResult{NoReadableText: true}, nil
	}

	// Verification is one generation call over a bounded prefix of the
	// text. It uses no session memory and is independent of the analysis.
	verification, err := s.verify(ctx, text)
	if err != nil {
		return nil, &serverutils.UpstreamError{Service: "generation", Err: err}
	}

	// The conversational analysis gets the full extracted text, threaded
	// through the caller's session like any chat turn.
	analysis, err := s.chatService.Ask(ctx, text, sessionID)
	if err != nil {
		return nil, err
	}

	// One detection over the extracted text localizes both results.
	docLang := s.detector.Detect(text)
	localizedVerification, err := s.localizer.Localize(ctx, verification, docLang)
	if err != nil {
		return nil, &serverutils.UpstreamError{Service: "translation", Err: err}
	}

	s.sysLogger.Info("upload", "document analyzed", map[string]interface{}{
		"filename":   filename,
		"session_id": sessionID,
		"language":   docLang,
		"text_chars": len(text),
	})

	return &UploadResult{
		Verification: localizedVerification,
		Analysis:     analysis,
	}, nil
}

func (s *documentService) verify(ctx context.Context, text string) (string, error) {
	bounded := text
	if runes := []rune(text); len(runes) > constant.VerificationTextLimit {
		bounded = string(runes[:constant.VerificationTextLimit])
	}

	result, err := s.llmProvider.Generate(ctx, constant.VerificationPromptHeader+bounded)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(result), nil
}
