package bootstrap

import (
	"log"

	"customs-clearance-be/internal/config"
	"customs-clearance-be/internal/controller"
	"customs-clearance-be/internal/pkg/logger"
	"customs-clearance-be/internal/repository/implementation"
	"customs-clearance-be/internal/repository/memory"
	"customs-clearance-be/internal/service"
	"customs-clearance-be/pkg/embedding"
	"customs-clearance-be/pkg/embedding/huggingface"
	"customs-clearance-be/pkg/extract"
	"customs-clearance-be/pkg/lang"
	"customs-clearance-be/pkg/llm/factory"
	ocrgemini "customs-clearance-be/pkg/ocr/gemini"
	"customs-clearance-be/pkg/rag/answer"
	"customs-clearance-be/pkg/rag/retriever"
	"customs-clearance-be/pkg/trade/apininjas"
	"customs-clearance-be/pkg/translate/google"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AssistantController controller.IAssistantController
	CorpusController    controller.ICorpusController
	TradeController     controller.ITradeController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	ragLogger := log.Default()

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermillLogger)

	// 3. Providers
	var embeddingProvider embedding.EmbeddingProvider
	switch cfg.Ai.EmbeddingProvider {
	case "ollama":
		embeddingProvider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.EmbeddingModel)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.EmbeddingModel)
	case "gemini":
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleAI)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	default:
		embeddingProvider = huggingface.NewHuggingFaceProvider(cfg.Keys.HuggingFace, cfg.Ai.EmbeddingModel)
		log.Printf("[INFO] Using Embedding Provider: HUGGINGFACE (%s)", cfg.Ai.EmbeddingModel)
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.Groq,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	detector := lang.NewDetector()
	localizer := lang.NewLocalizer(google.NewGoogleProvider())
	extractor := extract.NewExtractor(ocrgemini.NewGeminiProvider(cfg.Keys.GoogleAI))

	// 4. Repositories
	passageRepo := implementation.NewPassageRepository(db)
	sessionRepo := memory.NewSessionRepository()

	// 5. RAG core
	ret := retriever.NewPgRetriever(
		embeddingProvider,
		passageRepo,
		retriever.Config{TopK: cfg.Ai.RetrievalTopK, Threshold: 0.0},
		ragLogger,
	)
	generator := answer.NewGenerator(llmProvider, ragLogger)

	// 6. Services
	chatService := service.NewChatService(
		detector,
		localizer,
		ret,
		generator,
		sessionRepo,
		cfg.Ai.RetrievalTopK,
		sysLogger,
	)
	documentService := service.NewDocumentService(
		extractor,
		llmProvider,
		chatService,
		detector,
		localizer,
		sysLogger,
	)
	corpusService := service.NewCorpusService(pubSub, cfg.App.EmbedTopicName, passageRepo)
	tradeService := service.NewTradeService(apininjas.NewNinjasProvider(cfg.Keys.APINinjas))
	consumerService := service.NewConsumerService(pubSub, cfg.App.EmbedTopicName, passageRepo, embeddingProvider)

	// 7. Controllers
	assistantController := controller.NewAssistantController(chatService, documentService, sysLogger)
	corpusController := controller.NewCorpusController(corpusService)
	tradeController := controller.NewTradeController(tradeService)

	return &Container{
		AssistantController: assistantController,
		CorpusController:    corpusController,
		TradeController:     tradeController,
		ConsumerService:     consumerService,
	}
}
