package answer

import (
	"context"
	"fmt"
	"log"

	"customs-clearance-be/pkg/llm"
	"customs-clearance-be/pkg/rag/prompt"
	"customs-clearance-be/pkg/store"
)

// Generator produces a grounded answer from the query, the retrieved
// passages, and the prior conversation turns. It is a pure composition of
// its inputs plus one LLM call; session memory is the orchestrator's job.
type Generator struct {
	llmProvider llm.LLMProvider
	logger      *log.Logger
}

func NewGenerator(llmProvider llm.LLMProvider, logger *log.Logger) *Generator {
	return &Generator{
		llmProvider: llmProvider,
		logger:      logger,
	}
}

// Generate runs one grounded generation call. An empty passage list is
// valid; the prompt instructs the model to say it does not know. Provider
// failures propagate to the caller, never a partial answer.
func (g *Generator) Generate(
	ctx context.Context,
	query string,
	passages []store.Passage,
	history []llm.Message,
) (string, error) {
	messages := prompt.NewBuilder(query, passages, history).Build()

	response, err := g.llmProvider.Chat(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("answer generation failed: %w", err)
	}

	g.logger.Printf("[GENERATION] Answer generated from %d passages", len(passages))
	return response, nil
}
