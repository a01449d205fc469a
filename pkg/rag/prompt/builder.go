package prompt

import (
	"strings"

	"customs-clearance-be/pkg/llm"
	"customs-clearance-be/pkg/store"
)

// Builder assembles the grounded chat prompt: a fixed customs-assistant
// system message embedding the retrieved passages, the conversation history,
// and the current user query.
type Builder struct {
	query    string
	passages []store.Passage
	history  []llm.Message
}

func NewBuilder(query string, passages []store.Passage, history []llm.Message) *Builder {
	return &Builder{
		query:    query,
		passages: passages,
		history:  history,
	}
}

// Build returns the full message sequence for one generation call.
func (b *Builder) Build() []llm.Message {
	messages := make([]llm.Message, 0, len(b.history)+2)
	messages = append(messages, llm.Message{
		Role:    "system",
		Content: b.buildSystemPrompt(),
	})
	messages = append(messages, b.history...)
	messages = append(messages, llm.Message{
		Role:    "user",
		Content: b.query,
	})
	return messages
}

func (b *Builder) buildSystemPrompt() string {
	var prompt strings.Builder

	b.writeRole(&prompt)
	b.writeGuidelines(&prompt)
	b.writeContext(&prompt)

	return prompt.String()
}

func (b *Builder) writeRole(prompt *strings.Builder) {
	prompt.WriteString("<role>\n")
	prompt.WriteString("You are an Intelligent Customs Clearance Assistant, an expert in customs clearance, import/export regulations, and international trade compliance.\n")
	prompt.WriteString("You help trade professionals with documentation, HS codes, tariffs, trade duties, shipment tracking, and customs procedures.\n")
	prompt.WriteString("</role>\n\n")
}

func (b *Builder) writeGuidelines(prompt *strings.Builder) {
	prompt.WriteString("<guidelines>\n")
	prompt.WriteString("- Answer using the reference material below as your main source of truth.\n")
	prompt.WriteString("- If the reference material does not contain enough information, reply with: \"I don't know based on the available information.\"\n")
	prompt.WriteString("- Never fabricate data or speculate.\n")
	prompt.WriteString("- Keep answers short (under 10 sentences) and professional.\n")
	prompt.WriteString("- Use bullet points or numbered steps when explaining procedures.\n")
	prompt.WriteString("- For calculations (duty percentages, CIF/FOB valuation) show step-by-step reasoning.\n")
	prompt.WriteString("- When a question needs live data such as current tariff rates, suggest checking official sources.\n")
	prompt.WriteString("</guidelines>\n\n")
}

func (b *Builder) writeContext(prompt *strings.Builder) {
	prompt.WriteString("<reference_material>\n")
	if len(b.passages) == 0 {
		prompt.WriteString("(no reference material retrieved for this question)\n")
	}
	for i, p := range b.passages {
		if i > 0 {
			prompt.WriteString("\n---\n")
		}
		if p.Title != "" {
			prompt.WriteString("Source: ")
			prompt.WriteString(p.Title)
			prompt.WriteString("\n")
		}
		prompt.WriteString(p.Content)
		prompt.WriteString("\n")
	}
	prompt.WriteString("</reference_material>")
}
