package dto

// CreateCorpusDocumentRequest adds one reference document to the index.
type CreateCorpusDocumentRequest struct {
	Title   string `json:"title" validate:"required,max=255"`
	Content string `json:"content" validate:"required"`
}

// PublishEmbedPassageMessage is the payload of the embed-passage topic.
// The consumer chunks, embeds, and stores the document as passages.
type PublishEmbedPassageMessage struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// CorpusStatsResponse reports the size of the passage index.
type CorpusStatsResponse struct {
	PassageCount int64 `json:"passage_count"`
}
