package huggingface

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"customs-clearance-be/pkg/embedding"
)

// HuggingFaceProvider implements EmbeddingProvider backed by the HF Inference
// API feature-extraction pipeline (sentence-transformers models).
type HuggingFaceProvider struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

func NewHuggingFaceProvider(apiKey, model string) *HuggingFaceProvider {
	if model == "" {
		model = "sentence-transformers/all-MiniLM-L6-v2"
	}
	return &HuggingFaceProvider{
		apiKey:  apiKey,
		baseURL: "https://api-inference.huggingface.co/pipeline/feature-extraction",
		model:   model,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type embeddingRequest struct {
	Inputs  []string               `json:"inputs"`
	Options map[string]interface{} `json:"options,omitempty"`
}

func (p *HuggingFaceProvider) Generate(text string, taskType string) (*embedding.EmbeddingResponse, error) {
	// taskType is a Gemini concept; sentence-transformers use one embedding space
	reqBody := embeddingRequest{
		Inputs: []string{text},
		// Ask HF to spin the model up instead of returning 503 immediately
		Options: map[string]interface{}{"wait_for_model": true},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/%s", p.baseURL, p.model)
	req, err := http.NewRequest("POST", endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	resBytes, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("error from huggingface response, code %d, body %s", res.StatusCode, string(resBytes))
	}

	// Response is [][]float32, one vector per input
	var vectors [][]float32
	if err := json.Unmarshal(resBytes, &vectors); err != nil {
		return nil, fmt.Errorf("unmarshal huggingface embedding: %w", err)
	}
	if len(vectors) == 0 || len(vectors[0]) == 0 {
		return nil, fmt.Errorf("huggingface returned an empty embedding")
	}

	return &embedding.EmbeddingResponse{
		Embedding: embedding.EmbeddingResponseEmbedding{
			Values: vectors[0],
		},
	}, nil
}
