package google

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"customs-clearance-be/pkg/translate"
)

// GoogleProvider implements translate.Provider against the public Google
// Translate endpoint (the same one the deep-translator ecosystem uses).
type GoogleProvider struct {
	BaseURL string
	Client  *http.Client
}

var _ translate.Provider = &GoogleProvider{}

func NewGoogleProvider() *GoogleProvider {
	return &GoogleProvider{
		BaseURL: "https://translate.googleapis.com",
		Client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (p *GoogleProvider) Translate(ctx context.Context, text, source, target string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return text, nil
	}

	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", source)
	params.Set("tl", target)
	params.Set("dt", "t")
	params.Set("q", text)

	endpoint := p.BaseURL + "/translate_a/single?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := p.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("translate request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translate error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	// Response shape: [[["translated","original",...],...],...]
	var raw []json.RawMessage
	if err := json.Unmarshal(bodyBytes, &raw); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if len(raw) == 0 {
		return "", fmt.Errorf("translate returned an empty response")
	}

	var segments [][]json.RawMessage
	if err := json.Unmarshal(raw[0], &segments); err != nil {
		return "", fmt.Errorf("unmarshal segments: %w", err)
	}

	var out strings.Builder
	for _, seg := range segments {
		if len(seg) == 0 {
			continue
		}
		var piece string
		if err := json.Unmarshal(seg[0], &piece); err != nil {
			continue
		}
		out.WriteString(piece)
	}

	if out.Len() == 0 {
		return "", fmt.Errorf("translate returned no segments")
	}
	return out.String(), nil
}
