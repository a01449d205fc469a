package apininjas

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"customs-clearance-be/pkg/trade"
)

// NinjasProvider implements trade.Provider against the API Ninjas HS-code
// lookup endpoint.
type NinjasProvider struct {
	APIKey  string
	BaseURL string
	Client  *http.Client
}

var _ trade.Provider = &NinjasProvider{}

func NewNinjasProvider(apiKey string) *NinjasProvider {
	return &NinjasProvider{
		APIKey:  apiKey,
		BaseURL: "https://api.api-ninjas.com",
		Client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type lookupResult struct {
	HSCode      string `json:"hs_code"`
	Description string `json:"description"`
}

func (p *NinjasProvider) LookupHSCode(ctx context.Context, product string) ([]trade.HSCode, error) {
	endpoint := p.BaseURL + "/v1/hslookup?query=" + url.QueryEscape(product)
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-Api-Key", p.APIKey)

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("hs lookup request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("hs lookup error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	var results []lookupResult
	if err := json.Unmarshal(bodyBytes, &results); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	codes := make([]trade.HSCode, 0, len(results))
	for _, r := range results {
		codes = append(codes, trade.HSCode{
			Code:        r.HSCode,
			Description: r.Description,
		})
	}
	return codes, nil
}
