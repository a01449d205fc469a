package trade

import (
	"context"
)

// HSCode is one Harmonized System classification match for a product query.
type HSCode struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// Provider defines the contract for HS-code lookup backends
type Provider interface {
	// LookupHSCode returns classification candidates for a product name,
	// best match first. An empty slice means no classification was found.
	LookupHSCode(ctx context.Context, product string) ([]HSCode, error)
}
