package service

import (
	"context"
	"strings"

	"customs-clearance-be/internal/dto"
	"customs-clearance-be/internal/pkg/serverutils"
	"customs-clearance-be/pkg/trade"
)

// ITradeService resolves HS classification codes for product names. This is
// a plain lookup against an external trade API, separate from the grounded
// conversational pipeline.
type ITradeService interface {
	LookupHSCode(ctx context.Context, product string) (*dto.HSCodeLookupResponse, error)
}

type tradeService struct {
	tradeProvider trade.Provider
}

func NewTradeService(tradeProvider trade.Provider) ITradeService {
	return &tradeService{tradeProvider: tradeProvider}
}

func (s *tradeService) LookupHSCode(ctx context.Context, product string) (*dto.HSCodeLookupResponse, error) {
	product = strings.TrimSpace(product)
	if product == "" {
		return nil, serverutils.NewValidationError("product is required")
	}

	codes, err := s.tradeProvider.LookupHSCode(ctx, product)
	if err != nil {
		return nil, &serverutils.UpstreamError{Service: "trade data", Err: err}
	}

	results := make([]dto.HSCodeResult, 0, len(codes))
	for _, c := range codes {
		results = append(results, dto.HSCodeResult{
			Code:        c.Code,
			Description: c.Description,
		})
	}

	return &dto.HSCodeLookupResponse{
		Product: product,
		Results: results,
	}, nil
}
