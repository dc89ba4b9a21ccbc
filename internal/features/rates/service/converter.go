package service

import (
	"context"

	"orders-retriever/internal/features/rates/domain"
	"orders-retriever/internal/features/rates/ports"
)

// Converter normalizes monetary amounts into the reporting currency using a
// rate repository.
type Converter struct {
	// repo is the interface for conversion rate lookups.
	repo ports.Repository
}

// NewConverter creates a new instance of Converter.
func NewConverter(repo ports.Repository) *Converter {
	return &Converter{
		repo: repo,
	}
}

// Convert returns money normalized to the reporting currency using the rate
// registered for the given yyyy-MM-dd day. An absent amount stays absent
// (nil in, nil out); a missing rate fails with domain.MissingRateError and
// is never substituted with a default factor. No rounding is applied.
func (c *Converter) Convert(ctx context.Context, money *domain.Money, date string) (*float64, error) {
	if money == nil {
		return nil, nil
	}

	rate, err := c.repo.Rate(ctx, date, money.CurrencyCode)
	if err != nil {
		return nil, err
	}

	normalized := money.Amount * rate
	return &normalized, nil
}
