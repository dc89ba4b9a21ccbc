package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"orders-retriever/internal/features/rates/domain"
)

// StaticRepository serves conversion rates from an in-memory table.
type StaticRepository struct {
	table domain.Table
}

// NewStaticRepository creates a StaticRepository over the given table.
func NewStaticRepository(table domain.Table) *StaticRepository {
	return &StaticRepository{table: table}
}

// Rate implements ports.Repository.
func (r *StaticRepository) Rate(_ context.Context, date, currency string) (float64, error) {
	return r.table.Rate(date, currency)
}

// LoadTable reads a rate table from a JSON file shaped as
// {"2021-02-01": {"USD": 1.0, "EUR": 1.21}, ...} and validates it.
func LoadTable(path string) (domain.Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rates file: %w", err)
	}

	var byDate map[string]map[string]float64
	if err := json.Unmarshal(raw, &byDate); err != nil {
		return nil, fmt.Errorf("failed to parse rates file %s: %w", path, err)
	}

	table := make(domain.Table)
	for date, currencies := range byDate {
		for currency, rate := range currencies {
			table[domain.Key{Date: date, Currency: currency}] = rate
		}
	}

	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rates file %s: %w", path, err)
	}

	return table, nil
}
