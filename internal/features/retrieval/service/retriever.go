package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"orders-retriever/internal/core/logger"
	"orders-retriever/internal/core/ratelimit"
	ratesservice "orders-retriever/internal/features/rates/service"
	"orders-retriever/internal/features/retrieval/domain"
	"orders-retriever/internal/features/retrieval/ports"
)

// RegionResources bundles what one credential region needs: its credentials,
// the provider adapter reaching its endpoint and the limiter pacing all
// traffic against its quota. Regions never share a limiter.
type RegionResources struct {
	// Credentials authenticate against the region.
	Credentials domain.RegionCredentials
	// Provider is the report provider adapter for the region.
	Provider ports.ReportProvider
	// Limiter paces every request the region issues.
	Limiter *ratelimit.Limiter
}

// Retriever orchestrates single-day order retrievals: it resolves the fetch
// window, pages through the provider under the region's pacing budget and
// assembles the normalized order and item tables.
type Retriever struct {
	regions          map[domain.Region]RegionResources
	converter        *ratesservice.Converter
	timezoneOverride string
}

// NewRetriever creates a Retriever serving the given regions. A non-empty
// timezoneOverride replaces every marketplace's registered timezone when
// resolving windows.
func NewRetriever(regions map[domain.Region]RegionResources, converter *ratesservice.Converter, timezoneOverride string) *Retriever {
	return &Retriever{
		regions:          regions,
		converter:        converter,
		timezoneOverride: timezoneOverride,
	}
}

// RetrieveOrders returns the normalized orders and line items created in one
// marketplace during one yyyy-MM-dd calendar day of the marketplace's
// timezone. Input validation happens before any network call. The result is
// all-or-nothing: on any fault both tables are discarded and a typed error
// describes the stage that failed.
func (r *Retriever) RetrieveOrders(ctx context.Context, marketplaceCode, date string) ([]domain.OrderRecord, []domain.ItemRecord, error) {
	return r.RetrieveOrdersInTimezone(ctx, marketplaceCode, date, r.timezoneOverride)
}

// RetrieveOrdersInTimezone is RetrieveOrders with an explicit timezone for
// resolving the day, taking precedence over both the marketplace's registered
// timezone and the configured override.
func (r *Retriever) RetrieveOrdersInTimezone(ctx context.Context, marketplaceCode, date, timezone string) ([]domain.OrderRecord, []domain.ItemRecord, error) {
	log := logger.Get()

	window, err := domain.ResolveWindow(marketplaceCode, date, timezone)
	if err != nil {
		return nil, nil, err
	}

	marketplace, ok := domain.MarketplaceByCode(marketplaceCode)
	if !ok {
		return nil, nil, &domain.ConfigurationError{
			Subject: "marketplace",
			Reason:  fmt.Sprintf("unknown marketplace code %q", marketplaceCode),
		}
	}

	res, ok := r.regions[marketplace.Region]
	if !ok {
		return nil, nil, &domain.ConfigurationError{
			Subject: "region",
			Reason:  fmt.Sprintf("no credentials configured for region %s", marketplace.Region),
		}
	}

	log.Info("starting retrieval",
		zap.String("marketplace", marketplace.Code),
		zap.String("date", date),
		zap.Time("window_start", window.Start),
		zap.Time("window_end", window.End),
	)

	pages, err := r.fetchAll(ctx, res, marketplace, window)
	if err != nil {
		return nil, nil, err
	}

	orders, items, err := r.assemble(ctx, pages, date)
	if err != nil {
		return nil, nil, err
	}

	log.Info("retrieval complete",
		zap.String("marketplace", marketplace.Code),
		zap.String("date", date),
		zap.Int("pages", len(pages)),
		zap.Int("orders", len(orders)),
		zap.Int("items", len(items)),
	)
	return orders, items, nil
}
