package service

import (
	"context"

	"go.uber.org/zap"

	"orders-retriever/internal/core/logger"
	"orders-retriever/internal/features/retrieval/domain"
)

// fetchAll drives the paging loop for one marketplace and window. Every page
// request waits on the region limiter first, so a retrieval can never exceed
// the region's pacing budget no matter how many pages the day has. On the
// first fault the loop aborts and every already-fetched page is discarded.
func (r *Retriever) fetchAll(ctx context.Context, res RegionResources, marketplace domain.Marketplace, window domain.FetchWindow) ([]domain.RawPage, error) {
	log := logger.Get()

	var pages []domain.RawPage
	token := ""
	for {
		if err := res.Limiter.Acquire(ctx); err != nil {
			return nil, err
		}

		page, err := res.Provider.FetchPage(ctx, res.Credentials, marketplace, window, token)
		if err != nil {
			return nil, &domain.RetrievalError{Marketplace: marketplace.Code, Cause: err}
		}
		pages = append(pages, *page)

		log.Debug("fetched page",
			zap.String("marketplace", marketplace.Code),
			zap.Int("page", len(pages)),
			zap.Int("orders", len(page.Orders)),
			zap.Int("items", len(page.Items)),
			zap.Bool("more", page.NextToken != ""),
		)

		if page.NextToken == "" {
			return pages, nil
		}
		token = page.NextToken
	}
}
