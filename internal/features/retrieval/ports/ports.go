package ports

import (
	"context"

	"orders-retriever/internal/features/retrieval/domain"
)

// ReportProvider defines the order-report capability of the remote provider.
// This is a Secondary Port (Driven Port). Implementations own their transport
// details; callers own the pacing of FetchPage calls.
type ReportProvider interface {
	// FetchPage retrieves one page of raw orders, with their line items,
	// created inside window. An empty continuationToken requests the first
	// page; the returned page carries the token for the next one, empty when
	// the page is the last.
	FetchPage(ctx context.Context, creds domain.RegionCredentials, marketplace domain.Marketplace, window domain.FetchWindow, continuationToken string) (*domain.RawPage, error)

	// CheckAccess verifies that the credentials can reach the provider. Used
	// at startup as a non-fatal probe.
	CheckAccess(ctx context.Context, creds domain.RegionCredentials, marketplace domain.Marketplace) error
}
