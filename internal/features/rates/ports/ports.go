package ports

import "context"

// Repository defines the interface for conversion rate lookups.
// This is a Secondary Port (Driven Port); implementations may serve rates
// from a static table, a cache, or an external rate service.
type Repository interface {
	// Rate returns the factor converting an amount in the given currency on
	// the given yyyy-MM-dd day into the reporting currency. A missing
	// (date, currency) pair fails with domain.MissingRateError.
	Rate(ctx context.Context, date, currency string) (float64, error)
}
