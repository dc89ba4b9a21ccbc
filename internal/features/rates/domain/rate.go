package domain

import "fmt"

// Money is a monetary amount in its original provider currency.
type Money struct {
	// Amount is the value in the original currency.
	Amount float64 `json:"amount"`
	// CurrencyCode is the ISO currency code reported by the provider (e.g., USD, EUR).
	CurrencyCode string `json:"currency_code"`
}

// Key identifies one conversion factor: a calendar day plus the original currency.
type Key struct {
	// Date is the yyyy-MM-dd calendar day the rate applies to.
	Date string
	// Currency is the ISO code of the original currency.
	Currency string
}

// Table maps (date, currency) to the positive factor that converts an amount
// into the reporting currency. Lookups for a missing pair fail with
// MissingRateError; a silently substituted factor would corrupt totals.
type Table map[Key]float64

// Rate returns the conversion factor for the given day and currency.
func (t Table) Rate(date, currency string) (float64, error) {
	rate, ok := t[Key{Date: date, Currency: currency}]
	if !ok {
		return 0, &MissingRateError{Date: date, Currency: currency}
	}
	return rate, nil
}

// Validate checks that every factor in the table is positive.
func (t Table) Validate() error {
	for key, rate := range t {
		if rate <= 0 {
			return fmt.Errorf("conversion rate for %s on %s must be positive, got %v", key.Currency, key.Date, rate)
		}
	}
	return nil
}

// MissingRateError reports a conversion lookup for a (date, currency) pair
// that has no entry in the rate table.
type MissingRateError struct {
	// Date is the yyyy-MM-dd day of the failed lookup.
	Date string
	// Currency is the ISO code of the failed lookup.
	Currency string
}

// Error implements the error interface.
func (e *MissingRateError) Error() string {
	return fmt.Sprintf("no conversion rate for currency %s on %s", e.Currency, e.Date)
}
