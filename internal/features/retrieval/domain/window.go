package domain

import (
	"fmt"
	"time"
)

// dateLayout is the only accepted shape for the day parameter.
const dateLayout = "2006-01-02"

// FetchWindow is the half-open UTC interval [Start, End) covering one local
// calendar day of a marketplace.
type FetchWindow struct {
	// Start is the marketplace-local midnight opening the day, in UTC.
	Start time.Time
	// End is the marketplace-local midnight closing the day, in UTC.
	End time.Time
}

// ResolveWindow maps a marketplace code and a yyyy-MM-dd day to the UTC
// window spanning that day in the marketplace's timezone. A non-empty
// timezoneOverride replaces the marketplace's registered timezone; with an
// override set an unknown marketplace code still resolves.
//
// A window always runs from local midnight to the next local midnight, so on
// daylight-saving transition days it is 23 or 25 hours long.
func ResolveWindow(code, date, timezoneOverride string) (FetchWindow, error) {
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return FetchWindow{}, &InputError{
			Field:  "date",
			Reason: fmt.Sprintf("%q is not a valid yyyy-MM-dd calendar day", date),
		}
	}

	tzName := timezoneOverride
	if tzName == "" {
		mp, ok := MarketplaceByCode(code)
		if !ok {
			return FetchWindow{}, &ConfigurationError{
				Subject: "marketplace",
				Reason:  fmt.Sprintf("unknown marketplace code %q and no timezone override set", code),
			}
		}
		tzName = mp.Timezone
	}

	loc, err := time.LoadLocation(tzName)
	if err != nil {
		if timezoneOverride != "" {
			return FetchWindow{}, &InputError{
				Field:  "timezone",
				Reason: fmt.Sprintf("unknown IANA timezone %q", tzName),
			}
		}
		return FetchWindow{}, &ConfigurationError{
			Subject: "timezone",
			Reason:  fmt.Sprintf("registered timezone %q cannot be loaded", tzName),
		}
	}

	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)
	end := time.Date(day.Year(), day.Month(), day.Day()+1, 0, 0, 0, 0, loc)
	return FetchWindow{Start: start.UTC(), End: end.UTC()}, nil
}
