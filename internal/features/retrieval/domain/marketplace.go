package domain

import "strings"

// Region identifies one credential and quota scope of the provider. Every
// marketplace belongs to exactly one region, and marketplaces of the same
// region share the region's credentials and pacing budget.
type Region string

const (
	// RegionNorthAmerica covers the US, CA, MX and BR marketplaces.
	RegionNorthAmerica Region = "NA"
	// RegionEurope covers the European marketplaces plus TR, AE and IN.
	RegionEurope Region = "EU"
)

// RegionCredentials carries what one region needs to reach the provider.
type RegionCredentials struct {
	// Endpoint is the base URL of the region's API host.
	Endpoint string
	// AccessToken authenticates every request against the region.
	AccessToken string
}

// Marketplace describes one country-level storefront of the provider.
type Marketplace struct {
	// Code is the two-letter marketplace code used by callers.
	Code string
	// Region is the credential region the marketplace is served from.
	Region Region
	// Timezone is the IANA name of the marketplace's business-day timezone.
	Timezone string
	// ID is the provider marketplace identifier sent on fetch requests.
	ID string
}

var marketplaces = map[string]Marketplace{
	"US": {Code: "US", Region: RegionNorthAmerica, Timezone: "America/Los_Angeles", ID: "ATVPDKIKX0DER"},
	"CA": {Code: "CA", Region: RegionNorthAmerica, Timezone: "America/Los_Angeles", ID: "A2EUQ1WTGCTBG2"},
	"MX": {Code: "MX", Region: RegionNorthAmerica, Timezone: "America/Los_Angeles", ID: "A1AM78C64UM0Y8"},
	"BR": {Code: "BR", Region: RegionNorthAmerica, Timezone: "America/Sao_Paulo", ID: "A2Q3Y263D00KWC"},
	"ES": {Code: "ES", Region: RegionEurope, Timezone: "Europe/Paris", ID: "A1RKKUPIHCS9HS"},
	"GB": {Code: "GB", Region: RegionEurope, Timezone: "Europe/London", ID: "A1F83G8C2ARO7P"},
	"FR": {Code: "FR", Region: RegionEurope, Timezone: "Europe/Paris", ID: "A13V1IB3VIYZZH"},
	"NL": {Code: "NL", Region: RegionEurope, Timezone: "Europe/Paris", ID: "A1805IZSGTT6HS"},
	"DE": {Code: "DE", Region: RegionEurope, Timezone: "Europe/Paris", ID: "A1PA6795UKMFR9"},
	"IT": {Code: "IT", Region: RegionEurope, Timezone: "Europe/Paris", ID: "APJ6JRA9NG5V4"},
	"SE": {Code: "SE", Region: RegionEurope, Timezone: "Europe/Paris", ID: "A2NODRKZP88ZB9"},
	"TR": {Code: "TR", Region: RegionEurope, Timezone: "Europe/Paris", ID: "A33AVAJ2PDY3EV"},
	"AE": {Code: "AE", Region: RegionEurope, Timezone: "Europe/Paris", ID: "A2VIGQ35RCS4UG"},
	"IN": {Code: "IN", Region: RegionEurope, Timezone: "Asia/Kolkata", ID: "A21TJRUUN4KGV"},
}

// MarketplaceByCode returns the registered marketplace for a code. Codes are
// case-insensitive and the legacy "UK" alias resolves to GB.
func MarketplaceByCode(code string) (Marketplace, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "UK" {
		normalized = "GB"
	}
	mp, ok := marketplaces[normalized]
	return mp, ok
}

// MarketplaceCodes returns every registered marketplace code, for diagnostics.
func MarketplaceCodes() []string {
	codes := make([]string, 0, len(marketplaces))
	for code := range marketplaces {
		codes = append(codes, code)
	}
	return codes
}
