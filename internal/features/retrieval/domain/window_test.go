package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveWindow_USWinterDay(t *testing.T) {
	window, err := ResolveWindow("US", "2021-02-01", "")

	require.NoError(t, err)
	assert.Equal(t, time.Date(2021, 2, 1, 8, 0, 0, 0, time.UTC), window.Start)
	assert.Equal(t, time.Date(2021, 2, 2, 8, 0, 0, 0, time.UTC), window.End)
}

func TestResolveWindow_GermanyUsesParisTime(t *testing.T) {
	window, err := ResolveWindow("DE", "2021-02-01", "")

	require.NoError(t, err)
	assert.Equal(t, time.Date(2021, 1, 31, 23, 0, 0, 0, time.UTC), window.Start)
	assert.Equal(t, time.Date(2021, 2, 1, 23, 0, 0, 0, time.UTC), window.End)
}

func TestResolveWindow_IndiaHalfHourOffset(t *testing.T) {
	window, err := ResolveWindow("IN", "2021-02-01", "")

	require.NoError(t, err)
	assert.Equal(t, time.Date(2021, 1, 31, 18, 30, 0, 0, time.UTC), window.Start)
	assert.Equal(t, time.Date(2021, 2, 1, 18, 30, 0, 0, time.UTC), window.End)
}

func TestResolveWindow_DaylightSavingDayIsShorter(t *testing.T) {
	// US clocks jump forward on 2021-03-14, so that local day has 23 hours.
	window, err := ResolveWindow("US", "2021-03-14", "")

	require.NoError(t, err)
	assert.Equal(t, 23*time.Hour, window.End.Sub(window.Start))
}

func TestResolveWindow_MalformedDate(t *testing.T) {
	_, err := ResolveWindow("US", "02/01/2021", "")

	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "date", inputErr.Field)
}

func TestResolveWindow_ImpossibleCalendarDay(t *testing.T) {
	_, err := ResolveWindow("US", "2021-02-30", "")

	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
}

func TestResolveWindow_UnknownMarketplaceWithoutOverride(t *testing.T) {
	_, err := ResolveWindow("XX", "2021-02-01", "")

	var confErr *ConfigurationError
	require.ErrorAs(t, err, &confErr)
	assert.Equal(t, "marketplace", confErr.Subject)
}

func TestResolveWindow_OverrideResolvesUnknownMarketplace(t *testing.T) {
	window, err := ResolveWindow("XX", "2021-02-01", "UTC")

	require.NoError(t, err)
	assert.Equal(t, time.Date(2021, 2, 1, 0, 0, 0, 0, time.UTC), window.Start)
	assert.Equal(t, time.Date(2021, 2, 2, 0, 0, 0, 0, time.UTC), window.End)
}

func TestResolveWindow_OverrideBeatsRegisteredTimezone(t *testing.T) {
	window, err := ResolveWindow("US", "2021-02-01", "UTC")

	require.NoError(t, err)
	assert.Equal(t, time.Date(2021, 2, 1, 0, 0, 0, 0, time.UTC), window.Start)
}

func TestResolveWindow_InvalidOverride(t *testing.T) {
	_, err := ResolveWindow("US", "2021-02-01", "Mars/Olympus_Mons")

	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "timezone", inputErr.Field)
}
