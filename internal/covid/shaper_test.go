package covid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"covidjournal/internal/platform/covid19api"
)

func i64(n int64) *int64 { return &n }

func summary(country string, total, newConfirmed, deaths, newDeaths, recovered, newRecovered int64) covid19api.CountrySummary {
	return covid19api.CountrySummary{
		Country:        country,
		TotalConfirmed: i64(total),
		NewConfirmed:   i64(newConfirmed),
		TotalDeaths:    i64(deaths),
		NewDeaths:      i64(newDeaths),
		TotalRecovered: i64(recovered),
		NewRecovered:   i64(newRecovered),
		Date:           "2021-01-01T00:00:00Z",
	}
}

func TestToWorldTotal(t *testing.T) {
	t.Run("copies counters", func(t *testing.T) {
		got, err := ToWorldTotal(covid19api.WorldTotal{TotalConfirmed: i64(9), TotalDeaths: i64(0), TotalRecovered: i64(5)})
		require.NoError(t, err)
		assert.Equal(t, WorldTotal{TotalConfirmed: 9, TotalDeaths: 0, TotalRecovered: 5}, got)
	})

	t.Run("missing counter", func(t *testing.T) {
		_, err := ToWorldTotal(covid19api.WorldTotal{TotalConfirmed: i64(9), TotalRecovered: i64(5)})
		assert.True(t, errors.Is(err, ErrMalformedPayload), "got %v", err)
		assert.Contains(t, err.Error(), "totalDeaths")
	})
}

func TestToCountryStatusEntry(t *testing.T) {
	t.Run("copies fields verbatim", func(t *testing.T) {
		got, err := ToCountryStatusEntry(covid19api.StatusPoint{Country: "Egypt", Date: "2021-01-01T00:00:00Z", Cases: i64(138062)})
		require.NoError(t, err)
		assert.Equal(t, CountryStatusEntry{Country: "Egypt", Date: "2021-01-01T00:00:00Z", Cases: 138062}, got)
	})

	t.Run("zero cases is valid", func(t *testing.T) {
		got, err := ToCountryStatusEntry(covid19api.StatusPoint{Country: "Egypt", Date: "2020-01-22T00:00:00Z", Cases: i64(0)})
		require.NoError(t, err)
		assert.Zero(t, got.Cases)
	})

	t.Run("missing cases rejected", func(t *testing.T) {
		_, err := ToCountryStatusEntry(covid19api.StatusPoint{Country: "Egypt", Date: "2021-01-01"})
		assert.True(t, errors.Is(err, ErrMalformedPayload))
		assert.Contains(t, err.Error(), "cases")
	})
}

func TestToCountrySummary_AddsNewToTotal(t *testing.T) {
	got, err := ToCountrySummary(summary("Egypt", 100, 3, 10, 1, 80, 2))
	require.NoError(t, err)

	assert.Equal(t, CountrySummary{
		Country:        "Egypt",
		TotalConfirmed: 103,
		TotalDeaths:    11,
		TotalRecovered: 82,
		Date:           "2021-01-01T00:00:00Z",
	}, got)
}

func TestToCountrySummary_MissingField(t *testing.T) {
	raw := summary("Egypt", 1, 1, 1, 1, 1, 1)
	raw.NewRecovered = nil

	_, err := ToCountrySummary(raw)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedPayload))
}

func TestShapeCountryStatus_PreservesOrder(t *testing.T) {
	raws := []covid19api.StatusPoint{
		{Country: "Egypt", Date: "2021-01-03T00:00:00Z", Cases: i64(30)},
		{Country: "Egypt", Date: "2021-01-01T00:00:00Z", Cases: i64(10)},
		{Country: "Egypt", Date: "2021-01-02T00:00:00Z", Cases: i64(20)},
	}

	got, err := ShapeCountryStatus(raws)
	require.NoError(t, err)
	require.Len(t, got, len(raws))
	for i, raw := range raws {
		assert.Equal(t, raw.Date, got[i].Date)
		assert.Equal(t, *raw.Cases, got[i].Cases)
	}
}

func TestShapeCountryStatus_Empty(t *testing.T) {
	got, err := ShapeCountryStatus(nil)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestShapeSummaries(t *testing.T) {
	raws := []covid19api.CountrySummary{
		summary("Egypt", 100, 3, 10, 1, 80, 2),
		summary("Jordan", 0, 0, 0, 0, 0, 0),
		summary("Chile", 1_000_000, 250, 20_000, 5, 900_000, 300),
	}

	got, err := ShapeSummaries(raws)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i, raw := range raws {
		assert.Equal(t, raw.Country, got[i].Country)
		assert.Equal(t, *raw.TotalConfirmed+*raw.NewConfirmed, got[i].TotalConfirmed)
		assert.Equal(t, *raw.TotalDeaths+*raw.NewDeaths, got[i].TotalDeaths)
		assert.Equal(t, *raw.TotalRecovered+*raw.NewRecovered, got[i].TotalRecovered)
	}
}

func TestShapeSummaries_NamesBadElement(t *testing.T) {
	bad := summary("", 1, 1, 1, 1, 1, 1)

	_, err := ShapeSummaries([]covid19api.CountrySummary{summary("Egypt", 1, 1, 1, 1, 1, 1), bad})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedPayload))
	assert.Contains(t, err.Error(), "element 1")
}
