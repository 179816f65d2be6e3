package covid

import "errors"

var (
	// ErrInvalidQuery is returned when a country lookup is missing a field
	// or carries a malformed date.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrMalformedPayload is returned when an upstream element lacks a
	// required field.
	ErrMalformedPayload = errors.New("malformed upstream payload")
)

// WorldTotal holds the aggregate counters shown on the home page.
type WorldTotal struct {
	TotalConfirmed int64
	TotalDeaths    int64
	TotalRecovered int64
}

// CountryStatusEntry is one day of confirmed cases for a country.
type CountryStatusEntry struct {
	Country string
	Date    string
	Cases   int64
}

// CountrySummary is the per-country total shown on the all-countries page.
// Each total is the upstream cumulative value plus the upstream "new" value.
type CountrySummary struct {
	Country        string
	TotalConfirmed int64
	TotalDeaths    int64
	TotalRecovered int64
	Date           string
}

// StatusQuery selects a country and an inclusive range of calendar dates.
type StatusQuery struct {
	Country string `validate:"required"`
	From    string `validate:"required,datetime=2006-01-02"`
	To      string `validate:"required,datetime=2006-01-02"`
}
