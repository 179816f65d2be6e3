package covid

import (
	"fmt"

	"covidjournal/internal/platform/covid19api"
	"covidjournal/internal/platform/validation"
)

func ToWorldTotal(raw covid19api.WorldTotal) (WorldTotal, error) {
	if errs := validation.Struct(raw); errs != nil {
		return WorldTotal{}, fmt.Errorf("%w: %s", ErrMalformedPayload, validation.Join(errs))
	}
	return WorldTotal{
		TotalConfirmed: *raw.TotalConfirmed,
		TotalDeaths:    *raw.TotalDeaths,
		TotalRecovered: *raw.TotalRecovered,
	}, nil
}

func ToCountryStatusEntry(raw covid19api.StatusPoint) (CountryStatusEntry, error) {
	if errs := validation.Struct(raw); errs != nil {
		return CountryStatusEntry{}, fmt.Errorf("%w: %s", ErrMalformedPayload, validation.Join(errs))
	}
	return CountryStatusEntry{
		Country: raw.Country,
		Date:    raw.Date,
		Cases:   *raw.Cases,
	}, nil
}

func ToCountrySummary(raw covid19api.CountrySummary) (CountrySummary, error) {
	if errs := validation.Struct(raw); errs != nil {
		return CountrySummary{}, fmt.Errorf("%w: %s", ErrMalformedPayload, validation.Join(errs))
	}
	return CountrySummary{
		Country:        raw.Country,
		TotalConfirmed: *raw.TotalConfirmed + *raw.NewConfirmed,
		TotalDeaths:    *raw.TotalDeaths + *raw.NewDeaths,
		TotalRecovered: *raw.TotalRecovered + *raw.NewRecovered,
		Date:           raw.Date,
	}, nil
}

// ShapeCountryStatus maps every element in order. The first malformed
// element fails the whole result.
func ShapeCountryStatus(raws []covid19api.StatusPoint) ([]CountryStatusEntry, error) {
	out := make([]CountryStatusEntry, 0, len(raws))
	for i, raw := range raws {
		entry, err := ToCountryStatusEntry(raw)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out = append(out, entry)
	}
	return out, nil
}

func ShapeSummaries(raws []covid19api.CountrySummary) ([]CountrySummary, error) {
	out := make([]CountrySummary, 0, len(raws))
	for i, raw := range raws {
		summary, err := ToCountrySummary(raw)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out = append(out, summary)
	}
	return out, nil
}
