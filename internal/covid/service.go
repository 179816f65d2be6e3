package covid

import (
	"context"
	"fmt"

	"covidjournal/internal/platform/covid19api"
	"covidjournal/internal/platform/validation"
)

//go:generate mockgen -source=service.go -destination=mock_upstream_test.go -package=covid

// Upstream is the statistics API as seen by the service.
type Upstream interface {
	WorldTotal(ctx context.Context) (*covid19api.WorldTotal, error)
	CountryStatus(ctx context.Context, country, from, to string) ([]covid19api.StatusPoint, error)
	Summary(ctx context.Context) (*covid19api.SummaryResponse, error)
}

// Service provides the read-only statistics pages.
type Service struct {
	api Upstream
}

func NewService(api Upstream) *Service {
	return &Service{api: api}
}

func (s *Service) WorldTotal(ctx context.Context) (WorldTotal, error) {
	res, err := s.api.WorldTotal(ctx)
	if err != nil {
		return WorldTotal{}, fmt.Errorf("fetch world total: %w", err)
	}
	return ToWorldTotal(*res)
}

// CountryStatus returns one entry per upstream element, in upstream order.
func (s *Service) CountryStatus(ctx context.Context, q StatusQuery) ([]CountryStatusEntry, error) {
	if errs := validation.Struct(q); errs != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidQuery, validation.Join(errs))
	}
	if q.To < q.From {
		return nil, fmt.Errorf("%w: to must not be before from", ErrInvalidQuery)
	}

	res, err := s.api.CountryStatus(ctx, q.Country, q.From, q.To)
	if err != nil {
		return nil, fmt.Errorf("fetch country status: %w", err)
	}
	return ShapeCountryStatus(res)
}

func (s *Service) AllCountries(ctx context.Context) ([]CountrySummary, error) {
	res, err := s.api.Summary(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch summary: %w", err)
	}
	return ShapeSummaries(res.Countries)
}
