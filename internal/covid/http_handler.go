package covid

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"covidjournal/internal/view"
)

type HTTPHandler struct {
	service  *Service
	renderer view.Renderer
}

func NewHTTPHandler(service *Service, renderer view.Renderer) *HTTPHandler {
	return &HTTPHandler{service: service, renderer: renderer}
}

type homePage struct {
	World WorldTotal
}

type countryResultPage struct {
	Query   StatusQuery
	Entries []CountryStatusEntry
}

type allCountriesPage struct {
	Countries []CountrySummary
}

// Home handles GET /
func (h *HTTPHandler) Home(w http.ResponseWriter, r *http.Request) {
	world, err := h.service.WorldTotal(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.renderer.Render(w, http.StatusOK, "home", homePage{World: world})
}

// CountryResult handles GET /getCountryResult?country=&from=&to=
func (h *HTTPHandler) CountryResult(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	q := StatusQuery{
		Country: query.Get("country"),
		From:    query.Get("from"),
		To:      query.Get("to"),
	}

	entries, err := h.service.CountryStatus(r.Context(), q)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.renderer.Render(w, http.StatusOK, "getCountryResult", countryResultPage{Query: q, Entries: entries})
}

// AllCountries handles GET /allCountries
func (h *HTTPHandler) AllCountries(w http.ResponseWriter, r *http.Request) {
	countries, err := h.service.AllCountries(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.renderer.Render(w, http.StatusOK, "allCountries", allCountriesPage{Countries: countries})
}

func (h *HTTPHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, ErrInvalidQuery) {
		h.renderer.Error(w, r, http.StatusBadRequest, err.Error())
		return
	}
	zerolog.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("upstream request failed")
	h.renderer.Error(w, r, http.StatusBadGateway, "The statistics service could not be reached. Please try again later.")
}
