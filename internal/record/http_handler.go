package record

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"covidjournal/internal/view"
)

// ListPath is where every successful write redirects to.
const ListPath = "/myRecords"

type HTTPHandler struct {
	service  *Service
	renderer view.Renderer
}

func NewHTTPHandler(service *Service, renderer view.Renderer) *HTTPHandler {
	return &HTTPHandler{service: service, renderer: renderer}
}

type listPage struct {
	Records []Record
}

// detailsPage.Record is nil when the id matched nothing.
type detailsPage struct {
	Record *Record
}

// Create handles POST /myRecords
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderer.Error(w, r, http.StatusBadRequest, "Invalid form body")
		return
	}

	rec, err := parseForm(r)
	if err == nil {
		_, err = h.service.Create(r.Context(), rec)
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}
	http.Redirect(w, r, ListPath, http.StatusSeeOther)
}

// List handles GET /myRecords
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.List(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.renderer.Render(w, http.StatusOK, "myRecords", listPage{Records: records})
}

// Details handles GET /details/{id}. An unknown id renders the page with no
// record rather than a 404.
func (h *HTTPHandler) Details(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	rec, err := h.service.Get(r.Context(), id)
	switch {
	case errors.Is(err, ErrNotFound):
		h.renderer.Render(w, http.StatusOK, "details", detailsPage{})
	case err != nil:
		h.fail(w, r, err)
	default:
		h.renderer.Render(w, http.StatusOK, "details", detailsPage{Record: &rec})
	}
}

// Delete handles DELETE /details/{id}
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	http.Redirect(w, r, ListPath, http.StatusSeeOther)
}

func (h *HTTPHandler) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.renderer.Error(w, r, http.StatusBadRequest, fmt.Sprintf("Invalid record id %q", raw))
		return 0, false
	}
	return id, true
}

func (h *HTTPHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, ErrInvalidForm) {
		h.renderer.Error(w, r, http.StatusBadRequest, err.Error())
		return
	}
	zerolog.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("record store failed")
	h.renderer.Error(w, r, http.StatusInternalServerError, "Internal server error")
}

func parseForm(r *http.Request) (NewRecord, error) {
	rec := NewRecord{
		Country: strings.TrimSpace(r.PostFormValue("country")),
		Date:    strings.TrimSpace(r.PostFormValue("date")),
	}

	var bad []string
	counts := []struct {
		field string
		dst   *int64
	}{
		{"totalConfirmed", &rec.TotalConfirmed},
		{"totalDeaths", &rec.TotalDeaths},
		{"totalRecovered", &rec.TotalRecovered},
	}
	for _, c := range counts {
		n, err := strconv.ParseInt(strings.TrimSpace(r.PostFormValue(c.field)), 10, 64)
		if err != nil {
			bad = append(bad, c.field+": must be a whole number")
			continue
		}
		*c.dst = n
	}
	if len(bad) > 0 {
		return NewRecord{}, fmt.Errorf("%w: %s", ErrInvalidForm, strings.Join(bad, "; "))
	}
	return rec, nil
}
