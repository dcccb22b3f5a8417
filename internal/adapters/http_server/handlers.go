package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"atlas_travel/internal/app"
	"atlas_travel/internal/domain"
)

type Handlers struct {
	Catalog    *app.Catalog
	Admin      *app.Admin
	AdminKey   string
	QuoteLimit *rate.Limiter
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Route("/v1", func(r chi.Router) {
		r.Get("/destinations", h.listDestinations)
		r.Get("/destinations/{id}", h.getDestination)
		r.Get("/destinations/{id}/places", h.listDestinationPlaces)
		r.Get("/hotels/featured", h.listFeaturedHotels)
		r.Get("/hotels/{id}", h.getHotel)
		r.With(RateLimit(h.QuoteLimit)).Post("/quotes", h.submitQuote)
	})

	s.mux.Route("/admin/v1", func(r chi.Router) {
		r.Use(APIKey(h.AdminKey))
		h.mountAdmin(r)
	})
}

func writeProblem(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	p := problem{Type: "about:blank", Title: http.StatusText(status), Status: status, Detail: detail}
	if err := json.NewEncoder(w).Encode(p); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// writeError maps service errors onto problem responses.
func writeError(w http.ResponseWriter, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		writeProblem(w, http.StatusUnprocessableEntity, verrs.Error())
		return
	}
	switch domain.Kind(err) {
	case domain.KindNotFound:
		writeProblem(w, http.StatusNotFound, err.Error())
	case domain.KindAlreadyExists:
		writeProblem(w, http.StatusConflict, err.Error())
	case domain.KindPermissionDenied:
		writeProblem(w, http.StatusForbidden, err.Error())
	default:
		log.Error().Err(err).Msg("unhandled service error")
		writeProblem(w, http.StatusInternalServerError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(http.MaxBytesReader(nil, r.Body, 1<<20)).Decode(v)
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// writeCached answers public reads with a weak ETag and honors If-None-Match.
func writeCached(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}

// ---- public catalog handlers ----

func (h *Handlers) listDestinations(w http.ResponseWriter, r *http.Request) {
	out, err := h.Catalog.ActiveDestinations(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeCached(w, r, out)
}

func (h *Handlers) getDestination(w http.ResponseWriter, r *http.Request) {
	out, err := h.Catalog.Destination(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeCached(w, r, out)
}

func (h *Handlers) listDestinationPlaces(w http.ResponseWriter, r *http.Request) {
	out, err := h.Catalog.PlacesFor(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeCached(w, r, out)
}

func (h *Handlers) listFeaturedHotels(w http.ResponseWriter, r *http.Request) {
	out, err := h.Catalog.FeaturedHotels(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeCached(w, r, out)
}

func (h *Handlers) getHotel(w http.ResponseWriter, r *http.Request) {
	out, err := h.Catalog.Hotel(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeCached(w, r, out)
}

func (h *Handlers) submitQuote(w http.ResponseWriter, r *http.Request) {
	var q domain.QuoteRequest
	if err := decodeJSON(r, &q); err != nil {
		writeProblem(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	created, err := h.Admin.SubmitQuote(r.Context(), q)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func parseBoolParam(r *http.Request, name string) (*bool, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
