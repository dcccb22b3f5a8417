package httpserver

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"atlas_travel/internal/app"
	"atlas_travel/internal/domain"
)

const maxImageBytes = 10 << 20

func (h *Handlers) mountAdmin(r chi.Router) {
	r.Get("/countries", h.adminListCountries)

	r.Route("/hotels", func(r chi.Router) {
		r.Get("/", h.adminListHotels)
		r.Post("/", h.adminCreateHotel)
		r.Get("/{id}", h.adminGetHotel)
		r.Patch("/{id}", h.adminUpdateHotel)
		r.Delete("/{id}", h.adminDeleteHotel)
	})

	r.Route("/trips", func(r chi.Router) {
		r.Get("/", h.adminListTrips)
		r.Post("/", h.adminCreateTrip)
		r.Get("/{id}", h.adminGetTrip)
		r.Patch("/{id}", h.adminUpdateTrip)
		r.Delete("/{id}", h.adminDeleteTrip)
	})

	r.Route("/destinations", func(r chi.Router) {
		r.Get("/", h.adminListDestinations)
		r.Post("/", h.adminCreateDestination)
		r.Get("/{id}", h.adminGetDestination)
		r.Patch("/{id}", h.adminUpdateDestination)
		r.Delete("/{id}", h.adminDeleteDestination)
		r.Post("/{id}/move", h.adminMoveDestination)
	})

	r.Route("/places", func(r chi.Router) {
		r.Get("/", h.adminListPlaces)
		r.Post("/", h.adminCreatePlace)
		r.Get("/{id}", h.adminGetPlace)
		r.Patch("/{id}", h.adminUpdatePlace)
		r.Delete("/{id}", h.adminDeletePlace)
		r.Post("/{id}/move", h.adminMovePlace)
	})

	r.Route("/quotes", func(r chi.Router) {
		r.Get("/", h.adminListQuotes)
		r.Post("/", h.adminCreateQuote)
		r.Get("/{id}", h.adminGetQuote)
		r.Patch("/{id}/status", h.adminSetQuoteStatus)
		r.Delete("/{id}", h.adminDeleteQuote)
	})

	r.Post("/images/{entity}", h.adminUploadImage)
}

func (h *Handlers) adminListCountries(w http.ResponseWriter, r *http.Request) {
	out, err := h.Admin.Countries(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// ---- hotels ----

func (h *Handlers) adminListHotels(w http.ResponseWriter, r *http.Request) {
	out, err := h.Admin.Hotels(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) adminGetHotel(w http.ResponseWriter, r *http.Request) {
	out, err := h.Admin.Hotel(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) adminCreateHotel(w http.ResponseWriter, r *http.Request) {
	var in domain.Hotel
	if err := decodeJSON(r, &in); err != nil {
		writeProblem(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	out, err := h.Admin.CreateHotel(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

func (h *Handlers) adminUpdateHotel(w http.ResponseWriter, r *http.Request) {
	var p domain.HotelPatch
	if err := decodeJSON(r, &p); err != nil {
		writeProblem(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := h.Admin.UpdateHotel(r.Context(), chi.URLParam(r, "id"), p); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) adminDeleteHotel(w http.ResponseWriter, r *http.Request) {
	if err := h.Admin.DeleteHotel(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---- trips ----

func (h *Handlers) adminListTrips(w http.ResponseWriter, r *http.Request) {
	out, err := h.Admin.Trips(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) adminGetTrip(w http.ResponseWriter, r *http.Request) {
	out, err := h.Admin.Trip(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) adminCreateTrip(w http.ResponseWriter, r *http.Request) {
	var in domain.Trip
	if err := decodeJSON(r, &in); err != nil {
		writeProblem(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	out, err := h.Admin.CreateTrip(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

func (h *Handlers) adminUpdateTrip(w http.ResponseWriter, r *http.Request) {
	var p domain.TripPatch
	if err := decodeJSON(r, &p); err != nil {
		writeProblem(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := h.Admin.UpdateTrip(r.Context(), chi.URLParam(r, "id"), p); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) adminDeleteTrip(w http.ResponseWriter, r *http.Request) {
	if err := h.Admin.DeleteTrip(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---- destinations ----

func (h *Handlers) adminListDestinations(w http.ResponseWriter, r *http.Request) {
	out, err := h.Admin.Destinations(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) adminGetDestination(w http.ResponseWriter, r *http.Request) {
	out, err := h.Admin.Destination(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) adminCreateDestination(w http.ResponseWriter, r *http.Request) {
	var in domain.Destination
	if err := decodeJSON(r, &in); err != nil {
		writeProblem(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	out, err := h.Admin.CreateDestination(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

func (h *Handlers) adminUpdateDestination(w http.ResponseWriter, r *http.Request) {
	var p domain.DestinationPatch
	if err := decodeJSON(r, &p); err != nil {
		writeProblem(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := h.Admin.UpdateDestination(r.Context(), chi.URLParam(r, "id"), p); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) adminDeleteDestination(w http.ResponseWriter, r *http.Request) {
	if err := h.Admin.DeleteDestination(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type moveRequest struct {
	Dir string `json:"dir"`
}

func parseMoveDir(r *http.Request) (app.MoveDir, bool) {
	var body moveRequest
	if err := decodeJSON(r, &body); err != nil {
		return "", false
	}
	switch app.MoveDir(body.Dir) {
	case app.MoveUp, app.MoveDown:
		return app.MoveDir(body.Dir), true
	}
	return "", false
}

func (h *Handlers) adminMoveDestination(w http.ResponseWriter, r *http.Request) {
	dir, ok := parseMoveDir(r)
	if !ok {
		writeProblem(w, http.StatusBadRequest, `dir must be "up" or "down"`)
		return
	}
	if err := h.Admin.MoveDestination(r.Context(), chi.URLParam(r, "id"), dir); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---- recommended places ----

func (h *Handlers) adminListPlaces(w http.ResponseWriter, r *http.Request) {
	out, err := h.Admin.Places(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) adminGetPlace(w http.ResponseWriter, r *http.Request) {
	out, err := h.Admin.Place(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) adminCreatePlace(w http.ResponseWriter, r *http.Request) {
	var in domain.RecommendedPlace
	if err := decodeJSON(r, &in); err != nil {
		writeProblem(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	out, err := h.Admin.CreatePlace(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

func (h *Handlers) adminUpdatePlace(w http.ResponseWriter, r *http.Request) {
	var p domain.PlacePatch
	if err := decodeJSON(r, &p); err != nil {
		writeProblem(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := h.Admin.UpdatePlace(r.Context(), chi.URLParam(r, "id"), p); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) adminDeletePlace(w http.ResponseWriter, r *http.Request) {
	if err := h.Admin.DeletePlace(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) adminMovePlace(w http.ResponseWriter, r *http.Request) {
	dir, ok := parseMoveDir(r)
	if !ok {
		writeProblem(w, http.StatusBadRequest, `dir must be "up" or "down"`)
		return
	}
	if err := h.Admin.MovePlace(r.Context(), chi.URLParam(r, "id"), dir); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---- quote requests ----

func (h *Handlers) adminListQuotes(w http.ResponseWriter, r *http.Request) {
	quoted, err := parseBoolParam(r, "quoted")
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "quoted must be true or false")
		return
	}
	out, err := h.Admin.Quotes(r.Context(), domain.QuoteFilter{Quoted: quoted})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// adminCreateQuote records a request taken over phone or email; it goes
// through the same path as the public form, so it starts unquoted.
func (h *Handlers) adminCreateQuote(w http.ResponseWriter, r *http.Request) {
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

func (h *Handlers) adminGetQuote(w http.ResponseWriter, r *http.Request) {
	out, err := h.Admin.Quote(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) adminSetQuoteStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		IsQuoted *bool `json:"isQuoted"`
	}
	if err := decodeJSON(r, &body); err != nil || body.IsQuoted == nil {
		writeProblem(w, http.StatusBadRequest, "isQuoted is required")
		return
	}
	if err := h.Admin.SetQuoted(r.Context(), chi.URLParam(r, "id"), *body.IsQuoted); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) adminDeleteQuote(w http.ResponseWriter, r *http.Request) {
	if err := h.Admin.DeleteQuote(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---- image upload ----

func (h *Handlers) adminUploadImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		writeProblem(w, http.StatusBadRequest, "expected multipart form with a file field")
		return
	}
	f, hdr, err := r.FormFile("file")
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxImageBytes))
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "failed to read upload")
		return
	}

	url, err := h.Admin.UploadImage(r.Context(), chi.URLParam(r, "entity"), hdr.Filename, data)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"url": url})
}
