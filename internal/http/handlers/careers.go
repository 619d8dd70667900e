package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/football-career-sim/internal/app/careers"
	"github.com/preston-bernstein/football-career-sim/internal/domain"
	"github.com/preston-bernstein/football-career-sim/internal/season"
)

// CareersResponse lists careers.
type CareersResponse struct {
	Careers []domain.Career `json:"careers"`
}

// OffersResponse lists the open window's offers.
type OffersResponse struct {
	Offers []domain.Offer `json:"offers"`
}

// HallOfFameResponse lists retired careers.
type HallOfFameResponse struct {
	Entries []domain.HallOfFameEntry `json:"entries"`
}

// CreateCareer starts a new career from a CreateRequest body.
func (h *Handler) CreateCareer(w http.ResponseWriter, r *http.Request) {
	var req careers.CreateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	c, err := h.svc.Create(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	w.Header().Set("Location", "/careers/"+c.ID)
	writeJSON(w, http.StatusCreated, c, h.logger)
}

// ListCareers returns every career.
func (h *Handler) ListCareers(w http.ResponseWriter, r *http.Request) {
	cs, err := h.svc.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	if cs == nil {
		cs = []domain.Career{}
	}
	writeJSON(w, http.StatusOK, CareersResponse{Careers: cs}, h.logger)
}

// GetCareer returns one career.
func (h *Handler) GetCareer(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, c, h.logger)
}

// Simulate plays the half named in the path: first-half, second-half or full-season.
func (h *Handler) Simulate(w http.ResponseWriter, r *http.Request) {
	half, ok := parseHalf(chi.URLParam(r, "half"))
	if !ok {
		writeError(w, r, http.StatusNotFound, "unknown season half", h.logger)
		return
	}
	out, err := h.svc.SimulateHalf(r.Context(), chi.URLParam(r, "id"), half)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, out, h.logger)
}

// Offers opens (or re-reads) the transfer window.
func (h *Handler) Offers(w http.ResponseWriter, r *http.Request) {
	offers, err := h.svc.Offers(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, OffersResponse{Offers: offers}, h.logger)
}

// AcceptOffer signs an offer from the open window.
func (h *Handler) AcceptOffer(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.AcceptOffer(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "offerID"))
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, c, h.logger)
}

// World returns every league table.
func (h *Handler) World(w http.ResponseWriter, r *http.Request) {
	world, err := h.svc.World(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, world, h.logger)
}

// Release tears up the current contract.
func (h *Handler) Release(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.Release(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, c, h.logger)
}

// Retire ends the career and returns its hall of fame entry.
func (h *Handler) Retire(w http.ResponseWriter, r *http.Request) {
	entry, err := h.svc.Retire(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, entry, h.logger)
}

// HallOfFame lists retired careers.
func (h *Handler) HallOfFame(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.HallOfFame(r.Context())
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	if entries == nil {
		entries = []domain.HallOfFameEntry{}
	}
	writeJSON(w, http.StatusOK, HallOfFameResponse{Entries: entries}, h.logger)
}

func parseHalf(raw string) (season.Half, bool) {
	for _, h := range []season.Half{season.FirstHalf, season.SecondHalf, season.FullSeason} {
		if raw == h.String() {
			return h, true
		}
	}
	return 0, false
}
