// internal/adapters/http_server/handlers.go
package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"review_scraper/internal/app"
	"review_scraper/internal/domain"
)

type Handlers struct{ Q *app.QueryService }

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/companies/{company}/reviews", h.listReviews)
	s.mux.Get("/v1/runs", h.listRuns)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		// Log but don't fail the whole response; return empty ETag and best-effort body.
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// parseLimit validates an optional ?limit= parameter. Zero detail string means ok.
func parseLimit(r *http.Request) (int, string) {
	limit := 50
	if ls := r.URL.Query().Get("limit"); ls != "" {
		l, err := strconv.Atoi(ls)
		if err != nil || l <= 0 || l > 200 {
			return 0, "limit must be an integer between 1 and 200"
		}
		limit = l
	}
	return limit, ""
}

func (h *Handlers) listReviews(w http.ResponseWriter, r *http.Request) {
	company := chi.URLParam(r, "company")
	if company == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid company", "company must not be empty")
		return
	}

	// Optional source filter; absent means all sources.
	var source domain.Source
	if ss := r.URL.Query().Get("source"); ss != "" {
		src, err := domain.ParseSource(ss)
		if err != nil {
			writeProblem(w, http.StatusBadRequest, "Invalid source", err.Error())
			return
		}
		source = src
	}

	limit, detail := parseLimit(r)
	if detail != "" {
		writeProblem(w, http.StatusBadRequest, "Invalid limit", detail)
		return
	}

	out, err := h.Q.ListCompanyReviews(r.Context(), company, source, limit)
	if err != nil {
		log.Error().Err(err).Str("company", company).Msg("list reviews failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "could not list reviews")
		return
	}

	etag, body := calcETagAndBody(out)
	// If client already has this version, short-circuit.
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag) // include ETag on 304
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write listReviews body")
	}
}

func (h *Handlers) listRuns(w http.ResponseWriter, r *http.Request) {
	limit, detail := parseLimit(r)
	if detail != "" {
		writeProblem(w, http.StatusBadRequest, "Invalid limit", detail)
		return
	}

	runs, err := h.Q.ListRuns(r.Context(), limit)
	if err != nil {
		log.Error().Err(err).Msg("list runs failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "could not list runs")
		return
	}
	if runs == nil {
		runs = []domain.ScrapeRun{}
	}

	etag, body := calcETagAndBody(runs)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write listRuns body")
	}
}
