package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"betu_homestay/internal/adapters/web"
	"betu_homestay/internal/app"
	"betu_homestay/internal/domain"
	"betu_homestay/internal/session"
)

// Handlers serves the page, the catalog read API and the view sessions.
// Assets serves the site's image directory; nil disables those routes.
type Handlers struct {
	Q         *app.QueryService
	Sessions  *session.Store
	Assets    http.Handler
	KeepAlive time.Duration // SSE comment interval, default 15s
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// assetRoutes are the image paths the page references relative to the site root.
var assetRoutes = []string{"/slides/*", "/deluxe/*", "/standard/*", "/QR.png", "/logo.webp"}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Group(func(r chi.Router) {
		r.Use(Timeout(requestTimeout))

		r.Get("/", h.page)
		r.Handle("/static/*", web.StaticHandler())
		if h.Assets != nil {
			for _, p := range assetRoutes {
				r.Handle(p, h.Assets)
			}
		}

		r.Get("/v1/site", h.getSite)
		r.Get("/v1/rooms", h.listRooms)
		r.Get("/v1/rooms/{id}", h.getRoom)

		r.Post("/v1/sessions", h.createSession)
		r.Get("/v1/sessions/{id}", h.getSession)
		r.Post("/v1/sessions/{id}/events", h.postEvent)
		r.Post("/v1/sessions/{id}/close", h.closeSession)
	})

	// no timeout: the stream lives as long as the page
	s.mux.Get("/v1/sessions/{id}/stream", h.streamSession)
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
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// writeCacheable writes v as JSON with a weak ETag, answering 304 when the
// client already holds this version.
func writeCacheable(w http.ResponseWriter, r *http.Request, v any, what string) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag) // include ETag on 304
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Str("what", what).Msg("failed to write body")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func (h *Handlers) page(w http.ResponseWriter, r *http.Request) {
	site, err := h.Q.Site(r.Context())
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "site unavailable")
		return
	}
	rooms, err := h.Q.ListRooms(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("page: list rooms failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "rooms unavailable")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(web.RenderPage(site, rooms.Items))); err != nil {
		log.Error().Err(err).Msg("failed to write page")
	}
}

func (h *Handlers) getSite(w http.ResponseWriter, r *http.Request) {
	site, err := h.Q.Site(r.Context())
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "site unavailable")
		return
	}
	writeCacheable(w, r, site, "site")
}

func (h *Handlers) listRooms(w http.ResponseWriter, r *http.Request) {
	out, err := h.Q.ListRooms(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("list rooms failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "rooms unavailable")
		return
	}
	writeCacheable(w, r, out, "rooms")
}

func (h *Handlers) getRoom(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a number")
		return
	}
	room, err := h.Q.GetRoom(r.Context(), id)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", "room not found")
		return
	case err != nil:
		log.Error().Err(err).Int64("id", id).Msg("get room failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "room unavailable")
		return
	}
	writeCacheable(w, r, room, "room")
}
