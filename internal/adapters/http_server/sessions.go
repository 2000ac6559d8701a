package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"betu_homestay/internal/domain"
	"betu_homestay/internal/session"
)

const (
	defaultKeepAlive = 15 * time.Second
	maxEventBytes    = 64 << 10
)

type created struct {
	ID   string       `json:"id"`
	View session.View `json:"view"`
}

// sessionProblem maps session errors to problem responses.
func sessionProblem(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", "session not found")
	case errors.Is(err, session.ErrClosed):
		writeProblem(w, http.StatusGone, "Gone", "session closed")
	case errors.Is(err, session.ErrTooManySessions):
		w.Header().Set("Retry-After", "60")
		writeProblem(w, http.StatusServiceUnavailable, "Service Unavailable", "too many open pages, retry shortly")
	case errors.Is(err, session.ErrRateLimited):
		writeProblem(w, http.StatusTooManyRequests, "Too Many Requests", "slow down")
	case errors.Is(err, session.ErrBadEvent):
		writeProblem(w, http.StatusBadRequest, "Invalid Event", err.Error())
	default:
		log.Error().Err(err).Msg("session request failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}

func (h *Handlers) createSession(w http.ResponseWriter, r *http.Request) {
	s, err := h.Sessions.Create()
	if err != nil {
		sessionProblem(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created{ID: s.ID(), View: s.Snapshot()})
}

func (h *Handlers) getSession(w http.ResponseWriter, r *http.Request) {
	s, err := h.Sessions.Get(chi.URLParam(r, "id"))
	if err != nil {
		sessionProblem(w, err)
		return
	}
	s.Touch()
	writeJSON(w, http.StatusOK, s.Snapshot())
}

func (h *Handlers) postEvent(w http.ResponseWriter, r *http.Request) {
	s, err := h.Sessions.Get(chi.URLParam(r, "id"))
	if err != nil {
		sessionProblem(w, err)
		return
	}
	var ev session.Event
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxEventBytes)).Decode(&ev); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Event", "body must be a JSON event")
		return
	}
	if err := s.Apply(ev); err != nil {
		sessionProblem(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.Snapshot())
}

func (h *Handlers) closeSession(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.Close(chi.URLParam(r, "id")); err != nil {
		sessionProblem(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// streamSession pushes a "view" event with the current snapshot after every
// state change, and a final "closed" event when the session ends.
func (h *Handlers) streamSession(w http.ResponseWriter, r *http.Request) {
	s, err := h.Sessions.Get(chi.URLParam(r, "id"))
	if err != nil {
		sessionProblem(w, err)
		return
	}
	fl, ok := w.(http.Flusher)
	if !ok {
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "streaming unsupported")
		return
	}

	changes, cancel := s.Subscribe()
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	every := h.KeepAlive
	if every <= 0 {
		every = defaultKeepAlive
	}
	ping := time.NewTicker(every)
	defer ping.Stop()

	if err := writeView(w, s.Snapshot()); err != nil {
		return
	}
	fl.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case _, open := <-changes:
			if !open {
				_, _ = fmt.Fprint(w, "event: closed\ndata: {}\n\n")
				fl.Flush()
				return
			}
			if err := writeView(w, s.Snapshot()); err != nil {
				log.Debug().Err(err).Str("session", s.ID()).Msg("stream write failed")
				return
			}
			fl.Flush()
		case <-ping.C:
			s.Touch()
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
			fl.Flush()
		}
	}
}

func writeView(w http.ResponseWriter, v session.View) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: view\ndata: %s\n\n", b)
	return err
}
