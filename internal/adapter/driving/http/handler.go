package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/Wyydra/callstate/internal/adapter/driven/gateway/ws"
	"github.com/Wyydra/callstate/internal/core/action"
	"github.com/Wyydra/callstate/internal/core/port"
	"github.com/Wyydra/callstate/internal/core/state"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

const maxIntentBytes = 64 << 10

// Composite is the part of the running composite the host transport drives.
type Composite interface {
	Dispatch(a action.Action)
	State() state.AppState
}

type Handler struct {
	Composite Composite
	Hub       *ws.Hub
	Journal   port.ActionJournal
	Metrics   http.Handler
}

func NewHandler(composite Composite, hub *ws.Hub, journal port.ActionJournal, metrics http.Handler) *Handler {
	return &Handler{
		Composite: composite,
		Hub:       hub,
		Journal:   journal,
		Metrics:   metrics,
	}
}

func (h *Handler) NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/ws", h.ServeWS)
	r.Get("/state", h.GetState)
	r.Post("/intents", h.PostIntent)
	r.Get("/journal", h.GetJournal)
	if h.Metrics != nil {
		r.Handle("/metrics", h.Metrics)
	}

	return r
}

func (h *Handler) GetState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Composite.State())
}

func (h *Handler) PostIntent(w http.ResponseWriter, r *http.Request) {
	var in Intent
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxIntentBytes)).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	a, err := in.Decode()
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, ErrUnknownIntent) {
			status = http.StatusUnprocessableEntity
		}
		writeError(w, status, err)
		return
	}

	h.Composite.Dispatch(a)
	writeJSON(w, http.StatusAccepted, h.Composite.State())
}

func (h *Handler) GetJournal(w http.ResponseWriter, r *http.Request) {
	if h.Journal == nil {
		writeError(w, http.StatusNotFound, errors.New("journal disabled"))
		return
	}
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, errors.New("limit must be a non-negative integer"))
			return
		}
		limit = n
	}

	entries, err := h.Journal.Recent(r.Context(), limit)
	if err != nil {
		log.Error().Err(err).Msg("Failed to read journal")
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("Failed to write response")
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
