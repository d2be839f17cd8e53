// Package api serves today's derived state as JSON for the web front-end.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/chronox22/eco-gamer-collective/internal/catalog"
	"github.com/chronox22/eco-gamer-collective/internal/clock"
	"github.com/chronox22/eco-gamer-collective/internal/config"
	"github.com/chronox22/eco-gamer-collective/internal/daily"
	"github.com/chronox22/eco-gamer-collective/internal/features"
	"github.com/chronox22/eco-gamer-collective/internal/logger"
	"github.com/chronox22/eco-gamer-collective/internal/models"
)

// Handler holds API route handlers.
type Handler struct {
	suite   *features.Suite
	clock   *clock.Clock
	store   *daily.Store
	auth    config.AuthCapability
	backend string
}

// NewHandler creates a new Handler. backend is a non-sensitive description
// of the storage in use, reported by /capabilities.
func NewHandler(suite *features.Suite, c *clock.Clock, store *daily.Store, auth config.AuthCapability, backend string) *Handler {
	return &Handler{suite: suite, clock: c, store: store, auth: auth, backend: backend}
}

// Today handles GET /api/today.
func (h *Handler) Today(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.suite.Today(h.clock.Now()))
}

// Habits handles GET /api/habits.
func (h *Handler) Habits(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.suite.Habits.View(h.clock.Now()))
}

// ToggleHabit handles POST /api/habits/{id}/toggle.
func (h *Handler) ToggleHabit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	view, err := h.suite.Habits.Toggle(h.clock.Now(), id)
	h.writeHabitResult(w, id, view, err)
}

type setHabitRequest struct {
	Completed *bool `json:"completed"`
}

// SetHabit handles PUT /api/habits/{id} with {"completed": bool}.
func (h *Handler) SetHabit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req setHabitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Completed == nil {
		writeJSON(w, http.StatusBadRequest, errorBody(`body must be {"completed": true|false}`))
		return
	}

	view, err := h.suite.Habits.Set(h.clock.Now(), id, *req.Completed)
	h.writeHabitResult(w, id, view, err)
}

func (h *Handler) writeHabitResult(w http.ResponseWriter, id string, view features.TrackerView, err error) {
	switch {
	case errors.Is(err, features.ErrUnknownHabit):
		writeJSON(w, http.StatusNotFound, errorBody("habit not active today"))
	case err != nil:
		logger.Error("Habit update failed", "habit", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
	default:
		writeJSON(w, http.StatusOK, view)
	}
}

// Metrics handles GET /api/metrics.
func (h *Handler) Metrics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.suite.Metrics.Today(h.clock.Now()))
}

// Word handles GET /api/word.
func (h *Handler) Word(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.suite.Word.Today(h.clock.Now()))
}

// Verse handles GET /api/verse.
func (h *Handler) Verse(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.suite.Verse.Today(h.clock.Now()))
}

// Reminder handles GET /api/reminder. It answers 204 once the session's
// reminder was handed out.
func (h *Handler) Reminder(w http.ResponseWriter, r *http.Request) {
	text, ok := h.suite.Reminder.Next()
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"reminder": text})
}

// Articles handles GET /api/articles, optionally filtered by ?category=.
func (h *Handler) Articles(w http.ResponseWriter, r *http.Request) {
	articles := catalog.Articles(r.URL.Query().Get("category"))
	if articles == nil {
		articles = []models.Article{}
	}
	writeJSON(w, http.StatusOK, articles)
}

// Article handles GET /api/articles/{id}.
func (h *Handler) Article(w http.ResponseWriter, r *http.Request) {
	a, ok := catalog.LookupArticle(chi.URLParam(r, "id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, errorBody("article not found"))
		return
	}
	writeJSON(w, http.StatusOK, a)
}

type capabilitiesResponse struct {
	Auth     string `json:"auth"`
	Storage  string `json:"storage"`
	Degraded bool   `json:"degraded"`
	Date     string `json:"date"`
}

// Capabilities handles GET /api/capabilities.
func (h *Handler) Capabilities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, capabilitiesResponse{
		Auth:     h.auth.String(),
		Storage:  h.backend,
		Degraded: h.store.Degraded(),
		Date:     h.clock.Today(),
	})
}
