package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/chronox22/eco-gamer-collective/internal/logger"
)

// NewRouter mounts the API under /api next to the health probes.
func NewRouter(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health/live", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/today", h.Today)
		r.Get("/habits", h.Habits)
		r.Put("/habits/{id}", h.SetHabit)
		r.Post("/habits/{id}/toggle", h.ToggleHabit)
		r.Get("/metrics", h.Metrics)
		r.Get("/word", h.Word)
		r.Get("/verse", h.Verse)
		r.Get("/reminder", h.Reminder)
		r.Get("/articles", h.Articles)
		r.Get("/articles/{id}", h.Article)
		r.Get("/capabilities", h.Capabilities)
	})

	return r
}

// requestLogger logs one debug line per request through the app logger.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		logger.Debug("HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}
