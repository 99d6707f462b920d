package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"askai-gateway/internal/handlers"
	"askai-gateway/internal/middleware"
)

func New(
	bearerAuth *middleware.BearerAuth,
	askHandler *handlers.AskHandler,
	audioHandler *handlers.AudioHandler,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Audio files are fetched by the URL handed out in audio_url, so no auth.
	r.Get("/audio/{filename}", audioHandler.Get)

	r.Group(func(r chi.Router) {
		r.Use(bearerAuth.Middleware)
		r.Post("/", askHandler.Ask)
	})

	return r
}
