package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"cartographer.dev/internal/config"
	"cartographer.dev/internal/export"
	"cartographer.dev/internal/generation"
	"cartographer.dev/internal/middleware"
	"cartographer.dev/internal/render"
	"cartographer.dev/internal/services"
	"cartographer.dev/internal/store"
)

// SetupRoutes configures all routes and returns the router. sink receives
// a copy of every exported PNG and may be nil.
func SetupRoutes(cfg *config.Config, st store.Store, sink export.Sink, log *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recovery(log))
	r.Use(middleware.Logger(log))

	// Initialize services
	mapService := services.NewMapService(cfg, export.NewLogNotifier(log), sink, log)
	presetService := services.NewPresetService(st, log)

	// Initialize handlers
	mapHandler := NewMapHandler(mapService, log)
	presetHandler := NewPresetHandler(presetService, mapService.Defaults(), log)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Route("/map", func(r chi.Router) {
			r.Get("/", mapHandler.GetSummary)
			r.Get("/parameters", mapHandler.GetParameters)
			r.Get("/preview.png", mapHandler.GetPreview)
			r.Get("/export.png", mapHandler.GetExport)
		})

		r.Route("/presets", func(r chi.Router) {
			r.Get("/", presetHandler.ListPresets)
			r.Get("/{name}", presetHandler.GetPreset)
			r.Put("/{name}", presetHandler.SavePreset)
			r.Delete("/{name}", presetHandler.DeletePreset)
		})

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	return r
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondErr maps a service error onto a status code
func respondErr(w http.ResponseWriter, log *zap.Logger, err error) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		log.Error("request failed", zap.Error(err))
		respondError(w, status, "internal server error")
		return
	}
	respondError(w, status, err.Error())
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, generation.ErrInvalidParameter),
		errors.Is(err, render.ErrInvalidSize),
		errors.Is(err, services.ErrInvalidName):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
