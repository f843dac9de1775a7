package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"cartographer.dev/internal/generation"
	"cartographer.dev/internal/services"
)

const maxPresetBody = 1 << 16

// PresetHandler handles preset endpoints
type PresetHandler struct {
	presetService *services.PresetService
	defaults      generation.Params
	log           *zap.Logger
}

// NewPresetHandler creates a new PresetHandler. Saved bodies are decoded
// over defaults so that omitted keys keep their slider default.
func NewPresetHandler(ps *services.PresetService, defaults generation.Params, log *zap.Logger) *PresetHandler {
	return &PresetHandler{presetService: ps, defaults: defaults, log: log}
}

// ListPresets handles GET /api/presets
func (h *PresetHandler) ListPresets(w http.ResponseWriter, r *http.Request) {
	list, err := h.presetService.List(r.Context())
	if err != nil {
		respondErr(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, list)
}

// GetPreset handles GET /api/presets/{name}
func (h *PresetHandler) GetPreset(w http.ResponseWriter, r *http.Request) {
	preset, err := h.presetService.Get(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		respondErr(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, preset)
}

// SavePreset handles PUT /api/presets/{name}
func (h *PresetHandler) SavePreset(w http.ResponseWriter, r *http.Request) {
	p := h.defaults
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxPresetBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		respondErr(w, h.log, fmt.Errorf("%w: %v", generation.ErrInvalidParameter, err))
		return
	}

	preset, err := h.presetService.Save(r.Context(), chi.URLParam(r, "name"), p)
	if err != nil {
		respondErr(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, preset)
}

// DeletePreset handles DELETE /api/presets/{name}
func (h *PresetHandler) DeletePreset(w http.ResponseWriter, r *http.Request) {
	if err := h.presetService.Delete(r.Context(), chi.URLParam(r, "name")); err != nil {
		respondErr(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
