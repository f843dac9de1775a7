package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"cartographer.dev/internal/render"
	"cartographer.dev/internal/services"
)

// DefaultExportSize is the export resolution when none is given
var DefaultExportSize = services.Size{Width: render.LogicalWidth, Height: render.LogicalHeight}

// MapHandler handles map generation endpoints
type MapHandler struct {
	mapService *services.MapService
	log        *zap.Logger
}

// NewMapHandler creates a new MapHandler
func NewMapHandler(ms *services.MapService, log *zap.Logger) *MapHandler {
	return &MapHandler{mapService: ms, log: log}
}

// GetParameters handles GET /api/map/parameters
func (h *MapHandler) GetParameters(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.mapService.Controls())
}

// GetSummary handles GET /api/map
func (h *MapHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	seed, err := parseSeed(r)
	if err != nil {
		respondErr(w, h.log, err)
		return
	}
	p, err := parseParams(r, h.mapService.Defaults())
	if err != nil {
		respondErr(w, h.log, err)
		return
	}

	summary, err := h.mapService.Summary(seed, p)
	if err != nil {
		respondErr(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

// GetPreview handles GET /api/map/preview.png
func (h *MapHandler) GetPreview(w http.ResponseWriter, r *http.Request) {
	seed, err := parseSeed(r)
	if err != nil {
		respondErr(w, h.log, err)
		return
	}
	p, err := parseParams(r, h.mapService.Defaults())
	if err != nil {
		respondErr(w, h.log, err)
		return
	}

	data, err := h.mapService.Preview(r.Context(), seed, p)
	if err != nil {
		respondErr(w, h.log, err)
		return
	}
	writePNG(w, seed, data)
}

// GetExport handles GET /api/map/export.png
func (h *MapHandler) GetExport(w http.ResponseWriter, r *http.Request) {
	seed, err := parseSeed(r)
	if err != nil {
		respondErr(w, h.log, err)
		return
	}
	p, err := parseParams(r, h.mapService.Defaults())
	if err != nil {
		respondErr(w, h.log, err)
		return
	}
	size, err := parseSize(r, DefaultExportSize)
	if err != nil {
		respondErr(w, h.log, err)
		return
	}

	res, err := h.mapService.Export(r.Context(), seed, p, size)
	if err != nil {
		respondErr(w, h.log, err)
		return
	}
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", res.Filename))
	writePNG(w, seed, res.Data)
}

func writePNG(w http.ResponseWriter, seed uint32, data []byte) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("X-Seed", strconv.FormatUint(uint64(seed), 10))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
