package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"cartographer.dev/internal/generation"
	"cartographer.dev/internal/services"
)

// parseIntParam parses an integer query parameter with a default value
func parseIntParam(r *http.Request, name string, defaultVal int) (int, error) {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal, nil
	}
	intVal, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not an integer", generation.ErrInvalidParameter, name, val)
	}
	return intVal, nil
}

// parseSeed reads ?seed, drawing a fresh one when it is absent
func parseSeed(r *http.Request) (uint32, error) {
	val := r.URL.Query().Get("seed")
	if val == "" {
		return services.RandomSeed(), nil
	}
	seed, err := strconv.ParseUint(val, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: seed=%q is not a 32-bit unsigned integer", generation.ErrInvalidParameter, val)
	}
	return uint32(seed), nil
}

// parseParams overlays any slider keys present in the query on base and
// validates the result
func parseParams(r *http.Request, base generation.Params) (generation.Params, error) {
	p := base
	q := r.URL.Query()
	for _, c := range generation.Controls() {
		val := q.Get(c.Key)
		if val == "" {
			continue
		}
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return p, fmt.Errorf("%w: %s=%q is not a number", generation.ErrInvalidParameter, c.Key, val)
		}
		p.Set(c.Key, f)
	}
	return p, p.Validate()
}

// parseSize reads ?width and ?height
func parseSize(r *http.Request, def services.Size) (services.Size, error) {
	w, err := parseIntParam(r, "width", def.Width)
	if err != nil {
		return services.Size{}, err
	}
	h, err := parseIntParam(r, "height", def.Height)
	if err != nil {
		return services.Size{}, err
	}
	return services.Size{Width: w, Height: h}, nil
}
