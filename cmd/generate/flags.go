package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"cartographer.dev/internal/generation"
	"cartographer.dev/internal/render"
	"cartographer.dev/internal/services"
)

const defaultSize = "2048x1536"

// flagName turns a parameter key into its flag spelling: water_level -> water-level
func flagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

// applyParamFlags overlays the parameter flags the user actually set on base
func applyParamFlags(cmd *cobra.Command, base generation.Params, values map[string]*float64) generation.Params {
	p := base
	for key, v := range values {
		if cmd.Flags().Changed(flagName(key)) {
			p.Set(key, *v)
		}
	}
	return p
}

// parseSize reads a WxH resolution
func parseSize(s string) (services.Size, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return services.Size{}, fmt.Errorf("%w: %q is not WxH", render.ErrInvalidSize, s)
	}
	width, err := strconv.Atoi(w)
	if err != nil {
		return services.Size{}, fmt.Errorf("%w: bad width in %q", render.ErrInvalidSize, s)
	}
	height, err := strconv.Atoi(h)
	if err != nil {
		return services.Size{}, fmt.Errorf("%w: bad height in %q", render.ErrInvalidSize, s)
	}
	return services.Size{Width: width, Height: height}, nil
}

// parseSizes parses every --size value, dropping repeats
func parseSizes(values []string) ([]services.Size, error) {
	out := make([]services.Size, 0, len(values))
	seen := make(map[services.Size]bool, len(values))
	for _, v := range values {
		size, err := parseSize(v)
		if err != nil {
			return nil, err
		}
		if seen[size] {
			continue
		}
		seen[size] = true
		out = append(out, size)
	}
	return out, nil
}

func summaryFilename(seed uint32) string {
	return fmt.Sprintf("fantasy_map_%d.json", seed)
}
