package generation

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameter is returned when a parameter falls outside its slider range
var ErrInvalidParameter = errors.New("invalid parameter")

// Params are the user-adjustable knobs. They reparameterize generation
// without changing the seed's noise fields.
type Params struct {
	Roughness   float64 `json:"roughness" yaml:"roughness"`
	Vegetation  float64 `json:"vegetation" yaml:"vegetation"`
	HillDensity float64 `json:"hill_density" yaml:"hill_density"`
	WaterLevel  float64 `json:"water_level" yaml:"water_level"`
	CityCount   int     `json:"city_count" yaml:"city_count"`
	CastleCount int     `json:"castle_count" yaml:"castle_count"`
	ShipCount   int     `json:"ship_count" yaml:"ship_count"`
	LakeCount   int     `json:"lake_count" yaml:"lake_count"`
}

// ParamType enumerates supported parameter value kinds
type ParamType string

const (
	ParamTypeInt   ParamType = "int"
	ParamTypeFloat ParamType = "float"
)

// Control describes one slider: its key, bounds, step and default
type Control struct {
	Key     string    `json:"key"`
	Label   string    `json:"label"`
	Type    ParamType `json:"type"`
	Min     float64   `json:"min"`
	Max     float64   `json:"max"`
	Step    float64   `json:"step"`
	Default float64   `json:"default"`
}

var controls = []Control{
	{Key: "roughness", Label: "Mountains", Type: ParamTypeFloat, Min: 0, Max: 1.5, Step: 0.1, Default: 0.6},
	{Key: "vegetation", Label: "Forests", Type: ParamTypeFloat, Min: 0, Max: 1, Step: 0.1, Default: 0.5},
	{Key: "hill_density", Label: "Hills", Type: ParamTypeFloat, Min: 0, Max: 1, Step: 0.1, Default: 0.3},
	{Key: "water_level", Label: "Sea Level", Type: ParamTypeFloat, Min: 0.1, Max: 0.8, Step: 0.05, Default: 0.35},
	{Key: "city_count", Label: "Cities", Type: ParamTypeInt, Min: 1, Max: 30, Step: 1, Default: 8},
	{Key: "castle_count", Label: "Castles", Type: ParamTypeInt, Min: 0, Max: 10, Step: 1, Default: 4},
	{Key: "lake_count", Label: "Lakes", Type: ParamTypeInt, Min: 0, Max: 15, Step: 1, Default: 4},
	{Key: "ship_count", Label: "Ships", Type: ParamTypeInt, Min: 0, Max: 10, Step: 1, Default: 3},
}

// Controls returns the slider descriptions in display order
func Controls() []Control {
	out := make([]Control, len(controls))
	copy(out, controls)
	return out
}

// DefaultParams returns the parameter set the sliders start at
func DefaultParams() Params {
	p := Params{}
	for _, c := range controls {
		p.set(c.Key, c.Default)
	}
	return p
}

// Get returns a parameter by key
func (p Params) Get(key string) (float64, bool) {
	switch key {
	case "roughness":
		return p.Roughness, true
	case "vegetation":
		return p.Vegetation, true
	case "hill_density":
		return p.HillDensity, true
	case "water_level":
		return p.WaterLevel, true
	case "city_count":
		return float64(p.CityCount), true
	case "castle_count":
		return float64(p.CastleCount), true
	case "ship_count":
		return float64(p.ShipCount), true
	case "lake_count":
		return float64(p.LakeCount), true
	}
	return 0, false
}

// Set updates a parameter by key. Integer parameters are rounded.
// It returns false for unknown keys.
func (p *Params) Set(key string, value float64) bool {
	return p.set(key, value)
}

func (p *Params) set(key string, v float64) bool {
	switch key {
	case "roughness":
		p.Roughness = v
	case "vegetation":
		p.Vegetation = v
	case "hill_density":
		p.HillDensity = v
	case "water_level":
		p.WaterLevel = v
	case "city_count":
		p.CityCount = int(math.Round(v))
	case "castle_count":
		p.CastleCount = int(math.Round(v))
	case "ship_count":
		p.ShipCount = int(math.Round(v))
	case "lake_count":
		p.LakeCount = int(math.Round(v))
	default:
		return false
	}
	return true
}

// Validate reports the first parameter outside its slider range
func (p Params) Validate() error {
	for _, c := range controls {
		v, _ := p.Get(c.Key)
		if math.IsNaN(v) || v < c.Min || v > c.Max {
			return fmt.Errorf("%w: %s=%g outside [%g, %g]", ErrInvalidParameter, c.Key, v, c.Min, c.Max)
		}
	}
	return nil
}

// Clamp forces every parameter into its slider range
func (p Params) Clamp() Params {
	out := p
	for _, c := range controls {
		v, _ := p.Get(c.Key)
		if math.IsNaN(v) {
			v = c.Default
		}
		out.set(c.Key, math.Max(c.Min, math.Min(c.Max, v)))
	}
	return out
}
