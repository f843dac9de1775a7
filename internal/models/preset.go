package models

import "cartographer.dev/internal/generation"

// Preset is a named parameter set saved by the user
type Preset struct {
	Name   string            `json:"name"`
	Params generation.Params `json:"params"`
}

// PresetList wraps the saved preset names
type PresetList struct {
	Presets []string `json:"presets"`
}
