package render

import "image/color"

// Palette defines the ink and wash colours of the map
type Palette struct {
	// Ground
	Paper          color.NRGBA
	Water          color.NRGBA
	WaterOutline   color.NRGBA
	MountainLight  color.NRGBA
	MountainShadow color.NRGBA
	Tree           color.NRGBA
	Road           color.NRGBA

	// Ink
	Ink  color.NRGBA
	Text color.NRGBA

	// Castles
	Stone color.NRGBA
	Roof  color.NRGBA

	// Overlays
	LegendWash color.NRGBA
}

// DefaultPalette returns the parchment palette
func DefaultPalette() *Palette {
	return &Palette{
		Paper:          hex(0xF0E6D2),
		Water:          hex(0xC5D6D8),
		WaterOutline:   hex(0x8DA3A6),
		MountainLight:  hex(0xF0E6D2),
		MountainShadow: hex(0xA69580),
		Tree:           hex(0x6B7A59),
		Road:           hex(0xA69580),
		Ink:            hex(0x3E2F26),
		Text:           hex(0x2C1B11),
		Stone:          hex(0xA6A6A6),
		Roof:           hex(0x7A2F2F),
		LegendWash:     color.NRGBA{R: 240, G: 230, B: 210, A: 204},
	}
}

func hex(v uint32) color.NRGBA {
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}
}
