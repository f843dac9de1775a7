package render

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"cartographer.dev/internal/generation"
)

// EncodePNG serializes an image as PNG
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding png: %w", err)
	}
	return buf.Bytes(), nil
}

// Render composes and rasterizes a map in one step
func Render(m *generation.Map, width, height int) (*image.RGBA, error) {
	return Rasterize(Compose(m), width, height)
}

// RenderPNG composes, rasterizes and encodes a map
func RenderPNG(m *generation.Map, width, height int) ([]byte, error) {
	img, err := Render(m, width, height)
	if err != nil {
		return nil, err
	}
	return EncodePNG(img)
}

// Filename returns the export filename for a seed
func Filename(seed uint32) string {
	return fmt.Sprintf("fantasy_map_%d.png", seed)
}
