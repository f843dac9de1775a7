package render

import (
	"image"

	"github.com/aquilax/go-perlin"
)

// Grain is sampled on a fixed lattice over the normalised canvas and
// interpolated per pixel, so it looks the same at every output size.
const (
	grainCols = 256
	grainRows = 192

	perlinAlpha  = 2.0
	perlinBeta   = 2.0
	perlinOctave = 3
)

type grain struct {
	values []float64
}

func newGrain(t Texture) *grain {
	p := perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctave, t.Seed)
	g := &grain{values: make([]float64, (grainCols+1)*(grainRows+1))}
	for y := 0; y <= grainRows; y++ {
		for x := 0; x <= grainCols; x++ {
			u := float64(x) / grainCols * t.Scale
			v := float64(y) / grainRows * t.Scale * LogicalHeight / LogicalWidth
			g.values[y*(grainCols+1)+x] = p.Noise2D(u, v)
		}
	}
	return g
}

// at returns the grain at normalised coordinates (u, v) in [0, 1]
func (g *grain) at(u, v float64) float64 {
	fx, fy := u*grainCols, v*grainRows
	x0, y0 := int(fx), int(fy)
	x0 = min(max(x0, 0), grainCols-1)
	y0 = min(max(y0, 0), grainRows-1)
	tx, ty := fx-float64(x0), fy-float64(y0)

	row := grainCols + 1
	a := g.values[y0*row+x0]
	b := g.values[y0*row+x0+1]
	c := g.values[(y0+1)*row+x0]
	d := g.values[(y0+1)*row+x0+1]
	top := a + (b-a)*tx
	bottom := c + (d-c)*tx
	return top + (bottom-top)*ty
}

// applyGrain darkens and lightens pixels by the grain, scaled by strength
func applyGrain(img *image.RGBA, t Texture) {
	g := newGrain(t)
	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		v := (float64(y-b.Min.Y) + 0.5) / h
		for x := b.Min.X; x < b.Max.X; x++ {
			u := (float64(x-b.Min.X) + 0.5) / w
			k := 1 + g.at(u, v)*t.Strength
			i := img.PixOffset(x, y)
			px := img.Pix[i : i+3 : i+3]
			for c := range px {
				px[c] = clampByte(float64(px[c]) * k)
			}
		}
	}
}

func clampByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
