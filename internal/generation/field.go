package generation

import "math"

const (
	// GridWidth and GridHeight are the dimensions of the coarse sampling grid
	GridWidth  = 200
	GridHeight = 150

	noiseScale = 3.0

	mountainSeedOffset = 100
	moistureSeedOffset = 200
	moistureShift      = 10.0
)

// BuildFields samples the height and moisture noise over the grid.
// Roughness only scales the ridged contribution, so the seed's noise
// fields stay the same across parameter changes.
func BuildFields(seed uint32, width, height int, roughness float64) (elevation, moisture *Field) {
	elevation = NewField(width, height)
	moisture = NewField(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			u := float64(x) / float64(width)
			v := float64(y) / float64(height)
			nx, ny := u*noiseScale, v*noiseScale

			base := (FBM(nx, ny, seed, 5) + RadialMask(u, v)) * 0.5
			ridges := RidgedFBM(nx, ny, seed+mountainSeedOffset, 4)
			elevation.set(x, y, clamp01(base*0.7+ridges*0.3*roughness))

			m := FBM(nx+moistureShift, ny+moistureShift, seed+moistureSeedOffset, 3)
			moisture.set(x, y, clamp01(m))
		}
	}
	return elevation, moisture
}

// RadialMask biases the interior toward land and the border toward water.
// u and v are normalized coordinates in [0, 1].
func RadialMask(u, v float64) float64 {
	dx, dy := u-0.5, v-0.5
	dist := math.Sqrt(dx*dx+dy*dy) * 2
	return math.Max(0, 1-dist*dist)
}
