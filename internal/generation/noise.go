package generation

import "math"

// Noise2D is smooth value noise: the four surrounding lattice corners are
// hashed and blended bilinearly with a smoothstep ease. Output is in [0, 1).
func Noise2D(x, y float64, seed uint32) float64 {
	fx0 := math.Floor(x)
	fy0 := math.Floor(y)
	ix, iy := int(fx0), int(fy0)
	fx, fy := x-fx0, y-fy0

	a := CellHash(seed, ix, iy)
	b := CellHash(seed, ix+1, iy)
	c := CellHash(seed, ix, iy+1)
	d := CellHash(seed, ix+1, iy+1)

	ux := fx * fx * (3 - 2*fx)
	uy := fy * fy * (3 - 2*fy)

	return lerp(lerp(a, b, ux), lerp(c, d, ux), uy)
}

// FBM sums octaves of Noise2D at doubling frequency and halving amplitude
func FBM(x, y float64, seed uint32, octaves int) float64 {
	val, amp, freq := 0.0, 0.5, 1.0
	for i := 0; i < octaves; i++ {
		val += Noise2D(x*freq, y*freq, seed) * amp
		freq *= 2
		amp *= 0.5
	}
	return val
}

// RidgedFBM is FBM with each octave folded to (1 - |2n - 1|)^2,
// which turns smooth hills into sharp ridgelines.
func RidgedFBM(x, y float64, seed uint32, octaves int) float64 {
	val, amp, freq := 0.0, 0.5, 1.0
	for i := 0; i < octaves; i++ {
		n := Noise2D(x*freq, y*freq, seed)
		n = 1 - math.Abs(n*2-1)
		val += n * n * amp
		freq *= 2
		amp *= 0.5
	}
	return val
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
