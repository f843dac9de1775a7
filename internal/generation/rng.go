package generation

// ---- Seeded random source ----

// Hash maps (seed, index) to a float64 in [0, 1).
// It is a pure function: the same pair always yields the same value.
func Hash(seed, index uint32) float64 {
	return float64(mix32(seed+index*0x9E3779B9)) / 4294967296.0
}

// CellHash returns a per-cell roll in [0, 1) that depends only on the seed
// and the cell coordinates, never on scan order.
func CellHash(seed uint32, x, y int) float64 {
	h := mix32(seed ^ uint32(x)*0x85EBCA6B)
	return float64(mix32(h^uint32(y)*0xC2B2AE35)) / 4294967296.0
}

// mix32 is a mulberry32-style integer finaliser
func mix32(s uint32) uint32 {
	t := s + 0x6D2B79F5
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return t ^ (t >> 14)
}

// Stream is a deterministic sequence of random values for one seed.
// It is a plain value: copying a Stream forks its position.
type Stream struct {
	seed uint32
	n    uint32
}

// NewStream creates a stream positioned at index 0
func NewStream(seed uint32) Stream {
	return Stream{seed: seed}
}

// Fork returns an independent stream salted from this stream's seed
func (s Stream) Fork(salt uint32) Stream {
	return Stream{seed: mix32(s.seed ^ salt*0x27D4EB2F)}
}

// Float64 returns a pseudo-random float64 in [0, 1)
func (s *Stream) Float64() float64 {
	v := Hash(s.seed, s.n)
	s.n++
	return v
}

// Intn returns a pseudo-random int in [0, n)
func (s *Stream) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	v := int(s.Float64() * float64(n))
	if v >= n {
		v = n - 1
	}
	return v
}

// Range returns a pseudo-random float64 in [lo, hi)
func (s *Stream) Range(lo, hi float64) float64 {
	return lo + s.Float64()*(hi-lo)
}

// Choice returns a random element from a slice
func (s *Stream) Choice(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return items[s.Intn(len(items))]
}

// Cell draws a random cell inside a width x height grid
func (s *Stream) Cell(width, height int) Point {
	x := s.Intn(width)
	y := s.Intn(height)
	return Point{x, y}
}
