package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoise2DRange(t *testing.T) {
	for i := 0; i < 2000; i++ {
		x := float64(i%97) * 0.173
		y := float64(i/97) * 0.311
		v := Noise2D(x, y, 11)
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
	}
}

func TestNoise2DMatchesLatticeAtIntegers(t *testing.T) {
	assert.InDelta(t, CellHash(4, 3, 5), Noise2D(3, 5, 4), 1e-12)
	assert.InDelta(t, CellHash(4, -2, 1), Noise2D(-2, 1, 4), 1e-12)
}

func TestNoise2DContinuous(t *testing.T) {
	a := Noise2D(1.4999, 2.5, 8)
	b := Noise2D(1.5001, 2.5, 8)
	assert.InDelta(t, a, b, 0.01)
}

func TestFBMBounds(t *testing.T) {
	for i := 0; i < 500; i++ {
		x, y := float64(i)*0.037, float64(i)*0.053
		v := FBM(x, y, 1, 5)
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)

		r := RidgedFBM(x, y, 1, 4)
		require.GreaterOrEqual(t, r, 0.0)
		require.LessOrEqual(t, r, 1.0)
	}
}

func TestRadialMask(t *testing.T) {
	assert.InDelta(t, 1.0, RadialMask(0.5, 0.5), 1e-12)
	assert.Equal(t, 0.0, RadialMask(0, 0))
	assert.Greater(t, RadialMask(0.5, 0.3), RadialMask(0.5, 0.1))
}

func TestBuildFieldsRangeAndDeterminism(t *testing.T) {
	e1, m1 := BuildFields(12345, 40, 30, 0.6)
	e2, m2 := BuildFields(12345, 40, 30, 0.6)
	assert.Equal(t, e1.Values(), e2.Values())
	assert.Equal(t, m1.Values(), m2.Values())

	for _, v := range append(e1.Values(), m1.Values()...) {
		require.GreaterOrEqual(t, v, 0.0)
		require.LessOrEqual(t, v, 1.0)
	}
}

func TestRoughnessLeavesMoistureAlone(t *testing.T) {
	_, flat := BuildFields(77, 40, 30, 0)
	_, rough := BuildFields(77, 40, 30, 1.5)
	assert.Equal(t, flat.Values(), rough.Values())
}

func TestFieldOutOfBoundsIsZero(t *testing.T) {
	e, _ := BuildFields(1, 10, 10, 0.6)
	assert.Equal(t, 0.0, e.At(-1, 0))
	assert.Equal(t, 0.0, e.At(0, 10))
	assert.True(t, IsWater(e, 0.1, Point{-1, -1}))
}
