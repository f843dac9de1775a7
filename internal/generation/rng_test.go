package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashIsPure(t *testing.T) {
	for i := uint32(0); i < 100; i++ {
		assert.Equal(t, Hash(42, i), Hash(42, i))
	}
}

func TestHashRange(t *testing.T) {
	for seed := uint32(0); seed < 20; seed++ {
		for i := uint32(0); i < 500; i++ {
			v := Hash(seed, i)
			require.GreaterOrEqual(t, v, 0.0)
			require.Less(t, v, 1.0)
		}
	}
}

func TestCellHashIndependentOfOrder(t *testing.T) {
	forward := make([]float64, 0, 100)
	for x := 0; x < 10; x++ {
		for y := 0; y < 10; y++ {
			forward = append(forward, CellHash(7, x, y))
		}
	}
	i := len(forward) - 1
	for x := 9; x >= 0; x-- {
		for y := 9; y >= 0; y-- {
			assert.Equal(t, forward[i], CellHash(7, x, y))
			i--
		}
	}
}

func TestStreamDeterministic(t *testing.T) {
	a := NewStream(12345)
	b := NewStream(12345)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestStreamForkIndependent(t *testing.T) {
	root := NewStream(99)
	lakes := root.Fork(1)
	rivers := root.Fork(2)

	same := 0
	for i := 0; i < 20; i++ {
		if lakes.Float64() == rivers.Float64() {
			same++
		}
	}
	assert.Less(t, same, 20)

	// Forking ignores the parent's position
	advanced := NewStream(99)
	advanced.Float64()
	f1 := root.Fork(1)
	f2 := advanced.Fork(1)
	assert.Equal(t, f1.Float64(), f2.Float64())
}

func TestStreamIntn(t *testing.T) {
	s := NewStream(3)
	for i := 0; i < 1000; i++ {
		v := s.Intn(7)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 7)
	}
	assert.Equal(t, 0, s.Intn(0))
}

func TestStreamCellInBounds(t *testing.T) {
	s := NewStream(5)
	f := NewField(GridWidth, GridHeight)
	for i := 0; i < 1000; i++ {
		assert.True(t, f.InBounds(s.Cell(GridWidth, GridHeight)))
	}
}
