package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cities(cells ...Point) []Settlement {
	out := make([]Settlement, len(cells))
	for i, c := range cells {
		out[i] = Settlement{Kind: KindCity, Cell: c}
	}
	return out
}

func TestBuildRoadsNearestNeighbour(t *testing.T) {
	cs := cities(Point{0, 0}, Point{3, 0}, Point{50, 50}, Point{52, 50})
	net := BuildRoads(cs, NewStream(1))

	require.Len(t, net.Roads, 4)
	want := []int{1, 0, 3, 2}
	for i, r := range net.Roads {
		assert.Equal(t, i, r.From)
		assert.Equal(t, want[i], r.To)
		assert.GreaterOrEqual(t, r.Bend, -roadBend)
		assert.Less(t, r.Bend, roadBend)
	}
	assert.Equal(t, 2, net.Components())
	assert.InDelta(t, 3+3+2+2, net.TotalLength(), 1e-9)
}

func TestBuildRoadsTieGoesToLowestIndex(t *testing.T) {
	cs := cities(Point{10, 10}, Point{0, 10}, Point{20, 10})
	net := BuildRoads(cs, NewStream(1))
	assert.Equal(t, 1, net.Roads[0].To)
	assert.Equal(t, 1, net.Components())
}

func TestBuildRoadsSingleCity(t *testing.T) {
	net := BuildRoads(cities(Point{5, 5}), NewStream(1))
	assert.Empty(t, net.Roads)
	assert.Equal(t, 1, net.Components())
}

func TestReachable(t *testing.T) {
	net := NewRoadNetwork(3)
	net.AddRoad(Road{From: 0, To: 1})
	r := net.Reachable(0)
	assert.True(t, r[1])
	assert.False(t, r[2])
}
