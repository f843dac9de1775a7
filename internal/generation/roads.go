package generation

import "math"

const roadBend = 1.5

// Road joins two cities, identified by their index in Map.Cities.
// Bend offsets the curve's midpoint control on both axes, in grid units.
type Road struct {
	From   int     `json:"from"`
	To     int     `json:"to"`
	Length float64 `json:"length"`
	Bend   float64 `json:"bend"`
}

// RoadNetwork links every city to its nearest neighbour
type RoadNetwork struct {
	Roads []Road

	// Adjacency list for quick lookups
	Adjacent map[int][]int
	nodes    int
}

// NewRoadNetwork creates an empty network over n cities
func NewRoadNetwork(n int) *RoadNetwork {
	return &RoadNetwork{
		Roads:    make([]Road, 0, n),
		Adjacent: make(map[int][]int, n),
		nodes:    n,
	}
}

// BuildRoads gives each city exactly one outgoing road to its nearest other
// city. Ties go to the lowest index. A single city gets no road.
func BuildRoads(cities []Settlement, rng Stream) *RoadNetwork {
	net := NewRoadNetwork(len(cities))
	for i, c := range cities {
		nearest, best := -1, math.Inf(1)
		for j, o := range cities {
			if i == j {
				continue
			}
			if d := c.Cell.Dist(o.Cell); d < best {
				best, nearest = d, j
			}
		}
		if nearest < 0 {
			continue
		}
		net.AddRoad(Road{
			From:   i,
			To:     nearest,
			Length: best,
			Bend:   rng.Range(-roadBend, roadBend),
		})
	}
	return net
}

// AddRoad records a road and its adjacency in both directions
func (n *RoadNetwork) AddRoad(r Road) {
	n.Roads = append(n.Roads, r)
	n.Adjacent[r.From] = append(n.Adjacent[r.From], r.To)
	n.Adjacent[r.To] = append(n.Adjacent[r.To], r.From)
}

// Reachable returns every city reachable from start using BFS
func (n *RoadNetwork) Reachable(start int) map[int]bool {
	visited := map[int]bool{start: true}
	queue := []int{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, neighbor := range n.Adjacent[current] {
			if !visited[neighbor] {
				visited[neighbor] = true
				queue = append(queue, neighbor)
			}
		}
	}
	return visited
}

// Components counts the disconnected road clusters. Every city belongs
// to exactly one cluster.
func (n *RoadNetwork) Components() int {
	seen := make(map[int]bool, n.nodes)
	count := 0
	for i := 0; i < n.nodes; i++ {
		if seen[i] {
			continue
		}
		count++
		for c := range n.Reachable(i) {
			seen[c] = true
		}
	}
	return count
}

// TotalLength sums road lengths in grid units
func (n *RoadNetwork) TotalLength() float64 {
	total := 0.0
	for _, r := range n.Roads {
		total += r.Length
	}
	return total
}
