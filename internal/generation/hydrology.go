package generation

import "math"

const (
	lakeAttempts   = 100
	lakeMinRise    = 0.05
	lakeCeiling    = 0.5
	lakeMinRadius  = 2.0
	lakeRadiusSpan = 2.0
	lakeSegments   = 10

	riverAttempts   = 100
	riverSources    = 15
	riverSourceRise = 0.2
	riverMaxLength  = 200
	terminalLakeR   = 1.0
)

// Terminus describes how a river ends
type Terminus string

const (
	TerminusWater Terminus = "water"
	TerminusLake  Terminus = "lake"
)

// River is a steepest-descent path from a high source to water or a lake
type River struct {
	Path     []Point  `json:"path"`
	Terminus Terminus `json:"terminus"`
}

// Lake is an irregular closed water body centred on a cell
type Lake struct {
	Center      Point   `json:"center"`
	Radius      float64 `json:"radius"`
	Synthesized bool    `json:"synthesized"`
}

// Segment is a straight line in grid units
type Segment struct {
	From, To Vec
}

// IsWater is the single authority for the land/water decision
func IsWater(elev *Field, waterLevel float64, p Point) bool {
	return elev.Get(p) < waterLevel
}

// CoastEdges returns a unit edge wherever a land/water transition happens
// between horizontally or vertically adjacent cells.
func CoastEdges(elev *Field, waterLevel float64) []Segment {
	var edges []Segment
	for y := 0; y < elev.Height; y++ {
		for x := 0; x < elev.Width; x++ {
			land := !IsWater(elev, waterLevel, Point{x, y})
			if x+1 < elev.Width && land == IsWater(elev, waterLevel, Point{x + 1, y}) {
				edges = append(edges, Segment{
					From: Vec{float64(x + 1), float64(y)},
					To:   Vec{float64(x + 1), float64(y + 1)},
				})
			}
			if y+1 < elev.Height && land == IsWater(elev, waterLevel, Point{x, y + 1}) {
				edges = append(edges, Segment{
					From: Vec{float64(x), float64(y + 1)},
					To:   Vec{float64(x + 1), float64(y + 1)},
				})
			}
		}
	}
	return edges
}

// OceanMask flood fills water from the map border. Cells reachable this
// way are open water; enclosed basins are not.
func OceanMask(elev *Field, waterLevel float64) []bool {
	w, h := elev.Width, elev.Height
	ocean := make([]bool, w*h)
	queue := make([]Point, 0, w*2+h*2)

	seed := func(p Point) {
		if IsWater(elev, waterLevel, p) && !ocean[p.Y*w+p.X] {
			ocean[p.Y*w+p.X] = true
			queue = append(queue, p)
		}
	}
	for x := 0; x < w; x++ {
		seed(Point{x, 0})
		seed(Point{x, h - 1})
	}
	for y := 0; y < h; y++ {
		seed(Point{0, y})
		seed(Point{w - 1, y})
	}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, adj := range p.Adjacent() {
			if !elev.InBounds(adj) {
				continue
			}
			seed(adj)
		}
	}
	return ocean
}

// PlaceLakes rejection-samples lake centres just above the water line.
// Fewer than count lakes come back when the attempt budget runs out.
func PlaceLakes(elev *Field, waterLevel float64, count int, rng Stream) []Lake {
	lakes := make([]Lake, 0, count)
	for i := 0; i < lakeAttempts && len(lakes) < count; i++ {
		c := rng.Cell(elev.Width, elev.Height)
		radius := lakeMinRadius + rng.Float64()*lakeRadiusSpan
		e := elev.Get(c)
		if e > waterLevel+lakeMinRise && e < lakeCeiling {
			lakes = append(lakes, Lake{Center: c, Radius: radius})
		}
	}
	return lakes
}

// TraceRivers samples high-elevation sources and traces each one downhill.
// Rivers that stall in a local minimum end in a synthesized lake, which is
// returned alongside the rivers.
func TraceRivers(elev *Field, waterLevel float64, rng Stream) ([]River, []Lake) {
	var rivers []River
	var lakes []Lake

	accepted := 0
	for i := 0; i < riverAttempts && accepted < riverSources; i++ {
		src := rng.Cell(elev.Width, elev.Height)
		if elev.Get(src) <= waterLevel+riverSourceRise {
			continue
		}
		accepted++

		river := TraceRiver(elev, waterLevel, src)
		if river.Terminus == TerminusLake {
			end := river.Path[len(river.Path)-1]
			lakes = append(lakes, Lake{Center: end, Radius: terminalLakeR, Synthesized: true})
		}
		if len(river.Path) >= 2 {
			rivers = append(rivers, river)
		}
	}
	return rivers, lakes
}

// TraceRiver follows steepest descent over the 8 neighbours, only ever
// stepping to a strictly lower cell. It stops on water, at a local minimum,
// or when the length cap is reached; the last two end in a lake.
func TraceRiver(elev *Field, waterLevel float64, src Point) River {
	path := make([]Point, 0, 32)
	cur := src
	for len(path) < riverMaxLength {
		path = append(path, cur)
		if IsWater(elev, waterLevel, cur) {
			return River{Path: path, Terminus: TerminusWater}
		}

		next, lowest := cur, elev.Get(cur)
		for _, n := range cur.Neighbors8() {
			if e := elev.Get(n); e < lowest {
				lowest, next = e, n
			}
		}
		if next == cur {
			break
		}
		cur = next
	}
	return River{Path: path, Terminus: TerminusLake}
}

// LakeOutline returns the closed polygon of a lake in grid units. The
// radius wobbles with noise keyed on the lake's column so each lake has
// its own shape.
func LakeOutline(l Lake, seed uint32) []Vec {
	pts := make([]Vec, 0, lakeSegments)
	for i := 0; i < lakeSegments; i++ {
		angle := float64(i) / lakeSegments * 2 * math.Pi
		cos, sin := math.Cos(angle), math.Sin(angle)
		r := l.Radius * (0.8 + 0.4*Noise2D(cos*2, sin*2, seed+uint32(l.Center.X)))
		pts = append(pts, Vec{
			X: float64(l.Center.X) + cos*r,
			Y: float64(l.Center.Y) + sin*r,
		})
	}
	return pts
}
