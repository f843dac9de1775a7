package render

import "math"

const (
	fullTurn       = 2 * math.Pi
	circleSegments = 32
	quadSteps      = 16
)

// arcPoints samples n+1 points from angle a0 to a1 on a circle. Angles grow
// clockwise on screen because y points down.
func arcPoints(cx, cy, r, a0, a1 float64, n int) []Pt {
	closed := math.Abs(a1-a0) >= fullTurn
	count := n + 1
	if closed {
		count = n
	}
	pts := make([]Pt, 0, count)
	for i := 0; i < count; i++ {
		a := a0 + (a1-a0)*float64(i)/float64(n)
		pts = append(pts, Pt{cx + r*math.Cos(a), cy + r*math.Sin(a)})
	}
	return pts
}

// polyline is a flattened subpath in device pixels
type polyline struct {
	pts    []Pt
	closed bool
}

// flatten converts path verbs into polylines scaled to device space.
// Quadratic segments are subdivided uniformly.
func flatten(p Path, sx, sy float64) []polyline {
	var out []polyline
	var cur *polyline
	var pen Pt

	flush := func() {
		if cur != nil && len(cur.pts) > 0 {
			out = append(out, *cur)
		}
		cur = nil
	}

	for _, op := range p.ops {
		switch op.Code {
		case OpMoveTo:
			flush()
			pen = Pt{op.P.X * sx, op.P.Y * sy}
			cur = &polyline{pts: []Pt{pen}}
		case OpLineTo:
			if cur == nil {
				cur = &polyline{pts: []Pt{pen}}
			}
			pen = Pt{op.P.X * sx, op.P.Y * sy}
			cur.pts = append(cur.pts, pen)
		case OpQuadTo:
			if cur == nil {
				cur = &polyline{pts: []Pt{pen}}
			}
			ctrl := Pt{op.C.X * sx, op.C.Y * sy}
			end := Pt{op.P.X * sx, op.P.Y * sy}
			for i := 1; i <= quadSteps; i++ {
				t := float64(i) / quadSteps
				u := 1 - t
				cur.pts = append(cur.pts, Pt{
					X: u*u*pen.X + 2*u*t*ctrl.X + t*t*end.X,
					Y: u*u*pen.Y + 2*u*t*ctrl.Y + t*t*end.Y,
				})
			}
			pen = end
		case OpClose:
			if cur != nil {
				cur.closed = true
				pen = cur.pts[0]
			}
			flush()
		}
	}
	flush()
	return out
}

// dashed splits polylines into "on" runs following pattern, which
// alternates on and off lengths in device pixels.
func dashed(lines []polyline, pattern []float64) []polyline {
	total := 0.0
	for _, d := range pattern {
		total += d
	}
	if len(pattern) == 0 || total <= 0 {
		return lines
	}

	var out []polyline
	for _, l := range lines {
		pts := l.pts
		if l.closed && len(pts) > 1 {
			pts = append(append([]Pt(nil), pts...), pts[0])
		}

		idx, left, on := 0, pattern[0], true
		run := []Pt{pts[0]}
		for i := 1; i < len(pts); i++ {
			a, b := pts[i-1], pts[i]
			seg := math.Hypot(b.X-a.X, b.Y-a.Y)
			pos := 0.0
			for seg-pos > left {
				pos += left
				t := pos / seg
				q := Pt{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
				if on {
					run = append(run, q)
					out = append(out, polyline{pts: run})
					run = nil
				} else {
					run = []Pt{q}
				}
				on = !on
				idx = (idx + 1) % len(pattern)
				left = pattern[idx]
			}
			left -= seg - pos
			if on {
				run = append(run, b)
			}
		}
		if on && len(run) > 1 {
			out = append(out, polyline{pts: run})
		}
	}
	return out
}

// signedArea is positive for clockwise polygons in screen space
func signedArea(pts []Pt) float64 {
	a := 0.0
	for i := range pts {
		j := (i + 1) % len(pts)
		a += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return a / 2
}

// oriented returns pts wound clockwise so that overlapping pieces of one
// stroke accumulate instead of cancelling
func oriented(pts []Pt) []Pt {
	if signedArea(pts) >= 0 {
		return pts
	}
	out := make([]Pt, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}

// strokeOutline expands polylines into consistently wound quads and round
// joins. The union of the returned polygons is the stroked area.
func strokeOutline(lines []polyline, halfWidth float64) [][]Pt {
	discSegs := int(math.Ceil(halfWidth * fullTurn / 1.5))
	discSegs = max(8, min(discSegs, circleSegments))

	var polys [][]Pt
	for _, l := range lines {
		pts := l.pts
		if l.closed && len(pts) > 1 {
			pts = append(append([]Pt(nil), pts...), pts[0])
		}
		for i := 1; i < len(pts); i++ {
			a, b := pts[i-1], pts[i]
			dx, dy := b.X-a.X, b.Y-a.Y
			length := math.Hypot(dx, dy)
			if length == 0 {
				continue
			}
			nx, ny := -dy/length*halfWidth, dx/length*halfWidth
			polys = append(polys, oriented([]Pt{
				{a.X + nx, a.Y + ny},
				{b.X + nx, b.Y + ny},
				{b.X - nx, b.Y - ny},
				{a.X - nx, a.Y - ny},
			}))
		}
		for _, p := range pts {
			polys = append(polys, oriented(arcPoints(p.X, p.Y, halfWidth, 0, fullTurn, discSegs)))
		}
	}
	return polys
}
