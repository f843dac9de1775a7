// Package render turns a generated map into an ordered list of draw
// commands and rasterizes that list at any output size.
package render

import "image/color"

// LogicalWidth and LogicalHeight are the canvas every command is expressed in.
// Rasterize scales them to the requested output size.
const (
	LogicalWidth  = 2048.0
	LogicalHeight = 1536.0
)

// Layer identifies a drawing pass. Commands in a Scene appear in ascending
// layer order.
type Layer int

const (
	LayerPaper Layer = iota
	LayerWater
	LayerCoastline
	LayerLakes
	LayerRivers
	LayerRoads
	LayerFeatures
	LayerSettlements
	LayerShips
	LayerLegend
	LayerCompass
)

var layerNames = [...]string{
	"paper", "water", "coastline", "lakes", "rivers", "roads",
	"features", "settlements", "ships", "legend", "compass",
}

func (l Layer) String() string {
	if l < 0 || int(l) >= len(layerNames) {
		return "unknown"
	}
	return layerNames[l]
}

// Kind selects how a command is rasterized
type Kind int

const (
	KindPath Kind = iota
	KindText
	KindTexture
)

// Pt is a position on the logical canvas
type Pt struct {
	X, Y float64
}

// OpCode is a path construction verb
type OpCode uint8

const (
	OpMoveTo OpCode = iota
	OpLineTo
	OpQuadTo
	OpClose
)

// Op is one path verb. C is the control point of a quadratic segment.
type Op struct {
	Code OpCode
	P    Pt
	C    Pt
}

// Path is a sequence of subpaths built from path verbs
type Path struct {
	ops []Op
}

// MoveTo starts a new subpath
func (p *Path) MoveTo(x, y float64) *Path {
	p.ops = append(p.ops, Op{Code: OpMoveTo, P: Pt{x, y}})
	return p
}

// LineTo adds a straight segment
func (p *Path) LineTo(x, y float64) *Path {
	p.ops = append(p.ops, Op{Code: OpLineTo, P: Pt{x, y}})
	return p
}

// QuadTo adds a quadratic Bézier segment with control point (cx, cy)
func (p *Path) QuadTo(cx, cy, x, y float64) *Path {
	p.ops = append(p.ops, Op{Code: OpQuadTo, P: Pt{x, y}, C: Pt{cx, cy}})
	return p
}

// Close closes the current subpath
func (p *Path) Close() *Path {
	p.ops = append(p.ops, Op{Code: OpClose})
	return p
}

// Rect adds a closed axis-aligned rectangle
func (p *Path) Rect(x, y, w, h float64) *Path {
	return p.MoveTo(x, y).LineTo(x+w, y).LineTo(x+w, y+h).LineTo(x, y+h).Close()
}

// Polygon adds a closed polygon through pts
func (p *Path) Polygon(pts []Pt) *Path {
	if len(pts) == 0 {
		return p
	}
	p.MoveTo(pts[0].X, pts[0].Y)
	for _, q := range pts[1:] {
		p.LineTo(q.X, q.Y)
	}
	return p.Close()
}

// Circle adds a closed circle approximated by line segments
func (p *Path) Circle(cx, cy, r float64) *Path {
	return p.Polygon(arcPoints(cx, cy, r, 0, fullTurn, circleSegments))
}

// Arc adds an open arc from angle a0 to a1 (radians, clockwise on screen)
func (p *Path) Arc(cx, cy, r, a0, a1 float64) *Path {
	pts := arcPoints(cx, cy, r, a0, a1, circleSegments/2)
	p.MoveTo(pts[0].X, pts[0].Y)
	for _, q := range pts[1:] {
		p.LineTo(q.X, q.Y)
	}
	return p
}

// Ops returns a copy of the path verbs
func (p Path) Ops() []Op {
	out := make([]Op, len(p.ops))
	copy(out, p.ops)
	return out
}

// Len returns the number of path verbs
func (p Path) Len() int { return len(p.ops) }

func (p Path) clone() Path {
	return Path{ops: p.Ops()}
}

// Align controls horizontal text placement relative to the anchor
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
)

// Style carries every paint attribute a command needs. A zero-alpha
// colour means the fill or stroke is not painted.
type Style struct {
	Fill      color.NRGBA
	Stroke    color.NRGBA
	LineWidth float64
	Dash      []float64
	FontSize  float64
	Bold      bool
	Align     Align
}

// HasFill reports whether the style paints a fill
func (s Style) HasFill() bool { return s.Fill.A > 0 }

// HasStroke reports whether the style paints an outline
func (s Style) HasStroke() bool { return s.Stroke.A > 0 && s.LineWidth > 0 }

// Texture describes the procedural paper grain
type Texture struct {
	Seed     int64
	Scale    float64
	Strength float64
}

// Command is a single self-contained draw instruction
type Command struct {
	Layer   Layer
	Kind    Kind
	Path    Path
	Text    string
	Anchor  Pt
	Style   Style
	Texture Texture
}

func (c Command) clone() Command {
	out := c
	out.Path = c.Path.clone()
	if c.Style.Dash != nil {
		out.Style.Dash = append([]float64(nil), c.Style.Dash...)
	}
	return out
}

// Scene is an immutable, ordered command list on the logical canvas
type Scene struct {
	seed     uint32
	commands []Command
}

// Seed returns the seed of the map the scene was composed from
func (s *Scene) Seed() uint32 { return s.seed }

// Len returns the number of commands
func (s *Scene) Len() int { return len(s.commands) }

// Commands returns a deep copy of the command list
func (s *Scene) Commands() []Command {
	out := make([]Command, len(s.commands))
	for i, c := range s.commands {
		out[i] = c.clone()
	}
	return out
}

// Layers returns the layer of every command in order
func (s *Scene) Layers() []Layer {
	out := make([]Layer, len(s.commands))
	for i, c := range s.commands {
		out[i] = c.Layer
	}
	return out
}

// Count returns how many commands belong to a layer
func (s *Scene) Count(l Layer) int {
	n := 0
	for _, c := range s.commands {
		if c.Layer == l {
			n++
		}
	}
	return n
}
