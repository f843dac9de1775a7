package render

import (
	"image/color"

	"cartographer.dev/internal/generation"
)

const (
	cellW = LogicalWidth / generation.GridWidth
	cellH = LogicalHeight / generation.GridHeight

	riverJitter      = 0.15
	riverJitterSalt  = 0x5A17
	glyphSizeSalt    = 0x6C31
	grainScale       = 8.0
	grainStrength    = 0.05
	castleSize       = 28.0
	legendX          = 60.0
	legendW, legendH = 180.0, 120.0
)

var roadDash = []float64{5, 5}

// Composer builds a Scene from a generated map
type Composer struct {
	palette *Palette
	m       *generation.Map
	out     []Command
}

// NewComposer creates a composer using the given palette
func NewComposer(p *Palette) *Composer {
	if p == nil {
		p = DefaultPalette()
	}
	return &Composer{palette: p}
}

// Compose lays out every map element with the default palette
func Compose(m *generation.Map) *Scene {
	return NewComposer(nil).Compose(m)
}

// Compose emits the layers in fixed back-to-front order. The result does
// not depend on the output size.
func (c *Composer) Compose(m *generation.Map) *Scene {
	c.m = m
	c.out = make([]Command, 0, 2048)

	c.paper()
	c.water()
	c.coastline()
	c.lakes()
	c.rivers()
	c.roads()
	c.features()
	c.settlements()
	c.ships()
	c.legend()
	c.compass()

	s := &Scene{seed: m.Seed, commands: c.out}
	c.m, c.out = nil, nil
	return s
}

func (c *Composer) emit(cmd Command) {
	c.out = append(c.out, cmd)
}

func (c *Composer) shape(l Layer, p *Path, st Style) {
	c.emit(Command{Layer: l, Kind: KindPath, Path: *p, Style: st})
}

func (c *Composer) text(l Layer, s string, x, y, size float64, bold bool, align Align) {
	c.emit(Command{
		Layer:  l,
		Kind:   KindText,
		Text:   s,
		Anchor: Pt{x, y},
		Style:  Style{Fill: c.palette.Text, FontSize: size, Bold: bold, Align: align},
	})
}

func cellPt(v generation.Vec) Pt {
	return Pt{v.X * cellW, v.Y * cellH}
}

func fill(col color.NRGBA) Style {
	return Style{Fill: col}
}

func stroke(col color.NRGBA, width float64) Style {
	return Style{Stroke: col, LineWidth: width}
}

func fillStroke(f, s color.NRGBA, width float64) Style {
	return Style{Fill: f, Stroke: s, LineWidth: width}
}

func (c *Composer) paper() {
	var p Path
	p.Rect(0, 0, LogicalWidth, LogicalHeight)
	c.emit(Command{
		Layer: LayerPaper,
		Kind:  KindTexture,
		Path:  p,
		Style: fill(c.palette.Paper),
		Texture: Texture{
			Seed:     int64(c.m.Seed),
			Scale:    grainScale,
			Strength: grainStrength,
		},
	})
}

// water merges horizontal runs of water cells into single rectangles
func (c *Composer) water() {
	var p Path
	for y := 0; y < c.m.Height(); y++ {
		run := -1
		for x := 0; x <= c.m.Width(); x++ {
			wet := x < c.m.Width() && c.m.IsWater(generation.Point{X: x, Y: y})
			switch {
			case wet && run < 0:
				run = x
			case !wet && run >= 0:
				p.Rect(float64(run)*cellW, float64(y)*cellH, float64(x-run)*cellW, cellH)
				run = -1
			}
		}
	}
	if p.Len() > 0 {
		c.shape(LayerWater, &p, fill(c.palette.Water))
	}
}

func (c *Composer) coastline() {
	var p Path
	for _, e := range generation.CoastEdges(c.m.Elevation, c.m.Params.WaterLevel) {
		a, b := cellPt(e.From), cellPt(e.To)
		p.MoveTo(a.X, a.Y).LineTo(b.X, b.Y)
	}
	if p.Len() > 0 {
		c.shape(LayerCoastline, &p, stroke(c.palette.WaterOutline, 1.5))
	}
}

func (c *Composer) lakes() {
	for _, l := range c.m.Lakes {
		outline := generation.LakeOutline(l, c.m.Seed)
		pts := make([]Pt, len(outline))
		for i, v := range outline {
			pts[i] = cellPt(v)
		}
		var p Path
		p.Polygon(pts)
		c.shape(LayerLakes, &p, fillStroke(c.palette.Water, c.palette.WaterOutline, 1.5))
	}
}

func (c *Composer) rivers() {
	salt := c.m.Seed ^ riverJitterSalt
	for i, r := range c.m.Rivers {
		var p Path
		for j, cell := range r.Path {
			pt := cellPt(cell.Vec())
			if j > 0 {
				pt.X += (generation.CellHash(salt, i, 2*j) - 0.5) * 2 * riverJitter * cellW
				pt.Y += (generation.CellHash(salt, i, 2*j+1) - 0.5) * 2 * riverJitter * cellH
			}
			if j == 0 {
				p.MoveTo(pt.X, pt.Y)
			} else {
				p.LineTo(pt.X, pt.Y)
			}
		}
		c.shape(LayerRivers, &p, stroke(c.palette.WaterOutline, 2))
	}
}

func (c *Composer) roads() {
	var p Path
	for _, r := range c.m.Roads.Roads {
		a := cellPt(c.m.Cities[r.From].Cell.Vec())
		b := cellPt(c.m.Cities[r.To].Cell.Vec())
		mx, my := (a.X+b.X)/2+r.Bend*cellW, (a.Y+b.Y)/2+r.Bend*cellH
		p.MoveTo(a.X, a.Y).QuadTo(mx, my, b.X, b.Y)
	}
	if p.Len() > 0 {
		st := stroke(c.palette.Road, 1.5)
		st.Dash = roadDash
		c.shape(LayerRoads, &p, st)
	}
}

func (c *Composer) features() {
	salt := c.m.Seed ^ glyphSizeSalt
	for _, f := range generation.ClassifyFeatures(c.m) {
		at := cellPt(f.Position)
		r := generation.CellHash(salt, f.Cell.X, f.Cell.Y)
		switch f.Kind {
		case generation.FeatureMountain:
			c.mountain(at, 25+(f.Elevation-0.6)*60)
		case generation.FeatureTree:
			c.tree(at, 10+r*6)
		case generation.FeatureHill:
			c.hill(at, 12+r*6)
		}
	}
}

func (c *Composer) mountain(at Pt, size float64) {
	x, y, half := at.X, at.Y, size/2

	var light Path
	light.Polygon([]Pt{{x - half, y}, {x, y - size}, {x + half, y}})
	c.shape(LayerFeatures, &light, fill(c.palette.MountainLight))

	var shadow Path
	shadow.Polygon([]Pt{{x, y - size}, {x + half, y}, {x, y}})
	c.shape(LayerFeatures, &shadow, fill(c.palette.MountainShadow))

	var outline Path
	outline.MoveTo(x-half, y).LineTo(x, y-size).LineTo(x+half, y)
	c.shape(LayerFeatures, &outline, stroke(c.palette.Ink, 1.5))
}

func (c *Composer) tree(at Pt, size float64) {
	x, y, r := at.X, at.Y, size/2

	var crown Path
	crown.Circle(x, y-r, r)
	c.shape(LayerFeatures, &crown, fill(c.palette.Tree))

	var ink Path
	ink.Arc(x, y-r, r, 0, fullTurn/2)
	ink.MoveTo(x, y).LineTo(x, y+3)
	c.shape(LayerFeatures, &ink, stroke(c.palette.Ink, 1.5))
}

func (c *Composer) hill(at Pt, size float64) {
	var p Path
	p.Arc(at.X, at.Y, size, fullTurn/2, fullTurn)
	c.shape(LayerFeatures, &p, stroke(c.palette.Ink, 1.5))
}

func (c *Composer) settlements() {
	for _, s := range c.m.Castles {
		c.castle(cellPt(s.Cell.Vec()), s.Name)
	}
	for _, s := range c.m.Cities {
		c.city(cellPt(s.Cell.Vec()), s.Name)
	}
}

func (c *Composer) castle(at Pt, name string) {
	x, y, s := at.X, at.Y, castleSize
	stone := fillStroke(c.palette.Stone, c.palette.Ink, 2)

	var walls Path
	walls.Rect(x-s/2, y-s*0.8, s*0.25, s*0.8)
	walls.Rect(x+s/4, y-s*0.8, s*0.25, s*0.8)
	c.shape(LayerSettlements, &walls, stone)

	var keep Path
	keep.Rect(x-s/4, y-s*0.6, s/2, s*0.6)
	c.shape(LayerSettlements, &keep, stone)

	for _, left := range []float64{x - s/2, x + s/4} {
		var roof Path
		roof.Polygon([]Pt{{left - 2, y - s*0.8}, {left + s*0.125, y - s*1.2}, {left + s*0.25 + 2, y - s*0.8}})
		c.shape(LayerSettlements, &roof, fillStroke(c.palette.Roof, c.palette.Ink, 2))
	}

	var gate Path
	gate.Arc(x, y, 4, fullTurn/2, fullTurn)
	gate.LineTo(x+4, y).LineTo(x-4, y).Close()
	c.shape(LayerSettlements, &gate, fill(c.palette.Ink))

	c.text(LayerSettlements, name, x, y+24, 20, true, AlignCenter)
}

func (c *Composer) city(at Pt, name string) {
	var ring Path
	ring.Circle(at.X, at.Y, 5)
	c.shape(LayerSettlements, &ring, fillStroke(c.palette.Paper, c.palette.Ink, 2))

	var dot Path
	dot.Circle(at.X, at.Y, 2)
	c.shape(LayerSettlements, &dot, fill(c.palette.Text))

	c.text(LayerSettlements, name, at.X, at.Y-12, 18, true, AlignCenter)
}

func (c *Composer) ships() {
	for _, s := range c.m.Ships {
		at := cellPt(s.Cell.Vec())
		x, y := at.X, at.Y

		var hull Path
		hull.Polygon([]Pt{{x, y}, {x + 15, y}, {x + 7, y + 5}})
		c.shape(LayerShips, &hull, fillStroke(c.palette.Paper, c.palette.Ink, 1.5))

		var sail Path
		sail.Polygon([]Pt{{x + 7, y}, {x + 7, y - 15}, {x + 18, y - 8}})
		c.shape(LayerShips, &sail, stroke(c.palette.Ink, 1.5))
	}
}

func (c *Composer) legend() {
	lx, ly := legendX, LogicalHeight-160

	var box Path
	box.Rect(lx, ly, legendW, legendH)
	c.shape(LayerLegend, &box, fillStroke(c.palette.LegendWash, c.palette.Ink, 3))

	c.text(LayerLegend, "MAP LEGEND", lx+15, ly+25, 14, true, AlignLeft)

	// Settlement
	var ring Path
	ring.Circle(lx+20, ly+46, 4)
	c.shape(LayerLegend, &ring, fill(c.palette.Text))
	c.text(LayerLegend, "Settlement", lx+35, ly+50, 12, false, AlignLeft)

	// Castle
	cx, cy := lx+20, ly+75
	var towers Path
	towers.Rect(cx-5, cy-8, 3, 8).Rect(cx+2, cy-8, 3, 8).Rect(cx-2, cy-5, 4, 5)
	c.shape(LayerLegend, &towers, fillStroke(c.palette.Stone, c.palette.Ink, 1))
	c.text(LayerLegend, "Castle", lx+35, ly+75, 12, false, AlignLeft)

	// Mountain
	mx, my := lx+20, ly+95
	var peak Path
	peak.Polygon([]Pt{{mx - 6, my}, {mx, my - 10}, {mx + 6, my}})
	c.shape(LayerLegend, &peak, fillStroke(c.palette.MountainLight, c.palette.Ink, 1))
	c.text(LayerLegend, "Mountain", lx+35, ly+95, 12, false, AlignLeft)

	// Forest
	tx, ty := lx+20, ly+111
	var crown Path
	crown.Circle(tx, ty, 5)
	c.shape(LayerLegend, &crown, fillStroke(c.palette.Tree, c.palette.Ink, 1))
	c.text(LayerLegend, "Forest", lx+35, ly+115, 12, false, AlignLeft)
}

func (c *Composer) compass() {
	x, y := LogicalWidth-80, LogicalHeight-80

	var star Path
	star.Polygon([]Pt{
		{x, y - 40}, {x + 8, y - 8}, {x + 40, y}, {x + 8, y + 8},
		{x, y + 40}, {x - 8, y + 8}, {x - 40, y}, {x - 8, y - 8},
	})
	c.shape(LayerCompass, &star, stroke(c.palette.Ink, 3))

	c.text(LayerCompass, "N", x, y-50, 24, true, AlignCenter)
}
