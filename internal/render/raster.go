package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// MaxDimension bounds either side of a raster
const MaxDimension = 8192

// minHalfWidth keeps hairlines visible on small previews
const minHalfWidth = 0.35

// ErrInvalidSize is returned for non-positive or oversized rasters
var ErrInvalidSize = errors.New("invalid raster size")

// ValidateSize checks output dimensions before any work is done
func ValidateSize(width, height int) error {
	if width <= 0 || height <= 0 || width > MaxDimension || height > MaxDimension {
		return fmt.Errorf("%w: %dx%d (each side must be in 1..%d)", ErrInvalidSize, width, height, MaxDimension)
	}
	return nil
}

// Rasterize paints the scene into a width x height image. Logical
// coordinates are scaled per axis; line widths, dashes and font sizes use
// the mean scale, so the composition matches at every size.
func Rasterize(scene *Scene, width, height int) (*image.RGBA, error) {
	if err := ValidateSize(width, height); err != nil {
		return nil, err
	}
	set, err := loadFonts()
	if err != nil {
		return nil, err
	}

	c := newCanvas(width, height, set)
	defer c.faces.close()

	for i, cmd := range scene.commands {
		if err := c.draw(cmd); err != nil {
			return nil, fmt.Errorf("command %d (%s): %w", i, cmd.Layer, err)
		}
	}
	return c.img, nil
}

type canvas struct {
	img    *image.RGBA
	z      *vector.Rasterizer
	faces  *faceCache
	clip   image.Rectangle
	sx, sy float64
	s      float64
}

func newCanvas(width, height int, set *fontSet) *canvas {
	sx := float64(width) / LogicalWidth
	sy := float64(height) / LogicalHeight
	return &canvas{
		img:   image.NewRGBA(image.Rect(0, 0, width, height)),
		z:     vector.NewRasterizer(width, height),
		faces: newFaceCache(set),
		sx:    sx,
		sy:    sy,
		s:     (sx + sy) / 2,
	}
}

func (c *canvas) draw(cmd Command) error {
	switch cmd.Kind {
	case KindTexture:
		c.fillPath(cmd.Path, cmd.Style.Fill)
		applyGrain(c.img, cmd.Texture)
	case KindPath:
		if cmd.Style.HasFill() {
			c.fillPath(cmd.Path, cmd.Style.Fill)
		}
		if cmd.Style.HasStroke() {
			c.strokePath(cmd.Path, cmd.Style)
		}
	case KindText:
		return c.drawText(cmd)
	default:
		return fmt.Errorf("unknown command kind %d", cmd.Kind)
	}
	return nil
}

// begin sizes the rasterizer to the device-space box covering pts and
// reports false when the box misses the image entirely
func (c *canvas) begin(pts []Pt) bool {
	if len(pts) == 0 {
		return false
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	r := image.Rect(
		int(math.Floor(minX))-1, int(math.Floor(minY))-1,
		int(math.Ceil(maxX))+1, int(math.Ceil(maxY))+1,
	).Intersect(c.img.Bounds())
	if r.Empty() {
		return false
	}
	c.clip = r
	c.z.Reset(r.Dx(), r.Dy())
	c.z.DrawOp = draw.Over
	return true
}

func (c *canvas) paint(col color.NRGBA) {
	c.z.Draw(c.img, c.clip, image.NewUniform(col), image.Point{})
}

// local converts a device point into rasterizer space
func (c *canvas) local(p Pt) (float32, float32) {
	return float32(p.X - float64(c.clip.Min.X)), float32(p.Y - float64(c.clip.Min.Y))
}

// fillPath fills every subpath, closing any left open
func (c *canvas) fillPath(p Path, col color.NRGBA) {
	dev := make([]Op, len(p.ops))
	pts := make([]Pt, 0, len(p.ops)*2)
	for i, op := range p.ops {
		dev[i] = Op{Code: op.Code, P: c.device(op.P), C: c.device(op.C)}
		switch op.Code {
		case OpMoveTo, OpLineTo:
			pts = append(pts, dev[i].P)
		case OpQuadTo:
			pts = append(pts, dev[i].P, dev[i].C)
		}
	}
	if !c.begin(pts) {
		return
	}

	for _, op := range dev {
		switch op.Code {
		case OpMoveTo:
			c.z.ClosePath()
			c.z.MoveTo(c.local(op.P))
		case OpLineTo:
			c.z.LineTo(c.local(op.P))
		case OpQuadTo:
			cx, cy := c.local(op.C)
			px, py := c.local(op.P)
			c.z.QuadTo(cx, cy, px, py)
		case OpClose:
			c.z.ClosePath()
		}
	}
	c.z.ClosePath()
	c.paint(col)
}

func (c *canvas) strokePath(p Path, st Style) {
	lines := flatten(p, c.sx, c.sy)
	if len(st.Dash) > 0 {
		pattern := make([]float64, len(st.Dash))
		for i, d := range st.Dash {
			pattern[i] = d * c.s
		}
		lines = dashed(lines, pattern)
	}

	halfWidth := math.Max(st.LineWidth*c.s/2, minHalfWidth)
	polys := strokeOutline(lines, halfWidth)

	var pts []Pt
	for _, poly := range polys {
		pts = append(pts, poly...)
	}
	if !c.begin(pts) {
		return
	}
	for _, poly := range polys {
		c.z.MoveTo(c.local(poly[0]))
		for _, q := range poly[1:] {
			c.z.LineTo(c.local(q))
		}
		c.z.ClosePath()
	}
	c.paint(st.Stroke)
}

func (c *canvas) drawText(cmd Command) error {
	face, err := c.faces.face(cmd.Style.Bold, cmd.Style.FontSize*c.s)
	if err != nil {
		return err
	}

	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(cmd.Style.Fill),
		Face: face,
	}
	x := cmd.Anchor.X * c.sx
	y := cmd.Anchor.Y * c.sy
	if cmd.Style.Align == AlignCenter {
		x -= float64(d.MeasureString(cmd.Text)) / 64 / 2
	}
	d.Dot = fixed.Point26_6{
		X: fixed.Int26_6(math.Round(x * 64)),
		Y: fixed.Int26_6(math.Round(y * 64)),
	}
	d.DrawString(cmd.Text)
	return nil
}

func (c *canvas) device(p Pt) Pt {
	return Pt{p.X * c.sx, p.Y * c.sy}
}
