package surface

import (
	"fmt"
	"math"
	"os"

	"github.com/jbeda/geom"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"

	"github.com/tuckbox/tuckbox/internal/dieline"
)

// cutLayer holds every cut line of the drawing.
const cutLayer = "CUT"

// ellipseChords is the number of LINE entities an elliptical arc is split
// into; DXF arcs are circular only.
const ellipseChords = 32

// DXF collects a dieline as a DXF drawing. The first failing entity is
// remembered and returned by Save.
type DXF struct {
	d        *drawing.Drawing
	entities int
	err      error
}

func NewDXF() (*DXF, error) {
	d := dxf.NewDrawing()
	if _, err := d.AddLayer(cutLayer, color.Red, dxf.DefaultLineType, true); err != nil {
		return nil, fmt.Errorf("dxf layer: %w", err)
	}
	return &DXF{d: d}, nil
}

func (x *DXF) line(p1, p2 geom.Coord) {
	if x.err != nil {
		return
	}
	if _, err := x.d.Line(p1.X, p1.Y, 0, p2.X, p2.Y, 0); err != nil {
		x.err = err
		return
	}
	x.entities++
}

func (x *DXF) Line(p1, p2 geom.Coord) {
	x.line(p1, p2)
}

func (x *DXF) CircularArc(p1, p2 geom.Coord, rx, ry float64, sweep bool) {
	arc := &dieline.Arc{A: p1, B: p2, RX: rx, RY: ry, Sweep: sweep}
	if !arc.Circular() {
		pts := arc.Flatten(ellipseChords)
		for i := 1; i < len(pts); i++ {
			x.line(pts[i-1], pts[i])
		}
		return
	}
	if x.err != nil {
		return
	}

	c := arc.Center()
	r, _ := arc.Radii()
	start, extent := arc.Angles()
	// DXF arcs always run counter-clockwise
	from, to := start, start+extent
	if extent < 0 {
		from, to = to, from
	}
	if _, err := x.d.Arc(c.X, c.Y, 0, r, degrees(from), degrees(to)); err != nil {
		x.err = err
		return
	}
	x.entities++
}

// Entities is the number of DXF entities drawn so far.
func (x *DXF) Entities() int { return x.entities }

func degrees(rad float64) float64 {
	d := math.Mod(rad*180/math.Pi, 360)
	if d < 0 {
		d += 360
	}
	return d
}

func (x *DXF) Save(path string) error {
	if x.err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, path, x.err)
	}
	return replaceFile(path, func(f *os.File) error {
		return x.d.SaveAs(f.Name())
	})
}
