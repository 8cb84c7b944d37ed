package dieline

import (
	"math"

	"github.com/jbeda/geom"
)

// Surface receives the draw calls for a dieline, in emission order.
type Surface interface {
	Line(p1, p2 geom.Coord)
	// CircularArc draws the small arc from p1 to p2 with radii rx, ry.
	// sweep selects the positive-angle direction, like the SVG sweep-flag.
	CircularArc(p1, p2 geom.Coord, rx, ry float64, sweep bool)
}

////////////////////////////////////////////////////////////////////////////
// Float comparison

// FloatEqualThresh is the tolerance used to decide that two coordinates
// are the same point.
const FloatEqualThresh = 1e-9

func FloatAlmostEqual(a, b float64) bool {
	return math.Abs(a-b) < FloatEqualThresh
}

func AlmostEqualsCoord(a, b geom.Coord) bool {
	return FloatAlmostEqual(a.X, b.X) && FloatAlmostEqual(a.Y, b.Y)
}

////////////////////////////////////////////////////////////////////////////
// Edges

// Edge is a single cut of the net.
type Edge interface {
	P1() geom.Coord
	P2() geom.Coord
	Bounds() geom.Rect
	Length() float64
	Reverse()
	Draw(s Surface)
}

// +++ Segment
type Segment struct {
	A, B geom.Coord
}

func (sg *Segment) P1() geom.Coord { return sg.A }
func (sg *Segment) P2() geom.Coord { return sg.B }

func (sg *Segment) Bounds() geom.Rect {
	r := geom.Rect{Min: sg.A, Max: sg.A}
	r.ExpandToContainCoord(sg.B)
	return r
}

func (sg *Segment) Length() float64 {
	return sg.A.DistanceFrom(sg.B)
}

func (sg *Segment) Reverse() {
	sg.A, sg.B = sg.B, sg.A
}

func (sg *Segment) Draw(s Surface) {
	s.Line(sg.A, sg.B)
}

// +++ Arc
// Arc is the small elliptical arc from A to B with axis-aligned radii RX
// and RY. Sweep true follows increasing angle.
type Arc struct {
	A, B   geom.Coord
	RX, RY float64
	Sweep  bool
}

func (ar *Arc) P1() geom.Coord { return ar.A }
func (ar *Arc) P2() geom.Coord { return ar.B }

func (ar *Arc) Reverse() {
	ar.A, ar.B = ar.B, ar.A
	ar.Sweep = !ar.Sweep
}

func (ar *Arc) Draw(s Surface) {
	s.CircularArc(ar.A, ar.B, ar.RX, ar.RY, ar.Sweep)
}

// Circular reports whether the arc is part of a circle.
func (ar *Arc) Circular() bool {
	return FloatAlmostEqual(ar.RX, ar.RY)
}

// Corrected reports whether the declared radii are too short to span the
// chord and had to be scaled up.
func (ar *Arc) Corrected() bool {
	rx, ry := ar.Radii()
	return !FloatAlmostEqual(rx, ar.RX) || !FloatAlmostEqual(ry, ar.RY)
}

func (ar *Arc) lambda() float64 {
	x1 := (ar.A.X - ar.B.X) / 2
	y1 := (ar.A.Y - ar.B.Y) / 2
	return x1*x1/(ar.RX*ar.RX) + y1*y1/(ar.RY*ar.RY)
}

// Radii returns the radii actually used to join A and B. Radii that cannot
// reach both endpoints are scaled up until the arc is a half ellipse, the
// same correction SVG renderers apply.
func (ar *Arc) Radii() (rx, ry float64) {
	rx, ry = math.Abs(ar.RX), math.Abs(ar.RY)
	if l := ar.lambda(); l > 1 {
		s := math.Sqrt(l)
		rx, ry = rx*s, ry*s
	}
	return rx, ry
}

// Center solves for the center of the arc's ellipse from its endpoints.
func (ar *Arc) Center() geom.Coord {
	rx, ry := ar.Radii()
	x1 := (ar.A.X - ar.B.X) / 2
	y1 := (ar.A.Y - ar.B.Y) / 2
	num := rx*rx*ry*ry - rx*rx*y1*y1 - ry*ry*x1*x1
	den := rx*rx*y1*y1 + ry*ry*x1*x1
	k := 0.0
	if den > 0 && num > 0 {
		k = math.Sqrt(num / den)
	}
	// always the small arc, so the side depends on sweep alone
	if !ar.Sweep {
		k = -k
	}
	mid := ar.A.Plus(ar.B).Times(0.5)
	return geom.Coord{
		X: mid.X + k*rx*y1/ry,
		Y: mid.Y - k*ry*x1/rx,
	}
}

// Angles returns the parametric start angle and the signed angular extent,
// in radians.
func (ar *Arc) Angles() (start, extent float64) {
	c := ar.Center()
	rx, ry := ar.Radii()
	start = math.Atan2((ar.A.Y-c.Y)/ry, (ar.A.X-c.X)/rx)
	end := math.Atan2((ar.B.Y-c.Y)/ry, (ar.B.X-c.X)/rx)
	extent = end - start
	if ar.Sweep && extent < 0 {
		extent += 2 * math.Pi
	} else if !ar.Sweep && extent > 0 {
		extent -= 2 * math.Pi
	}
	return start, extent
}

// PointAt returns the point at parametric angle a.
func (ar *Arc) PointAt(a float64) geom.Coord {
	c := ar.Center()
	rx, ry := ar.Radii()
	return geom.Coord{X: c.X + rx*math.Cos(a), Y: c.Y + ry*math.Sin(a)}
}

// Flatten approximates the arc with n chords. The first and last points
// are exactly A and B.
func (ar *Arc) Flatten(n int) []geom.Coord {
	if n < 1 {
		n = 1
	}
	start, extent := ar.Angles()
	pts := make([]geom.Coord, 0, n+1)
	pts = append(pts, ar.A)
	for i := 1; i < n; i++ {
		pts = append(pts, ar.PointAt(start+extent*float64(i)/float64(n)))
	}
	return append(pts, ar.B)
}

func (ar *Arc) Length() float64 {
	_, extent := ar.Angles()
	if ar.Circular() {
		rx, _ := ar.Radii()
		return math.Abs(extent) * rx
	}
	pts := ar.Flatten(64)
	total := 0.0
	for i := 1; i < len(pts); i++ {
		total += pts[i-1].DistanceFrom(pts[i])
	}
	return total
}

// Bounds includes the axis extremes the arc passes through.
func (ar *Arc) Bounds() geom.Rect {
	r := geom.Rect{Min: ar.A, Max: ar.A}
	r.ExpandToContainCoord(ar.B)
	start, extent := ar.Angles()
	for k := -4; k <= 4; k++ {
		a := float64(k) * math.Pi / 2
		if angleWithin(a, start, extent) {
			r.ExpandToContainCoord(ar.PointAt(a))
		}
	}
	return r
}

func angleWithin(a, start, extent float64) bool {
	if extent >= 0 {
		return a > start && a < start+extent
	}
	return a < start && a > start+extent
}
