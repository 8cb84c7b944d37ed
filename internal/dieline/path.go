package dieline

import (
	"container/list"
	"math"

	"github.com/jbeda/geom"
)

// Path is a run of edges where each edge starts at the previous one's end.
type Path struct {
	segs *list.List
}

func (me *Path) init() {
	if me.segs == nil {
		me.segs = new(list.List)
	}
}

func (me *Path) PushFront(e Edge) {
	me.init()
	me.segs.PushFront(e)
}

func (me *Path) PushBack(e Edge) {
	me.init()
	me.segs.PushBack(e)
}

func (me *Path) PushPathFront(path *Path) {
	me.init()
	me.segs.PushFrontList(path.segs)
}

func (me *Path) PushPathBack(path *Path) {
	me.init()
	me.segs.PushBackList(path.segs)
}

// Reverse flips the direction of the path and of every edge in it.
func (me *Path) Reverse() {
	newSegs := new(list.List)
	for e := me.segs.Front(); e != nil; e = e.Next() {
		e.Value.(Edge).Reverse()
		newSegs.PushFront(e.Value)
	}
	me.segs = newSegs
}

func (me *Path) Len() int {
	if me.segs == nil {
		return 0
	}
	return me.segs.Len()
}

func (me *Path) Front() Edge {
	if me.Len() == 0 {
		return nil
	}
	return me.segs.Front().Value.(Edge)
}

func (me *Path) Back() Edge {
	if me.Len() == 0 {
		return nil
	}
	return me.segs.Back().Value.(Edge)
}

func (me *Path) FrontPoint() geom.Coord { return me.Front().P1() }
func (me *Path) BackPoint() geom.Coord  { return me.Back().P2() }

// Edges returns the path's edges in order.
func (me *Path) Edges() []Edge {
	edges := make([]Edge, 0, me.Len())
	if me.segs == nil {
		return edges
	}
	for e := me.segs.Front(); e != nil; e = e.Next() {
		edges = append(edges, e.Value.(Edge))
	}
	return edges
}

func (me *Path) Draw(s Surface) {
	for _, e := range me.Edges() {
		e.Draw(s)
	}
}

func (me *Path) TotalLength() float64 {
	total := 0.0
	for _, e := range me.Edges() {
		total += e.Length()
	}
	return total
}

func (me *Path) IsClosed() bool {
	if me.Len() == 0 {
		return false
	}
	return AlmostEqualsCoord(me.FrontPoint(), me.BackPoint())
}

// Area is the area enclosed by a closed path. Arcs contribute their
// flattened outline.
func (me *Path) Area() float64 {
	if !me.IsClosed() {
		return 0
	}
	points := []geom.Coord{me.FrontPoint()}
	for _, e := range me.Edges() {
		if arc, ok := e.(*Arc); ok {
			points = append(points, arc.Flatten(32)[1:]...)
			continue
		}
		points = append(points, e.P2())
	}

	area := 0.0
	n := len(points)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += points[i].X * points[j].Y
		area -= points[j].X * points[i].Y
	}
	return math.Abs(area) / 2
}

////////////////////////////////////////////////////////////////////////////
// Path assembly

// Assemble joins edges that share endpoints into paths, reversing edges
// where needed. The edges are copied; the input is left untouched.
func Assemble(edges []Edge) []*Path {
	var paths []*Path
	for _, e := range edges {
		path := new(Path)
		path.PushBack(copyEdge(e))
		paths = addPath(paths, path)
	}

	// Loop until the number of paths stabilizes
	for {
		prev := len(paths)
		old := paths
		paths = nil
		for _, p := range old {
			paths = addPath(paths, p)
		}
		if prev == len(paths) {
			break
		}
	}
	return paths
}

func copyEdge(e Edge) Edge {
	switch v := e.(type) {
	case *Segment:
		c := *v
		return &c
	case *Arc:
		c := *v
		return &c
	}
	return e
}

func addPath(paths []*Path, np *Path) []*Path {
	if np.IsClosed() {
		return append(paths, np)
	}
	npP1 := np.FrontPoint()
	npP2 := np.BackPoint()
	for _, path := range paths {
		if path.IsClosed() {
			continue
		}
		if AlmostEqualsCoord(npP2, path.FrontPoint()) {
			path.PushPathFront(np)
			return paths
		}
		if AlmostEqualsCoord(npP1, path.BackPoint()) {
			path.PushPathBack(np)
			return paths
		}
		if AlmostEqualsCoord(npP1, path.FrontPoint()) {
			np.Reverse()
			path.PushPathFront(np)
			return paths
		}
		if AlmostEqualsCoord(npP2, path.BackPoint()) {
			np.Reverse()
			path.PushPathBack(np)
			return paths
		}
	}
	return append(paths, np)
}

// OrderPaths sorts paths greedily so each one starts near where the
// previous one ended, reversing paths when that is shorter. It returns the
// ordered paths and the non-cutting travel distance between them.
func OrderPaths(paths []*Path) ([]*Path, float64) {
	if len(paths) == 0 {
		return nil, 0
	}

	remaining := new(list.List)
	for _, p := range paths[1:] {
		remaining.PushBack(p)
	}

	ordered := []*Path{paths[0]}
	travel := 0.0
	last := paths[0].BackPoint()
	for remaining.Len() != 0 {
		best := math.MaxFloat64
		var bestElem *list.Element
		bestReversed := false
		for el := remaining.Front(); el != nil; el = el.Next() {
			p := el.Value.(*Path)
			if d := last.DistanceFrom(p.FrontPoint()); d < best {
				best, bestElem, bestReversed = d, el, false
			}
			if d := last.DistanceFrom(p.BackPoint()); d < best {
				best, bestElem, bestReversed = d, el, true
			}
		}
		p := bestElem.Value.(*Path)
		if bestReversed {
			p.Reverse()
		}
		ordered = append(ordered, p)
		last = p.BackPoint()
		travel += best
		remaining.Remove(bestElem)
	}
	return ordered, travel
}

////////////////////////////////////////////////////////////////////////////
// Crossings

func orientation(p, q, r geom.Coord) int {
	val := (q.Y-p.Y)*(r.X-q.X) - (q.X-p.X)*(r.Y-q.Y)
	if math.Abs(val) < FloatEqualThresh {
		return 0 // colinear
	}
	if val > 0 {
		return 1 // clock wise
	}
	return 2 // counterclock wise
}

func onSegment(p, q, r geom.Coord) bool {
	return q.X <= math.Max(p.X, r.X)+FloatEqualThresh && q.X >= math.Min(p.X, r.X)-FloatEqualThresh &&
		q.Y <= math.Max(p.Y, r.Y)+FloatEqualThresh && q.Y >= math.Min(p.Y, r.Y)-FloatEqualThresh
}

// segmentsCross reports whether two segments touch anywhere other than a
// shared endpoint.
func segmentsCross(a, b *Segment) bool {
	p1, p2, p3, p4 := a.A, a.B, b.A, b.B

	o1 := orientation(p1, p2, p3)
	o2 := orientation(p1, p2, p4)
	o3 := orientation(p3, p4, p1)
	o4 := orientation(p3, p4, p2)

	shared := AlmostEqualsCoord(p1, p3) || AlmostEqualsCoord(p1, p4) ||
		AlmostEqualsCoord(p2, p3) || AlmostEqualsCoord(p2, p4)
	if shared {
		// Adjacent edges only cross if they fold back over each other.
		if o1 == 0 && o2 == 0 {
			return overlap(p1, p2, p3, p4)
		}
		return false
	}

	// General case
	if o1 != o2 && o3 != o4 && o1 != 0 && o2 != 0 && o3 != 0 && o4 != 0 {
		return true
	}

	// Special cases
	if o1 == 0 && onSegment(p1, p3, p2) {
		return true
	}
	if o2 == 0 && onSegment(p1, p4, p2) {
		return true
	}
	if o3 == 0 && onSegment(p3, p1, p4) {
		return true
	}
	if o4 == 0 && onSegment(p3, p2, p4) {
		return true
	}
	return false
}

// overlap reports whether two colinear segments share more than a point.
func overlap(p1, p2, p3, p4 geom.Coord) bool {
	dir := p2.Minus(p1)
	n := dir.Magnitude()
	if n == 0 {
		return false
	}
	dir = dir.Times(1 / n)
	proj := func(p geom.Coord) float64 {
		v := p.Minus(p1)
		return v.X*dir.X + v.Y*dir.Y
	}
	aMin, aMax := 0.0, n
	bMin, bMax := math.Min(proj(p3), proj(p4)), math.Max(proj(p3), proj(p4))
	return math.Min(aMax, bMax)-math.Max(aMin, bMin) > FloatEqualThresh
}
