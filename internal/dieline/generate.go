package dieline

import (
	"log/slog"

	"github.com/jbeda/geom"
)

// Zone is a contiguous run of edges belonging to one part of the net.
type Zone struct {
	Number int
	Name   string
	First  int // index of the zone's first edge
	Count  int
}

// Dieline is the outline of one tuckbox net. Edges are in emission order
// and are never changed once generated.
type Dieline struct {
	Box    Box
	Layout Layout
	Edges  []Edge
	Zones  []Zone
}

// ZoneEdges returns the edges of zone n (1-based), or nil.
func (d *Dieline) ZoneEdges(n int) []Edge {
	for _, z := range d.Zones {
		if z.Number == n {
			return d.Edges[z.First : z.First+z.Count]
		}
	}
	return nil
}

// Bounds returns the bounding rectangle of every edge.
func (d *Dieline) Bounds() geom.Rect {
	if len(d.Edges) == 0 {
		return geom.Rect{}
	}
	bounds := d.Edges[0].Bounds()
	for _, e := range d.Edges[1:] {
		bounds.ExpandToContainRect(e.Bounds())
	}
	return bounds
}

// CutLength is the total length of all edges.
func (d *Dieline) CutLength() float64 {
	total := 0.0
	for _, e := range d.Edges {
		total += e.Length()
	}
	return total
}

// Draw issues one draw call per edge, in emission order.
func Draw(s Surface, d *Dieline) {
	for _, e := range d.Edges {
		e.Draw(s)
	}
}

////////////////////////////////////////////////////////////////////////////
// Generation

// pen appends chained edges: each new edge starts where the last one ended.
type pen struct {
	d   *Dieline
	at  geom.Coord
	cur *Zone
}

func (p *pen) zone(n int, name string) {
	p.end()
	p.cur = &Zone{Number: n, Name: name, First: len(p.d.Edges)}
}

func (p *pen) end() {
	if p.cur == nil {
		return
	}
	p.cur.Count = len(p.d.Edges) - p.cur.First
	p.d.Zones = append(p.d.Zones, *p.cur)
	Logger().Debug("zone", slog.Int("zone", p.cur.Number), slog.String("name", p.cur.Name), slog.Int("edges", p.cur.Count))
	p.cur = nil
}

func (p *pen) moveTo(x, y float64) {
	p.at = geom.Coord{X: x, Y: y}
}

func (p *pen) lineTo(x, y float64) {
	next := geom.Coord{X: x, Y: y}
	p.d.Edges = append(p.d.Edges, &Segment{A: p.at, B: next})
	p.at = next
}

func (p *pen) arcTo(x, y, rx, ry float64, sweep bool) {
	next := geom.Coord{X: x, Y: y}
	arc := &Arc{A: p.at, B: next, RX: rx, RY: ry, Sweep: sweep}
	if arc.Corrected() {
		crx, cry := arc.Radii()
		Logger().Debug("arc radius too short for its chord, scaled up",
			slog.Float64("rx", rx), slog.Float64("ry", ry),
			slog.Float64("effective_rx", crx), slog.Float64("effective_ry", cry))
	}
	p.d.Edges = append(p.d.Edges, arc)
	p.at = next
}

// Generate lays out the tuckbox net for box. The outline is emitted zone by
// zone; together the zones form one closed loop starting and ending at the
// origin.
func Generate(box Box, layout Layout) (*Dieline, error) {
	if err := box.Validate(); err != nil {
		return nil, err
	}
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	h, w, t := box.Height, box.Width, box.Thickness
	r := layout.NotchRadius
	glue := layout.GlueDepth * t
	side := layout.SideFlapDepth * t
	inset := layout.ChamferInset * t
	tuck := layout.TuckDepth * t
	top := h + t            // top edge of the panels
	flapTop := top + inset  // top of the front's side flaps
	cx := t + w + t + w*0.5 // front panel midpoint

	d := &Dieline{Box: box, Layout: layout, Edges: make([]Edge, 0, 30)}
	p := &pen{d: d}

	// 1: side flaps 1 and 4
	p.zone(1, "side flaps")
	p.moveTo(0, 0)
	p.lineTo(0, h+side)
	p.lineTo(t, h+side)
	p.lineTo(t, top)
	p.moveTo(t, t)
	p.lineTo(t, 0)
	p.lineTo(0, 0)

	// 2: glue flap along the bottom of the back panel
	p.zone(2, "glue flap")
	p.moveTo(t+w, t)
	p.lineTo(t+w-glue, t-glue)
	p.lineTo(t+glue, t-glue)
	p.lineTo(t, t)

	// 3: front bottom flap, then side flap 2
	p.zone(3, "bottom flaps")
	p.moveTo(2*t+2*w, t)
	p.lineTo(2*t+2*w, 0)
	p.lineTo(2*t+w, 0)
	p.lineTo(2*t+w, t)
	p.lineTo(2*t+w-inset, 0)
	p.lineTo(t+w, 0)
	p.lineTo(t+w, t)

	// 4: right flap of the front
	p.zone(4, "right front flap")
	p.moveTo(2*t+2*w, top)
	p.lineTo(2*t+2*w, flapTop)
	p.lineTo(3*t+2*w-inset, flapTop)
	p.lineTo(3*t+2*w, top)
	p.lineTo(3*t+2*w, t)
	p.lineTo(2*t+2*w, t)

	// 5: front top edge with the finger notch
	p.zone(5, "finger notch")
	p.moveTo(2*t+w, top)
	p.lineTo(cx-r, top)
	x1, x2 := cx-r, cx+r
	p.arcTo(x2, top, (x2-x1)/2, r, true)
	p.lineTo(2*t+2*w, top)

	// 6: left flap of the front
	p.zone(6, "left front flap")
	p.moveTo(t+w, top)
	p.lineTo(t+w+inset, flapTop)
	p.lineTo(t+w+t, flapTop)
	p.lineTo(t+w+t, top)

	// 7: lid and tuck flap
	p.zone(7, "tuck flap")
	arcR := w * layout.TuckArcFactor
	p.moveTo(t, top)
	p.lineTo(t, top+t)
	p.lineTo(t, top+t+tuck)
	p.arcTo(t+w, top+t+tuck, arcR, arcR, false)
	p.lineTo(t+w, top+t)
	p.lineTo(t+w, top)
	p.end()

	Logger().Info("dieline generated",
		slog.String("box", box.String()),
		slog.Int("edges", len(d.Edges)),
		slog.Float64("cut_length", d.CutLength()))
	return d, nil
}
