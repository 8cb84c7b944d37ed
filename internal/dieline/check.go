package dieline

import (
	"fmt"
	"log/slog"

	"github.com/jbeda/geom"
)

// IssueKind classifies a layout issue found by Check.
type IssueKind int

const (
	IssueNotchTooWide IssueKind = iota
	IssueOpenOutline
	IssueCrossing
	IssueOutOfBounds
	IssueArcCorrected
)

func (k IssueKind) String() string {
	switch k {
	case IssueNotchTooWide:
		return "notch-too-wide"
	case IssueOpenOutline:
		return "open-outline"
	case IssueCrossing:
		return "crossing"
	case IssueOutOfBounds:
		return "out-of-bounds"
	case IssueArcCorrected:
		return "arc-corrected"
	}
	return fmt.Sprintf("IssueKind(%d)", int(k))
}

// Issue is an advisory problem with a generated dieline. Issues never stop
// generation; the net is still drawn.
type Issue struct {
	Kind    IssueKind
	Message string
}

func (i Issue) String() string {
	return i.Kind.String() + ": " + i.Message
}

// arcChords is the number of chords an arc is split into for crossing
// checks.
const arcChords = 16

// Check inspects a dieline for problems the formulas cannot rule out for
// every box: a finger notch wider than the front panel, an outline that
// does not close, edges crossing each other, or a net larger than the
// document. An empty limits rectangle skips the bounds check.
func Check(d *Dieline, limits geom.Rect) []Issue {
	var issues []Issue

	if 2*d.Layout.NotchRadius >= d.Box.Width {
		issues = append(issues, Issue{IssueNotchTooWide,
			fmt.Sprintf("notch diameter %.4f does not fit the %.4f wide front panel", 2*d.Layout.NotchRadius, d.Box.Width)})
	}

	paths := Assemble(d.Edges)
	if len(paths) != 1 || !paths[0].IsClosed() {
		issues = append(issues, Issue{IssueOpenOutline,
			fmt.Sprintf("outline assembles into %d paths, want one closed loop", len(paths))})
	}

	segs := chords(d.Edges)
	for i := 0; i < len(segs); i++ {
		for j := i + 1; j < len(segs); j++ {
			if segmentsCross(segs[i], segs[j]) {
				issues = append(issues, Issue{IssueCrossing,
					fmt.Sprintf("(%.4f,%.4f)-(%.4f,%.4f) crosses (%.4f,%.4f)-(%.4f,%.4f)",
						segs[i].A.X, segs[i].A.Y, segs[i].B.X, segs[i].B.Y,
						segs[j].A.X, segs[j].A.Y, segs[j].B.X, segs[j].B.Y)})
			}
		}
	}

	if limits.Width() > 0 && limits.Height() > 0 {
		if b := d.Bounds(); !rectWithin(b, limits) {
			issues = append(issues, Issue{IssueOutOfBounds,
				fmt.Sprintf("net spans (%.4f,%.4f)-(%.4f,%.4f), document is %.4fx%.4f",
					b.Min.X, b.Min.Y, b.Max.X, b.Max.Y, limits.Width(), limits.Height())})
		}
	}

	for _, e := range d.Edges {
		if arc, ok := e.(*Arc); ok && arc.Corrected() {
			rx, ry := arc.Radii()
			issues = append(issues, Issue{IssueArcCorrected,
				fmt.Sprintf("arc radii %.4f,%.4f too short for its chord, drawn with %.4f,%.4f", arc.RX, arc.RY, rx, ry)})
		}
	}

	for _, is := range issues {
		Logger().Debug("layout issue", slog.String("kind", is.Kind.String()), slog.String("detail", is.Message))
	}
	return issues
}

func rectWithin(inner, outer geom.Rect) bool {
	return inner.Min.X >= outer.Min.X-FloatEqualThresh && inner.Min.Y >= outer.Min.Y-FloatEqualThresh &&
		inner.Max.X <= outer.Max.X+FloatEqualThresh && inner.Max.Y <= outer.Max.Y+FloatEqualThresh
}

// chords returns the edges as straight segments, splitting arcs.
func chords(edges []Edge) []*Segment {
	var segs []*Segment
	for _, e := range edges {
		switch v := e.(type) {
		case *Segment:
			segs = append(segs, v)
		case *Arc:
			pts := v.Flatten(arcChords)
			for i := 1; i < len(pts); i++ {
				segs = append(segs, &Segment{A: pts[i-1], B: pts[i]})
			}
		}
	}
	return segs
}

////////////////////////////////////////////////////////////////////////////
// Stats

// Stats summarizes a dieline for reporting.
type Stats struct {
	Edges     int
	Paths     int
	Closed    int
	CutLength float64
	Area      float64
	Travel    float64
	Bounds    geom.Rect
}

// Summarize assembles the dieline into paths and measures them.
func Summarize(d *Dieline) Stats {
	paths, travel := OrderPaths(Assemble(d.Edges))
	st := Stats{
		Edges:     len(d.Edges),
		Paths:     len(paths),
		CutLength: d.CutLength(),
		Travel:    travel,
		Bounds:    d.Bounds(),
	}
	for _, p := range paths {
		if p.IsClosed() {
			st.Closed++
			st.Area += p.Area()
		}
	}
	return st
}
