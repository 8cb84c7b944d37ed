package dieline

import (
	"math"
	"testing"

	"github.com/jbeda/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	arc    bool
	p1, p2 geom.Coord
	rx, ry float64
	sweep  bool
}

// recorder is a Surface that keeps every call.
type recorder struct {
	calls []call
}

func (r *recorder) Line(p1, p2 geom.Coord) {
	r.calls = append(r.calls, call{p1: p1, p2: p2})
}

func (r *recorder) CircularArc(p1, p2 geom.Coord, rx, ry float64, sweep bool) {
	r.calls = append(r.calls, call{arc: true, p1: p1, p2: p2, rx: rx, ry: ry, sweep: sweep})
}

func generateDefault(t *testing.T) *Dieline {
	t.Helper()
	d, err := Generate(DefaultBox(), DefaultLayout())
	require.NoError(t, err)
	return d
}

func assertCoord(t *testing.T, want, got geom.Coord, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, FloatEqualThresh, msgAndArgs...)
	assert.InDelta(t, want.Y, got.Y, FloatEqualThresh, msgAndArgs...)
}

func TestGenerate_CanonicalScenario(t *testing.T) {
	d := generateDefault(t)
	rec := &recorder{}
	Draw(rec, d)

	require.Len(t, rec.calls, 30)

	first := rec.calls[0]
	assert.False(t, first.arc)
	assertCoord(t, geom.Coord{X: 0, Y: 0}, first.p1)
	assertCoord(t, geom.Coord{X: 0, Y: 95.6}, first.p2)

	var arcs []call
	for _, c := range rec.calls {
		if c.arc {
			arcs = append(arcs, c)
		}
	}
	require.Len(t, arcs, 2)

	notch := arcs[0]
	assertCoord(t, geom.Coord{X: 90.5, Y: 96}, notch.p1)
	assertCoord(t, geom.Coord{X: 105.5, Y: 96}, notch.p2)
	assert.InDelta(t, 7.5, notch.rx, 1e-12)
	assert.InDelta(t, 7.5, notch.ry, 1e-12)
	assert.True(t, notch.sweep)

	tuck := arcs[1]
	assert.InDelta(t, 15.0, tuck.rx, 1e-12)
	assert.InDelta(t, 15.0, tuck.ry, 1e-12)
	assert.False(t, tuck.sweep)
	assertCoord(t, geom.Coord{X: 4, Y: 106}, tuck.p1)
	assertCoord(t, geom.Coord{X: 64, Y: 106}, tuck.p2)
}

func TestGenerate_ZonesInOrder(t *testing.T) {
	d := generateDefault(t)
	require.Len(t, d.Zones, 7)

	counts := map[int]int{1: 5, 2: 3, 3: 6, 4: 5, 5: 3, 6: 3, 7: 5}
	next := 0
	for i, z := range d.Zones {
		assert.Equal(t, i+1, z.Number)
		assert.Equal(t, next, z.First, "zone %d", z.Number)
		assert.Equal(t, counts[z.Number], z.Count, "zone %d", z.Number)
		next += z.Count
	}
	assert.Equal(t, len(d.Edges), next)
	assert.Nil(t, d.ZoneEdges(8))
}

func TestGenerate_Deterministic(t *testing.T) {
	box := Box{Height: 88, Width: 63, Thickness: 18}
	a, err := Generate(box, DefaultLayout())
	require.NoError(t, err)
	b, err := Generate(box, DefaultLayout())
	require.NoError(t, err)

	ra, rb := &recorder{}, &recorder{}
	Draw(ra, a)
	Draw(rb, b)
	assert.Equal(t, ra.calls, rb.calls)
}

func TestGenerate_RejectsInvalidDimensions(t *testing.T) {
	tests := []struct {
		name string
		box  Box
	}{
		{"zero height", Box{Height: 0, Width: 60, Thickness: 4}},
		{"negative width", Box{Height: 92, Width: -1, Thickness: 4}},
		{"zero thickness", Box{Height: 92, Width: 60, Thickness: 0}},
		{"NaN height", Box{Height: math.NaN(), Width: 60, Thickness: 4}},
		{"infinite width", Box{Height: 92, Width: math.Inf(1), Thickness: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Generate(tt.box, DefaultLayout())
			require.ErrorIs(t, err, ErrInvalidDimension)
			assert.Nil(t, d)
		})
	}
}

func TestGenerate_RejectsInvalidLayout(t *testing.T) {
	l := DefaultLayout()
	l.NotchRadius = 0
	_, err := Generate(DefaultBox(), l)
	assert.ErrorIs(t, err, ErrInvalidLayout)
}

func TestGenerate_EdgesChainWithinZones(t *testing.T) {
	boxes := []Box{
		DefaultBox(),
		{Height: 88, Width: 63, Thickness: 18},
		{Height: 120, Width: 70, Thickness: 0.5},
		{Height: 1e-3, Width: 16, Thickness: 1e3},
	}
	for _, box := range boxes {
		d, err := Generate(box, DefaultLayout())
		require.NoError(t, err)

		for _, z := range d.Zones {
			edges := d.ZoneEdges(z.Number)
			breaks := 0
			for i := 1; i < len(edges); i++ {
				if !AlmostEqualsCoord(edges[i-1].P2(), edges[i].P1()) {
					breaks++
				}
			}
			// zone 1 is the only zone drawn as two runs
			if z.Number == 1 {
				assert.Equal(t, 1, breaks, "box %s", box)
			} else {
				assert.Zero(t, breaks, "box %s zone %d", box, z.Number)
			}
		}
	}
}

func TestGenerate_OutlineIsOneClosedLoop(t *testing.T) {
	for _, box := range []Box{DefaultBox(), {Height: 63, Width: 41, Thickness: 12}} {
		d, err := Generate(box, DefaultLayout())
		require.NoError(t, err)

		// every endpoint is shared by exactly two edge ends
		ends := map[[2]int64]int{}
		key := func(c geom.Coord) [2]int64 {
			return [2]int64{int64(math.Round(c.X * 1e6)), int64(math.Round(c.Y * 1e6))}
		}
		for _, e := range d.Edges {
			ends[key(e.P1())]++
			ends[key(e.P2())]++
		}
		for k, n := range ends {
			assert.Equal(t, 2, n, "vertex %v", k)
		}

		paths := Assemble(d.Edges)
		require.Len(t, paths, 1)
		assert.True(t, paths[0].IsClosed())
		assert.Equal(t, len(d.Edges), paths[0].Len())
	}
}

func TestGenerate_NotchSymmetry(t *testing.T) {
	for _, box := range []Box{DefaultBox(), {Height: 70, Width: 45, Thickness: 9}, {Height: 92, Width: 200, Thickness: 2}} {
		d, err := Generate(box, DefaultLayout())
		require.NoError(t, err)

		zone := d.ZoneEdges(5)
		require.Len(t, zone, 3)
		left, arc, right := zone[0], zone[1].(*Arc), zone[2]

		mid := box.Thickness + box.Width + box.Thickness + box.Width*0.5
		assert.InDelta(t, 7.5, mid-left.P2().X, FloatEqualThresh)
		assert.InDelta(t, 7.5, right.P1().X-mid, FloatEqualThresh)
		assert.InDelta(t, (arc.B.X-arc.A.X)/2, arc.RX, FloatEqualThresh)
		assert.InDelta(t, 7.5, arc.RY, FloatEqualThresh)

		top := box.Height + box.Thickness
		for _, e := range zone {
			assert.InDelta(t, top, e.P1().Y, FloatEqualThresh)
			assert.InDelta(t, top, e.P2().Y, FloatEqualThresh)
		}
	}
}

type extent struct {
	minX, maxX, minY, maxY float64
}

func zoneExtents(d *Dieline) map[int]extent {
	res := map[int]extent{}
	for _, z := range d.Zones {
		ex := extent{math.Inf(1), math.Inf(-1), math.Inf(1), math.Inf(-1)}
		for _, e := range d.ZoneEdges(z.Number) {
			for _, p := range []geom.Coord{e.P1(), e.P2()} {
				ex.minX, ex.maxX = math.Min(ex.minX, p.X), math.Max(ex.maxX, p.X)
				ex.minY, ex.maxY = math.Min(ex.minY, p.Y), math.Max(ex.maxY, p.Y)
			}
		}
		res[z.Number] = ex
	}
	return res
}

func TestGenerate_HeightOnlyMovesYExtents(t *testing.T) {
	small, err := Generate(Box{Height: 80, Width: 60, Thickness: 4}, DefaultLayout())
	require.NoError(t, err)
	tall, err := Generate(Box{Height: 120, Width: 60, Thickness: 4}, DefaultLayout())
	require.NoError(t, err)

	a, b := zoneExtents(small), zoneExtents(tall)
	for z := 1; z <= 7; z++ {
		assert.Equal(t, a[z].minX, b[z].minX, "zone %d", z)
		assert.Equal(t, a[z].maxX, b[z].maxX, "zone %d", z)
		assert.GreaterOrEqual(t, b[z].maxY, a[z].maxY, "zone %d", z)
	}
	for _, z := range []int{1, 5, 6, 7} {
		assert.Greater(t, b[z].maxY, a[z].maxY, "zone %d", z)
	}
	for _, z := range []int{2, 3} {
		assert.Equal(t, a[z], b[z], "zone %d", z)
	}
}

func TestGenerate_WidthOnlyMovesXExtents(t *testing.T) {
	narrow, err := Generate(Box{Height: 92, Width: 50, Thickness: 4}, DefaultLayout())
	require.NoError(t, err)
	wide, err := Generate(Box{Height: 92, Width: 75, Thickness: 4}, DefaultLayout())
	require.NoError(t, err)

	a, b := zoneExtents(narrow), zoneExtents(wide)
	for z := 1; z <= 7; z++ {
		assert.Equal(t, a[z].minY, b[z].minY, "zone %d", z)
		assert.Equal(t, a[z].maxY, b[z].maxY, "zone %d", z)
	}
	assert.Equal(t, a[1], b[1])
	assert.Greater(t, b[4].maxX, a[4].maxX)
}

func TestDieline_Bounds(t *testing.T) {
	d := generateDefault(t)
	b := d.Bounds()
	assert.InDelta(t, 0, b.Min.X, 1e-9)
	assert.InDelta(t, 0, b.Min.Y, 1e-9)
	assert.InDelta(t, 3*4+2*60, b.Max.X, 1e-9)
	// the tuck arc is drawn as a half circle over the 60 wide flap
	assert.InDelta(t, 106+30, b.Max.Y, 1e-9)
}
