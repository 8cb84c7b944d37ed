package dieline

import (
	"testing"

	"github.com/jbeda/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seg(x1, y1, x2, y2 float64) *Segment {
	return &Segment{A: geom.Coord{X: x1, Y: y1}, B: geom.Coord{X: x2, Y: y2}}
}

func TestAssemble_JoinsAndReverses(t *testing.T) {
	// a unit square given out of order with one edge backwards
	edges := []Edge{
		seg(1, 1, 0, 1),
		seg(0, 0, 1, 0),
		seg(0, 0, 0, 1), // backwards
		seg(1, 0, 1, 1),
	}
	paths := Assemble(edges)
	require.Len(t, paths, 1)
	p := paths[0]
	assert.Equal(t, 4, p.Len())
	assert.True(t, p.IsClosed())
	assert.InDelta(t, 1.0, p.Area(), 1e-12)
	assert.InDelta(t, 4.0, p.TotalLength(), 1e-12)

	got := p.Edges()
	for i := 1; i < len(got); i++ {
		assert.True(t, AlmostEqualsCoord(got[i-1].P2(), got[i].P1()), "edge %d", i)
	}

	// input edges are not touched
	assert.Equal(t, geom.Coord{X: 0, Y: 0}, edges[2].P1())
}

func TestAssemble_SeparatePaths(t *testing.T) {
	edges := []Edge{
		seg(0, 0, 1, 0),
		seg(5, 5, 6, 5),
		seg(1, 0, 2, 0),
	}
	paths := Assemble(edges)
	require.Len(t, paths, 2)
	for _, p := range paths {
		assert.False(t, p.IsClosed())
		assert.Zero(t, p.Area())
	}
}

func TestPath_AreaWithArc(t *testing.T) {
	// half disc of radius 1
	p := new(Path)
	p.PushBack(seg(-1, 0, 1, 0))
	p.PushBack(&Arc{A: geom.Coord{X: 1, Y: 0}, B: geom.Coord{X: -1, Y: 0}, RX: 1, RY: 1, Sweep: true})
	require.True(t, p.IsClosed())
	assert.InDelta(t, 3.14159/2, p.Area(), 0.01)
}

func TestOrderPaths_MinimizesTravel(t *testing.T) {
	mk := func(e Edge) *Path {
		p := new(Path)
		p.PushBack(e)
		return p
	}
	paths := []*Path{
		mk(seg(0, 0, 1, 0)),
		mk(seg(10, 0, 11, 0)),
		mk(seg(3, 0, 2, 0)), // cheaper when reversed
	}
	ordered, travel := OrderPaths(paths)
	require.Len(t, ordered, 3)
	assert.Equal(t, geom.Coord{X: 2, Y: 0}, ordered[1].FrontPoint())
	assert.Equal(t, geom.Coord{X: 10, Y: 0}, ordered[2].FrontPoint())
	assert.InDelta(t, 1+7, travel, 1e-12)

	none, travel := OrderPaths(nil)
	assert.Nil(t, none)
	assert.Zero(t, travel)
}

func TestSegmentsCross(t *testing.T) {
	tests := []struct {
		name string
		a, b *Segment
		want bool
	}{
		{"x shape", seg(0, 0, 2, 2), seg(0, 2, 2, 0), true},
		{"parallel", seg(0, 0, 2, 0), seg(0, 1, 2, 1), false},
		{"shared corner", seg(0, 0, 1, 0), seg(1, 0, 1, 1), false},
		{"colinear continuation", seg(0, 0, 1, 0), seg(1, 0, 2, 0), false},
		{"folds back", seg(0, 0, 2, 0), seg(2, 0, 1, 0), true},
		{"t junction", seg(0, 0, 2, 0), seg(1, 0, 1, 1), true},
		{"colinear apart", seg(0, 0, 1, 0), seg(2, 0, 3, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, segmentsCross(tt.a, tt.b))
		})
	}
}
