package surface

import (
	"bytes"
	"fmt"
	"os"

	svg "github.com/ajstarks/svgo"
	"github.com/jbeda/geom"
	"github.com/klauspost/compress/gzip"
)

// SVG collects a dieline as an SVG document in memory. Every edge becomes
// its own path element inside one styled group.
type SVG struct {
	// Compress gzips the document on Save (SVGZ).
	Compress bool

	style    Style
	buf      bytes.Buffer
	canvas   *svg.SVG
	edges    int
	finished bool
}

func NewSVG(style Style) *SVG {
	s := &SVG{style: style}
	s.canvas = svg.New(&s.buf)
	s.canvas.StartviewUnit(style.DocWidth, style.DocHeight, style.Unit, 0, 0, style.DocWidth, style.DocHeight)
	s.canvas.Title("tuckbox dieline")
	s.canvas.Gstyle(style.cutStyle())
	return s
}

func onezero(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func (s *SVG) Line(p1, p2 geom.Coord) {
	s.canvas.Path(fmt.Sprintf("M%f,%f L%f,%f", p1.X, p1.Y, p2.X, p2.Y))
	s.edges++
}

func (s *SVG) CircularArc(p1, p2 geom.Coord, rx, ry float64, sweep bool) {
	s.canvas.Path(fmt.Sprintf("M%f,%f A%f,%f 0 0,%s %f,%f",
		p1.X, p1.Y, rx, ry, onezero(sweep), p2.X, p2.Y))
	s.edges++
}

// Edges is the number of path elements drawn so far.
func (s *SVG) Edges() int { return s.edges }

// Bytes closes the document and returns it, uncompressed.
func (s *SVG) Bytes() []byte {
	if !s.finished {
		s.canvas.Gend()
		s.canvas.End()
		s.finished = true
	}
	return s.buf.Bytes()
}

func (s *SVG) Save(path string) error {
	data := s.Bytes()
	return replaceFile(path, func(f *os.File) error {
		if !s.Compress {
			_, err := f.Write(data)
			return err
		}
		zw, err := gzip.NewWriterLevel(f, gzip.BestCompression)
		if err != nil {
			return err
		}
		if _, err := zw.Write(data); err != nil {
			zw.Close()
			return err
		}
		return zw.Close()
	})
}
