package surface

import (
	"errors"
	"fmt"

	"github.com/jbeda/geom"
)

// ErrInvalidStyle is returned for a document style that cannot be drawn.
var ErrInvalidStyle = errors.New("invalid style")

// Style describes the output document. Sizes are in Unit.
type Style struct {
	DocWidth  int     `yaml:"doc_width"`
	DocHeight int     `yaml:"doc_height"`
	Unit      string  `yaml:"unit"`
	Hairline  float64 `yaml:"hairline"`
	Stroke    string  `yaml:"stroke"`
}

// DefaultStyle is a 1000x1000mm page of red hairlines.
func DefaultStyle() Style {
	return Style{
		DocWidth:  1000,
		DocHeight: 1000,
		Unit:      "mm",
		Hairline:  0.01,
		Stroke:    "red",
	}
}

func (s Style) Validate() error {
	if s.DocWidth <= 0 || s.DocHeight <= 0 {
		return fmt.Errorf("%w: document %dx%d", ErrInvalidStyle, s.DocWidth, s.DocHeight)
	}
	if s.Hairline <= 0 {
		return fmt.Errorf("%w: hairline %.4f must be positive", ErrInvalidStyle, s.Hairline)
	}
	if s.Stroke == "" {
		return fmt.Errorf("%w: empty stroke color", ErrInvalidStyle)
	}
	return nil
}

// Bounds is the document rectangle.
func (s Style) Bounds() geom.Rect {
	return geom.Rect{Max: geom.Coord{X: float64(s.DocWidth), Y: float64(s.DocHeight)}}
}

func (s Style) cutStyle() string {
	return fmt.Sprintf("fill:none;stroke:%s;stroke-width:%g", s.Stroke, s.Hairline)
}
