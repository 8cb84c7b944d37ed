package dieline

import (
	"errors"
	"fmt"
)

// ErrInvalidLayout is returned for a layout policy with non-positive values.
var ErrInvalidLayout = errors.New("invalid layout")

// Layout is the fixed design policy of the net. Depths and insets are
// fractions of the card thickness; TuckArcFactor is a fraction of the card
// width; NotchRadius is in millimeters.
type Layout struct {
	NotchRadius   float64 `yaml:"notch_radius"`
	TuckArcFactor float64 `yaml:"tuck_arc_factor"`
	GlueDepth     float64 `yaml:"glue_depth"`
	SideFlapDepth float64 `yaml:"side_flap_depth"`
	ChamferInset  float64 `yaml:"chamfer_inset"`
	TuckDepth     float64 `yaml:"tuck_depth"`
}

// DefaultLayout returns the canonical millimeter layout.
func DefaultLayout() Layout {
	return Layout{
		NotchRadius:   7.5,
		TuckArcFactor: 0.25,
		GlueDepth:     0.1,
		SideFlapDepth: 0.9,
		ChamferInset:  0.5,
		TuckDepth:     1.5,
	}
}

func (l Layout) Validate() error {
	vals := map[string]float64{
		"notch_radius":    l.NotchRadius,
		"tuck_arc_factor": l.TuckArcFactor,
		"glue_depth":      l.GlueDepth,
		"side_flap_depth": l.SideFlapDepth,
		"chamfer_inset":   l.ChamferInset,
		"tuck_depth":      l.TuckDepth,
	}
	for _, k := range []string{"notch_radius", "tuck_arc_factor", "glue_depth", "side_flap_depth", "chamfer_inset", "tuck_depth"} {
		if vals[k] <= 0 {
			return fmt.Errorf("%w: %s is %.4f, must be positive", ErrInvalidLayout, k, vals[k])
		}
	}
	if l.GlueDepth >= 0.5 {
		// the glue flap's chamfers would meet in the middle
		return fmt.Errorf("%w: glue_depth %.4f must be below 0.5", ErrInvalidLayout, l.GlueDepth)
	}
	if l.SideFlapDepth >= 1 {
		return fmt.Errorf("%w: side_flap_depth %.4f must be below 1", ErrInvalidLayout, l.SideFlapDepth)
	}
	if l.ChamferInset >= 1 {
		return fmt.Errorf("%w: chamfer_inset %.4f must be below 1", ErrInvalidLayout, l.ChamferInset)
	}
	return nil
}
