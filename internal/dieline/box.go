package dieline

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidDimension is returned when a card dimension is not a positive,
// finite number. Nothing is drawn when it is returned.
var ErrInvalidDimension = errors.New("invalid dimension")

// Default card dimensions in millimeters (standard poker deck).
const (
	DefaultHeight    = 92.0
	DefaultWidth     = 60.0
	DefaultThickness = 4.0
)

// Box holds the dimensions of the deck the tuckbox must hold.
type Box struct {
	Height    float64
	Width     float64
	Thickness float64
}

// DefaultBox returns the box for a standard poker deck.
func DefaultBox() Box {
	return Box{Height: DefaultHeight, Width: DefaultWidth, Thickness: DefaultThickness}
}

// Validate checks that every dimension is positive.
func (b Box) Validate() error {
	dims := []struct {
		name string
		v    float64
	}{
		{"height", b.Height},
		{"width", b.Width},
		{"thickness", b.Thickness},
	}
	for _, d := range dims {
		if math.IsNaN(d.v) || math.IsInf(d.v, 0) || d.v <= 0 {
			return fmt.Errorf("%w: %s is %.4f, must be positive", ErrInvalidDimension, d.name, d.v)
		}
	}
	return nil
}

func (b Box) String() string {
	return fmt.Sprintf("%gx%gx%g", b.Height, b.Width, b.Thickness)
}
