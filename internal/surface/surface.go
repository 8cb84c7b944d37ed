// Package surface renders dielines to files: SVG and gzip'd SVGZ for laser
// cutters, DXF for CAD import.
package surface

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tuckbox/tuckbox/internal/dieline"
)

var (
	// ErrWrite is returned when the output cannot be written.
	ErrWrite = errors.New("write failed")
	// ErrUnknownFormat is returned for an unsupported output format.
	ErrUnknownFormat = errors.New("unknown format")
)

// Canvas is a drawing surface that can be saved to a file.
type Canvas interface {
	dieline.Surface
	Save(path string) error
}

type Format string

const (
	FormatSVG  Format = "svg"
	FormatSVGZ Format = "svgz"
	FormatDXF  Format = "dxf"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimPrefix(s, "."))); f {
	case FormatSVG, FormatSVGZ, FormatDXF:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}

// New returns an empty canvas for the format.
func New(f Format, style Style) (Canvas, error) {
	if err := style.Validate(); err != nil {
		return nil, err
	}
	switch f {
	case FormatSVG:
		return NewSVG(style), nil
	case FormatSVGZ:
		s := NewSVG(style)
		s.Compress = true
		return s, nil
	case FormatDXF:
		x, err := NewDXF()
		if err != nil {
			return nil, err
		}
		return x, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}
