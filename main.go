// Command tuckbox writes the cut-line drawing of a tuck box for a deck of
// playing cards. The drawing can be fed to a laser cutter (SVG, SVGZ) or
// imported into CAD (DXF).
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/docopt/docopt-go"

	"github.com/tuckbox/tuckbox/internal/config"
	"github.com/tuckbox/tuckbox/internal/dieline"
	"github.com/tuckbox/tuckbox/internal/surface"
)

const version = "1.0.0"

const usage = `tuckbox: draw the dieline of a playing card tuck box.

Usage:
  tuckbox [options] <output>
  tuckbox -h | --help
  tuckbox --version

Arguments:
  <output>                       Drawing to write (.svg, .svgz or .dxf).

Options:
  -H <mm>, --height <mm>         Card height [default: 92.0].
  -W <mm>, --width <mm>          Card width [default: 60.0].
  -T <mm>, --thickness <mm>      Deck thickness [default: 4.0].
  -f <fmt>, --format <fmt>       Output format: svg, svgz or dxf. Taken
                                 from the output extension when omitted.
  -c <file>, --config <file>     YAML file overriding layout and style.
  -v, --verbose                  Log every zone and layout check.
  -h, --help                     Show this screen.
  --version                      Show version.
`

// options are the parsed command line.
type options struct {
	Box     dieline.Box
	Output  string
	Format  string
	Config  string
	Verbose bool
}

func parseOptions(argv []string) (options, error) {
	opts, err := docopt.ParseArgs(usage, argv, version)
	if err != nil {
		return options{}, err
	}

	var o options
	if o.Box.Height, err = opts.Float64("--height"); err != nil {
		return o, fmt.Errorf("--height: %w", err)
	}
	if o.Box.Width, err = opts.Float64("--width"); err != nil {
		return o, fmt.Errorf("--width: %w", err)
	}
	if o.Box.Thickness, err = opts.Float64("--thickness"); err != nil {
		return o, fmt.Errorf("--thickness: %w", err)
	}
	o.Output, _ = opts.String("<output>")
	o.Format, _ = opts.String("--format")
	o.Config, _ = opts.String("--config")
	o.Verbose, _ = opts.Bool("--verbose")
	return o, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// run generates the dieline described by o and saves it.
func run(o options) error {
	conf := config.Default()
	if o.Config != "" {
		var err error
		if conf, err = config.Load(o.Config); err != nil {
			return err
		}
	}

	var (
		format surface.Format
		err    error
	)
	if o.Format != "" {
		format, err = surface.ParseFormat(o.Format)
	} else {
		format, err = surface.FormatFromPath(o.Output)
	}
	if err != nil {
		return err
	}

	d, err := dieline.Generate(o.Box, conf.Layout)
	if err != nil {
		return err
	}

	log := dieline.Logger()
	for _, is := range dieline.Check(d, conf.Style.Bounds()) {
		log.Warn("layout", slog.String("kind", is.Kind.String()), slog.String("detail", is.Message))
	}
	st := dieline.Summarize(d)
	log.Debug("summary",
		slog.Int("edges", st.Edges),
		slog.Int("paths", st.Paths),
		slog.Int("closed", st.Closed),
		slog.Float64("cut_length", st.CutLength),
		slog.Float64("area", st.Area),
		slog.Float64("width", st.Bounds.Max.X-st.Bounds.Min.X),
		slog.Float64("height", st.Bounds.Max.Y-st.Bounds.Min.Y))

	canvas, err := surface.New(format, conf.Style)
	if err != nil {
		return err
	}
	dieline.Draw(canvas, d)
	return canvas.Save(o.Output)
}

func main() {
	o, err := parseOptions(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "tuckbox: %v\n", err)
		os.Exit(1)
	}
	dieline.SetLogger(newLogger(os.Stderr, o.Verbose))

	if err := run(o); err != nil {
		switch {
		case errors.Is(err, dieline.ErrInvalidDimension):
			dieline.Logger().Error("bad box dimensions", slog.Any("err", err))
		case errors.Is(err, surface.ErrWrite):
			dieline.Logger().Error("cannot write drawing", slog.Any("err", err))
		default:
			dieline.Logger().Error("failed", slog.Any("err", err))
		}
		os.Exit(1)
	}
}
