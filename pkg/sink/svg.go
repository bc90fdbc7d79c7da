package sink

import (
	"fmt"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo/float"

	"github.com/boxforge/boxforge/pkg/drawing"
	"github.com/boxforge/boxforge/pkg/errors"
	"github.com/boxforge/boxforge/pkg/geom"
)

// svgConfig holds the cut stroke styling.
type svgConfig struct {
	stroke      string
	strokeWidth float64
}

// SVGOption adjusts SVG output styling.
type SVGOption func(*svgConfig)

// WithStroke sets the cut stroke color. The default is black.
func WithStroke(color string) SVGOption {
	return func(c *svgConfig) { c.stroke = color }
}

// WithStrokeWidth sets the stroke width in millimeters.
func WithStrokeWidth(w float64) SVGOption {
	return func(c *svgConfig) { c.strokeWidth = w }
}

// WithHairline sets the 0.002 inch stroke that Epilog-style laser drivers
// treat as a vector cut line rather than an engraving.
func WithHairline() SVGOption {
	return func(c *svgConfig) { c.strokeWidth = 0.0508 }
}

// WriteSVG writes the drawing as a single SVG document in real-world
// millimeter units, one group per panel.
func WriteSVG(w io.Writer, d *drawing.Drawing, opts ...SVGOption) error {
	cfg := svgConfig{stroke: "#000000", strokeWidth: 0.1}
	for _, opt := range opts {
		opt(&cfg)
	}

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.StartviewUnit(d.Width(), d.Height(), "mm", 0, 0, d.Width(), d.Height())
	canvas.Group(fmt.Sprintf(`fill="none" stroke=%q stroke-width="%g"`, cfg.stroke, cfg.strokeWidth))

	for _, pl := range d.Placements {
		p := pl.Drawn()
		canvas.Group(fmt.Sprintf(`id="%s"`, p.Name))
		canvas.Path(pathData(p.Outline))
		for _, h := range p.Holes {
			canvas.Path(pathData(h))
		}
		for _, c := range p.Reliefs {
			canvas.Circle(c.Center.X, c.Center.Y, c.R)
		}
		canvas.Gend()
	}

	canvas.Gend()
	canvas.End()

	if ew.err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, ew.err, "writing svg")
	}
	return nil
}

// pathData renders a polyline as SVG path data.
func pathData(p geom.Polyline) string {
	var b strings.Builder
	for i, pt := range p.Points {
		cmd := byte('L')
		if i == 0 {
			cmd = 'M'
		}
		fmt.Fprintf(&b, "%c%g %g ", cmd, pt.X, pt.Y)
	}
	if p.Closed {
		b.WriteByte('Z')
	}
	return strings.TrimSpace(b.String())
}
