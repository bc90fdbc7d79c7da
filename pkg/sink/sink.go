// Package sink serializes drawings into cuttable output formats. Every sink
// writes one complete drawing to an io.Writer and never mutates it.
package sink

import (
	"context"
	"io"
	"time"

	"github.com/boxforge/boxforge/pkg/drawing"
	"github.com/boxforge/boxforge/pkg/errors"
	"github.com/boxforge/boxforge/pkg/observability"
)

// Format names an output format.
type Format string

const (
	FormatSVG  Format = "svg"
	FormatDXF  Format = "dxf"
	FormatJSON Format = "json"
)

// Formats lists every supported format, in display order.
func Formats() []Format {
	return []Format{FormatSVG, FormatDXF, FormatJSON}
}

// ParseFormat converts a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatSVG, FormatDXF, FormatJSON:
		return Format(s), nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat,
		"unknown format %q (must be svg, dxf, or json)", s)
}

// Write serializes the drawing in the given format. SVG options are ignored
// by the other formats.
func Write(w io.Writer, d *drawing.Drawing, f Format, opts ...SVGOption) error {
	ctx := context.Background()
	start := time.Now()
	observability.Sink().OnWriteStart(ctx, string(f))

	var err error
	switch f {
	case FormatDXF:
		err = WriteDXF(w, d)
	case FormatJSON:
		err = WriteJSON(w, d)
	default:
		err = WriteSVG(w, d, opts...)
	}
	observability.Sink().OnWriteComplete(ctx, string(f), time.Since(start), err)
	return err
}

// errWriter latches the first write error so the svg generator, which does
// not report errors itself, still surfaces a broken pipe or full disk.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
