package sink

import (
	"io"

	"github.com/yofu/dxf"
	dxfdraw "github.com/yofu/dxf/drawing"

	"github.com/boxforge/boxforge/pkg/drawing"
	"github.com/boxforge/boxforge/pkg/errors"
	"github.com/boxforge/boxforge/pkg/geom"
)

// cutLayer is the single DXF layer all cut entities land on.
const cutLayer = "CUT"

// WriteDXF writes the drawing as a DXF document. DXF has y pointing up, so
// every coordinate is flipped against the sheet height.
func WriteDXF(w io.Writer, d *drawing.Drawing) error {
	dw := dxf.NewDrawing()
	if _, err := dw.AddLayer(cutLayer, dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "creating dxf layer")
	}

	h := d.Height()
	for _, pl := range d.Placements {
		p := pl.Drawn()
		if err := writePolyline(dw, p.Outline, h); err != nil {
			return err
		}
		for _, hole := range p.Holes {
			if err := writePolyline(dw, hole, h); err != nil {
				return err
			}
		}
		for _, c := range p.Reliefs {
			if _, err := dw.Circle(c.Center.X, h-c.Center.Y, 0, c.R); err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "writing dxf circle")
			}
		}
	}

	if _, err := dw.WriteTo(w); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "writing dxf")
	}
	return nil
}

func writePolyline(dw *dxfdraw.Drawing, p geom.Polyline, sheetH float64) error {
	vs := make([][]float64, len(p.Points))
	for i, pt := range p.Points {
		vs[i] = []float64{pt.X, sheetH - pt.Y}
	}
	if _, err := dw.LwPolyline(p.Closed, vs...); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "writing dxf polyline")
	}
	return nil
}
