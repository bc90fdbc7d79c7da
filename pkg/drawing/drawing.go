// Package drawing defines the finished artifact of a generation run: every
// panel pinned to its sheet position, plus the canvas that frames them.
package drawing

import (
	"github.com/boxforge/boxforge/pkg/box"
	"github.com/boxforge/boxforge/pkg/geom"
	"github.com/boxforge/boxforge/pkg/layout"
)

// Drawing is one packed sheet, ready for a sink to serialize. A Drawing is
// immutable once built; sinks may be handed the same Drawing concurrently.
type Drawing struct {
	// ID uniquely identifies this generation run.
	ID string `json:"id"`

	// Spec is the input that produced the drawing.
	Spec box.Spec `json:"spec"`

	// Placements carry each panel and its sheet offset, faces first,
	// then dividers.
	Placements []layout.Placement `json:"placements"`

	// Canvas is the sheet extent, margins included. Millimeters.
	Canvas geom.Rect `json:"canvas"`
}

// Width returns the sheet width in millimeters.
func (d *Drawing) Width() float64 { return d.Canvas.Width() }

// Height returns the sheet height in millimeters.
func (d *Drawing) Height() float64 { return d.Canvas.Height() }

// PanelCount returns the number of panels on the sheet.
func (d *Drawing) PanelCount() int { return len(d.Placements) }
