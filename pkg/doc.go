// Package pkg provides the core libraries for Boxforge panel generation.
//
// # Overview
//
// Boxforge turns a box description (outer dimensions, material thickness,
// kerf, tab preferences) into flat, cut-ready panel outlines for laser
// cutters and CNC routers. The pkg directory is organized into five areas:
//
//  1. [box] - Spec validation and dimension resolution
//  2. [panel] - Edge division and panel outline construction
//  3. [layout] - Sheet arrangement strategies
//  4. [engine] - Orchestration (resolve → build → arrange)
//  5. [sink] - Output formats (SVG, DXF, JSON)
//
// # Architecture
//
// The typical data flow through Boxforge:
//
//	box.Spec (user input)
//	         ↓
//	    [box] package (validate, resolve outer dimensions)
//	         ↓
//	    [panel] package (edges, kerf compensation, dividers)
//	         ↓
//	    [layout] package (place panels on the sheet)
//	         ↓
//	    SVG/DXF/JSON output
//
// # Quick Start
//
// Generate a drawing and write it as SVG:
//
//	import (
//	    "context"
//	    "os"
//
//	    "github.com/boxforge/boxforge/pkg/box"
//	    "github.com/boxforge/boxforge/pkg/engine"
//	    "github.com/boxforge/boxforge/pkg/sink"
//	)
//
//	spec := box.DefaultSpec()
//	spec.Length, spec.Width, spec.Height = 160, 100, 60
//	spec.Kerf = 0.15
//
//	d, _, err := engine.New(nil).Generate(context.Background(), spec)
//	if err != nil {
//	    return err
//	}
//	return sink.WriteSVG(os.Stdout, d)
//
// # Main Packages
//
// [box] - The spec vocabulary (box types, tab symmetries, keying policies)
// and the resolver that turns interior or exterior measurements into panel
// sizes.
//
// [panel] - The geometric heart: divides each edge into tabs and gaps,
// applies kerf compensation, adds dogbone reliefs and press-fit dimples,
// and cuts divider slots and keying holes.
//
// [geom] - Minimal 2-D primitives (points, polylines, rectangles, circles)
// shared by panel construction and the output sinks.
//
// [layout] - Sheet arrangement: a diagram layout that mirrors an unfolded
// box, a three-piece stock layout, and a compact packing.
//
// [engine] - Runs the full pipeline with stage timing. The single entry
// point shared by the CLI and the preview server.
//
// [sink] - Serializes a drawing as SVG (browser preview, laser cutting),
// DXF (CAD and CAM toolchains), or JSON (programmatic use).
//
// [preset] - Built-in and TOML-file presets layering partial configuration
// over the defaults.
//
// [observability] - Optional hooks for metrics and tracing around generator
// stages and output writes.
//
// [errors] - Coded errors distinguishing configuration mistakes from
// geometric impossibilities, with user-facing messages.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/panel/...      # Specific package
//
// [box]: https://pkg.go.dev/github.com/boxforge/boxforge/pkg/box
// [panel]: https://pkg.go.dev/github.com/boxforge/boxforge/pkg/panel
// [geom]: https://pkg.go.dev/github.com/boxforge/boxforge/pkg/geom
// [layout]: https://pkg.go.dev/github.com/boxforge/boxforge/pkg/layout
// [engine]: https://pkg.go.dev/github.com/boxforge/boxforge/pkg/engine
// [sink]: https://pkg.go.dev/github.com/boxforge/boxforge/pkg/sink
// [preset]: https://pkg.go.dev/github.com/boxforge/boxforge/pkg/preset
// [observability]: https://pkg.go.dev/github.com/boxforge/boxforge/pkg/observability
// [errors]: https://pkg.go.dev/github.com/boxforge/boxforge/pkg/errors
package pkg
