// Package engine runs the resolve → build → arrange pipeline that turns a
// box spec into a finished drawing. It is the single entry point shared by
// the CLI and the preview server, so both produce identical output for the
// same spec.
package engine

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/boxforge/boxforge/pkg/box"
	"github.com/boxforge/boxforge/pkg/drawing"
	"github.com/boxforge/boxforge/pkg/layout"
	"github.com/boxforge/boxforge/pkg/observability"
	"github.com/boxforge/boxforge/pkg/panel"
)

// Stats records how long each pipeline stage took.
type Stats struct {
	ResolveTime time.Duration
	BuildTime   time.Duration
	ArrangeTime time.Duration
}

// Generator runs the pipeline. It holds no per-run state; one Generator can
// serve concurrent requests.
type Generator struct {
	Logger *log.Logger
}

// New creates a Generator. A nil logger falls back to the default logger.
func New(logger *log.Logger) *Generator {
	if logger == nil {
		logger = log.Default()
	}
	return &Generator{Logger: logger}
}

// Generate builds the complete drawing for one spec.
func (g *Generator) Generate(ctx context.Context, spec box.Spec) (*drawing.Drawing, *Stats, error) {
	stats := &Stats{}

	resolveStart := time.Now()
	observability.Generator().OnResolveStart(ctx)
	r, err := spec.Resolve()
	if err != nil {
		observability.Generator().OnResolveComplete(ctx, 0, time.Since(resolveStart), err)
		return nil, nil, err
	}
	stats.ResolveTime = time.Since(resolveStart)
	observability.Generator().OnResolveComplete(ctx, len(r.Type.Faces()), stats.ResolveTime, nil)

	g.Logger.Debug("resolved dimensions",
		"x", r.X, "y", r.Y, "z", r.Z,
		"faces", len(r.Type.Faces()))

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	buildStart := time.Now()
	observability.Generator().OnBuildStart(ctx, len(r.Type.Faces()))
	panels, err := panel.NewBuilder(r).Build()
	if err != nil {
		observability.Generator().OnBuildComplete(ctx, 0, time.Since(buildStart), err)
		return nil, nil, err
	}
	stats.BuildTime = time.Since(buildStart)
	observability.Generator().OnBuildComplete(ctx, len(panels), stats.BuildTime, nil)

	g.Logger.Info("built panels",
		"panels", len(panels),
		"dividers", spec.DivL+spec.DivW,
		"duration", stats.BuildTime)

	arrangeStart := time.Now()
	observability.Generator().OnArrangeStart(ctx, spec.Layout.String(), len(panels))
	res := layout.Arrange(panels, spec.Layout, spec.Spacing)
	stats.ArrangeTime = time.Since(arrangeStart)
	observability.Generator().OnArrangeComplete(ctx, spec.Layout.String(), stats.ArrangeTime, nil)

	d := &drawing.Drawing{
		ID:         uuid.NewString(),
		Spec:       spec,
		Placements: res.Placements,
		Canvas:     res.Canvas,
	}

	g.Logger.Info("arranged sheet",
		"layout", spec.Layout,
		"width", d.Width(),
		"height", d.Height(),
		"duration", stats.ArrangeTime)

	return d, stats, nil
}
