// Package layout packs generated panels onto a single sheet. Panels are
// placed by their actual cut bounds, so dimple bulges get breathing room
// too, and never moved closer than the configured spacing.
package layout

import (
	"fmt"
	"math"
	"sort"

	"github.com/boxforge/boxforge/pkg/box"
	"github.com/boxforge/boxforge/pkg/geom"
	"github.com/boxforge/boxforge/pkg/panel"
)

// Margin is the clear border kept around the packed panels.
const Margin = 10.0

// Placement pins one panel to a sheet position. The panel itself stays in
// its local coordinates; DX and DY carry it onto the sheet.
type Placement struct {
	Panel  panel.Panel
	DX, DY float64
}

// Drawn returns the panel translated to its sheet position.
func (p Placement) Drawn() panel.Panel {
	return p.Panel.Translate(p.DX, p.DY)
}

// Bounds returns the panel's cut extent on the sheet.
func (p Placement) Bounds() geom.Rect {
	b := p.Panel.Bounds()
	return geom.Rect{
		MinX: b.MinX + p.DX, MinY: b.MinY + p.DY,
		MaxX: b.MaxX + p.DX, MaxY: b.MaxY + p.DY,
	}
}

// Result is a packed sheet.
type Result struct {
	Placements []Placement
	Canvas     geom.Rect
}

// Arrange packs the panels with the selected style. Placements come back in
// the same order the panels went in, whatever the style moved where.
func Arrange(panels []panel.Panel, style box.LayoutStyle, spacing float64) Result {
	var placements []Placement
	switch style {
	case box.LayoutThreePiece:
		placements = arrangeThreePiece(panels, spacing)
	case box.LayoutCompact:
		placements = arrangeCompact(panels, spacing)
	default:
		placements = arrangeDiagram(panels, spacing)
	}

	canvas := geom.Rect{MaxX: 2 * Margin, MaxY: 2 * Margin}
	for _, p := range placements {
		canvas = canvas.Union(p.Bounds().Expand(Margin))
	}
	canvas.MinX, canvas.MinY = 0, 0
	return Result{Placements: placements, Canvas: canvas}
}

// pin computes the offset that puts the panel's bounds at (x, y).
func pin(p panel.Panel, x, y float64) Placement {
	b := p.Bounds()
	return Placement{Panel: p, DX: x - b.MinX, DY: y - b.MinY}
}

// diagramCell returns the grid cell of a panel in the unfolded-box diagram:
// the cross shape people expect, walls around the floor, the lid beyond the
// right wall and dividers in rows of their own underneath.
func diagramCell(name string) (col, row int) {
	switch name {
	case "front":
		return 1, 0
	case "left":
		return 0, 1
	case "bottom":
		return 1, 1
	case "right":
		return 2, 1
	case "top":
		return 3, 1
	case "back":
		return 1, 2
	}
	var n int
	if _, err := fmt.Sscanf(name, "divider-l-%d", &n); err == nil {
		return n - 1, 3
	}
	if _, err := fmt.Sscanf(name, "divider-w-%d", &n); err == nil {
		return n - 1, 4
	}
	return 0, 5
}

func arrangeDiagram(panels []panel.Panel, spacing float64) []Placement {
	cols := map[int]float64{}
	rows := map[int]float64{}
	maxCol, maxRow := 0, 0
	for _, p := range panels {
		c, r := diagramCell(p.Name)
		b := p.Bounds()
		cols[c] = math.Max(cols[c], b.Width())
		rows[r] = math.Max(rows[r], b.Height())
		maxCol = max(maxCol, c)
		maxRow = max(maxRow, r)
	}

	colX := make([]float64, maxCol+1)
	x := Margin
	for c := 0; c <= maxCol; c++ {
		colX[c] = x
		x += cols[c] + spacing
	}
	rowY := make([]float64, maxRow+1)
	y := Margin
	for r := 0; r <= maxRow; r++ {
		rowY[r] = y
		y += rows[r] + spacing
	}

	placements := make([]Placement, len(panels))
	for i, p := range panels {
		c, r := diagramCell(p.Name)
		placements[i] = pin(p, colX[c], rowY[r])
	}
	return placements
}

// arrangeThreePiece stacks the two largest panels in a column and packs the
// remainder into rows beneath them, a layout that suits tall narrow stock.
func arrangeThreePiece(panels []panel.Panel, spacing float64) []Placement {
	order := sortByArea(panels)

	placements := make([]Placement, len(panels))
	y := Margin
	stackW := 0.0
	stacked := 0
	for _, i := range order {
		if stacked == 2 {
			break
		}
		b := panels[i].Bounds()
		placements[i] = pin(panels[i], Margin, y)
		y += b.Height() + spacing
		stackW = math.Max(stackW, b.Width())
		stacked++
	}

	rest := order[stacked:]
	packRows(panels, rest, placements, Margin, y, stackW+Margin, spacing)
	return placements
}

// arrangeCompact packs panels tallest first into greedy rows, capped at a
// soft sheet width derived from the total cut area.
func arrangeCompact(panels []panel.Panel, spacing float64) []Placement {
	order := make([]int, len(panels))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return panels[order[a]].Bounds().Height() > panels[order[b]].Bounds().Height()
	})

	area, widest := 0.0, 0.0
	for _, p := range panels {
		b := p.Bounds()
		area += (b.Width() + spacing) * (b.Height() + spacing)
		widest = math.Max(widest, b.Width())
	}
	softMax := math.Max(widest, math.Sqrt(area)*1.25)

	placements := make([]Placement, len(panels))
	packRows(panels, order, placements, Margin, Margin, softMax, spacing)
	return placements
}

// packRows lays the given panels out in left-to-right rows starting at
// (x0, y0), wrapping once a row would pass x0+maxW. Every row is at least
// one panel wide, so maxW is a soft limit.
func packRows(panels []panel.Panel, order []int, placements []Placement, x0, y0, maxW, spacing float64) {
	x, y := x0, y0
	rowH := 0.0
	for _, i := range order {
		b := panels[i].Bounds()
		if x > x0 && x+b.Width() > x0+maxW {
			x = x0
			y += rowH + spacing
			rowH = 0
		}
		placements[i] = pin(panels[i], x, y)
		x += b.Width() + spacing
		rowH = math.Max(rowH, b.Height())
	}
}

// sortByArea returns panel indices largest cut area first.
func sortByArea(panels []panel.Panel) []int {
	order := make([]int, len(panels))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ba, bb := panels[order[a]].Bounds(), panels[order[b]].Bounds()
		return ba.Width()*ba.Height() > bb.Width()*bb.Height()
	})
	return order
}
