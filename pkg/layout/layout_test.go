package layout

import (
	"fmt"
	"testing"

	"github.com/boxforge/boxforge/pkg/box"
	"github.com/boxforge/boxforge/pkg/geom"
	"github.com/boxforge/boxforge/pkg/panel"
)

// rectPanel fakes a generated panel with a simple rectangular outline.
func rectPanel(name string, w, h float64) panel.Panel {
	return panel.Panel{
		Name:    name,
		W:       w,
		H:       h,
		Outline: geom.ClosedRect(0, 0, w, h),
	}
}

func boxPanels() []panel.Panel {
	return []panel.Panel{
		rectPanel("bottom", 100, 80),
		rectPanel("top", 100, 80),
		rectPanel("front", 100, 50),
		rectPanel("back", 100, 50),
		rectPanel("left", 50, 80),
		rectPanel("right", 50, 80),
	}
}

func TestArrangeKeepsSpacing(t *testing.T) {
	styles := []box.LayoutStyle{box.LayoutDiagram, box.LayoutThreePiece, box.LayoutCompact}
	const spacing = 8.0

	for _, style := range styles {
		for n := 1; n <= 30; n++ {
			var panels []panel.Panel
			for i := 0; i < n; i++ {
				w := 30 + float64(i%7)*11
				h := 20 + float64((i*5)%9)*13
				panels = append(panels, rectPanel(fmt.Sprintf("divider-l-%d", i+1), w, h))
			}

			res := Arrange(panels, style, spacing)
			if len(res.Placements) != n {
				t.Fatalf("%v n=%d: placements = %d", style, n, len(res.Placements))
			}

			for i := range res.Placements {
				for j := i + 1; j < len(res.Placements); j++ {
					a := res.Placements[i].Bounds().Expand(spacing / 2)
					b := res.Placements[j].Bounds().Expand(spacing / 2)
					if a.Overlaps(b) {
						t.Errorf("%v n=%d: panels %d and %d closer than %g mm", style, n, i, j, spacing)
					}
				}
			}
		}
	}
}

func TestArrangeCanvasContainsEverything(t *testing.T) {
	for _, style := range []box.LayoutStyle{box.LayoutDiagram, box.LayoutThreePiece, box.LayoutCompact} {
		res := Arrange(boxPanels(), style, 10)
		for i, p := range res.Placements {
			b := p.Bounds()
			if b.MinX < Margin || b.MinY < Margin ||
				b.MaxX > res.Canvas.MaxX-Margin || b.MaxY > res.Canvas.MaxY-Margin {
				t.Errorf("%v: panel %d bounds %+v break the canvas margin (canvas %+v)", style, i, b, res.Canvas)
			}
		}
		if res.Canvas.MinX != 0 || res.Canvas.MinY != 0 {
			t.Errorf("%v: canvas origin = (%g, %g), want (0, 0)", style, res.Canvas.MinX, res.Canvas.MinY)
		}
	}
}

// The diagram layout unfolds the box: front above the floor, back below it,
// left wall to its left, right wall and lid off to the right.
func TestArrangeDiagramShape(t *testing.T) {
	res := Arrange(boxPanels(), box.LayoutDiagram, 10)

	at := map[string]geom.Rect{}
	for _, p := range res.Placements {
		at[p.Panel.Name] = p.Bounds()
	}

	if at["front"].MaxY > at["bottom"].MinY {
		t.Error("front does not sit above the floor")
	}
	if at["back"].MinY < at["bottom"].MaxY {
		t.Error("back does not sit below the floor")
	}
	if at["left"].MaxX > at["bottom"].MinX {
		t.Error("left wall does not sit left of the floor")
	}
	if at["right"].MinX < at["bottom"].MaxX {
		t.Error("right wall does not sit right of the floor")
	}
	if at["top"].MinX < at["right"].MaxX {
		t.Error("lid does not sit beyond the right wall")
	}
	if at["front"].MinX != at["bottom"].MinX {
		t.Error("front and floor are not column aligned")
	}
}

func TestArrangePreservesOrder(t *testing.T) {
	panels := boxPanels()
	res := Arrange(panels, box.LayoutCompact, 10)
	for i, p := range res.Placements {
		if p.Panel.Name != panels[i].Name {
			t.Errorf("placement %d is %q, want %q", i, p.Panel.Name, panels[i].Name)
		}
	}
}

func TestDrawnTranslatesPanel(t *testing.T) {
	p := pin(rectPanel("bottom", 40, 30), 25, 35)
	drawn := p.Drawn()
	b := drawn.Outline.Bounds()
	if b.MinX != 25 || b.MinY != 35 {
		t.Errorf("drawn outline starts at (%g, %g), want (25, 35)", b.MinX, b.MinY)
	}
	if got := p.Panel.Outline.Bounds(); got.MinX != 0 {
		t.Error("Drawn() mutated the source panel")
	}
}
