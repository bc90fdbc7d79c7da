package panel

import (
	"github.com/boxforge/boxforge/pkg/box"
	"github.com/boxforge/boxforge/pkg/geom"
)

// dimpleMinMaterial is the flat tab shoulder that must remain on both sides
// of a dimple for it to hold under press fit.
const dimpleMinMaterial = 2.0

// Panel is one flat part in panel-local coordinates: the origin sits at the
// nominal top-left corner, y points down. W and H are the nominal drawn
// size; the outline may protrude past them where dimples bulge outward, and
// recede inside them along gap rails.
type Panel struct {
	Name    string
	W, H    float64
	Outline geom.Polyline
	Holes   []geom.Polyline
	Reliefs []geom.Circle
}

// Bounds returns the actual extent of everything cut for this panel.
func (p Panel) Bounds() geom.Rect {
	b := p.Outline.Bounds()
	for _, c := range p.Reliefs {
		b = b.Union(c.Bounds())
	}
	for _, h := range p.Holes {
		b = b.Union(h.Bounds())
	}
	return b
}

// Translate returns a copy of the panel shifted by (dx, dy).
func (p Panel) Translate(dx, dy float64) Panel {
	out := Panel{Name: p.Name, W: p.W, H: p.H, Outline: p.Outline.Translate(dx, dy)}
	for _, h := range p.Holes {
		out.Holes = append(out.Holes, h.Translate(dx, dy))
	}
	for _, c := range p.Reliefs {
		out.Reliefs = append(out.Reliefs, c.Translate(dx, dy))
	}
	return out
}

// sideGeom fixes the clockwise traversal of a W by H panel: where each side
// starts, which way it runs and which way is outward.
type sideGeom struct {
	start    geom.Point
	dir, out geom.Point
}

func sideGeoms(w, h float64) [4]sideGeom {
	return [4]sideGeom{
		SideTop:    {geom.Point{X: 0, Y: 0}, geom.Point{X: 1}, geom.Point{Y: -1}},
		SideRight:  {geom.Point{X: w, Y: 0}, geom.Point{Y: 1}, geom.Point{X: 1}},
		SideBottom: {geom.Point{X: w, Y: h}, geom.Point{X: -1}, geom.Point{Y: 1}},
		SideLeft:   {geom.Point{X: 0, Y: h}, geom.Point{Y: -1}, geom.Point{X: -1}},
	}
}

// at resolves a point on side g: u millimeters along the traversal, v
// millimeters outward from the nominal rail.
func (g sideGeom) at(u, v float64) geom.Point {
	return geom.Point{
		X: g.start.X + g.dir.X*u + g.out.X*v,
		Y: g.start.Y + g.dir.Y*u + g.out.Y*v,
	}
}

// railOff returns the outward offset of a segment kind's rail.
func railOff(k SegmentKind, thickness float64) float64 {
	if k == SegGap {
		return -thickness
	}
	return 0
}

// trace walks the four edges clockwise and produces the closed outline plus
// any dogbone reliefs.
//
// Kerf compensation happens here, at segment boundaries: every boundary
// shifts by half the effective kerf so tabs come out wider than nominal and
// gaps narrower, restoring the nominal fit after the cutter eats its kerf.
// The boundary moves toward the gap exactly when the edge is male, which
// keeps the two mating profiles compensating in opposite directions.
func trace(w, h float64, edges [4]Edge, r box.Resolved) (geom.Polyline, []geom.Circle) {
	t := r.Thickness
	half := (r.Kerf - r.Clearance) / 2
	geoms := sideGeoms(w, h)

	var outline geom.Polyline
	outline.Closed = true
	var reliefs []geom.Circle

	for i := 0; i < 4; i++ {
		e := edges[i]
		g := geoms[i]
		prev := edges[(i+3)%4]
		prevG := geoms[(i+3)%4]

		// The corner honors both adjacent rails: it sits at the nominal
		// corner pulled inward once for each neighboring gap segment.
		corner := g.at(0, railOff(e.First(), t))
		corner.X += prevG.out.X * railOff(prev.Last(), t)
		corner.Y += prevG.out.Y * railOff(prev.Last(), t)
		outline.Points = append(outline.Points, corner)

		u := 0.0
		for j, seg := range e.Segments {
			if seg.Kind == SegTab && e.Tabbed && r.DimpleHeight > 0 {
				appendDimple(&outline, g, u, seg.Len, r)
			}
			u += seg.Len
			if j == len(e.Segments)-1 {
				break
			}

			ub := u
			next := e.Segments[j+1].Kind
			if (next == SegTab) == e.Male {
				ub -= half
			} else {
				ub += half
			}

			p1 := g.at(ub, railOff(seg.Kind, t))
			p2 := g.at(ub, railOff(next, t))
			outline.Points = append(outline.Points, p1, p2)

			if r.TabType == box.TabDogbone && r.Kerf > 0 {
				inner := p1
				if next == SegGap {
					inner = p2
				}
				reliefs = append(reliefs, geom.Circle{Center: inner, R: r.Kerf / 2})
			}
		}
	}
	return outline, reliefs
}

// appendDimple bulges the outer rail of a tab outward into a 45 degree
// trapezoid centered on the tab. Tabs too narrow to keep a flat shoulder on
// both sides are left plain.
func appendDimple(outline *geom.Polyline, g sideGeom, start, length float64, r box.Resolved) {
	tip, height := r.DimpleTip, r.DimpleHeight
	if length <= 2*tip+dimpleMinMaterial || length <= tip+2*height {
		return
	}
	c := start + length/2
	outline.Points = append(outline.Points,
		g.at(c-tip/2-height, 0),
		g.at(c-tip/2, height),
		g.at(c+tip/2, height),
		g.at(c+tip/2+height, 0),
	)
}
