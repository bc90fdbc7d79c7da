package panel

import (
	"fmt"

	"github.com/boxforge/boxforge/pkg/box"
	"github.com/boxforge/boxforge/pkg/errors"
	"github.com/boxforge/boxforge/pkg/geom"
)

// Builder generates every panel of one resolved box: the present faces in
// build order, then length-axis dividers, then width-axis dividers.
type Builder struct {
	r box.Resolved
}

// NewBuilder returns a Builder for the resolved spec.
func NewBuilder(r box.Resolved) *Builder {
	return &Builder{r: r}
}

// Build produces all panels. Keying holes for dividers are cut into the
// receiving faces, so dividers are laid out first and faces second
// internally, even though faces come first in the returned slice.
func (b *Builder) Build() ([]Panel, error) {
	px, err := b.dividerPitch("div-l", b.r.X, b.r.DivL)
	if err != nil {
		return nil, err
	}
	py, err := b.dividerPitch("div-w", b.r.Y, b.r.DivW)
	if err != nil {
		return nil, err
	}

	faceHoles := map[box.Face][]geom.Rect{}
	var dividers []Panel

	for k, pos := range px {
		p, err := b.buildDividerL(k+1, pos, py, faceHoles)
		if err != nil {
			return nil, err
		}
		dividers = append(dividers, p)
	}
	for k, pos := range py {
		p, err := b.buildDividerW(k+1, pos, px, faceHoles)
		if err != nil {
			return nil, err
		}
		dividers = append(dividers, p)
	}

	var panels []Panel
	for _, f := range b.r.Type.Faces() {
		p, err := b.buildFace(f, faceHoles[f])
		if err != nil {
			return nil, err
		}
		panels = append(panels, p)
	}
	return append(panels, dividers...), nil
}

// dividerPitch returns the positions of count dividers spread evenly along
// an axis, or a geometry error when the compartments collapse into walls
// thicker than the gaps between them.
func (b *Builder) dividerPitch(name string, axis float64, count int) ([]float64, error) {
	if count == 0 {
		return nil, nil
	}
	pitch := axis / float64(count+1)
	if pitch < 2*b.r.Thickness {
		return nil, errors.New(errors.ErrCodeGeometryDivider,
			"%s dividers sit %g mm apart on a %g mm axis, under twice the %g mm thickness; use fewer dividers or thinner material",
			name, pitch, axis, b.r.Thickness)
	}
	pos := make([]float64, count)
	for i := range pos {
		pos[i] = pitch * float64(i+1)
	}
	return pos, nil
}

// buildFace assembles one face panel from the four joint edges its
// neighbors dictate. A side whose neighbor face is absent stays straight.
func (b *Builder) buildFace(f box.Face, holes []geom.Rect) (Panel, error) {
	w, h := b.r.PanelSize(f)
	lens := [4]float64{w, h, w, h}

	var edges [4]Edge
	for s := SideTop; s <= SideLeft; s++ {
		other := neighbors[f][s]
		if !b.r.Type.Has(other) {
			edges[s] = plainEdge(lens[s])
			continue
		}
		e, err := BuildEdge(lens[s], b.r, malePhase[b.r.Symmetry][f][s])
		if err != nil {
			return Panel{}, errors.Wrap(errors.GetCode(err), err,
				"%s panel, %s edge", f, s)
		}
		edges[s] = e
	}

	outline, reliefs := trace(w, h, edges, b.r)
	p := Panel{Name: f.String(), W: w, H: h, Outline: outline, Reliefs: reliefs}
	for _, r := range holes {
		p.Holes = append(p.Holes, rectHole(r))
	}
	return p, nil
}

// buildDividerL builds divider number k across the length axis, sitting at
// x position pos. It spans the width-height plane and is drawn width by
// height, with the box front at the left of the sheet.
func (b *Builder) buildDividerL(k int, pos float64, crossings []float64, faceHoles map[box.Face][]geom.Rect) (Panel, error) {
	name := fmt.Sprintf("divider-l-%d", k)
	w, h := b.r.Y, b.r.Z
	sideFaces := [4]box.Face{box.FaceTop, box.FaceBack, box.FaceBottom, box.FaceFront}

	p, edges, err := b.buildDividerPanel(name, w, h, sideFaces)
	if err != nil {
		return Panel{}, err
	}

	// Keying holes in the receiving faces. Panel x runs from the box front
	// toward the back; hole positions translate accordingly.
	sw := b.r.SlotWidth()
	for s, f := range sideFaces {
		if !edges[s].Tabbed {
			continue
		}
		for _, span := range tabSpans(edges[s]) {
			lo, hi := b.holeSpan(span)
			var r geom.Rect
			switch Side(s) {
			case SideTop: // ceiling, along the width axis
				r = geom.Rect{MinX: pos - sw/2, MinY: b.r.Y - hi, MaxX: pos + sw/2, MaxY: b.r.Y - lo}
			case SideRight: // back wall, down from the box top
				r = geom.Rect{MinX: pos - sw/2, MinY: lo, MaxX: pos + sw/2, MaxY: hi}
			case SideBottom: // floor
				r = geom.Rect{MinX: pos - sw/2, MinY: lo, MaxX: pos + sw/2, MaxY: hi}
			case SideLeft: // front wall
				r = geom.Rect{MinX: pos - sw/2, MinY: h - hi, MaxX: pos + sw/2, MaxY: h - lo}
			}
			faceHoles[f] = append(faceHoles[f], r)
		}
	}

	// Halving slots where width-axis dividers cross, cut down from the top
	// edge to half depth.
	for _, cy := range crossings {
		u := b.r.Y - cy
		p.Holes = append(p.Holes, rectHole(geom.Rect{MinX: u - sw/2, MinY: 0, MaxX: u + sw/2, MaxY: h / 2}))
	}
	return p, nil
}

// buildDividerW builds divider number k across the width axis, sitting at
// y position pos. It spans the length-height plane and is drawn length by
// height.
func (b *Builder) buildDividerW(k int, pos float64, crossings []float64, faceHoles map[box.Face][]geom.Rect) (Panel, error) {
	name := fmt.Sprintf("divider-w-%d", k)
	w, h := b.r.X, b.r.Z
	sideFaces := [4]box.Face{box.FaceTop, box.FaceRight, box.FaceBottom, box.FaceLeft}

	p, edges, err := b.buildDividerPanel(name, w, h, sideFaces)
	if err != nil {
		return Panel{}, err
	}

	sw := b.r.SlotWidth()
	for s, f := range sideFaces {
		if !edges[s].Tabbed {
			continue
		}
		for _, span := range tabSpans(edges[s]) {
			lo, hi := b.holeSpan(span)
			var r geom.Rect
			switch Side(s) {
			case SideTop: // ceiling, along the length axis
				r = geom.Rect{MinX: lo, MinY: pos - sw/2, MaxX: hi, MaxY: pos + sw/2}
			case SideRight: // right wall, down from the box top
				r = geom.Rect{MinX: lo, MinY: b.r.Y - pos - sw/2, MaxX: hi, MaxY: b.r.Y - pos + sw/2}
			case SideBottom: // floor, traversed right to left
				r = geom.Rect{MinX: b.r.X - hi, MinY: pos - sw/2, MaxX: b.r.X - lo, MaxY: pos + sw/2}
			case SideLeft: // left wall, traversed bottom up
				r = geom.Rect{MinX: b.r.Z - hi, MinY: b.r.Y - pos - sw/2, MaxX: b.r.Z - lo, MaxY: b.r.Y - pos + sw/2}
			}
			faceHoles[f] = append(faceHoles[f], r)
		}
	}

	// Halving slots where length-axis dividers cross, cut up from the
	// bottom edge to meet the top-half slots of the crossing dividers.
	for _, cx := range crossings {
		p.Holes = append(p.Holes, rectHole(geom.Rect{MinX: cx - sw/2, MinY: h / 2, MaxX: cx + sw/2, MaxY: h}))
	}
	return p, nil
}

// buildDividerPanel assembles a divider outline. Each side keys into its
// face with male tabs when the face exists and the keying policy covers it,
// butts flush against the face's inner surface when it exists unkeyed, and
// runs the full nominal size where the face is open.
func (b *Builder) buildDividerPanel(name string, w, h float64, sideFaces [4]box.Face) (Panel, [4]Edge, error) {
	lens := [4]float64{w, h, w, h}

	var edges [4]Edge
	for s := SideTop; s <= SideLeft; s++ {
		f := sideFaces[s]
		switch {
		case b.keysInto(f):
			e, err := BuildEdge(lens[s], b.r, true)
			if err != nil {
				return Panel{}, edges, errors.Wrap(errors.GetCode(err), err,
					"%s panel, %s edge", name, s)
			}
			edges[s] = e
		case b.r.Type.Has(f):
			edges[s] = insetEdge(lens[s])
		default:
			edges[s] = plainEdge(lens[s])
		}
	}

	outline, reliefs := trace(w, h, edges, b.r)
	return Panel{Name: name, W: w, H: h, Outline: outline, Reliefs: reliefs}, edges, nil
}

// keysInto reports whether dividers key into face f under the current
// policy.
func (b *Builder) keysInto(f box.Face) bool {
	if !b.r.Type.Has(f) {
		return false
	}
	switch b.r.Keying {
	case box.KeyNone:
		return false
	case box.KeyWalls:
		return f != box.FaceTop && f != box.FaceBottom
	case box.KeyFloorCeiling:
		return f == box.FaceTop || f == box.FaceBottom
	default:
		return true
	}
}

// holeSpan shrinks a nominal tab span by the kerf compensation so the hole
// matches the widened mating tab.
func (b *Builder) holeSpan(span [2]float64) (lo, hi float64) {
	half := (b.r.Kerf - b.r.Clearance) / 2
	return span[0] + half, span[1] - half
}

// rectHole converts an axis-aligned hole into its cut polyline.
func rectHole(r geom.Rect) geom.Polyline {
	return geom.ClosedRect(r.MinX, r.MinY, r.MaxX, r.MaxY)
}
