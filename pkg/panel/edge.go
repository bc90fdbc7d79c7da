// Package panel turns a resolved box spec into flat 2-D panels: finger-joint
// outlines, divider slots, keying holes and mill reliefs, all in panel-local
// millimeter coordinates with y pointing down.
package panel

import (
	"math"

	"github.com/boxforge/boxforge/pkg/box"
	"github.com/boxforge/boxforge/pkg/errors"
)

// SegmentKind distinguishes the two rails a joint edge alternates between.
type SegmentKind int

const (
	// SegTab runs on the outer rail of the panel.
	SegTab SegmentKind = iota
	// SegGap runs one material thickness inside the outer rail.
	SegGap
)

// Segment is one run along an edge. Lengths are nominal; kerf compensation
// is applied when the outline is traced, not here.
type Segment struct {
	Kind SegmentKind
	Len  float64
}

// Edge is the joint profile of one panel side.
//
// A male edge pushes its tabs into the mating panel and starts and ends with
// a gap, so the corners stay clear of the neighbor's material. A female edge
// is the complement. Untabbed edges carry a single segment.
type Edge struct {
	Tabbed   bool
	Male     bool
	Segments []Segment
}

// First returns the kind of the first segment.
func (e Edge) First() SegmentKind { return e.Segments[0].Kind }

// Last returns the kind of the last segment.
func (e Edge) Last() SegmentKind { return e.Segments[len(e.Segments)-1].Kind }

// plainEdge is a straight run on the outer rail, used where no neighbor
// panel exists.
func plainEdge(length float64) Edge {
	return Edge{Segments: []Segment{{SegTab, length}}}
}

// insetEdge is a straight run one thickness inside the outer rail, used for
// divider sides that butt flush against a wall without keying into it.
func insetEdge(length float64) Edge {
	return Edge{Segments: []Segment{{SegGap, length}}}
}

// BuildEdge computes the finger profile for a joint edge of the given
// length. The segment count follows the tab policy: under the fixed policy
// every interior segment is exactly the preferred width and the remainder is
// split evenly between the two end segments, so the ends are never narrower
// than the interior. Under the proportional policy all segments share the
// edge evenly at the largest count that keeps them at or above the preferred
// width.
//
// Mirror and alternating symmetries need an odd segment count, rotational
// symmetry an even one. Edges too short for the minimum count fail with a
// geometry error.
func BuildEdge(length float64, r box.Resolved, male bool) (Edge, error) {
	pref := r.TabWidth
	needOdd := r.Symmetry != box.SymRotate

	n := int(math.Floor(length / pref))
	if needOdd && n%2 == 0 {
		n--
	}
	if !needOdd && n%2 == 1 {
		n--
	}

	minN := 2
	if needOdd {
		minN = 3
	}
	if n < minN {
		return Edge{}, errors.New(errors.ErrCodeGeometryEdge,
			"edge of %g mm cannot fit %d tab segments of %g mm; the edge must be at least %g mm",
			length, minN, pref, float64(minN)*pref)
	}

	segs := make([]Segment, n)
	interior := pref
	end := (length - float64(n-2)*pref) / 2
	if r.TabPolicy == box.TabProportional {
		interior = length / float64(n)
		end = interior
	}

	// Rotational symmetry keys off the traversal direction instead of a
	// gendered phase: every edge starts on the outer rail, and reversing
	// the shared edge on the mating panel yields the complement.
	start := SegTab
	if needOdd && male {
		start = SegGap
	}

	kind := start
	for i := range segs {
		segs[i] = Segment{Kind: kind, Len: interior}
		kind = 1 - kind
	}
	segs[0].Len = end
	segs[n-1].Len = end

	return Edge{Tabbed: true, Male: male, Segments: segs}, nil
}

// tabSpans returns the [start, end) positions of every outer-rail segment,
// measured from the traversal start of the edge. Nominal, without kerf.
func tabSpans(e Edge) [][2]float64 {
	var spans [][2]float64
	u := 0.0
	for _, s := range e.Segments {
		if s.Kind == SegTab {
			spans = append(spans, [2]float64{u, u + s.Len})
		}
		u += s.Len
	}
	return spans
}
