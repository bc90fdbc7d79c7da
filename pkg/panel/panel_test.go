package panel

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/boxforge/boxforge/pkg/box"
	"github.com/boxforge/boxforge/pkg/errors"
	"github.com/boxforge/boxforge/pkg/geom"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

// Trace a 100x100 panel whose top edge is a male three-finger joint and
// whose other edges are straight, with a 0.4 mm kerf. The boundaries shift
// half a kerf each, so the outer tab run comes out one kerf wider than its
// nominal 25 mm.
func TestTraceKerfCompensation(t *testing.T) {
	s := box.DefaultSpec()
	s.Kerf = 0.4
	s.TabWidth = 25
	r, err := s.Resolve()
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	top, err := BuildEdge(100, r, true)
	if err != nil {
		t.Fatalf("BuildEdge() error = %v", err)
	}
	edges := [4]Edge{top, plainEdge(100), plainEdge(100), plainEdge(100)}

	outline, reliefs := trace(100, 100, edges, r)

	want := []geom.Point{
		{X: 0, Y: 3},
		{X: 37.3, Y: 3}, {X: 37.3, Y: 0},
		{X: 62.7, Y: 0}, {X: 62.7, Y: 3},
		{X: 100, Y: 3},
		{X: 100, Y: 100},
		{X: 0, Y: 100},
	}
	if diff := cmp.Diff(want, outline.Points, approx); diff != "" {
		t.Errorf("outline points mismatch (-want +got):\n%s", diff)
	}
	if !outline.Closed {
		t.Error("outline not closed")
	}
	if len(reliefs) != 0 {
		t.Errorf("reliefs = %d, want none for through cuts", len(reliefs))
	}
}

// Widening the kerf must strictly widen the drawn tab on a male edge.
func TestTraceKerfMonotonic(t *testing.T) {
	tabWidth := func(kerf float64) float64 {
		s := box.DefaultSpec()
		s.Kerf = kerf
		s.TabWidth = 25
		r, err := s.Resolve()
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		top, err := BuildEdge(100, r, true)
		if err != nil {
			t.Fatalf("BuildEdge() error = %v", err)
		}
		edges := [4]Edge{top, plainEdge(100), plainEdge(100), plainEdge(100)}
		outline, _ := trace(100, 100, edges, r)

		// The single tab is the run of outer-rail points along the top.
		minX, maxX := 100.0, 0.0
		for _, p := range outline.Points {
			if p.Y == 0 {
				minX = min(minX, p.X)
				maxX = max(maxX, p.X)
			}
		}
		return maxX - minX
	}

	prev := tabWidth(0)
	for _, kerf := range []float64{0.2, 0.4, 0.8} {
		got := tabWidth(kerf)
		if got <= prev {
			t.Errorf("tab width at kerf %g = %g, want wider than %g", kerf, got, prev)
		}
		prev = got
	}
}

func TestTraceDogboneReliefs(t *testing.T) {
	s := box.DefaultSpec()
	s.Kerf = 0.4
	s.TabWidth = 25
	s.TabType = box.TabDogbone
	r, err := s.Resolve()
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	top, err := BuildEdge(100, r, true)
	if err != nil {
		t.Fatalf("BuildEdge() error = %v", err)
	}
	edges := [4]Edge{top, plainEdge(100), plainEdge(100), plainEdge(100)}

	_, reliefs := trace(100, 100, edges, r)

	if len(reliefs) != 2 {
		t.Fatalf("reliefs = %d, want one per segment boundary", len(reliefs))
	}
	for i, c := range reliefs {
		if c.R != 0.2 {
			t.Errorf("relief %d radius = %g, want half the kerf", i, c.R)
		}
		// Reliefs sit on the inset rail, where the cutter cannot reach
		// into the corner.
		if c.Center.Y != 3 {
			t.Errorf("relief %d at y = %g, want 3", i, c.Center.Y)
		}
	}
}

func TestTraceDimples(t *testing.T) {
	s := box.DefaultSpec()
	s.Kerf = 0
	s.TabWidth = 25
	s.DimpleHeight = 1
	s.DimpleTip = 2
	r, err := s.Resolve()
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	top, err := BuildEdge(100, r, true)
	if err != nil {
		t.Fatalf("BuildEdge() error = %v", err)
	}
	edges := [4]Edge{top, plainEdge(100), plainEdge(100), plainEdge(100)}

	outline, _ := trace(100, 100, edges, r)

	b := outline.Bounds()
	if b.MinY != -1 {
		t.Errorf("outline MinY = %g, want -1 from the dimple bulge", b.MinY)
	}

	// The bulge is a 45 degree trapezoid centered on the 25 mm tab.
	want := []geom.Point{{X: 47, Y: 0}, {X: 49, Y: -1}, {X: 51, Y: -1}, {X: 53, Y: 0}}
	var got []geom.Point
	for _, p := range outline.Points {
		if p.Y <= 0 && p.X > 37.5 && p.X < 62.5 {
			got = append(got, p)
		}
	}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("dimple points mismatch (-want +got):\n%s", diff)
	}
}

func TestTraceDimpleSkippedOnNarrowTab(t *testing.T) {
	s := box.DefaultSpec()
	s.Kerf = 0
	s.TabWidth = 5
	s.DimpleHeight = 1.5
	s.DimpleTip = 2
	r, err := s.Resolve()
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	// 5 mm tabs leave under 2 mm of flat shoulder around a 2 mm tip.
	top, err := BuildEdge(100, r, true)
	if err != nil {
		t.Fatalf("BuildEdge() error = %v", err)
	}
	edges := [4]Edge{top, plainEdge(100), plainEdge(100), plainEdge(100)}

	outline, _ := trace(100, 100, edges, r)
	if b := outline.Bounds(); b.MinY != 0 {
		t.Errorf("outline MinY = %g, want 0 with dimples skipped", b.MinY)
	}
}

func buildPanels(t *testing.T, mutate func(*box.Spec)) []Panel {
	t.Helper()
	s := box.DefaultSpec()
	s.Kerf = 0
	mutate(&s)
	r, err := s.Resolve()
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	panels, err := NewBuilder(r).Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return panels
}

func panelNames(panels []Panel) []string {
	names := make([]string, len(panels))
	for i, p := range panels {
		names[i] = p.Name
	}
	return names
}

func TestBuildPanelCounts(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*box.Spec)
		want   []string
	}{
		{
			name:   "full box",
			mutate: func(s *box.Spec) {},
			want:   []string{"bottom", "top", "front", "back", "left", "right"},
		},
		{
			name:   "open top",
			mutate: func(s *box.Spec) { s.Type = box.BoxOpenTop },
			want:   []string{"bottom", "front", "back", "left", "right"},
		},
		{
			name:   "tube with dividers",
			mutate: func(s *box.Spec) { s.Type = box.BoxTube; s.DivL = 1; s.DivW = 2 },
			want:   []string{"front", "back", "left", "right", "divider-l-1", "divider-w-1", "divider-w-2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			panels := buildPanels(t, tt.mutate)
			if diff := cmp.Diff(tt.want, panelNames(panels)); diff != "" {
				t.Errorf("panel names mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// With zero kerf every face panel's cut extent equals its nominal size:
// female corners sit on the outer rail, and male tabs reach it.
func TestBuildFaceBoundsMatchNominal(t *testing.T) {
	panels := buildPanels(t, func(s *box.Spec) {
		s.Length, s.Width, s.Height = 100, 80, 50
		s.TabWidth = 12
	})

	for _, p := range panels {
		want := geom.Rect{MinX: 0, MinY: 0, MaxX: p.W, MaxY: p.H}
		if diff := cmp.Diff(want, p.Bounds(), approx); diff != "" {
			t.Errorf("%s bounds mismatch (-want +got):\n%s", p.Name, diff)
		}
	}
}

func TestBuildDividerKeyingHoles(t *testing.T) {
	panels := buildPanels(t, func(s *box.Spec) {
		s.Length, s.Width, s.Height = 120, 120, 60
		s.TabWidth = 20
		s.DivL = 1
	})

	byName := map[string]Panel{}
	for _, p := range panels {
		byName[p.Name] = p
	}

	// The divider's floor edge has tabs at 30..50 and 70..90 along the
	// width axis; the floor receives matching slots one thickness wide
	// at the divider's x position.
	bottom := byName["bottom"]
	want := []geom.Polyline{
		geom.ClosedRect(58.5, 30, 61.5, 50),
		geom.ClosedRect(58.5, 70, 61.5, 90),
	}
	if diff := cmp.Diff(want, bottom.Holes, approx); diff != "" {
		t.Errorf("floor holes mismatch (-want +got):\n%s", diff)
	}

	if got := len(byName["front"].Holes); got != 2 {
		t.Errorf("front wall holes = %d, want 2", got)
	}
	if got := len(byName["left"].Holes); got != 0 {
		t.Errorf("left wall holes = %d, want 0", got)
	}
}

func TestBuildKeyingPolicies(t *testing.T) {
	count := func(policy box.KeyPolicy, name string) int {
		panels := buildPanels(t, func(s *box.Spec) {
			s.Length, s.Width, s.Height = 120, 120, 60
			s.TabWidth = 20
			s.DivL = 1
			s.Keying = policy
		})
		for _, p := range panels {
			if p.Name == name {
				return len(p.Holes)
			}
		}
		t.Fatalf("panel %q not built", name)
		return 0
	}

	if got := count(box.KeyWalls, "bottom"); got != 0 {
		t.Errorf("walls-only keying: floor holes = %d, want 0", got)
	}
	if got := count(box.KeyWalls, "front"); got == 0 {
		t.Error("walls-only keying: front wall has no holes")
	}
	if got := count(box.KeyFloorCeiling, "front"); got != 0 {
		t.Errorf("floor-only keying: front wall holes = %d, want 0", got)
	}
	if got := count(box.KeyFloorCeiling, "bottom"); got == 0 {
		t.Error("floor-only keying: floor has no holes")
	}
	if got := count(box.KeyNone, "bottom"); got != 0 {
		t.Errorf("no keying: floor holes = %d, want 0", got)
	}
}

// Crossing dividers halve into each other: the length-axis divider is
// slotted from its top edge to half depth, the width-axis one from the
// bottom up.
func TestBuildCrossingSlots(t *testing.T) {
	panels := buildPanels(t, func(s *box.Spec) {
		s.Length, s.Width, s.Height = 120, 120, 60
		s.TabWidth = 20
		s.DivL = 1
		s.DivW = 1
	})

	var divL, divW Panel
	for _, p := range panels {
		switch p.Name {
		case "divider-l-1":
			divL = p
		case "divider-w-1":
			divW = p
		}
	}

	wantL := geom.ClosedRect(58.5, 0, 61.5, 30)
	if diff := cmp.Diff([]geom.Polyline{wantL}, divL.Holes, approx); diff != "" {
		t.Errorf("length divider slots mismatch (-want +got):\n%s", diff)
	}
	wantW := geom.ClosedRect(58.5, 30, 61.5, 60)
	if diff := cmp.Diff([]geom.Polyline{wantW}, divW.Holes, approx); diff != "" {
		t.Errorf("width divider slots mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildDividerCollapse(t *testing.T) {
	s := box.DefaultSpec()
	s.Length, s.Width, s.Height = 40, 100, 100
	s.Thickness = 6
	s.Kerf = 0.5
	s.TabWidth = 10
	s.DivL = 5
	r, err := s.Resolve()
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	_, err = NewBuilder(r).Build()
	if err == nil {
		t.Fatal("Build() error = nil, want divider collapse")
	}
	if !errors.Is(err, errors.ErrCodeGeometryDivider) {
		t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeGeometryDivider)
	}
	if !errors.IsGeometry(err) {
		t.Errorf("IsGeometry(%v) = false, want true", err)
	}
}

func TestBuildEdgeErrorNamesThePanel(t *testing.T) {
	s := box.DefaultSpec()
	s.Length, s.Width, s.Height = 100, 100, 40
	s.Kerf = 0
	s.TabWidth = 16
	r, err := s.Resolve()
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	// The 40 mm vertical edges fit only floor(40/16) = 2 segments, one
	// short of the odd minimum.
	_, err = NewBuilder(r).Build()
	if err == nil {
		t.Fatal("Build() error = nil, want geometry error")
	}
	if !errors.Is(err, errors.ErrCodeGeometryEdge) {
		t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeGeometryEdge)
	}
	if !strings.Contains(err.Error(), "front") {
		t.Errorf("message %q does not name the failing panel", err.Error())
	}
}
