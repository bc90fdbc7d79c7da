package box

import "github.com/boxforge/boxforge/pkg/errors"

// TabPolicy selects how the preferred tab width is interpreted.
type TabPolicy int

const (
	// TabFixed treats TabWidth as the target width of every segment.
	TabFixed TabPolicy = iota
	// TabProportional treats TabWidth as a minimum; segments grow evenly
	// to the smallest width at or above it.
	TabProportional
)

// Symmetry selects the finger pattern rule applied to every edge.
type Symmetry int

const (
	// SymXY mirrors each edge's pattern about its midpoint.
	SymXY Symmetry = iota
	// SymRotate makes opposite edges of a panel point-symmetric about the
	// panel center (waffle-block joints).
	SymRotate
	// SymAnti alternates tab/gap phase between adjacent edges of a panel.
	SymAnti
)

// TabType selects the corner treatment of each tab.
type TabType int

const (
	// TabThroughCut leaves square interior corners (laser, water-jet).
	TabThroughCut TabType = iota
	// TabDogbone adds round reliefs at interior corners for round-nosed mills.
	TabDogbone
)

// BoxType enumerates which of the six faces exist.
type BoxType int

const (
	BoxFull BoxType = iota
	BoxOpenTop
	BoxOpenTopFront
	BoxOpenThreeSides
	BoxTube     // opposite ends open: no top, no bottom
	BoxTwoPanel // bottom and left panel only
)

// KeyPolicy controls which surrounding faces an interior divider keys into.
type KeyPolicy int

const (
	KeyAll KeyPolicy = iota
	KeyWalls
	KeyFloorCeiling
	KeyNone
)

// LayoutStyle selects the panel packing strategy.
type LayoutStyle int

const (
	LayoutDiagram LayoutStyle = iota
	LayoutThreePiece
	LayoutCompact
)

// Face identifies one of the six box faces.
type Face int

const (
	FaceBottom Face = iota
	FaceTop
	FaceFront
	FaceBack
	FaceLeft
	FaceRight
	faceCount
)

var faceNames = [faceCount]string{"bottom", "top", "front", "back", "left", "right"}

func (f Face) String() string {
	if f < 0 || f >= faceCount {
		return "unknown"
	}
	return faceNames[f]
}

// Opposite returns the face on the other side of the box.
func (f Face) Opposite() Face {
	switch f {
	case FaceBottom:
		return FaceTop
	case FaceTop:
		return FaceBottom
	case FaceFront:
		return FaceBack
	case FaceBack:
		return FaceFront
	case FaceLeft:
		return FaceRight
	default:
		return FaceLeft
	}
}

// faceSets maps each box type to the faces it keeps.
var faceSets = map[BoxType][]Face{
	BoxFull:           {FaceBottom, FaceTop, FaceFront, FaceBack, FaceLeft, FaceRight},
	BoxOpenTop:        {FaceBottom, FaceFront, FaceBack, FaceLeft, FaceRight},
	BoxOpenTopFront:   {FaceBottom, FaceBack, FaceLeft, FaceRight},
	BoxOpenThreeSides: {FaceBottom, FaceBack, FaceLeft},
	BoxTube:           {FaceFront, FaceBack, FaceLeft, FaceRight},
	BoxTwoPanel:       {FaceBottom, FaceLeft},
}

// Faces returns the faces present for this box type, in build order.
func (t BoxType) Faces() []Face {
	return faceSets[t]
}

// Has reports whether face f exists for this box type.
func (t BoxType) Has(f Face) bool {
	for _, have := range faceSets[t] {
		if have == f {
			return true
		}
	}
	return false
}

var boxTypeNames = map[BoxType]string{
	BoxFull:           "full",
	BoxOpenTop:        "open-top",
	BoxOpenTopFront:   "open-top-front",
	BoxOpenThreeSides: "open-three",
	BoxTube:           "tube",
	BoxTwoPanel:       "two-panel",
}

func (t BoxType) String() string { return boxTypeNames[t] }

// ParseBoxType converts a CLI flag value into a BoxType.
func ParseBoxType(s string) (BoxType, error) {
	for t, name := range boxTypeNames {
		if name == s {
			return t, nil
		}
	}
	return BoxFull, errors.New(errors.ErrCodeInvalidSpec,
		"unknown box type %q (must be full, open-top, open-top-front, open-three, tube, or two-panel)", s)
}

var symmetryNames = map[Symmetry]string{
	SymXY:     "xy",
	SymRotate: "rotate",
	SymAnti:   "anti",
}

func (s Symmetry) String() string { return symmetryNames[s] }

// ParseSymmetry converts a CLI flag value into a Symmetry.
func ParseSymmetry(v string) (Symmetry, error) {
	for s, name := range symmetryNames {
		if name == v {
			return s, nil
		}
	}
	return SymXY, errors.New(errors.ErrCodeInvalidSpec,
		"unknown symmetry %q (must be xy, rotate, or anti)", v)
}

var tabTypeNames = map[TabType]string{
	TabThroughCut: "through",
	TabDogbone:    "dogbone",
}

func (t TabType) String() string { return tabTypeNames[t] }

// ParseTabType converts a CLI flag value into a TabType.
func ParseTabType(v string) (TabType, error) {
	for t, name := range tabTypeNames {
		if name == v {
			return t, nil
		}
	}
	return TabThroughCut, errors.New(errors.ErrCodeInvalidSpec,
		"unknown tab type %q (must be through or dogbone)", v)
}

var tabPolicyNames = map[TabPolicy]string{
	TabFixed:        "fixed",
	TabProportional: "proportional",
}

func (p TabPolicy) String() string { return tabPolicyNames[p] }

// ParseTabPolicy converts a CLI flag value into a TabPolicy.
func ParseTabPolicy(v string) (TabPolicy, error) {
	for p, name := range tabPolicyNames {
		if name == v {
			return p, nil
		}
	}
	return TabFixed, errors.New(errors.ErrCodeInvalidSpec,
		"unknown tab policy %q (must be fixed or proportional)", v)
}

var keyPolicyNames = map[KeyPolicy]string{
	KeyAll:          "all",
	KeyWalls:        "walls",
	KeyFloorCeiling: "floor",
	KeyNone:         "none",
}

func (k KeyPolicy) String() string { return keyPolicyNames[k] }

// ParseKeyPolicy converts a CLI flag value into a KeyPolicy.
func ParseKeyPolicy(v string) (KeyPolicy, error) {
	for k, name := range keyPolicyNames {
		if name == v {
			return k, nil
		}
	}
	return KeyAll, errors.New(errors.ErrCodeInvalidSpec,
		"unknown divider keying %q (must be all, walls, floor, or none)", v)
}

var layoutStyleNames = map[LayoutStyle]string{
	LayoutDiagram:    "diagram",
	LayoutThreePiece: "three-piece",
	LayoutCompact:    "compact",
}

func (l LayoutStyle) String() string { return layoutStyleNames[l] }

// ParseLayoutStyle converts a CLI flag value into a LayoutStyle.
func ParseLayoutStyle(v string) (LayoutStyle, error) {
	for l, name := range layoutStyleNames {
		if name == v {
			return l, nil
		}
	}
	return LayoutDiagram, errors.New(errors.ErrCodeInvalidSpec,
		"unknown layout style %q (must be diagram, three-piece, or compact)", v)
}
