// Package box defines the immutable box specification and the dimension
// resolver that turns raw user measurements into the nominal outside size of
// every panel.
//
// A Spec is a plain value: it is constructed fresh per invocation (by the CLI,
// a preset file, or the preview server), validated as a whole, and never
// mutated afterwards. All lengths are millimeters.
package box

// Default parameter values for a new Spec.
const (
	DefaultLength    = 100.0
	DefaultWidth     = 100.0
	DefaultHeight    = 100.0
	DefaultThickness = 3.0
	DefaultTabWidth  = 25.0
	DefaultKerf      = 0.5
	DefaultSpacing   = 25.0
)

// Validation limits. The dimension floor keeps boxes practical for
// finger-jointed assembly; the ceilings guard against nonsense input.
const (
	MinDimension = 40.0
	MaxDimension = 10000.0
	MinThickness = 0.1
	MaxThickness = 100.0
	MinTabWidth  = 2.0
)

// Spec describes one box to generate. The zero value is not usable; start
// from DefaultSpec and override.
type Spec struct {
	// Outside (or inside, when Inside is set) measurements along the three axes.
	Length float64
	Width  float64
	Height float64

	// Inside reinterprets Length/Width/Height as interior measurements;
	// the resolver grows each axis by the material bounding it.
	Inside bool

	Thickness float64
	Kerf      float64
	// Clearance is subtracted from the kerf compensation to deliberately
	// loosen every joint. Zero keeps the friction fit.
	Clearance float64

	TabWidth  float64
	TabPolicy TabPolicy
	Symmetry  Symmetry
	TabType   TabType

	// Press-fit dimples. A zero height disables them.
	DimpleHeight float64
	DimpleTip    float64

	Type BoxType

	// Interior dividers: DivL across the length axis, DivW across the width axis.
	DivL   int
	DivW   int
	Keying KeyPolicy

	Layout  LayoutStyle
	Spacing float64
}

// DefaultSpec returns a Spec with the stock defaults: a fully enclosed
// 100 mm cube of 3 mm material with 25 mm fixed tabs.
func DefaultSpec() Spec {
	return Spec{
		Length:    DefaultLength,
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		Thickness: DefaultThickness,
		Kerf:      DefaultKerf,
		TabWidth:  DefaultTabWidth,
		TabPolicy: TabFixed,
		Symmetry:  SymXY,
		TabType:   TabThroughCut,
		Type:      BoxFull,
		Keying:    KeyAll,
		Layout:    LayoutDiagram,
		Spacing:   DefaultSpacing,
	}
}
