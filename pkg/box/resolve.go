package box

import (
	"math"

	"github.com/boxforge/boxforge/pkg/errors"
)

// Resolved carries the validated spec together with the nominal outside size
// of the three axes. All panel dimensions derive from X, Y and Z.
type Resolved struct {
	Spec

	// Outside axis sizes after the inside-dimension correction.
	X float64 // along Length, bounded by left/right
	Y float64 // along Width, bounded by front/back
	Z float64 // along Height, bounded by top/bottom
}

// axisFaces maps each axis to the pair of faces bounding it.
var axisFaces = [3][2]Face{
	{FaceLeft, FaceRight},
	{FaceFront, FaceBack},
	{FaceBottom, FaceTop},
}

// Resolve validates the spec and computes the nominal outside axis sizes.
// When Inside is set, each axis grows by one material thickness per present
// bounding face; an omitted face adds nothing on its side.
func (s Spec) Resolve() (Resolved, error) {
	if err := s.validateRaw(); err != nil {
		return Resolved{}, err
	}

	axes := [3]float64{s.Length, s.Width, s.Height}
	if s.Inside {
		for i, pair := range axisFaces {
			for _, f := range pair {
				if s.Type.Has(f) {
					axes[i] += s.Thickness
				}
			}
		}
	}

	r := Resolved{Spec: s, X: axes[0], Y: axes[1], Z: axes[2]}
	if err := r.validateResolved(); err != nil {
		return Resolved{}, err
	}
	return r, nil
}

// validateRaw checks every parameter against its own domain, before any
// derived value exists. Messages name the offending field and value.
func (s Spec) validateRaw() error {
	dims := []struct {
		name  string
		value float64
	}{
		{"length", s.Length},
		{"width", s.Width},
		{"height", s.Height},
	}
	for _, d := range dims {
		if d.value < MinDimension {
			return errors.New(errors.ErrCodeInvalidDimension,
				"%s (%g) must be at least %g", d.name, d.value, MinDimension)
		}
		if d.value > MaxDimension {
			return errors.New(errors.ErrCodeInvalidDimension,
				"%s (%g) must be no more than %g", d.name, d.value, MaxDimension)
		}
	}

	if s.Thickness < MinThickness {
		return errors.New(errors.ErrCodeInvalidMaterial,
			"thickness (%g) must be at least %g", s.Thickness, MinThickness)
	}
	if s.Thickness > MaxThickness {
		return errors.New(errors.ErrCodeInvalidMaterial,
			"thickness (%g) must be no more than %g", s.Thickness, MaxThickness)
	}

	if s.Kerf < 0 {
		return errors.New(errors.ErrCodeInvalidMaterial, "kerf (%g) must not be negative", s.Kerf)
	}
	if s.Kerf >= s.Thickness {
		return errors.New(errors.ErrCodeInvalidMaterial,
			"kerf (%g) must be less than thickness (%g)", s.Kerf, s.Thickness)
	}
	if s.Clearance < 0 {
		return errors.New(errors.ErrCodeInvalidMaterial, "clearance (%g) must not be negative", s.Clearance)
	}
	if s.Clearance > s.Kerf {
		return errors.New(errors.ErrCodeInvalidMaterial,
			"clearance (%g) must not exceed kerf (%g)", s.Clearance, s.Kerf)
	}

	if s.TabWidth < MinTabWidth {
		return errors.New(errors.ErrCodeInvalidTab,
			"tab (%g) must be at least %g", s.TabWidth, MinTabWidth)
	}
	if s.TabWidth < s.Thickness/2 {
		return errors.New(errors.ErrCodeInvalidTab,
			"tab (%g) is below half the material thickness (%g); such tabs shear off", s.TabWidth, s.Thickness)
	}

	if s.DivL < 0 {
		return errors.New(errors.ErrCodeInvalidDivider, "div-l (%d) must not be negative", s.DivL)
	}
	if s.DivW < 0 {
		return errors.New(errors.ErrCodeInvalidDivider, "div-w (%d) must not be negative", s.DivW)
	}

	if s.DimpleHeight < 0 {
		return errors.New(errors.ErrCodeInvalidSpec, "dimple height (%g) must not be negative", s.DimpleHeight)
	}
	if s.DimpleHeight > 0 && s.DimpleTip <= 0 {
		return errors.New(errors.ErrCodeInvalidSpec,
			"dimple tip (%g) must be positive when dimples are enabled", s.DimpleTip)
	}

	if s.Spacing <= 0 {
		return errors.New(errors.ErrCodeInvalidSpec, "spacing (%g) must be positive", s.Spacing)
	}
	if s.Spacing < s.Kerf {
		return errors.New(errors.ErrCodeInvalidSpec,
			"spacing (%g) must be at least the kerf (%g)", s.Spacing, s.Kerf)
	}

	if _, ok := faceSets[s.Type]; !ok {
		return errors.New(errors.ErrCodeInvalidSpec, "unknown box type (%d)", s.Type)
	}

	// The two-panel type is an intentional flat pair; every other type must
	// keep at least one opposing pair to be structurally meaningful.
	if s.Type != BoxTwoPanel && !s.hasOpposingPair() {
		return errors.New(errors.ErrCodeInvalidSpec,
			"box type %s has no opposing faces", s.Type)
	}

	return nil
}

func (s Spec) hasOpposingPair() bool {
	for _, pair := range axisFaces {
		if s.Type.Has(pair[0]) && s.Type.Has(pair[1]) {
			return true
		}
	}
	return false
}

// validateResolved checks constraints that depend on the outside axis sizes.
func (r Resolved) validateResolved() error {
	minAxis := math.Min(r.X, math.Min(r.Y, r.Z))

	if r.Thickness >= minAxis/3 {
		return errors.New(errors.ErrCodeInvalidMaterial,
			"thickness (%g) must be under a third of the smallest panel dimension (%g)", r.Thickness, minAxis)
	}
	if r.Kerf > minAxis/3 {
		return errors.New(errors.ErrCodeInvalidMaterial,
			"kerf (%g) is too large for the smallest dimension (%g)", r.Kerf, minAxis)
	}
	if r.TabWidth > minAxis/2 {
		return errors.New(errors.ErrCodeInvalidTab,
			"tab (%g) must be no more than half the shortest edge (%g)", r.TabWidth, minAxis)
	}
	return nil
}

// PanelSize returns the nominal drawn width and height of the panel for face
// f. Bottom and top panels are drawn length by width, front and back length
// by height, left and right height by width.
func (r Resolved) PanelSize(f Face) (w, h float64) {
	switch f {
	case FaceBottom, FaceTop:
		return r.X, r.Y
	case FaceFront, FaceBack:
		return r.X, r.Z
	default: // FaceLeft, FaceRight
		return r.Z, r.Y
	}
}

// SlotWidth returns the drawn width of every divider slot and keying hole:
// the material thickness widened by the kerf, minus the clearance.
func (r Resolved) SlotWidth() float64 {
	return r.Thickness + r.Kerf - r.Clearance
}
