// Package preset loads named parameter bundles, either built in or from
// TOML files, and overlays them onto a box spec. A preset only states the
// parameters it cares about; everything else keeps its current value.
package preset

import (
	"os"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/boxforge/boxforge/pkg/box"
	"github.com/boxforge/boxforge/pkg/errors"
)

// Preset is the TOML schema. Pointer fields distinguish "not set" from a
// meaningful zero, and enums travel as their flag spellings.
type Preset struct {
	Description string `toml:"description"`

	Length *float64 `toml:"length"`
	Width  *float64 `toml:"width"`
	Height *float64 `toml:"height"`
	Inside *bool    `toml:"inside"`

	Thickness *float64 `toml:"thickness"`
	Kerf      *float64 `toml:"kerf"`
	Clearance *float64 `toml:"clearance"`

	TabWidth  *float64 `toml:"tab"`
	TabPolicy *string  `toml:"tab-policy"`
	Symmetry  *string  `toml:"symmetry"`
	TabType   *string  `toml:"tab-type"`

	DimpleHeight *float64 `toml:"dimple-height"`
	DimpleTip    *float64 `toml:"dimple-tip"`

	Type   *string `toml:"type"`
	DivL   *int    `toml:"div-l"`
	DivW   *int    `toml:"div-w"`
	Keying *string `toml:"keying"`

	Layout  *string  `toml:"layout"`
	Spacing *float64 `toml:"spacing"`
}

// Apply overlays the preset onto a spec and returns the result. String
// enums are parsed here, so a bad spelling fails the same way a bad flag
// would.
func (p Preset) Apply(s box.Spec) (box.Spec, error) {
	setF := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	setF(&s.Length, p.Length)
	setF(&s.Width, p.Width)
	setF(&s.Height, p.Height)
	setF(&s.Thickness, p.Thickness)
	setF(&s.Kerf, p.Kerf)
	setF(&s.Clearance, p.Clearance)
	setF(&s.TabWidth, p.TabWidth)
	setF(&s.DimpleHeight, p.DimpleHeight)
	setF(&s.DimpleTip, p.DimpleTip)
	setF(&s.Spacing, p.Spacing)

	if p.Inside != nil {
		s.Inside = *p.Inside
	}
	if p.DivL != nil {
		s.DivL = *p.DivL
	}
	if p.DivW != nil {
		s.DivW = *p.DivW
	}

	var err error
	if p.TabPolicy != nil {
		if s.TabPolicy, err = box.ParseTabPolicy(*p.TabPolicy); err != nil {
			return s, err
		}
	}
	if p.Symmetry != nil {
		if s.Symmetry, err = box.ParseSymmetry(*p.Symmetry); err != nil {
			return s, err
		}
	}
	if p.TabType != nil {
		if s.TabType, err = box.ParseTabType(*p.TabType); err != nil {
			return s, err
		}
	}
	if p.Type != nil {
		if s.Type, err = box.ParseBoxType(*p.Type); err != nil {
			return s, err
		}
	}
	if p.Keying != nil {
		if s.Keying, err = box.ParseKeyPolicy(*p.Keying); err != nil {
			return s, err
		}
	}
	if p.Layout != nil {
		if s.Layout, err = box.ParseLayoutStyle(*p.Layout); err != nil {
			return s, err
		}
	}
	return s, nil
}

// Load reads one preset from a TOML file. Unknown keys are rejected, they
// are almost always typos.
func Load(path string) (Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Preset{}, errors.Wrap(errors.ErrCodeInvalidPath, err, "reading preset %s", path)
	}
	return parse(path, string(data))
}

func parse(name, data string) (Preset, error) {
	var p Preset
	md, err := toml.Decode(data, &p)
	if err != nil {
		return Preset{}, errors.Wrap(errors.ErrCodeInvalidPreset, err, "parsing preset %s", name)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return Preset{}, errors.New(errors.ErrCodeInvalidPreset,
			"preset %s has unknown key %q", name, undec[0].String())
	}
	return p, nil
}

// Get returns a built-in preset by name.
func Get(name string) (Preset, error) {
	if err := errors.ValidatePresetName(name); err != nil {
		return Preset{}, err
	}
	p, ok := builtin[name]
	if !ok {
		return Preset{}, errors.New(errors.ErrCodeInvalidPreset, "no preset named %q", name)
	}
	return p, nil
}

// Names lists the built-in preset names, sorted.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for n := range builtin {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Describe returns a built-in preset's description without loading it.
func Describe(name string) string {
	return builtin[name].Description
}

func ptrF(v float64) *float64 { return &v }
func ptrB(v bool) *bool       { return &v }
func ptrI(v int) *int         { return &v }
func ptrS(v string) *string   { return &v }

// builtin covers the common jobs people cut again and again.
var builtin = map[string]Preset{
	"stock": {
		Description: "the default 100 mm cube in 3 mm material",
	},
	"electronics": {
		Description: "open-top enclosure for electronics, 3 mm ply, loose fit",
		Length:      ptrF(160), Width: ptrF(100), Height: ptrF(50),
		Inside: ptrB(true),
		Type:   ptrS("open-top"),
		Kerf:   ptrF(0.15), Clearance: ptrF(0.05),
		TabWidth: ptrF(12),
	},
	"parts-tray": {
		Description: "open-top sorting tray with a 3x2 compartment grid",
		Length:      ptrF(240), Width: ptrF(160), Height: ptrF(45),
		Type:        ptrS("open-top"),
		DivL:        ptrI(2), DivW: ptrI(1),
		Keying:   ptrS("walls"),
		TabWidth: ptrF(15),
		Layout:   ptrS("compact"),
	},
	"cnc": {
		Description: "closed box for a 1/8in end mill, dogbone reliefs",
		TabType:     ptrS("dogbone"),
		Kerf:        ptrF(3.175),
		Thickness:   ptrF(6),
		TabWidth:    ptrF(30),
		Length:      ptrF(200), Width: ptrF(150), Height: ptrF(100),
	},
	"press-fit": {
		Description: "friction-fit box with dimpled tabs, no glue needed",
		DimpleHeight: ptrF(0.6), DimpleTip: ptrF(2),
		Kerf:     ptrF(0.1),
		TabWidth: ptrF(18),
	},
}
