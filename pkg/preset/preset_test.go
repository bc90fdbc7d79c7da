package preset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/boxforge/boxforge/pkg/box"
	"github.com/boxforge/boxforge/pkg/errors"
)

func TestApplyOverlaysOnlySetFields(t *testing.T) {
	p := Preset{
		Length:   ptrF(200),
		Type:     ptrS("open-top"),
		TabWidth: ptrF(14),
	}

	s, err := p.Apply(box.DefaultSpec())
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if s.Length != 200 {
		t.Errorf("Length = %g, want 200", s.Length)
	}
	if s.Width != box.DefaultWidth {
		t.Errorf("Width = %g, want untouched default %g", s.Width, box.DefaultWidth)
	}
	if s.Type != box.BoxOpenTop {
		t.Errorf("Type = %v, want open-top", s.Type)
	}
	if s.Kerf != box.DefaultKerf {
		t.Errorf("Kerf = %g, want untouched default %g", s.Kerf, box.DefaultKerf)
	}
}

func TestApplyCanSetZero(t *testing.T) {
	p := Preset{Kerf: ptrF(0)}
	s, err := p.Apply(box.DefaultSpec())
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if s.Kerf != 0 {
		t.Errorf("Kerf = %g, want explicit 0", s.Kerf)
	}
}

func TestApplyRejectsBadEnum(t *testing.T) {
	p := Preset{Symmetry: ptrS("diagonal")}
	_, err := p.Apply(box.DefaultSpec())
	if !errors.Is(err, errors.ErrCodeInvalidSpec) {
		t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidSpec)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tray.toml")
	data := `
description = "shop tray"
length = 300.0
width = 200.0
type = "open-top"
div-l = 2
keying = "walls"
tab = 18.0
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if p.Description != "shop tray" {
		t.Errorf("Description = %q", p.Description)
	}
	if p.Length == nil || *p.Length != 300 {
		t.Errorf("Length = %v, want 300", p.Length)
	}
	if p.Height != nil {
		t.Errorf("Height = %v, want unset", p.Height)
	}

	s, err := p.Apply(box.DefaultSpec())
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if s.DivL != 2 || s.Keying != box.KeyWalls {
		t.Errorf("divider settings = %d/%v, want 2/walls", s.DivL, s.Keying)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "typo.toml")
	if err := os.WriteFile(path, []byte("lenght = 300.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, errors.ErrCodeInvalidPreset) {
		t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidPreset)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidPath)
	}
}

func TestBuiltinPresetsAreValid(t *testing.T) {
	for _, name := range Names() {
		p, err := Get(name)
		if err != nil {
			t.Fatalf("Get(%q) error = %v", name, err)
		}
		s, err := p.Apply(box.DefaultSpec())
		if err != nil {
			t.Fatalf("%s: Apply() error = %v", name, err)
		}
		if _, err := s.Resolve(); err != nil {
			t.Errorf("%s: built-in preset does not resolve: %v", name, err)
		}
		if p.Description == "" {
			t.Errorf("%s: built-in preset has no description", name)
		}
	}
}

func TestGetUnknown(t *testing.T) {
	_, err := Get("no-such-preset")
	if !errors.Is(err, errors.ErrCodeInvalidPreset) {
		t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidPreset)
	}
}
