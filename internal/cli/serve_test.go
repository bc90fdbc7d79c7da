package cli

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func serveRequest(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	testCLI().routes().ServeHTTP(rec, req)
	return rec
}

func TestServeHealthz(t *testing.T) {
	rec := serveRequest(t, "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestServeBoxSVG(t *testing.T) {
	rec := serveRequest(t, "/box.svg?length=120&width=100&height=60&kerf=0.2")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q, want image/svg+xml", ct)
	}
	body := rec.Body.String()
	for _, want := range []string{"<svg", `id="bottom"`, "</svg>"} {
		if !strings.Contains(body, want) {
			t.Errorf("response missing %q", want)
		}
	}
}

func TestServeBoxJSONWithPreset(t *testing.T) {
	rec := serveRequest(t, "/box.json?preset=parts-tray&length=300")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	var out struct {
		Spec struct {
			Length float64
			DivL   int
		} `json:"spec"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if out.Spec.Length != 300 {
		t.Errorf("length = %g, want the query override 300", out.Spec.Length)
	}
	if out.Spec.DivL == 0 {
		t.Error("preset dividers should survive the length override")
	}
}

func TestServeBoxBadParameter(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{name: "unparsable float", target: "/box.svg?length=tall"},
		{name: "invalid dimension", target: "/box.svg?length=5"},
		{name: "unknown preset", target: "/box.svg?preset=nope"},
		{name: "unknown enum", target: "/box.svg?symmetry=spiral"},
		{name: "edge too short for tabs", target: "/box.svg?height=40&tab=16"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serveRequest(t, tt.target)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400; body: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestServePresets(t *testing.T) {
	rec := serveRequest(t, "/presets")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var out map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if _, ok := out["parts-tray"]; !ok {
		t.Error("preset listing should include parts-tray")
	}
}
