// pkg/render/terminal_test.go
package render

import (
	"bytes"
	"strings"
	"testing"
)

func TestTerminalRenderer_ModelLifecycle(t *testing.T) {
	r := NewTerminalRenderer(20, 10, 1.0)

	ship := r.CreateShipModel()
	plane := r.CreateAircraftModel()
	if ship == 0 || plane == 0 || ship == plane {
		t.Fatalf("handles not distinct and non-zero: %d, %d", ship, plane)
	}

	r.DestroyModel(plane)
	if _, ok := r.models[plane]; ok {
		t.Error("destroyed model still tracked")
	}
	if _, ok := r.models[ship]; !ok {
		t.Error("live model dropped")
	}
}

func TestTerminalRenderer_PresentDrawsShip(t *testing.T) {
	r := NewTerminalRenderer(21, 11, 1.0)
	var buf bytes.Buffer
	r.SetOutput(&buf)

	ship := r.CreateShipModel()
	r.PlaceModel(ship, 0, 0, 0)

	r.Clear()
	r.Present()

	if !strings.ContainsRune(buf.String(), 'C') {
		t.Error("carrier glyph missing from output")
	}
}

func TestTerminalRenderer_OffscreenModelSkipped(t *testing.T) {
	r := NewTerminalRenderer(10, 10, 1.0)
	var buf bytes.Buffer
	r.SetOutput(&buf)

	plane := r.CreateAircraftModel()
	r.PlaceModel(plane, 1000, 1000, 0)

	r.Clear()
	r.Present()

	for _, glyph := range []string{">", "<", "^", "v"} {
		if strings.Contains(buf.String(), glyph) {
			t.Errorf("offscreen aircraft drawn as %s", glyph)
		}
	}
}

func TestTerminalRenderer_GoalMarkerPersists(t *testing.T) {
	r := NewTerminalRenderer(21, 11, 1.0)
	var buf bytes.Buffer
	r.SetOutput(&buf)

	r.PlaceGoalMarker(2, 2)

	// The marker survives frames, unlike the per-frame cleared buffer.
	for i := 0; i < 3; i++ {
		buf.Reset()
		r.Clear()
		r.Present()
		if !strings.ContainsRune(buf.String(), 'x') {
			t.Fatalf("goal marker missing on frame %d", i)
		}
	}
}

func TestHeadingGlyph_Quadrants(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		want  rune
	}{
		{"east", 0, '>'},
		{"north", 1.57, '^'},
		{"west", 3.1, '<'},
		{"south", -1.57, 'v'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := headingGlyph(tt.angle); got != tt.want {
				t.Errorf("headingGlyph(%v) = %q, expected %q", tt.angle, got, tt.want)
			}
		})
	}
}

func TestNullRenderer_HandlesAreUnique(t *testing.T) {
	r := NewNullRenderer()
	a := r.CreateShipModel()
	b := r.CreateAircraftModel()
	if a == 0 || b == 0 || a == b {
		t.Errorf("expected distinct non-zero handles, got %d and %d", a, b)
	}
	// Fire-and-forget calls must not panic.
	r.PlaceModel(a, 1, 2, 3)
	r.PlaceGoalMarker(4, 5)
	r.DestroyModel(a)
	r.Clear()
	r.Present()
}
