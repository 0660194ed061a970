package chartviz

import (
	"testing"
)

func TestSafeColor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: "black"},
		{in: "steelblue", want: "steelblue"},
		{in: "#1f77b4", want: "#1f77b4"},
		{in: "#abc", want: "#abc"},
		{in: "#xyz123", want: "black"},
		{in: "#12345", want: "black"},
		{in: "rgb(0,0,0)", want: "black"},
	}
	for _, c := range tests {
		if got := SafeColor(c.in); got != c.want {
			t.Errorf("SafeColor(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestLerpColor(t *testing.T) {
	t.Parallel()
	if got := LerpColor("#000000", "#ffffff", 0); got != "#000000" {
		t.Errorf("t=0: got %s", got)
	}
	if got := LerpColor("#000000", "#ffffff", 1); got != "#ffffff" {
		t.Errorf("t=1: got %s", got)
	}
	if got := LerpColor("#000000", "#ffffff", 0.5); got != "#808080" {
		t.Errorf("t=0.5: got %s, want #808080", got)
	}
	// clamped outside the unit interval
	if got := LerpColor("#102030", "#ffffff", -3); got != "#102030" {
		t.Errorf("t clamped low: got %s", got)
	}
	// unparseable endpoints degrade to black, never fail
	if got := LerpColor("nope", "also nope", 0.5); got != "#000000" {
		t.Errorf("bad endpoints: got %s", got)
	}
}

func TestPaletteAt(t *testing.T) {
	t.Parallel()
	if got := Category10.At(0); got != "#1f77b4" {
		t.Errorf("first category color: got %s", got)
	}
	if Category10.At(3) != Category10.At(13) {
		t.Error("palette must wrap around")
	}
	var empty Palette
	if got := empty.At(2); got != DefaultColor {
		t.Errorf("empty palette falls back to %s, got %s", DefaultColor, got)
	}
}
