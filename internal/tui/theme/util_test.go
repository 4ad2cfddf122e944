package theme

import "testing"

func TestParseHexColor(t *testing.T) {
	r, g, b := ParseHexColor("#cba6f7")
	if r != 0xcb || g != 0xa6 || b != 0xf7 {
		t.Errorf("ParseHexColor() = %d,%d,%d", r, g, b)
	}

	r, g, b = ParseHexColor("bad")
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("ParseHexColor(bad) = %d,%d,%d, want zeros", r, g, b)
	}
}

func TestInterpolateColor(t *testing.T) {
	tests := []struct {
		pos  float64
		want string
	}{
		{0, "#000000"},
		{1, "#ffffff"},
		{0.5, "#7f7f7f"},
	}
	for _, tt := range tests {
		if got := InterpolateColor("#000000", "#ffffff", tt.pos); got != tt.want {
			t.Errorf("InterpolateColor(%v) = %s, want %s", tt.pos, got, tt.want)
		}
	}
}

func TestCurrent(t *testing.T) {
	orig := Current()
	defer SetCurrent(orig)

	custom := NewCatppuccinMocha()
	custom.Name = "custom"
	SetCurrent(custom)

	if Current().Name != "custom" {
		t.Errorf("Current().Name = %s, want custom", Current().Name)
	}
	if Current().S() == nil {
		t.Error("S() returned nil styles")
	}
}
