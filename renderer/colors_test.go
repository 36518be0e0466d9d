package renderer

import "testing"

func TestPalette(t *testing.T) {
	p := NewPalette(true)
	testCases := []struct {
		name string
		got  string
		want string
	}{
		{"Info", p.Info(), "\033[94m"},
		{"Good", p.Good(), "\033[92m"},
		{"Warn", p.Warn(), "\033[93m"},
		{"Bad", p.Bad(), "\033[91m"},
		{"Reset", p.Reset(), "\033[0m"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Errorf("incorrect code. Got: %q, want: %q", tc.got, tc.want)
			}
		})
	}
	if !p.Enabled() {
		t.Error("Enabled() returned false for a colored palette")
	}
}

// A disabled palette returns empty strings everywhere, so call sites can
// wrap values unconditionally.
func TestPaletteDisabled(t *testing.T) {
	p := NewPalette(false)
	for name, code := range map[string]string{
		"Info":  p.Info(),
		"Good":  p.Good(),
		"Warn":  p.Warn(),
		"Bad":   p.Bad(),
		"Reset": p.Reset(),
	} {
		if code != "" {
			t.Errorf("%s() on a disabled palette returned %q, want empty", name, code)
		}
	}
	if p.Enabled() {
		t.Error("Enabled() returned true for a disabled palette")
	}
}
