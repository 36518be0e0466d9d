package renderer

// The usual bright terminal escape codes.
const (
	ansiBlue   = "\033[94m"
	ansiGreen  = "\033[92m"
	ansiYellow = "\033[93m"
	ansiRed    = "\033[91m"
	ansiReset  = "\033[0m"
)

// Palette hands out ANSI color codes. Disabled, every accessor returns the
// empty string so call sites can wrap values unconditionally and still
// produce plain output.
type Palette struct {
	enabled bool
}

// NewPalette returns a palette, colored or plain.
func NewPalette(enabled bool) Palette { return Palette{enabled: enabled} }

// Enabled reports whether the palette emits real codes.
func (p Palette) Enabled() bool { return p.enabled }

func (p Palette) code(c string) string {
	if !p.enabled {
		return ""
	}
	return c
}

// Info is the informational color, blue.
func (p Palette) Info() string { return p.code(ansiBlue) }

// Good is the positive color, green.
func (p Palette) Good() string { return p.code(ansiGreen) }

// Warn is the warning color, yellow.
func (p Palette) Warn() string { return p.code(ansiYellow) }

// Bad is the negative color, red.
func (p Palette) Bad() string { return p.code(ansiRed) }

// Reset restores the default rendition.
func (p Palette) Reset() string { return p.code(ansiReset) }
