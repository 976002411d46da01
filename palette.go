// Package vid2ascii converts decoded video frames into monospaced-character
// art in real time. The core pipeline is pure and call-scoped: a dimension
// planner turns a size class and source dimensions into a character-grid
// target, and a glyph rasterizer center-crops, resamples, and quantizes a
// frame's luminance into an ordered glyph palette. Capture and presentation
// are collaborator concerns (see the capture, supplier, and export packages).
package vid2ascii

// Palette is an ordered sequence of glyphs mapping brightness levels to
// characters. Runes are ordered from darkest to lightest visual weight
// (or the reverse for inverted palettes); index 0 and index len-1 are the
// two extremes. Palettes are immutable after registration.
type Palette struct {
	Name  string
	Runes []rune
}

// Len returns the number of glyphs in the palette.
func (p Palette) Len() int {
	return len(p.Runes)
}

// DefaultPaletteKey is the palette used when an unknown key is requested.
const DefaultPaletteKey = "detailed"

// detailedRamp is the classic 70-level grayscale ramp, dense symbols
// down to space.
const detailedRamp = "$@B%8&WM#*oahkbdpqwmZO0QLCJUYXzcvunxrjft/\\|()1{}[]?-_+~<>i!lI;:,\"^`'. "

var palettes = map[string]Palette{
	"simple":   {Name: "simple", Runes: []rune("@%#*+=-:. ")},
	"detailed": {Name: "detailed", Runes: []rune(detailedRamp)},
	"blocks":   {Name: "blocks", Runes: []rune("█▓▒░ ")},
	"inverse":  {Name: "inverse", Runes: []rune(" .:-=+*#%@")},
	"binary":   {Name: "binary", Runes: []rune("01")},
}

// LookupPalette returns the palette registered under key. Unknown keys
// fall back to the detailed ramp rather than failing: a bad key from a
// UI collaborator must never stall the frame stream.
func LookupPalette(key string) Palette {
	if p, ok := palettes[key]; ok {
		return p
	}
	return palettes[DefaultPaletteKey]
}

// PaletteKeys returns the registered palette names in no particular order.
func PaletteKeys() []string {
	keys := make([]string, 0, len(palettes))
	for k := range palettes {
		keys = append(keys, k)
	}
	return keys
}
