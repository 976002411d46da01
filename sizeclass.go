package vid2ascii

import "math"

// SizeClass is a named preset determining output character-grid
// dimensions. Fixed presets carry a pre-adjusted (Width, Height) pair;
// the native class derives its grid from the source resolution at plan
// time instead.
type SizeClass struct {
	Name   string
	Width  int
	Height int
	Native bool
}

const (
	// DefaultCharAspect is the height:width ratio of a rendered
	// monospaced glyph cell. Terminal cells are roughly twice as tall
	// as they are wide, so a square source region must map to about
	// twice as many rows per column to avoid vertical stretching.
	DefaultCharAspect = 2.0

	// MaxNativeWidth caps the grid width derived in native mode so a
	// high-resolution source cannot blow up per-frame conversion cost.
	MaxNativeWidth = 240

	// nativeDivisor maps source pixels to native-mode grid columns:
	// one column per 8 source pixels before capping.
	nativeDivisor = 8
)

// DefaultSizeClassKey is the size class used when an unknown key is
// requested.
const DefaultSizeClassKey = "medium"

// Preset grids are already adjusted for the character-cell aspect
// ratio; they are returned verbatim, not re-derived from the source.
var sizeClasses = map[string]SizeClass{
	"ultra-low": {Name: "ultra-low", Width: 40, Height: 22},
	"low":       {Name: "low", Width: 60, Height: 34},
	"medium":    {Name: "medium", Width: 100, Height: 56},
	"high":      {Name: "high", Width: 140, Height: 79},
	"ultra":     {Name: "ultra", Width: 180, Height: 101},
	"native":    {Name: "native", Native: true},
}

// LookupSizeClass returns the size class registered under key. Unknown
// keys fall back to medium, mirroring the palette fallback policy.
func LookupSizeClass(key string) SizeClass {
	if c, ok := sizeClasses[key]; ok {
		return c
	}
	return sizeClasses[DefaultSizeClassKey]
}

// SizeClassKeys returns the registered size class names in no
// particular order.
func SizeClassKeys() []string {
	keys := make([]string, 0, len(sizeClasses))
	for k := range sizeClasses {
		keys = append(keys, k)
	}
	return keys
}

// PlanDimensions computes the target character-grid dimensions for a
// size class. Fixed presets are returned unchanged. For the native
// class the width is one column per 8 source pixels capped at
// MaxNativeWidth, and the height follows from the source aspect ratio
// scaled by charAspect so the rendered grid keeps the source's visual
// proportions. Results are always at least 1x1; degenerate source
// dimensions plan a minimal grid instead of dividing by zero. The
// function is pure: identical inputs always plan identical grids.
func PlanDimensions(class SizeClass, srcWidth, srcHeight int, charAspect float64) (int, int) {
	return planDimensions(class, srcWidth, srcHeight, charAspect, MaxNativeWidth)
}

func planDimensions(class SizeClass, srcWidth, srcHeight int, charAspect float64, maxWidth int) (int, int) {
	if !class.Native {
		return class.Width, class.Height
	}
	if srcWidth <= 0 || srcHeight <= 0 {
		return 1, 1
	}

	width := srcWidth / nativeDivisor
	if width > maxWidth {
		width = maxWidth
	}
	if width < 1 {
		width = 1
	}

	srcAspect := float64(srcWidth) / float64(srcHeight)
	height := int(math.Round(float64(width) / srcAspect * charAspect))
	if height < 1 {
		height = 1
	}
	return width, height
}
