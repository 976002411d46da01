package imageutil

// Luminance computes the perceptual brightness of an RGB triple using
// the standard BT.601 weights: Y = 0.299*R + 0.587*G + 0.114*B.
// The result is in the range [0, 255].
func Luminance(r, g, b uint8) float64 {
	return 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
}

// Luminance8 is Luminance rounded to an 8-bit value, using integer
// math for speed.
func Luminance8(r, g, b uint8) uint8 {
	lum := (299*int(r) + 587*int(g) + 114*int(b) + 500) / 1000
	if lum > 255 {
		lum = 255
	}
	return uint8(lum)
}
