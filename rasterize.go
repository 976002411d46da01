package vid2ascii

import (
	"image"
	"math"

	"github.com/wbrown/vid2ascii/imageutil"
)

// cropRect computes the centered crop rectangle whose aspect ratio
// matches the target grid's. The wider dimension is trimmed: a source
// relatively wider than the grid loses columns left and right, a
// source relatively taller loses rows top and bottom. Matching aspect
// ratios before resampling means the resample itself introduces no
// distortion.
func cropRect(frameWidth, frameHeight, targetWidth, targetHeight int) image.Rectangle {
	srcAspect := float64(frameWidth) / float64(frameHeight)
	targetAspect := float64(targetWidth) / float64(targetHeight)

	var cropWidth, cropHeight float64
	if srcAspect > targetAspect {
		cropHeight = float64(frameHeight)
		cropWidth = cropHeight * targetAspect
	} else {
		cropWidth = float64(frameWidth)
		cropHeight = cropWidth / targetAspect
	}

	x := int(math.Round((float64(frameWidth) - cropWidth) / 2))
	y := int(math.Round((float64(frameHeight) - cropHeight) / 2))
	return image.Rect(x, y,
		x+int(math.Round(cropWidth)), y+int(math.Round(cropHeight)))
}

// Rasterize converts one frame into a targetWidth x targetHeight glyph
// grid: aspect-preserving center crop, nearest-neighbor resample to
// the grid (sharp edges matter more than smoothness at these sizes),
// BT.601 luminance per cell, then quantization into the palette.
//
// Degenerate inputs short-circuit to an empty grid rather than
// erroring: a single bad frame must never halt a live stream. The only
// per-call allocation beyond the output rows is the one
// targetWidth x targetHeight resample scratch image.
func Rasterize(frame *FrameBuffer, targetWidth, targetHeight int, pal Palette) GlyphGrid {
	if !frame.valid() || targetWidth <= 0 || targetHeight <= 0 || pal.Len() == 0 {
		return emptyGrid()
	}

	crop := cropRect(frame.Width, frame.Height, targetWidth, targetHeight)
	if crop.Dx() < 1 || crop.Dy() < 1 {
		return emptyGrid()
	}

	src := &imageutil.RGBAImage{
		RGBA: frame.rgba().SubImage(crop).(*image.RGBA),
	}
	cells := imageutil.Resize(src, targetWidth, targetHeight,
		imageutil.InterpolationNearest)

	maxIdx := pal.Len() - 1
	rows := make([][]rune, targetHeight)
	for y := 0; y < targetHeight; y++ {
		row := make([]rune, targetWidth)
		for x := 0; x < targetWidth; x++ {
			c := cells.RGBAAt(x, y)
			lum := imageutil.Luminance(c.R, c.G, c.B)
			idx := int(lum / 255 * float64(maxIdx))
			if idx < 0 {
				idx = 0
			} else if idx > maxIdx {
				idx = maxIdx
			}
			row[x] = pal.Runes[idx]
		}
		rows[y] = row
	}

	return GlyphGrid{Width: targetWidth, Height: targetHeight, Rows: rows}
}
