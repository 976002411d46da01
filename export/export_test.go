package export

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wbrown/vid2ascii"
	"github.com/wbrown/vid2ascii/imageutil"
)

func gridFrom(c imageutil.RGB, width, height int) vid2ascii.GlyphGrid {
	frame := vid2ascii.FrameBufferFromImage(
		imageutil.CreateSolidImage(32, 32, c).RGBA)
	return vid2ascii.Rasterize(frame, width, height, vid2ascii.LookupPalette("simple"))
}

func TestRenderImageDimensions(t *testing.T) {
	grid := gridFrom(imageutil.RGB{}, 10, 4)

	img, err := RenderImage(grid, Options{})
	require.NoError(t, err)

	// basicfont cells are 7x13.
	assert.Equal(t, 10*7, img.Bounds().Dx())
	assert.Equal(t, 4*13, img.Bounds().Dy())
}

func TestRenderImageEmptyGrid(t *testing.T) {
	_, err := RenderImage(vid2ascii.GlyphGrid{}, Options{})
	assert.Error(t, err)
}

func TestRenderImageColors(t *testing.T) {
	// A white frame rasterizes to all spaces; the output image must be
	// pure background.
	grid := gridFrom(imageutil.RGB{R: 255, G: 255, B: 255}, 6, 3)
	bg := color.RGBA{R: 20, G: 40, B: 60, A: 255}

	img, err := RenderImage(grid, Options{
		Foreground: color.RGBA{R: 255, A: 255},
		Background: bg,
	})
	require.NoError(t, err)

	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			require.Equal(t, bg, img.RGBAAt(x, y),
				"pixel (%d,%d) should be background", x, y)
		}
	}
}

func TestRenderImageDrawsGlyphs(t *testing.T) {
	// A black frame rasterizes to '@' everywhere; some foreground
	// pixels must appear.
	grid := gridFrom(imageutil.RGB{}, 6, 3)

	img, err := RenderImage(grid, Options{})
	require.NoError(t, err)

	fgPixels := 0
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if img.RGBAAt(x, y).R < 128 {
				fgPixels++
			}
		}
	}
	assert.Greater(t, fgPixels, 0, "no glyph pixels drawn")
}

func TestSavePNG(t *testing.T) {
	grid := gridFrom(imageutil.RGB{}, 8, 4)
	path := filepath.Join(t.TempDir(), "out.png")

	require.NoError(t, SavePNG(grid, path, Options{}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	loaded, err := imageutil.LoadImage(path)
	require.NoError(t, err)
	assert.Equal(t, 8*7, loaded.Width())
	assert.Equal(t, 4*13, loaded.Height())
}

func TestRenderImageMissingFont(t *testing.T) {
	grid := gridFrom(imageutil.RGB{}, 4, 2)
	_, err := RenderImage(grid, Options{FontPath: "no-such-font.ttf"})
	assert.Error(t, err)
}
