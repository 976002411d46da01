// Package export renders a glyph grid into a raster image, the way a
// presentation collaborator would snapshot the live ASCII stream to a
// file. Text output needs no help from this package; GlyphGrid.String
// already is the text form.
package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/wbrown/vid2ascii"
	"github.com/wbrown/vid2ascii/imageutil"
)

// Options configures glyph-grid rendering.
type Options struct {
	// FontPath is an optional TrueType font file. When empty the
	// embedded basicfont face (7x13) is used. Note the basicfont face
	// covers ASCII only; the blocks palette needs a TTF with the
	// shade/block glyphs.
	FontPath string

	// FontSize is the point size for TTF rendering. Ignored for the
	// basicfont face. Defaults to 13.
	FontSize float64

	// Foreground and Background are the glyph and page colors.
	// Defaults: black glyphs on a white page, matching a
	// darkest-to-lightest palette.
	Foreground color.RGBA
	Background color.RGBA
}

func (o *Options) fill() {
	if o.FontSize <= 0 {
		o.FontSize = 13
	}
	zero := color.RGBA{}
	if o.Foreground == zero && o.Background == zero {
		o.Foreground = color.RGBA{A: 255}
		o.Background = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
}

// RenderImage draws the grid into a new RGBA image, one fixed-size
// cell per glyph. An empty grid is an error here, unlike in the
// conversion core: an export is a deliberate act, and silently writing
// a 0x0 image would hide the mistake.
func RenderImage(grid vid2ascii.GlyphGrid, opts Options) (*image.RGBA, error) {
	if grid.Empty() {
		return nil, fmt.Errorf("cannot render an empty glyph grid")
	}
	opts.fill()

	face, closeFace, err := loadFace(opts)
	if err != nil {
		return nil, err
	}
	defer closeFace()

	metrics := face.Metrics()
	cellHeight := metrics.Height.Ceil()
	ascent := metrics.Ascent.Ceil()
	advance, ok := face.GlyphAdvance('M')
	if !ok {
		return nil, fmt.Errorf("font has no 'M' glyph to size cells from")
	}
	cellWidth := advance.Ceil()

	img := image.NewRGBA(image.Rect(0, 0,
		grid.Width*cellWidth, grid.Height*cellHeight))
	draw.Draw(img, img.Bounds(),
		image.NewUniform(opts.Background), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(opts.Foreground),
		Face: face,
	}
	for y, row := range grid.Rows {
		d.Dot = fixed.P(0, y*cellHeight+ascent)
		d.DrawString(string(row))
	}

	return img, nil
}

// SavePNG renders the grid and writes it to path as a PNG.
func SavePNG(grid vid2ascii.GlyphGrid, path string, opts Options) error {
	img, err := RenderImage(grid, opts)
	if err != nil {
		return err
	}
	return imageutil.SaveImage(img, path)
}

// loadFace returns the font face for the options plus a cleanup func.
func loadFace(opts Options) (font.Face, func(), error) {
	if opts.FontPath == "" {
		return basicfont.Face7x13, func() {}, nil
	}

	fontBytes, err := os.ReadFile(opts.FontPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read font: %w", err)
	}
	ttf, err := freetype.ParseFont(fontBytes)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    opts.FontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	return face, func() { face.Close() }, nil
}
