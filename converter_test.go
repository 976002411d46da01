package vid2ascii

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wbrown/vid2ascii/imageutil"
)

func TestConverterDefaults(t *testing.T) {
	conv := NewConverter()
	assert.Equal(t, DefaultPaletteKey, conv.Palette().Name)
	assert.Equal(t, DefaultSizeClassKey, conv.SizeClass().Name)

	frame := FrameBufferFromImage(imageutil.CreateGradientImage(640, 360).RGBA)
	grid := conv.Convert(frame)
	assert.Equal(t, 100, grid.Width)
	assert.Equal(t, 56, grid.Height)
}

func TestConverterOptions(t *testing.T) {
	conv := NewConverter(
		WithPalette("simple"),
		WithSizeClass("ultra-low"),
	)
	assert.Equal(t, "simple", conv.Palette().Name)

	frame := solidFrame(64, 64, imageutil.RGB{})
	grid := conv.Convert(frame)
	require.Equal(t, 40, grid.Width)
	require.Equal(t, 22, grid.Height)
	for _, row := range grid.Rows {
		for _, r := range row {
			assert.Equal(t, '@', r)
		}
	}
}

func TestConverterUnknownKeysFallBack(t *testing.T) {
	conv := NewConverter(
		WithPalette("no-such-palette"),
		WithSizeClass("no-such-size"),
	)
	assert.Equal(t, DefaultPaletteKey, conv.Palette().Name)
	assert.Equal(t, DefaultSizeClassKey, conv.SizeClass().Name)
}

func TestConverterNativePlanning(t *testing.T) {
	conv := NewConverter(WithSizeClass("native"), WithCharAspect(2.0))

	w, h := conv.PlanFor(1920, 1080)
	assert.Equal(t, 240, w)
	assert.Equal(t, 270, h)

	frame := FrameBufferFromImage(imageutil.CreateVerticalGradientImage(1920, 1080).RGBA)
	grid := conv.Convert(frame)
	assert.Equal(t, 240, grid.Width)
	assert.Equal(t, 270, grid.Height)
}

func TestConverterMaxNativeWidth(t *testing.T) {
	conv := NewConverter(
		WithSizeClass("native"),
		WithMaxNativeWidth(50),
	)
	w, h := conv.PlanFor(1920, 1080)
	assert.Equal(t, 50, w)
	// 50 / (16/9) * 2 = 56.25, rounded down to 56.
	assert.Equal(t, 56, h)
}

func TestConverterInvalidOptionValuesKeepDefaults(t *testing.T) {
	conv := NewConverter(
		WithCharAspect(0),
		WithCharAspect(-1),
		WithMaxNativeWidth(0),
	)
	w, h := conv.PlanFor(1920, 1080)
	assert.Equal(t, 240, w)
	assert.Equal(t, 270, h)
}

func TestConverterDegenerateFrame(t *testing.T) {
	conv := NewConverter()
	assert.True(t, conv.Convert(nil).Empty())
	assert.True(t, conv.Convert(NewFrameBuffer(0, 0, nil)).Empty())
}

func TestConverterDoesNotRetainFrame(t *testing.T) {
	// Mutating the frame after Convert must not change the returned
	// grid; the grid owns its rows outright.
	conv := NewConverter(WithPalette("simple"), WithSizeClass("ultra-low"))
	frame := solidFrame(32, 32, imageutil.RGB{})

	grid := conv.Convert(frame)
	for i := range frame.Pix {
		frame.Pix[i] = 255
	}

	for _, row := range grid.Rows {
		for _, r := range row {
			assert.Equal(t, '@', r)
		}
	}
}
