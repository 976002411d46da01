package vid2ascii

// Converter bundles the immutable per-stream configuration: which
// palette, which size class, the character-cell aspect ratio, and the
// native-mode width cap. A Converter holds no per-frame state; Convert
// runs to completion and returns, so a single Converter can serve a
// whole stream as long as calls do not overlap. Frame-rate
// backpressure (skipping frames while a conversion is in flight) is
// the caller's scheduling concern, typically handled by the supplier
// package.
type Converter struct {
	palette        Palette
	sizeClass      SizeClass
	charAspect     float64
	maxNativeWidth int
}

// ConverterOption is a functional option for configuring a Converter.
type ConverterOption func(*Converter)

// NewConverter creates a Converter with the given options.
// Defaults: detailed palette, medium size class, DefaultCharAspect,
// MaxNativeWidth.
func NewConverter(opts ...ConverterOption) *Converter {
	c := &Converter{
		palette:        LookupPalette(DefaultPaletteKey),
		sizeClass:      LookupSizeClass(DefaultSizeClassKey),
		charAspect:     DefaultCharAspect,
		maxNativeWidth: MaxNativeWidth,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithPalette selects the glyph palette by key. Unknown keys fall back
// to the detailed ramp.
func WithPalette(key string) ConverterOption {
	return func(c *Converter) {
		c.palette = LookupPalette(key)
	}
}

// WithSizeClass selects the output size class by key. Unknown keys
// fall back to medium.
func WithSizeClass(key string) ConverterOption {
	return func(c *Converter) {
		c.sizeClass = LookupSizeClass(key)
	}
}

// WithCharAspect sets the character-cell height:width ratio used by
// native-mode planning. Non-positive values keep the default.
func WithCharAspect(aspect float64) ConverterOption {
	return func(c *Converter) {
		if aspect > 0 {
			c.charAspect = aspect
		}
	}
}

// WithMaxNativeWidth caps the grid width derived in native mode.
// Non-positive values keep the default.
func WithMaxNativeWidth(width int) ConverterOption {
	return func(c *Converter) {
		if width > 0 {
			c.maxNativeWidth = width
		}
	}
}

// Palette returns the active palette.
func (c *Converter) Palette() Palette {
	return c.palette
}

// SizeClass returns the active size class.
func (c *Converter) SizeClass() SizeClass {
	return c.sizeClass
}

// PlanFor returns the character-grid dimensions the converter would
// use for a source of the given pixel dimensions.
func (c *Converter) PlanFor(srcWidth, srcHeight int) (int, int) {
	return planDimensions(c.sizeClass, srcWidth, srcHeight,
		c.charAspect, c.maxNativeWidth)
}

// Convert runs the full pipeline on one frame: plan the grid for the
// frame's dimensions, then rasterize. The frame is read, never
// retained; the returned grid is owned by the caller.
func (c *Converter) Convert(frame *FrameBuffer) GlyphGrid {
	if !frame.valid() {
		return emptyGrid()
	}
	width, height := c.PlanFor(frame.Width, frame.Height)
	return Rasterize(frame, width, height, c.palette)
}
