package vid2ascii

import "image"

// FrameBuffer is a read-only view of one decoded video frame: width,
// height, and a flat row-major sequence of 8-bit RGBA quadruples. The
// buffer is owned by the capture collaborator; the pipeline never
// mutates it and never retains it past a single conversion call.
type FrameBuffer struct {
	Width  int
	Height int
	Pix    []byte
}

// NewFrameBuffer wraps raw RGBA bytes as a FrameBuffer. pix must hold
// at least width*height*4 bytes; a short or nil buffer yields a frame
// that rasterizes to an empty grid.
func NewFrameBuffer(width, height int, pix []byte) *FrameBuffer {
	return &FrameBuffer{Width: width, Height: height, Pix: pix}
}

// FrameBufferFromImage converts any image.Image into a FrameBuffer.
// An *image.RGBA with zero origin and canonical stride is wrapped
// without copying; everything else is converted pixel by pixel.
func FrameBufferFromImage(img image.Image) *FrameBuffer {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if rgba, ok := img.(*image.RGBA); ok &&
		bounds.Min == (image.Point{}) && rgba.Stride == w*4 {
		return &FrameBuffer{Width: w, Height: h, Pix: rgba.Pix}
	}

	pix := make([]byte, w*h*4)
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			pix[i] = uint8(r >> 8)
			pix[i+1] = uint8(g >> 8)
			pix[i+2] = uint8(b >> 8)
			pix[i+3] = uint8(a >> 8)
			i += 4
		}
	}
	return &FrameBuffer{Width: w, Height: h, Pix: pix}
}

// valid reports whether the frame has positive dimensions and enough
// pixel data to cover them.
func (f *FrameBuffer) valid() bool {
	return f != nil && f.Width > 0 && f.Height > 0 &&
		len(f.Pix) >= f.Width*f.Height*4
}

// rgba exposes the frame as an *image.RGBA sharing the same pixel
// storage. Callers must treat the result as read-only.
func (f *FrameBuffer) rgba() *image.RGBA {
	return &image.RGBA{
		Pix:    f.Pix,
		Stride: f.Width * 4,
		Rect:   image.Rect(0, 0, f.Width, f.Height),
	}
}
