// Package capture acquires frames from a webcam or video file and
// hands them to the pipeline as FrameBuffers. It is the input-boundary
// collaborator: decode happens here, the conversion core only ever
// sees raw RGBA pixels.
package capture

import (
	"fmt"

	"gocv.io/x/gocv"

	"github.com/wbrown/vid2ascii"
)

// Source reads frames from an OpenCV capture device. Not safe for
// concurrent use; run one Source per goroutine.
type Source struct {
	cap *gocv.VideoCapture
	mat gocv.Mat
}

// OpenDevice opens a webcam by device ID (0 is the default camera).
func OpenDevice(id int) (*Source, error) {
	return open(id)
}

// OpenFile opens a video file or stream URL.
func OpenFile(path string) (*Source, error) {
	return open(path)
}

func open(src interface{}) (*Source, error) {
	cap, err := gocv.OpenVideoCapture(src)
	if err != nil {
		return nil, fmt.Errorf("failed to open capture source %v: %w", src, err)
	}
	return &Source{cap: cap, mat: gocv.NewMat()}, nil
}

// Size returns the source frame dimensions as reported by the device.
func (s *Source) Size() (width, height int) {
	return int(s.cap.Get(gocv.VideoCaptureFrameWidth)),
		int(s.cap.Get(gocv.VideoCaptureFrameHeight))
}

// Read grabs and decodes the next frame. It returns (nil, false) when
// the device yields no frame (end of file, unplugged camera); a live
// caller should treat that as a skipped frame, not a fatal error.
// The returned FrameBuffer owns its pixels; it stays valid after the
// next Read.
func (s *Source) Read() (*vid2ascii.FrameBuffer, bool) {
	if ok := s.cap.Read(&s.mat); !ok || s.mat.Empty() {
		return nil, false
	}
	img, err := s.mat.ToImage()
	if err != nil {
		return nil, false
	}
	return vid2ascii.FrameBufferFromImage(img), true
}

// Close releases the capture device and its scratch Mat.
func (s *Source) Close() error {
	if err := s.mat.Close(); err != nil {
		return err
	}
	return s.cap.Close()
}
