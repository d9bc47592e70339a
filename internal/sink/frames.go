package sink

import (
	"fmt"
	"path/filepath"

	"gocv.io/x/gocv"
)

// FrameWriter writes one image per sampled frame into a directory, named by
// zero-padded frame index so a shell glob lists them in order.
type FrameWriter struct {
	dir string
}

// NewFrameWriter creates a FrameWriter targeting dir. The directory must
// already exist.
func NewFrameWriter(dir string) *FrameWriter {
	return &FrameWriter{dir: dir}
}

// FramePath returns the output path for a frame index.
func (w *FrameWriter) FramePath(frameIndex int) string {
	return filepath.Join(w.dir, fmt.Sprintf("frame_%06d.jpg", frameIndex))
}

// Write encodes the frame to disk.
func (w *FrameWriter) Write(frameIndex int, frame *gocv.Mat) error {
	path := w.FramePath(frameIndex)
	if ok := gocv.IMWrite(path, *frame); !ok {
		return fmt.Errorf("write frame image %s", path)
	}
	return nil
}
