package sink

import (
	"fmt"

	"gocv.io/x/gocv"
)

// MinPlaybackFPS floors the overlay video's frame rate so heavy striding
// does not produce a file that plays back as a slideshow.
const MinPlaybackFPS = 5.0

// OverlayFPS derives the overlay video frame rate from the source rate and
// the effective stride.
func OverlayFPS(sourceFPS float64, stride int) float64 {
	fps := sourceFPS / float64(stride)
	if fps < MinPlaybackFPS {
		fps = MinPlaybackFPS
	}
	return fps
}

// OverlayWriter writes annotated frames to a video file. The underlying
// encoder is constructed lazily on the first write, so a run that samples
// zero frames creates no file, and Close releases it exactly once.
type OverlayWriter struct {
	path   string
	fps    float64
	width  int
	height int

	writer *gocv.VideoWriter
	closed bool
}

// NewOverlayWriter creates an OverlayWriter. Nothing touches the filesystem
// until the first Write.
func NewOverlayWriter(path string, fps float64, width, height int) *OverlayWriter {
	return &OverlayWriter{
		path:   path,
		fps:    fps,
		width:  width,
		height: height,
	}
}

// Write appends one annotated frame, opening the encoder on first use.
func (w *OverlayWriter) Write(frame *gocv.Mat) error {
	if w.closed {
		return fmt.Errorf("overlay writer %s already closed", w.path)
	}

	if w.writer == nil {
		vw, err := gocv.VideoWriterFile(w.path, "mp4v", w.fps, w.width, w.height, true)
		if err != nil {
			return fmt.Errorf("open overlay video %s: %w", w.path, err)
		}
		w.writer = vw
	}

	if err := w.writer.Write(*frame); err != nil {
		return fmt.Errorf("write overlay frame: %w", err)
	}

	return nil
}

// Opened reports whether the encoder has been constructed.
func (w *OverlayWriter) Opened() bool {
	return w.writer != nil
}

// Close releases the encoder if one was constructed. Safe to call more than
// once.
func (w *OverlayWriter) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	if w.writer == nil {
		return nil
	}

	err := w.writer.Close()
	w.writer = nil

	return err
}
