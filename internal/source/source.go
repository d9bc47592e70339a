// Package source provides sequential frame access to video files using GoCV (OpenCV).
package source

import (
	"errors"

	"gocv.io/x/gocv"
)

// FallbackFPS is used when the container reports a non-positive frame rate.
// Missing fps metadata is common on phone recordings and screen captures,
// so this is a policy default rather than an error.
const FallbackFPS = 30.0

// ErrEndOfStream signals that the source has no more frames. It is a normal
// terminal condition, not a failure.
var ErrEndOfStream = errors.New("end of stream")

// ErrSourceClosed is returned when reading from a source that has been closed.
var ErrSourceClosed = errors.New("source is closed")

// Metadata describes a video source. Immutable once read.
type Metadata struct {
	Width  int
	Height int
	FPS    float64
	// FrameCount is the container's declared frame count. Values <= 0 mean
	// the container did not declare one.
	FrameCount int
}

// Source is the interface for sequential frame producers.
type Source interface {
	// Metadata returns the source's dimensions, frame rate, and declared
	// frame count.
	Metadata() Metadata

	// ReadFrame returns the next frame. The caller is responsible for
	// closing the returned Mat. Returns ErrEndOfStream when the source
	// runs out of frames.
	ReadFrame() (*gocv.Mat, error)

	// Close releases the underlying capture resources.
	Close() error
}
