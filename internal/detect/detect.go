// Package detect provides ball-candidate detection for video frames.
package detect

import (
	"image"

	"gocv.io/x/gocv"
)

// Detector is the interface for ball-candidate detection implementations.
type Detector interface {
	// FindCandidates analyzes a frame and returns candidate ball centers in
	// pixel coordinates. Returns an empty slice when nothing is found. The
	// result must be deterministic for a deterministic input frame, but no
	// particular ordering is promised.
	FindCandidates(frame *gocv.Mat) ([]image.Point, error)

	// Close releases any resources held by the detector.
	Close() error
}

// Config holds tuning parameters for circle detection.
type Config struct {
	// MinDist is the minimum distance in pixels between detected centers.
	MinDist float64

	// CannyThresh is the upper threshold passed to the internal Canny edge
	// detector.
	CannyThresh float64

	// AccumThresh is the accumulator threshold; smaller values detect more
	// (and more spurious) circles.
	AccumThresh float64

	// MinRadius and MaxRadius bound the circle radii in pixels.
	MinRadius int
	MaxRadius int
}

// DefaultConfig returns a Config tuned for a basketball at broadcast-camera
// distances.
func DefaultConfig() Config {
	return Config{
		MinDist:     40,
		CannyThresh: 100,
		AccumThresh: 30,
		MinRadius:   5,
		MaxRadius:   40,
	}
}
