package source

import (
	"fmt"

	"gocv.io/x/gocv"
)

// normalizeFPS replaces a non-positive reported frame rate with the
// fallback.
func normalizeFPS(fps float64) float64 {
	if fps <= 0 {
		return FallbackFPS
	}
	return fps
}

// VideoFile reads frames sequentially from a video file.
type VideoFile struct {
	capture *gocv.VideoCapture
	meta    Metadata
	closed  bool
}

// Open opens the video at path and reads its metadata. It fails immediately
// if the backend cannot open or decode the path.
func Open(path string) (*VideoFile, error) {
	capture, err := gocv.VideoCaptureFile(path)
	if err != nil {
		return nil, fmt.Errorf("open video %s: %w", path, err)
	}

	if !capture.IsOpened() {
		capture.Close()
		return nil, fmt.Errorf("open video %s: backend could not decode", path)
	}

	meta := Metadata{
		Width:      int(capture.Get(gocv.VideoCaptureFrameWidth)),
		Height:     int(capture.Get(gocv.VideoCaptureFrameHeight)),
		FPS:        normalizeFPS(capture.Get(gocv.VideoCaptureFPS)),
		FrameCount: int(capture.Get(gocv.VideoCaptureFrameCount)),
	}

	return &VideoFile{capture: capture, meta: meta}, nil
}

// Metadata returns the metadata read at open time.
func (v *VideoFile) Metadata() Metadata {
	return v.meta
}

// ReadFrame reads the next frame from the file.
// The caller is responsible for closing the returned Mat.
func (v *VideoFile) ReadFrame() (*gocv.Mat, error) {
	if v.closed || v.capture == nil {
		return nil, ErrSourceClosed
	}

	mat := gocv.NewMat()
	if ok := v.capture.Read(&mat); !ok {
		mat.Close()
		return nil, ErrEndOfStream
	}

	if mat.Empty() {
		mat.Close()
		return nil, ErrEndOfStream
	}

	return &mat, nil
}

// Close releases the capture. Safe to call more than once.
func (v *VideoFile) Close() error {
	if v.closed || v.capture == nil {
		v.closed = true
		return nil
	}

	err := v.capture.Close()
	v.capture = nil
	v.closed = true

	return err
}
