package source

import (
	"gocv.io/x/gocv"
)

// MockSource plays back a fixed frame sequence for testing.
type MockSource struct {
	frames []*gocv.Mat
	meta   Metadata
	index  int
	closed bool
}

// NewMockSource creates a MockSource over the given frames.
func NewMockSource(frames []*gocv.Mat, meta Metadata) *MockSource {
	return &MockSource{
		frames: frames,
		meta:   meta,
	}
}

func (m *MockSource) Metadata() Metadata {
	return m.meta
}

// ReadFrame returns a clone of the next frame so callers can close it
// without touching the originals.
func (m *MockSource) ReadFrame() (*gocv.Mat, error) {
	if m.closed {
		return nil, ErrSourceClosed
	}

	if m.index >= len(m.frames) {
		return nil, ErrEndOfStream
	}

	frame := m.frames[m.index].Clone()
	m.index++

	return &frame, nil
}

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Reads returns how many frames have been consumed so far.
func (m *MockSource) Reads() int {
	return m.index
}

// Reset restarts playback from the beginning.
func (m *MockSource) Reset() {
	m.index = 0
	m.closed = false
}
