package detect

import (
	"image"

	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control the detection results.
type MockDetector struct {
	points [][]image.Point
	err    error
	calls  int
	closed bool
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetPoints sets a fixed candidate list returned by every call.
func (m *MockDetector) SetPoints(points []image.Point) {
	m.points = [][]image.Point{points}
}

// SetSequence sets per-call candidate lists; calls beyond the sequence
// return the last entry.
func (m *MockDetector) SetSequence(seq [][]image.Point) {
	m.points = seq
}

// SetError sets the error that will be returned by FindCandidates.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// FindCandidates returns the pre-configured candidates or error.
func (m *MockDetector) FindCandidates(frame *gocv.Mat) ([]image.Point, error) {
	defer func() { m.calls++ }()

	if m.err != nil {
		return nil, m.err
	}

	if len(m.points) == 0 {
		return nil, nil
	}

	i := m.calls
	if i >= len(m.points) {
		i = len(m.points) - 1
	}
	return m.points[i], nil
}

// Calls returns how many times FindCandidates has been invoked.
func (m *MockDetector) Calls() int {
	return m.calls
}

// Close records that the detector was closed.
func (m *MockDetector) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close has been called.
func (m *MockDetector) Closed() bool {
	return m.closed
}
