// Package track maintains the short-horizon trajectory of the tracked ball.
package track

import "image"

// Trajectory is an append-only buffer of observed ball positions in frame
// order. The full history is retained; rendering only ever consumes the
// tail, so there is no decay or eviction.
type Trajectory struct {
	points []image.Point
}

// NewTrajectory creates an empty Trajectory.
func NewTrajectory() *Trajectory {
	return &Trajectory{}
}

// Record appends a point unconditionally.
func (t *Trajectory) Record(pt image.Point) {
	t.points = append(t.points, pt)
}

// Tail returns the most recent k points, or all points when fewer than k
// have been recorded. The returned slice aliases the buffer and must not
// be mutated.
func (t *Trajectory) Tail(k int) []image.Point {
	if k <= 0 {
		return nil
	}
	if k >= len(t.points) {
		return t.points
	}
	return t.points[len(t.points)-k:]
}

// Len returns the total number of recorded points.
func (t *Trajectory) Len() int {
	return len(t.points)
}
