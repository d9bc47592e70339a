// Package testdata generates synthetic video frames for tests, so the repo
// carries no binary assets.
package testdata

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

// BallFrame returns a dark frame with a filled bright circle at center.
// The caller is responsible for closing the returned Mat.
func BallFrame(width, height int, center image.Point, radius int) *gocv.Mat {
	mat := gocv.NewMatWithSize(height, width, gocv.MatTypeCV8UC3)
	gocv.Circle(&mat, center, radius, color.RGBA{230, 230, 230, 0}, -1)
	return &mat
}

// BallArc returns a frame sequence in which the ball travels a shallow arc
// across the upper band of the frame, one frame per step.
func BallArc(width, height, steps int) []*gocv.Mat {
	frames := make([]*gocv.Mat, 0, steps)

	for i := 0; i < steps; i++ {
		x := width * (i + 1) / (steps + 1)
		// Parabolic-ish vertical motion within the top half.
		mid := steps / 2
		dy := (i - mid) * (i - mid) * (height / 4) / (mid*mid + 1)
		y := height/8 + dy

		frames = append(frames, BallFrame(width, height, image.Point{X: x, Y: y}, 12))
	}

	return frames
}

// CloseFrames releases every Mat in the slice.
func CloseFrames(frames []*gocv.Mat) {
	for _, f := range frames {
		f.Close()
	}
}
