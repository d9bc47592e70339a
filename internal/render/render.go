// Package render draws pipeline annotations onto video frames.
package render

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

// TrailPoints is the number of trailing trajectory points drawn per frame.
// The trajectory itself retains its full history; this only bounds what is
// rendered.
const TrailPoints = 40

// ROI is a rectangular region of interest in pixel coordinates.
type ROI struct {
	X1 int
	Y1 int
	X2 int
	Y2 int
}

// Rect converts the ROI to an image.Rectangle.
func (r ROI) Rect() image.Rectangle {
	return image.Rect(r.X1, r.Y1, r.X2, r.Y2)
}

// DefaultROI returns the fallback region for a frame of the given size: the
// upper-middle band where a rim normally sits. Horizontal padding is
// max(20, width/10); vertically the top half.
func DefaultROI(width, height int) ROI {
	pad := width / 10
	if pad < 20 {
		pad = 20
	}
	return ROI{
		X1: pad,
		Y1: 0,
		X2: width - pad,
		Y2: height / 2,
	}
}

// Drawing colors (BGR order is handled by gocv).
var (
	roiColor    = color.RGBA{0, 255, 0, 0}
	markerColor = color.RGBA{0, 0, 255, 0}
	trailColor  = color.RGBA{255, 200, 0, 0}
	labelColor  = color.RGBA{255, 255, 255, 0}
)

// Overlay renders annotations for one frame onto a copy, leaving the input
// untouched for the frame-image sink.
type Overlay struct {
	roi ROI
}

// NewOverlay creates an Overlay that draws the given region of interest.
func NewOverlay(roi ROI) *Overlay {
	return &Overlay{roi: roi}
}

// ROI returns the region the overlay draws.
func (o *Overlay) ROI() ROI {
	return o.roi
}

// Draw clones the frame and draws the ROI box, a marker at the selected
// point (when non-nil), a polyline through the trajectory tail, and a
// frame-index label. The caller is responsible for closing the returned Mat.
func (o *Overlay) Draw(frame *gocv.Mat, frameIndex int, selected *image.Point, trail []image.Point) gocv.Mat {
	out := frame.Clone()

	gocv.Rectangle(&out, o.roi.Rect(), roiColor, 2)

	if selected != nil {
		gocv.Circle(&out, *selected, 6, markerColor, -1)
	}

	for i := 1; i < len(trail); i++ {
		gocv.Line(&out, trail[i-1], trail[i], trailColor, 2)
	}

	label := fmt.Sprintf("frame %d", frameIndex)
	gocv.PutText(&out, label, image.Point{X: 10, Y: 30},
		gocv.FontHersheySimplex, 0.8, labelColor, 2)

	return out
}
