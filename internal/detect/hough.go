package detect

import (
	"errors"
	"image"

	"gocv.io/x/gocv"
)

// HoughDetector is a placeholder Detector using a fixed-parameter Hough
// circle transform. It stands in for a model-backed detector and makes no
// claim to accuracy; it exists so the pipeline has a working end-to-end
// candidate producer.
type HoughDetector struct {
	config Config
}

// NewHoughDetector creates a HoughDetector with the given configuration.
func NewHoughDetector(config Config) *HoughDetector {
	return &HoughDetector{config: config}
}

// FindCandidates runs the circle transform over a blurred grayscale copy of
// the frame and returns the detected centers.
func (d *HoughDetector) FindCandidates(frame *gocv.Mat) ([]image.Point, error) {
	if frame == nil || frame.Empty() {
		return nil, errors.New("empty frame")
	}

	gray := gocv.NewMat()
	defer gray.Close()

	if frame.Channels() > 1 {
		gocv.CvtColor(*frame, &gray, gocv.ColorBGRToGray)
	} else {
		frame.CopyTo(&gray)
	}

	// Median blur suppresses texture that the transform mistakes for arcs.
	blurred := gocv.NewMat()
	defer blurred.Close()
	gocv.MedianBlur(gray, &blurred, 5)

	circles := gocv.NewMat()
	defer circles.Close()

	gocv.HoughCirclesWithParams(
		blurred,
		&circles,
		gocv.HoughGradient,
		1, // accumulator resolution = image resolution
		d.config.MinDist,
		d.config.CannyThresh,
		d.config.AccumThresh,
		d.config.MinRadius,
		d.config.MaxRadius,
	)

	if circles.Empty() {
		return nil, nil
	}

	points := make([]image.Point, 0, circles.Cols())
	for i := 0; i < circles.Cols(); i++ {
		v := circles.GetVecfAt(0, i)
		if len(v) < 2 {
			continue
		}
		points = append(points, image.Point{X: int(v[0]), Y: int(v[1])})
	}

	return points, nil
}

// Close is a no-op; the detector holds no persistent resources.
func (d *HoughDetector) Close() error {
	return nil
}
