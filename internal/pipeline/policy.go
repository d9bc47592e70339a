package pipeline

import (
	"fmt"
	"math"
)

// Request holds the caller-supplied sampling constraints. Zero values for
// EverySeconds and MaxSeconds mean "not set"; the other fields are required.
type Request struct {
	// Stride processes every Nth main-loop frame. Overridden when
	// EverySeconds is set.
	Stride int

	// EverySeconds requests one sample per this many seconds of source
	// time. Takes precedence over Stride unconditionally.
	EverySeconds float64

	// MaxFrames is the hard cap on processed (sampled) frames.
	MaxFrames int

	// MaxSeconds bounds how much source time the run may cover.
	MaxSeconds float64

	// BootstrapFrames is how many initial frames are discarded as warm-up.
	BootstrapFrames int
}

// Decision is the resolved sampling plan, derived once per run and immutable
// for its duration.
type Decision struct {
	// Stride is the effective sampling interval in frames.
	Stride int

	// Cap is the binding upper bound on processed frames.
	Cap int
}

// Validate checks the request before any I/O happens. Violations are caller
// configuration errors, not runtime failures.
func (r Request) Validate() error {
	if r.Stride < 1 {
		return fmt.Errorf("frame stride must be >= 1, got %d", r.Stride)
	}
	if r.MaxFrames < 1 {
		return fmt.Errorf("max frames must be >= 1, got %d", r.MaxFrames)
	}
	if r.BootstrapFrames < 1 {
		return fmt.Errorf("bootstrap frames must be >= 1, got %d", r.BootstrapFrames)
	}
	if r.EverySeconds < 0 {
		return fmt.Errorf("every-seconds must be > 0, got %g", r.EverySeconds)
	}
	if r.MaxSeconds < 0 {
		return fmt.Errorf("max-seconds must be > 0, got %g", r.MaxSeconds)
	}
	return nil
}

// Resolve turns a request plus the source frame rate into the effective
// stride and cap.
//
// A set EverySeconds overrides the requested stride: one sample per
// EverySeconds of source time, never less than every frame. A set MaxSeconds
// converts to a cap on sampled frames at the effective stride; the smaller
// of that and MaxFrames always wins.
func Resolve(req Request, fps float64) (Decision, error) {
	if err := req.Validate(); err != nil {
		return Decision{}, err
	}

	stride := req.Stride
	if req.EverySeconds > 0 {
		stride = int(math.Round(fps * req.EverySeconds))
		if stride < 1 {
			stride = 1
		}
	}

	limit := req.MaxFrames
	if req.MaxSeconds > 0 {
		byTime := int(math.Floor(fps * req.MaxSeconds / float64(stride)))
		if byTime < 1 {
			byTime = 1
		}
		if byTime < limit {
			limit = byTime
		}
	}

	return Decision{Stride: stride, Cap: limit}, nil
}
