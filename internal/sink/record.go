// Package sink writes pipeline artifacts: run records, frame images, and
// the annotated overlay video.
package sink

import (
	"time"

	"github.com/google/uuid"
)

// RunRecord summarizes a single pipeline invocation. It is created once
// after the processing loop terminates, never mutated afterward, and
// appended to the stats log exactly once.
type RunRecord struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	VideoPath string `json:"video_path"`
	OutDir    string `json:"out_dir"`

	Width      int     `json:"width"`
	Height     int     `json:"height"`
	FPS        float64 `json:"fps"`
	FrameCount int     `json:"frame_count"`

	Stride       int     `json:"stride"`
	Cap          int     `json:"cap"`
	EverySeconds float64 `json:"every_seconds,omitempty"`
	MaxSeconds   float64 `json:"max_seconds,omitempty"`
	MaxFrames    int     `json:"max_frames"`

	BootstrapFrames int `json:"bootstrap_frames"`
	WarmupFrames    int `json:"warmup_frames"`
	FramesRead      int `json:"frames_read"`
	FramesProcessed int `json:"frames_processed"`

	Termination string `json:"termination"`
}

// NewRunRecord stamps a record with a fresh ID and creation time.
func NewRunRecord() RunRecord {
	return RunRecord{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}
}
