// Package pipeline drives the sampling loop: warm-up, strided detection
// under a frame cap, trajectory upkeep, and run-record emission.
package pipeline

import (
	"errors"
	"fmt"
	"image"
	"log"

	"gocv.io/x/gocv"

	"github.com/timesnewronann/shotTracker/internal/detect"
	"github.com/timesnewronann/shotTracker/internal/render"
	"github.com/timesnewronann/shotTracker/internal/sink"
	"github.com/timesnewronann/shotTracker/internal/source"
	"github.com/timesnewronann/shotTracker/internal/track"
)

// Termination names why the main loop stopped.
type Termination string

const (
	// DoneByCap means the effective frame cap was reached.
	DoneByCap Termination = "cap"
	// DoneByEOF means the source ran out of frames.
	DoneByEOF Termination = "eof"
)

// FrameSink receives the clean (un-annotated) sampled frames.
type FrameSink interface {
	Write(frameIndex int, frame *gocv.Mat) error
}

// OverlaySink receives rendered frames and is closed exactly once at run
// end.
type OverlaySink interface {
	Write(frame *gocv.Mat) error
	Close() error
}

// RecordSink persists the final run record.
type RecordSink interface {
	Append(rec sink.RunRecord) error
}

// Config wires a single run. Source and Detector are required; the overlay
// renderer and every sink are optional and skipped when nil.
type Config struct {
	Source   source.Source
	Detector detect.Detector

	// Overlay enables annotation rendering when non-nil.
	Overlay *render.Overlay

	// OverlaySink receives rendered frames; ignored unless Overlay is set.
	OverlaySink OverlaySink

	// FrameSink receives clean sampled frames.
	FrameSink FrameSink

	// Records receives the run record after the loop terminates.
	Records RecordSink

	Request Request

	// SelectPoint picks the tracked point from the detector's candidates.
	// Nil selects the first candidate; that default is arbitrary and kept
	// only until a smarter selector exists.
	SelectPoint func(candidates []image.Point) image.Point

	// VideoPath and OutDir are carried into the run record verbatim.
	VideoPath string
	OutDir    string
}

// Result reports the counters of one completed run.
type Result struct {
	Decision        Decision
	WarmupFrames    int
	FramesRead      int
	FramesProcessed int
	Termination     Termination
	Record          sink.RunRecord
}

// Orchestrator owns the per-run loop state. Counters live here, not in
// package state, so runs are independently testable.
type Orchestrator struct {
	cfg      Config
	decision Decision

	warmupFrames    int
	frameIndex      int
	framesRead      int
	framesProcessed int
	termination     Termination

	trajectory *track.Trajectory
}

// New creates an Orchestrator for one run.
func New(cfg Config) *Orchestrator {
	return &Orchestrator{
		cfg:        cfg,
		trajectory: track.NewTrajectory(),
	}
}

// Run executes warm-up then the bounded main loop and appends the run
// record. The caller owns the Source and Detector lifetimes; Run owns the
// overlay sink and closes it on every exit path.
func (o *Orchestrator) Run() (Result, error) {
	meta := o.cfg.Source.Metadata()

	decision, err := Resolve(o.cfg.Request, meta.FPS)
	if err != nil {
		return Result{}, err
	}
	o.decision = decision

	runErr := o.process()

	if o.cfg.OverlaySink != nil {
		if err := o.cfg.OverlaySink.Close(); err != nil && runErr == nil {
			runErr = fmt.Errorf("close overlay sink: %w", err)
		}
	}
	if runErr != nil {
		return Result{}, runErr
	}

	rec := o.buildRecord(meta)
	if o.cfg.Records != nil {
		if err := o.cfg.Records.Append(rec); err != nil {
			return Result{}, err
		}
	}

	log.Printf("run complete: termination=%s warmup=%d read=%d processed=%d (stride=%d cap=%d)",
		o.termination, o.warmupFrames, o.framesRead, o.framesProcessed,
		decision.Stride, decision.Cap)

	return Result{
		Decision:        decision,
		WarmupFrames:    o.warmupFrames,
		FramesRead:      o.framesRead,
		FramesProcessed: o.framesProcessed,
		Termination:     o.termination,
		Record:          rec,
	}, nil
}

func (o *Orchestrator) process() error {
	if err := o.warmUp(); err != nil {
		if errors.Is(err, source.ErrEndOfStream) {
			// A source shorter than the warm-up span still produces a
			// run record; the main loop just sees EOF immediately.
			o.termination = DoneByEOF
			return nil
		}
		return err
	}

	return o.mainLoop()
}

// warmUp discards up to BootstrapFrames frames to advance the read
// position. Warm-up frames never reach the detector or any sink and never
// count toward the cap.
func (o *Orchestrator) warmUp() error {
	for o.warmupFrames < o.cfg.Request.BootstrapFrames {
		frame, err := o.cfg.Source.ReadFrame()
		if err != nil {
			return err
		}
		frame.Close()
		o.warmupFrames++
	}
	return nil
}

func (o *Orchestrator) mainLoop() error {
	for {
		if o.framesProcessed >= o.decision.Cap {
			o.termination = DoneByCap
			return nil
		}

		frame, err := o.cfg.Source.ReadFrame()
		if err != nil {
			if errors.Is(err, source.ErrEndOfStream) {
				o.termination = DoneByEOF
				return nil
			}
			return err
		}

		// frameIndex counts every main-loop read, sampled or not, so
		// sample timing stays anchored to source time.
		o.frameIndex = o.framesRead
		o.framesRead++

		if o.frameIndex%o.decision.Stride != 0 {
			frame.Close()
			continue
		}

		err = o.processFrame(frame)
		frame.Close()
		if err != nil {
			return err
		}

		o.framesProcessed++
	}
}

func (o *Orchestrator) processFrame(frame *gocv.Mat) error {
	candidates, err := o.cfg.Detector.FindCandidates(frame)
	if err != nil {
		return fmt.Errorf("detect frame %d: %w", o.frameIndex, err)
	}

	var selected *image.Point
	if len(candidates) > 0 {
		pt := o.selectPoint(candidates)
		selected = &pt
		o.trajectory.Record(pt)
	}

	if o.cfg.Overlay != nil {
		rendered := o.cfg.Overlay.Draw(frame, o.frameIndex, selected, o.trajectory.Tail(render.TrailPoints))
		var sinkErr error
		if o.cfg.OverlaySink != nil {
			sinkErr = o.cfg.OverlaySink.Write(&rendered)
		}
		rendered.Close()
		if sinkErr != nil {
			return fmt.Errorf("overlay frame %d: %w", o.frameIndex, sinkErr)
		}
	}

	if o.cfg.FrameSink != nil {
		if err := o.cfg.FrameSink.Write(o.frameIndex, frame); err != nil {
			return fmt.Errorf("frame image %d: %w", o.frameIndex, err)
		}
	}

	return nil
}

func (o *Orchestrator) selectPoint(candidates []image.Point) image.Point {
	if o.cfg.SelectPoint != nil {
		return o.cfg.SelectPoint(candidates)
	}
	return candidates[0]
}

func (o *Orchestrator) buildRecord(meta source.Metadata) sink.RunRecord {
	rec := sink.NewRunRecord()
	rec.VideoPath = o.cfg.VideoPath
	rec.OutDir = o.cfg.OutDir
	rec.Width = meta.Width
	rec.Height = meta.Height
	rec.FPS = meta.FPS
	rec.FrameCount = meta.FrameCount
	rec.Stride = o.decision.Stride
	rec.Cap = o.decision.Cap
	rec.EverySeconds = o.cfg.Request.EverySeconds
	rec.MaxSeconds = o.cfg.Request.MaxSeconds
	rec.MaxFrames = o.cfg.Request.MaxFrames
	rec.BootstrapFrames = o.cfg.Request.BootstrapFrames
	rec.WarmupFrames = o.warmupFrames
	rec.FramesRead = o.framesRead
	rec.FramesProcessed = o.framesProcessed
	rec.Termination = string(o.termination)
	return rec
}
