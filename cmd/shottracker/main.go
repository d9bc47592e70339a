package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/timesnewronann/shotTracker/internal/detect"
	"github.com/timesnewronann/shotTracker/internal/pipeline"
	"github.com/timesnewronann/shotTracker/internal/render"
	"github.com/timesnewronann/shotTracker/internal/sink"
	"github.com/timesnewronann/shotTracker/internal/source"
	"github.com/timesnewronann/shotTracker/internal/store"
)

// Output artifact names inside the resolved output directory.
const (
	statsLogName    = "stats.jsonl"
	runIndexName    = "runs.db"
	overlayName     = "overlay.mp4"
	framesDirName   = "frames"
	defaultDetector = "hough"
)

type options struct {
	video       string
	out         string
	overlay     bool
	saveVideo   bool
	writeFrames bool
	saveJSON    bool
	model       string
	roi         string
	dryRun      bool

	request pipeline.Request
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if opts.dryRun {
		if err := printPlan(os.Stdout, opts); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		return
	}

	if err := run(opts); err != nil {
		log.Fatalf("shottracker: %v", err)
	}
}

func parseFlags(args []string) (*options, error) {
	fs := flag.NewFlagSet("shottracker", flag.ContinueOnError)

	opts := &options{}
	fs.StringVar(&opts.video, "video", "", "path to an input video like data/raw/game1.mp4")
	fs.StringVar(&opts.out, "out", "", "directory where artifacts go (e.g., data/processed/game1)")
	fs.BoolVar(&opts.overlay, "overlay", false, "draw visual annotations (ROI box, trajectory) onto frames")
	fs.BoolVar(&opts.saveVideo, "save-video", false, "write the annotated overlay video (requires -overlay)")
	fs.BoolVar(&opts.writeFrames, "write-frames", false, "write one image per sampled frame")
	fs.BoolVar(&opts.saveJSON, "save-json", true, "append the run record to the stats log")
	fs.StringVar(&opts.model, "model", "", "detector model name; empty selects the built-in circle finder")
	fs.StringVar(&opts.roi, "roi", "", "manual region of interest as x1,y1,x2,y2")
	fs.BoolVar(&opts.dryRun, "dry-run", false, "print the resolved plan and perform no I/O")

	fs.IntVar(&opts.request.BootstrapFrames, "bootstrap-frames", 30, "initial frames used to warm up trackers/estimators")
	fs.IntVar(&opts.request.MaxFrames, "max-frames", 300, "cap on processed frames")
	fs.IntVar(&opts.request.Stride, "frame-stride", 1, "process every Nth frame")
	fs.Float64Var(&opts.request.EverySeconds, "every-seconds", 0, "sample one frame per this many seconds; overrides -frame-stride")
	fs.Float64Var(&opts.request.MaxSeconds, "max-seconds", 0, "cap on covered source time in seconds")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if opts.video == "" {
		return nil, fmt.Errorf("-video is required")
	}
	if opts.out == "" {
		return nil, fmt.Errorf("-out is required")
	}

	// Zero means "not set" for the duration flags, so an explicit zero has
	// to be caught here rather than in Validate.
	var explicitZero string
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "every-seconds":
			if opts.request.EverySeconds == 0 {
				explicitZero = f.Name
			}
		case "max-seconds":
			if opts.request.MaxSeconds == 0 {
				explicitZero = f.Name
			}
		}
	})
	if explicitZero != "" {
		return nil, fmt.Errorf("-%s must be > 0", explicitZero)
	}

	if err := opts.request.Validate(); err != nil {
		return nil, err
	}

	if _, err := newDetector(opts.model); err != nil {
		return nil, err
	}

	if opts.roi != "" {
		if _, err := parseROI(opts.roi); err != nil {
			return nil, err
		}
	}

	return opts, nil
}

// newDetector maps the -model flag to a Detector. The empty name selects the
// placeholder circle finder; real models register here as they land.
func newDetector(name string) (detect.Detector, error) {
	switch name {
	case "", defaultDetector:
		return detect.NewHoughDetector(detect.DefaultConfig()), nil
	default:
		return nil, fmt.Errorf("unknown model %q", name)
	}
}

func parseROI(s string) (render.ROI, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return render.ROI{}, fmt.Errorf("roi must be x1,y1,x2,y2, got %q", s)
	}

	vals := make([]int, 4)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return render.ROI{}, fmt.Errorf("roi must be four integers, got %q", s)
		}
		vals[i] = v
	}

	return render.ROI{X1: vals[0], Y1: vals[1], X2: vals[2], Y2: vals[3]}, nil
}

// printPlan writes the resolved plan without touching the video or the
// output directory. Stride and cap depend on the source frame rate, which a
// dry run never reads, so they are resolved against the fallback rate and
// labeled as such.
func printPlan(w io.Writer, opts *options) error {
	decision, err := pipeline.Resolve(opts.request, source.FallbackFPS)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "plan for %s -> %s\n", opts.video, opts.out)
	fmt.Fprintf(w, "  overlay=%v save-video=%v write-frames=%v save-json=%v\n",
		opts.overlay, opts.saveVideo, opts.writeFrames, opts.saveJSON)
	fmt.Fprintf(w, "  bootstrap-frames=%d max-frames=%d frame-stride=%d\n",
		opts.request.BootstrapFrames, opts.request.MaxFrames, opts.request.Stride)
	if opts.request.EverySeconds > 0 {
		fmt.Fprintf(w, "  every-seconds=%g\n", opts.request.EverySeconds)
	}
	if opts.request.MaxSeconds > 0 {
		fmt.Fprintf(w, "  max-seconds=%g\n", opts.request.MaxSeconds)
	}
	if opts.roi != "" {
		fmt.Fprintf(w, "  roi=%s\n", opts.roi)
	}
	model := opts.model
	if model == "" {
		model = defaultDetector
	}
	fmt.Fprintf(w, "  model=%s\n", model)
	fmt.Fprintf(w, "  effective stride=%d cap=%d (assuming %.1f fps; source not opened in dry-run)\n",
		decision.Stride, decision.Cap, source.FallbackFPS)
	fmt.Fprintln(w, "dry-run: no files written")

	return nil
}

func run(opts *options) error {
	src, err := source.Open(opts.video)
	if err != nil {
		return err
	}
	defer src.Close()

	meta := src.Metadata()
	log.Printf("opened %s: %dx%d @ %.2f fps, %d declared frames",
		opts.video, meta.Width, meta.Height, meta.FPS, meta.FrameCount)

	outDir, err := filepath.Abs(opts.out)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	det, err := newDetector(opts.model)
	if err != nil {
		return err
	}
	defer det.Close()

	cfg := pipeline.Config{
		Source:    src,
		Detector:  det,
		Request:   opts.request,
		VideoPath: opts.video,
		OutDir:    outDir,
	}

	if opts.overlay {
		roi := render.DefaultROI(meta.Width, meta.Height)
		if opts.roi != "" {
			roi, err = parseROI(opts.roi)
			if err != nil {
				return err
			}
		}
		cfg.Overlay = render.NewOverlay(roi)

		if opts.saveVideo {
			decision, err := pipeline.Resolve(opts.request, meta.FPS)
			if err != nil {
				return err
			}
			cfg.OverlaySink = sink.NewOverlayWriter(
				filepath.Join(outDir, overlayName),
				sink.OverlayFPS(meta.FPS, decision.Stride),
				meta.Width, meta.Height,
			)
		}
	}

	if opts.writeFrames {
		framesDir := filepath.Join(outDir, framesDirName)
		if err := os.MkdirAll(framesDir, 0755); err != nil {
			return fmt.Errorf("create frames directory: %w", err)
		}
		cfg.FrameSink = sink.NewFrameWriter(framesDir)
	}

	if opts.saveJSON {
		cfg.Records = sink.NewStatsLog(filepath.Join(outDir, statsLogName))
	}

	result, err := pipeline.New(cfg).Run()
	if err != nil {
		return err
	}

	// The JSONL stats log is the format of record; the SQLite index is a
	// convenience and must not fail the run.
	if opts.saveJSON {
		if err := indexRun(filepath.Join(outDir, runIndexName), result.Record); err != nil {
			log.Printf("run index update failed: %v", err)
		}
	}

	return nil
}

func indexRun(dbPath string, rec sink.RunRecord) error {
	st, err := store.New(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	return st.Runs().Insert(rec)
}
