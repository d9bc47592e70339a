package sink

import (
	"path/filepath"
	"testing"
)

func TestFrameWriter_FramePath(t *testing.T) {
	w := NewFrameWriter("/tmp/out/frames")

	tests := []struct {
		index int
		want  string
	}{
		{0, "frame_000000.jpg"},
		{42, "frame_000042.jpg"},
		{123456, "frame_123456.jpg"},
	}

	for _, tt := range tests {
		got := w.FramePath(tt.index)
		want := filepath.Join("/tmp/out/frames", tt.want)
		if got != want {
			t.Errorf("FramePath(%d) = %q, want %q", tt.index, got, want)
		}
	}
}

func TestOverlayFPS(t *testing.T) {
	tests := []struct {
		name   string
		fps    float64
		stride int
		want   float64
	}{
		{
			name:   "no striding keeps source rate",
			fps:    30,
			stride: 1,
			want:   30,
		},
		{
			name:   "striding divides the rate",
			fps:    30,
			stride: 3,
			want:   10,
		},
		{
			name:   "heavy striding floors at minimum",
			fps:    30,
			stride: 30,
			want:   MinPlaybackFPS,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OverlayFPS(tt.fps, tt.stride); got != tt.want {
				t.Errorf("OverlayFPS(%g, %d) = %g, want %g", tt.fps, tt.stride, got, tt.want)
			}
		})
	}
}

func TestOverlayWriter_LazyUntilFirstWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overlay.mp4")
	w := NewOverlayWriter(path, 10, 160, 120)

	if w.Opened() {
		t.Error("writer should not open the encoder before the first write")
	}

	// Closing an unused writer touches nothing and is repeatable.
	if err := w.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

func TestOverlayWriter_WriteAfterClose(t *testing.T) {
	w := NewOverlayWriter(filepath.Join(t.TempDir(), "overlay.mp4"), 10, 160, 120)

	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if err := w.Write(nil); err == nil {
		t.Error("Write() after Close should fail")
	}
}
