package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/timesnewronann/shotTracker/internal/sink"
)

func testStore(t *testing.T) *Store {
	t.Helper()

	s, err := New(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	return s
}

func testRecord(video string) sink.RunRecord {
	rec := sink.NewRunRecord()
	rec.VideoPath = video
	rec.OutDir = "/tmp/out"
	rec.Width = 1920
	rec.Height = 1080
	rec.FPS = 30
	rec.FrameCount = 900
	rec.Stride = 3
	rec.Cap = 60
	rec.MaxFrames = 100
	rec.BootstrapFrames = 30
	rec.WarmupFrames = 30
	rec.FramesRead = 180
	rec.FramesProcessed = 60
	rec.Termination = "cap"
	return rec
}

func TestRunRepository_InsertAndGet(t *testing.T) {
	s := testStore(t)

	rec := testRecord("game1.mp4")
	if err := s.Runs().Insert(rec); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	got, err := s.Runs().GetByID(rec.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}

	if got.VideoPath != rec.VideoPath {
		t.Errorf("VideoPath = %q, want %q", got.VideoPath, rec.VideoPath)
	}
	if got.Stride != rec.Stride || got.Cap != rec.Cap {
		t.Errorf("stride/cap = %d/%d, want %d/%d", got.Stride, got.Cap, rec.Stride, rec.Cap)
	}
	if got.FramesProcessed != rec.FramesProcessed {
		t.Errorf("FramesProcessed = %d, want %d", got.FramesProcessed, rec.FramesProcessed)
	}
	if got.Termination != rec.Termination {
		t.Errorf("Termination = %q, want %q", got.Termination, rec.Termination)
	}
}

func TestRunRepository_GetByID_NotFound(t *testing.T) {
	s := testStore(t)

	if _, err := s.Runs().GetByID("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID() error = %v, want ErrNotFound", err)
	}
}

func TestRunRepository_ListNewestFirst(t *testing.T) {
	s := testStore(t)

	older := testRecord("game1.mp4")
	older.CreatedAt = time.Now().UTC().Add(-time.Hour)
	newer := testRecord("game2.mp4")

	if err := s.Runs().Insert(older); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if err := s.Runs().Insert(newer); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	runs, err := s.Runs().List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	if len(runs) != 2 {
		t.Fatalf("List() returned %d runs, want 2", len(runs))
	}
	if runs[0].ID != newer.ID {
		t.Errorf("List()[0].ID = %q, want newest run %q", runs[0].ID, newer.ID)
	}
}

func TestRunRepository_CountForVideo(t *testing.T) {
	s := testStore(t)

	for i := 0; i < 3; i++ {
		if err := s.Runs().Insert(testRecord("game1.mp4")); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
	}
	if err := s.Runs().Insert(testRecord("game2.mp4")); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	n, err := s.Runs().CountForVideo("game1.mp4")
	if err != nil {
		t.Fatalf("CountForVideo() error = %v", err)
	}
	if n != 3 {
		t.Errorf("CountForVideo() = %d, want 3", n)
	}
}
