package store

import (
	"database/sql"
	"errors"

	"github.com/timesnewronann/shotTracker/internal/sink"
)

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// RunRepository provides access to the run index.
type RunRepository struct {
	db *sql.DB
}

// Runs returns the run repository for this store.
func (s *Store) Runs() *RunRepository {
	return &RunRepository{db: s.db}
}

// Insert adds one completed run to the index.
func (r *RunRepository) Insert(rec sink.RunRecord) error {
	_, err := r.db.Exec(
		`INSERT INTO runs (id, created_at, video_path, out_dir, width, height, fps,
		 frame_count, stride, cap, every_seconds, max_seconds, max_frames,
		 bootstrap_frames, warmup_frames, frames_read, frames_processed, termination)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.CreatedAt, rec.VideoPath, rec.OutDir, rec.Width, rec.Height,
		rec.FPS, rec.FrameCount, rec.Stride, rec.Cap, rec.EverySeconds,
		rec.MaxSeconds, rec.MaxFrames, rec.BootstrapFrames, rec.WarmupFrames,
		rec.FramesRead, rec.FramesProcessed, rec.Termination,
	)
	return err
}

// GetByID retrieves one run by its ID.
func (r *RunRepository) GetByID(id string) (*sink.RunRecord, error) {
	rec := &sink.RunRecord{}

	err := r.db.QueryRow(
		`SELECT id, created_at, video_path, out_dir, width, height, fps,
		 frame_count, stride, cap, every_seconds, max_seconds, max_frames,
		 bootstrap_frames, warmup_frames, frames_read, frames_processed, termination
		 FROM runs WHERE id = ?`,
		id,
	).Scan(
		&rec.ID, &rec.CreatedAt, &rec.VideoPath, &rec.OutDir, &rec.Width,
		&rec.Height, &rec.FPS, &rec.FrameCount, &rec.Stride, &rec.Cap,
		&rec.EverySeconds, &rec.MaxSeconds, &rec.MaxFrames, &rec.BootstrapFrames,
		&rec.WarmupFrames, &rec.FramesRead, &rec.FramesProcessed, &rec.Termination,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return rec, nil
}

// List returns all indexed runs, newest first.
func (r *RunRepository) List() ([]sink.RunRecord, error) {
	rows, err := r.db.Query(
		`SELECT id, created_at, video_path, out_dir, width, height, fps,
		 frame_count, stride, cap, every_seconds, max_seconds, max_frames,
		 bootstrap_frames, warmup_frames, frames_read, frames_processed, termination
		 FROM runs ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []sink.RunRecord
	for rows.Next() {
		var rec sink.RunRecord
		if err := rows.Scan(
			&rec.ID, &rec.CreatedAt, &rec.VideoPath, &rec.OutDir, &rec.Width,
			&rec.Height, &rec.FPS, &rec.FrameCount, &rec.Stride, &rec.Cap,
			&rec.EverySeconds, &rec.MaxSeconds, &rec.MaxFrames, &rec.BootstrapFrames,
			&rec.WarmupFrames, &rec.FramesRead, &rec.FramesProcessed, &rec.Termination,
		); err != nil {
			return nil, err
		}
		runs = append(runs, rec)
	}

	return runs, rows.Err()
}

// CountForVideo returns how many runs are indexed for a given input video.
func (r *RunRepository) CountForVideo(videoPath string) (int, error) {
	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM runs WHERE video_path = ?`, videoPath).Scan(&n)
	return n, err
}
