package store

// runMigrations executes all database migrations.
func (s *Store) runMigrations() error {
	migrations := []string{
		// Runs table - one row per completed pipeline invocation
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			video_path TEXT NOT NULL,
			out_dir TEXT NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			fps REAL NOT NULL,
			frame_count INTEGER NOT NULL,
			stride INTEGER NOT NULL,
			cap INTEGER NOT NULL,
			every_seconds REAL NOT NULL DEFAULT 0,
			max_seconds REAL NOT NULL DEFAULT 0,
			max_frames INTEGER NOT NULL,
			bootstrap_frames INTEGER NOT NULL,
			warmup_frames INTEGER NOT NULL,
			frames_read INTEGER NOT NULL,
			frames_processed INTEGER NOT NULL,
			termination TEXT NOT NULL
		)`,

		// Indexes for the queries the analytics pipeline actually issues
		`CREATE INDEX IF NOT EXISTS idx_runs_video_path ON runs(video_path)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}
