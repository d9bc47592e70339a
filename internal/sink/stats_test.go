package sink

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsLog_AppendIsAppendOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.jsonl")
	log := NewStatsLog(path)

	first := NewRunRecord()
	first.VideoPath = "a.mp4"
	first.FramesProcessed = 10

	second := NewRunRecord()
	second.VideoPath = "a.mp4"
	second.FramesProcessed = 20

	// Two appends with identical inputs produce exactly two records,
	// neither overwriting the other.
	require.NoError(t, log.Append(first))
	require.NoError(t, log.Append(second))

	recs := readRecords(t, path)
	require.Len(t, recs, 2)
	assert.Equal(t, first.ID, recs[0].ID)
	assert.Equal(t, second.ID, recs[1].ID)
	assert.Equal(t, 10, recs[0].FramesProcessed)
	assert.Equal(t, 20, recs[1].FramesProcessed)
}

func TestStatsLog_AppendPreservesExistingContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.jsonl")

	// Pre-existing entries from an earlier invocation must survive.
	require.NoError(t, os.WriteFile(path, []byte(`{"id":"older-run"}`+"\n"), 0644))

	rec := NewRunRecord()
	require.NoError(t, NewStatsLog(path).Append(rec))

	recs := readRecords(t, path)
	require.Len(t, recs, 2)
	assert.Equal(t, "older-run", recs[0].ID)
	assert.Equal(t, rec.ID, recs[1].ID)
}

func TestStatsLog_AppendFailsWhenDirMissing(t *testing.T) {
	log := NewStatsLog(filepath.Join(t.TempDir(), "missing", "stats.jsonl"))
	assert.Error(t, log.Append(NewRunRecord()))
}

func TestNewRunRecord(t *testing.T) {
	a := NewRunRecord()
	b := NewRunRecord()

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.False(t, a.CreatedAt.IsZero())
	assert.Equal(t, "UTC", a.CreatedAt.Location().String())
}

func readRecords(t *testing.T, path string) []RunRecord {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var recs []RunRecord
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var rec RunRecord
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &rec))
		recs = append(recs, rec)
	}
	require.NoError(t, scanner.Err())

	return recs
}
