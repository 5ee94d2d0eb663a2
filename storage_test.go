package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDoc() *StorageDocument {
	return &StorageDocument{
		Collections: map[string]Collection{
			"morning": {
				Title: "Morning Boost",
				Kind:  KindAffirmations,
				Lines: []string{"one", "two", "three"},
			},
		},
		Progress: map[string]Progress{"morning": {Cursor: 1, CycleCount: 2}},
		ActiveID: "morning",
		History: []HistoryEntry{
			{
				CollectionID: "morning",
				Title:        "Morning Boost",
				Line:         "one",
				Mode:         ModeSequential,
				Timestamp:    time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC),
			},
		},
	}
}

func TestLoadMissingFileSeedsDefaults(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "affirmations.json"), nil)

	doc, err := store.Load()
	require.NoError(t, err)

	require.Len(t, doc.Collections, 1)
	col, ok := doc.Collections[defaultCollectionID]
	require.True(t, ok)
	assert.Equal(t, KindSongLyrics, col.Kind)
	assert.NotEmpty(t, col.Lines)
	assert.Equal(t, defaultCollectionID, doc.ActiveID)
	assert.Equal(t, Progress{}, doc.Progress[defaultCollectionID])
	assert.Empty(t, doc.History)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "affirmations.json")
	store := NewStore(path, nil)
	doc := testDoc()

	require.NoError(t, store.Save(doc))
	got, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, doc, got)

	// Save what we loaded and load again: still identical.
	require.NoError(t, store.Save(got))
	again, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, doc, again)
}

func TestSaveCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "affirmations.json")
	store := NewStore(path, nil)

	require.NoError(t, store.Save(testDoc()))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "affirmations.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewStore(path, nil).Load()
	require.Error(t, err)
	var serr *StorageError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, path, serr.Path)
}

func TestNormalizeRepairsReferences(t *testing.T) {
	doc := &StorageDocument{
		Collections: map[string]Collection{
			"b": {Title: "B", Kind: KindPoem, Lines: []string{"x", "y"}},
			"a": {Title: "A", Kind: KindPoem, Lines: []string{"z"}},
		},
		Progress: map[string]Progress{
			"gone": {Cursor: 3},
			"b":    {Cursor: 9, CycleCount: 1},
		},
		ActiveID: "missing",
	}

	doc.normalize()

	assert.NotContains(t, doc.Progress, "gone")
	assert.Equal(t, Progress{Cursor: 0, CycleCount: 1}, doc.Progress["b"], "out-of-range cursor resets")
	assert.Contains(t, doc.Progress, "a", "missing progress is backfilled")
	assert.Equal(t, "a", doc.ActiveID, "dangling active id falls back to first collection")
}

func TestHistoryCapEviction(t *testing.T) {
	doc := testDoc()
	doc.History = nil
	for i := 0; i < 7; i++ {
		doc.appendHistory(HistoryEntry{Line: string(rune('a' + i))}, 5)
	}

	require.Len(t, doc.History, 5)
	assert.Equal(t, "c", doc.History[0].Line, "oldest entries evicted first")
	assert.Equal(t, "g", doc.History[4].Line)
}
