package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// Kind tags what a collection holds. The set is closed; all kinds share the
// same storage and selection behavior.
type Kind string

const (
	KindAffirmations Kind = "affirmations"
	KindSongLyrics   Kind = "song_lyrics"
	KindPoem         Kind = "poem"
)

func (k Kind) Valid() bool {
	switch k {
	case KindAffirmations, KindSongLyrics, KindPoem:
		return true
	}
	return false
}

// Mode selects how the next line is chosen.
type Mode string

const (
	ModeSequential Mode = "sequential"
	ModeRandom     Mode = "random"
)

// Collection is a named, ordered set of lines. Immutable once created except
// by re-import under the same id.
type Collection struct {
	Title       string   `json:"title"`
	Kind        Kind     `json:"kind"`
	Lines       []string `json:"lines"`
	Description string   `json:"description,omitempty"`
}

// Progress tracks the sequential cursor for one collection.
type Progress struct {
	Cursor     int `json:"cursor"`
	CycleCount int `json:"cycle_count"`
}

// HistoryEntry records one displayed line.
type HistoryEntry struct {
	CollectionID string    `json:"collection"`
	Title        string    `json:"title"`
	Line         string    `json:"line"`
	Mode         Mode      `json:"mode"`
	Timestamp    time.Time `json:"timestamp"`
}

// StorageDocument is the single persisted root: loaded wholesale, mutated in
// memory, saved wholesale. Last writer wins.
type StorageDocument struct {
	Collections map[string]Collection `json:"collections"`
	Progress    map[string]Progress   `json:"progress"`
	ActiveID    string                `json:"active_collection"`
	History     []HistoryEntry        `json:"history"`
}

// StorageError means the file exists but cannot be read as a document.
type StorageError struct {
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Store owns the on-disk path of the document. No locking; concurrent
// invocations race and are out of scope.
type Store struct {
	path string
	log  *zap.Logger
}

func NewStore(path string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{path: path, log: log}
}

// Load reads the document, seeding a fresh one with the built-in collection
// when no file exists yet.
func (s *Store) Load() (*StorageDocument, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.log.Debug("no document found, seeding defaults", zap.String("path", s.path))
		return seedDocument(), nil
	}
	if err != nil {
		return nil, &StorageError{Path: s.path, Err: err}
	}
	var doc StorageDocument
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, &StorageError{Path: s.path, Err: err}
	}
	doc.normalize()
	s.log.Debug("document loaded",
		zap.String("path", s.path),
		zap.Int("collections", len(doc.Collections)),
		zap.Int("history", len(doc.History)))
	return &doc, nil
}

// Save writes the whole document back, creating the parent dir if needed.
func (s *Store) Save(doc *StorageDocument) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		return err
	}
	s.log.Debug("document saved", zap.String("path", s.path))
	return nil
}

// normalize restores the invariant that every id referenced by Progress or
// ActiveID exists in Collections, and that every collection has a Progress.
func (d *StorageDocument) normalize() {
	if d.Collections == nil {
		d.Collections = map[string]Collection{}
	}
	if d.Progress == nil {
		d.Progress = map[string]Progress{}
	}
	for id, p := range d.Progress {
		col, ok := d.Collections[id]
		if !ok {
			delete(d.Progress, id)
			continue
		}
		// Hand-edited files can leave the cursor past the end.
		if p.Cursor < 0 || p.Cursor >= len(col.Lines) {
			p.Cursor = 0
			d.Progress[id] = p
		}
	}
	for id := range d.Collections {
		if _, ok := d.Progress[id]; !ok {
			d.Progress[id] = Progress{}
		}
	}
	if _, ok := d.Collections[d.ActiveID]; !ok {
		d.ActiveID = ""
	}
	if d.ActiveID == "" {
		ids := sortedIDs(d.Collections)
		if len(ids) > 0 {
			d.ActiveID = ids[0]
		}
	}
}

func (d *StorageDocument) appendHistory(e HistoryEntry, cap int) {
	d.History = append(d.History, e)
	if cap > 0 && len(d.History) > cap {
		d.History = d.History[len(d.History)-cap:]
	}
}
