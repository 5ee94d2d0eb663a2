package main

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"
)

var (
	ErrNoCollections   = errors.New("no collections available")
	ErrEmptyCollection = errors.New("collection has no lines")
)

// Selector picks the next line from a collection and records it in history.
// It mutates the caller-owned document; the caller persists it.
type Selector struct {
	historyCap int
	now        func() time.Time
	intN       func(n int) int
}

func NewSelector(historyCap int) *Selector {
	return &Selector{historyCap: historyCap, now: time.Now, intN: rand.IntN}
}

// Next returns one line from the collection. Sequential mode advances the
// cursor and wraps to 0 with a cycle count bump at the end; random mode
// leaves progress untouched. Both append a history entry, evicting the
// oldest entries past the cap.
func (s *Selector) Next(doc *StorageDocument, id string, mode Mode) (string, error) {
	if id == "" {
		return "", ErrNoCollections
	}
	col, ok := doc.Collections[id]
	if !ok {
		return "", fmt.Errorf("unknown collection %q", id)
	}
	if len(col.Lines) == 0 {
		return "", fmt.Errorf("%q: %w", id, ErrEmptyCollection)
	}

	var line string
	switch mode {
	case ModeRandom:
		line = col.Lines[s.intN(len(col.Lines))]
	default:
		mode = ModeSequential
		p := doc.Progress[id]
		line = col.Lines[p.Cursor]
		p.Cursor++
		if p.Cursor >= len(col.Lines) {
			p.Cursor = 0
			p.CycleCount++
		}
		doc.Progress[id] = p
	}

	doc.appendHistory(HistoryEntry{
		CollectionID: id,
		Title:        col.Title,
		Line:         line,
		Mode:         mode,
		Timestamp:    s.now(),
	}, s.historyCap)
	return line, nil
}
