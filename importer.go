package main

import (
	"bufio"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	ErrEmptyInput  = errors.New("no usable lines in input")
	ErrInvalidID   = errors.New("collection id must be non-empty with no whitespace")
	ErrInvalidKind = errors.New("kind must be affirmations, song_lyrics, or poem")
)

var (
	bulletRe = regexp.MustCompile(`^[-*+]\s+`)
	numberRe = regexp.MustCompile(`^\d+[.)]\s*`)
)

// ParseLines splits pasted markdown-ish text into clean lines: blanks and
// headers are dropped, list markup is stripped.
func ParseLines(raw string) []string {
	var out []string
	sc := bufio.NewScanner(strings.NewReader(raw))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = bulletRe.ReplaceAllString(line, "")
		line = numberRe.ReplaceAllString(line, "")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// Import parses raw text and inserts or overwrites the collection under id,
// resetting its progress. The active collection only changes when none was
// set before. Returns the number of imported lines; on error the document is
// left untouched.
func Import(doc *StorageDocument, id, title string, kind Kind, raw string) (int, error) {
	if id == "" || strings.ContainsAny(id, " \t\n") {
		return 0, fmt.Errorf("%q: %w", id, ErrInvalidID)
	}
	if !kind.Valid() {
		return 0, fmt.Errorf("%q: %w", kind, ErrInvalidKind)
	}
	lines := ParseLines(raw)
	if len(lines) == 0 {
		return 0, ErrEmptyInput
	}
	if title == "" {
		title = id
	}
	doc.Collections[id] = Collection{
		Title:       title,
		Kind:        kind,
		Lines:       lines,
		Description: fmt.Sprintf("Added via import - %s", kind),
	}
	doc.Progress[id] = Progress{}
	if doc.ActiveID == "" {
		doc.ActiveID = id
	}
	return len(lines), nil
}
