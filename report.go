package main

import "sort"

// CollectionInfo is one row of the collection listing.
type CollectionInfo struct {
	ID          string
	Title       string
	Kind        Kind
	Description string
	LineCount   int
	Cursor      int
	Active      bool
}

// ProgressInfo describes where the active collection stands.
type ProgressInfo struct {
	ID         string
	Title      string
	Cursor     int
	Total      int
	CycleCount int
	NextLine   string
}

func sortedIDs(collections map[string]Collection) []string {
	ids := make([]string, 0, len(collections))
	for id := range collections {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Collections lists every collection with its progress, sorted by id.
func Collections(doc *StorageDocument) []CollectionInfo {
	var out []CollectionInfo
	for _, id := range sortedIDs(doc.Collections) {
		col := doc.Collections[id]
		out = append(out, CollectionInfo{
			ID:          id,
			Title:       col.Title,
			Kind:        col.Kind,
			Description: col.Description,
			LineCount:   len(col.Lines),
			Cursor:      doc.Progress[id].Cursor,
			Active:      id == doc.ActiveID,
		})
	}
	return out
}

// RecentHistory returns the last n entries, most recent first.
func RecentHistory(doc *StorageDocument, n int) []HistoryEntry {
	if n <= 0 || n > len(doc.History) {
		n = len(doc.History)
	}
	out := make([]HistoryEntry, 0, n)
	for i := len(doc.History) - 1; i >= len(doc.History)-n; i-- {
		out = append(out, doc.History[i])
	}
	return out
}

// ActiveProgress reports the cursor position of the active collection.
// ok is false when the document has no collections.
func ActiveProgress(doc *StorageDocument) (ProgressInfo, bool) {
	col, ok := doc.Collections[doc.ActiveID]
	if !ok {
		return ProgressInfo{}, false
	}
	p := doc.Progress[doc.ActiveID]
	info := ProgressInfo{
		ID:         doc.ActiveID,
		Title:      col.Title,
		Cursor:     p.Cursor,
		Total:      len(col.Lines),
		CycleCount: p.CycleCount,
	}
	if p.Cursor < len(col.Lines) {
		info.NextLine = col.Lines[p.Cursor]
	}
	return info, true
}
