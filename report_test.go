package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionsListing(t *testing.T) {
	doc := testDoc()
	_, err := Import(doc, "evening", "Evening Wind-down", KindPoem, "rest\nbreathe\n")
	require.NoError(t, err)

	infos := Collections(doc)
	require.Len(t, infos, 2)
	assert.Equal(t, "evening", infos[0].ID, "listing is sorted by id")
	assert.Equal(t, 2, infos[0].LineCount)
	assert.False(t, infos[0].Active)
	assert.Equal(t, "morning", infos[1].ID)
	assert.True(t, infos[1].Active)
	assert.Equal(t, 1, infos[1].Cursor)
}

func TestRecentHistoryOrder(t *testing.T) {
	doc := testDoc()
	doc.History = nil
	sel := NewSelector(defaultHistoryCap)
	for i := 0; i < 3; i++ {
		_, err := sel.Next(doc, "morning", ModeSequential)
		require.NoError(t, err)
	}

	got := RecentHistory(doc, 2)
	require.Len(t, got, 2)
	assert.Equal(t, "three", got[0].Line, "most recent first")
	assert.Equal(t, "two", got[1].Line)

	assert.Len(t, RecentHistory(doc, 10), 3, "n larger than history returns everything")
	assert.Len(t, RecentHistory(doc, 0), 3)
}

func TestActiveProgress(t *testing.T) {
	doc := testDoc()

	info, ok := ActiveProgress(doc)
	require.True(t, ok)
	assert.Equal(t, "morning", info.ID)
	assert.Equal(t, 1, info.Cursor)
	assert.Equal(t, 3, info.Total)
	assert.Equal(t, 2, info.CycleCount)
	assert.Equal(t, "two", info.NextLine)
}

func TestActiveProgressNoCollections(t *testing.T) {
	doc := &StorageDocument{
		Collections: map[string]Collection{},
		Progress:    map[string]Progress{},
	}
	_, ok := ActiveProgress(doc)
	assert.False(t, ok)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 50))
	assert.Equal(t, "abc...", truncate("abcdef", 3))
}
