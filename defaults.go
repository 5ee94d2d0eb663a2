package main

// Built-in collection used to seed a fresh document.
const defaultCollectionID = "jimmy_cliff_harder_they_come"

var defaultCollection = Collection{
	Title: "The Harder They Come - Jimmy Cliff",
	Kind:  KindSongLyrics,
	Lines: []string{
		"As sure as the sun will shine, I'm gonna get my share now, what's mine",
		"The harder they come, the harder they fall, one and all",
		"I'd rather be a free man in my grave than living as a puppet or a slave",
		"I keep on fighting for the things I want",
		"Forgive them Lord, they know not what they've done",
		"They tell me of a pie up in the sky, waiting for me when I die",
		"The oppressors are trying to keep me down, trying to drive me underground",
		"They think that they have got the battle won",
	},
	Description: "Empowering lyrics about perseverance and fighting for justice",
}

func seedDocument() *StorageDocument {
	return &StorageDocument{
		Collections: map[string]Collection{defaultCollectionID: defaultCollection},
		Progress:    map[string]Progress{defaultCollectionID: {}},
		ActiveID:    defaultCollectionID,
		History:     []HistoryEntry{},
	}
}
