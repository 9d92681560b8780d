package models

import "time"

// Snippet is a saved piece of editor code. For the frontend-project language
// the Code field holds a serialized bundle of the three sub-files (HTML, CSS,
// JS); this layer treats it as opaque text either way.
type Snippet struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Language  string    `json:"language"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"createdAt"`
}

// RunHistoryEntry is one editor run kept in the per-language local history.
type RunHistoryEntry struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Result    string    `json:"result"`
	CreatedAt time.Time `json:"createdAt"`
}
