package localstore

import (
	"encoding/json"
	"log"
	"time"

	"codeleap/internal/models"

	"github.com/rs/xid"
)

// Cap on stored runs per language; older entries fall off the end.
const maxRunHistory = 50

// RunHistory keeps a bounded, newest-first list of editor runs per language.
type RunHistory struct {
	store *Store
}

func NewRunHistory(store *Store) *RunHistory {
	return &RunHistory{store: store}
}

func historyKey(language string) string {
	return runHistoryPrefix + language
}

func (h *RunHistory) decode(raw string, ok bool) []*models.RunHistoryEntry {
	if !ok || raw == "" {
		return []*models.RunHistoryEntry{}
	}

	var entries []*models.RunHistoryEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		log.Printf("Corrupt local run history, treating as empty: %v", err)
		return []*models.RunHistoryEntry{}
	}
	return entries
}

// Append records a run at the head of the language's history.
func (h *RunHistory) Append(language string, entry *models.RunHistoryEntry) (*models.RunHistoryEntry, error) {
	saved := &models.RunHistoryEntry{
		ID:        xid.New().String(),
		Code:      entry.Code,
		Result:    entry.Result,
		CreatedAt: time.Now(),
	}

	err := h.store.Update(historyKey(language), func(current string, ok bool) (string, error) {
		entries := append([]*models.RunHistoryEntry{saved}, h.decode(current, ok)...)
		if len(entries) > maxRunHistory {
			entries = entries[:maxRunHistory]
		}

		data, err := json.Marshal(entries)
		if err != nil {
			return "", err
		}
		return string(data), nil
	})
	if err != nil {
		return nil, err
	}

	return saved, nil
}

// Get returns the language's history, newest first.
func (h *RunHistory) Get(language string) []*models.RunHistoryEntry {
	raw, ok := h.store.Get(historyKey(language))
	return h.decode(raw, ok)
}
