package localstore

import (
	"encoding/json"
	"log"
)

// Progress persists the anonymous completed-challenge set.
type Progress struct {
	store *Store
}

func NewProgress(store *Store) *Progress {
	return &Progress{store: store}
}

func (p *Progress) decode(raw string, ok bool) []string {
	if !ok || raw == "" {
		return []string{}
	}

	var completed []string
	if err := json.Unmarshal([]byte(raw), &completed); err != nil {
		log.Printf("Corrupt local challenge progress, treating as empty: %v", err)
		return []string{}
	}
	return completed
}

// GetCompleted returns the stored set of completed challenge IDs.
func (p *Progress) GetCompleted() []string {
	raw, ok := p.store.Get(ProgressKey)
	return p.decode(raw, ok)
}

// MarkCompleted adds a challenge ID to the set. Adding an ID that is already
// present is a no-op.
func (p *Progress) MarkCompleted(challengeID string) error {
	return p.store.Update(ProgressKey, func(current string, ok bool) (string, error) {
		completed := p.decode(current, ok)

		for _, id := range completed {
			if id == challengeID {
				data, err := json.Marshal(completed)
				if err != nil {
					return "", err
				}
				return string(data), nil
			}
		}

		data, err := json.Marshal(append(completed, challengeID))
		if err != nil {
			return "", err
		}
		return string(data), nil
	})
}
