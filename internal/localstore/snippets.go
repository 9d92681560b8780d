package localstore

import (
	"encoding/json"
	"log"
	"sort"
	"time"

	"codeleap/internal/models"

	"github.com/rs/xid"
)

// Snippets persists anonymous users' snippets under a single key.
type Snippets struct {
	store *Store
}

func NewSnippets(store *Store) *Snippets {
	return &Snippets{store: store}
}

func (s *Snippets) decode(raw string, ok bool) []*models.Snippet {
	if !ok || raw == "" {
		return []*models.Snippet{}
	}

	var snippets []*models.Snippet
	if err := json.Unmarshal([]byte(raw), &snippets); err != nil {
		log.Printf("Corrupt local snippet list, treating as empty: %v", err)
		return []*models.Snippet{}
	}
	return snippets
}

// Save stores a snippet with a time-ordered ID and the current time, and
// prepends it so the stored order is already newest-first.
func (s *Snippets) Save(snippet *models.Snippet) (*models.Snippet, error) {
	saved := &models.Snippet{
		ID:        xid.New().String(),
		Name:      snippet.Name,
		Language:  snippet.Language,
		Code:      snippet.Code,
		CreatedAt: time.Now(),
	}

	err := s.store.Update(SnippetsKey, func(current string, ok bool) (string, error) {
		snippets := append([]*models.Snippet{saved}, s.decode(current, ok)...)
		data, err := json.Marshal(snippets)
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

// GetAll returns the stored snippets, newest first. Writes already keep that
// order, but sorting on read keeps the contract even if the underlying file
// was edited by hand.
func (s *Snippets) GetAll() []*models.Snippet {
	raw, ok := s.store.Get(SnippetsKey)
	snippets := s.decode(raw, ok)

	sort.SliceStable(snippets, func(i, j int) bool {
		return snippets[i].CreatedAt.After(snippets[j].CreatedAt)
	})
	return snippets
}

// Delete removes a snippet by ID. Deleting an absent ID leaves the stored
// set unchanged and reports no error.
func (s *Snippets) Delete(id string) error {
	return s.store.Update(SnippetsKey, func(current string, ok bool) (string, error) {
		snippets := s.decode(current, ok)

		kept := snippets[:0]
		for _, snippet := range snippets {
			if snippet.ID != id {
				kept = append(kept, snippet)
			}
		}

		data, err := json.Marshal(kept)
		if err != nil {
			return "", err
		}
		return string(data), nil
	})
}
