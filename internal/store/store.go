// Package store exposes the two persistence modes behind one capability per
// feature. The caller decides once per request which variant it wants —
// remote for an authenticated identity, local otherwise — and the variants
// themselves stay stateless functions of their explicit arguments.
package store

import (
	"context"

	"codeleap/internal/database"
	"codeleap/internal/localstore"
	"codeleap/internal/models"

	"github.com/google/uuid"
)

// SnippetStore persists named code snippets for one scope (a user's remote
// collection, or the shared anonymous local set — never both).
type SnippetStore interface {
	Save(ctx context.Context, snippet *models.Snippet) (*models.Snippet, error)
	GetAll(ctx context.Context) ([]*models.Snippet, error)
	Delete(ctx context.Context, id string) error
}

// ProgressStore tracks which challenge IDs a scope has completed. Adds are
// idempotent and entries are never removed.
type ProgressStore interface {
	GetCompleted(ctx context.Context) ([]string, error)
	MarkCompleted(ctx context.Context, challengeID string) error
}

// Backends bundles the two persistence modes and hands out the right variant
// for a request's identity.
type Backends struct {
	db       *database.MongoDB
	snippets *localstore.Snippets
	progress *localstore.Progress
}

func NewBackends(db *database.MongoDB, local *localstore.Store) *Backends {
	return &Backends{
		db:       db,
		snippets: localstore.NewSnippets(local),
		progress: localstore.NewProgress(local),
	}
}

// SnippetsFor selects the snippet store for an identity. Authenticated
// callers always get the remote store, anonymous callers always the local
// one; a single call never mixes the two.
func (b *Backends) SnippetsFor(userID uuid.UUID, authenticated bool) SnippetStore {
	if authenticated {
		return &RemoteSnippets{db: b.db, userID: userID}
	}
	return &LocalSnippets{snippets: b.snippets}
}

// ProgressFor selects the challenge-progress store. The remote variant is
// wrapped so any remote failure degrades to the local set instead of
// surfacing; anonymous callers go straight to the local set.
func (b *Backends) ProgressFor(userID uuid.UUID, authenticated bool) ProgressStore {
	local := &LocalProgress{progress: b.progress}
	if authenticated {
		return &FallbackProgress{
			Remote: &RemoteProgress{db: b.db, userID: userID},
			Local:  local,
		}
	}
	return local
}

// RemoteSnippets binds the per-user remote snippet collection to one user.
type RemoteSnippets struct {
	db     *database.MongoDB
	userID uuid.UUID
}

func (r *RemoteSnippets) Save(ctx context.Context, snippet *models.Snippet) (*models.Snippet, error) {
	return r.db.SaveSnippet(ctx, r.userID, snippet)
}

func (r *RemoteSnippets) GetAll(ctx context.Context) ([]*models.Snippet, error) {
	return r.db.GetSnippets(ctx, r.userID)
}

func (r *RemoteSnippets) Delete(ctx context.Context, id string) error {
	return r.db.DeleteSnippet(ctx, r.userID, id)
}

// LocalSnippets serves the anonymous snippet set. The local store is
// synchronous, so the context is accepted only to satisfy the capability.
type LocalSnippets struct {
	snippets *localstore.Snippets
}

func (l *LocalSnippets) Save(_ context.Context, snippet *models.Snippet) (*models.Snippet, error) {
	return l.snippets.Save(snippet)
}

func (l *LocalSnippets) GetAll(_ context.Context) ([]*models.Snippet, error) {
	return l.snippets.GetAll(), nil
}

func (l *LocalSnippets) Delete(_ context.Context, id string) error {
	return l.snippets.Delete(id)
}

// RemoteProgress binds the remote challenge-progress record to one user.
type RemoteProgress struct {
	db     *database.MongoDB
	userID uuid.UUID
}

func (r *RemoteProgress) GetCompleted(ctx context.Context) ([]string, error) {
	return r.db.GetCompletedChallenges(ctx, r.userID)
}

func (r *RemoteProgress) MarkCompleted(ctx context.Context, challengeID string) error {
	return r.db.MarkChallengeCompleted(ctx, r.userID, challengeID)
}

// LocalProgress serves the anonymous completed-challenge set.
type LocalProgress struct {
	progress *localstore.Progress
}

func (l *LocalProgress) GetCompleted(_ context.Context) ([]string, error) {
	return l.progress.GetCompleted(), nil
}

func (l *LocalProgress) MarkCompleted(_ context.Context, challengeID string) error {
	return l.progress.MarkCompleted(challengeID)
}
