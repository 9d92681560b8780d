package store

import (
	"context"
	"log"

	"codeleap/internal/utils"
)

// FallbackProgress wraps a remote progress store with the local one. Any
// remote failure — permission denied or otherwise — degrades to the local
// set instead of reaching the caller, so the challenge UI never blocks on a
// flaky or misconfigured remote store. The cost is accepted: a user's
// completed set can diverge between devices while remote writes fail.
type FallbackProgress struct {
	Remote ProgressStore
	Local  ProgressStore
}

func (f *FallbackProgress) GetCompleted(ctx context.Context) ([]string, error) {
	completed, err := f.Remote.GetCompleted(ctx)
	if err == nil {
		return completed, nil
	}

	if utils.IsAuthError(err) {
		log.Printf("Remote challenge progress denied access, falling back to local store: %v", err)
	} else {
		log.Printf("Remote challenge progress read failed, falling back to local store: %v", err)
	}
	return f.Local.GetCompleted(ctx)
}

func (f *FallbackProgress) MarkCompleted(ctx context.Context, challengeID string) error {
	err := f.Remote.MarkCompleted(ctx, challengeID)
	if err == nil {
		return nil
	}

	if utils.IsAuthError(err) {
		log.Printf("Remote challenge progress denied access, writing %s locally: %v", challengeID, err)
	} else {
		log.Printf("Remote challenge progress write failed, writing %s locally: %v", challengeID, err)
	}
	return f.Local.MarkCompleted(ctx, challengeID)
}
