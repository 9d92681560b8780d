package store

import (
	"context"
	"testing"

	"codeleap/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProgress is an in-memory ProgressStore whose calls can be forced to
// fail with a chosen error.
type fakeProgress struct {
	completed []string
	err       error
	marks     []string
}

func (f *fakeProgress) GetCompleted(_ context.Context) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.completed, nil
}

func (f *fakeProgress) MarkCompleted(_ context.Context, challengeID string) error {
	if f.err != nil {
		return f.err
	}
	f.marks = append(f.marks, challengeID)
	return nil
}

func TestFallbackGetUsesRemoteWhenHealthy(t *testing.T) {
	remote := &fakeProgress{completed: []string{"ch1", "ch2"}}
	local := &fakeProgress{completed: []string{"local-only"}}
	fb := &FallbackProgress{Remote: remote, Local: local}

	completed, err := fb.GetCompleted(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"ch1", "ch2"}, completed)
}

func TestFallbackGetOnPermissionError(t *testing.T) {
	remote := &fakeProgress{
		err: utils.NewAppError(utils.ErrPermissionDenied, "remote store denied access", nil),
	}
	local := &fakeProgress{completed: []string{"ch3"}}
	fb := &FallbackProgress{Remote: remote, Local: local}

	completed, err := fb.GetCompleted(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"ch3"}, completed)
}

func TestFallbackGetOnAnyError(t *testing.T) {
	remote := &fakeProgress{
		err: utils.NewAppError(utils.ErrDatabase, "connection reset", nil),
	}
	local := &fakeProgress{completed: []string{}}
	fb := &FallbackProgress{Remote: remote, Local: local}

	completed, err := fb.GetCompleted(context.Background())
	require.NoError(t, err)
	assert.Empty(t, completed)
}

func TestFallbackMarkWritesLocallyOnRemoteFailure(t *testing.T) {
	remote := &fakeProgress{
		err: utils.NewAppError(utils.ErrPermissionDenied, "remote store denied access", nil),
	}
	local := &fakeProgress{}
	fb := &FallbackProgress{Remote: remote, Local: local}

	require.NoError(t, fb.MarkCompleted(context.Background(), "ch1"))
	assert.Equal(t, []string{"ch1"}, local.marks)
}

func TestFallbackMarkPrefersRemote(t *testing.T) {
	remote := &fakeProgress{}
	local := &fakeProgress{}
	fb := &FallbackProgress{Remote: remote, Local: local}

	require.NoError(t, fb.MarkCompleted(context.Background(), "ch1"))
	assert.Equal(t, []string{"ch1"}, remote.marks)
	assert.Empty(t, local.marks)
}
