package track

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/focus/pkg/app"
	"tableflip.dev/focus/pkg/repo"
	"tableflip.dev/focus/pkg/store"
)

type dirConfig struct {
	path string
}

func (d dirConfig) BasePath() string {
	return d.path
}

func setup(t *testing.T) *app.Service {
	t.Helper()
	kv, err := store.Open(dirConfig{path: t.TempDir()}, store.Options{})
	require.NoError(t, err)
	return app.New(kv)
}

func TestRecordsSession(t *testing.T) {
	s := setup(t)

	n := Track{
		Duration:    25 * time.Minute,
		Description: "wrote the deck",
		Project:     "backend",
		Service:     s,
	}
	require.NoError(t, n.Do(context.Background()))

	sessions := s.Sessions.All()
	require.Len(t, sessions, 1)
	assert.Equal(t, int64(25*60*1000), sessions[0].DurationMs)
	assert.Equal(t, "backend", sessions[0].Project)
}

func TestListShowsSessionsNewestFirst(t *testing.T) {
	s := setup(t)
	now := time.Now()
	for i, desc := range []string{"oldest", "middle", "newest"} {
		_, err := s.Sessions.Add(repo.SessionDraft{
			StartTime:   now.Add(-time.Duration(2-i) * time.Hour),
			DurationMs:  60_000,
			Description: desc,
		})
		require.NoError(t, err)
	}

	n := Track{List: true, Service: s}
	require.NoError(t, n.Do(context.Background()))

	sessions := s.Sessions.All()
	newestFirst(sessions)
	require.Len(t, sessions, 3)
	assert.Equal(t, "newest", sessions[0].Description)
	assert.Equal(t, "oldest", sessions[2].Description)
}
