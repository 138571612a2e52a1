package get

import (
	"context"
	"testing"

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

func TestFilteredHidesCompletedByDefault(t *testing.T) {
	s := setup(t)
	open, err := s.Todos.Add(repo.TodoDraft{Text: "open"})
	require.NoError(t, err)
	doneID, err := s.Todos.Add(repo.TodoDraft{Text: "done", ProjectID: "backend"})
	require.NoError(t, err)
	done := true
	_, err = s.Todos.Update(doneID, repo.TodoChanges{Completed: &done})
	require.NoError(t, err)

	n := Get{Service: s}
	got := n.filtered(s.Todos.Active())
	require.Len(t, got, 1)
	assert.Equal(t, open, got[0].ID)

	n = Get{Completed: true, Project: "backend", Service: s}
	got = n.filtered(s.Todos.Active())
	require.Len(t, got, 1)
	assert.Equal(t, doneID, got[0].ID)
}

func TestJSONOutputRuns(t *testing.T) {
	s := setup(t)
	_, err := s.Todos.Add(repo.TodoDraft{Text: "serialize me"})
	require.NoError(t, err)

	n := Get{Output: "json", Service: s}
	require.NoError(t, n.Do(context.Background()))

	n = Get{Output: "json", Focus: true, Service: s}
	require.NoError(t, n.Do(context.Background()))
}

func TestFocusListsOnlySlotted(t *testing.T) {
	s := setup(t)
	id, err := s.Todos.Add(repo.TodoDraft{Text: "slotted"})
	require.NoError(t, err)
	_, err = s.Todos.Add(repo.TodoDraft{Text: "unslotted"})
	require.NoError(t, err)
	require.NoError(t, s.SetFocusOrder(id, 2))

	n := Get{Focus: true, Service: s}
	require.NoError(t, n.Do(context.Background()))

	focused := s.TodaysFocus()
	require.Len(t, focused, 1)
	assert.Equal(t, id, focused[0].ID)
}
