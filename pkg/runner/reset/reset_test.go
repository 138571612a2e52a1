package reset

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/focus/pkg/app"
	"tableflip.dev/focus/pkg/entity"
	"tableflip.dev/focus/pkg/repo"
	"tableflip.dev/focus/pkg/store"
	"tableflip.dev/focus/pkg/timeutil"
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

func seedFocus(t *testing.T, s *app.Service) string {
	t.Helper()
	id, err := s.Todos.Add(repo.TodoDraft{Text: "prep the demo"})
	require.NoError(t, err)
	require.NoError(t, s.SetFocusOrder(id, 1))
	return id
}

func TestApplyWithExplicitType(t *testing.T) {
	s := setup(t)
	seedFocus(t, s)

	n := Reset{Apply: true, Type: "continued", Service: s}
	require.NoError(t, n.Do(context.Background()))

	history := s.Focus.History()
	require.Len(t, history, 1)
	assert.Equal(t, entity.ResetContinued, history[0].ResetType)
	// continued keeps the slots occupied.
	assert.Len(t, s.TodaysFocus(), 1)
}

func TestApplyWithUnknownTypeFails(t *testing.T) {
	s := setup(t)
	seedFocus(t, s)

	n := Reset{Apply: true, Type: "bogus", Service: s}
	require.Error(t, n.Do(context.Background()))
	assert.Empty(t, s.Focus.History())
}

func TestApplyDefaultsFromSettings(t *testing.T) {
	s := setup(t)
	seedFocus(t, s)

	// Defaults preserve incomplete tasks, so the slot survives.
	n := Reset{Apply: true, Service: s}
	require.NoError(t, n.Do(context.Background()))

	history := s.Focus.History()
	require.Len(t, history, 1)
	assert.Equal(t, entity.ResetPreserveIncomplete, history[0].ResetType)
	assert.Len(t, s.TodaysFocus(), 1)
}

func TestCheckAdvancesMarkerWhenQuiet(t *testing.T) {
	s := setup(t)
	lastWeek := timeutil.DayOf(time.Now().AddDate(0, 0, -7))
	require.NoError(t, s.Focus.MarkLaunch(lastWeek))

	n := Reset{Service: s}
	require.NoError(t, n.Do(context.Background()))

	assert.Equal(t, timeutil.Today(), s.Focus.LastLaunch())
}
