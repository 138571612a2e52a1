package app

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/focus/pkg/entity"
	"tableflip.dev/focus/pkg/focus"
	"tableflip.dev/focus/pkg/repo"
	"tableflip.dev/focus/pkg/store"
)

func repoDraft(text string) repo.TodoDraft {
	return repo.TodoDraft{Text: text}
}

func repoSession(project string, ms int64, start time.Time) repo.SessionDraft {
	return repo.SessionDraft{Project: project, DurationMs: ms, StartTime: start}
}

func repoCompleted(done *bool) repo.TodoChanges {
	return repo.TodoChanges{Completed: done}
}

type dirConfig struct {
	path string
}

func (d dirConfig) BasePath() string {
	return d.path
}

func setup(t *testing.T) *Service {
	t.Helper()
	kv, err := store.Open(dirConfig{path: t.TempDir()}, store.Options{})
	require.NoError(t, err)
	return New(kv)
}

func TestNewMigratesLegacyProjectNames(t *testing.T) {
	kv, err := store.Open(dirConfig{path: t.TempDir()}, store.Options{})
	require.NoError(t, err)
	require.True(t, kv.SetRaw(store.KeyProjects, []byte(`["Work","Personal",""]`)))

	s := New(kv)

	projects := s.Projects.All()
	require.Len(t, projects, 2)
	names := []string{projects[0].Name, projects[1].Name}
	assert.ElementsMatch(t, []string{"Work", "Personal"}, names)
	for _, p := range projects {
		assert.NotEmpty(t, p.ID)
		assert.False(t, p.CreatedAt.IsZero())
	}
}

func TestNewLeavesCurrentProjectsAlone(t *testing.T) {
	s := setup(t)
	p, err := s.Projects.Add("Work")
	require.NoError(t, err)

	again := New(s.KV)
	got, err := again.Projects.Find(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Work", got.Name)
	assert.Len(t, again.Projects.All(), 1)
}

func TestSetFocusOrderVacatesOccupiedSlot(t *testing.T) {
	s := setup(t)
	first, err := s.Todos.Add(repoDraft("first"))
	require.NoError(t, err)
	second, err := s.Todos.Add(repoDraft("second"))
	require.NoError(t, err)

	require.NoError(t, s.SetFocusOrder(first, 1))
	require.NoError(t, s.SetFocusOrder(second, 1))

	focused := s.TodaysFocus()
	require.Len(t, focused, 1)
	assert.Equal(t, second, focused[0].ID)

	prior, err := s.Todos.Find(first)
	require.NoError(t, err)
	assert.Equal(t, 0, prior.FocusOrder)
}

func TestSetFocusOrderSameTodoKeepsSlot(t *testing.T) {
	s := setup(t)
	id, err := s.Todos.Add(repoDraft("only"))
	require.NoError(t, err)

	require.NoError(t, s.SetFocusOrder(id, 2))
	require.NoError(t, s.SetFocusOrder(id, 2))

	focused := s.TodaysFocus()
	require.Len(t, focused, 1)
	assert.Equal(t, 2, focused[0].FocusOrder)
}

func TestSetFocusOrderRejectsOutOfRange(t *testing.T) {
	s := setup(t)
	id, err := s.Todos.Add(repoDraft("task"))
	require.NoError(t, err)

	assert.Error(t, s.SetFocusOrder(id, 4))
	assert.Error(t, s.SetFocusOrder(id, -1))
}

func TestOnLaunchPurgesExpiredTrash(t *testing.T) {
	s := setup(t)
	id, err := s.Todos.Add(repoDraft("stale"))
	require.NoError(t, err)
	require.NoError(t, s.Todos.SoftDelete(id))

	// Backdate the deletion past the retention window.
	list := s.Todos.All()
	old := entity.At(time.Now().Add(-31 * 24 * time.Hour))
	for i := range list {
		if list[i].ID == id {
			list[i].DeletedAt = &old
		}
	}
	require.NoError(t, s.Todos.Save(list))

	decision, err := s.OnLaunch()
	require.NoError(t, err)
	assert.Equal(t, focus.NoReset, decision)
	assert.Empty(t, s.Todos.Trashed())
}

func TestReportAggregatesByProject(t *testing.T) {
	s := setup(t)
	now := time.Now()
	add := func(project string, ms int64, ago time.Duration) {
		t.Helper()
		_, err := s.Sessions.Add(repoSession(project, ms, now.Add(-ago)))
		require.NoError(t, err)
	}
	add("deep-work", 3_600_000, time.Hour)
	add("deep-work", 1_800_000, 2*time.Hour)
	add("email", 600_000, 3*time.Hour)
	add("email", 600_000, 30*24*time.Hour) // outside the window

	r := s.Report(now.Add(-24*time.Hour), now)
	assert.Equal(t, int64(6_000_000), r.TotalMs)
	assert.Equal(t, 3, r.SessionCount)
	assert.Equal(t, 8.0, r.GoalHours)
	require.Len(t, r.Projects, 2)
	assert.Equal(t, "deep-work", r.Projects[0].Project)
	assert.Equal(t, int64(5_400_000), r.Projects[0].DurationMs)
	assert.Equal(t, 2, r.Projects[0].Sessions)
}

func TestReportSwapsInvertedBounds(t *testing.T) {
	s := setup(t)
	now := time.Now()
	_, err := s.Sessions.Add(repoSession("", 60_000, now.Add(-time.Hour)))
	require.NoError(t, err)

	r := s.Report(now, now.Add(-24*time.Hour))
	assert.Equal(t, 1, r.SessionCount)
}

func TestExportImportRoundTrip(t *testing.T) {
	s := setup(t)
	_, err := s.Todos.Add(repoDraft("carry me over"))
	require.NoError(t, err)
	_, err = s.Projects.Add("Work")
	require.NoError(t, err)

	payload := s.Export()
	require.Contains(t, payload, store.KeyTodos)
	require.Contains(t, payload, store.KeyProjects)

	other := setup(t)
	require.NoError(t, other.Import(payload))
	assert.Len(t, other.Todos.All(), 1)
	assert.Len(t, other.Projects.All(), 1)
	assert.Equal(t, "carry me over", other.Todos.All()[0].Text)
}

func TestImportRejectsUnknownKey(t *testing.T) {
	s := setup(t)
	err := s.Import(map[string]json.RawMessage{"mystery": []byte(`{}`)})
	assert.Error(t, err)
}

func TestImportRejectsInvalidJSON(t *testing.T) {
	s := setup(t)
	err := s.Import(map[string]json.RawMessage{store.KeyTodos: []byte(`{nope`)})
	assert.Error(t, err)
	assert.Empty(t, s.Todos.All())
}

func TestSummarizeCountsAndDateRange(t *testing.T) {
	s := setup(t)
	id, err := s.Todos.Add(repoDraft("done already"))
	require.NoError(t, err)
	done := true
	_, err = s.Todos.Update(id, repoCompleted(&done))
	require.NoError(t, err)
	_, err = s.Todos.Add(repoDraft("still open"))
	require.NoError(t, err)

	summary := Summarize(s.Export())
	assert.Equal(t, 2, summary.Counts[store.KeyTodos])
	assert.False(t, summary.Oldest.IsZero())
	assert.False(t, summary.Newest.Before(summary.Oldest))
}

func TestResetAllDataWipesEveryKey(t *testing.T) {
	s := setup(t)
	_, err := s.Todos.Add(repoDraft("gone soon"))
	require.NoError(t, err)
	_, err = s.Projects.Add("Work")
	require.NoError(t, err)
	require.NoError(t, s.Focus.SetDailyGoalHours(6))

	require.NoError(t, s.ResetAllData())

	assert.Empty(t, s.Todos.All())
	assert.Empty(t, s.Projects.All())
	assert.Equal(t, entity.DefaultDailyGoalHours, s.Focus.DailyGoalHours())
}
