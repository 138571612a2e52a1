package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/focus/pkg/store"
)

func setupRepos(t *testing.T) (*Todos, *Projects, *Sessions) {
	t.Helper()
	kv, err := store.Open(dirConfig(t.TempDir()), store.Options{})
	require.NoError(t, err)
	todos := &Todos{KV: kv}
	sessions := &Sessions{KV: kv}
	projects := &Projects{KV: kv, Todos: todos, Sessions: sessions}
	return todos, projects, sessions
}

func TestAddProject(t *testing.T) {
	_, projects, _ := setupRepos(t)

	p, err := projects.Add("Work")
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "Work", p.Name)
	assert.False(t, p.CreatedAt.IsZero())
}

func TestAddProjectValidation(t *testing.T) {
	_, projects, _ := setupRepos(t)

	_, err := projects.Add("  ")
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = projects.Add("Work")
	require.NoError(t, err)
	_, err = projects.Add("Work")
	assert.ErrorIs(t, err, ErrDuplicateName)
	assert.Len(t, projects.All(), 1, "failed add must not mutate state")

	// Uniqueness is case-sensitive.
	_, err = projects.Add("work")
	assert.NoError(t, err)
}

func TestProjectsSortedByName(t *testing.T) {
	_, projects, _ := setupRepos(t)
	for _, name := range []string{"Writing", "Admin", "Learning"} {
		_, err := projects.Add(name)
		require.NoError(t, err)
	}
	all := projects.All()
	require.Len(t, all, 3)
	assert.Equal(t, []string{"Admin", "Learning", "Writing"},
		[]string{all[0].Name, all[1].Name, all[2].Name})
}

func TestDeleteProjectCascades(t *testing.T) {
	todos, projects, sessions := setupRepos(t)

	p, err := projects.Add("Work")
	require.NoError(t, err)
	todoID, err := todos.Add(TodoDraft{Text: "task", ProjectID: "Work"})
	require.NoError(t, err)
	otherID, err := todos.Add(TodoDraft{Text: "other", ProjectID: "Home"})
	require.NoError(t, err)
	_, err = sessions.Add(SessionDraft{DurationMs: 60_000, Description: "deep work", Project: "Work"})
	require.NoError(t, err)

	require.NoError(t, projects.Delete(p.ID))

	todo, err := todos.Find(todoID)
	require.NoError(t, err)
	assert.Empty(t, todo.ProjectID, "referencing todos move to the no-project sentinel")
	other, err := todos.Find(otherID)
	require.NoError(t, err)
	assert.Equal(t, "Home", other.ProjectID)
	assert.Empty(t, sessions.All()[0].Project)
	assert.Empty(t, projects.All())
}

func TestRenameProjectCascades(t *testing.T) {
	todos, projects, sessions := setupRepos(t)

	p, err := projects.Add("Work")
	require.NoError(t, err)
	todoID, err := todos.Add(TodoDraft{Text: "task", ProjectID: "Work"})
	require.NoError(t, err)
	_, err = sessions.Add(SessionDraft{DurationMs: 60_000, Description: "deep work", Project: "Work"})
	require.NoError(t, err)

	require.NoError(t, projects.Rename(p.ID, "Client A"))

	todo, err := todos.Find(todoID)
	require.NoError(t, err)
	assert.Equal(t, "Client A", todo.ProjectID)
	assert.Equal(t, "Client A", sessions.All()[0].Project)

	renamed, err := projects.Find(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Client A", renamed.Name)
}

func TestRenameProjectDuplicate(t *testing.T) {
	_, projects, _ := setupRepos(t)
	p, err := projects.Add("Work")
	require.NoError(t, err)
	_, err = projects.Add("Home")
	require.NoError(t, err)

	assert.ErrorIs(t, projects.Rename(p.ID, "Home"), ErrDuplicateName)

	kept, err := projects.Find(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Work", kept.Name)
}

func TestArchiveProject(t *testing.T) {
	_, projects, _ := setupRepos(t)
	p, err := projects.Add("Work")
	require.NoError(t, err)

	require.NoError(t, projects.Archive(p.ID))
	archived, err := projects.Find(p.ID)
	require.NoError(t, err)
	assert.True(t, archived.Archived)
	assert.NotNil(t, archived.ArchivedAt)

	require.NoError(t, projects.Unarchive(p.ID))
	active, err := projects.Find(p.ID)
	require.NoError(t, err)
	assert.False(t, active.Archived)
	assert.Nil(t, active.ArchivedAt)
}

func TestSessionAddAndQuery(t *testing.T) {
	_, _, sessions := setupRepos(t)

	_, err := sessions.Add(SessionDraft{DurationMs: 0, Description: "bad"})
	assert.Error(t, err)

	id, err := sessions.Add(SessionDraft{DurationMs: 25 * 60 * 1000, Description: "pomodoro", TodoID: "todo_1"})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	forTodo := sessions.ForTodo("todo_1")
	require.Len(t, forTodo, 1)
	assert.Equal(t, "pomodoro", forTodo[0].Description)
	assert.Empty(t, sessions.ForTodo("todo_2"))
}
