package repo

import (
	"sort"
	"strings"
	"time"

	"tableflip.dev/focus/pkg/entity"
	"tableflip.dev/focus/pkg/store"
)

// RetentionWindow is how long soft-deleted todos stay recoverable before
// PurgeExpired removes them for good.
const RetentionWindow = 30 * 24 * time.Hour

// Todos is the to-do repository.
type Todos struct {
	KV  *store.KV
	Now func() time.Time
}

func (r *Todos) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

// All returns every todo, including soft-deleted ones.
func (r *Todos) All() []entity.Todo {
	return store.Get(r.KV, store.KeyTodos, []entity.Todo{})
}

// Active returns todos that are not in the trash.
func (r *Todos) Active() []entity.Todo {
	all := r.All()
	out := make([]entity.Todo, 0, len(all))
	for _, t := range all {
		if !t.Deleted {
			out = append(out, t)
		}
	}
	return out
}

// Trashed returns soft-deleted todos.
func (r *Todos) Trashed() []entity.Todo {
	all := r.All()
	out := make([]entity.Todo, 0)
	for _, t := range all {
		if t.Deleted {
			out = append(out, t)
		}
	}
	return out
}

// Find returns the todo with the given id.
func (r *Todos) Find(id string) (entity.Todo, error) {
	for _, t := range r.All() {
		if t.ID == id {
			return t, nil
		}
	}
	return entity.Todo{}, ErrNotFound
}

// Focused returns non-deleted todos holding a focus slot, ordered by slot.
func (r *Todos) Focused() []entity.Todo {
	all := r.All()
	out := make([]entity.Todo, 0, 3)
	for _, t := range all {
		if t.InFocus() {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FocusOrder < out[j].FocusOrder })
	return out
}

// HasFocusTasks reports whether any non-deleted todo holds a focus slot.
func (r *Todos) HasFocusTasks() bool {
	for _, t := range r.All() {
		if t.InFocus() {
			return true
		}
	}
	return false
}

// Save replaces the whole collection.
func (r *Todos) Save(list []entity.Todo) error {
	if !store.Set(r.KV, store.KeyTodos, list) {
		return ErrNotPersisted
	}
	return nil
}

// TodoDraft carries the caller-supplied fields for a new todo.
type TodoDraft struct {
	Text      string
	ProjectID string
	Notes     string
}

// Add validates the draft, assigns an id, and persists the new todo. On
// validation failure no record is created and the returned id is empty.
func (r *Todos) Add(d TodoDraft) (string, error) {
	text := strings.TrimSpace(d.Text)
	if text == "" {
		return "", ErrEmptyText
	}
	todo := entity.Todo{
		ID:        entity.NewID("todo"),
		Text:      text,
		ProjectID: d.ProjectID,
		Notes:     d.Notes,
	}
	list := append(r.All(), todo)
	if err := r.Save(list); err != nil {
		return "", err
	}
	return todo.ID, nil
}

// TodoChanges is a partial update; nil fields are left untouched.
type TodoChanges struct {
	Text      *string
	Completed *bool
	ProjectID *string
	Notes     *string
}

// Update merges changes into the todo with the given id. Toggling Completed
// maintains CompletedAt, and FocusCompletedDate when the todo holds a focus
// slot: set on false→true, cleared on true→false, never left stale.
func (r *Todos) Update(id string, ch TodoChanges) (entity.Todo, error) {
	list := r.All()
	for i := range list {
		if list[i].ID != id {
			continue
		}
		t := &list[i]
		if ch.Text != nil {
			t.Text = *ch.Text
		}
		if ch.ProjectID != nil {
			t.ProjectID = *ch.ProjectID
		}
		if ch.Notes != nil {
			t.Notes = *ch.Notes
		}
		if ch.Completed != nil {
			switch {
			case *ch.Completed && !t.Completed:
				now := r.now()
				t.CompletedAt = entity.Stamp(now)
				if t.FocusOrder != 0 {
					t.FocusCompletedDate = entity.Stamp(now)
				}
			case !*ch.Completed && t.Completed:
				t.CompletedAt = nil
				t.FocusCompletedDate = nil
			}
			t.Completed = *ch.Completed
		}
		if err := r.Save(list); err != nil {
			return entity.Todo{}, err
		}
		return *t, nil
	}
	return entity.Todo{}, ErrNotFound
}

// SoftDelete moves the todo to the trash.
func (r *Todos) SoftDelete(id string) error {
	list := r.All()
	for i := range list {
		if list[i].ID == id {
			list[i].Deleted = true
			list[i].DeletedAt = entity.Stamp(r.now())
			return r.Save(list)
		}
	}
	return ErrNotFound
}

// Restore brings a trashed todo back, reopened.
func (r *Todos) Restore(id string) error {
	list := r.All()
	for i := range list {
		if list[i].ID == id {
			list[i].Deleted = false
			list[i].DeletedAt = nil
			list[i].Completed = false
			return r.Save(list)
		}
	}
	return ErrNotFound
}

// Purge removes a todo permanently.
func (r *Todos) Purge(id string) error {
	list := r.All()
	for i := range list {
		if list[i].ID == id {
			list = append(list[:i], list[i+1:]...)
			return r.Save(list)
		}
	}
	return ErrNotFound
}

// PurgeExpired removes soft-deleted todos whose deletion is older than the
// retention window. Running it twice changes nothing the second time.
func (r *Todos) PurgeExpired(now time.Time) (int, error) {
	cutoff := now.Add(-RetentionWindow)
	list := r.All()
	kept := list[:0]
	removed := 0
	for _, t := range list {
		if t.Deleted && t.DeletedAt != nil && t.DeletedAt.Before(cutoff) {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	if removed == 0 {
		return 0, nil
	}
	if err := r.Save(kept); err != nil {
		return 0, err
	}
	return removed, nil
}

// SetFocusOrder assigns (order 1..3) or clears (order 0) a todo's focus
// slot. Assignment stamps FocusSetDate; clearing drops both focus dates.
// Slot uniqueness is not enforced here; coordinated callers vacate the
// target slot first (the facade does).
func (r *Todos) SetFocusOrder(id string, order int) error {
	list := r.All()
	for i := range list {
		if list[i].ID != id {
			continue
		}
		t := &list[i]
		t.FocusOrder = order
		if order != 0 {
			t.FocusSetDate = entity.Stamp(r.now())
		} else {
			t.FocusSetDate = nil
			t.FocusCompletedDate = nil
		}
		return r.Save(list)
	}
	return ErrNotFound
}

// ClearFocus unconditionally vacates every focus slot.
func (r *Todos) ClearFocus() error {
	list := r.All()
	for i := range list {
		list[i].FocusOrder = 0
		list[i].FocusSetDate = nil
		list[i].FocusCompletedDate = nil
	}
	return r.Save(list)
}
