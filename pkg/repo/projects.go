package repo

import (
	"sort"
	"strings"
	"time"

	"tableflip.dev/focus/pkg/entity"
	"tableflip.dev/focus/pkg/store"
)

// Projects is the project repository. Renames and deletes cascade through
// the todo and session collections before returning, so referencing records
// never point at a name that no longer exists.
type Projects struct {
	KV       *store.KV
	Todos    *Todos
	Sessions *Sessions
	Now      func() time.Time
}

func (r *Projects) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

// All returns every project, sorted by name.
func (r *Projects) All() []entity.Project {
	return store.Get(r.KV, store.KeyProjects, []entity.Project{})
}

// Find returns the project with the given id.
func (r *Projects) Find(id string) (entity.Project, error) {
	for _, p := range r.All() {
		if p.ID == id {
			return p, nil
		}
	}
	return entity.Project{}, ErrNotFound
}

// FindByName returns the project with the exact name. Matching is
// case-sensitive: "Work" and "work" are distinct projects.
func (r *Projects) FindByName(name string) (entity.Project, error) {
	for _, p := range r.All() {
		if p.Name == name {
			return p, nil
		}
	}
	return entity.Project{}, ErrNotFound
}

// Save replaces the whole collection, keeping it name-sorted.
func (r *Projects) Save(list []entity.Project) error {
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	if !store.Set(r.KV, store.KeyProjects, list) {
		return ErrNotPersisted
	}
	return nil
}

// Add creates a project. Names must be non-empty and unique; a failed add
// leaves the collection untouched.
func (r *Projects) Add(name string) (entity.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entity.Project{}, ErrEmptyName
	}
	if _, err := r.FindByName(name); err == nil {
		return entity.Project{}, ErrDuplicateName
	}
	p := entity.Project{
		ID:        entity.NewID("project"),
		Name:      name,
		CreatedAt: entity.At(r.now()),
	}
	if err := r.Save(append(r.All(), p)); err != nil {
		return entity.Project{}, err
	}
	return p, nil
}

// UpdateNotes replaces a project's notes.
func (r *Projects) UpdateNotes(id, notes string) error {
	list := r.All()
	for i := range list {
		if list[i].ID == id {
			list[i].Notes = notes
			return r.Save(list)
		}
	}
	return ErrNotFound
}

// Archive hides a project from active pickers without touching its records.
func (r *Projects) Archive(id string) error {
	list := r.All()
	for i := range list {
		if list[i].ID == id {
			list[i].Archived = true
			list[i].ArchivedAt = entity.Stamp(r.now())
			return r.Save(list)
		}
	}
	return ErrNotFound
}

// Unarchive returns an archived project to the active set.
func (r *Projects) Unarchive(id string) error {
	list := r.All()
	for i := range list {
		if list[i].ID == id {
			list[i].Archived = false
			list[i].ArchivedAt = nil
			return r.Save(list)
		}
	}
	return ErrNotFound
}

// Rename changes a project's name and propagates the new name to every todo
// and session referencing the old one. The new name must be unique.
func (r *Projects) Rename(id, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return ErrEmptyName
	}
	if existing, err := r.FindByName(newName); err == nil && existing.ID != id {
		return ErrDuplicateName
	}
	list := r.All()
	for i := range list {
		if list[i].ID != id {
			continue
		}
		oldName := list[i].Name
		if oldName == newName {
			return nil
		}
		if err := r.reassignReferences(oldName, newName); err != nil {
			return err
		}
		list[i].Name = newName
		return r.Save(list)
	}
	return ErrNotFound
}

// Delete removes a project and reassigns every referencing todo and session
// to the "no project" sentinel (the empty string).
func (r *Projects) Delete(id string) error {
	list := r.All()
	for i := range list {
		if list[i].ID != id {
			continue
		}
		if err := r.reassignReferences(list[i].Name, ""); err != nil {
			return err
		}
		list = append(list[:i], list[i+1:]...)
		return r.Save(list)
	}
	return ErrNotFound
}

func (r *Projects) reassignReferences(oldName, newName string) error {
	if r.Todos != nil {
		todos := r.Todos.All()
		changed := false
		for i := range todos {
			if todos[i].ProjectID == oldName {
				todos[i].ProjectID = newName
				changed = true
			}
		}
		if changed {
			if err := r.Todos.Save(todos); err != nil {
				return err
			}
		}
	}
	if r.Sessions != nil {
		sessions := r.Sessions.All()
		changed := false
		for i := range sessions {
			if sessions[i].Project == oldName {
				sessions[i].Project = newName
				changed = true
			}
		}
		if changed {
			if err := r.Sessions.Save(sessions); err != nil {
				return err
			}
		}
	}
	return nil
}
