package repo

import (
	"errors"
	"time"

	"tableflip.dev/focus/pkg/entity"
	"tableflip.dev/focus/pkg/store"
)

// Sessions is the tracked-work-session repository.
type Sessions struct {
	KV  *store.KV
	Now func() time.Time
}

func (r *Sessions) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

// All returns every recorded session.
func (r *Sessions) All() []entity.Session {
	return store.Get(r.KV, store.KeySessions, []entity.Session{})
}

// ForTodo returns sessions linked to the given todo.
func (r *Sessions) ForTodo(todoID string) []entity.Session {
	all := r.All()
	out := make([]entity.Session, 0)
	for _, s := range all {
		if s.TodoID == todoID {
			out = append(out, s)
		}
	}
	return out
}

// InWindow returns sessions whose start time falls in [since, until].
func (r *Sessions) InWindow(since, until time.Time) []entity.Session {
	out := make([]entity.Session, 0)
	for _, s := range r.All() {
		if s.StartTime.Before(since) || s.StartTime.After(until) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Save replaces the whole collection.
func (r *Sessions) Save(list []entity.Session) error {
	if !store.Set(r.KV, store.KeySessions, list) {
		return ErrNotPersisted
	}
	return nil
}

// SessionDraft carries the fields for a new session.
type SessionDraft struct {
	StartTime   time.Time
	DurationMs  int64
	Description string
	Project     string
	TodoID      string
}

// Add records a session and returns its id.
func (r *Sessions) Add(d SessionDraft) (string, error) {
	if d.DurationMs <= 0 {
		return "", errors.New("repo: session duration must be positive")
	}
	start := d.StartTime
	if start.IsZero() {
		start = r.now()
	}
	s := entity.Session{
		ID:          entity.NewID("session"),
		StartTime:   entity.At(start),
		DurationMs:  d.DurationMs,
		Description: d.Description,
		Project:     d.Project,
		TodoID:      d.TodoID,
	}
	if err := r.Save(append(r.All(), s)); err != nil {
		return "", err
	}
	return s.ID, nil
}

// SessionChanges is a partial update; nil fields are left untouched.
type SessionChanges struct {
	Description *string
	Project     *string
}

// Update merges changes into the session with the given id.
func (r *Sessions) Update(id string, ch SessionChanges) (entity.Session, error) {
	list := r.All()
	for i := range list {
		if list[i].ID != id {
			continue
		}
		if ch.Description != nil {
			list[i].Description = *ch.Description
		}
		if ch.Project != nil {
			list[i].Project = *ch.Project
		}
		if err := r.Save(list); err != nil {
			return entity.Session{}, err
		}
		return list[i], nil
	}
	return entity.Session{}, ErrNotFound
}
