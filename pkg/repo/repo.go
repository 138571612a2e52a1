// Package repo provides the typed collections persisted in the key-value
// store: todos, projects, and work sessions. Each repository loads its
// collection, applies one mutation, and persists the result before
// returning, so callers observe every operation as atomic.
package repo

import "errors"

var (
	ErrNotFound      = errors.New("repo: record not found")
	ErrEmptyText     = errors.New("repo: todo text cannot be empty")
	ErrEmptyName     = errors.New("repo: project name cannot be empty")
	ErrDuplicateName = errors.New("repo: project name already exists")

	// ErrNotPersisted signals that the mutation did not reach disk. The
	// caller-facing contract is a failure report, never a panic.
	ErrNotPersisted = errors.New("repo: storage write failed, changes may not persist")
)
