// Package app composes the store, repositories, and the daily reset state
// machine into one service the CLI (and any other front end) talks to. It
// adds no domain logic of its own beyond composition and call ordering.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"tableflip.dev/focus/pkg/entity"
	"tableflip.dev/focus/pkg/focus"
	"tableflip.dev/focus/pkg/repo"
	"tableflip.dev/focus/pkg/store"
)

// PurgeCadence is how often the background sweep of expired trash runs in
// long-lived sessions. Every launch also sweeps once up front.
const PurgeCadence = 24 * time.Hour

// Service is the facade over the whole core.
type Service struct {
	KV       *store.KV
	Todos    *repo.Todos
	Projects *repo.Projects
	Sessions *repo.Sessions
	Focus    *focus.Store
	Reset    *focus.Reset
}

// New wires a Service over the given store and runs the one-time legacy
// data migration so repositories only ever see current shapes.
func New(kv *store.KV) *Service {
	todos := &repo.Todos{KV: kv}
	sessions := &repo.Sessions{KV: kv}
	projects := &repo.Projects{KV: kv, Todos: todos, Sessions: sessions}
	focusStore := &focus.Store{KV: kv}
	s := &Service{
		KV:       kv,
		Todos:    todos,
		Projects: projects,
		Sessions: sessions,
		Focus:    focusStore,
		Reset:    &focus.Reset{Todos: todos, Store: focusStore},
	}
	s.migrateLegacyProjects()
	return s
}

// OnLaunch runs the once-per-launch housekeeping: sweep expired trash, then
// evaluate the daily reset decision. Callers receiving ResetRequired must
// confirm with the user before invoking ApplyReset, and call DismissReset
// when the prompt is waved away.
func (s *Service) OnLaunch() (focus.Decision, error) {
	if n, err := s.Todos.PurgeExpired(time.Now()); err != nil {
		fmt.Fprintf(os.Stderr, "app: purge expired: %v\n", err)
	} else if n > 0 {
		fmt.Fprintf(os.Stderr, "app: cleaned up %d old deleted task(s)\n", n)
	}
	return s.Reset.OnLaunch()
}

// TodaysFocus returns the current Top-3 list: slotted, not deleted, ordered
// by position.
func (s *Service) TodaysFocus() []entity.Todo {
	return s.Todos.Focused()
}

// SetFocusOrder assigns a todo to a slot (1..3), vacating whichever todo
// currently holds that slot first so a slot never has two occupants. Order 0
// clears the todo's slot.
func (s *Service) SetFocusOrder(todoID string, order int) error {
	if order < 0 || order > 3 {
		return fmt.Errorf("app: focus order must be 1..3 (or 0 to clear), got %d", order)
	}
	if order != 0 {
		for _, occupant := range s.Todos.Focused() {
			if occupant.FocusOrder == order && occupant.ID != todoID {
				if err := s.Todos.SetFocusOrder(occupant.ID, 0); err != nil {
					return err
				}
			}
		}
	}
	return s.Todos.SetFocusOrder(todoID, order)
}

// ClearFocusTasks vacates every slot outside the daily-reset flow.
func (s *Service) ClearFocusTasks() error {
	return s.Todos.ClearFocus()
}

// ApplyReset retires today's focus set under the given type.
func (s *Service) ApplyReset(resetType entity.ResetType) error {
	return s.Reset.Apply(resetType)
}

// DismissReset acknowledges the reset prompt without mutating todos.
func (s *Service) DismissReset() error {
	return s.Reset.Dismiss()
}

// StartPurgeLoop sweeps expired trash on a fixed cadence until ctx is
// cancelled. The sweep is idempotent, so overlapping with user edits is
// harmless. Used by long-running sessions; one-shot commands rely on the
// OnLaunch sweep.
func (s *Service) StartPurgeLoop(ctx context.Context, every time.Duration) {
	if every <= 0 {
		every = PurgeCadence
	}
	go func() {
		ticker := time.NewTicker(every)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := s.Todos.PurgeExpired(time.Now()); err != nil {
					fmt.Fprintf(os.Stderr, "app: purge expired: %v\n", err)
				}
			}
		}
	}()
}

// ResetAllData wipes every persisted key under the application's namespace.
// This is the boundary escape hatch for repeated catastrophic storage
// failures; there is no undo.
func (s *Service) ResetAllData() error {
	return s.KV.EraseAll()
}
