package focus

import (
	"errors"
	"fmt"
	"time"

	"tableflip.dev/focus/pkg/entity"
	"tableflip.dev/focus/pkg/repo"
	"tableflip.dev/focus/pkg/timeutil"
)

var errNotPersisted = errors.New("focus: storage write failed, changes may not persist")

// Decision is the outcome of the once-per-launch reset check.
type Decision int

const (
	// NoReset means nothing to do; the day continues.
	NoReset Decision = iota

	// ResetRequired means a new day has begun with focus tasks still
	// slotted; the caller must ask the user (or apply its configured
	// policy) before mutating anything.
	ResetRequired
)

func (d Decision) String() string {
	if d == ResetRequired {
		return "reset-required"
	}
	return "no-reset"
}

// Evaluate is the daily reset decision procedure, free of I/O. A reset is
// required exactly when auto-reset is on, a launch day was previously
// recorded, that day differs from today, and at least one focus task exists.
//
// The comparison is plain day-string equality: yesterday, last week, and a
// future-dated marker (clock skew) all count as "different day" and trigger
// the prompt rather than silently skipping it. The configured reset
// time-of-day does not gate this decision.
func Evaluate(autoReset bool, lastLaunch, today timeutil.Day, hasFocusTasks bool) Decision {
	if !autoReset {
		return NoReset
	}
	if lastLaunch == "" {
		return NoReset
	}
	if lastLaunch != today && hasFocusTasks {
		return ResetRequired
	}
	return NoReset
}

// Reset runs the launch-time decision and applies the chosen reset.
type Reset struct {
	Todos *repo.Todos
	Store *Store
	Now   func() time.Time
}

func (r *Reset) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

// OnLaunch evaluates the reset decision for this application launch. Every
// NoReset launch records today as the last-launch day, so the marker always
// names the most recent launch. When a reset is required the marker stays
// put until Apply or Dismiss; a crash before the user answers re-prompts on
// the next launch.
func (r *Reset) OnLaunch() (Decision, error) {
	settings := r.Store.Settings()
	today := timeutil.DayOf(r.now())
	last := r.Store.LastLaunch()

	if settings.AutoResetEnabled && last != "" {
		if d := Evaluate(true, last, today, r.Todos.HasFocusTasks()); d == ResetRequired {
			return d, nil
		}
	}
	if err := r.Store.MarkLaunch(today); err != nil {
		return NoReset, err
	}
	return NoReset, nil
}

// Apply retires the current focus set under the given reset type: snapshot
// to history (when there is anything to snapshot), mutate todos per type,
// then record the launch. Marking the launch is deliberately the last write,
// so a crash mid-reset re-prompts instead of losing the day.
func (r *Reset) Apply(resetType entity.ResetType) error {
	if !resetType.Valid() {
		return fmt.Errorf("focus: unknown reset type %q", resetType)
	}
	now := r.now()

	current := r.Todos.Focused()
	if len(current) > 0 {
		if err := r.Store.AppendHistory(entity.FocusHistoryEntry{
			ID:         entity.NewID("focus"),
			Date:       entity.At(now),
			ResetType:  resetType,
			FocusTasks: snapshot(current),
		}); err != nil {
			return err
		}
	}

	switch resetType {
	case entity.ResetClear:
		if err := r.Todos.ClearFocus(); err != nil {
			return err
		}
	case entity.ResetPreserveIncomplete:
		list := r.Todos.All()
		for i := range list {
			if list[i].FocusOrder != 0 && list[i].Completed {
				list[i].FocusOrder = 0
				list[i].FocusSetDate = nil
				list[i].FocusCompletedDate = nil
			}
		}
		if err := r.Todos.Save(list); err != nil {
			return err
		}
	}
	// continued/manual/auto keep the slots; the snapshot is the whole point.

	return r.Store.MarkLaunch(timeutil.DayOf(now))
}

// Dismiss records "don't ask again today" without touching any todo. Used
// when the reset prompt is closed without choosing an action, and when
// auto-reset is switched off from the prompt.
func (r *Reset) Dismiss() error {
	return r.Store.MarkLaunch(timeutil.DayOf(r.now()))
}

// snapshot deep-copies the slotted todos into history records. Pointer
// fields are re-allocated so later todo edits cannot reach into history.
func snapshot(todos []entity.Todo) []entity.FocusTask {
	tasks := make([]entity.FocusTask, 0, len(todos))
	for _, t := range todos {
		task := entity.FocusTask{
			Position:  t.FocusOrder,
			TodoID:    t.ID,
			TodoText:  t.Text,
			ProjectID: t.ProjectID,
			Completed: t.Completed,
		}
		if t.CompletedAt != nil {
			at := *t.CompletedAt
			task.CompletedAt = &at
		}
		tasks = append(tasks, task)
	}
	return tasks
}
