// Package focus holds the Top-3 daily focus subsystem: persisted focus
// settings, the append-only reset history, the last-launch marker, and the
// daily reset state machine.
package focus

import (
	"tableflip.dev/focus/pkg/entity"
	"tableflip.dev/focus/pkg/store"
	"tableflip.dev/focus/pkg/timeutil"
)

// Store persists focus settings, focus history, the last-launch marker, and
// the daily work goal. Settings and marker are singletons that only ever get
// overwritten; history is append-only.
type Store struct {
	KV *store.KV
}

// Settings returns the current focus settings, falling back to defaults for
// a fresh (or corrupted) store.
func (s *Store) Settings() entity.FocusSettings {
	return store.Get(s.KV, store.KeyFocusSettings, entity.DefaultFocusSettings())
}

// SettingsChanges is a partial settings update; nil fields keep their value.
type SettingsChanges struct {
	AutoResetEnabled          *bool
	ResetTime                 *string
	PreserveIncomplete        *bool
	ShowCompletionCelebration *bool
}

// UpdateSettings merges changes into the persisted settings.
func (s *Store) UpdateSettings(ch SettingsChanges) (entity.FocusSettings, error) {
	settings := s.Settings()
	if ch.AutoResetEnabled != nil {
		settings.AutoResetEnabled = *ch.AutoResetEnabled
	}
	if ch.ResetTime != nil {
		settings.ResetTime = *ch.ResetTime
	}
	if ch.PreserveIncomplete != nil {
		settings.PreserveIncomplete = *ch.PreserveIncomplete
	}
	if ch.ShowCompletionCelebration != nil {
		settings.ShowCompletionCelebration = *ch.ShowCompletionCelebration
	}
	if !store.Set(s.KV, store.KeyFocusSettings, settings) {
		return settings, errNotPersisted
	}
	return settings, nil
}

// History returns past resets, newest first.
func (s *Store) History() []entity.FocusHistoryEntry {
	return store.Get(s.KV, store.KeyFocusHistory, []entity.FocusHistoryEntry{})
}

// AppendHistory prepends a new entry. Entries are never edited afterwards.
func (s *Store) AppendHistory(e entity.FocusHistoryEntry) error {
	history := append([]entity.FocusHistoryEntry{e}, s.History()...)
	if !store.Set(s.KV, store.KeyFocusHistory, history) {
		return errNotPersisted
	}
	return nil
}

// ClearHistory drops all history entries.
func (s *Store) ClearHistory() error {
	if !store.Set(s.KV, store.KeyFocusHistory, []entity.FocusHistoryEntry{}) {
		return errNotPersisted
	}
	return nil
}

// LastFocusDate returns the date of the most recent reset, if any.
func (s *Store) LastFocusDate() (entity.Timestamp, bool) {
	history := s.History()
	if len(history) == 0 {
		return entity.Timestamp{}, false
	}
	return history[0].Date, true
}

// LastLaunch returns the recorded launch day, or "" when the marker has
// never been written (first-ever launch).
func (s *Store) LastLaunch() timeutil.Day {
	return timeutil.Day(store.Get(s.KV, store.KeyLastLaunch, ""))
}

// MarkLaunch overwrites the last-launch marker.
func (s *Store) MarkLaunch(d timeutil.Day) error {
	if !store.Set(s.KV, store.KeyLastLaunch, d.String()) {
		return errNotPersisted
	}
	return nil
}

// DailyGoalHours returns the configured daily work goal.
func (s *Store) DailyGoalHours() float64 {
	return store.Get(s.KV, store.KeyDailyGoal, entity.DefaultDailyGoalHours)
}

// SetDailyGoalHours overwrites the daily work goal.
func (s *Store) SetDailyGoalHours(hours float64) error {
	if !store.Set(s.KV, store.KeyDailyGoal, hours) {
		return errNotPersisted
	}
	return nil
}
