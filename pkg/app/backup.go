package app

import (
	"encoding/json"
	"fmt"
	"time"

	"tableflip.dev/focus/pkg/entity"
	"tableflip.dev/focus/pkg/store"
)

// Export returns the raw stored document for every known key that has a
// value. Documents are copied byte for byte so a round trip through
// Export and Import preserves the on-disk encoding exactly.
func (s *Service) Export() map[string]json.RawMessage {
	out := make(map[string]json.RawMessage)
	for _, key := range store.Keys() {
		raw, ok := s.KV.GetRaw(key)
		if !ok {
			continue
		}
		out[key] = json.RawMessage(append([]byte(nil), raw...))
	}
	return out
}

// Import writes the given documents back into the store. Unknown keys are
// rejected before anything is written, and every document must at least be
// valid JSON.
func (s *Service) Import(payload map[string]json.RawMessage) error {
	known := make(map[string]bool)
	for _, key := range store.Keys() {
		known[key] = true
	}
	for key, raw := range payload {
		if !known[key] {
			return fmt.Errorf("import: unknown key %q", key)
		}
		if !json.Valid(raw) {
			return fmt.Errorf("import: key %q is not valid JSON", key)
		}
	}
	for key, raw := range payload {
		if !s.KV.SetRaw(key, raw) {
			return fmt.Errorf("import: could not persist %s", key)
		}
	}
	return nil
}

// BackupSummary describes an exported payload without decoding it into
// typed records.
type BackupSummary struct {
	Counts map[string]int
	Oldest time.Time
	Newest time.Time
}

// Summarize inspects an export payload generically. Each document is
// decoded as untyped JSON and run through store.Revive so any encoded
// dates become time.Time values, which feed the oldest/newest range.
func Summarize(payload map[string]json.RawMessage) BackupSummary {
	summary := BackupSummary{Counts: make(map[string]int)}
	for key, raw := range payload {
		var doc any
		if err := json.Unmarshal(raw, &doc); err != nil {
			continue
		}
		doc = store.Revive(doc)
		if list, ok := doc.([]any); ok {
			summary.Counts[key] = len(list)
		} else {
			summary.Counts[key] = 1
		}
		walkTimes(doc, func(t time.Time) {
			if summary.Oldest.IsZero() || t.Before(summary.Oldest) {
				summary.Oldest = t
			}
			if t.After(summary.Newest) {
				summary.Newest = t
			}
		})
	}
	return summary
}

func walkTimes(v any, fn func(time.Time)) {
	switch x := v.(type) {
	case time.Time:
		fn(x)
	case string:
		if entity.IsEncodedTime(x) {
			if t, err := entity.ParseEncodedTime(x); err == nil {
				fn(t)
			}
		}
	case []any:
		for _, item := range x {
			walkTimes(item, fn)
		}
	case map[string]any:
		for _, item := range x {
			walkTimes(item, fn)
		}
	}
}
