package entity

import (
	"encoding/json"
	"fmt"
	"regexp"
	"time"
)

// LayoutMillis is the wire format for every persisted timestamp. The trailing
// "Z" is literal: values are always rendered in UTC with millisecond
// precision, which keeps stored payloads byte-compatible across hosts.
const LayoutMillis = "2006-01-02T15:04:05.000Z"

var encodedTimePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}Z$`)

// IsEncodedTime reports whether s matches the exact persisted timestamp
// format. Strings in any other shape are not treated as timestamps.
func IsEncodedTime(s string) bool {
	return encodedTimePattern.MatchString(s)
}

// ParseEncodedTime parses a string previously produced by Timestamp encoding.
func ParseEncodedTime(s string) (time.Time, error) {
	t, err := time.Parse(LayoutMillis, s)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// Timestamp wraps time.Time with the persisted JSON encoding.
type Timestamp struct {
	time.Time
}

// Now returns the current instant as a Timestamp, truncated to the stored
// millisecond precision so a value survives a persistence round trip intact.
func Now() Timestamp {
	return At(time.Now())
}

// At converts a time.Time into a Timestamp at stored precision.
func At(t time.Time) Timestamp {
	return Timestamp{Time: t.Truncate(time.Millisecond)}
}

// SameDay reports whether both instants fall on the same local calendar day.
func (t Timestamp) SameDay(then time.Time) bool {
	ty, tm, td := t.Local().Date()
	oy, om, od := then.Local().Date()
	return ty == oy && tm == om && td == od
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(fmt.Sprintf("%q", t.String())), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		t.Time = time.Time{}
		return nil
	}
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw == "" {
		t.Time = time.Time{}
		return nil
	}
	if IsEncodedTime(raw) {
		parsed, err := ParseEncodedTime(raw)
		if err != nil {
			return err
		}
		t.Time = parsed
		return nil
	}
	// Older payloads carried plain RFC3339.
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

func (t Timestamp) String() string {
	return t.UTC().Format(LayoutMillis)
}

// ptr helpers keep optional timestamp fields terse at call sites.

// Stamp returns a pointer to the Timestamp for now.
func Stamp(t time.Time) *Timestamp {
	ts := At(t)
	return &ts
}
