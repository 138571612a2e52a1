package entity

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTimestampWireFormat(t *testing.T) {
	ts := At(time.Date(2025, time.July, 4, 9, 30, 15, 123_000_000, time.UTC))
	b, err := json.Marshal(ts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `"2025-07-04T09:30:15.123Z"`
	if string(b) != want {
		t.Fatalf("expected %s, got %s", want, b)
	}
}

func TestTimestampRoundTrip(t *testing.T) {
	orig := Now()
	b, err := json.Marshal(orig)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got Timestamp
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(orig.Time) {
		t.Fatalf("expected %v, got %v", orig, got)
	}
}

func TestTimestampZeroIsNull(t *testing.T) {
	var ts Timestamp
	b, err := json.Marshal(ts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != "null" {
		t.Fatalf("expected null, got %s", b)
	}
	var back Timestamp
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !back.IsZero() {
		t.Fatalf("expected zero time, got %v", back)
	}
}

func TestTimestampLegacyRFC3339(t *testing.T) {
	var ts Timestamp
	if err := json.Unmarshal([]byte(`"2024-02-29T12:00:00Z"`), &ts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ts.Year() != 2024 || ts.Month() != time.February || ts.Day() != 29 {
		t.Fatalf("unexpected time: %v", ts)
	}
}

func TestIsEncodedTime(t *testing.T) {
	cases := map[string]bool{
		"2025-07-04T09:30:15.123Z":  true,
		"2025-07-04T09:30:15Z":      false,
		"2025-07-04T09:30:15.123":   false,
		"Fri Jul 04 2025":           false,
		"not a date":                false,
		"2025-07-04T09:30:15.1234Z": false,
	}
	for in, want := range cases {
		if got := IsEncodedTime(in); got != want {
			t.Fatalf("IsEncodedTime(%q) = %v, expected %v", in, got, want)
		}
	}
}

func TestSameDay(t *testing.T) {
	morning := At(time.Date(2025, time.July, 4, 1, 0, 0, 0, time.Local))
	night := time.Date(2025, time.July, 4, 23, 59, 0, 0, time.Local)
	if !morning.SameDay(night) {
		t.Fatalf("expected same day")
	}
	if morning.SameDay(night.Add(time.Minute)) {
		t.Fatalf("expected different day")
	}
}

func TestNewIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewID("todo")
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}
