package store

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviveNestedStructures(t *testing.T) {
	payload := `{
		"todos": [
			{"id": "todo_1", "completedAt": "2025-07-04T09:30:15.123Z", "text": "2025 planning"},
			{"id": "todo_2", "completedAt": null}
		],
		"settings": {"resetTime": "06:00"},
		"lastLaunch": "Fri Jul 04 2025"
	}`

	var decoded any
	require.NoError(t, json.Unmarshal([]byte(payload), &decoded))
	revived := Revive(decoded).(map[string]any)

	todos := revived["todos"].([]any)
	first := todos[0].(map[string]any)

	ts, ok := first["completedAt"].(time.Time)
	require.True(t, ok, "exact-layout string must become a time value")
	assert.Equal(t, time.Date(2025, time.July, 4, 9, 30, 15, 123_000_000, time.UTC), ts.UTC())

	// Strings that merely mention dates stay strings.
	assert.Equal(t, "2025 planning", first["text"])
	assert.Equal(t, "06:00", revived["settings"].(map[string]any)["resetTime"])
	assert.Equal(t, "Fri Jul 04 2025", revived["lastLaunch"])
}

func TestReviveScalarsPassThrough(t *testing.T) {
	assert.Equal(t, 3.0, Revive(3.0))
	assert.Equal(t, true, Revive(true))
	assert.Nil(t, Revive(nil))
}
