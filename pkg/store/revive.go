package store

import (
	"tableflip.dev/focus/pkg/entity"
)

// Revive walks a generically-decoded JSON value and reconstitutes timestamp
// strings into time.Time values. Only strings matching the exact stored
// layout are converted; everything else passes through untouched. The walk
// recurses through nested objects and arrays, mutating them in place.
//
// Typed reads get this for free from entity.Timestamp; Revive exists for the
// backup/export path, which handles whole payloads without knowing their
// shape.
func Revive(v any) any {
	switch val := v.(type) {
	case string:
		if entity.IsEncodedTime(val) {
			if t, err := entity.ParseEncodedTime(val); err == nil {
				return t
			}
		}
		return val
	case []any:
		for i := range val {
			val[i] = Revive(val[i])
		}
		return val
	case map[string]any:
		for k := range val {
			val[k] = Revive(val[k])
		}
		return val
	}
	return v
}
