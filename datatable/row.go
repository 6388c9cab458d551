package datatable

import (
	"math"
	"strconv"
	"strings"
)

// Row is one record of the dataset, usually a decoded JSON document.
type Row map[string]any

// Key identifies a row for selection purposes. It holds a string or an int64.
type Key any

// KeyFunc derives the identity key of a row. position is the index of the row
// in the full dataset.
type KeyFunc func(row Row, position int) Key

// positionKey is the fallback identity of a row without a usable key. It has
// its own type so it never collides with a real key of the same value.
type positionKey int

// KeyField returns a KeyFunc reading the identity from a field of the row.
// Rows where the field is absent or not a string/integer get their position.
func KeyField(field string) KeyFunc {
	return func(row Row, position int) Key {
		key, ok := normalizeKey(Resolve(row, field))
		if !ok {
			return positionKey(position)
		}
		return key
	}
}

// ParseKey reads a key typed by a human: integers become int64, anything else
// stays a string.
func ParseKey(s string) Key {
	s = strings.TrimSpace(s)
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	return s
}

func normalizeKey(v any) (Key, bool) {
	switch k := v.(type) {
	case string:
		return k, true
	case int:
		return int64(k), true
	case int8:
		return int64(k), true
	case int16:
		return int64(k), true
	case int32:
		return int64(k), true
	case int64:
		return k, true
	case uint:
		return normalizeUintKey(uint64(k))
	case uint8:
		return int64(k), true
	case uint16:
		return int64(k), true
	case uint32:
		return int64(k), true
	case uint64:
		return normalizeUintKey(k)
	case float32:
		return normalizeFloatKey(float64(k))
	case float64:
		return normalizeFloatKey(k)
	}
	return nil, false
}

func normalizeUintKey(u uint64) (Key, bool) {
	if u > math.MaxInt64 {
		return nil, false
	}
	return int64(u), true
}

// normalizeFloatKey accepts whole floats inside the int64 range.
func normalizeFloatKey(f float64) (Key, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return nil, false
	}
	if f < -(1<<63) || f >= 1<<63 {
		return nil, false
	}
	return int64(f), true
}

// Resolve returns the value at a field selector. Dotted selectors walk nested
// objects ("address.city"). Missing fields resolve to nil.
func Resolve(row Row, selector string) any {
	if v, ok := row[selector]; ok || !strings.Contains(selector, ".") {
		return v
	}

	var current any = map[string]any(row)
	for _, part := range strings.Split(selector, ".") {
		switch node := current.(type) {
		case map[string]any:
			current = node[part]
		case Row:
			current = node[part]
		default:
			return nil
		}
	}
	return current
}

// resolveKeys computes the identity of every row of the dataset. Missing and
// duplicated keys fall back to the row position; the number of fallbacks is
// returned so the caller can report it. A nil keyFunc identifies every row by
// position without counting fallbacks.
func resolveKeys(rows []Row, keyFunc KeyFunc) (keys []Key, fallbacks int) {
	keys = make([]Key, len(rows))
	if keyFunc == nil {
		for i := range rows {
			keys[i] = positionKey(i)
		}
		return keys, 0
	}

	seen := make(map[Key]struct{}, len(rows))
	for i, row := range rows {
		key, ok := normalizeKey(keyFunc(row, i))
		if ok {
			_, duplicated := seen[key]
			ok = !duplicated
		}
		if !ok {
			key = positionKey(i)
			fallbacks++
		}
		seen[key] = struct{}{}
		keys[i] = key
	}

	return keys, fallbacks
}
