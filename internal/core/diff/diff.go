// Package diff produces field-level diffs between two versions of a record.
//
// Values are compared in their serialized form, which is also the form
// persisted in changelog payloads, so equality and storage never disagree.
package diff

import (
	"fmt"
	"reflect"
	"sort"
	"time"
)

// Serializer is implemented by structured values that know their own
// comparison-safe representation.
type Serializer interface {
	Serialize() any
}

// Change is the before/after pair recorded for one field.
type Change struct {
	Old any `json:"old"`
	New any `json:"new"`
}

// Serialize normalizes v into a comparison-safe, JSON-safe value.
// Primitives pass through, timestamps become RFC 3339 UTC strings, maps and
// slices are normalized recursively, anything else falls back to fmt.Sprint.
func Serialize(v any) any {
	if v == nil {
		return nil
	}

	switch t := v.(type) {
	case Serializer:
		rv := reflect.ValueOf(t)
		if rv.Kind() == reflect.Pointer && rv.IsNil() {
			return nil
		}
		return Serialize(t.Serialize())
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return t
	case time.Time:
		return t.UTC().Format(time.RFC3339Nano)
	case *time.Time:
		if t == nil {
			return nil
		}
		return t.UTC().Format(time.RFC3339Nano)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return Serialize(rv.Elem().Interface())
	case reflect.Map:
		if rv.IsNil() {
			return nil
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[fmt.Sprint(iter.Key().Interface())] = Serialize(iter.Value().Interface())
		}
		return out
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return nil
		}
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = Serialize(rv.Index(i).Interface())
		}
		return out
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint()
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	}

	return fmt.Sprint(v)
}

// Equal reports whether a and b serialize to the same value.
func Equal(a, b any) bool {
	return reflect.DeepEqual(Serialize(a), Serialize(b))
}

// FieldDiff always returns the serialized pair; deciding whether the field
// changed is left to the caller.
func FieldDiff(oldValue, newValue any) Change {
	return Change{Old: Serialize(oldValue), New: Serialize(newValue)}
}

// ObjectDiff compares the union of both objects' keys and returns a Change
// for every key whose serialized values differ.
func ObjectDiff(oldObj, newObj map[string]any) map[string]Change {
	out := make(map[string]Change)
	for _, key := range unionKeys(oldObj, newObj) {
		oldValue, newValue := oldObj[key], newObj[key]
		if Equal(oldValue, newValue) {
			continue
		}
		out[key] = FieldDiff(oldValue, newValue)
	}
	return out
}

func unionKeys(a, b map[string]any) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	keys := make([]string, 0, len(a)+len(b))
	for _, m := range []map[string]any{a, b} {
		for k := range m {
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
