package diff

import (
	v1 "github.com/aevon-lab/chronicle/internal/api/v1"
)

// Field names a single comparable event field and how to read it.
type Field struct {
	Name string
	Get  func(f *v1.EventFields) any
}

// EventFieldSet is the fixed, ordered comparison set for event versions.
// Change detection on update and version-to-version diffs both iterate it.
var EventFieldSet = []Field{
	{Name: "title", Get: func(f *v1.EventFields) any { return f.Title }},
	{Name: "description", Get: func(f *v1.EventFields) any { return f.Description }},
	{Name: "start_time", Get: func(f *v1.EventFields) any { return f.StartTime }},
	{Name: "end_time", Get: func(f *v1.EventFields) any { return f.EndTime }},
	{Name: "location", Get: func(f *v1.EventFields) any { return f.Location }},
	{Name: "is_recurring", Get: func(f *v1.EventFields) any { return f.IsRecurring }},
	{Name: "recurrence_pattern", Get: func(f *v1.EventFields) any { return f.RecurrencePattern }},
}

// Snapshot returns the serialized field map of f.
func Snapshot(f v1.EventFields) map[string]any {
	out := make(map[string]any, len(EventFieldSet))
	for _, field := range EventFieldSet {
		out[field.Name] = Serialize(field.Get(&f))
	}
	return out
}

// EventChanges returns the changed fields between two field sets, keyed by
// field name. An empty map means the two are equivalent.
func EventChanges(oldFields, newFields v1.EventFields) map[string]Change {
	return ObjectDiff(Snapshot(oldFields), Snapshot(newFields))
}

// EventFieldChanges is EventChanges flattened into EventFieldSet order.
func EventFieldChanges(oldFields, newFields v1.EventFields) []v1.FieldChange {
	changes := EventChanges(oldFields, newFields)
	out := make([]v1.FieldChange, 0, len(changes))
	for _, field := range EventFieldSet {
		c, ok := changes[field.Name]
		if !ok {
			continue
		}
		out = append(out, v1.FieldChange{Field: field.Name, OldValue: c.Old, NewValue: c.New})
	}
	return out
}

// ChangesPayload converts a change map into the changelog payload shape.
func ChangesPayload(changes map[string]Change) map[string]any {
	if len(changes) == 0 {
		return nil
	}
	out := make(map[string]any, len(changes))
	for k, c := range changes {
		out[k] = map[string]any{"old": c.Old, "new": c.New}
	}
	return out
}
