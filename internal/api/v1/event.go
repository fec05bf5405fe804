package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrEndBeforeStart is returned by validation when an event ends before it starts.
	ErrEndBeforeStart = errors.New("end_time must not be before start_time")

	// ErrInvalidFields is wrapped by every other field validation failure.
	ErrInvalidFields = errors.New("invalid event fields")
)

// RecurrencePattern is the stored/wire form of a recurrence rule.
// It is parsed into a typed rule by the recurrence package before use.
type RecurrencePattern struct {
	// Frequency is one of daily, weekly, monthly, yearly.
	Frequency string     `json:"frequency" yaml:"frequency"`
	Interval  int        `json:"interval,omitempty" yaml:"interval,omitempty"`
	Count     *int       `json:"count,omitempty" yaml:"count,omitempty"`
	Until     *time.Time `json:"until,omitempty" yaml:"until,omitempty"`

	// Weekdays uses 0 = Monday ... 6 = Sunday.
	Weekdays  []int `json:"weekdays,omitempty" yaml:"weekdays,omitempty"`
	Monthdays []int `json:"monthdays,omitempty" yaml:"monthdays,omitempty"`
	Months    []int `json:"months,omitempty" yaml:"months,omitempty"`
}

// Serialize renders the pattern as a plain map so diffs compare it structurally.
// Unset optional members are omitted, matching the JSON form.
func (p *RecurrencePattern) Serialize() any {
	if p == nil {
		return nil
	}
	interval := p.Interval
	if interval == 0 {
		interval = 1
	}
	out := map[string]any{
		"frequency": strings.ToLower(p.Frequency),
		"interval":  interval,
	}
	if p.Count != nil {
		out["count"] = *p.Count
	}
	if p.Until != nil {
		out["until"] = p.Until.UTC().Format(time.RFC3339Nano)
	}
	if len(p.Weekdays) > 0 {
		out["weekdays"] = intsToAny(p.Weekdays)
	}
	if len(p.Monthdays) > 0 {
		out["monthdays"] = intsToAny(p.Monthdays)
	}
	if len(p.Months) > 0 {
		out["months"] = intsToAny(p.Months)
	}
	return out
}

// Clone returns a deep copy of the pattern.
func (p *RecurrencePattern) Clone() *RecurrencePattern {
	if p == nil {
		return nil
	}
	c := *p
	if p.Count != nil {
		n := *p.Count
		c.Count = &n
	}
	if p.Until != nil {
		u := *p.Until
		c.Until = &u
	}
	c.Weekdays = append([]int(nil), p.Weekdays...)
	c.Monthdays = append([]int(nil), p.Monthdays...)
	c.Months = append([]int(nil), p.Months...)
	return &c
}

func intsToAny(in []int) []any {
	out := make([]any, len(in))
	for i, v := range in {
		out[i] = v
	}
	return out
}

// EventFields is the mutable field set shared by an event and each of its versions.
type EventFields struct {
	Title             string             `json:"title"`
	Description       string             `json:"description"`
	StartTime         time.Time          `json:"start_time"`
	EndTime           time.Time          `json:"end_time"`
	Location          string             `json:"location"`
	IsRecurring       bool               `json:"is_recurring"`
	RecurrencePattern *RecurrencePattern `json:"recurrence_pattern,omitempty"`
}

// Validate checks required fields, the time range and that a recurring
// event carries a pattern. The pattern itself is validated separately by
// the recurrence package.
func (f *EventFields) Validate() error {
	if strings.TrimSpace(f.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidFields)
	}
	if f.StartTime.IsZero() {
		return fmt.Errorf("%w: start_time is required", ErrInvalidFields)
	}
	if f.EndTime.IsZero() {
		return fmt.Errorf("%w: end_time is required", ErrInvalidFields)
	}
	if f.EndTime.Before(f.StartTime) {
		return ErrEndBeforeStart
	}
	if f.IsRecurring && f.RecurrencePattern == nil {
		return fmt.Errorf("%w: recurrence_pattern is required for recurring events", ErrInvalidFields)
	}
	return nil
}

// TruncateTimes drops precision below what TIMESTAMPTZ stores.
func (f *EventFields) TruncateTimes() {
	f.StartTime = f.StartTime.Truncate(time.Microsecond)
	f.EndTime = f.EndTime.Truncate(time.Microsecond)
}

// Clone returns a copy that shares no pointers with f.
func (f EventFields) Clone() EventFields {
	f.RecurrencePattern = f.RecurrencePattern.Clone()
	return f
}

// EventPatch is a partial update. Nil members are left untouched.
// An explicit JSON null for recurrence_pattern sets ClearRecurrencePattern.
type EventPatch struct {
	Title             *string            `json:"title,omitempty"`
	Description       *string            `json:"description,omitempty"`
	StartTime         *time.Time         `json:"start_time,omitempty"`
	EndTime           *time.Time         `json:"end_time,omitempty"`
	Location          *string            `json:"location,omitempty"`
	IsRecurring       *bool              `json:"is_recurring,omitempty"`
	RecurrencePattern *RecurrencePattern `json:"recurrence_pattern,omitempty"`

	// ExpectedVersion, when set, makes the update conditional on the event
	// still being at this version.
	ExpectedVersion *int `json:"-"`

	// ClearRecurrencePattern removes the stored pattern.
	ClearRecurrencePattern bool `json:"-"`
}

func (p *EventPatch) UnmarshalJSON(data []byte) error {
	type plain EventPatch
	var raw struct {
		plain
		RecurrencePattern json.RawMessage `json:"recurrence_pattern"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*p = EventPatch(raw.plain)
	switch {
	case raw.RecurrencePattern == nil:
	case bytes.Equal(bytes.TrimSpace(raw.RecurrencePattern), []byte("null")):
		p.ClearRecurrencePattern = true
	default:
		var pattern RecurrencePattern
		if err := json.Unmarshal(raw.RecurrencePattern, &pattern); err != nil {
			return err
		}
		p.RecurrencePattern = &pattern
	}
	return nil
}

// Apply returns base with every set member of the patch merged over it.
func (p EventPatch) Apply(base EventFields) EventFields {
	out := base.Clone()
	if p.Title != nil {
		out.Title = *p.Title
	}
	if p.Description != nil {
		out.Description = *p.Description
	}
	if p.StartTime != nil {
		out.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		out.EndTime = *p.EndTime
	}
	if p.Location != nil {
		out.Location = *p.Location
	}
	if p.IsRecurring != nil {
		out.IsRecurring = *p.IsRecurring
	}
	if p.ClearRecurrencePattern {
		out.RecurrencePattern = nil
	}
	if p.RecurrencePattern != nil {
		out.RecurrencePattern = p.RecurrencePattern.Clone()
	}
	return out
}

// TouchesSchedule reports whether the patch moves the event in time.
func (p EventPatch) TouchesSchedule() bool {
	return p.StartTime != nil || p.EndTime != nil
}

// Event is the current-state projection of an event's version chain head.
type Event struct {
	ID int64 `json:"id"`
	EventFields
	OwnerID        int64     `json:"owner_id"`
	CurrentVersion int       `json:"current_version"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// EventVersion is an immutable snapshot in an event's version chain.
type EventVersion struct {
	EventID       int64 `json:"event_id"`
	VersionNumber int   `json:"version_number"`
	EventFields
	CreatedBy int64     `json:"created_by_id"`
	CreatedAt time.Time `json:"created_at"`
}

// EventFilter narrows event listings.
type EventFilter struct {
	StartDate        *time.Time
	EndDate          *time.Time
	TitleSearch      string
	Location         string
	IncludeRecurring bool
}
