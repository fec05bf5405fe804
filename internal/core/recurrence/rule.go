// Package recurrence turns stored recurrence patterns into typed rules and
// bounded occurrence sequences.
package recurrence

import (
	"errors"
	"fmt"
	"strings"
	"time"

	v1 "github.com/aevon-lab/chronicle/internal/api/v1"
)

var (
	// ErrUnknownFrequency is returned for a frequency outside daily/weekly/monthly/yearly.
	ErrUnknownFrequency = errors.New("unknown recurrence frequency")
	// ErrInvalidPattern is returned for out-of-range or misplaced pattern members.
	ErrInvalidPattern = errors.New("invalid recurrence pattern")
)

// Frequency is the tag of a Rule.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// Bounds holds the parameters shared by every rule variant.
type Bounds struct {
	Interval int
	// Count is 0 when unbounded.
	Count int
	// Until is zero when unbounded.
	Until time.Time
}

// Rule is a parsed recurrence rule: exactly one of Daily, Weekly, Monthly, Yearly.
type Rule interface {
	Frequency() Frequency
	Limits() Bounds
	sealed()
}

type Daily struct {
	Bounds
}

type Weekly struct {
	Bounds
	Weekdays []time.Weekday
}

type Monthly struct {
	Bounds
	Monthdays []int
}

type Yearly struct {
	Bounds
	Months []time.Month
}

func (Daily) Frequency() Frequency   { return FrequencyDaily }
func (Weekly) Frequency() Frequency  { return FrequencyWeekly }
func (Monthly) Frequency() Frequency { return FrequencyMonthly }
func (Yearly) Frequency() Frequency  { return FrequencyYearly }

func (r Daily) Limits() Bounds   { return r.Bounds }
func (r Weekly) Limits() Bounds  { return r.Bounds }
func (r Monthly) Limits() Bounds { return r.Bounds }
func (r Yearly) Limits() Bounds  { return r.Bounds }

func (Daily) sealed()   {}
func (Weekly) sealed()  {}
func (Monthly) sealed() {}
func (Yearly) sealed()  {}

// patternWeekdays maps the stored 0 = Monday convention onto time.Weekday.
var patternWeekdays = [7]time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// Parse validates p and returns its typed rule. A nil pattern is an error;
// callers treat "no pattern" as a one-off event before calling Parse.
func Parse(p *v1.RecurrencePattern) (Rule, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: pattern is empty", ErrInvalidPattern)
	}

	bounds, err := parseBounds(p)
	if err != nil {
		return nil, err
	}

	freq := Frequency(strings.ToLower(strings.TrimSpace(p.Frequency)))
	switch freq {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFrequency, p.Frequency)
	}
	if err := checkMembers(freq, p); err != nil {
		return nil, err
	}

	switch freq {
	case FrequencyDaily:
		return Daily{Bounds: bounds}, nil

	case FrequencyWeekly:
		days := make([]time.Weekday, 0, len(p.Weekdays))
		for _, d := range p.Weekdays {
			if d < 0 || d > 6 {
				return nil, fmt.Errorf("%w: weekday %d out of range 0-6", ErrInvalidPattern, d)
			}
			days = append(days, patternWeekdays[d])
		}
		return Weekly{Bounds: bounds, Weekdays: days}, nil

	case FrequencyMonthly:
		for _, d := range p.Monthdays {
			if d == 0 || d < -31 || d > 31 {
				return nil, fmt.Errorf("%w: monthday %d out of range", ErrInvalidPattern, d)
			}
		}
		return Monthly{Bounds: bounds, Monthdays: append([]int(nil), p.Monthdays...)}, nil

	case FrequencyYearly:
		months := make([]time.Month, 0, len(p.Months))
		for _, m := range p.Months {
			if m < 1 || m > 12 {
				return nil, fmt.Errorf("%w: month %d out of range 1-12", ErrInvalidPattern, m)
			}
			months = append(months, time.Month(m))
		}
		return Yearly{Bounds: bounds, Months: months}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownFrequency, p.Frequency)
}

// Validate reports whether p parses.
func Validate(p *v1.RecurrencePattern) error {
	_, err := Parse(p)
	return err
}

// ValidateFields checks a complete field set, including its pattern.
func ValidateFields(f *v1.EventFields) error {
	if err := f.Validate(); err != nil {
		return err
	}
	if f.RecurrencePattern != nil {
		return Validate(f.RecurrencePattern)
	}
	return nil
}

func parseBounds(p *v1.RecurrencePattern) (Bounds, error) {
	b := Bounds{Interval: p.Interval}
	if b.Interval == 0 {
		b.Interval = 1
	}
	if b.Interval < 0 {
		return Bounds{}, fmt.Errorf("%w: interval must be >= 1", ErrInvalidPattern)
	}
	if p.Count != nil {
		if *p.Count < 1 {
			return Bounds{}, fmt.Errorf("%w: count must be >= 1", ErrInvalidPattern)
		}
		b.Count = *p.Count
	}
	if p.Until != nil {
		b.Until = p.Until.UTC()
	}
	return b, nil
}

// checkMembers rejects parameters that belong to a different variant.
func checkMembers(freq Frequency, p *v1.RecurrencePattern) error {
	if len(p.Weekdays) > 0 && freq != FrequencyWeekly {
		return fmt.Errorf("%w: weekdays only apply to weekly rules", ErrInvalidPattern)
	}
	if len(p.Monthdays) > 0 && freq != FrequencyMonthly {
		return fmt.Errorf("%w: monthdays only apply to monthly rules", ErrInvalidPattern)
	}
	if len(p.Months) > 0 && freq != FrequencyYearly {
		return fmt.Errorf("%w: months only apply to yearly rules", ErrInvalidPattern)
	}
	return nil
}
