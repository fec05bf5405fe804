package recurrence

import (
	"fmt"
	"iter"
	"time"

	v1 "github.com/aevon-lab/chronicle/internal/api/v1"
	"github.com/teambition/rrule-go"
)

const (
	DefaultMaxOccurrences = 100
	DefaultHorizon        = 365 * 24 * time.Hour
)

// Options bounds an expansion. Zero values fall back to the defaults:
// the range is [start, start+Horizon] and at most DefaultMaxOccurrences are produced.
type Options struct {
	RangeStart     time.Time
	RangeEnd       time.Time
	MaxOccurrences int
	Horizon        time.Duration
}

func (o Options) normalized(start time.Time) Options {
	if o.MaxOccurrences <= 0 {
		o.MaxOccurrences = DefaultMaxOccurrences
	}
	if o.Horizon <= 0 {
		o.Horizon = DefaultHorizon
	}
	if o.RangeStart.IsZero() {
		o.RangeStart = start
	}
	if o.RangeEnd.IsZero() {
		o.RangeEnd = start.Add(o.Horizon)
	}
	return o
}

var rruleFrequency = map[Frequency]rrule.Frequency{
	FrequencyDaily:   rrule.DAILY,
	FrequencyWeekly:  rrule.WEEKLY,
	FrequencyMonthly: rrule.MONTHLY,
	FrequencyYearly:  rrule.YEARLY,
}

var rruleWeekdays = map[time.Weekday]rrule.Weekday{
	time.Monday:    rrule.MO,
	time.Tuesday:   rrule.TU,
	time.Wednesday: rrule.WE,
	time.Thursday:  rrule.TH,
	time.Friday:    rrule.FR,
	time.Saturday:  rrule.SA,
	time.Sunday:    rrule.SU,
}

func toROption(rule Rule, dtstart time.Time) rrule.ROption {
	b := rule.Limits()
	opt := rrule.ROption{
		Freq:     rruleFrequency[rule.Frequency()],
		Dtstart:  dtstart,
		Interval: b.Interval,
		Count:    b.Count,
		Until:    b.Until,
	}

	switch r := rule.(type) {
	case Weekly:
		for _, d := range r.Weekdays {
			opt.Byweekday = append(opt.Byweekday, rruleWeekdays[d])
		}
	case Monthly:
		opt.Bymonthday = r.Monthdays
	case Yearly:
		for _, m := range r.Months {
			opt.Bymonth = append(opt.Bymonth, int(m))
		}
	}
	return opt
}

// OccurrencesBetween expands pattern from start into a lazy, finite sequence
// of instants clipped to the options' range and capped at MaxOccurrences
// regardless of the pattern's own count/until. Each range over the returned
// sequence restarts the expansion. A nil pattern yields exactly start.
func OccurrencesBetween(start time.Time, pattern *v1.RecurrencePattern, opts Options) (iter.Seq[time.Time], error) {
	if pattern == nil {
		return func(yield func(time.Time) bool) {
			yield(start)
		}, nil
	}

	rule, err := Parse(pattern)
	if err != nil {
		return nil, err
	}
	opts = opts.normalized(start)

	// Fail fast on rrule construction errors rather than inside the iterator.
	if _, err := rrule.NewRRule(toROption(rule, start)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}

	return func(yield func(time.Time) bool) {
		r, err := rrule.NewRRule(toROption(rule, start))
		if err != nil {
			return
		}
		next := r.Iterator()
		emitted := 0
		for emitted < opts.MaxOccurrences {
			t, ok := next()
			if !ok || t.After(opts.RangeEnd) {
				return
			}
			if t.Before(opts.RangeStart) {
				continue
			}
			if !yield(t) {
				return
			}
			emitted++
		}
	}, nil
}

// Occurrences is OccurrencesBetween collected into a slice.
func Occurrences(start time.Time, pattern *v1.RecurrencePattern, opts Options) ([]time.Time, error) {
	seq, err := OccurrencesBetween(start, pattern, opts)
	if err != nil {
		return nil, err
	}
	var out []time.Time
	for t := range seq {
		out = append(out, t)
	}
	return out, nil
}
