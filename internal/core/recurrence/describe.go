package recurrence

import (
	"fmt"
	"strconv"
	"strings"

	v1 "github.com/aevon-lab/chronicle/internal/api/v1"
)

// Describe renders a pattern as English for display.
func Describe(p *v1.RecurrencePattern) string {
	if p == nil {
		return "One-time event"
	}
	rule, err := Parse(p)
	if err != nil {
		return "Custom recurrence"
	}
	return DescribeRule(rule)
}

// DescribeRule renders an already parsed rule.
func DescribeRule(rule Rule) string {
	b := rule.Limits()

	var sb strings.Builder
	switch r := rule.(type) {
	case Daily:
		sb.WriteString(every(b.Interval, "day"))
	case Weekly:
		sb.WriteString(every(b.Interval, "week"))
		if len(r.Weekdays) > 0 {
			names := make([]string, len(r.Weekdays))
			for i, d := range r.Weekdays {
				names[i] = d.String()
			}
			sb.WriteString(" on " + strings.Join(names, ", "))
		}
	case Monthly:
		sb.WriteString(every(b.Interval, "month"))
		switch len(r.Monthdays) {
		case 0:
		case 1:
			sb.WriteString(" on the " + ordinal(r.Monthdays[0]))
		default:
			days := make([]string, len(r.Monthdays))
			for i, d := range r.Monthdays {
				days[i] = strconv.Itoa(d)
			}
			sb.WriteString(" on days " + strings.Join(days, ", "))
		}
	case Yearly:
		sb.WriteString(every(b.Interval, "year"))
		if len(r.Months) > 0 {
			names := make([]string, len(r.Months))
			for i, m := range r.Months {
				names[i] = m.String()
			}
			sb.WriteString(" in " + strings.Join(names, ", "))
		}
	default:
		return "Custom recurrence"
	}

	switch {
	case !b.Until.IsZero():
		sb.WriteString(" until " + b.Until.Format("2006-01-02"))
	case b.Count > 0:
		fmt.Fprintf(&sb, " for %d occurrences", b.Count)
	}
	return sb.String()
}

func every(interval int, unit string) string {
	if interval <= 1 {
		return "Every " + unit
	}
	return fmt.Sprintf("Every %d %ss", interval, unit)
}

func ordinal(n int) string {
	if n < 0 {
		if n == -1 {
			return "last day"
		}
		return ordinal(-n) + " to last day"
	}
	suffix := "th"
	if n%100 < 11 || n%100 > 13 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}
