// Package conflict detects overlapping event intervals.
package conflict

import (
	"time"

	v1 "github.com/aevon-lab/chronicle/internal/api/v1"
)

// Overlaps reports whether [aStart, aEnd] and [bStart, bEnd] intersect.
// Boundaries are inclusive, so intervals that merely touch overlap.
//
// This is the union of three cases: b starts inside a, b ends inside a, or
// b contains a. The predicate is symmetric.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !(bEnd.Before(aStart) || bStart.After(aEnd))
}

// Filter returns the candidates overlapping [start, end], skipping excludeID.
// Pass excludeID = 0 to keep every candidate.
func Filter(candidates []*v1.Event, start, end time.Time, excludeID int64) []*v1.Event {
	out := make([]*v1.Event, 0, len(candidates))
	for _, c := range candidates {
		if c == nil || (excludeID != 0 && c.ID == excludeID) {
			continue
		}
		if Overlaps(start, end, c.StartTime, c.EndTime) {
			out = append(out, c)
		}
	}
	return out
}
