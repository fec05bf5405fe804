package conflict

import (
	"testing"
	"time"

	v1 "github.com/aevon-lab/chronicle/internal/api/v1"
	"github.com/stretchr/testify/require"
)

func at(h, m int) time.Time {
	return time.Date(2026, 3, 2, h, m, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name       string
		aStart     time.Time
		aEnd       time.Time
		bStart     time.Time
		bEnd       time.Time
		wantResult bool
	}{
		{"contained", at(10, 0), at(11, 0), at(10, 30), at(10, 45), true},
		{"touching boundary", at(10, 0), at(11, 0), at(11, 0), at(12, 0), true},
		{"starts inside", at(10, 0), at(11, 0), at(10, 30), at(12, 0), true},
		{"ends inside", at(10, 0), at(11, 0), at(9, 0), at(10, 15), true},
		{"contains", at(10, 0), at(11, 0), at(9, 0), at(12, 0), true},
		{"identical", at(10, 0), at(11, 0), at(10, 0), at(11, 0), true},
		{"before", at(10, 0), at(11, 0), at(8, 0), at(9, 59), false},
		{"after", at(10, 0), at(11, 0), at(11, 1), at(12, 0), false},
		{"zero length inside", at(10, 0), at(11, 0), at(10, 30), at(10, 30), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.wantResult, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// symmetric
			require.Equal(t, tt.wantResult, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestFilter(t *testing.T) {
	events := []*v1.Event{
		{ID: 1, EventFields: v1.EventFields{StartTime: at(10, 0), EndTime: at(11, 0)}},
		{ID: 2, EventFields: v1.EventFields{StartTime: at(11, 0), EndTime: at(12, 0)}},
		{ID: 3, EventFields: v1.EventFields{StartTime: at(13, 0), EndTime: at(14, 0)}},
		nil,
	}

	got := Filter(events, at(10, 30), at(11, 0), 0)
	require.Len(t, got, 2)
	require.Equal(t, int64(1), got[0].ID)
	require.Equal(t, int64(2), got[1].ID)

	got = Filter(events, at(10, 30), at(11, 0), 1)
	require.Len(t, got, 1)
	require.Equal(t, int64(2), got[0].ID)
}
