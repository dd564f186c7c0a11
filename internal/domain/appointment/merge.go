package appointment

import (
	"sort"

	"github.com/cliniq/cliniq/internal/domain/calendar"
)

// MergeDay merges a single day's appointment intervals into disjoint display
// blocks. Intervals are sorted by start (stable, ties keep input order) and
// folded left: an interval starting at or before the current block's end is
// absorbed, extending the block to the later end; anything else opens a new
// block. Touching intervals therefore always merge, and the result never
// contains adjacent or overlapping blocks.
//
// Callers must pass intervals already filtered to one calendar date with
// valid windows; FromEpochMillis enforces that at the boundary.
func MergeDay(appts []Appointment) []calendar.Interval {
	if len(appts) == 0 {
		return nil
	}

	intervals := make([]calendar.Interval, 0, len(appts))
	for _, a := range appts {
		if a.Window.IsValid() {
			intervals = append(intervals, a.Window)
		}
	}
	if len(intervals) == 0 {
		return nil
	}

	sort.SliceStable(intervals, func(i, j int) bool {
		return intervals[i].Start < intervals[j].Start
	})

	blocks := []calendar.Interval{intervals[0]}
	for _, iv := range intervals[1:] {
		last := &blocks[len(blocks)-1]
		if iv.Start <= last.End {
			if iv.End > last.End {
				last.End = iv.End
			}
			continue
		}
		blocks = append(blocks, iv)
	}
	return blocks
}

// GapsWithin returns the free intervals inside window not covered by the
// merged blocks. Blocks must come from MergeDay (sorted, disjoint). Gaps are
// the clickable "create appointment" regions; zero-length gaps are never
// emitted.
func GapsWithin(window calendar.Interval, blocks []calendar.Interval) []calendar.Interval {
	var gaps []calendar.Interval
	cursor := window.Start
	for _, b := range blocks {
		if b.End <= window.Start || b.Start >= window.End {
			continue
		}
		if cursor < b.Start {
			gaps = append(gaps, calendar.Interval{Start: cursor, End: b.Start})
		}
		if b.End > cursor {
			cursor = b.End
		}
	}
	if cursor < window.End {
		gaps = append(gaps, calendar.Interval{Start: cursor, End: window.End})
	}
	return gaps
}
