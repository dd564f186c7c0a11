package appointment

import (
	"testing"

	"github.com/cliniq/cliniq/internal/domain/calendar"
)

func TestCellPosition(t *testing.T) {
	cell := calendar.Interval{Start: 9 * 60, End: 10 * 60}

	tests := []struct {
		name       string
		iv         calendar.Interval
		top        float64
		height     float64
		intersects bool
	}{
		{"full cell", calendar.Interval{Start: 9 * 60, End: 10 * 60}, 0, 100, true},
		{"second half", calendar.Interval{Start: 9*60 + 30, End: 10 * 60}, 50, 50, true},
		{"quarter at 15", calendar.Interval{Start: 9*60 + 15, End: 9*60 + 30}, 25, 25, true},
		{"overhangs both ends", calendar.Interval{Start: 8 * 60, End: 11 * 60}, 0, 100, true},
		{"before the cell", calendar.Interval{Start: 8 * 60, End: 9 * 60}, 0, 0, false},
		{"after the cell", calendar.Interval{Start: 10 * 60, End: 11 * 60}, 0, 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			top, height, ok := CellPosition(tc.iv, cell)
			if ok != tc.intersects {
				t.Fatalf("ok = %v, want %v", ok, tc.intersects)
			}
			if !ok {
				return
			}
			if top != tc.top || height != tc.height {
				t.Errorf("position = (%v, %v), want (%v, %v)", top, height, tc.top, tc.height)
			}
		})
	}
}

func TestCellPosition_Invariants(t *testing.T) {
	cell := calendar.Interval{Start: 14 * 60, End: 15 * 60}
	windows := []calendar.Interval{
		{Start: 13 * 60, End: 14*60 + 20},
		{Start: 14*60 + 10, End: 14*60 + 50},
		{Start: 14*60 + 59, End: 16 * 60},
	}
	for _, iv := range windows {
		top, height, ok := CellPosition(iv, cell)
		if !ok {
			t.Fatalf("window %v should intersect the cell", iv)
		}
		if top < 0 || top > 100 {
			t.Errorf("top %v out of range for %v", top, iv)
		}
		if top+height > 100+1e-9 {
			t.Errorf("top+height %v exceeds 100 for %v", top+height, iv)
		}
	}
}
