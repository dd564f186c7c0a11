package appointment

import (
	"testing"

	"github.com/cliniq/cliniq/internal/domain/calendar"
)

func testCatalog(t *testing.T) calendar.Catalog {
	t.Helper()
	c, err := calendar.NewCatalog(8*60, 12*60, 60)
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	return c
}

func TestBuildDayView(t *testing.T) {
	appts := []Appointment{
		appt(consultantX, 9, 0, 9, 30),
		appt(consultantX, 9, 15, 9, 45),
	}

	view := BuildDayView(gridDate(), appts, testCatalog(t))

	if len(view.Blocks) != 1 || view.Blocks[0] != (calendar.Interval{Start: 9 * 60, End: 9*60 + 45}) {
		t.Errorf("unexpected day blocks: %v", view.Blocks)
	}
	if len(view.Slots) != 4 {
		t.Fatalf("expected 4 slots, got %d", len(view.Slots))
	}

	nine := view.Slots[1]
	if nine.Key != "09:00" {
		t.Fatalf("expected 09:00 slot second, got %q", nine.Key)
	}
	if len(nine.Blocks) != 1 {
		t.Errorf("expected the merged block clipped into 09:00, got %v", nine.Blocks)
	}
	wantGaps := []calendar.Interval{{Start: 9*60 + 45, End: 10 * 60}}
	if !intervalsEqual(nine.Gaps, wantGaps) {
		t.Errorf("09:00 gaps = %v, want %v", nine.Gaps, wantGaps)
	}
	if len(nine.Cells) != 2 {
		t.Errorf("expected 2 positioned cells, got %d", len(nine.Cells))
	}

	eight := view.Slots[0]
	if !intervalsEqual(eight.Gaps, []calendar.Interval{eight.Window}) {
		t.Errorf("untouched slot must be one full gap, got %v", eight.Gaps)
	}
	if len(eight.Cells) != 0 {
		t.Errorf("untouched slot must have no cells, got %v", eight.Cells)
	}

	if len(view.Buckets[consultantX.String()+"-09:00"]) != 2 {
		t.Errorf("unexpected buckets: %+v", view.Buckets)
	}
}

func TestBuildDayView_Empty(t *testing.T) {
	view := BuildDayView(gridDate(), nil, testCatalog(t))

	// Empty input still produces a fully-formed view.
	if view.Blocks == nil {
		t.Error("blocks must be empty, not nil")
	}
	if len(view.Slots) != 4 {
		t.Errorf("expected catalog slots regardless of data, got %d", len(view.Slots))
	}
	if view.Buckets == nil {
		t.Error("buckets must be empty, not nil")
	}
	for _, s := range view.Slots {
		if !intervalsEqual(s.Gaps, []calendar.Interval{s.Window}) {
			t.Errorf("slot %s must be one full gap, got %v", s.Key, s.Gaps)
		}
	}
}
