package calendar

import "fmt"

// Slot is a single display slot in the catalog. Its identity is the "HH:MM"
// key of its start time.
type Slot struct {
	Start TimeOfDay `json:"start"`
	Step  int       `json:"step_minutes"`
}

// Key returns the slot's identity string.
func (s Slot) Key() string { return s.Start.String() }

// Window returns the half-open interval the slot covers.
func (s Slot) Window() Interval {
	return Interval{Start: s.Start, End: s.Start + TimeOfDay(s.Step)}
}

// Catalog is the fixed, ordered sequence of display slots shared by every
// rendering surface. Granularity is caller configuration; the engine never
// assumes a specific open hour or step.
type Catalog struct {
	Open  TimeOfDay
	Close TimeOfDay
	Step  int // minutes per slot
}

// NewCatalog builds a catalog covering [open, close) at the given step.
func NewCatalog(open, close TimeOfDay, stepMinutes int) (Catalog, error) {
	if stepMinutes <= 0 {
		return Catalog{}, fmt.Errorf("slot step must be positive, got %d", stepMinutes)
	}
	if open >= close {
		return Catalog{}, fmt.Errorf("catalog open %s must precede close %s", open, close)
	}
	return Catalog{Open: open, Close: close, Step: stepMinutes}, nil
}

// Slots returns the ordered slot sequence. The final slot may be shorter
// than Step when the day window is not an exact multiple.
func (c Catalog) Slots() []Slot {
	var out []Slot
	for start := c.Open; start < c.Close; start += TimeOfDay(c.Step) {
		step := c.Step
		if start+TimeOfDay(step) > c.Close {
			step = int(c.Close - start)
		}
		out = append(out, Slot{Start: start, Step: step})
	}
	return out
}

// Window returns the full day window the catalog spans.
func (c Catalog) Window() Interval {
	return Interval{Start: c.Open, End: c.Close}
}

// HourSlot returns the start of the hour-slot containing t, used as the
// bucketing key for grid lookup.
func HourSlot(t TimeOfDay) TimeOfDay {
	return TimeOfDay(t.Hour() * 60)
}
