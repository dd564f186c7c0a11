package calendar

import (
	"fmt"
	"time"
)

// Date is a civil calendar date with no time-of-day or timezone component.
type Date struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Day   int        `json:"day"`
}

// ParseDate parses a date in "2006-01-02" form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// DateOf truncates t to its calendar date.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Time returns midnight at the start of the date in loc.
func (d Date) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// AddDays returns the date n days after d (n may be negative).
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time(time.UTC).AddDate(0, 0, n))
}

// Weekday returns the day of the week.
func (d Date) Weekday() time.Weekday {
	return d.Time(time.UTC).Weekday()
}

// IsZero reports whether d is the zero date.
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// TimeOfDay is a wall-clock time expressed as minutes since midnight.
// It is the single time representation used inside the engine; packed
// hour*100+minute integers and epoch timestamps are converted at the
// data-model boundary only.
type TimeOfDay int

// ParseClock parses a wall-clock time in "HH:MM" or "H:MM" form.
func ParseClock(s string) (TimeOfDay, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	if h < 0 || h > 24 || m < 0 || m > 59 || (h == 24 && m != 0) {
		return 0, fmt.Errorf("clock time %q out of range", s)
	}
	return TimeOfDay(h*60 + m), nil
}

// FromPacked converts a packed hour*100+minute integer (e.g. 930 for 9:30)
// into minutes since midnight. Packed integers are not linear in minutes, so
// interval arithmetic on them is never valid; this is the only place they
// are accepted.
func FromPacked(p int) (TimeOfDay, error) {
	h, m := p/100, p%100
	if h < 0 || h > 24 || m > 59 || (h == 24 && m != 0) {
		return 0, fmt.Errorf("packed time %d out of range", p)
	}
	return TimeOfDay(h*60 + m), nil
}

// Packed converts back to the hour*100+minute wire form.
func (t TimeOfDay) Packed() int {
	return (int(t)/60)*100 + int(t)%60
}

// Hour returns the hour component, 0-24.
func (t TimeOfDay) Hour() int { return int(t) / 60 }

// Minute returns the minute component, 0-59.
func (t TimeOfDay) Minute() int { return int(t) % 60 }

// String formats as zero-padded "HH:MM", the catalog key form.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// Clock formats as "H:MM" for human-readable messages.
func (t TimeOfDay) Clock() string {
	return fmt.Sprintf("%d:%02d", t.Hour(), t.Minute())
}

// Interval is a half-open [Start, End) wall-clock window within one day.
type Interval struct {
	Start TimeOfDay `json:"start"`
	End   TimeOfDay `json:"end"`
}

// Overlaps reports whether the two half-open intervals intersect.
// Touching intervals do not overlap.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start < other.End && other.Start < iv.End
}

// Contains reports whether t falls inside the interval.
func (iv Interval) Contains(t TimeOfDay) bool {
	return t >= iv.Start && t < iv.End
}

// Duration returns the interval length in minutes.
func (iv Interval) Duration() int {
	return int(iv.End - iv.Start)
}

// IsValid reports whether the interval has positive length.
func (iv Interval) IsValid() bool {
	return iv.Start < iv.End
}

// Clip returns the portion of iv inside bounds, and false when they are
// disjoint.
func (iv Interval) Clip(bounds Interval) (Interval, bool) {
	out := iv
	if out.Start < bounds.Start {
		out.Start = bounds.Start
	}
	if out.End > bounds.End {
		out.End = bounds.End
	}
	if !out.IsValid() {
		return Interval{}, false
	}
	return out, true
}

func (iv Interval) String() string {
	return iv.Start.Clock() + " - " + iv.End.Clock()
}
