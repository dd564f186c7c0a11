package availability

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/cliniq/cliniq/internal/domain/calendar"
)

// Warning is the advisory produced when a candidate booking overlaps a
// blocking window. It never prevents submission; the booking surface decides
// how to present it.
type Warning struct {
	Severity string            `json:"severity"`
	Category string            `json:"category"`
	Window   calendar.Interval `json:"window"`
	Message  string            `json:"message"`
}

// CheckConflict reports whether the candidate range overlaps an active
// blocking window for the consultant on the given date. Only USER-hosted
// records owned by the consultant are consulted; center-wide windows are
// shown on the grid but do not flag individual bookings. The first
// conflicting record in input order wins; no conflict returns nil.
func CheckConflict(exp *calendar.Expander, candidate calendar.Interval, consultant uuid.UUID, date calendar.Date, records []Record) *Warning {
	if !candidate.IsValid() || consultant == uuid.Nil {
		return nil
	}

	for _, rec := range records {
		if rec.HostType != HostUser || rec.Host != consultant {
			continue
		}
		if !rec.Active || !rec.Status.Blocking() {
			continue
		}
		if !rec.Window.IsValid() {
			continue
		}
		if !rec.occursOn(exp, date) {
			continue
		}
		if !candidate.Overlaps(rec.Window) {
			continue
		}

		category := rec.Status.Category()
		return &Warning{
			Severity: "warning",
			Category: category,
			Window:   rec.Window,
			Message: fmt.Sprintf("consultant has a %s from %s to %s",
				category, rec.Window.Start.Clock(), rec.Window.End.Clock()),
		}
	}
	return nil
}
