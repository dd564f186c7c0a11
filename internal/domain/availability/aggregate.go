package availability

import (
	"github.com/google/uuid"

	"github.com/cliniq/cliniq/internal/domain/calendar"
)

// Aggregate filters records to the given date and groups them by the
// consultant each one applies to.
//
// Scope filter: when filter is non-empty, USER-hosted records are kept only
// if their host is in the filter. CENTER-hosted records always pass; they
// may still fan out to consultants outside the filter.
//
// Fan-out: USER records attach to their host; CENTER records attach to every
// attendee. A dangling (nil) attendee reference is skipped without
// discarding the record's other references. Each record contributes at most
// one entry per consultant, in input order. Inactive records are excluded
// entirely.
func Aggregate(exp *calendar.Expander, records []Record, date calendar.Date, filter []uuid.UUID) map[uuid.UUID][]Record {
	scoped := make(map[uuid.UUID]bool, len(filter))
	for _, id := range filter {
		scoped[id] = true
	}

	out := make(map[uuid.UUID][]Record)
	attached := make(map[[2]uuid.UUID]bool)

	attach := func(consultant uuid.UUID, rec Record) {
		if consultant == uuid.Nil {
			return
		}
		key := [2]uuid.UUID{consultant, rec.ID}
		if attached[key] {
			return
		}
		attached[key] = true
		out[consultant] = append(out[consultant], rec)
	}

	for _, rec := range records {
		if !rec.Active {
			continue
		}
		if len(filter) > 0 && rec.HostType == HostUser && !scoped[rec.Host] {
			continue
		}
		if !rec.occursOn(exp, date) {
			continue
		}

		switch rec.HostType {
		case HostUser:
			attach(rec.Host, rec)
		case HostCenter:
			for _, attendee := range rec.Attendees {
				attach(attendee, rec)
			}
		}
	}
	return out
}
