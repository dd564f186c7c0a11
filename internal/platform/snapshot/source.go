// Package snapshot is the engine's data boundary. The dashboard's query
// layer (GraphQL, persistence) lives outside this repository; a Source hands
// the engine immutable per-day snapshots of appointments and availability
// records, already normalized to the internal time representation. All wire
// formats (epoch-millisecond timestamps, packed hour*100+minute integers,
// raw RRULE strings) are decoded here and nowhere else.
package snapshot

import (
	"context"

	"github.com/cliniq/cliniq/internal/domain/appointment"
	"github.com/cliniq/cliniq/internal/domain/availability"
	"github.com/cliniq/cliniq/internal/domain/calendar"
)

// DaySnapshot is one day's worth of source data. Appointments are filtered
// to the requested date; availability records are returned whole because
// recurrence makes their date membership a per-record question the
// aggregator answers.
type DaySnapshot struct {
	Appointments []appointment.Appointment
	Records      []availability.Record
}

// Source supplies day snapshots to the engine and its surfaces.
type Source interface {
	Day(ctx context.Context, date calendar.Date) (DaySnapshot, error)
}
