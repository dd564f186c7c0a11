// Package appointment implements the grid-rendering side of the scheduling
// engine: validating appointment intervals, merging a day's overlapping
// bookings into display blocks, computing free gaps, and positioning
// intervals inside slot cells.
package appointment

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cliniq/cliniq/internal/domain/calendar"
)

// Unassigned is the bucket key segment for appointments without a
// consultant.
const Unassigned = "unassigned"

var (
	ErrInvalidTimestamp = errors.New("appointment has an invalid timestamp")
	ErrCrossDay         = errors.New("appointment crosses a day boundary")
)

// Appointment is a booked interval on a single calendar date, normalized to
// minutes-since-midnight. ConsultantID is uuid.Nil for unassigned bookings.
type Appointment struct {
	ID           uuid.UUID         `json:"id"`
	ConsultantID uuid.UUID         `json:"consultant_id"`
	Date         calendar.Date     `json:"date"`
	Window       calendar.Interval `json:"window"`
	PatientName  string            `json:"patient_name,omitempty"`
	ServiceName  string            `json:"service_name,omitempty"`
}

// BucketKey returns the (consultant, hour-slot) grouping key.
func (a Appointment) BucketKey() string {
	consultant := Unassigned
	if a.ConsultantID != uuid.Nil {
		consultant = a.ConsultantID.String()
	}
	return fmt.Sprintf("%s-%02d:00", consultant, a.Window.Start.Hour())
}

// FromEpochMillis converts wire-format epoch-millisecond boundaries into a
// date and wall-clock interval in loc. Malformed timestamps are rejected
// here, before the record can reach merging or rendering: zero or negative
// instants, start >= end, and ranges spanning a day boundary all fail.
func FromEpochMillis(startMs, endMs int64, loc *time.Location) (calendar.Date, calendar.Interval, error) {
	if loc == nil {
		loc = time.UTC
	}
	if startMs <= 0 || endMs <= 0 {
		return calendar.Date{}, calendar.Interval{}, fmt.Errorf("%w: start=%d end=%d", ErrInvalidTimestamp, startMs, endMs)
	}
	if startMs >= endMs {
		return calendar.Date{}, calendar.Interval{}, fmt.Errorf("%w: start %d not before end %d", ErrInvalidTimestamp, startMs, endMs)
	}

	start := time.UnixMilli(startMs).In(loc)
	end := time.UnixMilli(endMs).In(loc)
	date := calendar.DateOf(start)

	endDate := calendar.DateOf(end)
	endOfDay := end.Hour() == 0 && end.Minute() == 0
	if endDate != date && !(endOfDay && endDate == date.AddDays(1)) {
		return calendar.Date{}, calendar.Interval{}, fmt.Errorf("%w: %s to %s", ErrCrossDay, date, endDate)
	}

	iv := calendar.Interval{
		Start: calendar.TimeOfDay(start.Hour()*60 + start.Minute()),
		End:   calendar.TimeOfDay(end.Hour()*60 + end.Minute()),
	}
	if endOfDay && endDate != date {
		iv.End = 24 * 60
	}
	return date, iv, nil
}
