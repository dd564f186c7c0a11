// Package availability implements the unavailability aggregation and
// booking-conflict side of the scheduling engine: filtering availability
// records to a date, fanning center-wide records out to their attendees, and
// advising the booking form about overlapping windows.
package availability

import (
	"github.com/google/uuid"

	"github.com/cliniq/cliniq/internal/domain/calendar"
)

// HostType discriminates who owns an availability record.
type HostType string

const (
	HostUser   HostType = "USER"
	HostCenter HostType = "CENTER"
)

// Status tags the kind of window a record describes. AVAILABLE windows are
// informational; every other status blocks bookings.
type Status string

const (
	StatusAvailable   Status = "AVAILABLE"
	StatusUnavailable Status = "UNAVAILABLE"
	StatusLeave       Status = "LEAVE"
	StatusHoliday     Status = "HOLIDAY"
	StatusInterview   Status = "INTERVIEW"
	StatusMeeting     Status = "MEETING"
	StatusBreak       Status = "BREAK"
)

// Category returns the human-readable label used in conflict warnings.
// Unrecognized statuses read as a meeting.
func (s Status) Category() string {
	switch s {
	case StatusBreak:
		return "break"
	case StatusMeeting:
		return "meeting"
	case StatusLeave:
		return "leave"
	case StatusHoliday:
		return "holiday"
	case StatusInterview:
		return "interview"
	case StatusUnavailable:
		return "unavailable period"
	default:
		return "meeting"
	}
}

// Blocking reports whether the status excludes bookings.
func (s Status) Blocking() bool {
	return s != StatusAvailable
}

// Record is one availability/unavailability window. A USER-hosted record
// applies to its host consultant only; a CENTER-hosted record applies to
// every consultant in Attendees. Window is already normalized to
// minutes-since-midnight; packed wire integers never reach this type.
type Record struct {
	ID        uuid.UUID         `json:"id"`
	HostType  HostType          `json:"host_type"`
	Host      uuid.UUID         `json:"host"`
	Active    bool              `json:"active"`
	Status    Status            `json:"status"`
	Window    calendar.Interval `json:"window"`
	Rule      *calendar.Rule    `json:"rule,omitempty"`
	Date      *calendar.Date    `json:"date,omitempty"`
	Attendees []uuid.UUID       `json:"attendees,omitempty"`
	Title     string            `json:"title,omitempty"`
}

// occursOn resolves the record's date filter: recurring records go through
// the expander, non-recurring ones compare their stored date directly.
func (r Record) occursOn(exp *calendar.Expander, date calendar.Date) bool {
	if r.Rule != nil {
		return exp.OccursOn(*r.Rule, date)
	}
	if r.Date != nil {
		return *r.Date == date
	}
	return false
}
