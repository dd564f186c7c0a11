package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/cliniq/cliniq/internal/domain/appointment"
	"github.com/cliniq/cliniq/internal/domain/availability"
	"github.com/cliniq/cliniq/internal/domain/calendar"
	"github.com/cliniq/cliniq/internal/platform/diag"
)

// wireAppointment matches the appointment shape of the upstream query
// layer: epoch-millisecond boundaries, string ids, empty consultant for
// unassigned bookings.
type wireAppointment struct {
	ID           string `json:"id"`
	ConsultantID string `json:"consultant_id,omitempty"`
	StartTime    int64  `json:"start_time"`
	EndTime      int64  `json:"end_time"`
	PatientName  string `json:"patient_name,omitempty"`
	ServiceName  string `json:"service_name,omitempty"`
}

// wireAvailability matches the availability-event shape: packed
// hour*100+minute boundaries, raw RRULE text, center fan-out via attendees.
type wireAvailability struct {
	ID                 string   `json:"id"`
	HostType           string   `json:"host_type"`
	Host               string   `json:"host"`
	IsActive           bool     `json:"is_active"`
	AvailabilityStatus string   `json:"availability_status"`
	StartTime          int      `json:"start_time"`
	EndTime            int      `json:"end_time"`
	RecurrenceRule     string   `json:"recurrence_rule,omitempty"`
	RecurrenceCount    int      `json:"recurrence_count,omitempty"`
	StartDate          string   `json:"start_date,omitempty"`
	Attendees          []string `json:"attendees,omitempty"`
	Title              string   `json:"title,omitempty"`
}

type wireDocument struct {
	Appointments []wireAppointment  `json:"appointments"`
	Availability []wireAvailability `json:"availability"`
}

// FileSource reads a JSON snapshot document once and serves day views from
// it. It stands in for the out-of-scope query layer in the server and CLI.
type FileSource struct {
	loc          *time.Location
	diag         *diag.Reporter
	appointments []appointment.Appointment
	records      []availability.Record
}

// NewFileSource loads and normalizes the snapshot at path. Records with
// malformed timestamps or windows are excluded and reported once each; a
// malformed document as a whole is the only fatal condition.
func NewFileSource(path string, loc *time.Location, reporter *diag.Reporter) (*FileSource, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var doc wireDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}

	if loc == nil {
		loc = time.UTC
	}
	src := &FileSource{loc: loc, diag: reporter}
	src.decode(doc)
	return src, nil
}

func (s *FileSource) decode(doc wireDocument) {
	for _, w := range doc.Appointments {
		date, window, err := appointment.FromEpochMillis(w.StartTime, w.EndTime, s.loc)
		if err != nil {
			s.diag.Report("appointment:"+w.ID, "appointment excluded", err)
			continue
		}
		s.appointments = append(s.appointments, appointment.Appointment{
			ID:           parseID(w.ID),
			ConsultantID: parseID(w.ConsultantID),
			Date:         date,
			Window:       window,
			PatientName:  w.PatientName,
			ServiceName:  w.ServiceName,
		})
	}

	for _, w := range doc.Availability {
		rec, err := s.decodeAvailability(w)
		if err != nil {
			s.diag.Report("availability:"+w.ID, "availability record excluded", err)
			continue
		}
		s.records = append(s.records, rec)
	}
}

func (s *FileSource) decodeAvailability(w wireAvailability) (availability.Record, error) {
	start, err := calendar.FromPacked(w.StartTime)
	if err != nil {
		return availability.Record{}, fmt.Errorf("start time: %w", err)
	}
	end, err := calendar.FromPacked(w.EndTime)
	if err != nil {
		return availability.Record{}, fmt.Errorf("end time: %w", err)
	}
	window := calendar.Interval{Start: start, End: end}
	if !window.IsValid() {
		return availability.Record{}, fmt.Errorf("window %s has no length", window)
	}

	hostType := availability.HostType(w.HostType)
	if hostType != availability.HostUser && hostType != availability.HostCenter {
		return availability.Record{}, fmt.Errorf("unknown host type %q", w.HostType)
	}

	rec := availability.Record{
		ID:       parseID(w.ID),
		HostType: hostType,
		Host:     parseID(w.Host),
		Active:   w.IsActive,
		Status:   availability.Status(w.AvailabilityStatus),
		Window:   window,
		Title:    w.Title,
	}

	var startDate *calendar.Date
	if w.StartDate != "" {
		d, err := calendar.ParseDate(w.StartDate)
		if err != nil {
			return availability.Record{}, err
		}
		startDate = &d
	}

	if w.RecurrenceRule != "" || w.RecurrenceCount == 1 {
		rec.Rule = &calendar.Rule{
			RRule:     w.RecurrenceRule,
			StartDate: startDate,
			Count:     w.RecurrenceCount,
		}
	} else {
		rec.Date = startDate
	}

	// Dangling attendee ids decode to uuid.Nil; the aggregator skips those
	// references without dropping the record.
	for _, a := range w.Attendees {
		id := parseID(a)
		if id == uuid.Nil {
			s.diag.Report("attendee:"+w.ID+":"+a, "dangling attendee reference", nil)
		}
		rec.Attendees = append(rec.Attendees, id)
	}
	return rec, nil
}

// Day returns the snapshot view for date. The appointment slice is freshly
// allocated per call so callers can treat it as their own.
func (s *FileSource) Day(_ context.Context, date calendar.Date) (DaySnapshot, error) {
	snap := DaySnapshot{Records: s.records}
	for _, a := range s.appointments {
		if a.Date == date {
			snap.Appointments = append(snap.Appointments, a)
		}
	}
	return snap, nil
}

// AppointmentsOn implements the appointment handler's source interface.
func (s *FileSource) AppointmentsOn(ctx context.Context, date calendar.Date) ([]appointment.Appointment, error) {
	snap, err := s.Day(ctx, date)
	if err != nil {
		return nil, err
	}
	return snap.Appointments, nil
}

// RecordsOn implements the availability handler's source interface.
func (s *FileSource) RecordsOn(context.Context, calendar.Date) ([]availability.Record, error) {
	return s.records, nil
}

func parseID(s string) uuid.UUID {
	if s == "" {
		return uuid.Nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}
	return id
}
