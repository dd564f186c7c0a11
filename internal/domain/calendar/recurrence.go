package calendar

import (
	"strings"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/cliniq/cliniq/internal/platform/diag"
)

// Rule describes when a record occurs: either a one-time rule bound to a
// single start date (recognized by Count == 1 or an empty rule string), or a
// recurring rule carried as a raw RRULE string (FREQ/INTERVAL/COUNT/UNTIL/
// BYDAY grammar). The rule text is opaque to callers; only its expansion
// semantics are observable.
type Rule struct {
	RRule     string `json:"rrule,omitempty"`
	StartDate *Date  `json:"start_date,omitempty"`
	Count     int    `json:"count,omitempty"`
}

// IsOneTime reports whether the rule describes a single occurrence.
func (r Rule) IsOneTime() bool {
	return r.Count == 1 || strings.TrimSpace(r.RRule) == ""
}

// Expander evaluates recurrence rules against calendar dates. It is
// stateless apart from its diagnostic reporter; OccursOn is deterministic
// for a given (rule, date) pair regardless of call order.
type Expander struct {
	diag *diag.Reporter
}

// NewExpander creates an Expander. The reporter may be nil.
func NewExpander(reporter *diag.Reporter) *Expander {
	return &Expander{diag: reporter}
}

// OccursOn reports whether the rule has at least one occurrence on the given
// date. One-time rules compare calendar dates only, ignoring time-of-day.
// A malformed rule string never propagates an error: it yields no occurrence
// and is reported once per rule text.
func (e *Expander) OccursOn(rule Rule, date Date) bool {
	if rule.IsOneTime() {
		if rule.StartDate == nil {
			return false
		}
		return *rule.StartDate == date
	}

	opt, err := rrule.StrToROption(strings.TrimPrefix(strings.TrimSpace(rule.RRule), "RRULE:"))
	if err != nil {
		e.diag.Report("rrule:"+rule.RRule, "malformed recurrence rule", err)
		return false
	}
	if opt.Dtstart.IsZero() && rule.StartDate != nil {
		opt.Dtstart = rule.StartDate.Time(time.UTC)
	}

	rr, err := rrule.NewRRule(*opt)
	if err != nil {
		e.diag.Report("rrule:"+rule.RRule, "malformed recurrence rule", err)
		return false
	}

	// Closed-open day window [date 00:00, date+1 00:00).
	dayStart := date.Time(time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return len(rr.Between(dayStart, dayEnd, true)) > 0
}
