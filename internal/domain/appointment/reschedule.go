package appointment

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/cliniq/cliniq/internal/domain/calendar"
)

// RescheduleRequest carries a pending reschedule between flows as an
// explicit value: the grid produces it, the booking form consumes it. It is
// never stashed in ambient state.
type RescheduleRequest struct {
	AppointmentID uuid.UUID         `json:"appointment_id"`
	ConsultantID  uuid.UUID         `json:"consultant_id"`
	TargetDate    calendar.Date     `json:"target_date"`
	Target        calendar.Interval `json:"target"`
}

// Validate checks the request is well-formed before it is handed to the
// conflict detector.
func (r RescheduleRequest) Validate() error {
	if r.AppointmentID == uuid.Nil {
		return fmt.Errorf("appointment_id is required")
	}
	if r.TargetDate.IsZero() {
		return fmt.Errorf("target_date is required")
	}
	if !r.Target.IsValid() {
		return fmt.Errorf("target window must have positive length")
	}
	return nil
}
