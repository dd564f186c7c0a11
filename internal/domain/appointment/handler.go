package appointment

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/cliniq/cliniq/internal/domain/availability"
	"github.com/cliniq/cliniq/internal/domain/calendar"
)

// Source supplies one day's appointments to the grid views.
type Source interface {
	AppointmentsOn(ctx context.Context, date calendar.Date) ([]Appointment, error)
}

type Handler struct {
	src     Source
	records availability.Source
	exp     *calendar.Expander
	catalog calendar.Catalog
}

func NewHandler(src Source, records availability.Source, exp *calendar.Expander, catalog calendar.Catalog) *Handler {
	return &Handler{src: src, records: records, exp: exp, catalog: catalog}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/agenda/day", h.GetDay)
	api.POST("/agenda/reschedule-check", h.RescheduleCheck)
}

// GetDay handles GET /agenda/day?date=. It returns the merged blocks, free
// gaps per slot, cell positions, and slot buckets for the date.
func (h *Handler) GetDay(c echo.Context) error {
	date, err := calendar.ParseDate(c.QueryParam("date"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "date is required in YYYY-MM-DD form")
	}

	appts, err := h.src.AppointmentsOn(c.Request().Context(), date)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	view := BuildDayView(date, appts, h.catalog)
	return c.JSON(http.StatusOK, view)
}

// rescheduleCheckRequest is the wire form of a RescheduleRequest.
type rescheduleCheckRequest struct {
	AppointmentID string `json:"appointment_id"`
	ConsultantID  string `json:"consultant_id"`
	TargetDate    string `json:"target_date"`
	Start         string `json:"start"`
	End           string `json:"end"`
}

// RescheduleCheck handles POST /agenda/reschedule-check: the grid sends the
// pending reschedule as an explicit command and gets back the same advisory
// warning the booking form would show, or 204 when the target is clear.
func (h *Handler) RescheduleCheck(c echo.Context) error {
	var wire rescheduleCheckRequest
	if err := c.Bind(&wire); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	req, err := h.decodeReschedule(wire)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	records, err := h.records.RecordsOn(c.Request().Context(), req.TargetDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	warning := availability.CheckConflict(h.exp, req.Target, req.ConsultantID, req.TargetDate, records)
	if warning == nil {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, warning)
}

func (h *Handler) decodeReschedule(wire rescheduleCheckRequest) (RescheduleRequest, error) {
	var req RescheduleRequest
	var err error

	if req.AppointmentID, err = uuid.Parse(wire.AppointmentID); err != nil {
		return req, err
	}
	if wire.ConsultantID != "" {
		if req.ConsultantID, err = uuid.Parse(wire.ConsultantID); err != nil {
			return req, err
		}
	}
	if req.TargetDate, err = calendar.ParseDate(wire.TargetDate); err != nil {
		return req, err
	}
	if req.Target.Start, err = calendar.ParseClock(wire.Start); err != nil {
		return req, err
	}
	if req.Target.End, err = calendar.ParseClock(wire.End); err != nil {
		return req, err
	}
	return req, nil
}
