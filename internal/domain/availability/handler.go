package availability

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/cliniq/cliniq/internal/domain/calendar"
)

// Source supplies the availability records backing the handler's views. The
// query layer behind it is out of scope; the handler only sees normalized
// records.
type Source interface {
	RecordsOn(ctx context.Context, date calendar.Date) ([]Record, error)
}

type Handler struct {
	src Source
	exp *calendar.Expander
}

func NewHandler(src Source, exp *calendar.Expander) *Handler {
	return &Handler{src: src, exp: exp}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/schedule/unavailability", h.GetUnavailability)
	api.POST("/schedule/conflict-check", h.CheckConflict)
}

// GetUnavailability handles GET /schedule/unavailability?date=&consultants=.
func (h *Handler) GetUnavailability(c echo.Context) error {
	date, err := calendar.ParseDate(c.QueryParam("date"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "date is required in YYYY-MM-DD form")
	}

	var filter []uuid.UUID
	if raw := c.QueryParam("consultants"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			id, err := uuid.Parse(strings.TrimSpace(part))
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "invalid consultant id")
			}
			filter = append(filter, id)
		}
	}

	records, err := h.src.RecordsOn(c.Request().Context(), date)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	grouped := Aggregate(h.exp, records, date, filter)

	// Empty result is an empty object, never null.
	out := make(map[string][]Record, len(grouped))
	for id, recs := range grouped {
		out[id.String()] = recs
	}
	return c.JSON(http.StatusOK, out)
}

// conflictCheckRequest is the JSON body for the conflict-check endpoint.
// Times are wall-clock "HH:MM" strings.
type conflictCheckRequest struct {
	ConsultantID string `json:"consultant_id"`
	Date         string `json:"date"`
	Start        string `json:"start"`
	End          string `json:"end"`
}

// CheckConflict handles POST /schedule/conflict-check. A conflicting
// candidate yields the advisory warning; a clean one yields 204. The check
// never rejects a booking.
func (h *Handler) CheckConflict(c echo.Context) error {
	var req conflictCheckRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	consultant, err := uuid.Parse(req.ConsultantID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "consultant_id is required")
	}
	date, err := calendar.ParseDate(req.Date)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "date is required in YYYY-MM-DD form")
	}
	start, err := calendar.ParseClock(req.Start)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "start must be HH:MM")
	}
	end, err := calendar.ParseClock(req.End)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "end must be HH:MM")
	}
	candidate := calendar.Interval{Start: start, End: end}
	if !candidate.IsValid() {
		return echo.NewHTTPError(http.StatusBadRequest, "start must precede end")
	}

	records, err := h.src.RecordsOn(c.Request().Context(), date)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	warning := CheckConflict(h.exp, candidate, consultant, date, records)
	if warning == nil {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, warning)
}
