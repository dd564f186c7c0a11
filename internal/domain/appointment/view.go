package appointment

import (
	"github.com/google/uuid"

	"github.com/cliniq/cliniq/internal/domain/calendar"
)

// CellView positions one appointment inside a slot cell, in percent of the
// cell height.
type CellView struct {
	AppointmentID uuid.UUID `json:"appointment_id"`
	Top           float64   `json:"top_pct"`
	Height        float64   `json:"height_pct"`
}

// SlotView is one catalog slot with its merged blocks, free gaps, and
// positioned appointments.
type SlotView struct {
	Key    string              `json:"key"`
	Window calendar.Interval   `json:"window"`
	Blocks []calendar.Interval `json:"blocks"`
	Gaps   []calendar.Interval `json:"gaps"`
	Cells  []CellView          `json:"cells"`
}

// DayView is the full grid projection for one date. It is recomputed from
// scratch on every request; nothing in it survives the request that built
// it.
type DayView struct {
	Date    calendar.Date            `json:"date"`
	Blocks  []calendar.Interval      `json:"blocks"`
	Slots   []SlotView               `json:"slots"`
	Buckets map[string][]Appointment `json:"buckets"`
}

// BuildDayView derives the grid view for one day's appointments over the
// given catalog. Blocks are merged across the whole day, then each slot
// reports the gaps and cell positions inside its own window. Empty input
// produces an empty-but-valid view.
func BuildDayView(date calendar.Date, appts []Appointment, catalog calendar.Catalog) DayView {
	blocks := MergeDay(appts)
	if blocks == nil {
		blocks = []calendar.Interval{}
	}

	view := DayView{
		Date:    date,
		Blocks:  blocks,
		Slots:   []SlotView{},
		Buckets: BucketBySlot(appts),
	}

	for _, slot := range catalog.Slots() {
		window := slot.Window()
		sv := SlotView{
			Key:    slot.Key(),
			Window: window,
			Blocks: []calendar.Interval{},
			Gaps:   GapsWithin(window, blocks),
			Cells:  []CellView{},
		}
		if sv.Gaps == nil {
			sv.Gaps = []calendar.Interval{}
		}
		for _, b := range blocks {
			if clipped, ok := b.Clip(window); ok {
				sv.Blocks = append(sv.Blocks, clipped)
			}
		}
		for _, a := range appts {
			if top, height, ok := CellPosition(a.Window, window); ok {
				sv.Cells = append(sv.Cells, CellView{AppointmentID: a.ID, Top: top, Height: height})
			}
		}
		view.Slots = append(view.Slots, sv)
	}
	return view
}
