package appointment

import "github.com/cliniq/cliniq/internal/domain/calendar"

// CellPosition converts an interval into percentage offsets inside a slot
// cell for absolute stacking. The interval is clipped to the cell first, so
// 0 <= top <= 100 and top+height <= 100 always hold. ok is false when the
// interval does not intersect the cell at all.
func CellPosition(iv, cell calendar.Interval) (topPct, heightPct float64, ok bool) {
	if !cell.IsValid() {
		return 0, 0, false
	}
	clipped, ok := iv.Clip(cell)
	if !ok {
		return 0, 0, false
	}
	span := float64(cell.Duration())
	topPct = float64(clipped.Start-cell.Start) / span * 100
	heightPct = float64(clipped.Duration()) / span * 100
	return topPct, heightPct, true
}
