package catalog

// Viewport describes the visible portion of the record grid. All values
// are in grid units: rows of Cols cells each.
type Viewport struct {
	Row      int // first visible grid row
	Rows     int // visible row count
	Cols     int // fixed column count
	Overscan int // extra rows materialized above and below the screen
}

// GridRows returns the number of grid rows needed for total records laid
// out in cols columns.
func GridRows(total, cols int) int {
	if cols < 1 {
		cols = 1
	}
	return (total + cols - 1) / cols
}

// MaxRow returns the largest valid first-visible row for total records,
// i.e. the row at which the last grid row is still on screen.
func (v Viewport) MaxRow(total int) int {
	max := GridRows(total, v.Cols) - v.Rows
	if max < 0 {
		return 0
	}
	return max
}

// Range returns the half-open record index range [start, end) that must be
// materialized for the current viewport. The result is clamped into the
// sequence, so a stale scroll position after a filter change can never
// reference out-of-range records. The range size is bounded by
// (Rows + 2*Overscan) * Cols regardless of total.
func (v Viewport) Range(total int) (start, end int) {
	if total <= 0 || v.Rows <= 0 {
		return 0, 0
	}
	cols := v.Cols
	if cols < 1 {
		cols = 1
	}

	row := v.Row
	if max := v.MaxRow(total); row > max {
		row = max
	}
	if row < 0 {
		row = 0
	}

	start = (row - v.Overscan) * cols
	if start < 0 {
		start = 0
	}
	end = (row + v.Rows + v.Overscan) * cols
	if end > total {
		end = total
	}
	return start, end
}
