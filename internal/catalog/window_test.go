package catalog

import "testing"

func TestGridRows(t *testing.T) {
	cases := []struct {
		name        string
		total, cols int
		want        int
	}{
		{"empty", 0, 10, 0},
		{"exact", 100, 10, 10},
		{"partial_last_row", 101, 10, 11},
		{"single_col_floor", 5, 0, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := GridRows(tc.total, tc.cols); got != tc.want {
				t.Fatalf("GridRows(%d, %d) = %d, want %d", tc.total, tc.cols, got, tc.want)
			}
		})
	}
}

func TestViewportRange_ClampsAndBounds(t *testing.T) {
	cases := []struct {
		name      string
		view      Viewport
		total     int
		wantStart int
		wantEnd   int
	}{
		{"empty_sequence", Viewport{Row: 3, Rows: 5, Cols: 10}, 0, 0, 0},
		{"top", Viewport{Row: 0, Rows: 5, Cols: 10}, 1000, 0, 50},
		{"top_with_overscan", Viewport{Row: 0, Rows: 5, Cols: 10, Overscan: 2}, 1000, 0, 70},
		{"middle_with_overscan", Viewport{Row: 10, Rows: 5, Cols: 10, Overscan: 2}, 1000, 80, 170},
		{"bottom_partial_row", Viewport{Row: 9, Rows: 5, Cols: 10}, 95, 50, 95},
		{"scrolled_past_end", Viewport{Row: 500, Rows: 5, Cols: 10}, 95, 50, 95},
		{"negative_row", Viewport{Row: -4, Rows: 5, Cols: 10}, 100, 0, 50},
		{"zero_rows", Viewport{Row: 0, Rows: 0, Cols: 10}, 100, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start, end := tc.view.Range(tc.total)
			if start != tc.wantStart || end != tc.wantEnd {
				t.Fatalf("Range(%d) = [%d, %d), want [%d, %d)", tc.total, start, end, tc.wantStart, tc.wantEnd)
			}
		})
	}
}

func TestViewportRange_MaterializationBoundedForHugeSequences(t *testing.T) {
	const total = 50000
	view := Viewport{Rows: 8, Cols: 10, Overscan: 2}
	bound := (view.Rows + 2*view.Overscan) * view.Cols

	for row := 0; row < GridRows(total, view.Cols); row += 97 {
		view.Row = row
		start, end := view.Range(total)
		if end-start > bound {
			t.Fatalf("row %d: materialized %d cells, want <= %d", row, end-start, bound)
		}
		if start < 0 || end > total || start > end {
			t.Fatalf("row %d: invalid range [%d, %d)", row, start, end)
		}
	}
}

func TestViewportRange_FilterShrinkLeavesNoStaleCells(t *testing.T) {
	view := Viewport{Row: 400, Rows: 8, Cols: 10, Overscan: 1}

	// Scrolled deep into a large sequence, then the filter shrinks it.
	start, end := view.Range(37)
	if end > 37 {
		t.Fatalf("Range end = %d, exceeds shrunk sequence of 37", end)
	}
	if start >= end {
		t.Fatalf("Range = [%d, %d), want a non-empty window at the clamped position", start, end)
	}
}
