package ui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tansell/skugrid/internal/catalog"
	"github.com/tansell/skugrid/internal/config"
	"github.com/tansell/skugrid/internal/state"
)

func TestEffectiveCols(t *testing.T) {
	cases := []struct {
		name       string
		width      int
		configured int
		want       int
	}{
		{"configured fits", 200, 10, 10},
		{"narrow terminal wins", 80, 10, 5},
		{"tiny terminal floors at one", 10, 10, 1},
		{"unconfigured uses fit", 80, 0, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := effectiveCols(tc.width, tc.configured); got != tc.want {
				t.Fatalf("effectiveCols(%d, %d) = %d, want %d", tc.width, tc.configured, got, tc.want)
			}
		})
	}
}

func TestRowsOnScreen(t *testing.T) {
	if got := rowsOnScreen(24); got != 5 {
		t.Fatalf("rowsOnScreen(24) = %d, want 5", got)
	}
	if got := rowsOnScreen(3); got != 1 {
		t.Fatalf("rowsOnScreen(3) = %d, want 1", got)
	}
}

// browseModel builds a ready Model in the browse phase holding n records
// whose long descriptions carry a per-record marker for search tests.
func browseModel(t *testing.T, n int) Model {
	t.Helper()

	var b strings.Builder
	for i := 1; i <= n; i++ {
		fields := make([]string, catalog.FieldCount)
		fields[0] = fmt.Sprintf("%d", i)
		fields[1] = "hat"
		fields[9] = fmt.Sprintf("marker%d", i)
		b.WriteString(strings.Join(fields, "|"))
		b.WriteString("\n")
	}

	m := New(Options{
		Config: &config.Config{Columns: 10},
		Store:  &state.Store{},
	})

	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = next.(Model)

	next, _ = m.handleLoaded(state.Snapshot{
		Records: catalog.Parse([]byte(b.String())),
		Loaded:  true,
	})
	m = next.(Model)

	if m.phase != phaseBrowse {
		t.Fatalf("phase = %d, want browse", m.phase)
	}
	return m
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, s := range keys {
		next, _ := m.Update(keyMsg(s))
		m = next.(Model)
	}
	return m
}

func TestGridMovement_ClampsAtEdges(t *testing.T) {
	m := browseModel(t, 12) // 5 cols at width 80: rows of 5, 5, 2

	m = press(t, m, "h", "k")
	if m.focus != 0 {
		t.Fatalf("focus = %d after moving past the start, want 0", m.focus)
	}

	m = press(t, m, "G", "l", "j")
	if m.focus != 11 {
		t.Fatalf("focus = %d after moving past the end, want 11", m.focus)
	}
}

func TestGridMovement_DownLandsOnPartialLastRow(t *testing.T) {
	m := browseModel(t, 12)

	// Focus column 4 of row 0; the last row only has columns 0-1.
	m = press(t, m, "l", "l", "l", "l", "j", "j")
	if m.focus != 11 {
		t.Fatalf("focus = %d, want 11 (last cell of the partial row)", m.focus)
	}
}

func TestScrollFollowsFocus(t *testing.T) {
	m := browseModel(t, 50) // 10 grid rows, 5 on screen

	m = press(t, m, "G")
	if m.focus != 49 {
		t.Fatalf("focus = %d, want 49", m.focus)
	}
	if m.scrollRow != 5 {
		t.Fatalf("scrollRow = %d, want 5", m.scrollRow)
	}

	m = press(t, m, "g")
	if m.scrollRow != 0 {
		t.Fatalf("scrollRow = %d after g, want 0", m.scrollRow)
	}
}

func TestFilterShrink_ClampsFocusAndScroll(t *testing.T) {
	m := browseModel(t, 50)
	m = press(t, m, "G")

	// Narrow the visible sequence to one record while scrolled deep.
	m = press(t, m, "/")
	m = press(t, m, "marker7")
	if len(m.visible) != 1 {
		t.Fatalf("visible = %d records, want 1", len(m.visible))
	}
	if m.focus != 0 || m.scrollRow != 0 {
		t.Fatalf("focus=%d scrollRow=%d after shrink, want 0/0", m.focus, m.scrollRow)
	}
}

func TestSearch_EscClearsAndEnterKeeps(t *testing.T) {
	m := browseModel(t, 10)

	m = press(t, m, "/", "marker3")
	if len(m.visible) != 1 {
		t.Fatalf("visible = %d during live search, want 1", len(m.visible))
	}

	kept := press(t, m, "enter")
	if kept.searching {
		t.Fatal("enter should leave search mode")
	}
	if len(kept.visible) != 1 {
		t.Fatalf("visible = %d after enter, want filter kept", len(kept.visible))
	}

	cleared := press(t, m, "esc")
	if len(cleared.visible) != 10 {
		t.Fatalf("visible = %d after esc, want all 10", len(cleared.visible))
	}
}

func TestTypeCycle_WrapsBackToAll(t *testing.T) {
	m := browseModel(t, 3)

	if m.typeLabel() != "All" {
		t.Fatalf("initial type label = %q, want All", m.typeLabel())
	}
	m = press(t, m, "f")
	if m.typeLabel() != "hat" {
		t.Fatalf("type label = %q after f, want hat", m.typeLabel())
	}
	m = press(t, m, "f")
	if m.typeLabel() != "All" {
		t.Fatalf("type label = %q after full cycle, want All", m.typeLabel())
	}
}

func TestEscClearsBothFilters(t *testing.T) {
	m := browseModel(t, 10)

	m = press(t, m, "f")
	m = press(t, m, "/", "marker2", "enter")
	if len(m.visible) != 1 {
		t.Fatalf("visible = %d with both filters, want 1", len(m.visible))
	}

	m = press(t, m, "esc")
	if len(m.visible) != 10 {
		t.Fatalf("visible = %d after esc, want 10", len(m.visible))
	}
	if m.typeLabel() != "All" {
		t.Fatalf("type label = %q after esc, want All", m.typeLabel())
	}
}

func TestDetail_OpenAndClose(t *testing.T) {
	m := browseModel(t, 5)

	m = press(t, m, "l", "l", "enter")
	if !m.showDetail {
		t.Fatal("enter should open the detail view")
	}
	r, ok := m.selection.Current()
	if !ok || r.ID != 3 {
		t.Fatalf("selection = %+v ok=%v, want record 3", r, ok)
	}

	m = press(t, m, "esc")
	if m.showDetail {
		t.Fatal("esc should close the detail view")
	}
	if _, ok := m.selection.Current(); ok {
		t.Fatal("closing the detail view should clear the selection")
	}
}

func TestLoadFailure_IsTerminal(t *testing.T) {
	m := New(Options{
		Config: &config.Config{},
		Store:  &state.Store{},
	})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = next.(Model)

	next, _ = m.handleLoaded(state.Snapshot{Err: fmt.Errorf("read catalog: boom")})
	m = next.(Model)
	if m.phase != phaseFailed {
		t.Fatalf("phase = %d, want failed", m.phase)
	}

	// Browse keys are inert; the view stays on the error screen.
	m = press(t, m, "/", "f", "enter")
	if m.phase != phaseFailed {
		t.Fatalf("phase = %d after input, want failed", m.phase)
	}
	view := m.View()
	if !strings.Contains(view, "Catalog load failed") {
		t.Fatalf("error view missing failure banner:\n%s", view)
	}
}

func TestView_RendersOnlyWindowedCells(t *testing.T) {
	m := browseModel(t, 5000)

	view := m.renderGrid()
	if strings.Contains(view, "#4999") {
		t.Fatal("grid rendered a cell far outside the viewport")
	}
	if !strings.Contains(view, "#1") {
		t.Fatal("grid did not render the first on-screen cell")
	}
}
