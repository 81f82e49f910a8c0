package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tansell/skugrid/internal/catalog"
)

// Cell geometry in terminal cells, border included.
const (
	cellWidth  = 14
	cellHeight = 4
	cellInner  = cellWidth - 2

	chromeLines  = 2 // header + command bar
	overscanRows = 1
)

// effectiveCols returns the grid column count: the configured fixed count,
// reduced when the terminal is too narrow to fit it.
func effectiveCols(width, configured int) int {
	fit := width / cellWidth
	if fit < 1 {
		fit = 1
	}
	if configured > 0 && configured < fit {
		return configured
	}
	return fit
}

// rowsOnScreen returns how many full grid rows the content area holds.
func rowsOnScreen(height int) int {
	rows := (height - chromeLines) / cellHeight
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m Model) cols() int {
	return effectiveCols(m.width, m.cfg.Columns)
}

func (m Model) viewport() catalog.Viewport {
	return catalog.Viewport{
		Row:      m.scrollRow,
		Rows:     rowsOnScreen(m.height),
		Cols:     m.cols(),
		Overscan: overscanRows,
	}
}

// clampGrid pulls focus and scroll back into the bounds of the current
// visible sequence, then keeps the focused cell on screen.
func (m *Model) clampGrid() {
	if len(m.visible) == 0 {
		m.focus = 0
		m.scrollRow = 0
		return
	}
	if m.focus >= len(m.visible) {
		m.focus = len(m.visible) - 1
	}
	if m.focus < 0 {
		m.focus = 0
	}
	view := m.viewport()
	if max := view.MaxRow(len(m.visible)); m.scrollRow > max {
		m.scrollRow = max
	}
	if m.scrollRow < 0 {
		m.scrollRow = 0
	}
	m.ensureVisible()
}

// ensureVisible scrolls just far enough to keep the focused cell inside
// the viewport.
func (m *Model) ensureVisible() {
	cols := m.cols()
	rows := rowsOnScreen(m.height)
	focusRow := m.focus / cols

	if focusRow < m.scrollRow {
		m.scrollRow = focusRow
	}
	if focusRow >= m.scrollRow+rows {
		m.scrollRow = focusRow - rows + 1
	}
}

// handleGridKey processes cell-focus movement.
func (m Model) handleGridKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if len(m.visible) == 0 {
		return m, nil
	}
	cols := m.cols()
	rows := rowsOnScreen(m.height)

	switch msg.String() {
	case "h", "left":
		if m.focus > 0 {
			m.focus--
		}
	case "l", "right":
		if m.focus < len(m.visible)-1 {
			m.focus++
		}
	case "k", "up":
		if m.focus-cols >= 0 {
			m.focus -= cols
		}
	case "j", "down":
		if m.focus+cols < len(m.visible) {
			m.focus += cols
		} else if m.focus/cols < (len(m.visible)-1)/cols {
			// Partial last row: land on its final cell.
			m.focus = len(m.visible) - 1
		}
	case "g", "home":
		m.focus = 0
	case "G", "end":
		m.focus = len(m.visible) - 1
	case "pgup":
		m.focus -= cols * rows
	case "pgdown":
		m.focus += cols * rows
	case "ctrl+u":
		m.focus -= cols * (rows / 2)
	case "ctrl+d":
		m.focus += cols * (rows / 2)
	default:
		return m, nil
	}

	if m.focus < 0 {
		m.focus = 0
	}
	if m.focus >= len(m.visible) {
		m.focus = len(m.visible) - 1
	}
	m.ensureVisible()
	return m, m.requestThumbs()
}

// requestThumbs issues lazy image loads for every materialized cell whose
// asset has not been requested yet. Off-screen records beyond the overscan
// band never trigger a fetch.
func (m *Model) requestThumbs() tea.Cmd {
	if m.assets == nil || len(m.visible) == 0 {
		return nil
	}
	start, end := m.viewport().Range(len(m.visible))

	var cmds []tea.Cmd
	for i := start; i < end; i++ {
		id := m.visible[i].ID
		if id == catalog.InvalidID {
			continue
		}
		if _, ok := m.assets.Cached(id); ok {
			continue
		}
		if _, ok := m.pendingThumbs[id]; ok {
			continue
		}
		m.pendingThumbs[id] = struct{}{}
		cmds = append(cmds, loadThumbCmd(m.assets, id))
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// renderMain renders the full browse view.
func (m Model) renderMain() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderGrid())
	return b.String()
}

// renderGrid renders only the on-screen window of the visible sequence.
func (m Model) renderGrid() string {
	styles := m.theme.Styles()
	contentHeight := m.height - chromeLines

	if len(m.visible) == 0 {
		msg := styles.MutedText.Render("No matching records")
		return lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center, msg)
	}

	cols := m.cols()
	rows := rowsOnScreen(m.height)

	var rendered []string
	for row := m.scrollRow; row < m.scrollRow+rows; row++ {
		base := row * cols
		if base >= len(m.visible) {
			break
		}
		cells := make([]string, 0, cols)
		for col := 0; col < cols; col++ {
			idx := base + col
			if idx >= len(m.visible) {
				break
			}
			cells = append(cells, m.renderCell(m.visible[idx], idx == m.focus))
		}
		rendered = append(rendered, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return strings.Join(rendered, "\n")
}

// renderCell renders one record as a bordered cell: color swatch, pixel
// dimensions, and identifier.
func (m Model) renderCell(r catalog.Record, focused bool) string {
	styles := m.theme.Styles()

	borderColor := m.theme.Border
	if focused {
		borderColor = m.theme.BorderFocus
	}

	swatch := styles.FaintText.Render("…")
	if r.ID == catalog.InvalidID {
		swatch = styles.FaintText.Render("bad id")
	} else if m.assets != nil {
		if thumb, ok := m.assets.Cached(r.ID); ok {
			if thumb.OK {
				swatch = lipgloss.NewStyle().
					Foreground(lipgloss.Color(thumb.Color)).
					Render(strings.Repeat("█", 8))
			} else {
				swatch = styles.FaintText.Render("no image")
			}
		}
	}

	idLine := styles.MutedText.Render("#" + formatID(r.ID))
	if focused {
		idLine = styles.Selected.Render("#" + formatID(r.ID))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, swatch, idLine)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(borderColor)).
		Width(cellInner).
		Align(lipgloss.Center).
		Render(content)
}

// renderLoading renders the gate screen shown until ingestion completes.
func (m Model) renderLoading() string {
	styles := m.theme.Styles()
	msg := m.spin.View() + " " + styles.Text.Render("Loading catalog…")
	hint := styles.FaintText.Render(truncateMiddle(m.catalogLocation(), 60))
	content := lipgloss.JoinVertical(lipgloss.Center, msg, "", hint)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// renderLoadError renders the terminal ingestion-failure state.
func (m Model) renderLoadError() string {
	styles := m.theme.Styles()
	lines := []string{
		styles.DangerText.Render("Catalog load failed"),
		"",
		styles.Text.Render(truncate(m.loadErr.Error(), 70)),
		styles.FaintText.Render(truncateMiddle(m.catalogLocation(), 60)),
		"",
		styles.MutedText.Render("q to quit"),
	}
	content := lipgloss.JoinVertical(lipgloss.Center, lines...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) catalogLocation() string {
	if m.cfg == nil {
		return ""
	}
	if m.cfg.CatalogURL != "" {
		return m.cfg.CatalogURL
	}
	return m.cfg.CatalogPath()
}
