package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

const (
	detailWidth     = 64
	detailLabelCols = 12
)

// openDetail promotes the focused record into the selection and opens the
// detail modal. Opening while one is already open replaces the selection.
func (m Model) openDetail() (tea.Model, tea.Cmd) {
	if m.focus < 0 || m.focus >= len(m.visible) {
		return m, nil
	}
	m.selection.Select(m.visible[m.focus])
	m.showDetail = true
	m.resizeDetail()
	m.detailView.SetContent(m.detailContent())
	m.detailView.GotoTop()
	return m, nil
}

// handleDetailKey processes keys while the detail modal is open.
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "enter":
		m.selection.Clear()
		m.showDetail = false
		return m, nil
	}
	var cmd tea.Cmd
	m.detailView, cmd = m.detailView.Update(msg)
	return m, cmd
}

func (m *Model) resizeDetail() {
	height := m.height - 8
	if height < 5 {
		height = 5
	}
	if height > 24 {
		height = 24
	}
	m.detailView = viewport.New(detailWidth, height)
}

// detailContent renders the full field set of the selected record, in
// schema order. The displayed values are the ones captured at selection
// time, never a re-lookup.
func (m Model) detailContent() string {
	record, ok := m.selection.Current()
	if !ok {
		return ""
	}
	styles := m.theme.Styles()
	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Accent)).
		Width(detailLabelCols)

	var b strings.Builder
	for _, f := range record.Fields() {
		value := f.Value
		if strings.TrimSpace(value) == "" {
			value = styles.FaintText.Render("—")
		} else {
			value = styles.Text.Render(value)
		}
		b.WriteString(labelStyle.Render(f.Name))
		b.WriteString(" ")
		b.WriteString(value)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderDetail renders the detail modal centered over the grid.
func (m Model) renderDetail() string {
	record, ok := m.selection.Current()
	if !ok {
		return m.renderMain()
	}
	styles := m.theme.Styles()

	title := styles.Text.Bold(true).Render("SKU #" + formatID(record.ID))
	body := m.detailView.View()
	footer := styles.FaintText.Render("esc to close · j/k to scroll")

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.BorderFocus)).
		Padding(1, 2).
		Width(detailWidth + 4)

	content := lipgloss.JoinVertical(lipgloss.Left, title, "", body, "", footer)
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(content),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
