package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the top status line: logo, record counts, and the
// active query state.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	parts := []string{
		styles.Logo.Render("SKUGRID"),
		fmt.Sprintf("%s %s",
			styles.MutedText.Render("Records:"),
			styles.Text.Render(fmt.Sprintf("%d/%d", len(m.visible), m.index.Len()))),
		fmt.Sprintf("%s %s",
			styles.MutedText.Render("Type:"),
			styles.AccentText.Render(m.typeLabel())),
	}

	if m.searching {
		parts = append(parts, m.searchInput.View())
	} else if v := m.searchInput.Value(); v != "" {
		parts = append(parts, styles.WarningText.Render("/"+v))
	}

	if !m.store.Snapshot().LoadedAt.IsZero() {
		parts = append(parts, styles.FaintText.Render(
			"loaded "+m.store.Snapshot().LoadedAt.Format("15:04:05")))
	}

	line := strings.Join(parts, "  ")
	return styles.Header.Width(m.width).MaxWidth(m.width).Render(line)
}

// renderCommandBar renders the key hint line under the header.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles()

	var hints []string
	for _, b := range m.keys.ShortHelp() {
		hints = append(hints, fmt.Sprintf("%s %s",
			styles.AccentText.Render("<"+b.Help().Key+">"),
			styles.MutedText.Render(b.Help().Desc)))
	}
	line := strings.Join(hints, "  ")
	return lipgloss.NewStyle().Width(m.width).MaxWidth(m.width).Render(line)
}
