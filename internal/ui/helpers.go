package ui

import (
	"strconv"
	"strings"

	"github.com/tansell/skugrid/internal/catalog"
)

// formatID renders a record identifier for display. The invalid-identifier
// sentinel shows as "?" instead of leaking the sentinel value.
func formatID(id int64) string {
	if id == catalog.InvalidID {
		return "?"
	}
	return strconv.FormatInt(id, 10)
}

// truncate shortens value to limit runes, ending in an ellipsis when
// anything was cut.
func truncate(value string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit == 1 {
		return "…"
	}
	return string(runes[:limit-1]) + "…"
}

// truncateMiddle keeps the ends of a long path-like value and elides the
// middle.
func truncateMiddle(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 || value == "" {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	keep := limit - 1
	prefix := keep / 2
	suffix := keep - prefix
	return string(runes[:prefix]) + "…" + string(runes[len(runes)-suffix:])
}
