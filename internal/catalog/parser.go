package catalog

import "strings"

// Delimiter separates fields within one catalog line. The export uses a
// pipe so free-text description fields need no quoting or escaping.
const Delimiter = "|"

// Parse turns the complete raw catalog text into the ordered record
// sequence. Blank and whitespace-only lines are skipped; every other line
// yields exactly one record, however malformed. Parse is a pure function
// of its input.
func Parse(raw []byte) []Record {
	lines := strings.Split(string(raw), "\n")

	records := make([]Record, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		records = append(records, recordFromFields(strings.Split(line, Delimiter)))
	}
	return records
}
