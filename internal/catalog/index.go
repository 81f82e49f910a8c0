package catalog

import "strings"

// Index holds the full ingested record sequence together with the live
// query state (search text + type filter) and recomputes the visible
// subset on demand. The sequence never changes after construction; the
// index is the only writer of the query state.
type Index struct {
	records []Record
	types   []string
	search  string // lowercased at set time
	typeTag string
}

// NewIndex captures the ordered record sequence and derives the distinct
// type list in first-seen order. The list is derived from the full
// sequence, not the filtered view, so the type selector never reorders
// while the user is filtering.
func NewIndex(records []Record) *Index {
	seen := make(map[string]struct{}, 16)
	var types []string
	for _, r := range records {
		if _, ok := seen[r.Type]; ok {
			continue
		}
		seen[r.Type] = struct{}{}
		types = append(types, r.Type)
	}
	return &Index{records: records, types: types}
}

// SetSearch replaces the free-text search term.
func (x *Index) SetSearch(text string) {
	x.search = strings.ToLower(text)
}

// SetType replaces the type filter. The empty string matches every record.
func (x *Index) SetType(tag string) {
	x.typeTag = tag
}

// Search returns the current search text (lowercased form).
func (x *Index) Search() string { return x.search }

// Type returns the current type filter.
func (x *Index) Type() string { return x.typeTag }

// Types returns the distinct type values of the full sequence in
// first-seen order.
func (x *Index) Types() []string { return x.types }

// Len returns the full (unfiltered) sequence length.
func (x *Index) Len() int { return len(x.records) }

// Visible recomputes the filtered sequence. The result is a fresh slice in
// the same relative order as ingestion; both filters combine with AND and
// the computation is a pure function of (sequence, search, type).
func (x *Index) Visible() []Record {
	out := make([]Record, 0, len(x.records))
	for _, r := range x.records {
		if x.matches(r) {
			out = append(out, r)
		}
	}
	return out
}

func (x *Index) matches(r Record) bool {
	if x.typeTag != "" && r.Type != x.typeTag {
		return false
	}
	if x.search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.searchBlob()), x.search)
}
