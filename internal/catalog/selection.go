package catalog

// Selection holds the single record currently open in the detail view.
// Selecting while a record is already selected replaces it; there is no
// stacking. The held value is the record captured at selection time, never
// a re-lookup by identifier.
type Selection struct {
	record Record
	active bool
}

// Select replaces any prior selection with r.
func (s *Selection) Select(r Record) {
	s.record = r
	s.active = true
}

// Clear resets the selection to none.
func (s *Selection) Clear() {
	s.record = Record{}
	s.active = false
}

// Current returns the selected record and whether one is selected.
func (s *Selection) Current() (Record, bool) {
	return s.record, s.active
}
