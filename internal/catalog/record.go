package catalog

import "strconv"

// FieldCount is the number of positional fields in one catalog line.
const FieldCount = 19

// InvalidID marks a record whose identifier field failed integer parsing.
// The sentinel keeps a bad identifier out of lookups and asset paths
// instead of letting a junk value propagate silently.
const InvalidID int64 = -1

// Record is one catalog entry. The layout is fixed and positional: field 0
// is the integer SKU identifier, everything else is an opaque string taken
// verbatim from the export with no trimming or case normalization. Records
// are immutable after parsing.
type Record struct {
	ID        int64
	Type      string
	RolesMask string
	Gender    string
	Brand     string
	Drawer    string
	Mesh      string
	Textures  string
	ShortDesc string
	LongDesc  string
	Stores    string
	BornWith  string
	Price     string
	Avail     string
	Quantity  string
	Rspk      string
	Expires   string
	Tags      string
	Author    string
}

// Field is one labeled record value, used by the detail view and the
// search blob so both walk the schema in the same order.
type Field struct {
	Name  string
	Value string
}

// recordFromFields maps one already-split line onto a Record. Extra fields
// are ignored; missing trailing fields become empty strings so a short
// line still yields a usable record.
func recordFromFields(fields []string) Record {
	if len(fields) < FieldCount {
		padded := make([]string, FieldCount)
		copy(padded, fields)
		fields = padded
	}

	id, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		id = InvalidID
	}

	return Record{
		ID:        id,
		Type:      fields[1],
		RolesMask: fields[2],
		Gender:    fields[3],
		Brand:     fields[4],
		Drawer:    fields[5],
		Mesh:      fields[6],
		Textures:  fields[7],
		ShortDesc: fields[8],
		LongDesc:  fields[9],
		Stores:    fields[10],
		BornWith:  fields[11],
		Price:     fields[12],
		Avail:     fields[13],
		Quantity:  fields[14],
		Rspk:      fields[15],
		Expires:   fields[16],
		Tags:      fields[17],
		Author:    fields[18],
	}
}

// Fields returns every value in schema order with its display label. The
// identifier is stringified like any other field.
func (r Record) Fields() []Field {
	return []Field{
		{"id", strconv.FormatInt(r.ID, 10)},
		{"type", r.Type},
		{"roles mask", r.RolesMask},
		{"gender", r.Gender},
		{"brand", r.Brand},
		{"drawer", r.Drawer},
		{"mesh", r.Mesh},
		{"textures", r.Textures},
		{"short desc", r.ShortDesc},
		{"long desc", r.LongDesc},
		{"stores", r.Stores},
		{"born with", r.BornWith},
		{"price", r.Price},
		{"avail", r.Avail},
		{"quantity", r.Quantity},
		{"rspk", r.Rspk},
		{"expires", r.Expires},
		{"tags", r.Tags},
		{"author", r.Author},
	}
}

// searchBlob concatenates every field in schema order with no separator.
// A search term can therefore match across a field boundary; that mirrors
// the catalog's established match semantics and stays as-is.
func (r Record) searchBlob() string {
	var n int
	fields := r.Fields()
	for _, f := range fields {
		n += len(f.Value)
	}
	buf := make([]byte, 0, n)
	for _, f := range fields {
		buf = append(buf, f.Value...)
	}
	return string(buf)
}
