// Package catalog implements the catalog ingestion, indexing, and query
// pipeline: the fixed 19-field positional record schema, the pipe-delimited
// parser, the filter/search index, the single-record selection, and the
// window math that bounds how many records the UI materializes at once.
//
// # Data flow
//
//	raw text → Parse → []Record → Index (type filter + search) → Visible()
//	         → Viewport.Range (windowing) → UI cells → Selection (detail)
//
// The record sequence is written exactly once, by Parse, and is read-only
// shared state afterwards. Query state lives in Index, selection state in
// Selection; each has a single writing component.
//
// # Partial-field semantics
//
// Parsing never fails line-by-line. A short line yields a record with
// empty trailing fields, and an identifier that does not parse as an
// integer becomes the InvalidID sentinel. Partial availability of the
// catalog beats an all-or-nothing failure.
package catalog
