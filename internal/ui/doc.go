// Package ui provides the Bubble Tea terminal interface for skugrid.
//
// The Model renders one of four screens: the loading gate (until the
// one-shot catalog ingestion completes), a terminal error state when
// ingestion fails, the record grid, and the detail modal. The grid is
// windowed: only the on-screen rows plus a small overscan band are
// materialized, and only materialized cells request their image assets,
// so catalogs of tens of thousands of records render at interactive
// speed.
//
// Query state (search text + type filter) is owned by the catalog index
// and mutated only through the search box and the type-cycle key.
// Selection state is owned by the catalog selection and mutated only by
// opening and closing the detail modal.
package ui
