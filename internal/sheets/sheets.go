// Package sheets defines the outbound port for reading tabular data
// from the spreadsheet source that feeds the ledger.
package sheets

import "context"

// RangeReader reads a rectangular cell range from the spreadsheet.
// Implementations return rows of string cells; the first row is the
// header row. Short rows are allowed and interpreted as trailing empty
// cells.
type RangeReader interface {
	ReadRange(ctx context.Context, rangeName string) ([][]string, error)
}
