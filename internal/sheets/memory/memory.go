// Package memory implements an in-memory sheets.RangeReader for tests
// and local development.
package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	ports "ledgerdash/internal/sheets"
)

// Store maps range names to fixed row data. The lookup ignores the cell
// bounds of the requested range, so "Income!A1:Z1000" matches data
// registered under "Income".
type Store struct {
	mu     sync.Mutex
	ranges map[string][][]string
}

var _ ports.RangeReader = (*Store)(nil)

func New() *Store {
	return &Store{ranges: make(map[string][][]string)}
}

// SetRange registers the rows served for a sheet name.
func (s *Store) SetRange(sheet string, rows [][]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ranges[sheet] = rows
}

// ReadRange returns the rows registered under the sheet name of the
// requested range.
func (s *Store) ReadRange(_ context.Context, rangeName string) ([][]string, error) {
	sheet := rangeName
	if i := strings.Index(rangeName, "!"); i >= 0 {
		sheet = rangeName[:i]
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, ok := s.ranges[sheet]
	if !ok {
		return nil, fmt.Errorf("no data registered for sheet %q", sheet)
	}
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = append([]string(nil), row...)
	}
	return out, nil
}
