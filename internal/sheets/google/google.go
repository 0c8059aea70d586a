// Package google implements the sheets.RangeReader port against the
// Google Sheets API using a service account.
package google

import (
	"context"
	"errors"
	"fmt"
	"strings"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"

	apperrors "ledgerdash/internal/errors"
	ports "ledgerdash/internal/sheets"
)

// Client reads cell ranges from a single spreadsheet.
type Client struct {
	svc           *gsheet.Service
	spreadsheetID string
}

var _ ports.RangeReader = (*Client)(nil)

// Options configures the client. Exactly one of CredentialsJSON or
// CredentialsFile must be set unless Application Default Credentials
// are available in the environment.
type Options struct {
	SpreadsheetID   string
	CredentialsJSON string
	CredentialsFile string
}

// New creates a Sheets client with read-only scope.
func New(ctx context.Context, opts Options) (*Client, error) {
	if strings.TrimSpace(opts.SpreadsheetID) == "" {
		return nil, errors.New("missing spreadsheet ID")
	}

	clientOpts := []goption.ClientOption{goption.WithScopes(gsheet.SpreadsheetsReadonlyScope)}
	switch {
	case opts.CredentialsJSON != "":
		clientOpts = append(clientOpts, goption.WithCredentialsJSON([]byte(opts.CredentialsJSON)))
	case opts.CredentialsFile != "":
		clientOpts = append(clientOpts, goption.WithCredentialsFile(opts.CredentialsFile))
	}

	svc, err := gsheet.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}
	return &Client{svc: svc, spreadsheetID: opts.SpreadsheetID}, nil
}

// ReadRange fetches a cell range and converts every cell to its string
// form. Non-string cells (numbers, booleans) are formatted with %v.
func (c *Client) ReadRange(ctx context.Context, rangeName string) ([][]string, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rangeName).Context(ctx).Do()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrExternalService, fmt.Errorf("read range %s: %w", rangeName, err))
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, len(raw))
		for i, cell := range raw {
			if s, ok := cell.(string); ok {
				row[i] = s
			} else {
				row[i] = fmt.Sprintf("%v", cell)
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
