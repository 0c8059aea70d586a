// Package report implements the financial report core: period bucketing,
// ledger aggregation over category and customer hierarchies, and the
// Profit & Loss and Cashflow builders. The package is pure computation
// over already-validated inputs; it never touches the database.
package report

import (
	"fmt"
	"strings"
	"time"

	apperrors "ledgerdash/internal/errors"
)

// Format selects the report granularity.
type Format string

const (
	FormatYearly  Format = "yearly"
	FormatMonthly Format = "monthly"
)

// DateLayout is the textual date format used by report requests.
const DateLayout = "02/01/2006"

// Period is a contiguous calendar span with a canonical label. Yearly
// reports use a single period labeled "Total"; monthly reports use one
// period per calendar month, labeled like "nov-25".
type Period struct {
	Label string
	Start time.Time
	End   time.Time
}

// Contains reports whether d falls within the period, bounds inclusive.
func (p Period) Contains(d time.Time) bool {
	return !d.Before(p.Start) && !d.After(p.End)
}

// GeneratePeriods partitions [start, end] into ordered periods for the
// given format. Monthly periods are clipped to the range bounds but keep
// the full calendar month's label. Ranges spanning more than 12 calendar
// months are rejected.
func GeneratePeriods(start, end time.Time, format Format) ([]Period, error) {
	if end.Before(start) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidDateRange, "end_date must not be before start_date")
	}
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if months > 12 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidDateRange, "date range must not exceed 12 months")
	}

	switch format {
	case FormatYearly:
		return []Period{{Label: "Total", Start: start, End: end}}, nil
	case FormatMonthly:
		var periods []Period
		cursor := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, start.Location())
		for !cursor.After(end) {
			monthEnd := cursor.AddDate(0, 1, -1)
			p := Period{
				Label: monthLabel(cursor),
				Start: cursor,
				End:   monthEnd,
			}
			if p.Start.Before(start) {
				p.Start = start
			}
			if p.End.After(end) {
				p.End = end
			}
			periods = append(periods, p)
			cursor = cursor.AddDate(0, 1, 0)
		}
		return periods, nil
	default:
		return nil, apperrors.WithMessage(apperrors.ErrInvalidReportFormat,
			fmt.Sprintf("unknown report format %q, expected 'yearly' or 'monthly'", format))
	}
}

// AssignPeriod returns the period containing d. A date outside every
// period is reported as not found and is dropped from aggregation; the
// date-range filter upstream already constrains rows to the range.
func AssignPeriod(d time.Time, periods []Period) (Period, bool) {
	for _, p := range periods {
		if p.Contains(d) {
			return p, true
		}
	}
	return Period{}, false
}

// Labels returns the period labels in chronological order.
func Labels(periods []Period) []string {
	labels := make([]string, len(periods))
	for i, p := range periods {
		labels[i] = p.Label
	}
	return labels
}

func monthLabel(t time.Time) string {
	return strings.ToLower(t.Format("Jan-06"))
}
