package report

import "time"

// IncomeRow is a read-only income ledger row as consumed by the report
// core. Amount is the base (VAT-exclusive) value; GrandTotal includes VAT.
type IncomeRow struct {
	Date       time.Time
	Amount     float64
	GrandTotal float64
	Customer   string
	Location   string
}

// ExpenseRow is a read-only expense ledger row. Type is one of
// CAPEX, OPEX or COGS. Subcategory may be empty when the row belongs
// directly to a top-level category.
type ExpenseRow struct {
	Date        time.Time
	Amount      float64
	GrandTotal  float64
	Category    string
	Subcategory string
	Type        string
	Location    string
}

// PeriodTotals maps a period label to an accumulated amount. Totals are
// zero-filled for every period on creation so consumers never see a
// missing label.
type PeriodTotals map[string]float64

// NewPeriodTotals returns a PeriodTotals with a zero entry per period.
func NewPeriodTotals(periods []Period) PeriodTotals {
	t := make(PeriodTotals, len(periods))
	for _, p := range periods {
		t[p.Label] = 0
	}
	return t
}

// Add sums amounts from another PeriodTotals into t.
func (t PeriodTotals) Add(other PeriodTotals) {
	for label, amount := range other {
		t[label] += amount
	}
}

// Breakdown is a two-level aggregation bucket: group key to period label
// to sum. Every key carries an entry for every period.
type Breakdown map[string]PeriodTotals

// Add accumulates amount under (key, label), zero-filling the key's
// totals across all periods on first sight.
func (b Breakdown) Add(key, label string, amount float64, periods []Period) {
	totals, ok := b[key]
	if !ok {
		totals = NewPeriodTotals(periods)
		b[key] = totals
	}
	totals[label] += amount
}

// Totals sums the breakdown across all keys per period.
func (b Breakdown) Totals(periods []Period) PeriodTotals {
	total := NewPeriodTotals(periods)
	for _, totals := range b {
		total.Add(totals)
	}
	return total
}

// MatchLocation reports whether a row location passes the report's
// location filter. An empty filter or "All" disables filtering;
// otherwise the match is exact and case-sensitive.
func MatchLocation(location, filter string) bool {
	if filter == "" || filter == "All" {
		return true
	}
	return location == filter
}

// AggregateIncomeByCustomer groups income rows by customer, summing the
// amount selected by sel into per-period buckets. Rows whose date falls
// outside every period are dropped.
func AggregateIncomeByCustomer(rows []IncomeRow, periods []Period, location string, sel func(IncomeRow) float64) Breakdown {
	b := make(Breakdown)
	for _, row := range rows {
		if !MatchLocation(row.Location, location) {
			continue
		}
		p, ok := AssignPeriod(row.Date, periods)
		if !ok {
			continue
		}
		customer := row.Customer
		if customer == "" {
			customer = "Unknown"
		}
		b.Add(customer, p.Label, sel(row), periods)
	}
	return b
}

// AggregateExpenses groups expense rows of the given type into a
// category tree, summing the amount selected by sel. Rows of other
// types, filtered-out locations, and out-of-range dates are skipped.
func AggregateExpenses(rows []ExpenseRow, periods []Period, expenseType, location string, sel func(ExpenseRow) float64) *Tree {
	tree := NewTree(periods)
	for _, row := range rows {
		if row.Type != expenseType {
			continue
		}
		if !MatchLocation(row.Location, location) {
			continue
		}
		p, ok := AssignPeriod(row.Date, periods)
		if !ok {
			continue
		}
		tree.Add(row.Category, row.Subcategory, p.Label, sel(row))
	}
	return tree
}

// BaseAmount selects the VAT-exclusive amount of an income row.
func BaseAmount(r IncomeRow) float64 { return r.Amount }

// GrandAmount selects the VAT-inclusive amount of an income row.
func GrandAmount(r IncomeRow) float64 { return r.GrandTotal }

// ExpenseBase selects the VAT-exclusive amount of an expense row.
func ExpenseBase(r ExpenseRow) float64 { return r.Amount }

// ExpenseGrand selects the VAT-inclusive amount of an expense row.
func ExpenseGrand(r ExpenseRow) float64 { return r.GrandTotal }
