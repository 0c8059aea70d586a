package report

// DefaultTaxRate is the flat corporate income tax applied to positive
// EBIT, independently per period.
const DefaultTaxRate = 0.15

// Expense type tags as they appear on ledger rows.
const (
	TypeCAPEX = "CAPEX"
	TypeOPEX  = "OPEX"
	TypeCOGS  = "COGS"
)

// RevenueSection holds revenue grouped by customer plus the per-period
// net revenue total. Amounts are VAT-exclusive.
type RevenueSection struct {
	ByCustomer      Breakdown    `json:"revenue_by_customer"`
	TotalNetRevenue PeriodTotals `json:"total_net_revenue"`
}

// PnL is the Profit & Loss computation result. All amounts are base
// (VAT-exclusive) values at full float64 precision; rounding happens
// only when the document is assembled. CAPEX rows never enter any
// bucket here.
type PnL struct {
	Periods           []Period
	Revenue           RevenueSection
	COGS              CategorySection
	GrossProfit       PeriodTotals
	OperatingExpenses CategorySection
	EBIT              PeriodTotals
	IncomeTax         PeriodTotals
	NetEarnings       PeriodTotals
}

// PnLBuilder computes Profit & Loss reports. TaxRate is a policy
// constant, not derived from data; tax is charged on each period's EBIT
// separately rather than on the cumulative total.
type PnLBuilder struct {
	TaxRate float64
}

// NewPnLBuilder returns a builder with the default 15% tax rate.
func NewPnLBuilder() *PnLBuilder {
	return &PnLBuilder{TaxRate: DefaultTaxRate}
}

// Build aggregates the ledger rows into a P&L over the given periods.
// Location filtering follows MatchLocation semantics.
func (b *PnLBuilder) Build(income []IncomeRow, expenses []ExpenseRow, periods []Period, location string) *PnL {
	revenue := AggregateIncomeByCustomer(income, periods, location, BaseAmount)
	cogs := AggregateExpenses(expenses, periods, TypeCOGS, location, ExpenseBase)
	opex := AggregateExpenses(expenses, periods, TypeOPEX, location, ExpenseBase)

	pnl := &PnL{
		Periods: periods,
		Revenue: RevenueSection{
			ByCustomer:      revenue,
			TotalNetRevenue: revenue.Totals(periods),
		},
		COGS:              cogs.Section(),
		OperatingExpenses: opex.Section(),
		GrossProfit:       NewPeriodTotals(periods),
		EBIT:              NewPeriodTotals(periods),
		IncomeTax:         NewPeriodTotals(periods),
		NetEarnings:       NewPeriodTotals(periods),
	}

	for _, p := range periods {
		grossProfit := pnl.Revenue.TotalNetRevenue[p.Label] - pnl.COGS.Total[p.Label]
		ebit := grossProfit - pnl.OperatingExpenses.Total[p.Label]
		var tax float64
		if ebit > 0 {
			tax = b.TaxRate * ebit
		}
		pnl.GrossProfit[p.Label] = grossProfit
		pnl.EBIT[p.Label] = ebit
		pnl.IncomeTax[p.Label] = tax
		pnl.NetEarnings[p.Label] = ebit - tax
	}
	return pnl
}
