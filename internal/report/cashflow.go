package report

// CashInflows holds per-period inflow lines. Fundings and OtherIncome
// are reserved for future data sources and are always present and zero.
type CashInflows struct {
	SalesIncome  PeriodTotals `json:"sales_income"`
	Fundings     PeriodTotals `json:"fundings"`
	OtherIncome  PeriodTotals `json:"other_income"`
	TotalInflows PeriodTotals `json:"total_inflows"`
}

// CashOutflows holds per-period outflow sections by expense class.
type CashOutflows struct {
	COGS          CategorySection `json:"cogs"`
	OPEX          CategorySection `json:"opex"`
	CAPEX         CategorySection `json:"capex"`
	TotalOutflows PeriodTotals    `json:"total_outflows"`
}

// Cashflow is the cashflow computation result. All amounts are VAT
// inclusive (grand totals) at full float64 precision. Balances are
// carried forward in strict chronological order.
type Cashflow struct {
	Periods        []Period
	CashInflows    CashInflows
	CashOutflows   CashOutflows
	NetCashflow    PeriodTotals
	OpeningBalance PeriodTotals
	ClosingBalance PeriodTotals
}

// CashflowBuilder computes cashflow reports.
type CashflowBuilder struct{}

// NewCashflowBuilder returns a cashflow builder.
func NewCashflowBuilder() *CashflowBuilder {
	return &CashflowBuilder{}
}

// Build aggregates the ledger rows into a cashflow over the given
// periods. openingBalance seeds the first period; each later period
// opens with the previous period's closing balance.
func (b *CashflowBuilder) Build(income []IncomeRow, expenses []ExpenseRow, periods []Period, location string, openingBalance float64) *Cashflow {
	sales := AggregateIncomeByCustomer(income, periods, location, GrandAmount).Totals(periods)
	cogs := AggregateExpenses(expenses, periods, TypeCOGS, location, ExpenseGrand).Section()
	opex := AggregateExpenses(expenses, periods, TypeOPEX, location, ExpenseGrand).Section()
	capex := AggregateExpenses(expenses, periods, TypeCAPEX, location, ExpenseGrand).Section()

	cf := &Cashflow{
		Periods: periods,
		CashInflows: CashInflows{
			SalesIncome:  sales,
			Fundings:     NewPeriodTotals(periods),
			OtherIncome:  NewPeriodTotals(periods),
			TotalInflows: NewPeriodTotals(periods),
		},
		CashOutflows: CashOutflows{
			COGS:          cogs,
			OPEX:          opex,
			CAPEX:         capex,
			TotalOutflows: NewPeriodTotals(periods),
		},
		NetCashflow:    NewPeriodTotals(periods),
		OpeningBalance: NewPeriodTotals(periods),
		ClosingBalance: NewPeriodTotals(periods),
	}

	// Carry-forward fold: the running balance threads through the
	// ordered period sequence, so this loop must stay sequential.
	balance := openingBalance
	for _, p := range periods {
		inflows := sales[p.Label] + cf.CashInflows.Fundings[p.Label] + cf.CashInflows.OtherIncome[p.Label]
		outflows := cogs.Total[p.Label] + opex.Total[p.Label] + capex.Total[p.Label]
		net := inflows - outflows

		cf.CashInflows.TotalInflows[p.Label] = inflows
		cf.CashOutflows.TotalOutflows[p.Label] = outflows
		cf.NetCashflow[p.Label] = net
		cf.OpeningBalance[p.Label] = balance
		balance += net
		cf.ClosingBalance[p.Label] = balance
	}
	return cf
}
