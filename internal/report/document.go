package report

import (
	"math"
	"time"
)

// Info is the report metadata echoed back with every document. Dates
// are the request's original DD/MM/YYYY strings.
type Info struct {
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	Format      Format    `json:"format"`
	Location    string    `json:"location"`
	Periods     []string  `json:"periods"`
	GeneratedAt time.Time `json:"generated_at"`
}

// PnLDocument is the response-shaped Profit & Loss report. Amounts are
// rounded to 2 decimal places here and only here.
type PnLDocument struct {
	ReportInfo        Info            `json:"report_info"`
	Revenue           RevenueSection  `json:"revenue"`
	COGS              CategorySection `json:"cogs"`
	GrossProfit       PeriodTotals    `json:"gross_profit"`
	OperatingExpenses CategorySection `json:"operating_expenses"`
	EBIT              PeriodTotals    `json:"ebit"`
	IncomeTax         PeriodTotals    `json:"income_tax"`
	NetEarnings       PeriodTotals    `json:"net_earnings"`
}

// CashflowDocument is the response-shaped cashflow report.
type CashflowDocument struct {
	ReportInfo     Info         `json:"report_info"`
	CashInflows    CashInflows  `json:"cash_inflows"`
	CashOutflows   CashOutflows `json:"cash_outflows"`
	NetCashflow    PeriodTotals `json:"net_cashflow"`
	OpeningBalance PeriodTotals `json:"opening_balance"`
	ClosingBalance PeriodTotals `json:"closing_balance"`
}

// AssemblePnL shapes a P&L result into the response document, rounding
// every amount to 2 decimal places.
func AssemblePnL(pnl *PnL, startDate, endDate string, format Format, location string) *PnLDocument {
	return &PnLDocument{
		ReportInfo:        newInfo(startDate, endDate, format, pnl.Periods, location),
		Revenue:           roundRevenue(pnl.Revenue),
		COGS:              roundSection(pnl.COGS),
		GrossProfit:       roundTotals(pnl.GrossProfit),
		OperatingExpenses: roundSection(pnl.OperatingExpenses),
		EBIT:              roundTotals(pnl.EBIT),
		IncomeTax:         roundTotals(pnl.IncomeTax),
		NetEarnings:       roundTotals(pnl.NetEarnings),
	}
}

// AssembleCashflow shapes a cashflow result into the response document,
// rounding every amount to 2 decimal places.
func AssembleCashflow(cf *Cashflow, startDate, endDate string, format Format, location string) *CashflowDocument {
	return &CashflowDocument{
		ReportInfo: newInfo(startDate, endDate, format, cf.Periods, location),
		CashInflows: CashInflows{
			SalesIncome:  roundTotals(cf.CashInflows.SalesIncome),
			Fundings:     roundTotals(cf.CashInflows.Fundings),
			OtherIncome:  roundTotals(cf.CashInflows.OtherIncome),
			TotalInflows: roundTotals(cf.CashInflows.TotalInflows),
		},
		CashOutflows: CashOutflows{
			COGS:          roundSection(cf.CashOutflows.COGS),
			OPEX:          roundSection(cf.CashOutflows.OPEX),
			CAPEX:         roundSection(cf.CashOutflows.CAPEX),
			TotalOutflows: roundTotals(cf.CashOutflows.TotalOutflows),
		},
		NetCashflow:    roundTotals(cf.NetCashflow),
		OpeningBalance: roundTotals(cf.OpeningBalance),
		ClosingBalance: roundTotals(cf.ClosingBalance),
	}
}

func newInfo(startDate, endDate string, format Format, periods []Period, location string) Info {
	if location == "" {
		location = "All"
	}
	return Info{
		StartDate:   startDate,
		EndDate:     endDate,
		Format:      format,
		Location:    location,
		Periods:     Labels(periods),
		GeneratedAt: time.Now().UTC(),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func roundTotals(t PeriodTotals) PeriodTotals {
	out := make(PeriodTotals, len(t))
	for label, amount := range t {
		out[label] = round2(amount)
	}
	return out
}

func roundBreakdown(b Breakdown) Breakdown {
	out := make(Breakdown, len(b))
	for key, totals := range b {
		out[key] = roundTotals(totals)
	}
	return out
}

func roundRevenue(r RevenueSection) RevenueSection {
	return RevenueSection{
		ByCustomer:      roundBreakdown(r.ByCustomer),
		TotalNetRevenue: roundTotals(r.TotalNetRevenue),
	}
}

func roundSection(s CategorySection) CategorySection {
	out := CategorySection{
		ByCategory: make(map[string]CategoryBucket, len(s.ByCategory)),
		Total:      roundTotals(s.Total),
	}
	for name, bucket := range s.ByCategory {
		rounded := CategoryBucket{
			Subcategories: make(map[string]PeriodTotals, len(bucket.Subcategories)),
		}
		for sub, totals := range bucket.Subcategories {
			rounded.Subcategories[sub] = roundTotals(totals)
		}
		if bucket.Direct != nil {
			rounded.Direct = roundTotals(bucket.Direct)
		}
		out.ByCategory[name] = rounded
	}
	return out
}
