package report

import (
	"math"
	"testing"
)

func TestCashflowBuilder(t *testing.T) {
	t.Run("yearly_scenario_with_opening_balance", func(t *testing.T) {
		periods, err := GeneratePeriods(date(1, 11, 2025), date(30, 11, 2025), FormatYearly)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		income, expenses := scenarioRows()
		cf := NewCashflowBuilder().Build(income, expenses, periods, "", 1000)

		checks := map[string]float64{
			"sales_income":    cf.CashInflows.SalesIncome["Total"],
			"cogs_total":      cf.CashOutflows.COGS.Total["Total"],
			"opex_total":      cf.CashOutflows.OPEX.Total["Total"],
			"capex_total":     cf.CashOutflows.CAPEX.Total["Total"],
			"total_inflows":   cf.CashInflows.TotalInflows["Total"],
			"total_outflows":  cf.CashOutflows.TotalOutflows["Total"],
			"net_cashflow":    cf.NetCashflow["Total"],
			"opening_balance": cf.OpeningBalance["Total"],
			"closing_balance": cf.ClosingBalance["Total"],
		}
		want := map[string]float64{
			"sales_income":    330,
			"cogs_total":      110,
			"opex_total":      55,
			"capex_total":     0,
			"total_inflows":   330,
			"total_outflows":  165,
			"net_cashflow":    165,
			"opening_balance": 1000,
			"closing_balance": 1165,
		}
		for name, got := range checks {
			if got != want[name] {
				t.Errorf("%s: expected %v, got %v", name, want[name], got)
			}
		}
	})

	t.Run("carry_forward_across_months", func(t *testing.T) {
		periods, _ := GeneratePeriods(date(1, 10, 2025), date(31, 12, 2025), FormatMonthly)
		income := []IncomeRow{
			{Date: date(5, 10, 2025), GrandTotal: 500, Customer: "Acme"},
			{Date: date(5, 11, 2025), GrandTotal: 200, Customer: "Acme"},
			{Date: date(5, 12, 2025), GrandTotal: 100, Customer: "Acme"},
		}
		expenses := []ExpenseRow{
			{Date: date(10, 10, 2025), GrandTotal: 100, Category: "Food", Type: TypeCOGS},
			{Date: date(10, 11, 2025), GrandTotal: 350, Category: "Admin", Type: TypeOPEX},
			{Date: date(10, 12, 2025), GrandTotal: 50, Category: "Equipment", Type: TypeCAPEX},
		}
		cf := NewCashflowBuilder().Build(income, expenses, periods, "", 250)

		if cf.OpeningBalance["oct-25"] != 250 {
			t.Errorf("first period must open with the supplied balance, got %f", cf.OpeningBalance["oct-25"])
		}
		for i, p := range periods {
			open := cf.OpeningBalance[p.Label]
			net := cf.NetCashflow[p.Label]
			close := cf.ClosingBalance[p.Label]
			if close != open+net {
				t.Errorf("%s: closing %f != opening %f + net %f", p.Label, close, open, net)
			}
			if i > 0 {
				prev := cf.ClosingBalance[periods[i-1].Label]
				if open != prev {
					t.Errorf("%s: opening %f != previous closing %f", p.Label, open, prev)
				}
			}
		}

		// oct: +400 -> 650; nov: -150 -> 500; dec: +50 -> 550
		if cf.ClosingBalance["dec-25"] != 550 {
			t.Errorf("expected final closing 550, got %f", cf.ClosingBalance["dec-25"])
		}
	})

	t.Run("uses_grand_totals_not_base", func(t *testing.T) {
		periods, _ := GeneratePeriods(date(1, 11, 2025), date(30, 11, 2025), FormatYearly)
		income := []IncomeRow{{Date: date(5, 11, 2025), Amount: 100, GrandTotal: 107, Customer: "Acme"}}
		cf := NewCashflowBuilder().Build(income, nil, periods, "", 0)
		if cf.CashInflows.SalesIncome["Total"] != 107 {
			t.Errorf("expected VAT-inclusive 107, got %f", cf.CashInflows.SalesIncome["Total"])
		}
	})

	t.Run("fundings_and_other_income_always_zero", func(t *testing.T) {
		periods, _ := GeneratePeriods(date(1, 11, 2025), date(31, 12, 2025), FormatMonthly)
		income, expenses := scenarioRows()
		cf := NewCashflowBuilder().Build(income, expenses, periods, "", 0)
		for _, p := range periods {
			if cf.CashInflows.Fundings[p.Label] != 0 {
				t.Errorf("%s: fundings must be zero", p.Label)
			}
			if cf.CashInflows.OtherIncome[p.Label] != 0 {
				t.Errorf("%s: other_income must be zero", p.Label)
			}
		}
	})
}

func TestAssembleCashflowRoundsAmounts(t *testing.T) {
	periods, _ := GeneratePeriods(date(1, 11, 2025), date(30, 11, 2025), FormatYearly)
	income := []IncomeRow{{Date: date(5, 11, 2025), GrandTotal: 33.333, Customer: "Acme"}}
	cf := NewCashflowBuilder().Build(income, nil, periods, "", 0.005)
	doc := AssembleCashflow(cf, "01/11/2025", "30/11/2025", FormatYearly, "Bangkok")

	if got := doc.CashInflows.SalesIncome["Total"]; math.Abs(got-33.33) > 1e-9 {
		t.Errorf("expected rounded 33.33, got %f", got)
	}
	if doc.ReportInfo.Location != "Bangkok" {
		t.Errorf("expected location Bangkok, got %s", doc.ReportInfo.Location)
	}
	if doc.ReportInfo.Format != FormatYearly {
		t.Errorf("expected format yearly, got %s", doc.ReportInfo.Format)
	}
}
