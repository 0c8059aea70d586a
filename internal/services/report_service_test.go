package services

import (
	"testing"
	"time"

	"ledgerdash/internal/models"
	"ledgerdash/internal/testutil"
)

func TestGetPnLReport(t *testing.T) {
	t.Run("yearly_end_to_end", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewReportService(db)

		food := testutil.CreateTestCategory(t, db, "Food")
		meat := testutil.CreateTestSubcategory(t, db, "Meat", food)
		admin := testutil.CreateTestCategory(t, db, "Admin")

		testutil.CreateTestExpense(t, db, meat, models.ExpenseTypeCOGS, 100, time.Date(2025, 11, 5, 0, 0, 0, 0, time.UTC))
		testutil.CreateTestExpense(t, db, admin, models.ExpenseTypeOPEX, 50, time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC))
		testutil.CreateTestIncome(t, db, "Acme", 300, time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC))

		doc, err := svc.GetPnLReport(ReportRequest{
			StartDate: "01/11/2025",
			EndDate:   "30/11/2025",
			Format:    "yearly",
		})
		testutil.AssertNoError(t, err)

		if got := doc.Revenue.TotalNetRevenue["Total"]; got != 300 {
			t.Errorf("expected total net revenue 300, got %f", got)
		}
		if got := doc.COGS.Total["Total"]; got != 100 {
			t.Errorf("expected cogs total 100, got %f", got)
		}
		if got := doc.COGS.ByCategory["Food"].Subcategories["Meat"]["Total"]; got != 100 {
			t.Errorf("expected Food/Meat 100, got %f", got)
		}
		if got := doc.OperatingExpenses.Total["Total"]; got != 50 {
			t.Errorf("expected opex total 50, got %f", got)
		}
		if got := doc.OperatingExpenses.ByCategory["Admin"].Direct["Total"]; got != 50 {
			t.Errorf("expected Admin direct 50, got %f", got)
		}
		if got := doc.GrossProfit["Total"]; got != 200 {
			t.Errorf("expected gross profit 200, got %f", got)
		}
		if got := doc.EBIT["Total"]; got != 150 {
			t.Errorf("expected ebit 150, got %f", got)
		}
		if got := doc.IncomeTax["Total"]; got != 22.5 {
			t.Errorf("expected income tax 22.5, got %f", got)
		}
		if got := doc.NetEarnings["Total"]; got != 127.5 {
			t.Errorf("expected net earnings 127.5, got %f", got)
		}
	})

	t.Run("missing_start_date", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewReportService(db)

		_, err := svc.GetPnLReport(ReportRequest{EndDate: "30/11/2025"})
		testutil.AssertAppError(t, err, "MISSING_PARAMETER")
	})

	t.Run("missing_end_date", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewReportService(db)

		_, err := svc.GetPnLReport(ReportRequest{StartDate: "01/11/2025"})
		testutil.AssertAppError(t, err, "MISSING_PARAMETER")
	})

	t.Run("unparseable_date", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewReportService(db)

		_, err := svc.GetPnLReport(ReportRequest{StartDate: "2025-11-01", EndDate: "30/11/2025"})
		testutil.AssertAppError(t, err, "INVALID_DATE_FORMAT")
	})

	t.Run("range_over_12_months", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewReportService(db)

		_, err := svc.GetPnLReport(ReportRequest{StartDate: "01/01/2024", EndDate: "31/03/2025"})
		testutil.AssertAppError(t, err, "INVALID_DATE_RANGE")
	})

	t.Run("invalid_format", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewReportService(db)

		_, err := svc.GetPnLReport(ReportRequest{StartDate: "01/11/2025", EndDate: "30/11/2025", Format: "weekly"})
		testutil.AssertAppError(t, err, "INVALID_REPORT_FORMAT")
	})

	t.Run("format_defaults_to_yearly", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewReportService(db)

		doc, err := svc.GetPnLReport(ReportRequest{StartDate: "01/11/2025", EndDate: "30/11/2025"})
		testutil.AssertNoError(t, err)
		if len(doc.ReportInfo.Periods) != 1 || doc.ReportInfo.Periods[0] != "Total" {
			t.Errorf("expected default yearly periods [Total], got %v", doc.ReportInfo.Periods)
		}
	})

	t.Run("location_filter", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewReportService(db)

		nov := time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC)
		testutil.CreateTestIncome(t, db, "Acme", 300, nov)
		phuket := testutil.CreateTestIncome(t, db, "Acme", 100, nov)
		phuket.Location = "Phuket"
		if err := db.Save(phuket).Error; err != nil {
			t.Fatalf("failed to update location: %v", err)
		}

		doc, err := svc.GetPnLReport(ReportRequest{
			StartDate: "01/11/2025", EndDate: "30/11/2025", Location: "Phuket",
		})
		testutil.AssertNoError(t, err)
		if got := doc.Revenue.TotalNetRevenue["Total"]; got != 100 {
			t.Errorf("expected filtered revenue 100, got %f", got)
		}

		all, err := svc.GetPnLReport(ReportRequest{
			StartDate: "01/11/2025", EndDate: "30/11/2025", Location: "All",
		})
		testutil.AssertNoError(t, err)
		if got := all.Revenue.TotalNetRevenue["Total"]; got != 400 {
			t.Errorf("expected unfiltered revenue 400, got %f", got)
		}
	})
}

func TestGetCashflowReport(t *testing.T) {
	t.Run("yearly_end_to_end_with_opening_balance", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewReportService(db)

		food := testutil.CreateTestCategory(t, db, "Food")
		meat := testutil.CreateTestSubcategory(t, db, "Meat", food)
		admin := testutil.CreateTestCategory(t, db, "Admin")

		testutil.CreateTestExpense(t, db, meat, models.ExpenseTypeCOGS, 100, time.Date(2025, 11, 5, 0, 0, 0, 0, time.UTC))
		testutil.CreateTestExpense(t, db, admin, models.ExpenseTypeOPEX, 50, time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC))
		testutil.CreateTestIncome(t, db, "Acme", 300, time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC))

		doc, err := svc.GetCashflowReport(ReportRequest{
			StartDate:      "01/11/2025",
			EndDate:        "30/11/2025",
			Format:         "yearly",
			OpeningBalance: 1000,
		})
		testutil.AssertNoError(t, err)

		if got := doc.CashInflows.SalesIncome["Total"]; got != 330 {
			t.Errorf("expected sales income 330, got %f", got)
		}
		if got := doc.CashOutflows.COGS.Total["Total"]; got != 110 {
			t.Errorf("expected cogs 110, got %f", got)
		}
		if got := doc.CashOutflows.OPEX.Total["Total"]; got != 55 {
			t.Errorf("expected opex 55, got %f", got)
		}
		if got := doc.CashOutflows.CAPEX.Total["Total"]; got != 0 {
			t.Errorf("expected capex 0, got %f", got)
		}
		if got := doc.CashInflows.TotalInflows["Total"]; got != 330 {
			t.Errorf("expected total inflows 330, got %f", got)
		}
		if got := doc.CashOutflows.TotalOutflows["Total"]; got != 165 {
			t.Errorf("expected total outflows 165, got %f", got)
		}
		if got := doc.NetCashflow["Total"]; got != 165 {
			t.Errorf("expected net cashflow 165, got %f", got)
		}
		if got := doc.OpeningBalance["Total"]; got != 1000 {
			t.Errorf("expected opening balance 1000, got %f", got)
		}
		if got := doc.ClosingBalance["Total"]; got != 1165 {
			t.Errorf("expected closing balance 1165, got %f", got)
		}
	})

	t.Run("capex_included_in_outflows", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewReportService(db)

		equipment := testutil.CreateTestCategory(t, db, "Equipment")
		testutil.CreateTestExpense(t, db, equipment, models.ExpenseTypeCAPEX, 5000, time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC))

		cf, err := svc.GetCashflowReport(ReportRequest{StartDate: "01/11/2025", EndDate: "30/11/2025"})
		testutil.AssertNoError(t, err)
		if got := cf.CashOutflows.CAPEX.Total["Total"]; got != 5500 {
			t.Errorf("expected capex outflow 5500, got %f", got)
		}

		pnl, err := svc.GetPnLReport(ReportRequest{StartDate: "01/11/2025", EndDate: "30/11/2025"})
		testutil.AssertNoError(t, err)
		if got := pnl.COGS.Total["Total"] + pnl.OperatingExpenses.Total["Total"]; got != 0 {
			t.Errorf("capex row leaked into P&L, got %f", got)
		}
	})

	t.Run("monthly_carry_forward", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewReportService(db)

		testutil.CreateTestIncome(t, db, "Acme", 100, time.Date(2025, 10, 5, 0, 0, 0, 0, time.UTC))
		testutil.CreateTestIncome(t, db, "Acme", 200, time.Date(2025, 11, 5, 0, 0, 0, 0, time.UTC))
		testutil.CreateTestIncome(t, db, "Acme", 300, time.Date(2025, 12, 5, 0, 0, 0, 0, time.UTC))

		doc, err := svc.GetCashflowReport(ReportRequest{
			StartDate: "01/10/2025", EndDate: "31/12/2025", Format: "monthly", OpeningBalance: 50,
		})
		testutil.AssertNoError(t, err)

		labels := []string{"oct-25", "nov-25", "dec-25"}
		for i, label := range labels {
			open := doc.OpeningBalance[label]
			if i == 0 {
				if open != 50 {
					t.Errorf("first opening balance should be 50, got %f", open)
				}
			} else if open != doc.ClosingBalance[labels[i-1]] {
				t.Errorf("%s: opening %f != previous closing %f", label, open, doc.ClosingBalance[labels[i-1]])
			}
			if doc.ClosingBalance[label] != open+doc.NetCashflow[label] {
				t.Errorf("%s: closing != opening + net", label)
			}
		}
	})
}
