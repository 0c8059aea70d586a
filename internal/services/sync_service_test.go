package services

import (
	"context"
	"testing"

	"ledgerdash/internal/models"
	"ledgerdash/internal/sheets/memory"
	"ledgerdash/internal/testutil"

	"gorm.io/gorm"
)

const (
	testIncomeRange  = "Income!A1:Z1000"
	testExpenseRange = "Expenses!A1:Z10000"
)

var incomeHeader = []string{"row_id", "doc_no", "doc_date", "customer", "currency", "amount", "vat", "grand_total", "status", "location"}
var expenseHeader = []string{"row_id", "doc_no", "doc_date", "supplier", "currency", "amount", "vat", "grand_total", "status", "type", "category", "subcategory", "location"}

func newSyncFixture(t *testing.T) (*gorm.DB, *memory.Store, SyncServicer) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	store := memory.New()
	store.SetRange("Income", [][]string{incomeHeader})
	store.SetRange("Expenses", [][]string{expenseHeader})

	svc := NewSyncService(db, store, NewCategoryService(db), testIncomeRange, testExpenseRange)
	return db, store, svc
}

func TestSyncRun(t *testing.T) {
	t.Run("inserts_new_rows", func(t *testing.T) {
		db, store, svc := newSyncFixture(t)
		store.SetRange("Income", [][]string{
			incomeHeader,
			{"1", "INV-001", "15/11/2025", "Acme", "THB", "1,000", "100", "1,100", "Paid", "bangkok"},
			{"2", "", "16/11/2025", "", "", "500", "50", "", "pending", ""},
		})
		store.SetRange("Expenses", [][]string{
			expenseHeader,
			{"10", "EXP-001", "05/11/2025", "Butcher", "THB", "100", "10", "110", "Paid", "COGS", "Food", "Meat", "Bangkok"},
		})

		summary, err := svc.Run(context.Background())
		testutil.AssertNoError(t, err)

		if summary.Income.Inserted != 2 || summary.Income.Updated != 0 || summary.Income.Skipped != 0 {
			t.Errorf("unexpected income counts: %+v", summary.Income)
		}
		if summary.Expenses.Inserted != 1 {
			t.Errorf("expected 1 expense inserted, got %+v", summary.Expenses)
		}

		var doc models.Income
		testutil.AssertNoError(t, db.Where("row_id = ?", "1").First(&doc).Error)
		if doc.Amount != 1000 {
			t.Errorf("expected comma-stripped amount 1000, got %f", doc.Amount)
		}
		if doc.Location != "Bangkok" {
			t.Errorf("expected title-cased location Bangkok, got %s", doc.Location)
		}

		var auto models.Income
		testutil.AssertNoError(t, db.Where("row_id = ?", "2").First(&auto).Error)
		if auto.DocNo != "AUTO-2" {
			t.Errorf("expected doc_no AUTO-2, got %s", auto.DocNo)
		}
		if auto.GrandTotal != 550 {
			t.Errorf("expected derived grand total 550, got %f", auto.GrandTotal)
		}
		if auto.Customer != "Unknown" {
			t.Errorf("expected default customer Unknown, got %s", auto.Customer)
		}
		if auto.Currency != "THB" {
			t.Errorf("expected default currency THB, got %s", auto.Currency)
		}
		if auto.Status != models.DocStatusPending {
			t.Errorf("expected status Pending, got %s", auto.Status)
		}

		if summary.TotalIncome != 1650 {
			t.Errorf("expected total income 1650, got %f", summary.TotalIncome)
		}
		if summary.TotalExpenses != 110 {
			t.Errorf("expected total expenses 110, got %f", summary.TotalExpenses)
		}
		if summary.NetPosition != 1540 {
			t.Errorf("expected net position 1540, got %f", summary.NetPosition)
		}
		if summary.SyncedAt.IsZero() {
			t.Error("expected synced_at to be set")
		}
	})

	t.Run("updates_changed_rows_and_skips_unchanged", func(t *testing.T) {
		_, store, svc := newSyncFixture(t)
		store.SetRange("Income", [][]string{
			incomeHeader,
			{"1", "INV-001", "15/11/2025", "Acme", "THB", "1000", "100", "1100", "Paid", "Bangkok"},
		})

		_, err := svc.Run(context.Background())
		testutil.AssertNoError(t, err)

		// Second run with no changes.
		summary, err := svc.Run(context.Background())
		testutil.AssertNoError(t, err)
		if summary.Income.Skipped != 1 || summary.Income.Updated != 0 || summary.Income.Inserted != 0 {
			t.Errorf("expected pure skip, got %+v", summary.Income)
		}

		// Amount change within epsilon is still a skip.
		store.SetRange("Income", [][]string{
			incomeHeader,
			{"1", "INV-001", "15/11/2025", "Acme", "THB", "1000.0005", "100", "1100", "Paid", "Bangkok"},
		})
		summary, err = svc.Run(context.Background())
		testutil.AssertNoError(t, err)
		if summary.Income.Skipped != 1 {
			t.Errorf("expected sub-epsilon change skipped, got %+v", summary.Income)
		}

		// Real change triggers an update.
		store.SetRange("Income", [][]string{
			incomeHeader,
			{"1", "INV-001", "15/11/2025", "Acme", "THB", "1200", "120", "1320", "Paid", "Bangkok"},
		})
		summary, err = svc.Run(context.Background())
		testutil.AssertNoError(t, err)
		if summary.Income.Updated != 1 || summary.Income.Inserted != 0 {
			t.Errorf("expected 1 update, got %+v", summary.Income)
		}
	})

	t.Run("rows_without_row_id_skipped_entirely", func(t *testing.T) {
		_, store, svc := newSyncFixture(t)
		store.SetRange("Income", [][]string{
			incomeHeader,
			{"", "INV-001", "15/11/2025", "Acme", "THB", "1000", "100", "1100", "Paid", "Bangkok"},
		})

		summary, err := svc.Run(context.Background())
		testutil.AssertNoError(t, err)
		if summary.Income.Inserted+summary.Income.Updated+summary.Income.Skipped != 0 {
			t.Errorf("row without row_id must not be counted, got %+v", summary.Income)
		}
	})

	t.Run("creates_category_hierarchy_on_demand", func(t *testing.T) {
		db, store, svc := newSyncFixture(t)
		store.SetRange("Expenses", [][]string{
			expenseHeader,
			{"10", "", "05/11/2025", "Butcher", "THB", "100", "10", "110", "Paid", "COGS", "Food", "Meat", "Bangkok"},
			{"11", "", "06/11/2025", "Grocer", "THB", "40", "4", "44", "Paid", "COGS", "Food", "", "Bangkok"},
			{"12", "", "07/11/2025", "Misc", "THB", "20", "2", "22", "Paid", "OPEX", "", "", "Bangkok"},
		})

		_, err := svc.Run(context.Background())
		testutil.AssertNoError(t, err)

		var food models.ExpenseCategory
		testutil.AssertNoError(t, db.Where("name = ? AND parent_id IS NULL", "Food").First(&food).Error)
		var meat models.ExpenseCategory
		testutil.AssertNoError(t, db.Where("name = ? AND parent_id = ?", "Meat", food.ID).First(&meat).Error)

		var direct models.Expense
		testutil.AssertNoError(t, db.Where("row_id = ?", "11").First(&direct).Error)
		if direct.CategoryID != food.ID {
			t.Error("expense without subcategory should attach to the parent node")
		}

		var uncategorized models.ExpenseCategory
		testutil.AssertNoError(t, db.Where("name = ? AND parent_id IS NULL", models.UncategorizedName).First(&uncategorized).Error)
		var blank models.Expense
		testutil.AssertNoError(t, db.Where("row_id = ?", "12").First(&blank).Error)
		if blank.CategoryID != uncategorized.ID {
			t.Error("expense without category should attach to Uncategorized")
		}
	})

	t.Run("recurring_category_inference", func(t *testing.T) {
		db, store, svc := newSyncFixture(t)
		store.SetRange("Expenses", [][]string{
			expenseHeader,
			{"20", "", "05/11/2025", "Landlord", "THB", "900", "0", "900", "Paid", "OPEX", "Alquiler", "", "Bangkok"},
			{"21", "", "05/11/2025", "Butcher", "THB", "100", "10", "110", "Paid", "COGS", "Food", "", "Bangkok"},
		})

		_, err := svc.Run(context.Background())
		testutil.AssertNoError(t, err)

		var rent models.Expense
		testutil.AssertNoError(t, db.Where("row_id = ?", "20").First(&rent).Error)
		if !rent.IsRecurring || rent.RecurrencePeriod == nil || *rent.RecurrencePeriod != "monthly" {
			t.Errorf("expected recurring monthly expense, got recurring=%v period=%v", rent.IsRecurring, rent.RecurrencePeriod)
		}

		var food models.Expense
		testutil.AssertNoError(t, db.Where("row_id = ?", "21").First(&food).Error)
		if food.IsRecurring {
			t.Error("Food should not be recurring")
		}
	})
}
