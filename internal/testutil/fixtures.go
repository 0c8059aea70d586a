package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"ledgerdash/internal/models"

	"gorm.io/gorm"
)

// counter provides unique row IDs across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestCategory creates a root category.
func CreateTestCategory(t *testing.T, db *gorm.DB, name string) *models.ExpenseCategory {
	t.Helper()

	category := &models.ExpenseCategory{Name: name}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestSubcategory creates a category under the given parent.
func CreateTestSubcategory(t *testing.T, db *gorm.DB, name string, parent *models.ExpenseCategory) *models.ExpenseCategory {
	t.Helper()

	category := &models.ExpenseCategory{Name: name, ParentID: &parent.ID}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test subcategory: %v", err)
	}
	return category
}

// CreateTestIncome creates an income document. Amount is the base
// amount; VAT is 10% and the grand total is derived.
func CreateTestIncome(t *testing.T, db *gorm.DB, customer string, amount float64, date time.Time) *models.Income {
	t.Helper()

	vat := amount * 0.1
	doc := &models.Income{
		RowID:      fmt.Sprintf("INC-%d", nextID()),
		DocNo:      fmt.Sprintf("DOC-%d", nextID()),
		DocDate:    date,
		Customer:   customer,
		Currency:   "THB",
		Amount:     amount,
		VAT:        vat,
		GrandTotal: amount + vat,
		Status:     models.DocStatusPaid,
		Location:   "Bangkok",
	}
	if err := db.Create(doc).Error; err != nil {
		t.Fatalf("failed to create test income: %v", err)
	}
	return doc
}

// CreateTestExpense creates an expense document attached to the given
// category node. Amount is the base amount; VAT is 10%.
func CreateTestExpense(t *testing.T, db *gorm.DB, category *models.ExpenseCategory, expenseType models.ExpenseType, amount float64, date time.Time) *models.Expense {
	t.Helper()

	vat := amount * 0.1
	doc := &models.Expense{
		RowID:      fmt.Sprintf("EXP-%d", nextID()),
		DocNo:      fmt.Sprintf("DOC-%d", nextID()),
		DocDate:    date,
		Supplier:   "Test Supplier",
		Currency:   "THB",
		Amount:     amount,
		VAT:        vat,
		GrandTotal: amount + vat,
		Status:     models.DocStatusPaid,
		Type:       expenseType,
		Location:   "Bangkok",
		CategoryID: category.ID,
	}
	if err := db.Create(doc).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return doc
}

// CreateTestInvestment creates a pending investment.
func CreateTestInvestment(t *testing.T, db *gorm.DB, description string, estimatedCost float64) *models.PendingInvestment {
	t.Helper()

	doc := &models.PendingInvestment{
		RefCode:       fmt.Sprintf("INV-%d", nextID()),
		Description:   description,
		Currency:      "THB",
		EstimatedCost: estimatedCost,
		Priority:      models.InvestmentPriorityMedium,
		Status:        "Planned",
		Location:      "Bangkok",
	}
	if err := db.Create(doc).Error; err != nil {
		t.Fatalf("failed to create test investment: %v", err)
	}
	return doc
}
