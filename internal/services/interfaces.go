package services

import (
	"context"
	"time"

	"ledgerdash/internal/models"
	"ledgerdash/internal/pagination"
	"ledgerdash/internal/report"
)

// ReportRequest carries the raw query parameters for a report. Dates are
// DD/MM/YYYY strings exactly as received; validation happens inside the
// service before any rows are fetched.
type ReportRequest struct {
	StartDate      string
	EndDate        string
	Format         string
	Location       string
	OpeningBalance float64
}

// ReportServicer defines the contract for report generation.
type ReportServicer interface {
	GetPnLReport(req ReportRequest) (*report.PnLDocument, error)
	GetCashflowReport(req ReportRequest) (*report.CashflowDocument, error)
}

// IncomeFilter holds optional filter parameters for listing income documents.
type IncomeFilter struct {
	FromDate *time.Time
	ToDate   *time.Time
	Location string
	Status   string
	Customer string
}

// IncomeServicer defines the contract for income document queries.
type IncomeServicer interface {
	ListIncome(filter IncomeFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Income], error)
	GetIncomeByID(id string) (*models.Income, error)
}

// ExpenseFilter holds optional filter parameters for listing expenses.
type ExpenseFilter struct {
	FromDate *time.Time
	ToDate   *time.Time
	Location string
	Status   string
	Type     string
	Category string
}

// ExpenseServicer defines the contract for expense document queries.
type ExpenseServicer interface {
	ListExpenses(filter ExpenseFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error)
	GetExpenseByID(id string) (*models.Expense, error)
}

// CategoryServicer defines the contract for the expense category tree.
// ResolveLeaf is the dynamic-creation entry point used by the sync
// pipeline; nodes are keyed by (name, parent).
type CategoryServicer interface {
	ListCategoryTree() ([]models.ExpenseCategory, error)
	ResolveLeaf(category, subcategory string) (*models.ExpenseCategory, error)
}

// InvestmentFilter holds optional filter parameters for pending investments.
type InvestmentFilter struct {
	Status   string
	Priority string
	Location string
}

// InvestmentServicer defines the contract for pending investment queries.
type InvestmentServicer interface {
	ListInvestments(filter InvestmentFilter, page pagination.PageRequest) (*pagination.PageResponse[models.PendingInvestment], error)
	GetInvestmentByID(id string) (*models.PendingInvestment, error)
}

// SyncServicer defines the contract for the spreadsheet sync pipeline.
type SyncServicer interface {
	Run(ctx context.Context) (*SyncSummary, error)
}
