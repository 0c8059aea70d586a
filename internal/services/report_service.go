package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "ledgerdash/internal/errors"
	"ledgerdash/internal/models"
	"ledgerdash/internal/report"
)

// reportService generates P&L and cashflow reports from persisted
// ledger rows. Each request is stateless; the report core does all the
// aggregation once rows are fetched.
type reportService struct {
	db *gorm.DB
}

// NewReportService creates a new ReportServicer.
func NewReportService(db *gorm.DB) ReportServicer {
	return &reportService{db: db}
}

// GetPnLReport validates the request, fetches ledger rows for the range
// and builds the Profit & Loss document.
func (s *reportService) GetPnLReport(req ReportRequest) (*report.PnLDocument, error) {
	start, end, format, err := s.validate(req)
	if err != nil {
		return nil, err
	}
	periods, err := report.GeneratePeriods(start, end, format)
	if err != nil {
		return nil, err
	}

	income, expenses, err := s.fetchRows(start, end)
	if err != nil {
		return nil, err
	}

	pnl := report.NewPnLBuilder().Build(income, expenses, periods, req.Location)
	return report.AssemblePnL(pnl, req.StartDate, req.EndDate, format, req.Location), nil
}

// GetCashflowReport validates the request, fetches ledger rows for the
// range and builds the cashflow document.
func (s *reportService) GetCashflowReport(req ReportRequest) (*report.CashflowDocument, error) {
	start, end, format, err := s.validate(req)
	if err != nil {
		return nil, err
	}
	periods, err := report.GeneratePeriods(start, end, format)
	if err != nil {
		return nil, err
	}

	income, expenses, err := s.fetchRows(start, end)
	if err != nil {
		return nil, err
	}

	cf := report.NewCashflowBuilder().Build(income, expenses, periods, req.Location, req.OpeningBalance)
	return report.AssembleCashflow(cf, req.StartDate, req.EndDate, format, req.Location), nil
}

// validate checks presence and format of the request parameters. All
// validation failures surface before any rows are fetched.
func (s *reportService) validate(req ReportRequest) (start, end time.Time, format report.Format, err error) {
	if req.StartDate == "" {
		return start, end, format, apperrors.WithMessage(apperrors.ErrMissingParameter, "start_date is required")
	}
	if req.EndDate == "" {
		return start, end, format, apperrors.WithMessage(apperrors.ErrMissingParameter, "end_date is required")
	}
	start, err = time.Parse(report.DateLayout, req.StartDate)
	if err != nil {
		return start, end, format, apperrors.WithMessage(apperrors.ErrInvalidDateFormat,
			fmt.Sprintf("invalid start_date %q, expected DD/MM/YYYY", req.StartDate))
	}
	end, err = time.Parse(report.DateLayout, req.EndDate)
	if err != nil {
		return start, end, format, apperrors.WithMessage(apperrors.ErrInvalidDateFormat,
			fmt.Sprintf("invalid end_date %q, expected DD/MM/YYYY", req.EndDate))
	}

	format = report.Format(req.Format)
	if format == "" {
		format = report.FormatYearly
	}
	return start, end, format, nil
}

// fetchRows loads income and expense rows for the date range in a
// single bounded query each and maps them to report rows. Expense
// category paths are resolved through the preloaded parent: a root
// category maps to (category, ""); a subcategory maps to
// (parent, subcategory).
func (s *reportService) fetchRows(start, end time.Time) ([]report.IncomeRow, []report.ExpenseRow, error) {
	var incomes []models.Income
	if err := s.db.
		Where("doc_date >= ? AND doc_date <= ?", start, end).
		Find(&incomes).Error; err != nil {
		return nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var expenses []models.Expense
	if err := s.db.
		Preload("Category.Parent").
		Where("doc_date >= ? AND doc_date <= ?", start, end).
		Find(&expenses).Error; err != nil {
		return nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	incomeRows := make([]report.IncomeRow, len(incomes))
	for i, doc := range incomes {
		incomeRows[i] = report.IncomeRow{
			Date:       doc.DocDate,
			Amount:     doc.Amount,
			GrandTotal: doc.GrandTotal,
			Customer:   doc.Customer,
			Location:   doc.Location,
		}
	}

	expenseRows := make([]report.ExpenseRow, len(expenses))
	for i, doc := range expenses {
		category, subcategory := categoryPath(doc.Category)
		expenseRows[i] = report.ExpenseRow{
			Date:        doc.DocDate,
			Amount:      doc.Amount,
			GrandTotal:  doc.GrandTotal,
			Category:    category,
			Subcategory: subcategory,
			Type:        string(doc.Type),
			Location:    doc.Location,
		}
	}
	return incomeRows, expenseRows, nil
}

func categoryPath(c models.ExpenseCategory) (category, subcategory string) {
	if c.ParentID == nil {
		return c.Name, ""
	}
	if c.Parent != nil {
		return c.Parent.Name, c.Name
	}
	return c.Name, ""
}
