package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "ledgerdash/internal/errors"
	"ledgerdash/internal/models"
	"ledgerdash/internal/pagination"
)

// expenseService handles expense document queries.
type expenseService struct {
	db *gorm.DB
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB) ExpenseServicer {
	return &expenseService{db: db}
}

// ListExpenses retrieves a paginated, filtered list of expense
// documents with their categories preloaded. The category filter
// matches both root categories and subcategories by name.
func (s *expenseService) ListExpenses(filter ExpenseFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error) {
	page.Defaults()

	query := s.db.Model(&models.Expense{})
	if filter.FromDate != nil {
		query = query.Where("doc_date >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		query = query.Where("doc_date <= ?", *filter.ToDate)
	}
	if filter.Location != "" && filter.Location != "All" {
		query = query.Where("location = ?", filter.Location)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Category != "" {
		query = query.Where(
			"category_id IN (?)",
			s.db.Model(&models.ExpenseCategory{}).Select("id").Where("name = ?", filter.Category),
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var docs []models.Expense
	if err := query.
		Preload("Category.Parent").
		Order("doc_date DESC").
		Scopes(pagination.Paginate(page)).
		Find(&docs).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	resp := pagination.NewPageResponse(docs, page.Page, page.PageSize, total)
	return &resp, nil
}

// GetExpenseByID retrieves a single expense document with its category.
func (s *expenseService) GetExpenseByID(id string) (*models.Expense, error) {
	var doc models.Expense
	if err := s.db.Preload("Category.Parent").Where("id = ?", id).First(&doc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &doc, nil
}
